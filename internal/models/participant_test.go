package models

import "testing"

func TestDescriptionLabel(t *testing.T) {
	cases := []struct {
		kind ActivityKind
		want string
	}{
		{KindEthicsCall, "مكالمات: "},
		{KindEvent, "Event: "},
		{KindCaravan, "Caravan: "},
		{ActivityKind("unknown"), ""},
	}
	for _, tc := range cases {
		if got := tc.kind.DescriptionLabel(); got != tc.want {
			t.Errorf("%s: DescriptionLabel() = %q, want %q", tc.kind, got, tc.want)
		}
	}
}
