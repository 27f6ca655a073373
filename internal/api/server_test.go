package api

import (
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/atharhub/athar/internal/ctxutil"
)

func testServer(t *testing.T) *Server {
	t.Helper()
	// Bad-input paths reject before any query runs, so no database is wired.
	return New(nil, nil, zap.NewNop().Sugar(), time.UTC)
}

func TestRejectsInvalidInput(t *testing.T) {
	s := testServer(t)

	cases := []struct {
		name   string
		method string
		path   string
		body   string
	}{
		{"bad month", "GET", "/api/v1/courses/calendar?month=March", ""},
		{"circle slot day out of range", "POST", "/api/v1/circles",
			`{"name":"حلقة","teacher_name":"أ","schedule":[{"day":9,"time":"08:00"}]}`},
		{"circle slot time unpadded", "POST", "/api/v1/circles",
			`{"name":"حلقة","teacher_name":"أ","schedule":[{"day":1,"time":"8:00"}]}`},
		{"volunteer participant without id", "POST", "/api/v1/events",
			`{"name":"إيفينت","date":"2025-03-01","time":"16:00",
			  "participants":[{"name":"أحمد","is_volunteer":true}]}`},
		{"course without schedule days", "POST", "/api/v1/courses",
			`{"name":"كورس","trainer_name":"م","schedule_days":[],"schedule_time":"18:00","start_date":"2025-01-01"}`},
		{"course with bad weekday", "POST", "/api/v1/courses",
			`{"name":"كورس","trainer_name":"م","schedule_days":["mondai"],"schedule_time":"18:00","start_date":"2025-01-01"}`},
		{"interview without date", "POST", "/api/v1/courses",
			`{"name":"كورس","trainer_name":"م","schedule_days":["monday"],"schedule_time":"18:00","start_date":"2025-01-01","has_interview":true}`},
		{"malformed json", "POST", "/api/v1/committees", `{"name":`},
		{"caravan without date", "POST", "/api/v1/caravans",
			`{"name":"قافلة الخير","type":"إغاثة"}`},
		{"caravan volunteer participant without id", "POST", "/api/v1/caravans",
			`{"name":"قافلة الخير","date":"2025-04-05",
			  "participants":[{"name":"سارة","is_volunteer":true}]}`},
		{"trainer without arabic name", "POST", "/api/v1/trainers",
			`{"name_en":"Omar","join_date":"2024-09-01"}`},
		{"badge with negative threshold", "POST", "/api/v1/badges",
			`{"name":"نجم","points_required":-5}`},
		{"badge award with bad ids", "POST", "/api/v1/badges/award",
			`{"volunteer_id":"v1","badge_id":"b1"}`},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			req := httptest.NewRequest(tc.method, tc.path, strings.NewReader(tc.body))
			if tc.body != "" {
				req.Header.Set("Content-Type", "application/json")
			}
			resp, err := s.app.Test(req)
			if err != nil {
				t.Fatal(err)
			}
			defer resp.Body.Close()
			if resp.StatusCode != 400 {
				t.Fatalf("expected 400, got %d", resp.StatusCode)
			}
		})
	}
}

func TestRequestIDEchoed(t *testing.T) {
	s := testServer(t)

	req := httptest.NewRequest("GET", "/api/v1/courses/calendar?month=bad", nil)
	req.Header.Set("X-Request-Id", "req-42")
	resp, err := s.app.Test(req)
	if err != nil {
		t.Fatal(err)
	}
	defer resp.Body.Close()
	if got := resp.Header.Get("X-Request-Id"); got != "req-42" {
		t.Fatalf("expected request id echoed, got %q", got)
	}

	resp2, err := s.app.Test(httptest.NewRequest("GET", "/api/v1/courses/calendar?month=bad", nil))
	if err != nil {
		t.Fatal(err)
	}
	defer resp2.Body.Close()
	if resp2.Header.Get("X-Request-Id") == "" {
		t.Fatal("expected a generated request id")
	}
}

// Handlers (and the error path) read the request id and actor off the user
// context, so the middleware must put them there.
func TestRequestContextCarriesIdentity(t *testing.T) {
	s := testServer(t)

	var gotID, gotActor string
	s.app.Get("/whoami", func(c *fiber.Ctx) error {
		gotID, _ = ctxutil.RequestID(c.UserContext())
		gotActor, _ = ctxutil.Actor(c.UserContext())
		return c.SendStatus(fiber.StatusNoContent)
	})

	req := httptest.NewRequest("GET", "/whoami", nil)
	req.Header.Set("X-Request-Id", "req-7")
	req.Header.Set("X-Actor", "admin@athar")
	resp, err := s.app.Test(req)
	if err != nil {
		t.Fatal(err)
	}
	defer resp.Body.Close()

	if gotID != "req-7" {
		t.Fatalf("request id on context = %q", gotID)
	}
	if gotActor != "admin@athar" {
		t.Fatalf("actor on context = %q", gotActor)
	}
}
