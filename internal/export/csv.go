package export

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"regexp"
	"strings"
	"time"
)

// utf8BOM makes Excel open the file as UTF-8; without it Arabic headers
// render as mojibake.
var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

// CSV renders rows to a BOM-prefixed CSV document. encoding/csv handles
// quoting of fields containing commas or quotes.
func CSV(headers []string, rows [][]string) ([]byte, error) {
	var buf bytes.Buffer
	buf.Write(utf8BOM)

	w := csv.NewWriter(&buf)
	if err := w.Write(headers); err != nil {
		return nil, fmt.Errorf("write csv header: %w", err)
	}
	for _, row := range rows {
		if err := w.Write(row); err != nil {
			return nil, fmt.Errorf("write csv row: %w", err)
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// CSVFilename builds "<label>_<ISO-date>.csv".
func CSVFilename(label string, now time.Time) string {
	return sanitizeFileName(fmt.Sprintf("%s_%s.csv", label, now.Format("2006-01-02")))
}

// XLSXFilename builds "<label>_<ISO-date>.xlsx".
func XLSXFilename(label string, now time.Time) string {
	return sanitizeFileName(fmt.Sprintf("%s_%s.xlsx", label, now.Format("2006-01-02")))
}

var invalidFileRe = regexp.MustCompile(`[\\/:*?"<>|]+`)

func sanitizeFileName(s string) string {
	s = strings.TrimSpace(s)
	s = strings.Join(strings.Fields(s), " ")
	return invalidFileRe.ReplaceAllString(s, "_")
}
