// Package dateutils provides the date normalization used throughout the
// application.
package dateutils

import (
	"fmt"
	"regexp"
	"strings"
	"time"
)

// Common date format constants used throughout the application
const (
	DateLayoutISO      = "2006-01-02"
	DateLayoutEuropean = "02.01.2006"
)

// germanDatePattern matches D[D].M[M].YYYY anywhere in the input, the
// layout German bank exports use.
var germanDatePattern = regexp.MustCompile(`(\d{1,2})\.(\d{1,2})\.(\d{4})`)

// NormalizeDate turns a free-form date string into an ISO-8601 date
// (YYYY-MM-DD). The D[D].M[M].YYYY pattern is recognized anywhere in the
// input; day and month are zero-padded, the year is used verbatim. When
// nothing matches, the current date is returned as an explicit
// "unknown date" fallback, never an error.
func NormalizeDate(dateStr string) string {
	return NormalizeDateAt(dateStr, time.Now())
}

// NormalizeDateAt is NormalizeDate with an explicit fallback instant,
// so callers and tests control what "now" means.
func NormalizeDateAt(dateStr string, now time.Time) string {
	m := germanDatePattern.FindStringSubmatch(strings.TrimSpace(dateStr))
	if m == nil {
		return now.Format(DateLayoutISO)
	}

	day := zeroPad(m[1])
	month := zeroPad(m[2])
	return fmt.Sprintf("%s-%s-%s", m[3], month, day)
}

// ParseISODate parses a YYYY-MM-DD string into a time.Time.
func ParseISODate(dateStr string) (time.Time, error) {
	t, err := time.Parse(DateLayoutISO, dateStr)
	if err != nil {
		return time.Time{}, fmt.Errorf("unable to parse date: %s", dateStr)
	}
	return t, nil
}

// ToISODate formats a time.Time value as an ISO date (YYYY-MM-DD).
func ToISODate(date time.Time) string {
	return date.Format(DateLayoutISO)
}

// ToEuropeanFormat formats a time.Time as DD.MM.YYYY.
func ToEuropeanFormat(date time.Time) string {
	if date.IsZero() {
		return ""
	}
	return date.Format(DateLayoutEuropean)
}

func zeroPad(s string) string {
	if len(s) == 1 {
		return "0" + s
	}
	return s
}
