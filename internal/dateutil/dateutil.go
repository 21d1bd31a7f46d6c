// Package dateutil provides date resolution for report metadata.
package dateutil

import (
	"fmt"
	"time"
)

// TodayKeyword is the config value that resolves to the generation date.
const TodayKeyword = "today"

// weekdaysKo maps time.Weekday to the single-character Korean abbreviation
// used in report date lines.
var weekdaysKo = [...]string{"일", "월", "화", "수", "목", "금", "토"}

// FormatReportDate renders t in the abbreviated Korean report style,
// e.g. "25. 9. 2.(화)" for 2025-09-02.
func FormatReportDate(t time.Time) string {
	return fmt.Sprintf("%02d. %d. %d.(%s)",
		t.Year()%100, int(t.Month()), t.Day(), weekdaysKo[t.Weekday()])
}

// Resolve returns the date string to render for a config-supplied value.
// The literal value passes through unchanged except for the "today" keyword,
// which resolves against now.
func Resolve(value string, now time.Time) string {
	if value == TodayKeyword {
		return FormatReportDate(now)
	}
	return value
}
