// Package format holds the presentation helpers shared by pages and views.
package format

import (
	"math"
	"strings"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/mattn/go-runewidth"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

const ellipsis = "…"

// WordsPerMinute drives ReadingTime.
const WordsPerMinute = 200

// Date renders t as "January 2, 2006". The zero time renders as "".
func Date(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.Format("January 2, 2006")
}

// ShortDate renders t as "Jan 2, 2006".
func ShortDate(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.Format("Jan 2, 2006")
}

// PostedAgo describes t relative to now, e.g. "3 days ago".
func PostedAgo(t, now time.Time) string {
	if t.IsZero() {
		return ""
	}
	if d := now.Sub(t); d >= 0 && d < time.Minute {
		return "just now"
	}
	return humanize.RelTime(t, now, "ago", "from now")
}

// Truncate shortens s to at most width display columns, ending with an
// ellipsis when anything was cut. Wide runes count as two columns.
func Truncate(s string, width int) string {
	if width <= 0 || runewidth.StringWidth(s) <= width {
		return s
	}
	cut := runewidth.Truncate(s, width-runewidth.StringWidth(ellipsis), "")
	return strings.TrimRight(cut, " ,.;:") + ellipsis
}

var titleCaser = cases.Title(language.English)

// Title upper-cases the first letter of each word.
func Title(s string) string {
	return titleCaser.String(s)
}

// Label turns identifiers such as "full-time" or "case_study" into
// "Full Time" and "Case Study".
func Label(s string) string {
	s = strings.NewReplacer("-", " ", "_", " ").Replace(strings.TrimSpace(s))
	return Title(s)
}

// ReadingTime estimates whole minutes needed to read text, at least one for
// any non-empty text.
func ReadingTime(text string) int {
	words := len(strings.Fields(text))
	if words == 0 {
		return 0
	}
	return int(math.Ceil(float64(words) / WordsPerMinute))
}

// Count renders n with thousands separators.
func Count(n int) string {
	return humanize.Comma(int64(n))
}
