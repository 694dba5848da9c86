// Package format renders durations, timestamps and names the way the
// dashboard cards display them.
package format

import (
	"fmt"
	"strings"
	"time"
	"unicode"
	"unicode/utf8"

	"github.com/dustin/go-humanize"
)

// Unknown is shown in place of a timestamp that cannot be rendered.
const Unknown = "Unknown"

// Duration renders seconds as "45s", "5m 45s" or "1h 2m".
func Duration(seconds int) string {
	if seconds < 0 {
		seconds = 0
	}
	switch {
	case seconds < 60:
		return fmt.Sprintf("%ds", seconds)
	case seconds < 3600:
		return fmt.Sprintf("%dm %ds", seconds/60, seconds%60)
	default:
		return fmt.Sprintf("%dh %dm", seconds/3600, (seconds%3600)/60)
	}
}

// LastSync renders the age of a sync timestamp relative to now.
// Timestamps in the future count as "Just now".
func LastSync(t, now time.Time) string {
	if t.IsZero() {
		return Unknown
	}
	diff := int(now.Sub(t) / time.Second)
	switch {
	case diff < 60:
		return "Just now"
	case diff < 3600:
		return plural(diff/60, "min", "mins") + " ago"
	case diff < 86400:
		return plural(diff/3600, "hour", "hours") + " ago"
	default:
		return plural(diff/86400, "day", "days") + " ago"
	}
}

// Relative renders a humanized distance such as "3 days ago".
func Relative(t, now time.Time) string {
	if t.IsZero() {
		return Unknown
	}
	return humanize.RelTime(t, now, "ago", "from now")
}

// DateTime renders t as "Jun 7, 2:23 PM" in UTC.
func DateTime(t time.Time) string {
	if t.IsZero() {
		return Unknown
	}
	return t.UTC().Format("Jan 2, 3:04 PM")
}

// Initials returns the upper-cased first letters of the first two words.
func Initials(name string) string {
	var b strings.Builder
	n := 0
	for _, part := range strings.FieldsFunc(name, unicode.IsSpace) {
		if n == 2 {
			break
		}
		r, _ := utf8.DecodeRuneInString(part)
		b.WriteRune(unicode.ToUpper(r))
		n++
	}
	return b.String()
}

func plural(n int, one, many string) string {
	if n == 1 {
		return fmt.Sprintf("%d %s", n, one)
	}
	return fmt.Sprintf("%d %s", n, many)
}
