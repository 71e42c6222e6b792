package utils

import (
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/asaskevich/govalidator"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

// NairaSign prefixes every formatted price.
const NairaSign = "₦"

// InvalidDate is returned by the string date formatters when the input cannot
// be parsed.
const InvalidDate = "Invalid Date"

const (
	dateLayout     = "2 January 2006"
	dateTimeLayout = "2 Jan 2006, 15:04"
)

var priceFormatter = message.NewPrinter(language.English)

// dateInputLayouts are tried in order by ParseDate. Layouts without a zone
// are read as UTC.
var dateInputLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05",
	"2006-01-02T15:04",
	"2006-01-02",
}

var fileSizeUnits = []string{"Bytes", "KB", "MB", "GB", "TB", "PB", "EB"}

var timeNow = time.Now

// FormatPrice renders amount in Naira with comma grouping and at most two
// fraction digits, e.g. ₦1,234.5.
func FormatPrice(amount float64) string {
	if math.IsNaN(amount) || math.IsInf(amount, 0) {
		amount = 0
	}
	amount = math.Round(amount*100) / 100

	sign := ""
	if amount < 0 {
		sign = "-"
		amount = -amount
	}
	return sign + NairaSign + priceFormatter.Sprint(number.Decimal(amount, number.MaxFractionDigits(2)))
}

// ParseDate reads the ISO 8601 shapes the front-end sends.
func ParseDate(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	for _, layout := range dateInputLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("unrecognised date %q", s)
}

// FormatDate returns the long form date, e.g. "15 October 2026".
func FormatDate(t time.Time) string {
	return t.Format(dateLayout)
}

// FormatDateString is FormatDate for ISO strings.
func FormatDateString(s string) string {
	t, err := ParseDate(s)
	if err != nil {
		return InvalidDate
	}
	return FormatDate(t)
}

// FormatDateTime returns a short date with a 24-hour time, e.g. "15 Oct 2026, 14:30".
func FormatDateTime(t time.Time) string {
	return t.Format(dateTimeLayout)
}

// FormatDateTimeString is FormatDateTime for ISO strings.
func FormatDateTimeString(s string) string {
	t, err := ParseDate(s)
	if err != nil {
		return InvalidDate
	}
	return FormatDateTime(t)
}

// GetRelativeTime describes how long ago t was, falling back to FormatDate
// after a week.
func GetRelativeTime(t time.Time) string {
	return GetRelativeTimeFrom(t, timeNow())
}

// GetRelativeTimeFrom is GetRelativeTime measured against now.
// Timestamps in the future report "just now".
func GetRelativeTimeFrom(t, now time.Time) string {
	seconds := int64(now.Sub(t) / time.Second)
	if seconds < 60 {
		return "just now"
	}

	minutes := seconds / 60
	if minutes < 60 {
		return ago(minutes, "minute")
	}

	hours := minutes / 60
	if hours < 24 {
		return ago(hours, "hour")
	}

	days := hours / 24
	if days < 7 {
		return ago(days, "day")
	}

	return FormatDate(t)
}

func ago(n int64, unit string) string {
	if n != 1 {
		unit += "s"
	}
	return fmt.Sprintf("%d %s ago", n, unit)
}

// FormatFileSize converts a byte count to the largest base-1024 unit it
// reaches, rounded to two decimals: 1536 -> "1.5 KB".
func FormatFileSize(bytes int64) string {
	if bytes == 0 {
		return "0 Bytes"
	}

	magnitude := math.Abs(float64(bytes))
	i := 0
	for magnitude >= 1024 && i < len(fileSizeUnits)-1 {
		magnitude /= 1024
		i++
	}

	value := float64(bytes) / math.Pow(1024, float64(i))
	value = math.Round(value*100) / 100
	return strconv.FormatFloat(value, 'f', -1, 64) + " " + fileSizeUnits[i]
}

// FormatNigerianPhone groups a Nigerian number for display by its prefix:
// "234..." becomes "+234 803 123 4567" and "0..." becomes "0803 123 4567".
// Input with neither prefix, or too few digits to group, is returned as given.
func FormatNigerianPhone(phone string) string {
	digits := govalidator.WhiteList(phone, "0-9")

	switch {
	case len(digits) >= 6 && strings.HasPrefix(digits, "234"):
		return "+234 " + strings.Join(splitDigits(digits[3:], 3, 6), " ")
	case len(digits) >= 4 && digits[0] == '0':
		return strings.Join(splitDigits(digits, 4, 7), " ")
	default:
		return phone
	}
}

// splitDigits cuts s at the given offsets; the last group takes the rest.
// Offsets past the end of s are ignored.
func splitDigits(s string, cuts ...int) []string {
	var groups []string
	prev := 0
	for _, cut := range cuts {
		if cut >= len(s) {
			break
		}
		groups = append(groups, s[prev:cut])
		prev = cut
	}
	return append(groups, s[prev:])
}
