package reports

import (
	"fmt"
	"strconv"
	"strings"
)

var monthNames = [12]string{
	"January", "February", "March", "April", "May", "June",
	"July", "August", "September", "October", "November", "December",
}

// ErrInvalidMonth is returned when a month filter is neither a 1-12
// number nor a recognized month name.
var ErrInvalidMonth = fmt.Errorf("invalid month")

// MonthName returns the English name for a 1-12 month number, or an
// empty string for anything out of range.
func MonthName(month int) string {
	if month < 1 || month > 12 {
		return ""
	}
	return monthNames[month-1]
}

// ParseMonth accepts a month as either a 1-12 number ("3") or a month
// name ("March", case-insensitive) and returns its 1-12 value.
func ParseMonth(s string) (int, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, ErrInvalidMonth
	}
	if n, err := strconv.Atoi(s); err == nil {
		if n < 1 || n > 12 {
			return 0, ErrInvalidMonth
		}
		return n, nil
	}
	for i, name := range monthNames {
		if strings.EqualFold(s, name) {
			return i + 1, nil
		}
	}
	return 0, ErrInvalidMonth
}
