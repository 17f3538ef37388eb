package schedule

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

var (
	clock24 = regexp.MustCompile(`^(\d{1,2}):(\d{2})$`)
	clock12 = regexp.MustCompile(`^(\d{1,2}):(\d{2}) (AM|PM)$`)
)

// NormalizeTime converts an IslamicAPI time such as "5:42 AM" into 24-hour
// "05:42". Input that already looks like H:MM or HH:MM is only re-padded;
// its hour and minute are not range checked.
func NormalizeTime(s string) (string, error) {
	v := strings.TrimSpace(s)

	if m := clock24.FindStringSubmatch(v); m != nil {
		hh, _ := strconv.Atoi(m[1])
		mm, _ := strconv.Atoi(m[2])
		return fmt.Sprintf("%02d:%02d", hh, mm), nil
	}

	m := clock12.FindStringSubmatch(v)
	if m == nil {
		return "", &FormatError{Value: s}
	}
	hh, _ := strconv.Atoi(m[1])
	mm, _ := strconv.Atoi(m[2])
	if hh < 1 || hh > 12 || mm > 59 {
		return "", &FormatError{Value: s}
	}

	hh %= 12
	if m[3] == "PM" {
		hh += 12
	}
	return fmt.Sprintf("%02d:%02d", hh, mm), nil
}
