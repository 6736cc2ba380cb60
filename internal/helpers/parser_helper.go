package helpers

import (
	"fmt"
	"net/url"
	"strconv"
	"strings"
	"time"
)

func StringToInt(s string) (int, error) {
	return strconv.Atoi(s)
}

// ValidateEventDate accepts calendar dates in YYYY-MM-DD form.
func ValidateEventDate(date string) error {
	if _, err := time.Parse("2006-01-02", date); err != nil {
		return fmt.Errorf("invalid date %q, expected YYYY-MM-DD", date)
	}
	return nil
}

// ValidateClock accepts 24-hour HH:MM clock strings.
func ValidateClock(clock string) error {
	if _, err := time.Parse("15:04", clock); err != nil {
		return fmt.Errorf("invalid time %q, expected HH:MM", clock)
	}
	return nil
}

// ValidateHTTPURL rejects anything that does not parse as an absolute
// http(s) URL. Empty strings are allowed; optional fields call this only
// when set.
func ValidateHTTPURL(raw string) error {
	if raw == "" {
		return nil
	}
	u, err := url.Parse(raw)
	if err != nil || u.Host == "" || (u.Scheme != "http" && u.Scheme != "https") {
		return fmt.Errorf("invalid URL %q", raw)
	}
	return nil
}

// ValidateTextLength guards free-text fields against oversized payloads.
func ValidateTextLength(field, value string, max int) error {
	if len(strings.TrimSpace(value)) > max {
		return fmt.Errorf("%s exceeds maximum length of %d characters", field, max)
	}
	return nil
}
