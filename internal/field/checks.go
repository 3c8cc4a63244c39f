package field

import (
	"encoding/json"
	"regexp"
	"strconv"
	"time"

	dErrors "scoring-gateway/pkg/domain-errors"
)

// DateLayout is the wire format for dates: zero-padded day.month.year.
const DateLayout = "02.01.2006"

// MaxAgeDays bounds how far in the past a birthday may lie (~70 years).
const MaxAgeDays = 25570

// Local part is alphanumeric runs joined by . - or _, domain is
// alphanumerics/hyphens with at least one dot-separated TLD of 2+ letters.
// Anchored at the start only, matching the historical prefix-match rule.
var emailPattern = regexp.MustCompile(`^([A-Za-z0-9]+[._-])*[A-Za-z0-9]+@[A-Za-z0-9-]+(\.[A-Za-z]{2,})+`)

// IsString accepts string values only.
func IsString() Check {
	return func(v any) error {
		if _, ok := v.(string); !ok {
			return dErrors.New(dErrors.CodeTypeMismatch, "must be a string")
		}
		return nil
	}
}

// IsMap accepts JSON objects.
func IsMap() Check {
	return func(v any) error {
		if _, ok := v.(map[string]any); !ok {
			return dErrors.New(dErrors.CodeTypeMismatch, "must be an object")
		}
		return nil
	}
}

// EmailFormat accepts strings shaped like local-part@domain.tld.
func EmailFormat() Check {
	return func(v any) error {
		s, ok := v.(string)
		if !ok {
			return dErrors.New(dErrors.CodeTypeMismatch, "must be a string")
		}
		if !emailPattern.MatchString(s) {
			return dErrors.New(dErrors.CodeFormatInvalid, "must be an email address")
		}
		return nil
	}
}

// PhoneFormat accepts integers or strings whose string form is exactly 11
// characters and starts with '7'.
func PhoneFormat() Check {
	return func(v any) error {
		s, ok := StringForm(v)
		if !ok {
			return dErrors.New(dErrors.CodeTypeMismatch, "must be a number or a string")
		}
		if len(s) != 11 {
			return dErrors.New(dErrors.CodeFormatInvalid, "must have 11 digits")
		}
		if s[0] != '7' {
			return dErrors.New(dErrors.CodeFormatInvalid, "must start with 7")
		}
		return nil
	}
}

// DateFormat accepts strings parseable as DD.MM.YYYY.
func DateFormat() Check {
	return func(v any) error {
		s, ok := v.(string)
		if !ok {
			return dErrors.New(dErrors.CodeTypeMismatch, "must be a string")
		}
		if _, err := time.Parse(DateLayout, s); err != nil {
			return dErrors.Newf(dErrors.CodeFormatInvalid, "must match format %s", "DD.MM.YYYY")
		}
		return nil
	}
}

// MaxAge rejects dates further than MaxAgeDays before the supplied instant.
// Runs after DateFormat, so the value is known to parse.
func MaxAge(now time.Time) Check {
	return func(v any) error {
		s, ok := v.(string)
		if !ok {
			return dErrors.New(dErrors.CodeTypeMismatch, "must be a string")
		}
		t, err := time.Parse(DateLayout, s)
		if err != nil {
			return dErrors.Newf(dErrors.CodeFormatInvalid, "must match format %s", "DD.MM.YYYY")
		}
		// Whole days, so the time-of-day of "now" cannot tip the bound.
		if int(now.Sub(t).Hours()/24) > MaxAgeDays {
			return dErrors.New(dErrors.CodeRangeInvalid, "must be less than 70 years ago")
		}
		return nil
	}
}

// GenderValue accepts the integers 0, 1 and 2. Booleans and integer-valued
// floats are type mismatches, not members of the enumeration.
func GenderValue() Check {
	return func(v any) error {
		n, ok := IntForm(v)
		if !ok {
			return dErrors.New(dErrors.CodeTypeMismatch, "must be an integer")
		}
		if n < 0 || n > 2 {
			return dErrors.New(dErrors.CodeRangeInvalid, "must be 0, 1 or 2")
		}
		return nil
	}
}

// IntList accepts non-empty arrays whose every element is an integer.
// An empty list is a range violation; element failures are type mismatches.
func IntList() Check {
	return func(v any) error {
		items, ok := v.([]any)
		if !ok {
			return dErrors.New(dErrors.CodeTypeMismatch, "must be an array")
		}
		if len(items) == 0 {
			return dErrors.New(dErrors.CodeRangeInvalid, "must not be empty")
		}
		for _, item := range items {
			if _, ok := IntForm(item); !ok {
				return dErrors.New(dErrors.CodeTypeMismatch, "every element must be an integer")
			}
		}
		return nil
	}
}

// StringForm renders integers and strings to their string form; everything
// else is rejected.
func StringForm(v any) (string, bool) {
	switch t := v.(type) {
	case string:
		return t, true
	case json.Number:
		if _, err := t.Int64(); err != nil {
			return "", false
		}
		return t.String(), true
	case int:
		return strconv.FormatInt(int64(t), 10), true
	case int64:
		return strconv.FormatInt(t, 10), true
	default:
		return "", false
	}
}

// IntForm extracts an integer. json.Number only qualifies when its literal
// is an integer; "1.0" and exponent forms do not, and bool never does.
func IntForm(v any) (int64, bool) {
	switch t := v.(type) {
	case json.Number:
		n, err := t.Int64()
		if err != nil {
			return 0, false
		}
		return n, true
	case int:
		return int64(t), true
	case int64:
		return t, true
	default:
		return 0, false
	}
}
