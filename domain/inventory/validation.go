package inventory

import (
	"encoding/json"
	"errors"
	"regexp"
	"strconv"
	"strings"
	"time"
	"unicode"

	"freshtrack-backend/pkg/utils"
)

var emailPattern = regexp.MustCompile(`^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`)

// ValidEmail reports whether s has a standard local@domain.tld shape.
func ValidEmail(s string) bool {
	return emailPattern.MatchString(s)
}

// ValidatePassword checks password strength and returns the first violated
// rule as an error, or nil when the password is acceptable.
func ValidatePassword(s string) error {
	if len(s) < 8 {
		return errors.New("Password must be at least 8 characters long")
	}
	var hasUpper, hasLower, hasDigit bool
	for _, r := range s {
		switch {
		case unicode.IsUpper(r):
			hasUpper = true
		case unicode.IsLower(r):
			hasLower = true
		case unicode.IsDigit(r):
			hasDigit = true
		}
	}
	if !hasUpper {
		return errors.New("Password must contain at least one uppercase letter")
	}
	if !hasLower {
		return errors.New("Password must contain at least one lowercase letter")
	}
	if !hasDigit {
		return errors.New("Password must contain at least one number")
	}
	return nil
}

// Sanitize trims leading and trailing whitespace. Empty input passes through.
func Sanitize(s string) string {
	return strings.TrimSpace(s)
}

// CoerceQuantity converts a client-supplied quantity, which may arrive as a
// JSON number or a numeric string, into an int. The bool is false when the
// value is absent or not a whole number.
func CoerceQuantity(v interface{}) (int, bool) {
	switch q := v.(type) {
	case int:
		return q, true
	case int64:
		return int(q), true
	case float64:
		if q != float64(int(q)) {
			return 0, false
		}
		return int(q), true
	case json.Number:
		n, err := strconv.Atoi(q.String())
		if err != nil {
			return 0, false
		}
		return n, true
	case string:
		n, err := strconv.Atoi(strings.TrimSpace(q))
		if err != nil {
			return 0, false
		}
		return n, true
	default:
		return 0, false
	}
}

// ItemValidator checks item field constraints. Now is injectable so the
// "expiry not in the past" rule can be tested against a fixed date.
type ItemValidator struct {
	Now func() time.Time
}

// NewItemValidator creates a validator using the wall clock.
func NewItemValidator() *ItemValidator {
	return &ItemValidator{Now: time.Now}
}

// Validate collects every violated rule, in order. An empty result means the
// input is valid.
func (v *ItemValidator) Validate(input ItemInput) []string {
	var violations []string

	name := Sanitize(input.Name)
	if len(name) < 2 {
		violations = append(violations, "Item name must be at least 2 characters long")
	}

	if quantity, ok := CoerceQuantity(input.Quantity); !ok || quantity <= 0 {
		violations = append(violations, "Quantity must be a positive number")
	}

	purchase, perr := utils.ParseDate(input.PurchaseDate)
	expiry, eerr := utils.ParseDate(input.ExpiryDate)
	if perr != nil || eerr != nil {
		violations = append(violations, "Invalid date format. Use YYYY-MM-DD")
		return violations
	}

	if !expiry.After(purchase) {
		violations = append(violations, "Expiry date must be after purchase date")
	} else if expiry.Before(utils.Today(v.Now())) {
		violations = append(violations, "Expiry date cannot be in the past")
	}

	return violations
}
