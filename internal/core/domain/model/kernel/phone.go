package kernel

import (
	"fmt"
	"regexp"
	"strings"

	"setralog/internal/pkg/errs"
)

// phonePattern is the Chilean mobile format: +569 followed by eight digits.
var phonePattern = regexp.MustCompile(`^\+569\d{8}$`)

// Phone is a normalized Chilean mobile number such as "+56912345678".
type Phone struct {
	value string
}

// NewPhone normalizes raw with FormatPhone and then requires the result to pass ValidatePhone.
func NewPhone(raw string) (Phone, error) {
	if raw == "" {
		return Phone{}, errs.NewValueIsRequiredError("phone")
	}
	formatted := FormatPhone(raw)
	if !ValidatePhone(formatted) {
		return Phone{}, errs.NewValueIsInvalidErrorWithCause(
			"phone",
			fmt.Errorf("%q does not match +569XXXXXXXX", raw),
		)
	}
	return Phone{value: formatted}, nil
}

func (p Phone) String() string {
	return p.value
}

// Validate fails for the zero value.
func (p Phone) Validate() error {
	if p.value == "" {
		return errs.NewValueIsRequiredError("phone")
	}
	return nil
}

func (p Phone) MarshalText() ([]byte, error) {
	return []byte(p.value), nil
}

func (p *Phone) UnmarshalText(text []byte) error {
	parsed, err := NewPhone(string(text))
	if err != nil {
		return err
	}
	*p = parsed
	return nil
}

// ValidatePhone reports whether s is exactly "+569" followed by eight digits.
func ValidatePhone(s string) bool {
	return phonePattern.MatchString(s)
}

// FormatPhone keeps only digits and '+' characters and makes sure the result starts
// with '+'. It does not check length; callers validate separately.
func FormatPhone(raw string) string {
	var b strings.Builder
	b.Grow(len(raw) + 1)
	for _, r := range raw {
		if (r >= '0' && r <= '9') || r == '+' {
			b.WriteRune(r)
		}
	}

	cleaned := b.String()
	if !strings.HasPrefix(cleaned, "+") {
		return "+" + cleaned
	}
	return cleaned
}
