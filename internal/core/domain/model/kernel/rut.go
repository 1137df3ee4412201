package kernel

import (
	"fmt"
	"regexp"
	"strings"

	"setralog/internal/pkg/errs"
)

const (
	rutMinCleanLength = 8
	rutMaxCleanLength = 10
)

// rutPattern is checked against the raw input before any cleaning: optional leading
// zeros, a 1-3 digit head, 3-digit groups optionally dot-separated, an optional dash
// and a single check character.
var rutPattern = regexp.MustCompile(`^0*(\d{1,3}(\.?\d{3})*)-?([\dkK])$`)

// RUT is a Chilean national identifier (Rol Único Tributario) that passed ValidateRUT.
// It always holds the canonical form produced by FormatRUT, e.g. "12.345.678-5", so
// two RUT values compare equal exactly when their stored strings do.
type RUT struct {
	value string
}

// NewRUT validates raw and returns it in canonical form.
//
// Example:
//
//	rut, err := kernel.NewRUT("123456785")
//	// rut.String() == "12.345.678-5"
func NewRUT(raw string) (RUT, error) {
	if raw == "" {
		return RUT{}, errs.NewValueIsRequiredError("rut")
	}
	if !ValidateRUT(raw) {
		return RUT{}, errs.NewValueIsInvalidErrorWithCause(
			"rut",
			fmt.Errorf("%q has an invalid format or check digit", raw),
		)
	}
	return RUT{value: FormatRUT(raw)}, nil
}

func (r RUT) String() string {
	return r.value
}

func (r RUT) IsEqual(other RUT) bool {
	return r.value == other.value
}

// Validate fails for the zero value.
func (r RUT) Validate() error {
	if r.value == "" {
		return errs.NewValueIsRequiredError("rut")
	}
	return nil
}

func (r RUT) MarshalText() ([]byte, error) {
	return []byte(r.value), nil
}

func (r *RUT) UnmarshalText(text []byte) error {
	parsed, err := NewRUT(string(text))
	if err != nil {
		return err
	}
	*r = parsed
	return nil
}

// CleanRUT drops every character other than ASCII digits and K/k and upper-cases the rest.
func CleanRUT(raw string) string {
	var b strings.Builder
	b.Grow(len(raw))
	for _, r := range raw {
		switch {
		case r >= '0' && r <= '9', r == 'K':
			b.WriteRune(r)
		case r == 'k':
			b.WriteRune('K')
		}
	}
	return b.String()
}

// FormatRUT cleans raw and renders it as "<body grouped by dots>-<check digit>".
// Inputs shorter than two cleaned characters are returned cleaned but otherwise untouched.
func FormatRUT(raw string) string {
	cleaned := CleanRUT(raw)
	if len(cleaned) < 2 {
		return cleaned
	}

	body := cleaned[:len(cleaned)-1]
	dv := cleaned[len(cleaned)-1:]

	// run[i] counts the digits from body[i] up to the next non-digit. A dot goes
	// before every position whose run is a positive multiple of three.
	run := make([]int, len(body)+1)
	for i := len(body) - 1; i >= 0; i-- {
		if isDigit(body[i]) {
			run[i] = run[i+1] + 1
		}
	}

	var b strings.Builder
	for i := range len(body) {
		if i > 0 && run[i] > 0 && run[i]%3 == 0 {
			b.WriteByte('.')
		}
		b.WriteByte(body[i])
	}

	return b.String() + "-" + dv
}

// ValidateRUT reports whether raw is a well-formed RUT whose check digit matches the
// modulo-11 checksum of its body.
func ValidateRUT(raw string) bool {
	if !rutPattern.MatchString(raw) {
		return false
	}

	cleaned := CleanRUT(raw)
	if len(cleaned) < rutMinCleanLength || len(cleaned) > rutMaxCleanLength {
		return false
	}

	body := cleaned[:len(cleaned)-1]
	dv := cleaned[len(cleaned)-1]

	return RUTCheckDigit(body) == dv
}

// RUTCheckDigit computes the check character for a digits-only body: weights 2..7 are
// applied right to left and cycle back to 2 after 7.
func RUTCheckDigit(body string) byte {
	sum := 0
	weight := 2
	for i := len(body) - 1; i >= 0; i-- {
		sum += int(body[i]-'0') * weight
		if weight == 7 {
			weight = 2
		} else {
			weight++
		}
	}

	switch r := 11 - sum%11; r {
	case 11:
		return '0'
	case 10:
		return 'K'
	default:
		return byte('0' + r)
	}
}

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}
