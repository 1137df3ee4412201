package kernel_test

import (
	"testing"

	"setralog/internal/core/domain/model/kernel"
	"setralog/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCleanRUT(t *testing.T) {
	testCases := map[string]string{
		"12.345.678-5":  "123456785",
		"10.000.013-k":  "10000013K",
		" 7 654 321-6 ": "76543216",
		"abc":           "",
		"":              "",
	}

	for input, expected := range testCases {
		t.Run(input, func(t *testing.T) {
			assert.Equal(t, expected, kernel.CleanRUT(input))
		})
	}
}

func TestFormatRUT(t *testing.T) {
	testCases := []struct {
		input    string
		expected string
	}{
		{"123456785", "12.345.678-5"},
		{"12345678-5", "12.345.678-5"},
		{"12.345.678-5", "12.345.678-5"},
		{"76543216", "7.654.321-6"},
		{"10000013k", "10.000.013-K"},
		{"1-9", "1-9"},
		{"1", "1"},
		{"k", "K"},
		{"", ""},
		// Groups are counted per digit run, so a K inside the body ends a run.
		{"1K2345", "1K.234-5"},
		{"1234K567", "1.234K56-7"},
		{"1234567K1234", "1.234.567K.123-4"},
	}

	for _, tc := range testCases {
		t.Run(tc.input, func(t *testing.T) {
			assert.Equal(t, tc.expected, kernel.FormatRUT(tc.input))
		})
	}
}

func TestValidateRUT(t *testing.T) {
	t.Run("should accept valid RUTs", func(t *testing.T) {
		valid := []string{
			"12345678-5",
			"12.345.678-5",
			"123456785",
			"11111111-1",
			"7654321-6",
			"7.654.321-6",
			"10000013-K",
			"10000013-k",
			"10000004-0",
			"012345678-5",
		}
		for _, rut := range valid {
			assert.True(t, kernel.ValidateRUT(rut), "expected %q to be valid", rut)
		}
	})

	t.Run("should reject wrong check digits", func(t *testing.T) {
		for _, rut := range []string{"12345678-6", "12345678-K", "10000013-0", "11111111-2"} {
			assert.False(t, kernel.ValidateRUT(rut), "expected %q to be invalid", rut)
		}
	})

	t.Run("should reject malformed input", func(t *testing.T) {
		malformed := []string{
			"",
			"-",
			"12,345,678-5",
			"12.34.678-5",
			"12345678-55",
			"12345678--5",
			"abc",
			"12 345 678-5",
		}
		for _, rut := range malformed {
			assert.False(t, kernel.ValidateRUT(rut), "expected %q to be invalid", rut)
		}
	})

	t.Run("should reject cleaned lengths outside 8..10", func(t *testing.T) {
		assert.False(t, kernel.ValidateRUT("1-9"))
		assert.False(t, kernel.ValidateRUT("100000-4"))
		assert.False(t, kernel.ValidateRUT("1.234.567.890-1"))
	})

	t.Run("should keep valid RUTs valid after formatting", func(t *testing.T) {
		inputs := []string{"123456785", "12345678-5", "7654321-6", "10000013k", "0012345678-5", "10000004-0"}
		for _, input := range inputs {
			if !kernel.ValidateRUT(input) {
				continue
			}
			formatted := kernel.FormatRUT(input)
			assert.True(t, kernel.ValidateRUT(formatted), "%q formatted as %q", input, formatted)
			assert.Equal(t, formatted, kernel.FormatRUT(formatted))
		}
	})
}

func TestRUTCheckDigit(t *testing.T) {
	assert.Equal(t, byte('5'), kernel.RUTCheckDigit("12345678"))
	assert.Equal(t, byte('K'), kernel.RUTCheckDigit("10000013"))
	assert.Equal(t, byte('0'), kernel.RUTCheckDigit("10000004"))
	assert.Equal(t, byte('6'), kernel.RUTCheckDigit("7654321"))
}

func TestNewRUT(t *testing.T) {
	t.Run("should store canonical form", func(t *testing.T) {
		rut, err := kernel.NewRUT("123456785")

		require.NoError(t, err)
		assert.Equal(t, "12.345.678-5", rut.String())
		require.NoError(t, rut.Validate())
	})

	t.Run("should treat equivalent inputs as equal", func(t *testing.T) {
		a, err := kernel.NewRUT("12.345.678-5")
		require.NoError(t, err)
		b, err := kernel.NewRUT("12345678-5")
		require.NoError(t, err)

		assert.True(t, a.IsEqual(b))
	})

	t.Run("should fail with invalid format error", func(t *testing.T) {
		_, err := kernel.NewRUT("12345678-9")

		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
		assert.Contains(t, err.Error(), "rut")
	})

	t.Run("should fail with required error on empty input", func(t *testing.T) {
		_, err := kernel.NewRUT("")

		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})

	t.Run("zero value is not valid", func(t *testing.T) {
		var rut kernel.RUT
		require.ErrorIs(t, rut.Validate(), errs.ErrValueIsRequired)
	})
}
