package kernel_test

import (
	"testing"

	"setralog/internal/core/domain/model/kernel"
	"setralog/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidatePhone(t *testing.T) {
	testCases := []struct {
		input string
		valid bool
	}{
		{"+56912345678", true},
		{"+5691234567", false},
		{"+569123456789", false},
		{"56912345678", false},
		{"+56812345678", false},
		{"+569 1234 5678", false},
		{"", false},
	}

	for _, tc := range testCases {
		t.Run(tc.input, func(t *testing.T) {
			assert.Equal(t, tc.valid, kernel.ValidatePhone(tc.input))
		})
	}
}

func TestFormatPhone(t *testing.T) {
	testCases := []struct {
		input    string
		expected string
	}{
		{"56912345678", "+56912345678"},
		{"+56912345678", "+56912345678"},
		{"+56 9 1234 5678", "+56912345678"},
		{"(+569) 1234-5678", "+56912345678"},
		{"9 1234 5678", "+912345678"},
		{"", "+"},
	}

	for _, tc := range testCases {
		t.Run(tc.input, func(t *testing.T) {
			assert.Equal(t, tc.expected, kernel.FormatPhone(tc.input))
		})
	}
}

func TestNewPhone(t *testing.T) {
	t.Run("should normalize before validating", func(t *testing.T) {
		phone, err := kernel.NewPhone("569 1234 5678")

		require.NoError(t, err)
		assert.Equal(t, "+56912345678", phone.String())
	})

	t.Run("should reject numbers that stay invalid after formatting", func(t *testing.T) {
		_, err := kernel.NewPhone("1234567")

		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("should require a value", func(t *testing.T) {
		_, err := kernel.NewPhone("")

		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})
}
