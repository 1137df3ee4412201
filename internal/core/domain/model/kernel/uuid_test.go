package kernel_test

import (
	"encoding/json"
	"testing"

	"setralog/internal/core/domain/model/kernel"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewUUID(t *testing.T) {
	t.Run("should create a new UUID", func(t *testing.T) {
		id := kernel.NewUUID()

		assert.NotEmpty(t, id.String())
		require.NoError(t, id.Validate())
		assert.NotEqual(t, "00000000-0000-0000-0000-000000000000", id.String())
	})

	t.Run("should create unique UUIDs", func(t *testing.T) {
		id1 := kernel.NewUUID()
		id2 := kernel.NewUUID()

		assert.NotEqual(t, id1.String(), id2.String())
		assert.False(t, id1.IsEqual(id2))
	})
}

func TestUUIDFromString(t *testing.T) {
	validUUID := "550e8400-e29b-41d4-a716-446655440000"

	t.Run("should create UUID from valid string", func(t *testing.T) {
		id, err := kernel.UUIDFromString(validUUID)

		require.NoError(t, err)
		assert.Equal(t, validUUID, id.String())
	})

	t.Run("should accept UUID with urn prefix", func(t *testing.T) {
		id, err := kernel.UUIDFromString("urn:uuid:" + validUUID)

		require.NoError(t, err)
		assert.Equal(t, validUUID, id.String())
	})

	t.Run("should return error for invalid UUID format", func(t *testing.T) {
		for _, input := range []string{"", "not-a-uuid", "550e8400-e29b-41d4-a716", "zzze8400-e29b-41d4-a716-446655440000"} {
			_, err := kernel.UUIDFromString(input)
			require.Error(t, err, "expected error for input: %s", input)
			assert.Contains(t, err.Error(), "invalid UUID format")
		}
	})

	t.Run("should reject the nil UUID", func(t *testing.T) {
		_, err := kernel.UUIDFromString("00000000-0000-0000-0000-000000000000")

		assert.Equal(t, kernel.ErrUUIDIsNotConstructed, err)
	})
}

func TestUUID_Validate(t *testing.T) {
	var id kernel.UUID

	assert.Equal(t, kernel.ErrUUIDIsNotConstructed, id.Validate())
	require.NoError(t, kernel.NewUUID().Validate())
}

func TestUUID_TextRoundTrip(t *testing.T) {
	type envelope struct {
		UserID kernel.UUID `json:"userId"`
	}

	original := envelope{UserID: kernel.NewUUID()}
	raw, err := json.Marshal(original)
	require.NoError(t, err)
	assert.JSONEq(t, `{"userId":"`+original.UserID.String()+`"}`, string(raw))

	var decoded envelope
	require.NoError(t, json.Unmarshal(raw, &decoded))
	assert.True(t, original.UserID.IsEqual(decoded.UserID))

	require.Error(t, json.Unmarshal([]byte(`{"userId":"nope"}`), &decoded))
}
