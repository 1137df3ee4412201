package memory_test

import (
	"context"
	"errors"
	"testing"

	"setralog/internal/adapters/out/memory"
	"setralog/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockMirror struct{ mock.Mock }

func (m *MockMirror) Save(ctx context.Context, key string, payload []byte) error {
	args := m.Called(ctx, key, payload)
	return args.Error(0)
}

func (m *MockMirror) Load(ctx context.Context, key string) ([]byte, error) {
	args := m.Called(ctx, key)
	payload, _ := args.Get(0).([]byte)
	return payload, args.Error(1)
}

func TestEnvelope(t *testing.T) {
	type state struct {
		Count int `json:"count"`
	}

	payload, err := memory.Encode(state{Count: 3})
	require.NoError(t, err)
	assert.JSONEq(t, `{"state":{"count":3},"version":0}`, string(payload))

	decoded, err := memory.Decode[state](payload)
	require.NoError(t, err)
	assert.Equal(t, 3, decoded.Count)

	_, err = memory.Decode[state]([]byte("{"))
	require.Error(t, err)
}

func TestPublisher(t *testing.T) {
	t.Run("stale versions are dropped", func(t *testing.T) {
		ctx := t.Context()
		mirror := new(MockMirror)
		mirror.On("Save", mock.Anything, "k", []byte("v2")).Return(nil).Once()
		p := memory.NewPublisher("k", mirror, nil)

		p.Publish(ctx, 2, []byte("v2"))
		p.Publish(ctx, 1, []byte("v1"))

		mirror.AssertExpectations(t)
		assert.False(t, p.Dirty())
	})

	t.Run("failure leaves publisher dirty until a newer save succeeds", func(t *testing.T) {
		ctx := t.Context()
		mirror := new(MockMirror)
		mirror.On("Save", mock.Anything, "k", []byte("v1")).Return(errors.New("down")).Once()
		mirror.On("Save", mock.Anything, "k", []byte("v2")).Return(nil).Once()
		p := memory.NewPublisher("k", mirror, nil)

		p.Publish(ctx, 1, []byte("v1"))
		assert.True(t, p.Dirty())

		require.NoError(t, p.Flush(ctx, 2, []byte("v2")))
		assert.False(t, p.Dirty())
		mirror.AssertExpectations(t)
	})

	t.Run("nil mirror is a no-op", func(t *testing.T) {
		p := memory.NewPublisher("k", nil, nil)

		p.Publish(t.Context(), 1, []byte("v1"))
		require.NoError(t, p.Flush(t.Context(), 2, nil))
		assert.False(t, p.Dirty())

		_, found, err := p.Load(t.Context())
		require.NoError(t, err)
		assert.False(t, found)
	})

	t.Run("load maps not found", func(t *testing.T) {
		mirror := new(MockMirror)
		mirror.On("Load", mock.Anything, "k").Return(nil, errs.NewObjectNotFoundError("snapshot", "k")).Once()
		mirror.On("Load", mock.Anything, "k").Return(nil, errors.New("io")).Once()
		p := memory.NewPublisher("k", mirror, nil)

		_, found, err := p.Load(t.Context())
		require.NoError(t, err)
		assert.False(t, found)

		_, _, err = p.Load(t.Context())
		require.Error(t, err)
	})
}
