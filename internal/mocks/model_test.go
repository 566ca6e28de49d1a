package mocks

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMockModel(t *testing.T) {
	t.Parallel()

	t.Run("default values", func(t *testing.T) {
		m := &MockModel{Reply: "[]"}

		reply, err := m.Generate(context.Background(), "first")
		require.NoError(t, err)
		assert.Equal(t, "[]", reply)
		assert.Equal(t, 1, m.CallCount())
		assert.Equal(t, "first", m.LastPrompt())
	})

	t.Run("custom function", func(t *testing.T) {
		boom := errors.New("boom")
		m := &MockModel{GenerateFn: func(ctx context.Context, prompt string) (string, error) {
			return "", boom
		}}

		_, err := m.Generate(context.Background(), "p")
		assert.ErrorIs(t, err, boom)
	})

	t.Run("no calls", func(t *testing.T) {
		m := &MockModel{}
		assert.Equal(t, 0, m.CallCount())
		assert.Equal(t, "", m.LastPrompt())
	})
}
