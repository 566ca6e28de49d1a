package service

import (
	"errors"
	"testing"

	"github.com/phrazzld/outfit-api/internal/generation"
	"github.com/stretchr/testify/assert"
)

func TestNewOutfitServiceError(t *testing.T) {
	t.Parallel()

	assert.Nil(t, NewOutfitServiceError(OpGenerate, "ignored", nil))

	err := NewOutfitServiceError(OpParseReply, "failed to parse model reply", generation.ErrMalformedOutput)
	assert.EqualError(t, err,
		"outfit service parse_reply failed: failed to parse model reply: language model output is not valid JSON")
	assert.True(t, errors.Is(err, generation.ErrMalformedOutput))

	bare := &OutfitServiceError{Operation: OpGenerate, Message: "no reply"}
	assert.EqualError(t, bare, "outfit service generate failed: no reply")
	assert.Nil(t, bare.Unwrap())
}
