package generation

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCleanAndParse(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		raw      string
		expected string
		wantErr  bool
	}{
		{
			name:     "json fence",
			raw:      "```json\n[{\"outfitId\":\"o1\",\"items\":[]}]\n```",
			expected: `[{"outfitId":"o1","items":[]}]`,
		},
		{
			name:     "bare array",
			raw:      `[{"outfitId":"o1","items":[]}]`,
			expected: `[{"outfitId":"o1","items":[]}]`,
		},
		{
			name:     "surrounding whitespace",
			raw:      "  \n\t```json\n[{\"outfitId\":\"o1\",\"items\":[]}]\n```\n  ",
			expected: `[{"outfitId":"o1","items":[]}]`,
		},
		{
			name:     "object document",
			raw:      "```json\n{\"outfits\":[]}\n```",
			expected: `{"outfits":[]}`,
		},
		{
			name:     "plain fence falls back to span extraction",
			raw:      "```\n[{\"outfitId\":\"o1\",\"items\":[]}]\n```",
			expected: `[{"outfitId":"o1","items":[]}]`,
		},
		{
			name:     "commentary before the json",
			raw:      "Here are your outfits:\n[{\"outfitId\":\"o1\",\"items\":[]}]\nEnjoy!",
			expected: `[{"outfitId":"o1","items":[]}]`,
		},
		{
			name:    "not json",
			raw:     "not json",
			wantErr: true,
		},
		{
			name:    "empty reply",
			raw:     "   ",
			wantErr: true,
		},
		{
			name:    "truncated array",
			raw:     "```json\n[{\"outfitId\":\"o1\",\"items\":[\n```",
			wantErr: true,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			doc, err := CleanAndParse(tc.raw)
			if tc.wantErr {
				require.Error(t, err)
				assert.True(t, errors.Is(err, ErrMalformedOutput), "error should wrap ErrMalformedOutput")
				assert.Nil(t, doc)
				return
			}

			require.NoError(t, err)
			assert.JSONEq(t, tc.expected, string(doc))
		})
	}
}

func TestCleanAndParseFencedMatchesUnfenced(t *testing.T) {
	t.Parallel()

	body := "[\n  {\"outfitId\": \"outfit_1\", \"items\": [{\"name\": \"Classic Black T-shirt\", \"productId\": \"B-TS-001\"}]}\n]"

	plain, err := CleanAndParse(body)
	require.NoError(t, err)

	fenced, err := CleanAndParse("```json\n" + body + "\n```")
	require.NoError(t, err)

	assert.Equal(t, string(plain), string(fenced))
}

func TestCleanAndParseStripsOnce(t *testing.T) {
	t.Parallel()

	// Only one outer fence pair is removed, so a doubled fence is still
	// rejected by the literal strategy but recovered by span extraction.
	doc, err := CleanAndParse("```json\n```json\n[1]\n```\n```")
	require.NoError(t, err)
	assert.JSONEq(t, `[1]`, string(doc))
}

func TestExtractJSONSpan(t *testing.T) {
	t.Parallel()

	span, ok := extractJSONSpan("x [1, [2]] y")
	require.True(t, ok)
	assert.Equal(t, "[1, [2]]", span)

	span, ok = extractJSONSpan(`note {"a": 1} end`)
	require.True(t, ok)
	assert.Equal(t, `{"a": 1}`, span)

	_, ok = extractJSONSpan("no brackets here")
	assert.False(t, ok)

	_, ok = extractJSONSpan("] backwards [")
	assert.False(t, ok)
}
