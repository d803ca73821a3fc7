package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFold(t *testing.T) {
	assert.Equal(t, "doom.exe", Fold("DOOM.exe"))
	assert.Equal(t, "ведьмак 3", Fold("  ВЕДЬМАК 3 "))
	assert.Equal(t, "", Fold("   "))
	// Decomposed e + combining acute folds to the composed form.
	assert.Equal(t, Fold("CAF\u00c9"), Fold("cafe\u0301"))
}

func TestLexicon(t *testing.T) {
	lex := NewLexicon([]string{"Stardew Valley", "stardew valley", "", "  ", "Hades"})

	assert.Equal(t, 2, lex.Len())
	assert.True(t, lex.Has("STARDEW VALLEY"))
	assert.True(t, lex.Has("hades"))
	assert.False(t, lex.Has("hade"))
	assert.Equal(t, []string{"hades", "stardew valley"}, lex.Titles())
}

func TestZeroLexicon(t *testing.T) {
	var lex Lexicon
	assert.Equal(t, 0, lex.Len())
	assert.False(t, lex.Has("anything"))
	assert.Empty(t, lex.Titles())
}

func TestBucketText(t *testing.T) {
	for _, b := range AllBuckets {
		text, err := b.MarshalText()
		assert.NoError(t, err)

		var got Bucket
		assert.NoError(t, got.UnmarshalText(text))
		assert.Equal(t, b, got)
	}

	_, err := ParseBucket("attic")
	assert.ErrorIs(t, err, ErrBucketUnknown)
}
