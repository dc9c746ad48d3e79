package ini

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSectionCaseInsensitivity(t *testing.T) {
	s := NewSection()
	s.Set("Key", "v")

	assert.Equal(t, "v", s.Get("key", ""))
	assert.Equal(t, "v", s.Get("KEY", ""))
	assert.True(t, s.HasKey("kEy"))
	assert.Equal(t, []string{"key"}, s.Keys(), "keys are stored lowercased")
}

func TestSectionGetDefaults(t *testing.T) {
	s := NewSection()

	assert.Equal(t, "fallback", s.Get("missing", "fallback"))
	assert.Equal(t, []string{"d"}, s.GetStrings("missing", []string{"d"}))

	// A present key with no elements returns the default for Get but an
	// empty slice for GetStrings.
	s.Value("empty")
	assert.Equal(t, "fallback", s.Get("empty", "fallback"))
	assert.Nil(t, s.GetStrings("empty", []string{"d"}))
}

func TestSectionSetReplaces(t *testing.T) {
	s := NewSection()
	s.SetStrings("k", []string{"a", "b"})
	s.Set("k", "only")

	assert.Equal(t, []string{"only"}, s.GetStrings("k", nil))
	assert.Equal(t, 1, s.KeyCount())
}

func TestSectionRemoveKeyIdempotent(t *testing.T) {
	s := NewSection()
	s.Set("k", "v")

	assert.True(t, s.RemoveKey("K"))
	assert.False(t, s.RemoveKey("k"), "second removal reports absence")
	assert.False(t, s.HasKey("k"))
}

func TestSectionClear(t *testing.T) {
	s := NewSection()
	s.Set("a", "1")
	s.Set("b", "2")

	s.Clear()
	assert.Equal(t, 0, s.KeyCount())
	assert.Empty(t, s.Keys())

	// Section remains usable after clearing.
	s.Set("c", "3")
	assert.Equal(t, 1, s.KeyCount())
}

func TestSectionAccessAsymmetry(t *testing.T) {
	s := NewSection()

	// Read-only access to an absent key fails.
	_, err := s.Lookup("missing")
	assert.ErrorIs(t, err, ErrKeyNotFound)

	// Mutable access heals the absence with an empty value.
	v := s.Value("missing")
	require.NotNil(t, v)
	assert.Equal(t, 0, v.Len())
	assert.True(t, s.HasKey("missing"))

	got, err := s.Lookup("MISSING")
	require.NoError(t, err)
	assert.Same(t, v, got)
}

func TestSectionKeyOrder(t *testing.T) {
	s := NewSection()
	s.Set("zeta", "1")
	s.Set("alpha", "2")
	s.Set("mid", "3")
	s.Set("Zeta", "updated") // overwrite keeps original position

	assert.Equal(t, []string{"zeta", "alpha", "mid"}, s.Keys())

	s.RemoveKey("alpha")
	assert.Equal(t, []string{"zeta", "mid"}, s.Keys())
}
