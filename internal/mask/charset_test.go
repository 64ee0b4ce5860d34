package mask

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCharSetContains(t *testing.T) {
	assert.True(t, AllChars.IsUniversal())
	assert.True(t, AllChars.Contains('x'))
	assert.True(t, NewCharSet("").IsUniversal())

	assert.True(t, Digits.Contains('7'))
	assert.False(t, Digits.Contains('a'))
	assert.False(t, Digits.Contains('٣'), "only ASCII digits")

	assert.True(t, Letters.Contains('ż'))
	assert.False(t, Letters.Contains('1'))

	assert.True(t, HexDigits.Contains('F'))
	assert.False(t, HexDigits.Contains('g'))

	custom := NewCharSet("+-")
	assert.True(t, custom.Contains('+'))
	assert.False(t, custom.Contains('*'))
}

func TestUnion(t *testing.T) {
	set := Union(Digits, NewCharSet("xX"))
	assert.True(t, set.Contains('3'))
	assert.True(t, set.Contains('X'))
	assert.False(t, set.Contains('y'))

	assert.True(t, Union(Digits, AllChars).IsUniversal())
	assert.True(t, Union().IsUniversal())
	assert.True(t, Alphanumeric.Contains('q'))
	assert.True(t, Alphanumeric.Contains('0'))
}

func TestParseCharClass(t *testing.T) {
	set, err := ParseCharClass(" Digits ")
	require.NoError(t, err)
	assert.True(t, set.Contains('1'))
	assert.False(t, set.Contains('a'))

	set, err = ParseCharClass("all")
	require.NoError(t, err)
	assert.True(t, set.IsUniversal())

	_, err = ParseCharClass("emoji")
	assert.Error(t, err)
}
