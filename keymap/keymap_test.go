package keymap

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLookupHomeRow(t *testing.T) {
	cases := []struct {
		key    string
		finger int
	}{
		{"a", LeftPinky},
		{"s", LeftRing},
		{"d", LeftMiddle},
		{"f", LeftIndex},
		{"g", LeftIndex},
		{"h", RightIndex},
		{"j", RightIndex},
		{"k", RightMiddle},
		{"l", RightRing},
		{";", RightPinky},
	}

	for _, c := range cases {
		t.Run(c.key, func(t *testing.T) {
			k, ok := Lookup(c.key)
			assert := assert.New(t)
			assert.True(ok)
			assert.Equal(c.finger, k.Finger)
			assert.Equal(RowHome, k.Row)
		})
	}
}

func TestLookupIsCaseInsensitive(t *testing.T) {
	upper, ok := Lookup("Q")
	assert.True(t, ok)
	lower, _ := Lookup("q")
	assert.Equal(t, lower, upper)
	assert.Equal(t, RowTop, upper.Row)
}

func TestUnknownKey(t *testing.T) {
	assert.False(t, Has("space"))
	assert.False(t, Has("1"))
}

func TestOffsetIncludesStagger(t *testing.T) {
	q, _ := Lookup("q")
	a, _ := Lookup("a")
	z, _ := Lookup("z")
	assert := assert.New(t)
	assert.Equal(0.0, q.Offset)
	assert.Equal(0.25, a.Offset)
	assert.Equal(0.75, z.Offset)
}

func TestHands(t *testing.T) {
	assert := assert.New(t)
	for f := LeftPinky; f <= LeftIndex; f++ {
		assert.Equal(Left, HandOf(f))
	}
	for f := RightIndex; f <= RightPinky; f++ {
		assert.Equal(Right, HandOf(f))
	}
	assert.Equal(FingerInfo(LeftPinky).Strength, FingerInfo(RightPinky).Strength)
}

func TestLanesAreMapped(t *testing.T) {
	assert.Len(t, Lanes, 7)
	for _, l := range Lanes {
		assert.True(t, Has(l), l)
	}
	assert.Len(t, Keys(), 30)
}
