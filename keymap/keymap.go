// Package keymap holds the physical keyboard model: which finger strikes
// each key, on which row, and how far across the row it sits.
package keymap

import "strings"

type Hand int

const (
	Left Hand = iota
	Right
)

func (h Hand) String() string {
	if h == Left {
		return "left"
	}
	return "right"
}

// Finger ids, left pinky to right pinky.
const (
	LeftPinky = iota
	LeftRing
	LeftMiddle
	LeftIndex
	RightIndex
	RightMiddle
	RightRing
	RightPinky
	NumFingers
)

// Keyboard rows.
const (
	RowTop = iota
	RowHome
	RowBottom
)

type Key struct {
	Finger int
	Row    int
	// Horizontal position in key widths, including row stagger.
	Offset float64
}

type Finger struct {
	Hand     Hand
	Strength float64
}

// Lanes is the default 7-key layout.
var Lanes = []string{"a", "s", "d", "f", "j", "k", "l"}

var rows = [3]string{
	"qwertyuiop",
	"asdfghjkl;",
	"zxcvbnm,./",
}

var stagger = [3]float64{0, 0.25, 0.75}

var columnFinger = [10]int{
	LeftPinky, LeftRing, LeftMiddle, LeftIndex, LeftIndex,
	RightIndex, RightIndex, RightMiddle, RightRing, RightPinky,
}

var fingers = [NumFingers]Finger{
	{Left, 0.6}, {Left, 0.75}, {Left, 1.0}, {Left, 1.0},
	{Right, 1.0}, {Right, 1.0}, {Right, 0.75}, {Right, 0.6},
}

var keys = buildKeys()

func buildKeys() map[string]Key {
	res := make(map[string]Key, 30)
	for r, chars := range rows {
		for c, ch := range chars {
			res[string(ch)] = Key{
				Finger: columnFinger[c],
				Row:    r,
				Offset: float64(c) + stagger[r],
			}
		}
	}
	return res
}

// Lookup is case-insensitive.
func Lookup(key string) (Key, bool) {
	k, ok := keys[strings.ToLower(key)]
	return k, ok
}

func Has(key string) bool {
	_, ok := Lookup(key)
	return ok
}

// FingerInfo panics on an id outside [0, NumFingers).
func FingerInfo(id int) Finger {
	return fingers[id]
}

func HandOf(finger int) Hand {
	return fingers[finger].Hand
}

// Keys returns every mapped key, row by row.
func Keys() []string {
	var res []string
	for _, chars := range rows {
		for _, ch := range chars {
			res = append(res, string(ch))
		}
	}
	return res
}
