package skill

import (
	"math"
	"testing"

	"github.com/jsphweid/stardex/keymap"
	"github.com/stretchr/testify/assert"
)

func TestStreamStrainFormula(t *testing.T) {
	assert := assert.New(t)
	assert.Equal(0.0, streamStrain(9, 1))
	assert.InDelta(7.0, streamStrain(18, 1), 1e-12)
	// comfortable rolls are discounted hard
	assert.Equal(0.0, streamStrain(18, 0.5))
	assert.InDelta(math.Log2(18*0.8/9)*7, streamStrain(18, 0.8), 1e-12)
	// awkward patterns are not boosted
	assert.InDelta(7.0, streamStrain(18, 1.45), 1e-12)
}

func TestStreamScoresJumps(t *testing.T) {
	s := NewStream()
	ctx := NewContext()

	a := rowAt(0, "a")
	assert.Equal(t, 0.0, s.NoteStrain(a, nil, ctx))
	ctx.Fingers.Update(keymap.LeftPinky, 0, keymap.RowHome, 0.25, 0)

	f := rowAt(50, "f")
	assert.InDelta(t, math.Log2(20.0/9)*7, s.NoteStrain(f, &a, ctx), 1e-12)
}

func TestStreamIgnoresJacksAndChords(t *testing.T) {
	s := NewStream()
	ctx := NewContext()
	ctx.Fingers.Update(keymap.LeftIndex, 0, keymap.RowHome, 3.25, 0)

	prev := rowAt(0, "f")
	assert.Equal(t, 0.0, s.NoteStrain(rowAt(55, "f"), &prev, ctx))

	chord := rowAt(110, "d", "k")
	assert.Equal(t, 0.0, s.NoteStrain(chord, &prev, ctx))
}

func TestJackStrainWindow(t *testing.T) {
	assert := assert.New(t)
	assert.InDelta(math.Pow(1/0.08-5, 2.5)/15, jackStrain(0.08), 1e-12)
	assert.Equal(0.0, jackStrain(0.3))
	assert.Equal(0.0, jackStrain(0.18))
	assert.Equal(0.0, jackStrain(0.01))
	// capped at 18 nps
	assert.InDelta(math.Pow(13, 2.5)/15, jackStrain(0.05), 1e-12)
	// just inside the window, barely above 5 nps
	assert.InDelta(math.Pow(1/0.179-5, 2.5)/15, jackStrain(0.179), 1e-12)
	assert.Greater(jackStrain(0.179), 0.0)
	assert.Equal(0.0, jackStrain(0.2))
}

func TestJackNoteStrain(t *testing.T) {
	j := NewJack()
	ctx := NewContext()

	first := rowAt(920, "f")
	assert.Equal(t, 0.0, j.NoteStrain(first, nil, ctx))
	ctx.Fingers.Update(keymap.LeftIndex, 920, keymap.RowHome, 3.25, 0)

	second := rowAt(1000, "f", "j")
	assert.InDelta(t, math.Pow(7.5, 2.5)/15, j.NoteStrain(second, &first, ctx), 1e-9)
}

func TestChordNeedsDensity(t *testing.T) {
	c := NewChord()
	ctx := NewContext()

	prev := rowAt(0, "a")
	c.NoteStrain(prev, nil, ctx)
	cur := rowAt(100, "s")
	assert.Equal(t, 0.0, c.NoteStrain(cur, &prev, ctx))
}

func TestChordStrain(t *testing.T) {
	c := NewChord()
	ctx := NewContext()

	prev := rowAt(0, "a", "s")
	assert.Equal(t, 0.0, c.NoteStrain(prev, nil, ctx))
	cur := rowAt(100, "d", "f")
	want := math.Pow(2, 1.8) * math.Pow(10, 1.1) * 0.20
	assert.InDelta(t, want, c.NoteStrain(cur, &prev, ctx), 1e-9)
}

func TestRatioCost(t *testing.T) {
	cases := []struct {
		name string
		a, b float64
		want float64
	}{
		{"even", 100, 100, 0},
		{"double", 50, 100, 0.5},
		{"quad", 100, 25, 1.0},
		{"dotted", 150, 100, 8.0},
		{"triplet", 133, 100, 12.0},
		{"irregular", 170, 100, 25.0},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			assert.Equal(t, c.want, ratioCost(c.a, c.b))
		})
	}
}

func TestRhythmEntropy(t *testing.T) {
	assert := assert.New(t)
	assert.Equal(0.0, rhythmEntropy([]float64{100}))
	assert.InDelta(1.0, rhythmEntropy([]float64{100, 50, 100}), 1e-12)
}

func TestPrecisionStrain(t *testing.T) {
	p := NewPrecision()
	ctx := NewContext()

	r0, r1, r2 := rowAt(0, "a"), rowAt(100, "s"), rowAt(200, "d")
	assert := assert.New(t)
	assert.Equal(0.0, p.NoteStrain(r0, nil, ctx))
	assert.Equal(0.0, p.NoteStrain(r1, &r0, ctx))
	assert.Equal(0.0, p.NoteStrain(r2, &r1, ctx))

	// 100 -> 50ms gap: doubling cost plus entropy over [100 100 50]
	r3 := rowAt(250, "f")
	want := (0.5 + math.Pow(0.5, 3)*35) * math.Pow(20.0/4, 0.6)
	assert.InDelta(want, p.NoteStrain(r3, &r2, ctx), 1e-9)

	// a long gap resets the rhythm history
	r4 := rowAt(600, "j")
	assert.Equal(0.0, p.NoteStrain(r4, &r3, ctx))
	assert.Equal(0, p.deltas.Len())
}

func TestErgonomicsAwkwardnessAndInterference(t *testing.T) {
	e := NewErgonomics()
	ctx := NewContext()

	first := rowAt(0, "a")
	assert.Equal(t, 0.0, e.NoteStrain(first, nil, ctx))
	ctx.Fingers.Update(keymap.LeftMiddle, 0, keymap.RowHome, 2.25, 1000)

	// pinky to index is a jump (1.45) and the middle finger is pinned by a hold
	second := rowAt(100, "f")
	assert.InDelta(t, 4.5+5.0, e.NoteStrain(second, &first, ctx), 1e-9)
}

func TestInterferenceDistance(t *testing.T) {
	ctx := NewContext()
	ctx.Fingers.Update(keymap.LeftPinky, 0, keymap.RowHome, 0.25, 1000)
	ctx.Fingers.Update(keymap.RightIndex, 0, keymap.RowHome, 6.25, 1000)

	assert := assert.New(t)
	assert.Equal(2.0, interference(keymap.LeftIndex, ctx, 100))
	assert.Equal(5.0, interference(keymap.LeftRing, ctx, 100))
	// within 20ms of release no longer counts
	assert.Equal(0.0, interference(keymap.LeftIndex, ctx, 985))
}

func TestDisplacementQuickReuse(t *testing.T) {
	d := NewDisplacement()
	ctx := NewContext()
	ctx.Fingers.Update(keymap.LeftIndex, 0, keymap.RowHome, 3.25, 0)

	prev := rowAt(0, "f")
	assert.InDelta(t, 4*(250.0/100)*2, d.NoteStrain(rowAt(100, "t"), &prev, ctx), 1e-9)
	assert.InDelta(t, 4*(250.0/40)*2, d.NoteStrain(rowAt(20, "v"), &prev, ctx), 1e-9)
}

func TestDisplacementSlowReuse(t *testing.T) {
	d := NewDisplacement()
	ctx := NewContext()
	ctx.Fingers.Update(keymap.LeftIndex, 0, keymap.RowTop, 4, 0)

	prev := rowAt(0, "t")
	assert := assert.New(t)
	assert.InDelta(4.0, d.NoteStrain(rowAt(300, "v"), &prev, ctx), 1e-9)
	// idle long enough to return home first
	assert.InDelta(1.2, d.NoteStrain(rowAt(700, "v"), &prev, ctx), 1e-9)
	assert.Equal(0.0, d.NoteStrain(rowAt(700, "f"), &prev, ctx))
}

func TestDisplacementStairs(t *testing.T) {
	d := NewDisplacement()
	ctx := NewContext()

	prev := rowAt(0, "j")
	assert.InDelta(t, 1.2*3*1.35, d.NoteStrain(rowAt(500, "q", "w", "e"), &prev, ctx), 1e-9)
}

func TestStaminaStrain(t *testing.T) {
	s := NewStamina()
	ctx := NewContext()

	prev := rowAt(0, "a")
	assert := assert.New(t)
	assert.Equal(0.0, s.NoteStrain(prev, nil, ctx))
	assert.InDelta((10-5)*0.15, s.NoteStrain(rowAt(100, "s"), &prev, ctx), 1e-9)
	assert.Equal(0.0, s.NoteStrain(rowAt(500, "s"), &prev, ctx))
	assert.InDelta((2*math.Pow(2, 1.8)-5)*0.15, s.NoteStrain(rowAt(500, "s", "k"), &prev, ctx), 1e-9)
}
