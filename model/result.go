package model

// Skill names, in the order they are computed and reported.
const (
	SkillStream = "stream"
	SkillJack   = "jack"
	SkillChord  = "chord"
	SkillPrec   = "prec"
	SkillErgo   = "ergo"
	SkillDisp   = "disp"
	SkillStam   = "stam"
)

var SkillNames = []string{SkillStream, SkillJack, SkillChord, SkillPrec, SkillErgo, SkillDisp, SkillStam}

type Details struct {
	Stream float64 `json:"stream"`
	Jack   float64 `json:"jack"`
	Chord  float64 `json:"chord"`
	Prec   float64 `json:"prec"`
	Ergo   float64 `json:"ergo"`
	Disp   float64 `json:"disp"`
	Stam   float64 `json:"stam"`
}

// Values returns the details in SkillNames order.
func (d Details) Values() []float64 {
	return []float64{d.Stream, d.Jack, d.Chord, d.Prec, d.Ergo, d.Disp, d.Stam}
}

// Set assigns the value for the named skill. Unknown names are ignored.
func (d *Details) Set(name string, v float64) {
	switch name {
	case SkillStream:
		d.Stream = v
	case SkillJack:
		d.Jack = v
	case SkillChord:
		d.Chord = v
	case SkillPrec:
		d.Prec = v
	case SkillErgo:
		d.Ergo = v
	case SkillDisp:
		d.Disp = v
	case SkillStam:
		d.Stam = v
	}
}

type Metadata struct {
	DrainTime     float64 `json:"drainTime"`
	FirstNoteTime float64 `json:"firstNoteTime"`
}

type StrainResult struct {
	Total    float64              `json:"total"`
	Details  Details              `json:"details"`
	Metadata *Metadata            `json:"metadata,omitempty"`
	Peaks    map[string][]float64 `json:"peaks,omitempty"`
}
