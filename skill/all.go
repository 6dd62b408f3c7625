package skill

// All returns one fresh instance of every skill, in the fixed reporting order.
func All() []*Skill {
	return []*Skill{
		New(NewStream()),
		New(NewJack()),
		New(NewChord()),
		New(NewPrecision()),
		New(NewErgonomics()),
		New(NewDisplacement()),
		New(NewStamina()),
	}
}
