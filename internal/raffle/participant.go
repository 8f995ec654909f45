package raffle

// Participant is one roster entry. Identity is its position in the roster
// plus its name.
type Participant struct {
	Name     string
	IsWinner bool
}

func (p Participant) String() string {
	if p.IsWinner {
		return "🎁 " + p.Name
	}
	return p.Name
}

// Participants builds a roster from names, in order.
func Participants(names []string) []Participant {
	out := make([]Participant, 0, len(names))
	for _, name := range names {
		out = append(out, Participant{Name: name})
	}
	return out
}
