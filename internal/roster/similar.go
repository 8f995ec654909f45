package roster

import (
	"fmt"
	"strings"

	"github.com/agnivade/levenshtein"
)

// Warning flags two roster entries that look like the same person.
type Warning struct {
	First    string
	Second   string
	Distance int
}

func (w Warning) String() string {
	if w.Distance == 0 {
		return fmt.Sprintf("duplicate entry %q", w.First)
	}
	return fmt.Sprintf("%q and %q look alike (distance %d)", w.First, w.Second, w.Distance)
}

// Check compares every pair of names case-insensitively and reports pairs
// within threshold edits. Names no longer than the distance are skipped so
// short initials are not all flagged against each other.
func Check(names []string, threshold int) []Warning {
	if threshold < 0 {
		return nil
	}
	folded := make([]string, len(names))
	for i, n := range names {
		folded[i] = strings.ToLower(strings.TrimSpace(n))
	}

	var out []Warning
	for i := 0; i < len(folded); i++ {
		for j := i + 1; j < len(folded); j++ {
			d := levenshtein.ComputeDistance(folded[i], folded[j])
			if d > threshold {
				continue
			}
			if d > 0 && d >= min(len([]rune(folded[i])), len([]rune(folded[j]))) {
				continue
			}
			out = append(out, Warning{First: names[i], Second: names[j], Distance: d})
		}
	}
	return out
}
