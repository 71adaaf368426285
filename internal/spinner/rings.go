package spinner

import "strings"

// Ring is one band of text wrapped around a cylinder.
// Its fragments are concatenated without separators.
type Ring []string

// Text returns the label rendered onto the ring.
func (r Ring) Text() string {
	return strings.Join(r, "")
}

// DefaultRings returns the compiled-in ring stack.
func DefaultRings() []Ring {
	const word = "WEB-KONCEPT"
	return []Ring{
		{word, word, word},
		{word, word},
		{word, word, word},
		{word, word},
	}
}

// ParseRings builds rings from config lines. Fragments within a line are
// separated by '|'; blank lines are skipped.
func ParseRings(lines []string) []Ring {
	var rings []Ring
	for _, line := range lines {
		if strings.TrimSpace(line) == "" {
			continue
		}
		rings = append(rings, Ring(strings.Split(line, "|")))
	}
	return rings
}
