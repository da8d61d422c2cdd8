package ocr

import (
	"sort"
	"strings"
)

// lineTolerance is the vertical distance in pixels within which two words
// belong to the same line.
const lineTolerance = 10

// Word is a single recognized token anchored at the top-left corner of its
// bounding box.
type Word struct {
	X    int
	Y    int
	Text string
}

// FormatLines rebuilds the reading order of recognized words: top to bottom,
// then left to right, with words within tol pixels of the line's anchor
// merged into one line. Words in a line are joined by spaces, lines by
// newlines.
func FormatLines(words []Word, tol int) string {
	if len(words) == 0 {
		return ""
	}

	sorted := make([]Word, len(words))
	copy(sorted, words)
	sort.SliceStable(sorted, func(i, j int) bool {
		if sorted[i].Y != sorted[j].Y {
			return sorted[i].Y < sorted[j].Y
		}
		return sorted[i].X < sorted[j].X
	})

	var lines []string
	current := []string{sorted[0].Text}
	currentY := sorted[0].Y

	for _, w := range sorted[1:] {
		if abs(w.Y-currentY) > tol {
			lines = append(lines, strings.Join(current, " "))
			current = []string{w.Text}
			currentY = w.Y
			continue
		}
		current = append(current, w.Text)
	}
	lines = append(lines, strings.Join(current, " "))

	return strings.Join(lines, "\n")
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}
