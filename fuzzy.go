package deepsim

import (
	"math"
	"unicode/utf8"

	diffpatch "github.com/sergi/go-diff/diffmatchpatch"
)

// ratio scores the similarity of two strings from 0 (nothing in common) to
// 100 (identical) as 2*M/T, where M is the count of runes the strings share
// in order & T is the combined rune count of both strings. ratio(a, b) always
// equals ratio(b, a)
func ratio(a, b string) int {
	if a == b {
		return 100
	}
	total := utf8.RuneCountInString(a) + utf8.RuneCountInString(b)

	// diffing always runs in one order, and without a deadline, so the
	// shared-rune count can't depend on argument order or timing
	if a > b {
		a, b = b, a
	}
	dmp := diffpatch.New()
	dmp.DiffTimeout = 0

	matched := 0
	for _, d := range dmp.DiffMain(a, b, false) {
		if d.Type == diffpatch.DiffEqual {
			matched += utf8.RuneCountInString(d.Text)
		}
	}
	return int(math.Round(200 * float64(matched) / float64(total)))
}
