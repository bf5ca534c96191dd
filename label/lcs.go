// Package label: the token-wise common-subsequence kernel behind Decompose
// and FactorTuples. Token sequences are mapped onto private-use runes and
// diffed; the equal regions of a Myers diff form a longest common
// subsequence of the two sequences.

package label

import "github.com/sergi/go-diff/diffmatchpatch"

// Private-use rune ranges used to encode tokens. The BMP block covers 6400
// distinct tokens; larger vocabularies spill into Plane 15. Groups beyond
// ~72k distinct tokens are out of scope for axis labels.
const (
	puaStart  = rune(0xE000)
	puaEnd    = rune(0xF8FF)
	pua15     = rune(0xF0000)
	pua15End  = rune(0xFFFFD)
	puaBudget = int(puaEnd-puaStart) + 1 + int(pua15End-pua15) + 1
)

// tokenCoder interns tokens as runes for the lifetime of one factoring
// request. No state survives the call (bounded, request-scoped by design).
type tokenCoder struct {
	codes  map[string]rune
	decode map[rune]string
	next   rune
}

func newTokenCoder() *tokenCoder {
	return &tokenCoder{
		codes:  make(map[string]rune),
		decode: make(map[rune]string),
		next:   puaStart,
	}
}

// encode maps each token of seq to its interned rune, allocating fresh runes
// as needed, and returns the rune string. Returns ok=false when the
// private-use budget is exhausted (callers then fall back).
func (c *tokenCoder) encode(seq []string) (string, bool) {
	out := make([]rune, len(seq))
	for i, t := range seq {
		r, ok := c.codes[t]
		if !ok {
			if len(c.codes) >= puaBudget {
				return "", false
			}
			r = c.next
			c.codes[t] = r
			c.decode[r] = t
			if c.next == puaEnd {
				c.next = pua15
			} else {
				c.next++
			}
		}
		out[i] = r
	}

	return string(out), true
}

// lcsPair returns the longest common token subsequence of a and b, derived
// from the equal regions of a character diff over the interned encodings.
func lcsPair(dmp *diffmatchpatch.DiffMatchPatch, c *tokenCoder, a, b []string) []string {
	if len(a) == 0 || len(b) == 0 {
		return nil
	}
	ea, okA := c.encode(a)
	eb, okB := c.encode(b)
	if !okA || !okB {
		return nil
	}
	var keep []string
	for _, d := range dmp.DiffMain(ea, eb, false) {
		if d.Type != diffmatchpatch.DiffEqual {
			continue
		}
		for _, r := range d.Text {
			keep = append(keep, c.decode[r])
		}
	}

	return keep
}

// commonSubsequence folds lcsPair across the whole group, returning the
// token subsequence shared by every member (nil when none exists).
// Complexity: O(g · pairwise diff) for a group of g sequences.
func commonSubsequence(group [][]string) []string {
	if len(group) == 0 {
		return nil
	}
	dmp := diffmatchpatch.New()
	c := newTokenCoder()
	cur := group[0]
	for _, next := range group[1:] {
		cur = lcsPair(dmp, c, cur, next)
		if len(cur) == 0 {
			return nil
		}
	}

	return cur
}
