/*
Phase 2 candidate enumeration (spec §4.4).

Two independent families are generated from a parent's direct element
children C:

  - singleElementCandidates: maximal same-tag runs of length >= 2,
    accepted when their child patterns share a common prefix of length
    >= cfg.MinCommonPrefixLength.
  - multiElementCandidates: the best L-gram repetition run for this C
    at each pattern length L in [2, min(floor(n/2),
    cfg.MaxPatternLength)], one candidate per L. Phase 4 selects
    globally across the whole document, so a parent that admits both,
    say, an L=2/k=4 run and an L=4/k=2 run over the same elements must
    hand both to Phase 4 rather than pick a local winner between them.
*/
package siblings

import (
	"strings"

	"github.com/htmlshape/htmlshape/internal/config"
	"github.com/htmlshape/htmlshape/internal/dom"
	"github.com/htmlshape/htmlshape/pkg/hashutil"
	"golang.org/x/net/html"
)

func singleElementCandidates(children []*html.Node, inArticle bool, parentDepth, sourcePos int, cfg config.Config) []Group {
	var out []Group
	n := len(children)
	i := 0
	for i < n {
		j := i
		for j+1 < n && children[j+1].Data == children[i].Data {
			j++
		}
		runLen := j - i + 1
		if runLen >= 2 {
			patterns := make([][]string, runLen)
			for k := 0; k < runLen; k++ {
				patterns[k] = dom.ChildPattern(children[i+k])
			}
			prefixLen := dom.CommonPrefixLen(patterns)
			if prefixLen >= cfg.MinCommonPrefixLength() {
				items := make([][]*html.Node, runLen)
				for k := 0; k < runLen; k++ {
					items[k] = []*html.Node{children[i+k]}
				}
				out = append(out, Group{
					InArticle:   inArticle,
					PatternLen:  prefixLen,
					Items:       items,
					parentDepth: parentDepth,
					sourcePos:   sourcePos,
				})
			}
		}
		i = j + 1
	}
	return out
}

// multiElementCandidates searches every pattern length L independently
// and returns the best L-gram repetition run found at each L, provided
// it repeats at least twice. Ranking within a single L is by item
// count (k) first, then earliest start, since L is fixed for that
// candidate; there is no ranking across different L values here — that
// is Phase 4's job, once every L's best run is on the table.
func multiElementCandidates(children []*html.Node, inArticle bool, parentDepth, sourcePos int, cfg config.Config) []Group {
	n := len(children)
	maxL := n / 2
	if maxL > cfg.MaxPatternLength() {
		maxL = cfg.MaxPatternLength()
	}
	if maxL < 2 {
		return nil
	}

	tags := make([]string, n)
	patterns := make([][]string, n)
	for i, c := range children {
		tags[i] = c.Data
		patterns[i] = dom.ChildPattern(c)
	}

	var out []Group
	for L := 2; L <= maxL; L++ {
		sigs := windowSignatures(tags, L)
		var bestStart, bestK int
		found := false
		for s := 0; s+L <= n; s++ {
			k := runRepetitions(tags, patterns, sigs, s, L, n)
			if k < 2 {
				continue
			}
			if !found || k > bestK || (k == bestK && s < bestStart) {
				found = true
				bestStart = s
				bestK = k
			}
		}
		if !found {
			continue
		}

		items := make([][]*html.Node, bestK)
		for m := 0; m < bestK; m++ {
			start := bestStart + m*L
			items[m] = append([]*html.Node{}, children[start:start+L]...)
		}

		out = append(out, Group{
			InArticle:   inArticle,
			PatternLen:  L,
			Items:       items,
			parentDepth: parentDepth,
			sourcePos:   sourcePos,
		})
	}

	return out
}

// runRepetitions counts how many consecutive, non-overlapping
// repetitions of the L-gram starting at s exist: the window at s
// always counts as repetition 1, additional repetitions require an
// exact tag match and a child-pattern common prefix >= 1 for every
// corresponding element pair.
func runRepetitions(tags []string, patterns [][]string, sigs []string, s, L, n int) int {
	k := 1
	for {
		next := s + k*L
		if next+L > n {
			break
		}
		if sigs[next] != sigs[s] {
			break
		}
		matches := true
		for idx := 0; idx < L; idx++ {
			a, b := s+idx, next+idx
			if tags[a] != tags[b] {
				matches = false
				break
			}
			if dom.CommonPrefixLen([][]string{patterns[a], patterns[b]}) < 1 {
				matches = false
				break
			}
		}
		if !matches {
			break
		}
		k++
	}
	return k
}

// windowSignatures hashes the tag sequence of every length-L window
// starting at each index, so runRepetitions can reject an obvious
// tag-sequence mismatch in O(1) before paying for the element-by-element
// inner-structure check.
func windowSignatures(tags []string, l int) []string {
	sigs := make([]string, len(tags))
	for i := range tags {
		end := i + l
		if end > len(tags) {
			end = len(tags)
		}
		sig, err := hashutil.HashBytes([]byte(strings.Join(tags[i:end], "\x00")), hashutil.HashAlgoBLAKE3)
		if err != nil {
			sig = strings.Join(tags[i:end], "\x00")
		}
		sigs[i] = sig
	}
	return sigs
}
