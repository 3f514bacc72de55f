package selector

import (
	"sort"
	"strings"
	"sync"

	"github.com/junegunn/fzf/src/algo"
	"github.com/junegunn/fzf/src/util"
	"github.com/samber/lo"
)

// Slab sizes matching fzf's own matcher defaults
const (
	slab16Size = 100 * 1024
	slab32Size = 2048
)

var initAlgo sync.Once

// Rank returns the indices of the candidates matching query, best match
// first. Equal scores keep candidate order. An empty query matches every
// candidate in order. Matching is case-insensitive, and a query without
// accents also matches accented candidates.
func Rank(query string, candidates []string) []int {
	query = strings.TrimSpace(query)
	if query == "" {
		return lo.Range(len(candidates))
	}

	initAlgo.Do(func() { algo.Init("default") })

	pattern := []rune(strings.ToLower(query))
	// Accents in the query turn normalization off, as in fzf's pattern parser
	normalize := string(algo.NormalizeRunes(pattern)) == string(pattern)
	slab := util.MakeSlab(slab16Size, slab32Size)

	type match struct {
		index int
		score int
	}
	var matches []match
	for i, candidate := range candidates {
		chars := util.ToChars([]byte(candidate))
		result, _ := algo.FuzzyMatchV2(false, normalize, true, &chars, pattern, false, slab)
		if result.Start < 0 {
			continue
		}
		matches = append(matches, match{index: i, score: result.Score})
	}

	sort.SliceStable(matches, func(i, j int) bool {
		return matches[i].score > matches[j].score
	})

	return lo.Map(matches, func(m match, _ int) int { return m.index })
}
