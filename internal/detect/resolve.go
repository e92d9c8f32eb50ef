package detect

import (
	"slices"
	"sort"

	"github.com/suryansh-23/secretsieve/internal/matcher"
)

// resolveOverlaps keeps a set of pairwise disjoint candidates. Candidates are
// taken in priority order and accepted when they do not intersect anything
// already accepted, so the outcome does not depend on input order. The result
// is sorted by (start, end).
func resolveOverlaps(candidates []matcher.Candidate) []matcher.Candidate {
	if len(candidates) == 0 {
		return nil
	}
	ranked := slices.Clone(candidates)
	sort.SliceStable(ranked, func(i, j int) bool {
		return outranks(ranked[i], ranked[j])
	})

	accepted := make([]matcher.Candidate, 0, len(ranked))
	for _, cand := range ranked {
		idx := sort.Search(len(accepted), func(i int) bool {
			return accepted[i].Start >= cand.Start
		})
		if idx < len(accepted) && intersects(accepted[idx], cand) {
			continue
		}
		if idx > 0 && intersects(accepted[idx-1], cand) {
			continue
		}
		accepted = slices.Insert(accepted, idx, cand)
	}
	return accepted
}

// outranks orders candidates: longer span, then higher tier, then smaller
// type id, then earlier start.
func outranks(a, b matcher.Candidate) bool {
	if la, lb := a.End-a.Start, b.End-b.Start; la != lb {
		return la > lb
	}
	if ra, rb := a.Tier.Rank(), b.Tier.Rank(); ra != rb {
		return ra > rb
	}
	if a.TypeID != b.TypeID {
		return a.TypeID < b.TypeID
	}
	return a.Start < b.Start
}

func intersects(a, b matcher.Candidate) bool {
	return a.Start < b.End && b.Start < a.End
}
