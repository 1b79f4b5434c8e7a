package model

// divergenceDepth is the length of the longest common prefix of the two
// fields' parent paths. A larger depth means a closer shared ancestor in the
// UI tree.
func divergenceDepth(a, b Field) int {
	depth := 0
	for depth < len(a.ParentPath) && depth < len(b.ParentPath) {
		if a.ParentPath[depth] != b.ParentPath[depth] {
			break
		}
		depth++
	}
	return depth
}

// NearestField returns the candidate structurally nearest to reference,
// measured by divergence depth. Ties resolve to the earliest candidate so
// the result is deterministic for a given input order. The second return is
// false when candidates is empty.
//
// Tree position is deliberately the only signal here: text labels are
// unreliable and were already consumed upstream to produce the field types.
func NearestField(reference Field, candidates []Field) (Field, bool) {
	if len(candidates) == 0 {
		return Field{}, false
	}
	best := candidates[0]
	bestDepth := divergenceDepth(reference, best)
	for _, candidate := range candidates[1:] {
		if d := divergenceDepth(reference, candidate); d > bestDepth {
			best = candidate
			bestDepth = d
		}
	}
	return best, true
}
