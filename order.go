package weld

import "sort"

// Six boolean signals describe the declared relationship between a pair of
// identifiers (a, b). Packed into a signal word they index the outcome
// table below.
const (
	sigAFirst uint8 = 1 << iota // a is in the sort-first partition
	sigBFirst                   // b is in the sort-first partition
	sigALast                    // a is in the sort-last partition
	sigBLast                    // b is in the sort-last partition
	sigAFollowsB                // a must sort after b (after(a,b) or before(b,a))
	sigBFollowsA                // b must sort after a (after(b,a) or before(a,b))
)

// signalWords is the size of the outcome table: 2^6 signal combinations.
const signalWords = 64

// outcome is the comparator's verdict for one signal word.
type outcome int8

const (
	// outcomeUnknown is the zero value on purpose: a table slot nothing
	// claimed stays unknown and fails loudly instead of misordering.
	outcomeUnknown outcome = iota
	outcomeTie
	outcomeABeforeB
	outcomeBBeforeA
	outcomeConflictA
	outcomeConflictB
	outcomeConflictBoth
)

// outcomeTable maps every signal word to its verdict. Enumerating the full
// table once keeps the comparator a plain lookup and lets the tests sweep
// all 64 words for antisymmetry.
var outcomeTable [signalWords]outcome

func init() {
	for w := 0; w < signalWords; w++ {
		outcomeTable[w] = classify(uint8(w))
	}
}

// classify derives the verdict for one signal word.
//
// An identifier pinned both first and last is self-contradictory, as is a
// pair where each must follow the other. Otherwise the remaining signals
// either agree on a direction, cancel out (tie), or pull the pair both ways
// at once, in which case the verdict blames whichever identifier carries
// rules in both directions.
func classify(w uint8) outcome {
	aFirst := w&sigAFirst != 0
	bFirst := w&sigBFirst != 0
	aLast := w&sigALast != 0
	bLast := w&sigBLast != 0
	aFollowsB := w&sigAFollowsB != 0
	bFollowsA := w&sigBFollowsA != 0

	aTorn := aFirst && aLast
	bTorn := bFirst && bLast
	switch {
	case aTorn && bTorn:
		return outcomeConflictBoth
	case aTorn:
		return outcomeConflictA
	case bTorn:
		return outcomeConflictB
	case aFollowsB && bFollowsA:
		return outcomeConflictBoth
	}

	// Membership in a shared partition cancels out: two sort-first
	// identifiers have no partition preference between themselves.
	aAhead := (aFirst && !bFirst) || (bLast && !aLast) || bFollowsA
	bAhead := (bFirst && !aFirst) || (aLast && !bLast) || aFollowsB

	switch {
	case aAhead && bAhead:
		aMixed := (aFirst && aFollowsB) || (aLast && bFollowsA)
		bMixed := (bFirst && bFollowsA) || (bLast && aFollowsB)
		switch {
		case aMixed && bMixed:
			return outcomeConflictBoth
		case aMixed:
			return outcomeConflictA
		case bMixed:
			return outcomeConflictB
		}
		return outcomeConflictBoth
	case aAhead:
		return outcomeABeforeB
	case bAhead:
		return outcomeBBeforeA
	}
	return outcomeTie
}

// signalWord packs the six pair signals for (a, b). The after and before
// adjacency sets express the same edge from either end and collapse into
// the two follow signals.
func (r *ruleSet) signalWord(a, b string) uint8 {
	var w uint8
	if _, ok := r.first[a]; ok {
		w |= sigAFirst
	}
	if _, ok := r.first[b]; ok {
		w |= sigBFirst
	}
	if _, ok := r.last[a]; ok {
		w |= sigALast
	}
	if _, ok := r.last[b]; ok {
		w |= sigBLast
	}
	if r.follows(a, b) {
		w |= sigAFollowsB
	}
	if r.follows(b, a) {
		w |= sigBFollowsA
	}
	return w
}

// follows reports whether x must sort after y under the declared edges.
func (r *ruleSet) follows(x, y string) bool {
	if _, ok := r.after[x][y]; ok {
		return true
	}
	_, ok := r.before[y][x]
	return ok
}

// compare orders the pair (a, b): -1 sorts a earlier, +1 sorts b earlier,
// 0 expresses no preference. Swapping the arguments negates the result.
func (r *ruleSet) compare(a, b string) (int, error) {
	w := r.signalWord(a, b)
	switch outcomeTable[w] {
	case outcomeTie:
		return 0, nil
	case outcomeABeforeB:
		return -1, nil
	case outcomeBBeforeA:
		return 1, nil
	case outcomeConflictA:
		return 0, &OrderingConflictError{Left: a, Right: b, Signals: w, Subject: ConflictInLeft}
	case outcomeConflictB:
		return 0, &OrderingConflictError{Left: a, Right: b, Signals: w, Subject: ConflictInRight}
	case outcomeConflictBoth:
		return 0, &OrderingConflictError{Left: a, Right: b, Signals: w, Subject: ConflictInBoth}
	}
	return 0, &OrderingConflictError{Left: a, Right: b, Signals: w, Subject: UnknownCombination}
}

// sortIDs orders ids in place under the declared rules. The sort is stable,
// so identifiers with no relative preference keep the order the caller
// passed in (registration order). Only pairwise contradictions are
// detected; the rules are not checked for global (transitive) consistency.
func (r *ruleSet) sortIDs(ids []string) error {
	var firstErr error
	sort.SliceStable(ids, func(i, j int) bool {
		c, err := r.compare(ids[i], ids[j])
		if err != nil && firstErr == nil {
			firstErr = err
		}
		return c < 0
	})
	return firstErr
}
