package weld

// ruleSet stores the declared ordering facts as adjacency sets. Rules are
// interpreted pairwise at comparison time; no graph is built and no cycle
// checking happens at declaration time.
type ruleSet struct {
	after  map[string]map[string]struct{}
	before map[string]map[string]struct{}
	first  map[string]struct{}
	last   map[string]struct{}
}

func newRuleSet() ruleSet {
	return ruleSet{
		after:  map[string]map[string]struct{}{},
		before: map[string]map[string]struct{}{},
		first: map[string]struct{}{
			"index":        {},
			"Query":        {},
			"Mutation":     {},
			"Subscription": {},
		},
		last: map[string]struct{}{},
	}
}

// RunAfter declares that id must sort strictly after every identifier in
// others. A redeclaration replaces the previous after set for id; calling
// with no identifiers is a no-op.
func (a *Assembly) RunAfter(id string, others ...string) {
	a.mu.Lock()
	defer a.mu.Unlock()
	if len(others) == 0 {
		return
	}
	a.rules.after[id] = toSet(others)
}

// RunBefore declares that id must sort strictly before every identifier in
// others. Same replacement semantics as RunAfter. RunBefore(x, y) and
// RunAfter(y, x) describe the same edge.
func (a *Assembly) RunBefore(id string, others ...string) {
	a.mu.Lock()
	defer a.mu.Unlock()
	if len(others) == 0 {
		return
	}
	a.rules.before[id] = toSet(others)
}

// SortFirst adds the given identifiers to the sort-first partition.
// Repeated calls are harmless.
func (a *Assembly) SortFirst(ids ...string) {
	a.mu.Lock()
	defer a.mu.Unlock()
	for _, id := range ids {
		a.rules.first[id] = struct{}{}
	}
}

// SortLast adds the given identifiers to the sort-last partition.
// Repeated calls are harmless.
func (a *Assembly) SortLast(ids ...string) {
	a.mu.Lock()
	defer a.mu.Unlock()
	for _, id := range ids {
		a.rules.last[id] = struct{}{}
	}
}

func toSet(ids []string) map[string]struct{} {
	s := make(map[string]struct{}, len(ids))
	for _, id := range ids {
		s[id] = struct{}{}
	}
	return s
}
