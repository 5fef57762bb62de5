package weld

import (
	"fmt"
	"sync"
)

// Kind distinguishes the three fragment collections held by an Assembly.
type Kind int

const (
	// KindDefinition fragments are collected into an ordered sequence.
	KindDefinition Kind = iota
	// KindResolver fragments are maps deep-merged into one resolver structure.
	KindResolver
	// KindDirective fragments are maps deep-merged into one directive structure.
	KindDirective
)

func (k Kind) String() string {
	switch k {
	case KindDefinition:
		return "definition"
	case KindResolver:
		return "resolver set"
	case KindDirective:
		return "directive set"
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

// An Assembly collects schema module fragments and their ordering rules for
// one build run. Create a fresh Assembly per run with New; entries are never
// mutated or overwritten once registered.
type Assembly struct {
	mu sync.Mutex

	fragments map[Kind]map[string]interface{}
	// order holds identifiers per kind in registration order. It is the
	// stable default the sort falls back to for unrelated identifiers.
	order map[Kind][]string
	known map[string]struct{}

	rules ruleSet
}

// Option configures a new Assembly.
type Option func(*Assembly)

// WithSortFirst replaces the default sort-first partition (index, Query,
// Mutation, Subscription) with the given identifiers.
func WithSortFirst(ids ...string) Option {
	return func(a *Assembly) {
		a.rules.first = make(map[string]struct{}, len(ids))
		for _, id := range ids {
			a.rules.first[id] = struct{}{}
		}
	}
}

// New returns an empty Assembly. By default the conventional root module
// identifiers index, Query, Mutation and Subscription are placed in the
// sort-first partition; WithSortFirst overrides that set.
func New(opts ...Option) *Assembly {
	a := &Assembly{
		fragments: map[Kind]map[string]interface{}{
			KindDefinition: {},
			KindResolver:   {},
			KindDirective:  {},
		},
		order: map[Kind][]string{},
		known: map[string]struct{}{},
		rules: newRuleSet(),
	}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

// Register stores fragment under id for the given kind. An identifier holds
// at most one fragment per kind; registering a second one fails with a
// DuplicateIdentifierError rather than overwriting. The check and the store
// are atomic, so concurrent imports of the same identifier cannot both
// succeed.
func (a *Assembly) Register(kind Kind, id string, fragment interface{}) error {
	a.mu.Lock()
	defer a.mu.Unlock()

	byID, ok := a.fragments[kind]
	if !ok {
		return fmt.Errorf("weld: unknown fragment kind %v", kind)
	}
	if _, exists := byID[id]; exists {
		return &DuplicateIdentifierError{Kind: kind, ID: id}
	}
	byID[id] = fragment
	a.order[kind] = append(a.order[kind], id)
	a.known[id] = struct{}{}
	return nil
}

// Has reports whether a fragment of the given kind is registered under id.
func (a *Assembly) Has(kind Kind, id string) bool {
	a.mu.Lock()
	defer a.mu.Unlock()
	_, ok := a.fragments[kind][id]
	return ok
}

// HasAny reports whether id is registered under any kind. Loaders use it to
// reject a module unit whose identifier was already claimed by another
// unit, before registering anything from the new one.
func (a *Assembly) HasAny(id string) bool {
	a.mu.Lock()
	defer a.mu.Unlock()
	_, ok := a.known[id]
	return ok
}

// IDs returns the identifiers registered for kind, in registration order.
func (a *Assembly) IDs(kind Kind) []string {
	a.mu.Lock()
	defer a.mu.Unlock()
	ids := make([]string, len(a.order[kind]))
	copy(ids, a.order[kind])
	return ids
}
