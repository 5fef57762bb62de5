package weld

import "fmt"

// Payload is the assembled output of a build run, shaped for a schema
// construction facility such as graphql-go. Weld does not call that
// facility itself.
type Payload struct {
	// TypeDefs holds the definition fragments in sorted order.
	TypeDefs []interface{}
	// Resolvers is the deep merge of all resolver-set fragments.
	Resolvers map[string]interface{}
	// Directives is the deep merge of all directive-set fragments.
	Directives map[string]interface{}
}

// OrderedDefinitions returns the definition fragments sorted under the
// declared rules. It does not mutate the assembly; repeated calls on an
// unchanged assembly return identical sequences.
func (a *Assembly) OrderedDefinitions() ([]interface{}, error) {
	return a.orderAndList(KindDefinition)
}

// MergedResolvers returns the resolver-set fragments deep-merged in sorted
// order into a fresh structure.
func (a *Assembly) MergedResolvers() (map[string]interface{}, error) {
	return a.orderAndMerge(KindResolver)
}

// MergedDirectives returns the directive-set fragments deep-merged in
// sorted order into a fresh structure.
func (a *Assembly) MergedDirectives() (map[string]interface{}, error) {
	return a.orderAndMerge(KindDirective)
}

func (a *Assembly) orderAndList(kind Kind) ([]interface{}, error) {
	a.mu.Lock()
	defer a.mu.Unlock()

	ids := make([]string, len(a.order[kind]))
	copy(ids, a.order[kind])
	if err := a.rules.sortIDs(ids); err != nil {
		return nil, err
	}

	out := make([]interface{}, 0, len(ids))
	for _, id := range ids {
		out = append(out, a.fragments[kind][id])
	}
	return out, nil
}

func (a *Assembly) orderAndMerge(kind Kind) (map[string]interface{}, error) {
	a.mu.Lock()
	defer a.mu.Unlock()

	ids := make([]string, len(a.order[kind]))
	copy(ids, a.order[kind])
	if err := a.rules.sortIDs(ids); err != nil {
		return nil, err
	}

	merged := map[string]interface{}{}
	for _, id := range ids {
		frag, ok := a.fragments[kind][id].(map[string]interface{})
		if !ok {
			return nil, fmt.Errorf("weld: %s %q is not a map[string]interface{}", kind, id)
		}
		merged = deepMerge(merged, frag)
	}
	return merged, nil
}

// Build computes all three aggregated outputs. Either the full payload is
// produced or an error is returned and no payload at all; there is no
// partial output.
func (a *Assembly) Build() (*Payload, error) {
	defs, err := a.OrderedDefinitions()
	if err != nil {
		return nil, err
	}
	resolvers, err := a.MergedResolvers()
	if err != nil {
		return nil, err
	}
	directives, err := a.MergedDirectives()
	if err != nil {
		return nil, err
	}
	return &Payload{TypeDefs: defs, Resolvers: resolvers, Directives: directives}, nil
}

// MustBuild is like Build but panics on error. Intended for program
// initialization, mirroring the usual schema builder MustBuild.
func (a *Assembly) MustBuild() *Payload {
	p, err := a.Build()
	if err != nil {
		panic(err)
	}
	return p
}
