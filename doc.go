// Package weld assembles independently authored GraphQL schema modules into
// a single buildable payload.
//
// Each module contributes up to three kinds of fragments under a string
// identifier: type definitions (collected into an ordered sequence),
// resolver sets and directive sets (deep-merged maps). Modules may also
// declare ordering rules relative to other identifiers: run after, run
// before, sort first, sort last. An Assembly collects fragments and rules,
// computes one deterministic total order consistent with the rules, and
// produces the ordered definitions plus the merged resolver and directive
// structures, ready to be handed to a schema construction facility such as
// github.com/graphql-go/graphql.
//
// Contradictory rules fail the build with an OrderingConflictError naming
// the offending identifiers; weld never guesses a resolution. Fragments are
// opaque to the assembly: their content is neither parsed nor validated
// here.
package weld
