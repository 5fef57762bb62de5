package weld

import "fmt"

// DuplicateIdentifierError is returned when a fragment is registered under
// an identifier that already holds a fragment of the same kind, or when the
// loader sees the same identifier in two different module units.
type DuplicateIdentifierError struct {
	Kind Kind
	ID   string
}

func (e *DuplicateIdentifierError) Error() string {
	return fmt.Sprintf("weld: duplicate registration of %s %q", e.Kind, e.ID)
}

// ConflictSubject identifies which side of a compared pair carries the
// contradictory ordering rules.
type ConflictSubject int

const (
	// ConflictInLeft means the left identifier's own rules contradict each other.
	ConflictInLeft ConflictSubject = iota
	// ConflictInRight means the right identifier's own rules contradict each other.
	ConflictInRight
	// ConflictInBoth means the two identifiers demand precedence over each other.
	ConflictInBoth
	// UnknownCombination means the comparator's rule table has no entry for
	// the observed signal word. It indicates an incomplete table, not bad
	// user rules, and should never occur.
	UnknownCombination
)

func (s ConflictSubject) String() string {
	switch s {
	case ConflictInLeft:
		return "left"
	case ConflictInRight:
		return "right"
	case ConflictInBoth:
		return "both"
	case UnknownCombination:
		return "unknown combination"
	}
	return fmt.Sprintf("ConflictSubject(%d)", int(s))
}

// OrderingConflictError is returned when the declared ordering rules for a
// pair of identifiers contradict each other. Signals carries the raw signal
// word observed for the pair, for diagnostics.
type OrderingConflictError struct {
	Left    string
	Right   string
	Signals uint8
	Subject ConflictSubject
}

func (e *OrderingConflictError) Error() string {
	switch e.Subject {
	case ConflictInLeft:
		return fmt.Sprintf("weld: conflicting ordering rules for %q (compared against %q, signals %06b)", e.Left, e.Right, e.Signals)
	case ConflictInRight:
		return fmt.Sprintf("weld: conflicting ordering rules for %q (compared against %q, signals %06b)", e.Right, e.Left, e.Signals)
	case UnknownCombination:
		return fmt.Sprintf("weld: no ordering rule for signal word %06b comparing %q and %q", e.Signals, e.Left, e.Right)
	}
	return fmt.Sprintf("weld: conflicting ordering rules between %q and %q (signals %06b)", e.Left, e.Right, e.Signals)
}
