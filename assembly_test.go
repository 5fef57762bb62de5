package weld_test

import (
	"errors"
	"fmt"
	"sync"
	"testing"

	"github.com/kylelemons/godebug/pretty"
	"go.appointy.com/weld"
)

func TestRegisterRejectsDuplicateKindAndID(t *testing.T) {
	a := weld.New()

	if err := a.Register(weld.KindDefinition, "books", "type Book { id: ID! }"); err != nil {
		t.Fatal(err)
	}

	err := a.Register(weld.KindDefinition, "books", "type Book { title: String }")
	var dup *weld.DuplicateIdentifierError
	if !errors.As(err, &dup) {
		t.Fatalf("expected DuplicateIdentifierError, got %v", err)
	}
	if dup.Kind != weld.KindDefinition || dup.ID != "books" {
		t.Errorf("expected error to carry kind and id, got %v %q", dup.Kind, dup.ID)
	}
}

func TestRegisterAllowsSameIDAcrossKinds(t *testing.T) {
	a := weld.New()

	if err := a.Register(weld.KindDefinition, "books", "type Book { id: ID! }"); err != nil {
		t.Fatal(err)
	}
	if err := a.Register(weld.KindResolver, "books", map[string]interface{}{}); err != nil {
		t.Fatalf("same id under a different kind should register independently: %v", err)
	}
	if err := a.Register(weld.KindDirective, "books", map[string]interface{}{}); err != nil {
		t.Fatalf("same id under a different kind should register independently: %v", err)
	}
}

func TestHasAndHasAny(t *testing.T) {
	a := weld.New()

	if err := a.Register(weld.KindResolver, "books", map[string]interface{}{}); err != nil {
		t.Fatal(err)
	}

	if !a.Has(weld.KindResolver, "books") {
		t.Error("expected Has to report the registered fragment")
	}
	if a.Has(weld.KindDefinition, "books") {
		t.Error("Has should be scoped to the kind")
	}
	if !a.HasAny("books") {
		t.Error("expected HasAny to report the identifier")
	}
	if a.HasAny("authors") {
		t.Error("HasAny should not report unknown identifiers")
	}
}

func TestIDsKeepRegistrationOrder(t *testing.T) {
	a := weld.New()
	for _, id := range []string{"zebra", "apple", "mango"} {
		if err := a.Register(weld.KindDefinition, id, id); err != nil {
			t.Fatal(err)
		}
	}

	if diff := pretty.Compare(a.IDs(weld.KindDefinition), []string{"zebra", "apple", "mango"}); diff != "" {
		t.Errorf("expected registration order to be preserved: %s", diff)
	}
}

func TestRegisterIsAtomicUnderConcurrency(t *testing.T) {
	a := weld.New()

	const n = 32
	var wg sync.WaitGroup
	errs := make([]error, n)
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			errs[i] = a.Register(weld.KindDefinition, "books", fmt.Sprintf("payload-%d", i))
		}(i)
	}
	wg.Wait()

	ok := 0
	for _, err := range errs {
		if err == nil {
			ok++
		}
	}
	if ok != 1 {
		t.Errorf("exactly one concurrent registration should win, got %d", ok)
	}
}
