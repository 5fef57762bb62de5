package weld_test

import (
	"testing"

	"github.com/kylelemons/godebug/pretty"
	"github.com/stretchr/testify/require"
	"go.appointy.com/weld"
)

func TestMergedResolversLaterFragmentWinsLeaves(t *testing.T) {
	a := weld.New()
	require.NoError(t, a.Register(weld.KindResolver, "id1", map[string]interface{}{
		"Query": map[string]interface{}{"x": 1},
	}))
	require.NoError(t, a.Register(weld.KindResolver, "id2", map[string]interface{}{
		"Query": map[string]interface{}{"x": 2, "y": 3},
	}))
	a.RunAfter("id2", "id1")

	merged, err := a.MergedResolvers()
	require.NoError(t, err)

	want := map[string]interface{}{
		"Query": map[string]interface{}{"x": 2, "y": 3},
	}
	if diff := pretty.Compare(merged, want); diff != "" {
		t.Errorf("expected later-sorted leaves to win and untouched keys to survive: %s", diff)
	}
}

func TestMergedResolversNestedMapsMergeKeyByKey(t *testing.T) {
	a := weld.New()
	require.NoError(t, a.Register(weld.KindResolver, "books", map[string]interface{}{
		"Query":    map[string]interface{}{"books": "list-books"},
		"Mutation": map[string]interface{}{"addBook": "add-book"},
	}))
	require.NoError(t, a.Register(weld.KindResolver, "authors", map[string]interface{}{
		"Query": map[string]interface{}{"authors": "list-authors"},
	}))

	merged, err := a.MergedResolvers()
	require.NoError(t, err)

	want := map[string]interface{}{
		"Query": map[string]interface{}{
			"books":   "list-books",
			"authors": "list-authors",
		},
		"Mutation": map[string]interface{}{"addBook": "add-book"},
	}
	if diff := pretty.Compare(merged, want); diff != "" {
		t.Errorf("expected nested sections merged key by key: %s", diff)
	}
}

func TestMergeTreatsSequencesAndFuncsAsAtomicLeaves(t *testing.T) {
	early := func() string { return "early" }
	late := func() string { return "late" }

	a := weld.New()
	require.NoError(t, a.Register(weld.KindResolver, "one", map[string]interface{}{
		"Query": map[string]interface{}{"resolve": early, "tags": []string{"a", "b"}},
	}))
	require.NoError(t, a.Register(weld.KindResolver, "two", map[string]interface{}{
		"Query": map[string]interface{}{"resolve": late, "tags": []string{"c"}},
	}))

	merged, err := a.MergedResolvers()
	require.NoError(t, err)

	query := merged["Query"].(map[string]interface{})
	require.Equal(t, "late", query["resolve"].(func() string)(), "later fragment's func should replace the earlier one")
	require.Equal(t, []string{"c"}, query["tags"], "sequences are replaced wholesale, not merged elementwise")
}

func TestMergeDoesNotMutateRegisteredFragments(t *testing.T) {
	fragment := map[string]interface{}{
		"Query": map[string]interface{}{"x": 1},
	}

	a := weld.New()
	require.NoError(t, a.Register(weld.KindResolver, "one", fragment))
	require.NoError(t, a.Register(weld.KindResolver, "two", map[string]interface{}{
		"Query": map[string]interface{}{"y": 2},
	}))

	merged, err := a.MergedResolvers()
	require.NoError(t, err)

	// Scribbling on the result must not reach the registry.
	merged["Query"].(map[string]interface{})["x"] = 99

	again, err := a.MergedResolvers()
	require.NoError(t, err)
	require.Equal(t, 1, again["Query"].(map[string]interface{})["x"])
	require.Equal(t, 1, fragment["Query"].(map[string]interface{})["x"])
}

func TestMergedResolversRejectsNonMapFragment(t *testing.T) {
	a := weld.New()
	require.NoError(t, a.Register(weld.KindResolver, "bad", "not a map"))

	_, err := a.MergedResolvers()
	require.Error(t, err)
}

func TestMergedDirectivesEmpty(t *testing.T) {
	merged, err := weld.New().MergedDirectives()
	require.NoError(t, err)
	require.Empty(t, merged)
}
