package listing

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/pressmark/pressmark/internal/post"
)

// fakeFetcher records every issued query and lets the test decide when and in
// which order responses land.
type fakeFetcher struct {
	queries []post.ListQuery
	pending []func(items []*post.Post, total int64, err error)
}

func (f *fakeFetcher) fetch(q post.ListQuery, done func([]*post.Post, int64, error)) {
	f.queries = append(f.queries, q)
	f.pending = append(f.pending, done)
}

// respond completes the i-th issued request.
func (f *fakeFetcher) respond(i int, total int64) {
	f.pending[i](make([]*post.Post, 0), total, nil)
}

func TestControllerInitialFetch(t *testing.T) {
	f := &fakeFetcher{}
	c := NewController(f.fetch)

	require.Len(t, f.queries, 1)
	require.Equal(t, post.ListQuery{Page: 1}, f.queries[0])
	require.True(t, c.Loading())

	f.respond(0, 45) // 5 pages
	require.False(t, c.Loading())
	require.Equal(t, 5, c.TotalPages())
	require.Equal(t, int64(45), c.TotalCount())
}

func TestControllerSearchIsStagedUntilCommitted(t *testing.T) {
	f := &fakeFetcher{}
	c := NewController(f.fetch)
	f.respond(0, 45)

	c.StageSearch("go")
	c.StageSearch("gola")
	c.StageSearch("golang")
	require.Len(t, f.queries, 1, "typing must not fire requests")
	require.Equal(t, "", c.SearchTerm())

	c.CommitSearch()
	require.Len(t, f.queries, 2)
	require.Equal(t, post.ListQuery{Search: "golang", Page: 1}, f.queries[1])
	require.Equal(t, "golang", c.SearchTerm())
}

func TestControllerFilterAndSearchResetPage(t *testing.T) {
	f := &fakeFetcher{}
	c := NewController(f.fetch)
	f.respond(0, 90) // 10 pages

	c.SetPage(4)
	f.respond(1, 90)
	require.Equal(t, 4, c.Page())

	c.SetFilter("Publish")
	require.Equal(t, 1, c.Page())
	require.Equal(t, post.ListQuery{Filter: "Publish", Page: 1}, f.queries[2])
	f.respond(2, 30)

	c.SetPage(3)
	f.respond(3, 30)
	c.StageSearch("notes")
	c.CommitSearch()
	require.Equal(t, 1, c.Page())
	require.Equal(t, post.ListQuery{Filter: "Publish", Search: "notes", Page: 1}, f.queries[4])
}

func TestControllerSetPageGuards(t *testing.T) {
	f := &fakeFetcher{}
	c := NewController(f.fetch)
	f.respond(0, 27) // 3 pages

	c.SetPage(0)
	c.SetPage(4)
	c.SetPage(1) // already there
	require.Len(t, f.queries, 1, "rejected page changes must not fire requests")

	c.SetPage(2)
	require.Len(t, f.queries, 2)
	c.SetPage(2) // repeated click while loading
	require.Len(t, f.queries, 2)
	f.respond(1, 27)
}

func TestControllerStaleResponseDiscarded(t *testing.T) {
	f := &fakeFetcher{}
	c := NewController(f.fetch)
	f.respond(0, 90)

	c.SetPage(2)              // request 1
	c.SetFilter("Draft")      // request 2 supersedes it
	require.Len(t, f.queries, 3)

	// the newer response lands first
	f.respond(2, 18)
	require.False(t, c.Loading())
	require.Equal(t, 2, c.TotalPages())

	// the stale response lands late and must not regress the state
	f.respond(1, 90)
	require.Equal(t, 2, c.TotalPages())
	require.Equal(t, int64(18), c.TotalCount())
	require.False(t, c.Loading())
}

func TestControllerResetFilters(t *testing.T) {
	f := &fakeFetcher{}
	c := NewController(f.fetch)
	f.respond(0, 90)

	c.SetFilter("Draft")
	f.respond(1, 18)
	c.StageSearch("golang")
	c.CommitSearch()
	f.respond(2, 9)
	c.StageSearch("part") // staged but never committed

	n := len(f.queries)
	c.ResetFilters()
	require.Len(t, f.queries, n+1, "reset fires exactly one request")
	require.Equal(t, post.ListQuery{Page: 1}, f.queries[n])
	require.Equal(t, "", c.Filter())
	require.Equal(t, "", c.SearchTerm())
	require.Equal(t, "", c.StagedSearch())
	require.Equal(t, 1, c.Page())
	f.respond(n, 90)
}

func TestControllerFetchError(t *testing.T) {
	f := &fakeFetcher{}
	c := NewController(f.fetch)

	f.pending[0](nil, 0, errors.New("store down"))
	require.False(t, c.Loading(), "a failed call still clears the busy flag")
	require.Error(t, c.Err())

	// a later successful refresh clears the error
	c.SetFilter("Draft")
	f.respond(1, 9)
	require.NoError(t, c.Err())
	require.Equal(t, 1, c.TotalPages())
}

func TestControllerViewMode(t *testing.T) {
	f := &fakeFetcher{}
	c := NewController(f.fetch)
	f.respond(0, 9)

	require.Equal(t, ViewGrid, c.View())
	c.SetViewMode(ViewList)
	require.Equal(t, ViewList, c.View())
	c.SetViewMode("calendar")
	require.Equal(t, ViewList, c.View(), "unknown modes are ignored")
	require.Len(t, f.queries, 1, "view changes never fetch")
}
