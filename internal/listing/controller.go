package listing

import (
	"math"

	"github.com/pressmark/pressmark/internal/post"
)

// ViewMode selects how the listing is rendered. It never affects fetching.
type ViewMode string

const (
	ViewGrid ViewMode = "grid"
	ViewList ViewMode = "list"
)

// Fetcher issues one List request and delivers the outcome through done.
// done may be called synchronously or later; the controller sorts out stale
// deliveries by sequence number.
type Fetcher func(q post.ListQuery, done func(items []*post.Post, total int64, err error))

// Controller is the listing view's state machine: current page, status filter,
// staged and committed search text, view mode and loading flag. Search typing
// is staged and only fires a request when explicitly committed. Every state
// change that affects the query issues exactly one List call, tagged with a
// monotonic sequence number so that a response for a superseded request can
// never overwrite newer state.
type Controller struct {
	fetch Fetcher

	page         int
	filter       string
	stagedSearch string
	searchTerm   string
	view         ViewMode
	loading      bool

	seq uint64 // latest issued request

	items      []*post.Post
	totalCount int64
	totalPages int
	err        error
}

// NewController builds a controller on page 1 with no filter and immediately
// issues the initial List call.
func NewController(fetch Fetcher) *Controller {
	c := &Controller{fetch: fetch, page: 1, view: ViewGrid, totalPages: 1}
	c.refresh()
	return c
}

// SetPage moves to page p and refetches. Out-of-range pages and the current
// page are ignored, so a repeated click can't fire a duplicate request.
func (c *Controller) SetPage(p int) {
	if p < 1 || p > c.totalPages || p == c.page {
		return
	}
	c.page = p
	c.refresh()
}

// SetFilter commits a status filter, resets to page 1 and refetches.
func (c *Controller) SetFilter(filter string) {
	c.filter = filter
	c.page = 1
	c.refresh()
}

// StageSearch records what the user typed without firing a request.
func (c *Controller) StageSearch(text string) {
	c.stagedSearch = text
}

// CommitSearch promotes the staged text to the committed search term,
// resets to page 1 and refetches.
func (c *Controller) CommitSearch() {
	c.searchTerm = c.stagedSearch
	c.page = 1
	c.refresh()
}

// ResetFilters clears the filter and both search fields, returns to page 1
// and refetches.
func (c *Controller) ResetFilters() {
	c.filter = ""
	c.stagedSearch = ""
	c.searchTerm = ""
	c.page = 1
	c.refresh()
}

// SetViewMode switches between grid and list rendering. No request is issued.
func (c *Controller) SetViewMode(v ViewMode) {
	if v == ViewGrid || v == ViewList {
		c.view = v
	}
}

func (c *Controller) refresh() {
	c.seq++
	seq := c.seq
	c.loading = true
	q := post.ListQuery{Filter: c.filter, Search: c.searchTerm, Page: c.page}
	c.fetch(q, func(items []*post.Post, total int64, err error) {
		c.complete(seq, items, total, err)
	})
}

// complete applies a response unless a newer request has been issued since.
func (c *Controller) complete(seq uint64, items []*post.Post, total int64, err error) {
	if seq < c.seq {
		return // stale response, a newer request supersedes it
	}
	c.loading = false
	if err != nil {
		c.err = err
		return
	}
	c.err = nil
	c.items = items
	c.totalCount = total
	c.totalPages = int(math.Ceil(float64(total) / float64(post.PageSize)))
	if c.totalPages < 1 {
		c.totalPages = 1
	}
}

func (c *Controller) Page() int            { return c.page }
func (c *Controller) Filter() string       { return c.filter }
func (c *Controller) StagedSearch() string { return c.stagedSearch }
func (c *Controller) SearchTerm() string   { return c.searchTerm }
func (c *Controller) View() ViewMode       { return c.view }
func (c *Controller) Loading() bool        { return c.loading }
func (c *Controller) Items() []*post.Post  { return c.items }
func (c *Controller) TotalCount() int64    { return c.totalCount }
func (c *Controller) TotalPages() int      { return c.totalPages }
func (c *Controller) Err() error           { return c.err }

// PageButtons renders the pagination strip for the current state.
func (c *Controller) PageButtons() []PageButton {
	return PageButtons(c.page, c.totalPages)
}
