package repository

import (
	"bytes"
	"context"
	"sort"
	"strings"
	"sync"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/pressmark/pressmark/internal/apperr"
	"github.com/pressmark/pressmark/internal/post"
)

// MemoryRepo is an in-memory Repository used by unit tests and the dev server.
// It reproduces the Mongo repo's observable behavior: same sort order, same
// paging, same error kinds.
type MemoryRepo struct {
	mu    sync.RWMutex
	store map[string]*post.Post
}

func NewMemoryRepo() *MemoryRepo {
	return &MemoryRepo{store: make(map[string]*post.Post)}
}

func matches(p *post.Post, q post.ListQuery) bool {
	if q.Filter != "" && string(p.Status) != q.Filter {
		return false
	}
	if q.Search != "" {
		s := strings.ToLower(q.Search)
		if !strings.Contains(strings.ToLower(p.Title), s) &&
			!strings.Contains(strings.ToLower(string(p.Status)), s) {
			return false
		}
	}
	return true
}

func (m *MemoryRepo) List(ctx context.Context, q post.ListQuery) ([]*post.Post, int64, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	all := []*post.Post{}
	for _, p := range m.store {
		if matches(p, q) {
			all = append(all, p)
		}
	}
	// createdAt desc, _id desc tie-break: a total order, so paging is stable
	sort.Slice(all, func(i, j int) bool {
		if !all[i].CreatedAt.Equal(all[j].CreatedAt) {
			return all[i].CreatedAt.After(all[j].CreatedAt)
		}
		return bytes.Compare(all[i].ID[:], all[j].ID[:]) > 0
	})

	page := q.Page
	if page < 1 {
		page = 1
	}
	start := (page - 1) * post.PageSize
	if start > len(all) {
		start = len(all)
	}
	end := start + post.PageSize
	if end > len(all) {
		end = len(all)
	}
	out := make([]*post.Post, 0, end-start)
	for _, p := range all[start:end] {
		cp := *p
		out = append(out, &cp)
	}
	return out, int64(len(all)), nil
}

func (m *MemoryRepo) GetByID(ctx context.Context, id string) (*post.Post, error) {
	const op = "post.GetByID"
	if _, err := primitive.ObjectIDFromHex(id); err != nil {
		return nil, apperr.Invalid(op, "id", "invalid post id")
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	p, ok := m.store[id]
	if !ok {
		return nil, apperr.New(apperr.NotFound, op, "post not found")
	}
	cp := *p
	return &cp, nil
}

func (m *MemoryRepo) Create(ctx context.Context, in post.Input) (*post.Post, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	now := time.Now().UTC()
	p := &post.Post{
		ID:             primitive.NewObjectID(),
		Title:          in.Title,
		Excerpt:        in.Excerpt,
		Content:        in.Content,
		FeaturedImage:  in.FeaturedImage,
		Category:       in.Category,
		Tags:           in.Tags,
		ReadTime:       in.ReadTime,
		SEOTitle:       in.SEOTitle,
		SEODescription: in.SEODescription,
		Status:         in.Status,
		CreatedAt:      now,
		UpdatedAt:      now,
	}
	m.store[p.ID.Hex()] = p
	cp := *p
	return &cp, nil
}

func (m *MemoryRepo) Update(ctx context.Context, id string, in post.Input) (*post.Post, error) {
	const op = "post.Update"
	if _, err := primitive.ObjectIDFromHex(id); err != nil {
		return nil, apperr.Invalid(op, "id", "invalid post id")
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	p, ok := m.store[id]
	if !ok {
		return nil, apperr.New(apperr.NotFound, op, "post not found")
	}
	p.Title = in.Title
	p.Excerpt = in.Excerpt
	p.Content = in.Content
	p.FeaturedImage = in.FeaturedImage
	p.Category = in.Category
	p.Tags = in.Tags
	p.ReadTime = in.ReadTime
	p.SEOTitle = in.SEOTitle
	p.SEODescription = in.SEODescription
	p.Status = in.Status
	p.UpdatedAt = time.Now().UTC()
	p.Version++
	cp := *p
	return &cp, nil
}

func (m *MemoryRepo) Delete(ctx context.Context, id string) error {
	const op = "post.Delete"
	if _, err := primitive.ObjectIDFromHex(id); err != nil {
		return apperr.Invalid(op, "id", "invalid post id")
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.store[id]; !ok {
		return apperr.New(apperr.NotFound, op, "post not found")
	}
	delete(m.store, id)
	return nil
}
