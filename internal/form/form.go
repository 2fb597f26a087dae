package form

import (
	"context"
	"strings"
	"unicode/utf8"

	"github.com/pressmark/pressmark/internal/apperr"
	"github.com/pressmark/pressmark/internal/post"
)

// Submitter is the network side of the form: exactly one of these is called
// per successful submit.
type Submitter interface {
	CreatePost(ctx context.Context, in post.Input) error
	UpdatePost(ctx context.Context, id string, in post.Input) error
}

// Controller holds the draft field values of the post editor together with a
// per-field error map. Submit validates first and only touches the network
// when every rule passes. When an identifier is bound the submit becomes an
// update instead of a create.
type Controller struct {
	api Submitter

	id     string // bound post id; empty means the submit creates
	fields post.Input
	errors map[string]string

	submitting bool
}

func NewController(api Submitter) *Controller {
	return &Controller{api: api, errors: map[string]string{}}
}

// Bind attaches an existing post to the form so Submit performs an update,
// loading its editable fields as the draft.
func (c *Controller) Bind(p *post.Post) {
	c.id = p.ID.Hex()
	c.fields = post.Input{
		Title:          p.Title,
		Excerpt:        p.Excerpt,
		Content:        p.Content,
		FeaturedImage:  p.FeaturedImage,
		Category:       p.Category,
		Tags:           p.Tags,
		ReadTime:       p.ReadTime,
		SEOTitle:       p.SEOTitle,
		SEODescription: p.SEODescription,
	}
	c.errors = map[string]string{}
}

// SetField updates one draft field and clears its pending error, mirroring
// the editor's behavior of dropping a message as soon as the user types.
func (c *Controller) SetField(name, value string) {
	switch name {
	case "title":
		c.fields.Title = value
	case "excerpt":
		c.fields.Excerpt = value
	case "content":
		c.fields.Content = value
	case "featuredImage":
		c.fields.FeaturedImage = value
	case "category":
		c.fields.Category = value
	case "tags":
		c.fields.Tags = value
	case "readTime":
		c.fields.ReadTime = value
	case "seoTitle":
		c.fields.SEOTitle = value
	case "seoDescription":
		c.fields.SEODescription = value
	default:
		return
	}
	delete(c.errors, name)
}

func (c *Controller) Fields() post.Input { return c.fields }

// FieldError returns the pending validation message for a field, if any.
func (c *Controller) FieldError(name string) string { return c.errors[name] }

// Errors returns the full error map populated by the last failed validation.
func (c *Controller) Errors() map[string]string { return c.errors }

func (c *Controller) IsSubmitting() bool { return c.submitting }

// Validate runs every field rule and fills the error map. It reports whether
// the draft is submittable.
func (c *Controller) Validate() bool {
	errs := map[string]string{}
	f := c.fields

	if strings.TrimSpace(f.Title) == "" {
		errs["title"] = "Title is required"
	}
	if strings.TrimSpace(f.FeaturedImage) == "" {
		errs["featuredImage"] = "Image is required"
	}
	if strings.TrimSpace(f.Excerpt) == "" {
		errs["excerpt"] = "Excerpt is required"
	} else if utf8.RuneCountInString(f.Excerpt) > 300 {
		errs["excerpt"] = "Excerpt must be less than 300 characters"
	}
	if strings.TrimSpace(f.Content) == "" || f.Content == post.EmptyContent {
		errs["content"] = "Content is required"
	}
	if strings.TrimSpace(f.Category) == "" {
		errs["category"] = "Category is required"
	}
	if strings.TrimSpace(f.Tags) == "" {
		errs["tags"] = "Tags are required"
	}
	if strings.TrimSpace(f.ReadTime) == "" {
		errs["readTime"] = "Read time is required"
	}
	if strings.TrimSpace(f.SEOTitle) == "" {
		errs["seoTitle"] = "SEO title is required"
	}
	if strings.TrimSpace(f.SEODescription) == "" {
		errs["seoDescription"] = "SEO description is required"
	}

	c.errors = errs
	return len(errs) == 0
}

// Submit validates the draft and, when clean, issues exactly one create or
// update call carrying status. The submitting flag is cleared on every exit
// path. A validation failure aborts before any network effect.
func (c *Controller) Submit(ctx context.Context, status post.Status) error {
	if !c.Validate() {
		return apperr.New(apperr.Validation, "form.Submit", "form has validation errors")
	}
	c.submitting = true
	defer func() { c.submitting = false }()

	in := c.fields
	in.Status = status
	if c.id != "" {
		return c.api.UpdatePost(ctx, c.id, in)
	}
	return c.api.CreatePost(ctx, in)
}
