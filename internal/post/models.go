package post

import (
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Status is the publication state of a post. Only the two values below are
// ever persisted.
type Status string

const (
	StatusDraft   Status = "Draft"
	StatusPublish Status = "Publish"
)

// Valid reports whether s is one of the defined statuses.
func (s Status) Valid() bool {
	return s == StatusDraft || s == StatusPublish
}

// Categories is the fixed set a post may belong to.
var Categories = []string{"Technology", "Business", "Health", "Lifestyle", "Travel"}

// ValidCategory reports whether c is a member of Categories.
func ValidCategory(c string) bool {
	for _, v := range Categories {
		if v == c {
			return true
		}
	}
	return false
}

// PageSize is the fixed number of posts per listing page.
const PageSize = 9

// EmptyContent is the markup the rich-text editor emits for an empty document.
// Content equal to it is treated as missing.
const EmptyContent = "<p><br></p>"

// Post is the persisted blog post. The JSON field names mirror the store
// documents (including the _id and __v spellings) because the editor frontend
// consumes them verbatim.
type Post struct {
	ID             primitive.ObjectID `json:"_id" bson:"_id,omitempty"`
	Title          string             `json:"title" bson:"title"`
	Excerpt        string             `json:"excerpt" bson:"excerpt"`
	Content        string             `json:"content" bson:"content"`
	FeaturedImage  string             `json:"featuredImage" bson:"featuredImage"`
	Category       string             `json:"category" bson:"category"`
	Tags           string             `json:"tags" bson:"tags"`
	ReadTime       string             `json:"readTime" bson:"readTime"`
	SEOTitle       string             `json:"seoTitle" bson:"seoTitle"`
	SEODescription string             `json:"seoDescription" bson:"seoDescription"`
	Status         Status             `json:"status" bson:"status"`
	CreatedAt      time.Time          `json:"createdAt" bson:"createdAt"`
	UpdatedAt      time.Time          `json:"updatedAt" bson:"updatedAt"`
	Version        int                `json:"__v" bson:"__v"`
}

// Input holds the editable fields of a post as submitted by the editor.
// ID and timestamps are never caller-supplied.
type Input struct {
	Title          string `json:"title"`
	Excerpt        string `json:"excerpt"`
	Content        string `json:"content"`
	FeaturedImage  string `json:"featuredImage"`
	Category       string `json:"category"`
	Tags           string `json:"tags"`
	ReadTime       string `json:"readTime"`
	SEOTitle       string `json:"seoTitle"`
	SEODescription string `json:"seoDescription"`
	Status         Status `json:"status"`
}

// ListQuery is the parameter set of a listing request. Filter is an exact
// status match ("" means no constraint); Search is matched case-insensitively
// as a substring of title or status; Page is 1-based.
type ListQuery struct {
	Filter string
	Search string
	Page   int
}

// ParseTags splits a comma-separated tag string into trimmed non-empty tokens.
func ParseTags(tags string) []string {
	out := []string{}
	for _, t := range strings.Split(tags, ",") {
		t = strings.TrimSpace(t)
		if t != "" {
			out = append(out, t)
		}
	}
	return out
}
