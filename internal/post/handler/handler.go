package handler

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/pressmark/pressmark/internal/apperr"
	"github.com/pressmark/pressmark/internal/post"
	"github.com/pressmark/pressmark/internal/post/service"
	"github.com/pressmark/pressmark/pkg/logger"
	"github.com/pressmark/pressmark/pkg/metrics"
)

// updateRequest is the update payload: the editable fields plus the target _id.
type updateRequest struct {
	ID string `json:"_id"`
	post.Input
}

// RegisterPostRoutes wires the blog post endpoints. The paths and response
// envelopes match what the editor frontend already speaks:
//
//	GET    /api/blogpost        ?page&filter&search  -> {data, totalCount}
//	POST   /api/blogpost                             -> 201 {message}
//	GET    /api/singleblogpost  ?id                  -> {data}
//	POST   /api/singleblogpost  body with _id        -> {data, message}
//	DELETE /api/singleblogpost  ?id                  -> {message}
func RegisterPostRoutes(r *gin.Engine, svc service.Service) {
	r.GET("/api/blogpost", func(c *gin.Context) { listPosts(c, svc) })
	r.POST("/api/blogpost", func(c *gin.Context) { createPost(c, svc) })
	r.GET("/api/singleblogpost", func(c *gin.Context) { getPost(c, svc) })
	r.POST("/api/singleblogpost", func(c *gin.Context) { updatePost(c, svc) })
	r.DELETE("/api/singleblogpost", func(c *gin.Context) { deletePost(c, svc) })
}

func listPosts(c *gin.Context, svc service.Service) {
	page, err := strconv.Atoi(c.Query("page"))
	if err != nil || page < 1 {
		page = 1
	}
	q := post.ListQuery{
		Filter: c.Query("filter"),
		Search: c.Query("search"),
		Page:   page,
	}
	items, total, err := svc.List(c.Request.Context(), q)
	if err != nil {
		logger.Errorf("list posts: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Error fetching blog posts"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": items, "totalCount": total})
}

func createPost(c *gin.Context, svc service.Service) {
	var in post.Input
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
		return
	}
	if _, err := svc.Create(c.Request.Context(), in); err != nil {
		respondError(c, err, "Error creating blog post")
		return
	}
	metrics.PostsCreated.Inc()
	c.JSON(http.StatusCreated, gin.H{"message": "Post created successfully"})
}

func getPost(c *gin.Context, svc service.Service) {
	id := c.Query("id")
	if id == "" {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Blog post ID is required"})
		return
	}
	p, err := svc.Get(c.Request.Context(), id)
	if err != nil {
		respondError(c, err, "Error fetching blog post")
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": p})
}

func updatePost(c *gin.Context, svc service.Service) {
	var req updateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
		return
	}
	if req.ID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Post ID is required"})
		return
	}
	p, err := svc.Update(c.Request.Context(), req.ID, req.Input)
	if err != nil {
		respondError(c, err, "Error updating blog post")
		return
	}
	metrics.PostsUpdated.Inc()
	c.JSON(http.StatusOK, gin.H{"data": p, "message": "Blog post updated successfully"})
}

func deletePost(c *gin.Context, svc service.Service) {
	id := c.Query("id")
	if id == "" {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Blog post ID is required"})
		return
	}
	if err := svc.Delete(c.Request.Context(), id); err != nil {
		respondError(c, err, "Error deleting blog post")
		return
	}
	metrics.PostsDeleted.Inc()
	c.JSON(http.StatusOK, gin.H{"message": "Blog post deleted successfully"})
}

// respondError maps error kinds onto status codes. Store faults are logged
// here; validation and not-found are the caller's problem, not ours.
func respondError(c *gin.Context, err error, fallback string) {
	switch apperr.KindOf(err) {
	case apperr.Validation:
		c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
	case apperr.NotFound:
		c.JSON(http.StatusNotFound, gin.H{"message": "Blog post not found"})
	default:
		logger.Errorf("%s: %v", fallback, err)
		c.JSON(http.StatusInternalServerError, gin.H{"message": fallback})
	}
}
