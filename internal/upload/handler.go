package upload

import (
	"context"
	"io"
	"net/http"
	"path/filepath"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/pressmark/pressmark/internal/apperr"
	"github.com/pressmark/pressmark/pkg/logger"
	"github.com/pressmark/pressmark/pkg/metrics"
)

// ObjectStore is the slice of the storage client the relay needs.
type ObjectStore interface {
	UploadFile(ctx context.Context, key string, reader io.Reader, size int64, contentType string) error
	ObjectURL(key string) string
}

// RegisterUploadRoutes wires POST /api/uploadImage: a multipart relay that
// pushes every "file" part to the image host and answers with one public URL
// per file, in input order. The batch is all-or-nothing: a single failed part
// fails the whole request.
func RegisterUploadRoutes(r *gin.Engine, store ObjectStore) {
	r.POST("/api/uploadImage", func(c *gin.Context) { uploadImages(c, store) })
}

func uploadImages(c *gin.Context, store ObjectStore) {
	const op = "upload.Images"

	if !strings.Contains(c.ContentType(), "multipart/form-data") {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Request must be multipart/form-data"})
		return
	}
	form, err := c.MultipartForm()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Invalid form data"})
		return
	}
	files := form.File["file"]
	if len(files) == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "No files provided"})
		return
	}

	urls := make([]string, len(files))
	g, ctx := errgroup.WithContext(c.Request.Context())
	for i, fh := range files {
		g.Go(func() error {
			f, err := fh.Open()
			if err != nil {
				return apperr.Wrap(apperr.Upload, op, err)
			}
			defer f.Close()
			key := uuid.NewString() + filepath.Ext(fh.Filename)
			if err := store.UploadFile(ctx, key, f, fh.Size, fh.Header.Get("Content-Type")); err != nil {
				return apperr.Wrap(apperr.Upload, op, err)
			}
			urls[i] = store.ObjectURL(key)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		logger.Errorf("image upload failed: %v", err)
		metrics.ImageUploads.WithLabelValues("error").Inc()
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"message": "Failed to upload image files. Please try again.",
		})
		return
	}
	metrics.ImageUploads.WithLabelValues("ok").Add(float64(len(files)))
	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Images uploaded successfully",
		"data":    urls,
	})
}
