package handler

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"

	"github.com/pressmark/pressmark/internal/post"
	"github.com/pressmark/pressmark/internal/post/repository"
	"github.com/pressmark/pressmark/internal/post/service"
)

func newTestRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	g := gin.New()
	RegisterPostRoutes(g, service.NewService(repository.NewMemoryRepo()))
	return g
}

func doJSON(t *testing.T, g *gin.Engine, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	var req *http.Request
	if body != "" {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, path, nil)
	}
	w := httptest.NewRecorder()
	g.ServeHTTP(w, req)
	return w
}

func createBody(title string) string {
	b, _ := json.Marshal(post.Input{
		Title:          title,
		Excerpt:        "excerpt",
		Content:        "<p>body</p>",
		FeaturedImage:  "https://img.example/a.png",
		Category:       "Technology",
		Tags:           "go",
		ReadTime:       "1 min",
		SEOTitle:       title,
		SEODescription: "desc",
		Status:         post.StatusDraft,
	})
	return string(b)
}

func TestPostHandler_CRUD(t *testing.T) {
	g := newTestRouter()

	// create
	w := doJSON(t, g, http.MethodPost, "/api/blogpost", createBody("first post"))
	require.Equal(t, http.StatusCreated, w.Code)

	// list
	w = doJSON(t, g, http.MethodGet, "/api/blogpost", "")
	require.Equal(t, http.StatusOK, w.Code)
	var listResp struct {
		Data       []post.Post `json:"data"`
		TotalCount int64       `json:"totalCount"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &listResp))
	require.Equal(t, int64(1), listResp.TotalCount)
	require.Len(t, listResp.Data, 1)
	id := listResp.Data[0].ID.Hex()

	// get
	w = doJSON(t, g, http.MethodGet, "/api/singleblogpost?id="+id, "")
	require.Equal(t, http.StatusOK, w.Code)
	var getResp struct {
		Data post.Post `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &getResp))
	require.Equal(t, "first post", getResp.Data.Title)

	// update (full replace, same envelope as the editor expects)
	update := fmt.Sprintf(`{"_id":%q,"title":"first post v2","excerpt":"e2","content":"<p>b2</p>","featuredImage":"https://img.example/b.png","category":"Travel","tags":"go,http","readTime":"2 min","seoTitle":"t2","seoDescription":"d2","status":"Publish"}`, id)
	w = doJSON(t, g, http.MethodPost, "/api/singleblogpost", update)
	require.Equal(t, http.StatusOK, w.Code)
	var updResp struct {
		Data    post.Post `json:"data"`
		Message string    `json:"message"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &updResp))
	require.Equal(t, "Blog post updated successfully", updResp.Message)
	require.Equal(t, "first post v2", updResp.Data.Title)
	require.Equal(t, post.StatusPublish, updResp.Data.Status)
	require.Equal(t, id, updResp.Data.ID.Hex())
	require.Equal(t, getResp.Data.CreatedAt, updResp.Data.CreatedAt)
	require.Equal(t, 1, updResp.Data.Version)

	// delete, then the post is gone
	w = doJSON(t, g, http.MethodDelete, "/api/singleblogpost?id="+id, "")
	require.Equal(t, http.StatusOK, w.Code)
	w = doJSON(t, g, http.MethodGet, "/api/singleblogpost?id="+id, "")
	require.Equal(t, http.StatusNotFound, w.Code)
}

func TestPostHandler_ListPaging(t *testing.T) {
	g := newTestRouter()
	for i := 0; i < 12; i++ {
		w := doJSON(t, g, http.MethodPost, "/api/blogpost", createBody(fmt.Sprintf("post %02d", i)))
		require.Equal(t, http.StatusCreated, w.Code)
	}

	w := doJSON(t, g, http.MethodGet, "/api/blogpost?page=2", "")
	require.Equal(t, http.StatusOK, w.Code)
	var resp struct {
		Data       []post.Post `json:"data"`
		TotalCount int64       `json:"totalCount"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Equal(t, int64(12), resp.TotalCount)
	require.Len(t, resp.Data, 3)

	// non-numeric page defaults to page 1
	w = doJSON(t, g, http.MethodGet, "/api/blogpost?page=abc", "")
	require.Equal(t, http.StatusOK, w.Code)
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Len(t, resp.Data, 9)
}

func TestPostHandler_Validation(t *testing.T) {
	g := newTestRouter()

	// create without required fields
	w := doJSON(t, g, http.MethodPost, "/api/blogpost", `{"title":""}`)
	require.Equal(t, http.StatusBadRequest, w.Code)

	// get without id / with malformed id / with unknown id
	w = doJSON(t, g, http.MethodGet, "/api/singleblogpost", "")
	require.Equal(t, http.StatusBadRequest, w.Code)
	w = doJSON(t, g, http.MethodGet, "/api/singleblogpost?id=zzz", "")
	require.Equal(t, http.StatusBadRequest, w.Code)
	w = doJSON(t, g, http.MethodGet, "/api/singleblogpost?id=65f000000000000000000000", "")
	require.Equal(t, http.StatusNotFound, w.Code)

	// update without _id
	w = doJSON(t, g, http.MethodPost, "/api/singleblogpost", `{"title":"x","status":"Draft"}`)
	require.Equal(t, http.StatusBadRequest, w.Code)
	var resp map[string]string
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Equal(t, "Post ID is required", resp["message"])

	// update of a missing post
	upd := `{"_id":"65f000000000000000000000","title":"x","excerpt":"e","content":"<p>c</p>","featuredImage":"f","category":"Health","tags":"t","readTime":"1 min","seoTitle":"s","seoDescription":"d","status":"Draft"}`
	w = doJSON(t, g, http.MethodPost, "/api/singleblogpost", upd)
	require.Equal(t, http.StatusNotFound, w.Code)

	// delete without id / of a missing post
	w = doJSON(t, g, http.MethodDelete, "/api/singleblogpost", "")
	require.Equal(t, http.StatusBadRequest, w.Code)
	w = doJSON(t, g, http.MethodDelete, "/api/singleblogpost?id=65f000000000000000000000", "")
	require.Equal(t, http.StatusNotFound, w.Code)
}
