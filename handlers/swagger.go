package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// RegisterSwagger registers minimal Swagger/OpenAPI endpoints for the blog service.
// - GET /swagger/index.html  -> a small HTML page that loads the OpenAPI JSON
// - GET /swagger/doc.json    -> machine-readable OpenAPI JSON
func RegisterSwagger(rg *gin.Engine) {
	rg.GET("/swagger/index.html", func(c *gin.Context) {
		c.Header("Content-Type", "text/html; charset=utf-8")
		c.String(http.StatusOK, swaggerHTML)
	})

	rg.GET("/swagger/doc.json", func(c *gin.Context) {
		c.Header("Content-Type", "application/json")
		c.String(http.StatusOK, swaggerJSON)
	})
}

const swaggerHTML = `<!doctype html>
<html>
  <head>
    <meta charset="utf-8" />
    <title>pressmark — Swagger</title>
    <link rel="stylesheet" href="https://unpkg.com/swagger-ui-dist@4/swagger-ui.css" />
  </head>
  <body>
    <div id="swagger-ui"></div>
    <script src="https://unpkg.com/swagger-ui-dist@4/swagger-ui-bundle.js"></script>
    <script>
      window.ui = SwaggerUIBundle({
        url: '/swagger/doc.json',
        dom_id: '#swagger-ui',
      })
    </script>
  </body>
</html>`

// Minimal OpenAPI document describing the blog endpoints.
const swaggerJSON = `{
  "openapi": "3.0.0",
  "info": { "title": "pressmark", "version": "v0.1.0" },
  "paths": {
    "/api/blogpost": {
      "get": {
        "summary": "List blog posts (paged, filterable)",
        "parameters": [
          { "name": "page", "in": "query", "schema": { "type": "integer", "default": 1 } },
          { "name": "filter", "in": "query", "schema": { "type": "string", "enum": ["", "Draft", "Publish"] } },
          { "name": "search", "in": "query", "schema": { "type": "string" } }
        ],
        "responses": { "200": { "description": "{data, totalCount}" }, "500": { "description": "store failure" } }
      },
      "post": {
        "summary": "Create a blog post",
        "requestBody": { "content": { "application/json": { "schema": {"type":"object","properties":{"title":{"type":"string"},"excerpt":{"type":"string"},"content":{"type":"string"},"featuredImage":{"type":"string"},"category":{"type":"string"},"tags":{"type":"string"},"readTime":{"type":"string"},"seoTitle":{"type":"string"},"seoDescription":{"type":"string"},"status":{"type":"string","enum":["Draft","Publish"]}}}}}},
        "responses": { "201": { "description": "created" }, "400": { "description": "validation failure" }, "500": { "description": "store failure" } }
      }
    },
    "/api/singleblogpost": {
      "get": {
        "summary": "Fetch one blog post",
        "parameters": [ { "name": "id", "in": "query", "required": true, "schema": { "type": "string" } } ],
        "responses": { "200": { "description": "{data}" }, "400": { "description": "missing or invalid id" }, "404": { "description": "not found" }, "500": { "description": "store failure" } }
      },
      "post": {
        "summary": "Update a blog post (full replace)",
        "requestBody": { "content": { "application/json": { "schema": {"type":"object","required":["_id"],"properties":{"_id":{"type":"string"}}}}}},
        "responses": { "200": { "description": "{data, message}" }, "400": { "description": "missing _id" }, "404": { "description": "not found" }, "500": { "description": "store failure" } }
      },
      "delete": {
        "summary": "Delete a blog post",
        "parameters": [ { "name": "id", "in": "query", "required": true, "schema": { "type": "string" } } ],
        "responses": { "200": { "description": "deleted" }, "400": { "description": "missing id" }, "404": { "description": "not found" }, "500": { "description": "store failure" } }
      }
    },
    "/api/uploadImage": {
      "post": {
        "summary": "Relay image uploads to the hosted image store",
        "requestBody": { "content": { "multipart/form-data": { "schema": {"type":"object","properties":{"file":{"type":"array","items":{"type":"string","format":"binary"}}}}}}},
        "responses": { "200": { "description": "{success, data: urls}" }, "400": { "description": "wrong content type or no files" }, "500": { "description": "upload failure" } }
      }
    },
    "/health": { "get": { "summary": "Liveness check", "responses": { "200": { "description": "healthy" } } } },
    "/ready": { "get": { "summary": "Readiness check", "responses": { "200": { "description": "ready" }, "503": { "description": "not ready" } } } }
  }
}`
