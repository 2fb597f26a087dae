// memserver runs the blog API against the in-memory repository so the editor
// frontend can be exercised without MongoDB or MinIO.
package main

import (
	"log"
	"os"

	"github.com/gin-gonic/gin"

	posthandler "github.com/pressmark/pressmark/internal/post/handler"
	"github.com/pressmark/pressmark/internal/post/repository"
	"github.com/pressmark/pressmark/internal/post/service"
)

func main() {
	port := os.Getenv("MEMSERVER_PORT")
	if port == "" {
		port = "5012"
	}

	r := gin.New()
	r.Use(gin.Recovery())

	svc := service.NewService(repository.NewMemoryRepo())
	posthandler.RegisterPostRoutes(r, svc)

	log.Printf("memory-backed blog service listening on :%s", port)
	if err := r.Run(":" + port); err != nil {
		log.Fatal(err)
	}
}
