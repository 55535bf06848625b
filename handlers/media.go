package handlers

import (
	"strings"
	"yatube/storage"

	"github.com/gin-gonic/gin"
)

// Media serves uploaded post images from the configured storage
func Media(c *gin.Context) {
	path := strings.TrimPrefix(c.Param("path"), "/")
	if !storage.ValidPath(path) {
		NotFoundPage(c)
		return
	}
	storage.GetDefaultStorage().Serve(path, c.Request, c.Writer)
}
