package handlers

import (
	"net/http"
	"strings"
	"yatube/models"
	"yatube/web"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
)

type CommentRequest struct {
	Text string `form:"text" binding:"required"`
}

// AddComment stores a comment and goes back to the post. An empty comment is dropped without complaint.
func AddComment(c *gin.Context, user *models.User) {
	id, ok := paramID(c, "id")
	if !ok {
		NotFoundPage(c)
		return
	}
	post, err := models.PostByID(id)
	if err != nil {
		lookupFailed(c, "AddComment", err)
		return
	}
	var request CommentRequest
	if err := c.ShouldBindWith(&request, binding.Form); err == nil {
		if text := strings.TrimSpace(request.Text); text != "" {
			if _, err := models.CommentCreate(post.ID, user.ID, text); err != nil {
				serverError(c, "AddComment", err)
				return
			}
		}
	}
	c.Redirect(http.StatusFound, web.PostURL(post.ID))
}
