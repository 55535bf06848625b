package handlers

import (
	"net/http"
	"yatube/models"
	"yatube/web"

	"github.com/gin-gonic/gin"
)

func ProfileFollow(c *gin.Context, user *models.User) {
	author, err := models.UserByUsername(c.Param("username"))
	if err != nil {
		lookupFailed(c, "ProfileFollow", err)
		return
	}
	// Following yourself is silently ignored
	if _, err = models.FollowCreate(user.ID, author.ID); err != nil {
		serverError(c, "ProfileFollow", err)
		return
	}
	c.Redirect(http.StatusFound, web.ProfileURL(author.Username))
}

func ProfileUnfollow(c *gin.Context, user *models.User) {
	author, err := models.UserByUsername(c.Param("username"))
	if err != nil {
		lookupFailed(c, "ProfileUnfollow", err)
		return
	}
	if err = models.FollowDelete(user.ID, author.ID); err != nil {
		serverError(c, "ProfileUnfollow", err)
		return
	}
	c.Redirect(http.StatusFound, web.ProfileURL(author.Username))
}
