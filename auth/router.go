package auth

import (
	"net/http"
	"yatube/models"

	"github.com/gin-gonic/gin"
)

// User is authenticated
type HandlerFunc func(c *gin.Context, user *models.User)

// Router is a wrapper class that adds login checks + User pre-loading
type Router struct {
	Base gin.IRoutes
}

func (cr *Router) baseExec(c *gin.Context, handler HandlerFunc) {
	user := CurrentUser(c)
	if decision := LoginRequired(user, c.Request); !decision.Allowed() {
		c.Redirect(http.StatusFound, decision.RedirectTo)
		c.Abort()
		return
	}
	handler(c, user)
}

func (cr *Router) POST(path string, handler HandlerFunc) {
	cr.Base.POST(path, func(c *gin.Context) {
		cr.baseExec(c, handler)
	})
}

func (cr *Router) GET(path string, handler HandlerFunc) {
	cr.Base.GET(path, func(c *gin.Context) {
		cr.baseExec(c, handler)
	})
}

// FORM registers the handler for both GET (show the form) and POST (submit it)
func (cr *Router) FORM(path string, handler HandlerFunc) {
	cr.GET(path, handler)
	cr.POST(path, handler)
}
