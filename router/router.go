package router

import (
	"net/http"
	"strings"
	"time"
	"yatube/auth"
	"yatube/config"
	"yatube/db"
	"yatube/handlers"
	"yatube/utils"
	"yatube/web"

	"github.com/gin-contrib/cors"
	"github.com/gin-contrib/gzip"
	"github.com/gin-contrib/sessions"
	gormsessions "github.com/gin-contrib/sessions/gorm"
	"github.com/gin-gonic/gin"
)

const (
	sessionCookieName = "sessionid"
	mediaCacheTime    = 30 * 86400 // uploaded files never change
)

// New builds the engine with all middleware and routes. db and storage must be initialised.
func New() *gin.Engine {
	router := gin.Default()
	_ = router.SetTrustedProxies([]string{})
	if config.DEBUG_MODE {
		router.Use(utils.ErrorLogMiddleware)
	}
	if config.CORS_ORIGINS != "" {
		router.Use(cors.New(cors.Config{
			AllowOrigins:     strings.Split(config.CORS_ORIGINS, ","),
			AllowMethods:     []string{"GET", "POST"},
			AllowHeaders:     []string{"Origin"},
			ExposeHeaders:    []string{"Content-Length"},
			AllowCredentials: true,
			MaxAge:           30 * 24 * time.Hour,
		}))
	}
	router.SetHTMLTemplate(web.Templates())

	sessionKey := config.SESSION_KEY
	if sessionKey == "" {
		sessionKey = utils.RandSalt(32)
	}
	cookieStore := gormsessions.NewStore(db.Instance, true, []byte(sessionKey))
	cookieStore.Options(sessions.Options{
		Path:     "/",
		MaxAge:   config.SESSION_MAX_AGE,
		HttpOnly: true,
		Secure:   config.TLS_DOMAINS != "",
		SameSite: http.SameSiteLaxMode,
	})
	router.Use(sessions.Sessions(sessionCookieName, cookieStore))
	if !config.DEBUG_MODE {
		router.Use(gzip.Gzip(gzip.DefaultCompression, gzip.WithExcludedPaths([]string{"/media/"})))
	}
	router.Use((&utils.CacheRouter{CacheTime: utils.CacheNoCache}).Handler()) // No cache by default, media overrides that

	authRouter := &auth.Router{Base: router}
	// Feeds
	router.GET("/", handlers.Index)
	router.GET("/group/:slug/", handlers.GroupPosts)
	router.GET("/profile/:username/", handlers.Profile)
	authRouter.GET("/follow/", handlers.FollowIndex)
	// Posts
	router.GET("/posts/:id/", handlers.PostDetail)
	authRouter.FORM("/posts/:id/edit/", handlers.PostEdit)
	authRouter.POST("/posts/:id/comment/", handlers.AddComment)
	authRouter.FORM("/create/", handlers.PostCreate)
	// Follow graph
	authRouter.FORM("/profile/:username/follow/", handlers.ProfileFollow)
	authRouter.FORM("/profile/:username/unfollow/", handlers.ProfileUnfollow)
	// Accounts
	router.GET("/auth/signup/", handlers.Signup)
	router.POST("/auth/signup/", handlers.Signup)
	router.GET("/auth/login/", handlers.Login)
	router.POST("/auth/login/", handlers.Login)
	router.GET("/auth/logout/", handlers.Logout)
	router.POST("/auth/logout/", handlers.Logout)
	// Uploaded images
	router.GET("/media/*path", (&utils.CacheRouter{CacheTime: mediaCacheTime}).Handler(), handlers.Media)

	router.NoRoute(handlers.NotFoundPage)
	return router
}
