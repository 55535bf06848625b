package auth

import (
	"yatube/models"

	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"
)

const (
	userIdKey      = "id"
	userContextKey = "auth.user"
)

type Session struct {
	sessions.Session
}

func LoadSession(c *gin.Context) *Session {
	return &Session{
		Session: sessions.Default(c),
	}
}

func (s *Session) LoginUser(user *models.User) error {
	s.Clear()
	s.Set(userIdKey, user.ID)
	return s.Save()
}

func (s *Session) LogoutUser() error {
	s.Delete(userIdKey)
	s.Clear()
	s.Options(sessions.Options{Path: "/", MaxAge: -1})
	return s.Save()
}

func (s *Session) UserID() uint64 {
	id, _ := s.Get(userIdKey).(uint64)
	return id
}

// User loads the logged in user, ID is 0 for guests or users that no longer exist
func (s *Session) User() (user models.User) {
	id := s.UserID()
	if id == 0 {
		return
	}
	user, err := models.UserByID(id)
	if err != nil {
		user = models.User{}
	}
	return
}

// CurrentUser returns the logged in user or nil for guests. The user is loaded once per request.
func CurrentUser(c *gin.Context) *models.User {
	if cached, ok := c.Get(userContextKey); ok {
		return cached.(*models.User)
	}
	var result *models.User
	if user := LoadSession(c).User(); user.ID != 0 {
		result = &user
	}
	c.Set(userContextKey, result)
	return result
}
