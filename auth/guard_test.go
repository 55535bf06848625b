package auth

import (
	"net/http/httptest"
	"testing"
	"yatube/models"

	"github.com/stretchr/testify/assert"
)

func TestLoginRequired(t *testing.T) {
	tests := []struct {
		name   string
		user   *models.User
		target string
		want   Decision
	}{
		{"guest", nil, "/create/", RedirectTo("/auth/login/?next=/create/")},
		{"guest, edit page", nil, "/posts/7/edit/", RedirectTo("/auth/login/?next=/posts/7/edit/")},
		{"guest, query kept", nil, "/follow/?page=2", RedirectTo("/auth/login/?next=/follow/%3Fpage%3D2")},
		{"user not in the database", &models.User{}, "/follow/", RedirectTo("/auth/login/?next=/follow/")},
		{"logged in", &models.User{ID: 3}, "/create/", Allow},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := LoginRequired(tt.user, httptest.NewRequest("GET", tt.target, nil))
			assert.Equal(t, tt.want, got)
			assert.Equal(t, tt.want.RedirectTo == "", got.Allowed())
		})
	}
}

func TestEditDecision(t *testing.T) {
	post := &models.Post{ID: 12, AuthorID: 5}
	tests := []struct {
		name string
		user *models.User
		want Decision
	}{
		{"author", &models.User{ID: 5}, Allow},
		{"someone else", &models.User{ID: 6}, RedirectTo("/posts/12/")},
		{"guest", nil, RedirectTo("/posts/12/")},
		{"zero user", &models.User{}, RedirectTo("/posts/12/")},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, EditDecision(post, tt.user))
			assert.Equal(t, tt.want.Allowed(), CanEdit(post, tt.user))
		})
	}
}
