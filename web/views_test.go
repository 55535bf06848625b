package web

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"testing"
	"yatube/models"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewPostView(t *testing.T) {
	groupID := uint64(4)
	post := &models.Post{
		ID:        9,
		CreatedAt: 1700000000000,
		UpdatedAt: 1700000000000,
		AuthorID:  2,
		Author:    models.User{ID: 2, Username: "leo"},
		GroupID:   &groupID,
		Group:     &models.Group{ID: 4, Title: "Cats", Slug: "cats"},
		Text:      "hello",
		Image:     "posts/a.png",
	}
	tests := []struct {
		name         string
		viewer       *models.User
		wantEditable bool
	}{
		{"author", &models.User{ID: 2}, true},
		{"other user", &models.User{ID: 3}, false},
		{"guest", nil, false},
		{"user without id", &models.User{}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := NewPostView(post, tt.viewer)
			assert.Equal(t, tt.wantEditable, got.Editable)
			assert.Equal(t, "/posts/9/", got.URL)
			assert.Equal(t, "/posts/9/edit/", got.EditURL)
			assert.Equal(t, "/profile/leo/", got.Author.URL)
			require.NotNil(t, got.Group)
			assert.Equal(t, "/group/cats/", got.Group.URL)
			assert.Equal(t, "/media/posts/a.png", got.Image)
			assert.Equal(t, got.Image, got.Thumb)
			assert.False(t, got.Edited)
		})
	}

	post.Group, post.GroupID, post.Image = nil, nil, ""
	got := NewPostView(post, nil)
	assert.Nil(t, got.Group)
	assert.Empty(t, got.Image)
	assert.Empty(t, got.Thumb)
}

func TestNewPageInfo(t *testing.T) {
	info := NewPageInfo(models.NewPage(25, 10, "2"))
	assert.Equal(t, PageInfo{Number: 2, NumPages: 3, Count: 25, HasNext: true, HasPrevious: true, Next: 3, Previous: 1}, info)

	info = NewPageInfo(models.NewPage(5, 10, ""))
	assert.Equal(t, PageInfo{Number: 1, NumPages: 1, Count: 5}, info)
}

func TestViewerOf(t *testing.T) {
	assert.Nil(t, ViewerOf(nil))
	assert.Nil(t, ViewerOf(&models.User{}))
	assert.Equal(t, &UserView{ID: 1, Username: "a", URL: "/profile/a/"}, ViewerOf(&models.User{ID: 1, Username: "a"}))
}

func TestLinebreaks(t *testing.T) {
	assert.Equal(t, "a &lt;b&gt;<br>c", string(linebreaks("a <b>\nc")))
}

func TestTemplatesRender(t *testing.T) {
	gin.SetMode(gin.TestMode)
	tmpl := Templates()
	viewer := &UserView{ID: 1, Username: "leo", URL: "/profile/leo/"}
	pages := map[string]any{
		"index.tmpl": IndexPage{
			Base:  Base{Title: "Latest posts", Viewer: viewer},
			Posts: []PostView{{ID: 1, Text: "first\nline", URL: "/posts/1/", Author: *viewer}},
			Page:  PageInfo{Number: 1, NumPages: 2, HasNext: true, Next: 2},
		},
		"create_post.tmpl": PostFormPage{
			Base:   Base{Title: "New post", Viewer: viewer},
			Action: "/create/",
			Errors: map[string]string{"text": "This field is required."},
			Groups: []GroupView{{ID: 1, Title: "Cats"}},
		},
		"login.tmpl": LoginPage{Base: Base{Title: "Log in"}, Next: "/create/"},
		"404.tmpl":   MessagePage{Base: Base{Title: "Page not found"}, Path: "/nowhere"},
	}
	for name, page := range pages {
		t.Run(name, func(t *testing.T) {
			var buf bytes.Buffer
			require.NoError(t, tmpl.ExecuteTemplate(&buf, name, page))
			assert.NotEmpty(t, buf.String())
		})
	}
}

func TestRenderJSON(t *testing.T) {
	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/?format=json", nil)
	Render(c, http.StatusOK, "index.tmpl", MessagePage{Message: "hi"})
	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"title":"","viewer":null,"message":"hi","path":""}`, w.Body.String())
}
