package web

import (
	"yatube/auth"
	"yatube/models"
	"yatube/utils"
)

type UserView struct {
	ID       uint64 `json:"id"`
	Username string `json:"username"`
	URL      string `json:"url"`
}

type GroupView struct {
	ID          uint64 `json:"id"`
	Title       string `json:"title"`
	Slug        string `json:"slug"`
	Description string `json:"description"`
	URL         string `json:"url"`
}

type PostView struct {
	ID       uint64     `json:"id"`
	Text     string     `json:"text"`
	Created  string     `json:"created"`
	Edited   bool       `json:"edited"`
	Author   UserView   `json:"author"`
	Group    *GroupView `json:"group"`
	Image    string     `json:"image"`
	Thumb    string     `json:"thumb"`
	URL      string     `json:"url"`
	EditURL  string     `json:"edit_url"`
	Editable bool       `json:"editable"`
}

type CommentView struct {
	ID      uint64   `json:"id"`
	Text    string   `json:"text"`
	Created string   `json:"created"`
	Author  UserView `json:"author"`
}

// PageInfo is the paginator block under every feed
type PageInfo struct {
	Number      int   `json:"number"`
	NumPages    int   `json:"num_pages"`
	Count       int64 `json:"count"`
	HasNext     bool  `json:"has_next"`
	HasPrevious bool  `json:"has_previous"`
	Next        int   `json:"next"`
	Previous    int   `json:"previous"`
}

// Base is embedded in every page
type Base struct {
	Title  string    `json:"title"`
	Viewer *UserView `json:"viewer"`
}

type IndexPage struct {
	Base
	Posts []PostView `json:"posts"`
	Page  PageInfo   `json:"page"`
}

type GroupPage struct {
	Base
	Group GroupView  `json:"group"`
	Posts []PostView `json:"posts"`
	Page  PageInfo   `json:"page"`
}

type ProfilePage struct {
	Base
	Author         UserView   `json:"author"`
	PostCount      int64      `json:"post_count"`
	FollowerCount  int64      `json:"follower_count"`
	FollowingCount int64      `json:"following_count"`
	Following      bool       `json:"following"`
	CanFollow      bool       `json:"can_follow"`
	Posts          []PostView `json:"posts"`
	Page           PageInfo   `json:"page"`
}

type PostDetailPage struct {
	Base
	Post            PostView      `json:"post"`
	AuthorPostCount int64         `json:"author_post_count"`
	Comments        []CommentView `json:"comments"`
	CommentURL      string        `json:"comment_url"`
}

// PostForm holds the submitted (or stored) values of the create/edit form
type PostForm struct {
	Text    string `json:"text"`
	GroupID string `json:"group"`
	Image   string `json:"image"`
}

type PostFormPage struct {
	Base
	IsEdit bool              `json:"is_edit"`
	Action string            `json:"action"`
	Form   PostForm          `json:"form"`
	Errors map[string]string `json:"errors"`
	Groups []GroupView       `json:"groups"`
}

type FollowPage struct {
	Base
	Posts []PostView `json:"posts"`
	Page  PageInfo   `json:"page"`
}

type LoginPage struct {
	Base
	Username string `json:"username"`
	Next     string `json:"next"`
	Error    string `json:"error"`
}

type SignupForm struct {
	Username string `json:"username"`
	Email    string `json:"email"`
}

type SignupPage struct {
	Base
	Form   SignupForm        `json:"form"`
	Errors map[string]string `json:"errors"`
}

type MessagePage struct {
	Base
	Message string `json:"message"`
	Path    string `json:"path"`
}

func NewUserView(u *models.User) UserView {
	return UserView{ID: u.ID, Username: u.Username, URL: ProfileURL(u.Username)}
}

// ViewerOf is nil for guests
func ViewerOf(u *models.User) *UserView {
	if u == nil || u.ID == 0 {
		return nil
	}
	v := NewUserView(u)
	return &v
}

func NewGroupView(g *models.Group) GroupView {
	return GroupView{
		ID:          g.ID,
		Title:       g.Title,
		Slug:        g.Slug,
		Description: g.Description,
		URL:         GroupURL(g.Slug),
	}
}

func NewGroupViews(groups []models.Group) []GroupView {
	result := make([]GroupView, 0, len(groups))
	for i := range groups {
		result = append(result, NewGroupView(&groups[i]))
	}
	return result
}

// NewPostView converts a post (with Author and Group loaded) for display to viewer
func NewPostView(p *models.Post, viewer *models.User) PostView {
	view := PostView{
		ID:       p.ID,
		Text:     p.Text,
		Created:  utils.FormatDate(p.CreatedAt),
		Edited:   p.Edited(),
		Author:   NewUserView(&p.Author),
		Image:    MediaURL(p.Image),
		Thumb:    MediaURL(p.ImageThumb),
		URL:      PostURL(p.ID),
		EditURL:  PostEditURL(p.ID),
		Editable: auth.CanEdit(p, viewer),
	}
	if view.Thumb == "" {
		view.Thumb = view.Image
	}
	if p.Group != nil {
		group := NewGroupView(p.Group)
		view.Group = &group
	}
	return view
}

func NewPostViews(posts []models.Post, viewer *models.User) []PostView {
	result := make([]PostView, 0, len(posts))
	for i := range posts {
		result = append(result, NewPostView(&posts[i], viewer))
	}
	return result
}

func NewCommentViews(comments []models.Comment) []CommentView {
	result := make([]CommentView, 0, len(comments))
	for _, c := range comments {
		result = append(result, CommentView{
			ID:      c.ID,
			Text:    c.Text,
			Created: utils.FormatDate(c.CreatedAt),
			Author:  NewUserView(&c.Author),
		})
	}
	return result
}

func NewPageInfo(p models.Page) PageInfo {
	info := PageInfo{
		Number:      p.Number,
		NumPages:    p.NumPages,
		Count:       p.Count,
		HasNext:     p.HasNext(),
		HasPrevious: p.HasPrevious(),
	}
	if info.HasNext {
		info.Next = p.Number + 1
	}
	if info.HasPrevious {
		info.Previous = p.Number - 1
	}
	return info
}
