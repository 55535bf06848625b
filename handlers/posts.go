package handlers

import (
	"errors"
	"net/http"
	"strconv"
	"strings"
	"yatube/auth"
	"yatube/models"
	"yatube/web"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
)

type PostFormRequest struct {
	Text  string `form:"text" binding:"required"`
	Group string `form:"group" binding:"omitempty,numeric"`
}

var postFormFields = map[string]string{
	"Text":  "text",
	"Group": "group",
}

func PostDetail(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		NotFoundPage(c)
		return
	}
	post, err := models.PostByID(id)
	if err != nil {
		lookupFailed(c, "PostDetail", err)
		return
	}
	viewer := auth.CurrentUser(c)
	page := web.PostDetailPage{
		Base:       base(c, truncate(post.Text, 30)),
		Post:       web.NewPostView(&post, viewer),
		CommentURL: web.CommentURL(post.ID),
	}
	if page.AuthorPostCount, err = models.PostCountByAuthor(post.AuthorID); err != nil {
		serverError(c, "PostDetail", err)
		return
	}
	comments, err := models.CommentsForPost(post.ID)
	if err != nil {
		serverError(c, "PostDetail", err)
		return
	}
	page.Comments = web.NewCommentViews(comments)
	web.Render(c, http.StatusOK, "post_detail.tmpl", page)
}

func PostCreate(c *gin.Context, user *models.User) {
	page, ok := newPostFormPage(c, "New post", "/create/")
	if !ok {
		return
	}
	if c.Request.Method != http.MethodPost {
		web.Render(c, http.StatusOK, "create_post.tmpl", page)
		return
	}
	post := models.Post{AuthorID: user.ID}
	if valid, err := bindPostForm(c, &page, &post); err != nil {
		serverError(c, "PostCreate", err)
		return
	} else if !valid {
		web.Render(c, http.StatusOK, "create_post.tmpl", page)
		return
	}
	if err := models.PostCreate(&post); err != nil {
		deleteImage(storedImage{Path: post.Image, Thumb: post.ImageThumb})
		serverError(c, "PostCreate", err)
		return
	}
	c.Redirect(http.StatusFound, web.ProfileURL(user.Username))
}

func PostEdit(c *gin.Context, user *models.User) {
	id, ok := paramID(c, "id")
	if !ok {
		NotFoundPage(c)
		return
	}
	post, err := models.PostByID(id)
	if err != nil {
		lookupFailed(c, "PostEdit", err)
		return
	}
	if decision := auth.EditDecision(&post, user); !decision.Allowed() {
		c.Redirect(http.StatusFound, decision.RedirectTo)
		return
	}
	page, ok := newPostFormPage(c, "Edit post", web.PostEditURL(post.ID))
	if !ok {
		return
	}
	page.IsEdit = true
	page.Form = web.PostForm{Text: post.Text, Image: web.MediaURL(post.Image)}
	if post.GroupID != nil {
		page.Form.GroupID = strconv.FormatUint(*post.GroupID, 10)
	}
	if c.Request.Method != http.MethodPost {
		web.Render(c, http.StatusOK, "create_post.tmpl", page)
		return
	}
	previous := storedImage{Path: post.Image, Thumb: post.ImageThumb}
	if valid, err := bindPostForm(c, &page, &post); err != nil {
		serverError(c, "PostEdit", err)
		return
	} else if !valid {
		web.Render(c, http.StatusOK, "create_post.tmpl", page)
		return
	}
	if err := models.PostUpdate(&post); err != nil {
		if post.Image != previous.Path {
			deleteImage(storedImage{Path: post.Image, Thumb: post.ImageThumb})
		}
		serverError(c, "PostEdit", err)
		return
	}
	if post.Image != previous.Path {
		deleteImage(previous)
	}
	c.Redirect(http.StatusFound, web.PostURL(post.ID))
}

func newPostFormPage(c *gin.Context, title, action string) (page web.PostFormPage, ok bool) {
	groups, err := models.GroupList()
	if err != nil {
		serverError(c, "GroupList", err)
		return page, false
	}
	return web.PostFormPage{
		Base:   base(c, title),
		Action: action,
		Errors: map[string]string{},
		Groups: web.NewGroupViews(groups),
	}, true
}

// bindPostForm copies a valid submission into post and stores its image, if any.
// When the submission is invalid page carries the submitted values and the errors to show.
func bindPostForm(c *gin.Context, page *web.PostFormPage, post *models.Post) (valid bool, err error) {
	var request PostFormRequest
	bindErr := c.ShouldBindWith(&request, binding.Form)
	page.Form.Text = request.Text
	page.Form.GroupID = request.Group
	page.Errors = fieldErrors(bindErr, postFormFields)

	text := strings.TrimSpace(request.Text)
	if text == "" {
		page.Errors["text"] = errRequired
	}
	var groupID *uint64
	if _, invalid := page.Errors["group"]; !invalid && request.Group != "" {
		id, _ := strconv.ParseUint(request.Group, 10, 64)
		if group, err := models.GroupByID(id); err != nil {
			page.Errors["group"] = errInvalidGroup
		} else {
			groupID = &group.ID
		}
	}
	if len(page.Errors) > 0 {
		return false, nil
	}

	fileHeader, err := c.FormFile("image")
	if err != nil && !errors.Is(err, http.ErrMissingFile) && !errors.Is(err, http.ErrNotMultipart) {
		page.Errors["image"] = errNotAnImage.Error()
		return false, nil
	}
	if fileHeader != nil {
		img, err := saveImage(fileHeader)
		var invalid imageError
		if errors.As(err, &invalid) {
			page.Errors["image"] = invalid.Error()
			return false, nil
		} else if err != nil {
			return false, err
		}
		post.Image = img.Path
		post.ImageThumb = img.Thumb
	}
	post.Text = text
	post.GroupID = groupID
	return true, nil
}

func truncate(s string, n int) string {
	runes := []rune(s)
	if len(runes) <= n {
		return s
	}
	return string(runes[:n]) + "…"
}
