package auth

import (
	"net/http"
	"net/url"
	"strconv"
	"yatube/config"
	"yatube/models"
)

// Decision is the outcome of a guard: either Allow or a redirect to another page
type Decision struct {
	RedirectTo string
}

var Allow = Decision{}

func RedirectTo(path string) Decision {
	return Decision{RedirectTo: path}
}

func (d Decision) Allowed() bool {
	return d.RedirectTo == ""
}

// LoginRequired lets authenticated users through and sends guests to the login page,
// remembering where they were going
func LoginRequired(user *models.User, request *http.Request) Decision {
	if user != nil && user.ID != 0 {
		return Allow
	}
	return RedirectTo(LoginURL(request.URL))
}

// LoginURL is the login page with a next parameter pointing back at target
func LoginURL(target *url.URL) string {
	next := (&url.URL{Path: target.Path}).EscapedPath()
	if target.RawQuery != "" {
		next += "%3F" + url.QueryEscape(target.RawQuery)
	}
	return config.LOGIN_URL + "?next=" + next
}

// CanEdit reports whether user may change post. Only the author can.
func CanEdit(post *models.Post, user *models.User) bool {
	return post != nil && user != nil && user.ID != 0 && post.AuthorID == user.ID
}

// EditDecision silently sends everyone but the author back to the post
func EditDecision(post *models.Post, user *models.User) Decision {
	if CanEdit(post, user) {
		return Allow
	}
	return RedirectTo("/posts/" + strconv.FormatUint(post.ID, 10) + "/")
}
