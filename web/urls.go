package web

import (
	"net/url"
	"strconv"
)

func PostURL(id uint64) string {
	return "/posts/" + strconv.FormatUint(id, 10) + "/"
}

func PostEditURL(id uint64) string {
	return PostURL(id) + "edit/"
}

func CommentURL(postID uint64) string {
	return PostURL(postID) + "comment/"
}

func ProfileURL(username string) string {
	return "/profile/" + url.PathEscape(username) + "/"
}

func GroupURL(slug string) string {
	return "/group/" + url.PathEscape(slug) + "/"
}

// MediaURL is where a stored file is served from, empty for no file
func MediaURL(path string) string {
	if path == "" {
		return ""
	}
	return "/media/" + path
}
