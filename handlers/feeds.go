package handlers

import (
	"net/http"
	"yatube/auth"
	"yatube/models"
	"yatube/web"

	"github.com/gin-gonic/gin"
)

func Index(c *gin.Context) {
	viewer := auth.CurrentUser(c)
	feed, err := models.FeedAll(c.Query("page"))
	if err != nil {
		serverError(c, "Index", err)
		return
	}
	web.Render(c, http.StatusOK, "index.tmpl", web.IndexPage{
		Base:  base(c, "Latest posts"),
		Posts: web.NewPostViews(feed.Posts, viewer),
		Page:  web.NewPageInfo(feed.Page),
	})
}

func GroupPosts(c *gin.Context) {
	group, err := models.GroupBySlug(c.Param("slug"))
	if err != nil {
		lookupFailed(c, "GroupPosts", err)
		return
	}
	feed, err := models.FeedByGroup(group.ID, c.Query("page"))
	if err != nil {
		serverError(c, "GroupPosts", err)
		return
	}
	web.Render(c, http.StatusOK, "group_list.tmpl", web.GroupPage{
		Base:  base(c, group.Title),
		Group: web.NewGroupView(&group),
		Posts: web.NewPostViews(feed.Posts, auth.CurrentUser(c)),
		Page:  web.NewPageInfo(feed.Page),
	})
}

func Profile(c *gin.Context) {
	author, err := models.UserByUsername(c.Param("username"))
	if err != nil {
		lookupFailed(c, "Profile", err)
		return
	}
	viewer := auth.CurrentUser(c)
	feed, err := models.FeedByAuthor(author.ID, c.Query("page"))
	if err != nil {
		serverError(c, "Profile", err)
		return
	}
	page := web.ProfilePage{
		Base:      base(c, "Profile of "+author.Username),
		Author:    web.NewUserView(&author),
		PostCount: feed.Count,
		CanFollow: viewer != nil && viewer.ID != author.ID,
		Posts:     web.NewPostViews(feed.Posts, viewer),
		Page:      web.NewPageInfo(feed.Page),
	}
	if page.FollowerCount, err = models.FollowerCount(author.ID); err != nil {
		serverError(c, "Profile", err)
		return
	}
	if page.FollowingCount, err = models.FollowingCount(author.ID); err != nil {
		serverError(c, "Profile", err)
		return
	}
	if page.CanFollow {
		if page.Following, err = models.IsFollowing(viewer.ID, author.ID); err != nil {
			serverError(c, "Profile", err)
			return
		}
	}
	web.Render(c, http.StatusOK, "profile.tmpl", page)
}

// FollowIndex lists posts of the authors the user follows
func FollowIndex(c *gin.Context, user *models.User) {
	feed, err := models.FeedFollowedBy(user.ID, c.Query("page"))
	if err != nil {
		serverError(c, "FollowIndex", err)
		return
	}
	web.Render(c, http.StatusOK, "follow.tmpl", web.FollowPage{
		Base:  base(c, "Following"),
		Posts: web.NewPostViews(feed.Posts, user),
		Page:  web.NewPageInfo(feed.Page),
	})
}
