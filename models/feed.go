package models

import (
	"yatube/config"
	"yatube/db"

	"gorm.io/gorm"
)

type PostPage struct {
	Page
	Posts []Post
}

// feedFilter narrows the post listing, a nil filter lists everything
type feedFilter func(query *gorm.DB) *gorm.DB

func feed(filter feedFilter, requestedPage string) (result PostPage, err error) {
	query := db.Instance.Model(&Post{})
	if filter != nil {
		query = filter(query)
	}
	var count int64
	if err = query.Session(&gorm.Session{}).Count(&count).Error; err != nil {
		return
	}
	result.Page = NewPage(count, config.POSTS_PER_PAGE, requestedPage)
	result.Posts = []Post{}
	if count == 0 {
		return
	}
	err = query.
		Preload("Author").
		Preload("Group").
		Order("posts.created_at DESC, posts.id DESC").
		Offset(result.Offset()).
		Limit(result.PerPage).
		Find(&result.Posts).Error
	return
}

// FeedAll lists every post, newest first
func FeedAll(requestedPage string) (PostPage, error) {
	return feed(nil, requestedPage)
}

func FeedByGroup(groupID uint64, requestedPage string) (PostPage, error) {
	return feed(func(query *gorm.DB) *gorm.DB {
		return query.Where("posts.group_id = ?", groupID)
	}, requestedPage)
}

func FeedByAuthor(authorID uint64, requestedPage string) (PostPage, error) {
	return feed(func(query *gorm.DB) *gorm.DB {
		return query.Where("posts.author_id = ?", authorID)
	}, requestedPage)
}

// FeedFollowedBy lists the posts of every author the user follows
func FeedFollowedBy(userID uint64, requestedPage string) (PostPage, error) {
	return feed(func(query *gorm.DB) *gorm.DB {
		following := db.Instance.Model(&Follow{}).Select("author_id").Where("user_id = ?", userID)
		return query.Where("posts.author_id IN (?)", following)
	}, requestedPage)
}
