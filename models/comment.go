package models

import (
	"yatube/db"

	"gorm.io/gorm"
)

type Comment struct {
	ID        uint64 `gorm:"primaryKey"`
	CreatedAt int64  `gorm:"autoCreateTime:milli"`
	PostID    uint64 `gorm:"not null;index:idx_comments_post"`
	Post      Post   `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;"`
	AuthorID  uint64 `gorm:"not null"`
	Author    User   `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;"`
	Text      string `gorm:"type:text;not null"`
}

// CommentCreate attaches a new comment by authorID to postID
func CommentCreate(postID, authorID uint64, text string) (c Comment, err error) {
	c = Comment{PostID: postID, AuthorID: authorID, Text: text}
	err = db.Instance.Transaction(func(tx *gorm.DB) error {
		return tx.Omit("Post", "Author").Create(&c).Error
	})
	return
}

// CommentsForPost returns the comments of a post in the order they were written
func CommentsForPost(postID uint64) (comments []Comment, err error) {
	comments = []Comment{}
	err = db.Instance.
		Preload("Author").
		Where("post_id = ?", postID).
		Order("created_at ASC, id ASC").
		Find(&comments).Error
	return
}
