package models

import (
	"time"
	"yatube/db"

	"gorm.io/gorm"
)

type Post struct {
	ID         uint64  `gorm:"primaryKey"`
	CreatedAt  int64   `gorm:"autoCreateTime:milli;index:idx_posts_created"`
	UpdatedAt  int64   `gorm:"autoUpdateTime:milli"`
	AuthorID   uint64  `gorm:"not null;index:idx_posts_author"`
	Author     User    `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;"`
	GroupID    *uint64 `gorm:"index:idx_posts_group"`
	Group      *Group  `gorm:"constraint:OnUpdate:CASCADE,OnDelete:SET NULL;"`
	Text       string  `gorm:"type:text;not null"`
	Image      string  `gorm:"type:varchar(255)"` // storage path, empty when there is no image
	ImageThumb string  `gorm:"type:varchar(255)"`
}

// Edited reports whether the post was changed after it was created
func (p *Post) Edited() bool {
	return p.UpdatedAt > p.CreatedAt
}

func PostByID(id uint64) (p Post, err error) {
	err = db.Instance.Preload("Author").Preload("Group").First(&p, id).Error
	return
}

// PostCreate persists a new post. AuthorID must be set by the caller.
func PostCreate(post *Post) error {
	return db.Instance.Transaction(func(tx *gorm.DB) error {
		return tx.Omit("Author", "Group").Create(post).Error
	})
}

// PostUpdate saves the editable fields of an existing post. The author is never changed.
func PostUpdate(post *Post) error {
	return db.Instance.Transaction(func(tx *gorm.DB) error {
		post.UpdatedAt = time.Now().UnixMilli()
		return tx.Model(&Post{ID: post.ID}).Updates(map[string]any{
			"text":        post.Text,
			"group_id":    post.GroupID,
			"image":       post.Image,
			"image_thumb": post.ImageThumb,
			"updated_at":  post.UpdatedAt,
		}).Error
	})
}

func PostCountByAuthor(authorID uint64) (count int64, err error) {
	err = db.Instance.Model(&Post{}).Where("author_id = ?", authorID).Count(&count).Error
	return
}
