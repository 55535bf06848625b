package models

import (
	"yatube/db"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// Follow is a directed edge: User follows Author
type Follow struct {
	ID        uint64 `gorm:"primaryKey"`
	CreatedAt int64
	UserID    uint64 `gorm:"not null;index:uniq_follow,priority:1,unique"`
	User      User   `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;"`
	AuthorID  uint64 `gorm:"not null;index:uniq_follow,priority:2,unique;index:idx_follow_author"`
	Author    User   `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;"`
}

// FollowCreate makes userID follow authorID. Following an author twice has no extra effect,
// following oneself is ignored. created is true only when a new edge was stored.
// Concurrent calls for the same pair are resolved by the unique index.
func FollowCreate(userID, authorID uint64) (created bool, err error) {
	if userID == authorID {
		return false, nil
	}
	err = db.Instance.Transaction(func(tx *gorm.DB) error {
		result := tx.Clauses(clause.OnConflict{DoNothing: true}).
			Omit("User", "Author").
			Create(&Follow{UserID: userID, AuthorID: authorID})
		created = result.Error == nil && result.RowsAffected > 0
		return result.Error
	})
	if err != nil {
		created = false
	}
	return
}

// FollowDelete removes the edge if there is one
func FollowDelete(userID, authorID uint64) error {
	return db.Instance.Transaction(func(tx *gorm.DB) error {
		return tx.Where("user_id = ? and author_id = ?", userID, authorID).Delete(&Follow{}).Error
	})
}

func IsFollowing(userID, authorID uint64) (bool, error) {
	var count int64
	err := db.Instance.Model(&Follow{}).Where("user_id = ? and author_id = ?", userID, authorID).Count(&count).Error
	return count > 0, err
}

func FollowerCount(authorID uint64) (count int64, err error) {
	err = db.Instance.Model(&Follow{}).Where("author_id = ?", authorID).Count(&count).Error
	return
}

func FollowingCount(userID uint64) (count int64, err error) {
	err = db.Instance.Model(&Follow{}).Where("user_id = ?", userID).Count(&count).Error
	return
}
