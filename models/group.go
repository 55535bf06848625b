package models

import (
	"errors"
	"regexp"
	"yatube/db"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type Group struct {
	ID          uint64 `gorm:"primaryKey"`
	CreatedAt   int64
	Title       string `gorm:"type:varchar(200);not null"`
	Slug        string `gorm:"type:varchar(50);not null;index:uniq_slug,unique"`
	Description string `gorm:"type:text"`
}

var (
	ErrSlugTaken   = errors.New("a group with that slug already exists")
	ErrInvalidSlug = errors.New("slug may only contain letters, digits, underscores and hyphens")

	slugRegexp = regexp.MustCompile(`^[-a-zA-Z0-9_]{1,50}$`)
)

func GroupCreate(title, slug, description string) (g Group, err error) {
	if !slugRegexp.MatchString(slug) {
		return g, ErrInvalidSlug
	}
	g = Group{Title: title, Slug: slug, Description: description}
	err = db.Instance.Transaction(func(tx *gorm.DB) error {
		result := tx.Clauses(clause.OnConflict{DoNothing: true}).Create(&g)
		if result.Error == nil && result.RowsAffected == 0 {
			return ErrSlugTaken
		}
		return result.Error
	})
	return
}

func GroupBySlug(slug string) (g Group, err error) {
	err = db.Instance.First(&g, "slug = ?", slug).Error
	return
}

func GroupByID(id uint64) (g Group, err error) {
	err = db.Instance.First(&g, id).Error
	return
}

// GroupList returns all groups ordered by title, used for the post form choices
func GroupList() (groups []Group, err error) {
	err = db.Instance.Order("title ASC, id ASC").Find(&groups).Error
	return
}

// GroupDelete removes the group. Its posts are kept and lose their group reference.
func GroupDelete(slug string) error {
	return db.Instance.Transaction(func(tx *gorm.DB) error {
		group := Group{}
		if err := tx.First(&group, "slug = ?", slug).Error; err != nil {
			return err
		}
		if err := tx.Model(&Post{}).Where("group_id = ?", group.ID).UpdateColumn("group_id", nil).Error; err != nil {
			return err
		}
		return tx.Delete(&group).Error
	})
}
