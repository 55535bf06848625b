package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func TestGroupCreate(t *testing.T) {
	setupTestDB(t)
	createGroup(t, "cats")

	tests := []struct {
		name    string
		slug    string
		wantErr error
	}{
		{"taken", "cats", ErrSlugTaken},
		{"spaces", "two words", ErrInvalidSlug},
		{"empty", "", ErrInvalidSlug},
		{"ok", "dogs_and-more2", nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := GroupCreate("Title", tt.slug, "")
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestGroupDeleteKeepsPosts(t *testing.T) {
	setupTestDB(t)
	author := createUser(t, "author")
	doomed := createGroup(t, "doomed")
	kept := createGroup(t, "kept")
	orphan := createPost(t, author, &doomed, "in doomed group")
	stays := createPost(t, author, &kept, "in kept group")

	require.NoError(t, GroupDelete("doomed"))

	_, err := GroupBySlug("doomed")
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
	got, err := PostByID(orphan.ID)
	require.NoError(t, err)
	assert.Nil(t, got.GroupID)
	got, err = PostByID(stays.ID)
	require.NoError(t, err)
	require.NotNil(t, got.GroupID)
	assert.Equal(t, kept.ID, *got.GroupID)

	assert.ErrorIs(t, GroupDelete("doomed"), gorm.ErrRecordNotFound)
}

func TestGroupList(t *testing.T) {
	setupTestDB(t)
	createGroup(t, "zebra")
	createGroup(t, "aardvark")
	groups, err := GroupList()
	require.NoError(t, err)
	require.Len(t, groups, 2)
	assert.Equal(t, "aardvark", groups[0].Slug)
}

func TestGroupCreateConcurrent(t *testing.T) {
	setupConcurrentDB(t, 8)
	errs := concurrently(4, func() error {
		_, err := GroupCreate("Cats", "cats", "")
		return err
	})
	succeeded := 0
	for _, err := range errs {
		if err == nil {
			succeeded++
			continue
		}
		assert.ErrorIs(t, err, ErrSlugTaken)
	}
	assert.Equal(t, 1, succeeded)
	groups, err := GroupList()
	require.NoError(t, err)
	assert.Len(t, groups, 1)
}
