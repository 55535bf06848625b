package models

import (
	"errors"
	"regexp"
	"yatube/config"
	"yatube/db"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type User struct {
	ID        uint64 `gorm:"primaryKey"`
	CreatedAt int64
	Username  string `gorm:"type:varchar(150);not null;index:uniq_username,unique"`
	Email     string `gorm:"type:varchar(254)"`
	Password  string `gorm:"type:varchar(128);not null"`
}

var (
	ErrUsernameTaken   = errors.New("a user with that username already exists")
	ErrInvalidUsername = errors.New("enter a valid username: letters, digits and @/./+/-/_ only")

	usernameRegexp = regexp.MustCompile(`^[\w.@+-]{1,150}$`)
)

func ValidUsername(username string) bool {
	return usernameRegexp.MatchString(username)
}

func UserCreate(username, email, plainTextPassword string) (u User, err error) {
	if !ValidUsername(username) {
		return u, ErrInvalidUsername
	}
	u.Username = username
	u.Email = email
	if err = u.SetPassword(plainTextPassword); err != nil {
		return u, err
	}
	err = db.Instance.Transaction(func(tx *gorm.DB) error {
		result := tx.Clauses(clause.OnConflict{DoNothing: true}).Create(&u)
		if result.Error == nil && result.RowsAffected == 0 {
			return ErrUsernameTaken
		}
		return result.Error
	})
	return u, err
}

func (u *User) SetPassword(plainTextPassword string) error {
	hash, err := bcrypt.GenerateFromPassword([]byte(plainTextPassword), config.PASSWORD_COST)
	if err != nil {
		return err
	}
	u.Password = string(hash)
	return nil
}

func UserLogin(username, plainTextPassword string) (u User, success bool) {
	if db.Instance.First(&u, "username = ?", username).Error != nil {
		return User{}, false
	}
	if bcrypt.CompareHashAndPassword([]byte(u.Password), []byte(plainTextPassword)) != nil {
		return User{}, false
	}
	return u, true
}

func UserByID(id uint64) (u User, err error) {
	err = db.Instance.First(&u, id).Error
	return
}

func UserByUsername(username string) (u User, err error) {
	err = db.Instance.First(&u, "username = ?", username).Error
	return
}
