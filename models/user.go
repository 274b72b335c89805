package models

import (
	"strings"
	"yatube/db"

	"github.com/pkg/errors"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// User is an author: anyone who can sign in, publish posts, comment and follow
type User struct {
	ID        uint64 `gorm:"primaryKey" json:"id"`
	CreatedAt int64  `json:"-"`
	UpdatedAt int64  `json:"-"`
	Username  string `gorm:"type:varchar(150);not null;index:uniq_username,unique" json:"username"`
	Name      string `gorm:"type:varchar(300)" json:"name"`
	Email     string `gorm:"type:varchar(254)" json:"-"`
	Password  string `gorm:"type:varchar(128)" json:"-"`
}

func UserCreate(username, name, email, plainTextPassword string) (u User, err error) {
	u.Username = username
	u.Name = strings.TrimSpace(name)
	u.Email = email
	if err = u.SetPassword(plainTextPassword); err != nil {
		return
	}
	return u, db.Instance.Create(&u).Error
}

func (u *User) SetPassword(plainTextPassword string) error {
	hashed, err := bcrypt.GenerateFromPassword([]byte(plainTextPassword), bcrypt.DefaultCost)
	if err != nil {
		return errors.Wrap(err, "hash password")
	}
	u.Password = string(hashed)
	return nil
}

func UserLogin(username, plainTextPassword string) (u User, success bool) {
	result := db.Instance.First(&u, "username = ?", username)
	if result.Error != nil {
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

func UsernameTaken(username string) bool {
	var count int64
	db.Instance.Model(&User{}).Where("username = ?", username).Count(&count)
	return count > 0
}

func UserList() (users []User, err error) {
	err = db.Instance.Order("username").Find(&users).Error
	return
}

// UserDelete removes the author. Posts stay with an empty author,
// comments and follow edges go with the user (foreign keys).
func UserDelete(id uint64) error {
	result := db.Instance.Delete(&User{ID: id})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// DisplayName is the full name when there is one, the handle otherwise
func (u User) DisplayName() string {
	if u.Name != "" {
		return u.Name
	}
	return u.Username
}

func (u *User) IsAuthenticated() bool {
	return u != nil && u.ID != 0
}
