package models

import (
	"yatube/db"

	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

var ErrSelfFollow = errors.New("cannot follow yourself")

// Follow is a directed edge: User follows Author
type Follow struct {
	ID        uint64 `gorm:"primaryKey"`
	CreatedAt int64
	UserID    uint64 `gorm:"not null;index:uniq_follow_pair,unique,priority:1"`
	User      *User  `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;"`
	AuthorID  uint64 `gorm:"not null;index:uniq_follow_pair,unique,priority:2;index:idx_follow_author"`
	Author    *User  `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;"`
}

// FollowAuthor creates the edge, following twice is a no-op
func FollowAuthor(followerID, authorID uint64) error {
	if followerID == authorID {
		return ErrSelfFollow
	}
	err := db.Instance.
		Clauses(clause.OnConflict{DoNothing: true}).
		Create(&Follow{UserID: followerID, AuthorID: authorID}).
		Error
	return errors.Wrap(err, "follow")
}

// UnfollowAuthor removes the edge if there is one
func UnfollowAuthor(followerID, authorID uint64) error {
	err := db.Instance.
		Where("user_id = ? AND author_id = ?", followerID, authorID).
		Delete(&Follow{}).
		Error
	return errors.Wrap(err, "unfollow")
}

func IsFollowing(followerID, authorID uint64) bool {
	var count int64
	err := db.Instance.
		Model(&Follow{}).
		Where("user_id = ? AND author_id = ?", followerID, authorID).
		Count(&count).
		Error
	return err == nil && count > 0
}

// FollowedAuthorIDs is a subquery of the author IDs the user follows
func FollowedAuthorIDs(followerID uint64) *gorm.DB {
	return db.Instance.Model(&Follow{}).Select("author_id").Where("user_id = ?", followerID)
}
