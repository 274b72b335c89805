package models

import (
	"yatube/db"

	"gorm.io/gorm"
)

type Comment struct {
	ID        uint64 `gorm:"primaryKey" json:"id"`
	CreatedAt int64  `gorm:"autoCreateTime;<-:create" json:"created_at"`
	PostID    uint64 `gorm:"not null;index" json:"post_id"`
	Post      *Post  `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"-"`
	AuthorID  uint64 `gorm:"not null;index" json:"-"`
	Author    *User  `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"author"`
	Text      string `gorm:"type:text;not null" json:"text"`
}

// CommentCreate adds a comment, the post is re-checked in the same transaction
func CommentCreate(postID uint64, author *User, text string) (c Comment, err error) {
	c = Comment{
		PostID:   postID,
		AuthorID: author.ID,
		Text:     text,
	}
	err = db.Instance.Transaction(func(tx *gorm.DB) error {
		var count int64
		if err := tx.Model(&Post{}).Where("id = ?", postID).Count(&count).Error; err != nil {
			return err
		}
		if count == 0 {
			return gorm.ErrRecordNotFound
		}
		return tx.Create(&c).Error
	})
	return
}

// CommentsForPost lists the comments of a post, newest first
func CommentsForPost(postID uint64) (comments []Comment, err error) {
	err = db.Instance.
		Preload("Author").
		Where("post_id = ?", postID).
		Order("created_at DESC, id DESC").
		Find(&comments).
		Error
	return
}
