package models

import (
	"yatube/db"

	"gorm.io/gorm"
)

// PostOrder is the feed order: newest first, insertion order breaks ties
const PostOrder = "posts.created_at DESC, posts.id DESC"

type Post struct {
	ID        uint64  `gorm:"primaryKey" json:"id"`
	CreatedAt int64   `gorm:"autoCreateTime;<-:create;index" json:"created_at"`
	Text      string  `gorm:"type:text;not null" json:"text"`
	AuthorID  *uint64 `gorm:"index" json:"-"`
	Author    *User   `gorm:"constraint:OnUpdate:CASCADE,OnDelete:SET NULL;" json:"author"`
	GroupID   *uint64 `gorm:"index" json:"-"`
	Group     *Group  `gorm:"constraint:OnUpdate:CASCADE,OnDelete:SET NULL;" json:"group"`
	Image     string  `gorm:"type:varchar(255)" json:"image,omitempty"`
}

// String is a short preview of the text
func (p Post) String() string {
	runes := []rune(p.Text)
	if len(runes) > 15 {
		return string(runes[:15])
	}
	return p.Text
}

func (p *Post) IsAuthor(u *User) bool {
	return u.IsAuthenticated() && p.AuthorID != nil && *p.AuthorID == u.ID
}

func PostCreate(author *User, text string, groupID *uint64, image string) (p Post, err error) {
	authorID := author.ID
	p = Post{
		Text:     text,
		AuthorID: &authorID,
		GroupID:  groupID,
		Image:    image,
	}
	err = db.Instance.Create(&p).Error
	return
}

// PostByID loads the post together with its author and group
func PostByID(id uint64) (p Post, err error) {
	err = db.Instance.Preload("Author").Preload("Group").First(&p, id).Error
	return
}

// PostUpdate changes only the editable fields: text, group and image
func PostUpdate(p *Post, text string, groupID *uint64, image string) error {
	err := db.Instance.
		Model(&Post{ID: p.ID}).
		Select("Text", "GroupID", "Image").
		Updates(Post{Text: text, GroupID: groupID, Image: image}).
		Error
	if err != nil {
		return err
	}
	p.Text = text
	p.GroupID = groupID
	p.Image = image
	if groupID == nil {
		p.Group = nil
	}
	return nil
}

func PostDelete(id uint64) error {
	result := db.Instance.Delete(&Post{ID: id})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func PostCount() (count int64) {
	db.Instance.Model(&Post{}).Count(&count)
	return
}

func PostCountByAuthor(authorID *uint64) (count int64) {
	if authorID == nil {
		return 0
	}
	db.Instance.Model(&Post{}).Where("author_id = ?", *authorID).Count(&count)
	return
}

// Scopes used by the feeds

func PostsByAuthor(authorID uint64) func(*gorm.DB) *gorm.DB {
	return func(tx *gorm.DB) *gorm.DB {
		return tx.Where("posts.author_id = ?", authorID)
	}
}

func PostsInGroup(groupID uint64) func(*gorm.DB) *gorm.DB {
	return func(tx *gorm.DB) *gorm.DB {
		return tx.Where("posts.group_id = ?", groupID)
	}
}

// PostsFollowedBy selects posts written by the authors the user follows
func PostsFollowedBy(userID uint64) func(*gorm.DB) *gorm.DB {
	return func(tx *gorm.DB) *gorm.DB {
		return tx.Where("posts.author_id IN (?)", FollowedAuthorIDs(userID))
	}
}
