package models

import (
	"yatube/db"

	"gorm.io/gorm"
)

type Group struct {
	ID          uint64 `gorm:"primaryKey" json:"id"`
	CreatedAt   int64  `json:"-"`
	UpdatedAt   int64  `json:"-"`
	Title       string `gorm:"type:varchar(200);not null" json:"title"`
	Slug        string `gorm:"type:varchar(50);not null;index:uniq_slug,unique" json:"slug"`
	Description string `gorm:"type:text" json:"description"`
}

func (g Group) String() string {
	return g.Title
}

func GroupCreate(title, slug, description string) (g Group, err error) {
	g = Group{
		Title:       title,
		Slug:        slug,
		Description: description,
	}
	err = db.Instance.Create(&g).Error
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

func GroupList() (groups []Group, err error) {
	err = db.Instance.Order("title").Find(&groups).Error
	return
}

// GroupDelete removes the group, its posts remain without a group (foreign keys)
func GroupDelete(id uint64) error {
	result := db.Instance.Delete(&Group{ID: id})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
