// Package feed assembles the paginated post listings: global, group, profile
// and following.
package feed

import (
	"context"
	"yatube/db"
	"yatube/models"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

type Page struct {
	Posts          []models.Post `json:"posts"`
	Number         int           `json:"number"`
	NumPages       int           `json:"num_pages"`
	Count          int64         `json:"count"`
	HasPrevious    bool          `json:"has_previous"`
	HasNext        bool          `json:"has_next"`
	PreviousNumber int           `json:"previous_number,omitempty"`
	NextNumber     int           `json:"next_number,omitempty"`
	PageRange      []int         `json:"-"`
}

// Global is every post, newest first
func Global(ctx context.Context, pageParam string) (Page, error) {
	return assemble(ctx, pageParam)
}

// ForGroup lists the posts filed into the group with the given slug
func ForGroup(ctx context.Context, slug, pageParam string) (Page, models.Group, error) {
	group, err := models.GroupBySlug(slug)
	if err != nil {
		return Page{}, group, err
	}
	page, err := assemble(ctx, pageParam, models.PostsInGroup(group.ID))
	return page, group, err
}

// ForAuthor lists the posts of one author, Page.Count is their total
func ForAuthor(ctx context.Context, username, pageParam string) (Page, models.User, error) {
	author, err := models.UserByUsername(username)
	if err != nil {
		return Page{}, author, err
	}
	page, err := assemble(ctx, pageParam, models.PostsByAuthor(author.ID))
	return page, author, err
}

// Following lists the posts of every author the viewer follows
func Following(ctx context.Context, viewer *models.User, pageParam string) (Page, error) {
	return assemble(ctx, pageParam, models.PostsFollowedBy(viewer.ID))
}

func assemble(ctx context.Context, pageParam string, scopes ...func(*gorm.DB) *gorm.DB) (page Page, err error) {
	var count int64
	err = db.Instance.WithContext(ctx).Model(&models.Post{}).Scopes(scopes...).Count(&count).Error
	if err != nil {
		return page, errors.Wrap(err, "count posts")
	}
	p := Paginate(count, pageParam)
	page = Page{
		Posts:       []models.Post{},
		Number:      p.Number,
		NumPages:    p.NumPages,
		Count:       count,
		HasPrevious: p.HasPrevious(),
		HasNext:     p.HasNext(),
		PageRange:   p.PageRange(),
	}
	if page.HasPrevious {
		page.PreviousNumber = p.Number - 1
	}
	if page.HasNext {
		page.NextNumber = p.Number + 1
	}
	if count == 0 {
		return page, nil
	}
	err = db.Instance.WithContext(ctx).
		Scopes(scopes...).
		Preload("Author").
		Preload("Group").
		Order(models.PostOrder).
		Limit(p.Limit()).
		Offset(p.Offset()).
		Find(&page.Posts).
		Error
	return page, errors.Wrap(err, "load posts")
}
