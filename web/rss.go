package web

import (
	"net/http"
	"strings"
	"time"
	"yatube/config"
	"yatube/feed"
	"yatube/handlers"
	"yatube/models"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/feeds"
)

// RSS publishes the first page of the global feed.
// Links point at SITE_URL, never at the Host the request came with.
func RSS(c *gin.Context, user *models.User) {
	page, err := feed.Global(c.Request.Context(), "1")
	if err != nil {
		handlers.ServerError(c, user, err)
		return
	}
	site := strings.TrimSuffix(config.SITE_URL, "/")
	out := &feeds.Feed{
		Title:       "Yatube",
		Link:        &feeds.Link{Href: site + "/"},
		Description: "Latest posts",
		Items:       make([]*feeds.Item, 0, len(page.Posts)),
	}
	for _, p := range page.Posts {
		link := site + postURL(p.ID)
		item := &feeds.Item{
			Title:       p.String(),
			Link:        &feeds.Link{Href: link},
			Description: p.Text,
			Id:          link,
			Created:     time.Unix(p.CreatedAt, 0).UTC(),
		}
		if p.Author != nil {
			item.Author = &feeds.Author{Name: p.Author.Username}
		}
		out.Items = append(out.Items, item)
	}
	if len(page.Posts) > 0 {
		out.Created = out.Items[0].Created
	}

	rss := (&feeds.Rss{Feed: out}).RssFeed()
	for i, p := range page.Posts {
		if p.Group != nil && i < len(rss.Items) {
			rss.Items[i].Category = p.Group.Title
		}
	}
	body, err := feeds.ToXML(rss)
	if err != nil {
		handlers.ServerError(c, user, err)
		return
	}
	if handlers.IsNotModified(c, handlers.ContentETag([]byte(body))) {
		return
	}
	c.Data(http.StatusOK, "application/rss+xml; charset=utf-8", []byte(body))
}
