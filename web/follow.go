package web

import (
	"log"
	"net/http"
	"yatube/feed"
	"yatube/handlers"
	"yatube/models"
	"yatube/policy"

	"github.com/gin-gonic/gin"
)

type FollowView struct {
	handlers.Base
	Page feed.Page `json:"page"`
}

func FollowIndex(c *gin.Context, user *models.User) {
	page, err := feed.Following(c.Request.Context(), user, c.Query("page"))
	if err != nil {
		handlers.ServerError(c, user, err)
		return
	}
	handlers.Render(c, http.StatusOK, "follow.tmpl", FollowView{
		Base: handlers.Base{Viewer: user, Title: "Following"},
		Page: page,
	})
}

// ProfileFollow and ProfileUnfollow end on the profile whatever happened
func ProfileFollow(c *gin.Context, user *models.User) {
	changeFollow(c, user, models.FollowAuthor)
}

func ProfileUnfollow(c *gin.Context, user *models.User) {
	changeFollow(c, user, models.UnfollowAuthor)
}

func changeFollow(c *gin.Context, user *models.User, change func(followerID, authorID uint64) error) {
	author, err := models.UserByUsername(c.Param("username"))
	if err != nil {
		handlers.DBError(c, user, err)
		return
	}
	if policy.CanFollow(user, &author) {
		if err = change(user.ID, author.ID); err != nil {
			log.Printf("Follow change %d -> %d: %v", user.ID, author.ID, err)
		}
	}
	c.Redirect(http.StatusFound, "/profile/"+author.Username+"/")
}
