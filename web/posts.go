package web

import (
	"net/http"
	"strconv"
	"yatube/feed"
	"yatube/forms"
	"yatube/handlers"
	"yatube/models"
	"yatube/policy"
	"yatube/utils"

	"github.com/gin-gonic/gin"
)

type IndexView struct {
	handlers.Base
	Page feed.Page `json:"page"`
}

type GroupView struct {
	handlers.Base
	Group models.Group `json:"group"`
	Page  feed.Page    `json:"page"`
}

type ProfileView struct {
	handlers.Base
	Author    models.User `json:"author"`
	Count     int64       `json:"count"`
	Following bool        `json:"following"`
	CanFollow bool        `json:"can_follow"`
	Page      feed.Page   `json:"page"`
}

type PostDetailView struct {
	handlers.Base
	Post       models.Post       `json:"post"`
	Count      int64             `json:"count"`
	Comments   []models.Comment  `json:"comments"`
	Form       forms.CommentForm `json:"-"`
	CanComment bool              `json:"can_comment"`
	CanEdit    bool              `json:"can_edit"`
}

func Index(c *gin.Context, user *models.User) {
	page, err := feed.Global(c.Request.Context(), c.Query("page"))
	if err != nil {
		handlers.ServerError(c, user, err)
		return
	}
	handlers.Render(c, http.StatusOK, "index.tmpl", IndexView{
		Base: handlers.Base{Viewer: user, Title: "Latest posts"},
		Page: page,
	})
}

func GroupPosts(c *gin.Context, user *models.User) {
	page, group, err := feed.ForGroup(c.Request.Context(), c.Param("slug"), c.Query("page"))
	if err != nil {
		handlers.DBError(c, user, err)
		return
	}
	handlers.Render(c, http.StatusOK, "group_list.tmpl", GroupView{
		Base:  handlers.Base{Viewer: user, Title: group.String()},
		Group: group,
		Page:  page,
	})
}

func Profile(c *gin.Context, user *models.User) {
	page, author, err := feed.ForAuthor(c.Request.Context(), c.Param("username"), c.Query("page"))
	if err != nil {
		handlers.DBError(c, user, err)
		return
	}
	handlers.Render(c, http.StatusOK, "profile.tmpl", ProfileView{
		Base:      handlers.Base{Viewer: user, Title: "Profile of " + author.DisplayName()},
		Author:    author,
		Count:     page.Count,
		Following: user.IsAuthenticated() && models.IsFollowing(user.ID, author.ID),
		CanFollow: policy.CanFollow(user, &author),
		Page:      page,
	})
}

// loadPost fetches the post named in the URL, writing the 404 page when there is none
func loadPost(c *gin.Context, user *models.User) (post models.Post, ok bool) {
	id := utils.StringToUInt64(c.Param("id"))
	if id == 0 {
		handlers.NotFound(c, user)
		return post, false
	}
	post, err := models.PostByID(id)
	if err != nil {
		handlers.DBError(c, user, err)
		return post, false
	}
	return post, true
}

func postURL(id uint64) string {
	return "/posts/" + strconv.FormatUint(id, 10) + "/"
}

func PostDetail(c *gin.Context, user *models.User) {
	post, ok := loadPost(c, user)
	if !ok {
		return
	}
	comments, err := models.CommentsForPost(post.ID)
	if err != nil {
		handlers.ServerError(c, user, err)
		return
	}
	handlers.Render(c, http.StatusOK, "post_detail.tmpl", PostDetailView{
		Base:       handlers.Base{Viewer: user, Title: "Post " + post.String()},
		Post:       post,
		Count:      models.PostCountByAuthor(post.AuthorID),
		Comments:   comments,
		CanComment: policy.CanComment(user),
		CanEdit:    policy.CanEditPost(user, &post),
	})
}

// AddComment always ends on the post page, an empty comment is dropped
func AddComment(c *gin.Context, user *models.User) {
	post, ok := loadPost(c, user)
	if !ok {
		return
	}
	if c.Request.Method == http.MethodPost && policy.CanComment(user) {
		form := forms.CommentForm{}
		errs := handlers.BindForm(c, &form)
		if errs.OK() {
			form.Clean()
			errs = form.Validate()
		}
		if errs.OK() {
			if _, err := models.CommentCreate(post.ID, user, form.Text); err != nil {
				handlers.DBError(c, user, err)
				return
			}
		}
	}
	c.Redirect(http.StatusFound, postURL(post.ID))
}
