package web

import (
	"log"
	"net/http"
	"yatube/config"
	"yatube/forms"
	"yatube/handlers"
	"yatube/models"
	"yatube/policy"
	"yatube/storage"

	"github.com/gin-gonic/gin"
	"github.com/pkg/errors"
)

type PostFormView struct {
	handlers.Base
	Form   forms.PostForm `json:"form"`
	Errors forms.Errors   `json:"errors,omitempty"`
	Groups []models.Group `json:"groups"`
	IsEdit bool           `json:"is_edit"`
	PostID uint64         `json:"post_id,omitempty"`
}

// bindPostForm reads and validates the post form, then stores the uploaded image if there is one.
// The returned image path is empty when nothing was uploaded.
func bindPostForm(c *gin.Context, view *PostFormView) (imagePath string, err error) {
	c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, int64(config.MAX_UPLOAD_BYTES))
	view.Errors = handlers.BindForm(c, &view.Form)
	if view.Errors.OK() {
		view.Form.Clean()
		view.Errors = view.Form.Validate()
	}
	if !view.Errors.OK() {
		return "", nil
	}
	file, err := c.FormFile("image")
	if err != nil {
		// no upload
		return "", nil
	}
	reader, err := file.Open()
	if err != nil {
		return "", errors.Wrap(err, "open upload")
	}
	defer reader.Close()
	imagePath, err = storage.SaveImage(reader)
	if errors.Is(err, storage.ErrNotImage) {
		view.Errors.Add("image", forms.MsgInvalidImage)
		return "", nil
	}
	return imagePath, err
}

func PostCreate(c *gin.Context, user *models.User) {
	if !policy.CanCreatePost(user) {
		c.Redirect(http.StatusFound, "/auth/login/")
		return
	}
	groups, err := models.GroupList()
	if err != nil {
		handlers.ServerError(c, user, err)
		return
	}
	view := PostFormView{
		Base:   handlers.Base{Viewer: user, Title: "New post"},
		Groups: groups,
	}
	if c.Request.Method != http.MethodPost {
		handlers.Render(c, http.StatusOK, "create_post.tmpl", view)
		return
	}
	image, err := bindPostForm(c, &view)
	if err != nil {
		handlers.ServerError(c, user, err)
		return
	}
	if !view.Errors.OK() {
		handlers.Render(c, http.StatusOK, "create_post.tmpl", view)
		return
	}
	if _, err = models.PostCreate(user, view.Form.Text, view.Form.GroupID, image); err != nil {
		discardImage(image)
		handlers.ServerError(c, user, err)
		return
	}
	c.Redirect(http.StatusFound, "/profile/"+user.Username+"/")
}

// PostEdit lets the author change the post, anyone else is sent back to the post page
func PostEdit(c *gin.Context, user *models.User) {
	post, ok := loadPost(c, user)
	if !ok {
		return
	}
	if !policy.CanEditPost(user, &post) {
		c.Redirect(http.StatusFound, postURL(post.ID))
		return
	}
	groups, err := models.GroupList()
	if err != nil {
		handlers.ServerError(c, user, err)
		return
	}
	view := PostFormView{
		Base:   handlers.Base{Viewer: user, Title: "Edit post"},
		Form:   forms.PostFormFrom(&post),
		Groups: groups,
		IsEdit: true,
		PostID: post.ID,
	}
	if c.Request.Method != http.MethodPost {
		handlers.Render(c, http.StatusOK, "create_post.tmpl", view)
		return
	}
	view.Form = forms.PostForm{}
	image, err := bindPostForm(c, &view)
	if err != nil {
		handlers.ServerError(c, user, err)
		return
	}
	if !view.Errors.OK() {
		handlers.Render(c, http.StatusOK, "create_post.tmpl", view)
		return
	}
	oldImage := post.Image
	newImage := image
	if image == "" {
		image = oldImage
	}
	if err = models.PostUpdate(&post, view.Form.Text, view.Form.GroupID, image); err != nil {
		discardImage(newImage)
		handlers.ServerError(c, user, err)
		return
	}
	if oldImage != image {
		discardImage(oldImage)
	}
	c.Redirect(http.StatusFound, postURL(post.ID))
}

// discardImage removes a stored image that no post refers to
func discardImage(path string) {
	if path == "" {
		return
	}
	if err := storage.GetDefaultStorage().Delete(path); err != nil {
		log.Printf("Removing image %s: %v", path, err)
	}
}

// Media serves stored post images
func Media(c *gin.Context, user *models.User) {
	path, err := storage.CleanPath(c.Param("path"))
	if err != nil {
		handlers.NotFound(c, user)
		return
	}
	storage.GetDefaultStorage().Serve(path, c.Request, c.Writer)
}
