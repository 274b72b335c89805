package handlers

import (
	"net/http"
	"strings"
	"yatube/auth"
	"yatube/db"
	"yatube/forms"
	"yatube/models"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
)

type SignupView struct {
	Base
	Form   forms.SignupForm `json:"form"`
	Errors forms.Errors     `json:"errors,omitempty"`
}

type LoginView struct {
	Base
	Form   forms.LoginForm `json:"form"`
	Errors forms.Errors    `json:"errors,omitempty"`
	Next   string          `json:"next,omitempty"`
}

func Signup(c *gin.Context, user *models.User) {
	view := SignupView{Base: Base{Viewer: user, Title: "Sign up"}}
	if c.Request.Method != http.MethodPost {
		Render(c, http.StatusOK, "signup.tmpl", view)
		return
	}
	view.Errors = BindForm(c, &view.Form)
	if view.Errors.OK() {
		view.Form.Clean()
		view.Errors = view.Form.Validate()
	}
	if !view.Errors.OK() {
		Render(c, http.StatusOK, "signup.tmpl", view)
		return
	}
	_, err := models.UserCreate(view.Form.Username, view.Form.Name(), view.Form.Email, view.Form.Password1)
	if err != nil {
		if db.IsDuplicateKey(err) {
			view.Errors.Add("username", forms.MsgUsernameTaken)
			Render(c, http.StatusOK, "signup.tmpl", view)
			return
		}
		ServerError(c, user, err)
		return
	}
	c.Redirect(http.StatusFound, "/auth/login/")
}

func Login(c *gin.Context, user *models.User) {
	view := LoginView{
		Base: Base{Viewer: user, Title: "Log in"},
		Next: localPath(c.Query("next")),
	}
	if c.Request.Method != http.MethodPost {
		Render(c, http.StatusOK, "login.tmpl", view)
		return
	}
	view.Errors = BindForm(c, &view.Form)
	if next := localPath(c.PostForm("next")); next != "" {
		view.Next = next
	}
	if view.Errors.OK() {
		view.Form.Clean()
		view.Errors = view.Form.Validate()
	}
	if !view.Errors.OK() {
		Render(c, http.StatusOK, "login.tmpl", view)
		return
	}
	u, ok := models.UserLogin(view.Form.Username, view.Form.Password)
	if !ok {
		view.Errors.Add(forms.NonField, forms.MsgBadLogin)
		Render(c, http.StatusOK, "login.tmpl", view)
		return
	}
	if err := auth.LoadSession(c).LoginUser(&u); err != nil {
		ServerError(c, user, err)
		return
	}
	if view.Next == "" {
		view.Next = "/"
	}
	c.Redirect(http.StatusFound, view.Next)
}

func Logout(c *gin.Context, _ *models.User) {
	auth.LoadSession(c).LogoutUser()
	Render(c, http.StatusOK, "logged_out.tmpl", Base{Title: "Logged out"})
}

// BindForm fills the form from the request body, validation happens separately
func BindForm(c *gin.Context, form any) forms.Errors {
	errs := forms.Errors{}
	if err := c.ShouldBindWith(form, binding.Form); err != nil {
		errs.Add(forms.NonField, err.Error())
	}
	return errs
}

// localPath only lets redirects go to pages of this site
func localPath(next string) string {
	if !strings.HasPrefix(next, "/") || strings.HasPrefix(next, "//") || strings.HasPrefix(next, "/\\") {
		return ""
	}
	return next
}
