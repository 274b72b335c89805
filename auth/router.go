package auth

import (
	"net/http"
	"net/url"
	"yatube/models"

	"github.com/gin-gonic/gin"
)

// HandlerFunc receives the current user, nil on public routes for anonymous visitors
type HandlerFunc func(c *gin.Context, user *models.User)

// Router is a wrapper class that adds auth checks + User pre-loading
type Router struct {
	Base     gin.IRouter
	LoginURL string
}

// LoginRedirect sends the visitor to the login page, coming back to the current page afterwards
func (cr *Router) LoginRedirect(c *gin.Context) {
	c.Redirect(http.StatusFound, cr.LoginURL+"?next="+url.QueryEscape(c.Request.URL.RequestURI()))
}

func (cr *Router) baseExec(c *gin.Context, handler HandlerFunc) {
	user := Viewer(c)
	if !user.IsAuthenticated() {
		cr.LoginRedirect(c)
		return
	}
	handler(c, user)
}

func (cr *Router) POST(path string, handler HandlerFunc, middleware ...gin.HandlerFunc) {
	cr.Base.POST(path, cr.wrap(handler, middleware)...)
}

func (cr *Router) GET(path string, handler HandlerFunc, middleware ...gin.HandlerFunc) {
	cr.Base.GET(path, cr.wrap(handler, middleware)...)
}

// Any registers GET and POST
func (cr *Router) Any(path string, handler HandlerFunc, middleware ...gin.HandlerFunc) {
	cr.GET(path, handler, middleware...)
	cr.POST(path, handler, middleware...)
}

// Public registers a route open to everyone
func (cr *Router) Public(method, path string, handler HandlerFunc, middleware ...gin.HandlerFunc) {
	chain := append([]gin.HandlerFunc{}, middleware...)
	chain = append(chain, func(c *gin.Context) {
		handler(c, Viewer(c))
	})
	cr.Base.Handle(method, path, chain...)
}

func (cr *Router) wrap(handler HandlerFunc, middleware []gin.HandlerFunc) []gin.HandlerFunc {
	chain := append([]gin.HandlerFunc{}, middleware...)
	return append(chain, func(c *gin.Context) {
		cr.baseExec(c, handler)
	})
}
