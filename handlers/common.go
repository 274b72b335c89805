package handlers

import (
	"log"
	"net/http"
	"yatube/models"

	"github.com/gin-gonic/gin"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// Base is embedded into every page view
type Base struct {
	Viewer *models.User `json:"viewer,omitempty"`
	Title  string       `json:"title,omitempty"`
}

type ErrorView struct {
	Base
	Path  string `json:"path"`
	Error string `json:"error"`
}

// Render writes the page, or its view model as JSON for ?format=json
func Render(c *gin.Context, status int, name string, view any) {
	if c.Query("format") == "json" {
		c.JSON(status, view)
		return
	}
	c.HTML(status, name, view)
}

func NotFound(c *gin.Context, viewer *models.User) {
	Render(c, http.StatusNotFound, "404.tmpl", ErrorView{
		Base:  Base{Viewer: viewer, Title: "Page not found"},
		Path:  c.Request.URL.Path,
		Error: "not found",
	})
}

func ServerError(c *gin.Context, viewer *models.User, err error) {
	log.Printf("%s %s: %v", c.Request.Method, c.Request.URL.Path, err)
	Render(c, http.StatusInternalServerError, "500.tmpl", ErrorView{
		Base:  Base{Viewer: viewer, Title: "Server error"},
		Path:  c.Request.URL.Path,
		Error: "server error",
	})
}

// DBError turns a missing record into a 404 and anything else into a 500
func DBError(c *gin.Context, viewer *models.User, err error) {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		NotFound(c, viewer)
		return
	}
	ServerError(c, viewer, err)
}
