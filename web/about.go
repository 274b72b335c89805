package web

import (
	"net/http"
	"yatube/handlers"
	"yatube/models"

	"github.com/gin-gonic/gin"
)

func AboutAuthor(c *gin.Context, user *models.User) {
	handlers.Render(c, http.StatusOK, "about_author.tmpl", handlers.Base{Viewer: user, Title: "About the author"})
}

func AboutTech(c *gin.Context, user *models.User) {
	handlers.Render(c, http.StatusOK, "about_tech.tmpl", handlers.Base{Viewer: user, Title: "Technologies"})
}

func DisallowRobots(c *gin.Context) {
	c.String(http.StatusOK, "User-agent: *\nDisallow: /auth/\nDisallow: /create/\n")
}
