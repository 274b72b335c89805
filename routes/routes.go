// Package routes puts the pages, the account flow and the middleware together on one gin engine.
package routes

import (
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"time"
	"yatube/auth"
	"yatube/config"
	"yatube/db"
	"yatube/handlers"
	"yatube/templates"
	"yatube/utils"
	"yatube/web"

	"github.com/gin-contrib/cors"
	"github.com/gin-contrib/gzip"
	"github.com/gin-contrib/sessions"
	gormsessions "github.com/gin-contrib/sessions/gorm"
	"github.com/gin-gonic/gin"
)

const (
	sessionCookieName = "yatube_session"
	loginURL          = "/auth/login/"
	mediaCacheTime    = 7 * 86400
)

// FeedCacheKey separates cached pages per path, page number, format and viewer.
// Unknown query parameters don't change the page, so they are left out.
func FeedCacheKey(c *gin.Context) string {
	page, err := strconv.Atoi(c.Query("page"))
	if err != nil || page < 1 {
		page = 1
	}
	key := c.Request.URL.Path + "?page=" + strconv.Itoa(page)
	if c.Query("format") == "json" {
		key += "&format=json"
	}
	return key + "#" + strconv.FormatUint(auth.ViewerID(c), 10)
}

// New builds the engine. A nil pageCache uses FEED_CACHE_SECONDS.
func New(pageCache *utils.PageCache) (*gin.Engine, error) {
	if pageCache == nil {
		pageCache = utils.NewPageCache(time.Duration(config.FEED_CACHE_SECONDS) * time.Second)
	}

	router := gin.New()
	router.Use(gin.Logger())
	router.Use(gin.CustomRecovery(func(c *gin.Context, recovered any) {
		handlers.ServerError(c, nil, fmt.Errorf("panic: %v", recovered))
	}))
	_ = router.SetTrustedProxies([]string{})
	if config.DEBUG_MODE {
		router.Use(utils.ErrorLogMiddleware)
	}
	corsConfig := cors.Config{
		AllowMethods:  []string{"GET", "POST"},
		AllowHeaders:  []string{"Origin"},
		ExposeHeaders: []string{"Content-Length"},
		MaxAge:        12 * time.Hour,
	}
	if config.CORS_ORIGINS == "*" {
		corsConfig.AllowAllOrigins = true
	} else {
		corsConfig.AllowOrigins = strings.Split(config.CORS_ORIGINS, ",")
		corsConfig.AllowCredentials = true
	}
	router.Use(cors.New(corsConfig))

	// HTML templates
	tmpl, err := templates.Load()
	if err != nil {
		return nil, err
	}
	router.SetHTMLTemplate(tmpl)

	cookieStore := gormsessions.NewStore(db.Instance, true, []byte(config.SESSION_KEY))
	cookieStore.Options(sessions.Options{
		Path:     "/",
		MaxAge:   config.SESSION_MAX_AGE,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
	router.Use(sessions.Sessions(sessionCookieName, cookieStore))
	if !config.DEBUG_MODE {
		router.Use(gzip.Gzip(gzip.DefaultCompression, gzip.WithExcludedPaths([]string{"/media/"})))
	}
	router.Use((&utils.CacheRouter{CacheTime: utils.CacheNoCache}).Handler()) // No cache by default, individual end-points can override that

	authRouter := &auth.Router{Base: router, LoginURL: loginURL}
	// Feeds
	authRouter.Public(http.MethodGet, "/", web.Index, pageCache.Handler(FeedCacheKey))
	authRouter.Public(http.MethodGet, "/group/:slug/", web.GroupPosts)
	authRouter.Public(http.MethodGet, "/profile/:username/", web.Profile)
	authRouter.GET("/follow/", web.FollowIndex)
	// Posts
	authRouter.Public(http.MethodGet, "/posts/:id/", web.PostDetail)
	authRouter.Any("/posts/:id/comment/", web.AddComment)
	// non-owners, anonymous visitors included, are sent back to the post
	authRouter.Public(http.MethodGet, "/posts/:id/edit/", web.PostEdit)
	authRouter.Public(http.MethodPost, "/posts/:id/edit/", web.PostEdit)
	authRouter.Any("/create/", web.PostCreate)
	// Follow graph
	authRouter.GET("/profile/:username/follow/", web.ProfileFollow)
	authRouter.GET("/profile/:username/unfollow/", web.ProfileUnfollow)
	// Account
	for _, method := range []string{http.MethodGet, http.MethodPost} {
		authRouter.Public(method, "/auth/signup/", handlers.Signup)
		authRouter.Public(method, loginURL, handlers.Login)
		authRouter.Public(method, "/auth/logout/", handlers.Logout)
	}
	// Misc
	authRouter.Public(http.MethodGet, "/about/author/", web.AboutAuthor)
	authRouter.Public(http.MethodGet, "/about/tech/", web.AboutTech)
	authRouter.Public(http.MethodGet, "/rss/", web.RSS)
	authRouter.Public(http.MethodGet, "/media/*path", web.Media, (&utils.CacheRouter{CacheTime: mediaCacheTime}).Handler())
	router.GET("/robots.txt", web.DisallowRobots)

	router.NoRoute(func(c *gin.Context) {
		handlers.NotFound(c, auth.Viewer(c))
	})
	return router, nil
}
