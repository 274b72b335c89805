package auth

import (
	"log"
	"yatube/models"

	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"
)

const (
	userIdKey  = "id"
	contextKey = "auth.user"
)

type Session struct {
	sessions.Session
}

func LoadSession(c *gin.Context) *Session {
	return &Session{
		Session: sessions.Default(c),
	}
}

func (s *Session) LoginUser(user *models.User) error {
	s.Clear()
	s.Set(userIdKey, user.ID)
	return s.Save()
}

func (s *Session) LogoutUser() {
	s.Delete(userIdKey)
	s.Clear()
	s.Options(sessions.Options{Path: "/", MaxAge: -1})
	if err := s.Save(); err != nil {
		log.Printf("Logout session save: %v", err)
	}
}

// UserID is 0 for anonymous visitors
func (s *Session) UserID() uint64 {
	id, _ := s.Get(userIdKey).(uint64)
	return id
}

// User loads the logged in user, nil for anonymous visitors or removed accounts
func (s *Session) User() *models.User {
	id := s.UserID()
	if id == 0 {
		return nil
	}
	user, err := models.UserByID(id)
	if err != nil {
		return nil
	}
	return &user
}

// Viewer returns the current user once per request
func Viewer(c *gin.Context) *models.User {
	if v, ok := c.Get(contextKey); ok {
		return v.(*models.User)
	}
	user := LoadSession(c).User()
	c.Set(contextKey, user)
	return user
}

// ViewerID is used to key per-user caches, 0 for anonymous visitors
func ViewerID(c *gin.Context) uint64 {
	if user := Viewer(c); user != nil {
		return user.ID
	}
	return 0
}
