// Package testutil prepares a throwaway database and media storage for tests.
package testutil

import (
	"fmt"
	"sync/atomic"
	"testing"
	"yatube/db"
	"yatube/models"
	"yatube/storage"

	"github.com/stretchr/testify/require"
)

var dbCounter int64

// SetupDB opens a fresh in-memory SQLite database with all tables created.
// The database is dropped when the test finishes.
func SetupDB(t *testing.T) {
	t.Helper()
	name := fmt.Sprintf("file:yatube_test_%d?mode=memory&cache=shared", atomic.AddInt64(&dbCounter, 1))
	require.NoError(t, db.Open(db.SQLite(name)))
	require.NoError(t, models.Init())
	t.Cleanup(func() {
		_ = db.Close()
	})
}

// SetupStorage points media storage at a temporary directory and returns it
func SetupStorage(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	storage.Use(storage.NewDiskStorage(&storage.Bucket{
		StorageType: storage.StorageTypeFile,
		Path:        dir,
	}))
	return dir
}

func CreateUser(t *testing.T, username string) models.User {
	t.Helper()
	u, err := models.UserCreate(username, "", "", TestPassword)
	require.NoError(t, err)
	return u
}

func CreateGroup(t *testing.T, slug string) models.Group {
	t.Helper()
	g, err := models.GroupCreate("Group "+slug, slug, "About "+slug)
	require.NoError(t, err)
	return g
}

func CreatePost(t *testing.T, author *models.User, text string, group *models.Group) models.Post {
	t.Helper()
	var groupID *uint64
	if group != nil {
		id := group.ID
		groupID = &id
	}
	p, err := models.PostCreate(author, text, groupID, "")
	require.NoError(t, err)
	return p
}

// TestPassword is the password of every user made by CreateUser
const TestPassword = "secret-password"

// FollowEdges counts the stored follow rows from followerID to authorID
func FollowEdges(t *testing.T, followerID, authorID uint64) (count int64) {
	t.Helper()
	require.NoError(t, db.Instance.
		Model(&models.Follow{}).
		Where("user_id = ? AND author_id = ?", followerID, authorID).
		Count(&count).
		Error)
	return
}
