package policy

import (
	"testing"
	"yatube/models"

	"github.com/stretchr/testify/assert"
)

func uint64Ptr(v uint64) *uint64 {
	return &v
}

func TestCanCreatePost(t *testing.T) {
	tests := []struct {
		name  string
		actor *models.User
		want  bool
	}{
		{"nil", nil, false},
		{"anonymous", &models.User{}, false},
		{"author", &models.User{ID: 1, Username: "alice"}, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, CanCreatePost(tt.actor))
			assert.Equal(t, tt.want, CanComment(tt.actor))
		})
	}
}

func TestCanEditPost(t *testing.T) {
	alice := &models.User{ID: 1, Username: "alice"}
	bob := &models.User{ID: 2, Username: "bob"}
	tests := []struct {
		name  string
		actor *models.User
		post  *models.Post
		want  bool
	}{
		{"owner", alice, &models.Post{AuthorID: uint64Ptr(1)}, true},
		{"other author", bob, &models.Post{AuthorID: uint64Ptr(1)}, false},
		{"anonymous", nil, &models.Post{AuthorID: uint64Ptr(1)}, false},
		{"orphaned post", alice, &models.Post{}, false},
		{"no post", alice, nil, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, CanEditPost(tt.actor, tt.post))
		})
	}
}

func TestCanFollow(t *testing.T) {
	alice := &models.User{ID: 1, Username: "alice"}
	bob := &models.User{ID: 2, Username: "bob"}
	assert.True(t, CanFollow(alice, bob))
	assert.False(t, CanFollow(alice, alice))
	assert.False(t, CanFollow(nil, bob))
	assert.False(t, CanFollow(&models.User{}, bob))
	assert.False(t, CanFollow(alice, nil))
}
