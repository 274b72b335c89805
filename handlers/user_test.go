package handlers

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLocalPath(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"/create/", "/create/"},
		{"/posts/1/?page=2", "/posts/1/?page=2"},
		{"", ""},
		{"create/", ""},
		{"//evil.example.com/", ""},
		{"/\\evil.example.com", ""},
		{"https://evil.example.com/", ""},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, localPath(tt.in), tt.in)
	}
}

func TestContentETag(t *testing.T) {
	a := ContentETag([]byte("one"))
	assert.Equal(t, a, ContentETag([]byte("one")))
	assert.NotEqual(t, a, ContentETag([]byte("two")))
	assert.Regexp(t, `^"[0-9a-f]{16}"$`, a)
}
