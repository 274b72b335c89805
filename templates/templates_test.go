package templates

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad(t *testing.T) {
	tmpl, err := Load()
	require.NoError(t, err)
	for _, name := range []string{
		"index.tmpl", "group_list.tmpl", "profile.tmpl", "post_detail.tmpl",
		"create_post.tmpl", "follow.tmpl", "signup.tmpl", "login.tmpl",
		"logged_out.tmpl", "about_author.tmpl", "about_tech.tmpl", "404.tmpl", "500.tmpl",
	} {
		assert.NotNil(t, tmpl.Lookup(name), name)
	}
}

func TestLinebreaks(t *testing.T) {
	tests := []struct {
		name     string
		in       string
		contains string
		excludes string
	}{
		{"hard wraps", "first line\nsecond line", "<br", ""},
		{"emphasis", "some *words*", "<em>words</em>", ""},
		{"raw html dropped", "hi <script>alert(1)</script>", "hi", "<script>"},
		{"javascript link", "[x](javascript:alert(1))", "x", "javascript:"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out := string(Linebreaks(tt.in))
			assert.Contains(t, out, tt.contains)
			if tt.excludes != "" {
				assert.NotContains(t, out, tt.excludes)
			}
		})
	}
}

func TestNaturalTime(t *testing.T) {
	assert.Equal(t, "3 minutes ago", NaturalTime(time.Now().Add(-3*time.Minute).Unix()))
}

func TestMediaURL(t *testing.T) {
	assert.Equal(t, "/media/posts/a.jpg", MediaURL("posts/a.jpg"))
	assert.Equal(t, "", MediaURL(""))
	assert.True(t, strings.HasPrefix(MediaURL("x"), "/media/"))
}
