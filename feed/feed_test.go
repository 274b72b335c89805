package feed_test

import (
	"context"
	"fmt"
	"testing"
	"yatube/db"
	"yatube/feed"
	"yatube/models"
	"yatube/testutil"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func setCreatedAt(t *testing.T, p models.Post, ts int64) {
	t.Helper()
	require.NoError(t, db.Instance.Exec("UPDATE posts SET created_at = ? WHERE id = ?", ts, p.ID).Error)
}

func TestGlobal_ThirteenPosts(t *testing.T) {
	testutil.SetupDB(t)
	author := testutil.CreateUser(t, "leo")
	for i := 0; i < 13; i++ {
		testutil.CreatePost(t, &author, fmt.Sprintf("post number %d", i), nil)
	}

	first, err := feed.Global(context.Background(), "")
	require.NoError(t, err)
	assert.Len(t, first.Posts, 10)
	assert.Equal(t, int64(13), first.Count)
	assert.True(t, first.HasNext)
	assert.Equal(t, 2, first.NextNumber)

	second, err := feed.Global(context.Background(), "2")
	require.NoError(t, err)
	assert.Len(t, second.Posts, 3)
	assert.False(t, second.HasNext)
	assert.Equal(t, 1, second.PreviousNumber)

	beyond, err := feed.Global(context.Background(), "99")
	require.NoError(t, err)
	assert.Equal(t, 2, beyond.Number)
	assert.Len(t, beyond.Posts, 3)

	require.NotNil(t, first.Posts[0].Author)
	assert.Equal(t, "leo", first.Posts[0].Author.Username)
}

func TestGlobal_Empty(t *testing.T) {
	testutil.SetupDB(t)
	page, err := feed.Global(context.Background(), "3")
	require.NoError(t, err)
	assert.Empty(t, page.Posts)
	assert.Equal(t, 1, page.Number)
	assert.Equal(t, 1, page.NumPages)
}

func TestGlobal_Order(t *testing.T) {
	testutil.SetupDB(t)
	author := testutil.CreateUser(t, "leo")
	older := testutil.CreatePost(t, &author, "older", nil)
	tieA := testutil.CreatePost(t, &author, "tie a", nil)
	tieB := testutil.CreatePost(t, &author, "tie b", nil)
	setCreatedAt(t, older, 1000)
	setCreatedAt(t, tieA, 2000)
	setCreatedAt(t, tieB, 2000)

	page, err := feed.Global(context.Background(), "1")
	require.NoError(t, err)
	require.Len(t, page.Posts, 3)
	assert.Equal(t, tieB.ID, page.Posts[0].ID)
	assert.Equal(t, tieA.ID, page.Posts[1].ID)
	assert.Equal(t, older.ID, page.Posts[2].ID)
}

func TestForGroup(t *testing.T) {
	testutil.SetupDB(t)
	author := testutil.CreateUser(t, "leo")
	cats := testutil.CreateGroup(t, "cats")
	dogs := testutil.CreateGroup(t, "dogs")
	testutil.CreatePost(t, &author, "meow", &cats)
	testutil.CreatePost(t, &author, "woof", &dogs)
	testutil.CreatePost(t, &author, "no group", nil)

	page, group, err := feed.ForGroup(context.Background(), "cats", "")
	require.NoError(t, err)
	assert.Equal(t, cats.ID, group.ID)
	require.Len(t, page.Posts, 1)
	assert.Equal(t, "meow", page.Posts[0].Text)
	require.NotNil(t, page.Posts[0].Group)
	assert.Equal(t, "cats", page.Posts[0].Group.Slug)

	_, _, err = feed.ForGroup(context.Background(), "birds", "")
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
}

func TestForAuthor(t *testing.T) {
	testutil.SetupDB(t)
	leo := testutil.CreateUser(t, "leo")
	ann := testutil.CreateUser(t, "ann")
	for i := 0; i < 12; i++ {
		testutil.CreatePost(t, &leo, fmt.Sprintf("leo %d", i), nil)
	}
	testutil.CreatePost(t, &ann, "ann", nil)

	page, author, err := feed.ForAuthor(context.Background(), "leo", "2")
	require.NoError(t, err)
	assert.Equal(t, leo.ID, author.ID)
	assert.Equal(t, int64(12), page.Count)
	assert.Len(t, page.Posts, 2)

	_, _, err = feed.ForAuthor(context.Background(), "nobody", "")
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
}

func TestFollowing(t *testing.T) {
	testutil.SetupDB(t)
	reader := testutil.CreateUser(t, "reader")
	leo := testutil.CreateUser(t, "leo")
	ann := testutil.CreateUser(t, "ann")
	testutil.CreatePost(t, &leo, "from leo", nil)
	testutil.CreatePost(t, &ann, "from ann", nil)
	testutil.CreatePost(t, &reader, "my own", nil)

	page, err := feed.Following(context.Background(), &reader, "")
	require.NoError(t, err)
	assert.Empty(t, page.Posts)

	require.NoError(t, models.FollowAuthor(reader.ID, leo.ID))
	page, err = feed.Following(context.Background(), &reader, "")
	require.NoError(t, err)
	require.Len(t, page.Posts, 1)
	assert.Equal(t, "from leo", page.Posts[0].Text)

	// leo's own following feed is unaffected by who follows him
	page, err = feed.Following(context.Background(), &leo, "")
	require.NoError(t, err)
	assert.Empty(t, page.Posts)
}
