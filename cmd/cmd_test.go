package cmd

import (
	"bytes"
	"testing"
	"yatube/models"
	"yatube/testutil"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGroupCommands(t *testing.T) {
	testutil.SetupDB(t)
	var out bytes.Buffer
	groupCreateCmd.SetOut(&out)
	groupListCmd.SetOut(&out)
	groupDeleteCmd.SetOut(&out)

	require.NoError(t, groupCreateCmd.Flags().Set("title", "Cats"))
	require.NoError(t, groupCreateCmd.Flags().Set("slug", "cats"))
	require.NoError(t, groupCreateCmd.RunE(groupCreateCmd, nil))
	assert.Contains(t, out.String(), "Created group")

	out.Reset()
	require.NoError(t, groupListCmd.RunE(groupListCmd, nil))
	assert.Contains(t, out.String(), "cats")
	assert.Contains(t, out.String(), "Cats")

	require.NoError(t, groupDeleteCmd.RunE(groupDeleteCmd, []string{"cats"}))
	_, err := models.GroupBySlug("cats")
	assert.Error(t, err)
	assert.Error(t, groupDeleteCmd.RunE(groupDeleteCmd, []string{"cats"}))

	require.NoError(t, groupCreateCmd.Flags().Set("slug", "bad slug!"))
	assert.Error(t, groupCreateCmd.RunE(groupCreateCmd, nil))
}

func TestAuthorCommands(t *testing.T) {
	testutil.SetupDB(t)
	var out bytes.Buffer
	authorCreateCmd.SetOut(&out)
	authorListCmd.SetOut(&out)
	authorDeleteCmd.SetOut(&out)

	require.NoError(t, authorCreateCmd.Flags().Set("username", "leo"))
	require.NoError(t, authorCreateCmd.Flags().Set("name", "Leo Tolstoy"))
	require.NoError(t, authorCreateCmd.RunE(authorCreateCmd, nil))
	assert.Contains(t, out.String(), "Password: ")

	// taken
	assert.Error(t, authorCreateCmd.RunE(authorCreateCmd, nil))

	leo, err := models.UserByUsername("leo")
	require.NoError(t, err)
	testutil.CreatePost(t, &leo, "one", nil)

	out.Reset()
	require.NoError(t, authorListCmd.RunE(authorListCmd, nil))
	assert.Contains(t, out.String(), "Leo Tolstoy")

	require.NoError(t, authorDeleteCmd.RunE(authorDeleteCmd, []string{"leo"}))
	assert.False(t, models.UsernameTaken("leo"))
	assert.Equal(t, int64(1), models.PostCount())
}

func TestGroupCreate_DuplicateSlug(t *testing.T) {
	testutil.SetupDB(t)
	testutil.CreateGroup(t, "dogs")
	groupCreateCmd.SetOut(&bytes.Buffer{})
	require.NoError(t, groupCreateCmd.Flags().Set("title", "Dogs again"))
	require.NoError(t, groupCreateCmd.Flags().Set("slug", "dogs"))
	err := groupCreateCmd.RunE(groupCreateCmd, nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "taken")
}
