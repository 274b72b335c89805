package cmd

import (
	"fmt"
	"io"
	"regexp"
	"strconv"
	"yatube/models"
	"yatube/utils"

	"github.com/olekukonko/tablewriter"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
)

var (
	slugRe     = regexp.MustCompile(`^[-a-zA-Z0-9_]+$`)
	usernameRe = regexp.MustCompile(`^[\w.@+-]+$`)
)

var authorCmd = &cobra.Command{
	Use:   "author",
	Short: "Manage authors",
}

var authorCreateCmd = &cobra.Command{
	Use:   "create",
	Short: "Create an author",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		username, _ := cmd.Flags().GetString("username")
		name, _ := cmd.Flags().GetString("name")
		email, _ := cmd.Flags().GetString("email")
		password, _ := cmd.Flags().GetString("password")
		if !usernameRe.MatchString(username) || len(username) > 150 {
			return errors.Errorf("invalid username %q", username)
		}
		if models.UsernameTaken(username) {
			return errors.Errorf("username %q is taken", username)
		}
		generated := password == ""
		if generated {
			password = utils.RandSecretBase62(12)
		}
		u, err := models.UserCreate(username, name, email, password)
		if err != nil {
			return errors.Wrap(err, "create author")
		}
		printDone(cmd, "Created author %d (%s)", u.ID, u.Username)
		if generated {
			fmt.Fprintf(cmd.OutOrStdout(), "Password: %s\n", secretColor.Sprint(password))
		}
		return nil
	},
}

var authorListCmd = &cobra.Command{
	Use:   "list",
	Short: "List authors with their post counts",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		users, err := models.UserList()
		if err != nil {
			return err
		}
		writeAuthorTable(cmd.OutOrStdout(), users)
		return nil
	},
}

var authorDeleteCmd = &cobra.Command{
	Use:   "delete <username>",
	Short: "Delete an author, their posts are kept without an author",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		u, err := models.UserByUsername(args[0])
		if err != nil {
			return errors.Wrapf(err, "author %q", args[0])
		}
		if err = models.UserDelete(u.ID); err != nil {
			return err
		}
		printDone(cmd, "Deleted author %s", u.Username)
		return nil
	},
}

func init() {
	authorCreateCmd.Flags().String("username", "", "login handle")
	authorCreateCmd.Flags().String("name", "", "display name")
	authorCreateCmd.Flags().String("email", "", "email address")
	authorCreateCmd.Flags().String("password", "", "password, generated when empty")
	_ = authorCreateCmd.MarkFlagRequired("username")

	authorCmd.AddCommand(authorCreateCmd, authorListCmd, authorDeleteCmd)
	RootCmd.AddCommand(authorCmd)
}

func writeAuthorTable(w io.Writer, users []models.User) {
	table := tablewriter.NewWriter(w)
	table.SetHeader([]string{"ID", "Username", "Name", "Posts"})
	table.SetAutoWrapText(false)
	for _, u := range users {
		id := u.ID
		table.Append([]string{
			strconv.FormatUint(u.ID, 10),
			u.Username,
			u.Name,
			strconv.FormatInt(models.PostCountByAuthor(&id), 10),
		})
	}
	table.Render()
}
