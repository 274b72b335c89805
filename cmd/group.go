package cmd

import (
	"io"
	"strconv"
	"yatube/db"
	"yatube/models"

	"github.com/olekukonko/tablewriter"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
)

var groupCmd = &cobra.Command{
	Use:   "group",
	Short: "Manage groups",
}

var groupCreateCmd = &cobra.Command{
	Use:   "create",
	Short: "Create a group",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		title, _ := cmd.Flags().GetString("title")
		slug, _ := cmd.Flags().GetString("slug")
		description, _ := cmd.Flags().GetString("description")
		if !slugRe.MatchString(slug) {
			return errors.Errorf("invalid slug %q: use letters, digits, - and _", slug)
		}
		g, err := models.GroupCreate(title, slug, description)
		if db.IsDuplicateKey(err) {
			return errors.Errorf("slug %q is taken", slug)
		}
		if err != nil {
			return errors.Wrap(err, "create group")
		}
		printDone(cmd, "Created group %d (%s)", g.ID, g.Slug)
		return nil
	},
}

var groupListCmd = &cobra.Command{
	Use:   "list",
	Short: "List groups",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		groups, err := models.GroupList()
		if err != nil {
			return err
		}
		writeGroupTable(cmd.OutOrStdout(), groups)
		return nil
	},
}

var groupDeleteCmd = &cobra.Command{
	Use:   "delete <slug>",
	Short: "Delete a group, its posts are kept",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		g, err := models.GroupBySlug(args[0])
		if err != nil {
			return errors.Wrapf(err, "group %q", args[0])
		}
		if err = models.GroupDelete(g.ID); err != nil {
			return err
		}
		printDone(cmd, "Deleted group %s", g.Slug)
		return nil
	},
}

func init() {
	groupCreateCmd.Flags().String("title", "", "group title")
	groupCreateCmd.Flags().String("slug", "", "URL name of the group")
	groupCreateCmd.Flags().String("description", "", "what the group is about")
	_ = groupCreateCmd.MarkFlagRequired("title")
	_ = groupCreateCmd.MarkFlagRequired("slug")

	groupCmd.AddCommand(groupCreateCmd, groupListCmd, groupDeleteCmd)
	RootCmd.AddCommand(groupCmd)
}

func writeGroupTable(w io.Writer, groups []models.Group) {
	table := tablewriter.NewWriter(w)
	table.SetHeader([]string{"ID", "Slug", "Title", "Description"})
	table.SetAutoWrapText(false)
	for _, g := range groups {
		table.Append([]string{strconv.FormatUint(g.ID, 10), g.Slug, g.Title, g.Description})
	}
	table.Render()
}
