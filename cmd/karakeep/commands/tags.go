package commands

import (
	"context"
	"fmt"
	"os"
	"strconv"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/ahgraber/karakeep-client/pkg/karakeep"
)

// NewTagsCommand creates the tags command group.
func NewTagsCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "tags",
		Aliases: []string{"tag"},
		Short:   "Manage tags",
		Long:    "List, rename, and delete tags",
	}

	cmd.AddCommand(newTagsListCommand())
	cmd.AddCommand(newTagsGetCommand())
	cmd.AddCommand(newTagsRenameCommand())
	cmd.AddCommand(newTagsDeleteCommand())

	return cmd
}

func newTagsListCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List all tags",
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := CreateClient()
			if err != nil {
				return err
			}

			tags, err := client.Tags().List(context.Background())
			if err != nil {
				return fmt.Errorf("failed to list tags: %w", err)
			}

			output := viper.GetString("output")
			switch output {
			case OutputFormatJSON:
				return StandardJSONRenderer(tags)
			case OutputFormatYAML:
				return StandardYAMLRenderer(tags)
			default:
				return renderTagTable(tags)
			}
		},
	}
}

func newTagsGetCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "get TAG_ID",
		Short: "Show a tag",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := CreateClient()
			if err != nil {
				return err
			}

			tag, err := client.Tags().Get(context.Background(), args[0])
			if err != nil {
				return fmt.Errorf("failed to get tag: %w", err)
			}

			output := viper.GetString("output")
			switch output {
			case OutputFormatJSON:
				return StandardJSONRenderer(tag)
			case OutputFormatYAML:
				return StandardYAMLRenderer(tag)
			default:
				return renderTagTable([]karakeep.Tag{*tag})
			}
		},
	}
}

func newTagsRenameCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "rename TAG_ID NEW_NAME",
		Short: "Rename a tag",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := CreateClient()
			if err != nil {
				return err
			}

			tag, err := client.Tags().Update(context.Background(), args[0], args[1])
			if err != nil {
				return fmt.Errorf("failed to rename tag: %w", err)
			}

			fmt.Printf("Tag %s renamed to %s\n", tag.ID, tag.Name)

			return nil
		},
	}
}

func newTagsDeleteCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "delete TAG_ID",
		Short: "Delete a tag",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := CreateClient()
			if err != nil {
				return err
			}

			err = client.Tags().Delete(context.Background(), args[0])
			if err != nil {
				return fmt.Errorf("failed to delete tag: %w", err)
			}

			fmt.Printf("Tag %s deleted\n", args[0])

			return nil
		},
	}
}

func renderTagTable(tags []karakeep.Tag) error {
	if len(tags) == 0 {
		_, _ = os.Stdout.WriteString("No tags found\n")

		return nil
	}

	table := tablewriter.NewWriter(os.Stdout)
	table.Header("ID", "Name", "Bookmarks", "By Human", "By AI")

	for _, tag := range tags {
		_ = table.Append(
			tag.ID,
			tag.Name,
			formatCount(tag.NumBookmarks),
			formatCountPtr(tag.NumBookmarksByAttachedType.Human),
			formatCountPtr(tag.NumBookmarksByAttachedType.AI),
		)
	}

	_ = table.Render()

	return nil
}

func formatCount(count float64) string {
	return strconv.FormatFloat(count, 'f', -1, 64)
}

func formatCountPtr(count *float64) string {
	if count == nil {
		return "0"
	}

	return formatCount(*count)
}
