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

// NewListsCommand creates the lists command group.
func NewListsCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "lists",
		Aliases: []string{"list"},
		Short:   "Manage bookmark lists",
		Long:    "List, create, update, and delete bookmark lists and their membership",
	}

	cmd.AddCommand(newListsListCommand())
	cmd.AddCommand(newListsGetCommand())
	cmd.AddCommand(newListsCreateCommand())
	cmd.AddCommand(newListsUpdateCommand())
	cmd.AddCommand(newListsDeleteCommand())
	cmd.AddCommand(newListsAddBookmarkCommand())
	cmd.AddCommand(newListsRemoveBookmarkCommand())

	return cmd
}

func newListsListCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List all bookmark lists",
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := CreateClient()
			if err != nil {
				return err
			}

			lists, err := client.Lists().List(context.Background())
			if err != nil {
				return fmt.Errorf("failed to list bookmark lists: %w", err)
			}

			output := viper.GetString("output")
			switch output {
			case OutputFormatJSON:
				return StandardJSONRenderer(lists)
			case OutputFormatYAML:
				return StandardYAMLRenderer(lists)
			default:
				return renderListTable(lists)
			}
		},
	}
}

func newListsGetCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "get LIST_ID",
		Short: "Show a bookmark list",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := CreateClient()
			if err != nil {
				return err
			}

			list, err := client.Lists().Get(context.Background(), args[0])
			if err != nil {
				return fmt.Errorf("failed to get bookmark list: %w", err)
			}

			return outputList(list)
		},
	}
}

func newListsCreateCommand() *cobra.Command {
	var (
		name        string
		icon        string
		description string
		parentID    string
		query       string
	)

	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create a bookmark list",
		Long:  "Create a manual list, or a smart list when a query is given",
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := CreateClient()
			if err != nil {
				return err
			}

			request := &karakeep.CreateListRequest{
				Name: name,
				Icon: icon,
			}

			if description != "" {
				request.Description = &description
			}

			if parentID != "" {
				request.ParentID = &parentID
			}

			if query != "" {
				request.Type = karakeep.ListTypeSmart
				request.Query = &query
			}

			list, err := client.Lists().Create(context.Background(), request)
			if err != nil {
				return fmt.Errorf("failed to create bookmark list: %w", err)
			}

			return outputList(list)
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "list name (required)")
	cmd.Flags().StringVar(&icon, "icon", "", "list icon (required)")
	cmd.Flags().StringVar(&description, "description", "", "list description")
	cmd.Flags().StringVar(&parentID, "parent", "", "parent list ID")
	cmd.Flags().StringVar(&query, "query", "", "search query for a smart list")
	_ = cmd.MarkFlagRequired("name")
	_ = cmd.MarkFlagRequired("icon")

	return cmd
}

func newListsUpdateCommand() *cobra.Command {
	var (
		name        string
		icon        string
		description string
		query       string
	)

	cmd := &cobra.Command{
		Use:   "update LIST_ID",
		Short: "Update a bookmark list",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := CreateClient()
			if err != nil {
				return err
			}

			request := &karakeep.UpdateListRequest{}

			if cmd.Flags().Changed("name") {
				request.Name = &name
			}

			if cmd.Flags().Changed("icon") {
				request.Icon = &icon
			}

			if cmd.Flags().Changed("description") {
				request.Description = &description
			}

			if cmd.Flags().Changed("query") {
				request.Query = &query
			}

			list, err := client.Lists().Update(context.Background(), args[0], request)
			if err != nil {
				return fmt.Errorf("failed to update bookmark list: %w", err)
			}

			return outputList(list)
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "new name")
	cmd.Flags().StringVar(&icon, "icon", "", "new icon")
	cmd.Flags().StringVar(&description, "description", "", "new description")
	cmd.Flags().StringVar(&query, "query", "", "new smart-list query")

	return cmd
}

func newListsDeleteCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "delete LIST_ID",
		Short: "Delete a bookmark list",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := CreateClient()
			if err != nil {
				return err
			}

			err = client.Lists().Delete(context.Background(), args[0])
			if err != nil {
				return fmt.Errorf("failed to delete bookmark list: %w", err)
			}

			fmt.Printf("List %s deleted\n", args[0])

			return nil
		},
	}
}

func newListsAddBookmarkCommand() *cobra.Command {
	return &cobra.Command{
		Use:     "add-bookmark LIST_ID BOOKMARK_ID",
		Aliases: []string{"add"},
		Short:   "Add a bookmark to a list",
		Args:    cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := CreateClient()
			if err != nil {
				return err
			}

			err = client.Lists().AddBookmark(context.Background(), args[0], args[1])
			if err != nil {
				return fmt.Errorf("failed to add bookmark to list: %w", err)
			}

			fmt.Printf("Bookmark %s added to list %s\n", args[1], args[0])

			return nil
		},
	}
}

func newListsRemoveBookmarkCommand() *cobra.Command {
	return &cobra.Command{
		Use:     "remove-bookmark LIST_ID BOOKMARK_ID",
		Aliases: []string{"remove"},
		Short:   "Remove a bookmark from a list",
		Args:    cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := CreateClient()
			if err != nil {
				return err
			}

			err = client.Lists().RemoveBookmark(context.Background(), args[0], args[1])
			if err != nil {
				return fmt.Errorf("failed to remove bookmark from list: %w", err)
			}

			fmt.Printf("Bookmark %s removed from list %s\n", args[1], args[0])

			return nil
		},
	}
}

func outputList(list *karakeep.BookmarkList) error {
	output := viper.GetString("output")
	switch output {
	case OutputFormatJSON:
		return StandardJSONRenderer(list)
	case OutputFormatYAML:
		return StandardYAMLRenderer(list)
	default:
		return renderListTable([]karakeep.BookmarkList{*list})
	}
}

func renderListTable(lists []karakeep.BookmarkList) error {
	if len(lists) == 0 {
		_, _ = os.Stdout.WriteString("No lists found\n")

		return nil
	}

	table := tablewriter.NewWriter(os.Stdout)
	table.Header("ID", "Icon", "Name", "Type", "Query", "Public")

	for _, list := range lists {
		_ = table.Append(
			list.ID,
			list.Icon,
			list.Name,
			string(list.Type),
			stringOrNA(list.Query),
			strconv.FormatBool(list.Public),
		)
	}

	_ = table.Render()

	return nil
}
