package commands

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/ahgraber/karakeep-client/pkg/karakeep"
)

// NewBookmarksCommand creates the bookmarks command group.
func NewBookmarksCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "bookmarks",
		Aliases: []string{"bookmark", "bm"},
		Short:   "Manage bookmarks",
		Long:    "List, search, create, update, and delete bookmarks",
	}

	cmd.AddCommand(newBookmarksListCommand())
	cmd.AddCommand(newBookmarksGetCommand())
	cmd.AddCommand(newBookmarksSearchCommand())
	cmd.AddCommand(newBookmarksCreateCommand())
	cmd.AddCommand(newBookmarksUpdateCommand())
	cmd.AddCommand(newBookmarksDeleteCommand())
	cmd.AddCommand(newBookmarksTagCommand())
	cmd.AddCommand(newBookmarksUntagCommand())

	return cmd
}

func newBookmarksListCommand() *cobra.Command {
	var (
		archived   bool
		favourited bool
		limit      int
		cursor     string
		allPages   bool
	)

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List bookmarks",
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := CreateClient()
			if err != nil {
				return err
			}

			ctx := context.Background()

			opts := karakeep.NewListBookmarksOptions().WithLimit(limit)
			if cmd.Flags().Changed("archived") {
				opts = opts.WithArchived(archived)
			}

			if cmd.Flags().Changed("favourited") {
				opts = opts.WithFavourited(favourited)
			}

			if cursor != "" {
				opts = opts.WithCursor(cursor)
			}

			if allPages {
				// The drain starts from the --cursor flag; later fetches
				// follow the cursors the service returns.
				startCursor := cursor
				bookmarks, err := karakeep.FetchAllPages(ctx,
					func(ctx context.Context, pageCursor string) ([]karakeep.Bookmark, *string, error) {
						if pageCursor == "" {
							pageCursor = startCursor
						}

						page, err := client.Bookmarks().List(ctx, opts.WithCursor(pageCursor))
						if err != nil {
							return nil, nil, err
						}

						return page.Bookmarks, page.NextCursor, nil
					}, nil)
				if err != nil {
					return fmt.Errorf("failed to list bookmarks: %w", err)
				}

				return outputBookmarks(bookmarks, nil)
			}

			page, err := client.Bookmarks().List(ctx, opts)
			if err != nil {
				return fmt.Errorf("failed to list bookmarks: %w", err)
			}

			return outputBookmarks(page.Bookmarks, page.NextCursor)
		},
	}

	cmd.Flags().BoolVar(&archived, "archived", false, "filter by archived status")
	cmd.Flags().BoolVar(&favourited, "favourited", false, "filter by favourited status")
	cmd.Flags().IntVar(&limit, "limit", 20, "results per page")
	cmd.Flags().StringVar(&cursor, "cursor", "", "pagination cursor")
	cmd.Flags().BoolVar(&allPages, "all", false, "fetch all pages")

	return cmd
}

func newBookmarksGetCommand() *cobra.Command {
	var withContent bool

	cmd := &cobra.Command{
		Use:   "get BOOKMARK_ID",
		Short: "Show a bookmark",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := CreateClient()
			if err != nil {
				return err
			}

			opts := karakeep.NewGetBookmarkOptions()
			opts.IncludeContent = withContent

			bookmark, err := client.Bookmarks().Get(context.Background(), args[0], opts)
			if err != nil {
				return fmt.Errorf("failed to get bookmark: %w", err)
			}

			return outputBookmark(bookmark)
		},
	}

	cmd.Flags().BoolVar(&withContent, "with-content", true, "include bookmark content")

	return cmd
}

func newBookmarksSearchCommand() *cobra.Command {
	var limit int

	cmd := &cobra.Command{
		Use:   "search QUERY",
		Short: "Search bookmarks",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := CreateClient()
			if err != nil {
				return err
			}

			opts := karakeep.NewSearchBookmarksOptions().WithLimit(limit)

			page, err := client.Bookmarks().Search(context.Background(), args[0], opts)
			if err != nil {
				return fmt.Errorf("failed to search bookmarks: %w", err)
			}

			return outputBookmarks(page.Bookmarks, page.NextCursor)
		},
	}

	cmd.Flags().IntVar(&limit, "limit", 20, "results per page")

	return cmd
}

func newBookmarksCreateCommand() *cobra.Command {
	var (
		url      string
		text     string
		title    string
		note     string
		archived bool
	)

	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create a bookmark",
		Long:  "Create a link bookmark from a URL or a text bookmark from a note",
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := CreateClient()
			if err != nil {
				return err
			}

			request := &karakeep.CreateBookmarkRequest{}

			switch {
			case url != "":
				normalized, err := karakeep.ValidateURL(url)
				if err != nil {
					return err
				}

				request.Type = karakeep.BookmarkTypeLink
				request.URL = normalized
			case text != "":
				request.Type = karakeep.BookmarkTypeText
				request.Text = text
			default:
				return karakeep.ErrURLRequired
			}

			if title != "" {
				request.Title = &title
			}

			if note != "" {
				request.Note = &note
			}

			if cmd.Flags().Changed("archived") {
				request.Archived = &archived
			}

			bookmark, err := client.Bookmarks().Create(context.Background(), request)
			if err != nil {
				return fmt.Errorf("failed to create bookmark: %w", err)
			}

			return outputBookmark(bookmark)
		},
	}

	cmd.Flags().StringVar(&url, "url", "", "URL for a link bookmark")
	cmd.Flags().StringVar(&text, "text", "", "content for a text bookmark")
	cmd.Flags().StringVar(&title, "title", "", "bookmark title")
	cmd.Flags().StringVar(&note, "note", "", "bookmark note")
	cmd.Flags().BoolVar(&archived, "archived", false, "create as archived")

	return cmd
}

func newBookmarksUpdateCommand() *cobra.Command {
	var (
		title      string
		note       string
		summary    string
		archived   bool
		favourited bool
	)

	cmd := &cobra.Command{
		Use:   "update BOOKMARK_ID",
		Short: "Update a bookmark",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := CreateClient()
			if err != nil {
				return err
			}

			updates := map[string]interface{}{}

			if cmd.Flags().Changed("title") {
				updates["title"] = title
			}

			if cmd.Flags().Changed("note") {
				updates["note"] = note
			}

			if cmd.Flags().Changed("summary") {
				updates["summary"] = summary
			}

			if cmd.Flags().Changed("archived") {
				updates["archived"] = archived
			}

			if cmd.Flags().Changed("favourited") {
				updates["favourited"] = favourited
			}

			updated, err := client.Bookmarks().Update(context.Background(), args[0], updates)
			if err != nil {
				return fmt.Errorf("failed to update bookmark: %w", err)
			}

			return StandardJSONRenderer(updated)
		},
	}

	cmd.Flags().StringVar(&title, "title", "", "new title")
	cmd.Flags().StringVar(&note, "note", "", "new note")
	cmd.Flags().StringVar(&summary, "summary", "", "new summary")
	cmd.Flags().BoolVar(&archived, "archived", false, "set archived status")
	cmd.Flags().BoolVar(&favourited, "favourited", false, "set favourited status")

	return cmd
}

func newBookmarksDeleteCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "delete BOOKMARK_ID",
		Short: "Delete a bookmark",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := CreateClient()
			if err != nil {
				return err
			}

			err = client.Bookmarks().Delete(context.Background(), args[0])
			if err != nil {
				return fmt.Errorf("failed to delete bookmark: %w", err)
			}

			fmt.Printf("Bookmark %s deleted\n", args[0])

			return nil
		},
	}
}

func newBookmarksTagCommand() *cobra.Command {
	var tagNames []string

	cmd := &cobra.Command{
		Use:   "tag BOOKMARK_ID",
		Short: "Attach tags to a bookmark",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := CreateClient()
			if err != nil {
				return err
			}

			attachment, err := client.Bookmarks().AttachTags(context.Background(), args[0], nil, tagNames)
			if err != nil {
				return fmt.Errorf("failed to attach tags: %w", err)
			}

			fmt.Printf("Attached %d tag(s): %s\n", len(attachment.Attached), strings.Join(attachment.Attached, ", "))

			return nil
		},
	}

	cmd.Flags().StringSliceVar(&tagNames, "name", nil, "tag name (repeatable)")

	return cmd
}

func newBookmarksUntagCommand() *cobra.Command {
	var tagNames []string

	cmd := &cobra.Command{
		Use:   "untag BOOKMARK_ID",
		Short: "Detach tags from a bookmark",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := CreateClient()
			if err != nil {
				return err
			}

			detachment, err := client.Bookmarks().DetachTags(context.Background(), args[0], nil, tagNames)
			if err != nil {
				return fmt.Errorf("failed to detach tags: %w", err)
			}

			fmt.Printf("Detached %d tag(s)\n", len(detachment.Detached))

			return nil
		},
	}

	cmd.Flags().StringSliceVar(&tagNames, "name", nil, "tag name (repeatable)")

	return cmd
}

func outputBookmarks(bookmarks []karakeep.Bookmark, nextCursor *string) error {
	output := viper.GetString("output")
	switch output {
	case OutputFormatJSON:
		return StandardJSONRenderer(bookmarks)
	case OutputFormatYAML:
		return StandardYAMLRenderer(bookmarks)
	default:
		return renderBookmarkTable(bookmarks, nextCursor)
	}
}

func renderBookmarkTable(bookmarks []karakeep.Bookmark, nextCursor *string) error {
	if len(bookmarks) == 0 {
		_, _ = os.Stdout.WriteString("No bookmarks found\n")

		return nil
	}

	table := tablewriter.NewWriter(os.Stdout)
	table.Header("ID", "Title", "Type", "URL", "Tags", "Created")

	for _, bookmark := range bookmarks {
		tagNames := make([]string, 0, len(bookmark.Tags))
		for _, tag := range bookmark.Tags {
			tagNames = append(tagNames, tag.Name)
		}

		_ = table.Append(
			bookmark.ID,
			stringOrNA(bookmark.Title),
			string(bookmark.Content.Type),
			bookmark.Content.SourceURL(),
			strings.Join(tagNames, ", "),
			bookmark.CreatedAt,
		)
	}

	_ = table.Render()

	if nextCursor != nil {
		fmt.Printf("\nMore results available, next cursor: %s\n", *nextCursor)
	}

	return nil
}

func outputBookmark(bookmark *karakeep.Bookmark) error {
	output := viper.GetString("output")
	switch output {
	case OutputFormatJSON:
		return StandardJSONRenderer(bookmark)
	case OutputFormatYAML:
		return StandardYAMLRenderer(bookmark)
	default:
		return renderBookmarkDetail(bookmark)
	}
}

func renderBookmarkDetail(bookmark *karakeep.Bookmark) error {
	table := tablewriter.NewWriter(os.Stdout)
	table.Header("Property", "Value")

	_ = table.Append("ID", bookmark.ID)
	_ = table.Append("Title", stringOrNA(bookmark.Title))
	_ = table.Append("Type", string(bookmark.Content.Type))
	_ = table.Append("URL", bookmark.Content.SourceURL())
	_ = table.Append("Archived", fmt.Sprintf("%t", bookmark.Archived))
	_ = table.Append("Favourited", fmt.Sprintf("%t", bookmark.Favourited))
	_ = table.Append("Note", stringOrNA(bookmark.Note))
	_ = table.Append("Summary", stringOrNA(bookmark.Summary))
	_ = table.Append("Created", bookmark.CreatedAt)

	_ = table.Render()

	return nil
}
