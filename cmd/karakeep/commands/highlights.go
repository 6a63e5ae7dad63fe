package commands

import (
	"context"
	"fmt"
	"os"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/ahgraber/karakeep-client/pkg/karakeep"
)

// NewHighlightsCommand creates the highlights command group.
func NewHighlightsCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "highlights",
		Aliases: []string{"highlight", "hl"},
		Short:   "Manage highlights",
		Long:    "List, create, update, and delete text highlights",
	}

	cmd.AddCommand(newHighlightsListCommand())
	cmd.AddCommand(newHighlightsGetCommand())
	cmd.AddCommand(newHighlightsCreateCommand())
	cmd.AddCommand(newHighlightsUpdateCommand())
	cmd.AddCommand(newHighlightsDeleteCommand())

	return cmd
}

func newHighlightsListCommand() *cobra.Command {
	var (
		limit  int
		cursor string
	)

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List highlights",
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := CreateClient()
			if err != nil {
				return err
			}

			opts := &karakeep.ListHighlightsOptions{Limit: limit, Cursor: cursor}

			page, err := client.Highlights().List(context.Background(), opts)
			if err != nil {
				return fmt.Errorf("failed to list highlights: %w", err)
			}

			output := viper.GetString("output")
			switch output {
			case OutputFormatJSON:
				return StandardJSONRenderer(page.Highlights)
			case OutputFormatYAML:
				return StandardYAMLRenderer(page.Highlights)
			default:
				return renderHighlightTable(page.Highlights, page.NextCursor)
			}
		},
	}

	cmd.Flags().IntVar(&limit, "limit", 20, "results per page")
	cmd.Flags().StringVar(&cursor, "cursor", "", "pagination cursor")

	return cmd
}

func newHighlightsGetCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "get HIGHLIGHT_ID",
		Short: "Show a highlight",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := CreateClient()
			if err != nil {
				return err
			}

			highlight, err := client.Highlights().Get(context.Background(), args[0])
			if err != nil {
				return fmt.Errorf("failed to get highlight: %w", err)
			}

			return outputHighlight(highlight)
		},
	}
}

func newHighlightsCreateCommand() *cobra.Command {
	var (
		bookmarkID  string
		startOffset float64
		endOffset   float64
		color       string
		text        string
		note        string
	)

	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create a highlight",
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := CreateClient()
			if err != nil {
				return err
			}

			request := &karakeep.CreateHighlightRequest{
				BookmarkID:  bookmarkID,
				StartOffset: startOffset,
				EndOffset:   endOffset,
				Color:       karakeep.HighlightColor(color),
			}

			if text != "" {
				request.Text = &text
			}

			if note != "" {
				request.Note = &note
			}

			highlight, err := client.Highlights().Create(context.Background(), request)
			if err != nil {
				return fmt.Errorf("failed to create highlight: %w", err)
			}

			return outputHighlight(highlight)
		},
	}

	cmd.Flags().StringVar(&bookmarkID, "bookmark", "", "bookmark ID (required)")
	cmd.Flags().Float64Var(&startOffset, "start", 0, "start offset")
	cmd.Flags().Float64Var(&endOffset, "end", 0, "end offset")
	cmd.Flags().StringVar(&color, "color", string(karakeep.HighlightColorYellow), "highlight color")
	cmd.Flags().StringVar(&text, "text", "", "highlighted text")
	cmd.Flags().StringVar(&note, "note", "", "note for the highlight")
	_ = cmd.MarkFlagRequired("bookmark")

	return cmd
}

func newHighlightsUpdateCommand() *cobra.Command {
	var color string

	cmd := &cobra.Command{
		Use:   "update HIGHLIGHT_ID",
		Short: "Update a highlight",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := CreateClient()
			if err != nil {
				return err
			}

			request := &karakeep.UpdateHighlightRequest{}
			if cmd.Flags().Changed("color") {
				c := karakeep.HighlightColor(color)
				request.Color = &c
			}

			highlight, err := client.Highlights().Update(context.Background(), args[0], request)
			if err != nil {
				return fmt.Errorf("failed to update highlight: %w", err)
			}

			return outputHighlight(highlight)
		},
	}

	cmd.Flags().StringVar(&color, "color", "", "new highlight color")

	return cmd
}

func newHighlightsDeleteCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "delete HIGHLIGHT_ID",
		Short: "Delete a highlight",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := CreateClient()
			if err != nil {
				return err
			}

			highlight, err := client.Highlights().Delete(context.Background(), args[0])
			if err != nil {
				return fmt.Errorf("failed to delete highlight: %w", err)
			}

			fmt.Printf("Highlight %s deleted\n", highlight.ID)

			return nil
		},
	}
}

func outputHighlight(highlight *karakeep.Highlight) error {
	output := viper.GetString("output")
	switch output {
	case OutputFormatJSON:
		return StandardJSONRenderer(highlight)
	case OutputFormatYAML:
		return StandardYAMLRenderer(highlight)
	default:
		return renderHighlightTable([]karakeep.Highlight{*highlight}, nil)
	}
}

func renderHighlightTable(highlights []karakeep.Highlight, nextCursor *string) error {
	if len(highlights) == 0 {
		_, _ = os.Stdout.WriteString("No highlights found\n")

		return nil
	}

	table := tablewriter.NewWriter(os.Stdout)
	table.Header("ID", "Bookmark", "Color", "Text", "Created")

	for _, highlight := range highlights {
		_ = table.Append(
			highlight.ID,
			highlight.BookmarkID,
			string(highlight.Color),
			stringOrNA(highlight.Text),
			highlight.CreatedAt,
		)
	}

	_ = table.Render()

	if nextCursor != nil {
		fmt.Printf("\nMore results available, next cursor: %s\n", *nextCursor)
	}

	return nil
}
