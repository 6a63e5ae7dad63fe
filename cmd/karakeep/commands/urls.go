package commands

import (
	"context"
	"fmt"
	"os"
	"sort"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// NewURLsCommand creates the urls command group.
func NewURLsCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "urls",
		Short: "Work with bookmarked URLs",
		Long:  "Collect every bookmarked URL or look a bookmark up by URL",
	}

	cmd.AddCommand(newURLsListCommand())
	cmd.AddCommand(newURLsFindCommand())

	return cmd
}

func newURLsListCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List every bookmarked URL",
		Long:  "Drain all bookmark pages and print the de-duplicated set of source URLs",
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := CreateClient()
			if err != nil {
				return err
			}

			urls, err := client.Bookmarks().AllURLs(context.Background())
			if err != nil && len(urls) == 0 {
				return fmt.Errorf("failed to collect URLs: %w", err)
			}

			sorted := make([]string, 0, len(urls))
			for u := range urls {
				sorted = append(sorted, u)
			}

			sort.Strings(sorted)

			output := viper.GetString("output")
			switch output {
			case OutputFormatJSON:
				if renderErr := StandardJSONRenderer(sorted); renderErr != nil {
					return renderErr
				}
			case OutputFormatYAML:
				if renderErr := StandardYAMLRenderer(sorted); renderErr != nil {
					return renderErr
				}
			default:
				for _, u := range sorted {
					fmt.Println(u)
				}
			}

			if err != nil {
				fmt.Fprintf(os.Stderr, "Warning: collection stopped early, %d URL(s) shown: %v\n", len(sorted), err)
			}

			return nil
		},
	}
}

func newURLsFindCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "find URL",
		Short: "Find the bookmark for a URL",
		Long:  "Look a bookmark up by exact match on its normalized URL",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := CreateClient()
			if err != nil {
				return err
			}

			id, err := client.Bookmarks().FindIDByURL(context.Background(), args[0])
			if err != nil {
				return fmt.Errorf("failed to look up URL: %w", err)
			}

			if id == "" {
				fmt.Println("No bookmark found for that URL")

				return nil
			}

			fmt.Println(id)

			return nil
		},
	}
}
