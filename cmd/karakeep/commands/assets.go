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

// NewAssetsCommand creates the assets command group.
func NewAssetsCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "assets",
		Aliases: []string{"asset"},
		Short:   "Manage assets",
		Long:    "Upload and download stored files",
	}

	cmd.AddCommand(newAssetsUploadCommand())
	cmd.AddCommand(newAssetsDownloadCommand())
	cmd.AddCommand(newAssetsAttachCommand())
	cmd.AddCommand(newAssetsReplaceCommand())
	cmd.AddCommand(newAssetsDetachCommand())

	return cmd
}

func newAssetsUploadCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "upload FILE",
		Short: "Upload a file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := CreateClient()
			if err != nil {
				return err
			}

			asset, err := client.Assets().Upload(context.Background(), args[0])
			if err != nil {
				return fmt.Errorf("failed to upload asset: %w", err)
			}

			output := viper.GetString("output")
			switch output {
			case OutputFormatJSON:
				return StandardJSONRenderer(asset)
			case OutputFormatYAML:
				return StandardYAMLRenderer(asset)
			default:
				return renderAssetTable(asset)
			}
		},
	}
}

func newAssetsDownloadCommand() *cobra.Command {
	var outputPath string

	cmd := &cobra.Command{
		Use:     "download ASSET_ID",
		Aliases: []string{"fetch"},
		Short:   "Download an asset",
		Long:  "Download asset bytes to a file, or to stdout when no output path is given",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := CreateClient()
			if err != nil {
				return err
			}

			data, err := client.Assets().Fetch(context.Background(), args[0])
			if err != nil {
				return fmt.Errorf("failed to download asset: %w", err)
			}

			if outputPath == "" {
				_, err = os.Stdout.Write(data)

				return err
			}

			err = os.WriteFile(outputPath, data, 0o644)
			if err != nil {
				return fmt.Errorf("failed to write asset file: %w", err)
			}

			fmt.Printf("Wrote %d bytes to %s\n", len(data), outputPath)

			return nil
		},
	}

	cmd.Flags().StringVarP(&outputPath, "out", "O", "", "write the asset to this file")

	return cmd
}

func newAssetsAttachCommand() *cobra.Command {
	var assetType string

	cmd := &cobra.Command{
		Use:   "attach BOOKMARK_ID ASSET_ID",
		Short: "Attach an asset to a bookmark",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := CreateClient()
			if err != nil {
				return err
			}

			attached, err := client.Bookmarks().AttachAsset(context.Background(),
				args[0], args[1], karakeep.BookmarkAssetType(assetType))
			if err != nil {
				return fmt.Errorf("failed to attach asset: %w", err)
			}

			fmt.Printf("Asset %s attached as %s\n", attached.ID, attached.AssetType)

			return nil
		},
	}

	cmd.Flags().StringVar(&assetType, "type", string(karakeep.BookmarkAssetTypeUserUploaded), "asset type")

	return cmd
}

func newAssetsReplaceCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "replace BOOKMARK_ID ASSET_ID NEW_ASSET_ID",
		Short: "Replace an attached asset",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := CreateClient()
			if err != nil {
				return err
			}

			err = client.Bookmarks().ReplaceAsset(context.Background(), args[0], args[1], args[2])
			if err != nil {
				return fmt.Errorf("failed to replace asset: %w", err)
			}

			fmt.Printf("Asset %s replaced with %s\n", args[1], args[2])

			return nil
		},
	}
}

func newAssetsDetachCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "detach BOOKMARK_ID ASSET_ID",
		Short: "Detach an asset from a bookmark",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := CreateClient()
			if err != nil {
				return err
			}

			err = client.Bookmarks().DetachAsset(context.Background(), args[0], args[1])
			if err != nil {
				return fmt.Errorf("failed to detach asset: %w", err)
			}

			fmt.Printf("Asset %s detached\n", args[1])

			return nil
		},
	}
}

func renderAssetTable(asset *karakeep.Asset) error {
	table := tablewriter.NewWriter(os.Stdout)
	table.Header("Property", "Value")

	_ = table.Append("Asset ID", asset.AssetID)
	_ = table.Append("File Name", asset.FileName)
	_ = table.Append("Content Type", asset.ContentType)
	_ = table.Append("Size", fmt.Sprintf("%.0f", asset.Size))

	_ = table.Render()

	return nil
}
