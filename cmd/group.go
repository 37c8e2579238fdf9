package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"io"

	"github.com/kasuboski/mediagroup/pkg/grouping"
	mio "github.com/kasuboski/mediagroup/pkg/io"
	"github.com/kasuboski/mediagroup/pkg/logger"
	"go.uber.org/zap"

	"github.com/spf13/cobra"
)

var summary bool

// groupCmd is the parent for grouping records read from a json file
var groupCmd = &cobra.Command{
	Use:   "group",
	Short: "group records read from a json file",
}

// groupFilesCmd groups scan records
var groupFilesCmd = &cobra.Command{
	Use:        "files",
	Short:      "group a json array of scanned files",
	Args:       cobra.ExactArgs(1),
	ArgAliases: []string{"path to json file"},
	Run: func(cmd *cobra.Command, args []string) {
		_, log, grouper := setup()
		ctx := logger.WithCtx(context.Background(), log)

		var files []grouping.FileRecord
		if err := readRecords(&mio.MediaFileSystem{}, args[0], &files); err != nil {
			log.Fatal("failed to read files", zap.Error(err))
		}

		if err := writeGroups(cmd.OutOrStdout(), grouper.GroupFiles(ctx, files), summary); err != nil {
			log.Fatal("failed to write groups", zap.Error(err))
		}
	},
}

// groupPreviewsCmd groups rename previews
var groupPreviewsCmd = &cobra.Command{
	Use:        "previews",
	Short:      "group a json array of rename previews",
	Args:       cobra.ExactArgs(1),
	ArgAliases: []string{"path to json file"},
	Run: func(cmd *cobra.Command, args []string) {
		_, log, grouper := setup()
		ctx := logger.WithCtx(context.Background(), log)

		var previews []grouping.RenamePreview
		if err := readRecords(&mio.MediaFileSystem{}, args[0], &previews); err != nil {
			log.Fatal("failed to read previews", zap.Error(err))
		}

		if err := writeGroups(cmd.OutOrStdout(), grouper.GroupPreviews(ctx, previews), summary); err != nil {
			log.Fatal("failed to write groups", zap.Error(err))
		}
	},
}

func readRecords(f mio.FileIO, path string, out any) error {
	b, err := f.ReadFile(path)
	if err != nil {
		return err
	}

	if err := json.Unmarshal(b, out); err != nil {
		return fmt.Errorf("failed to parse %s: %w", path, err)
	}

	return nil
}

// writeGroups prints groups as indented json, or as a readable tree when asSummary is set
func writeGroups(w io.Writer, groups []grouping.SeriesGroup, asSummary bool) error {
	if asSummary {
		return writeSummary(w, groups)
	}

	b, err := json.MarshalIndent(groups, "", "  ")
	if err != nil {
		return err
	}

	_, err = fmt.Fprintln(w, string(b))
	return err
}

func init() {
	groupCmd.PersistentFlags().BoolVar(&summary, "summary", false, "print a readable tree instead of json")
	groupCmd.AddCommand(groupFilesCmd)
	groupCmd.AddCommand(groupPreviewsCmd)
	rootCmd.AddCommand(groupCmd)
}
