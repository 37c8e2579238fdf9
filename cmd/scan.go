package cmd

import (
	"context"
	"os"

	mio "github.com/kasuboski/mediagroup/pkg/io"
	"github.com/kasuboski/mediagroup/pkg/library"
	"github.com/kasuboski/mediagroup/pkg/logger"
	"go.uber.org/zap"

	"github.com/spf13/cobra"
)

var scanJSON bool

// scanCmd scans a directory and prints its grouped contents
var scanCmd = &cobra.Command{
	Use:        "scan",
	Short:      "scan a directory and group the media files found",
	Args:       cobra.ExactArgs(1),
	ArgAliases: []string{"path to library"},
	Run: func(cmd *cobra.Command, args []string) {
		_, log, grouper := setup()
		ctx := logger.WithCtx(context.Background(), log)

		path := args[0]
		lib := library.New(library.FileSystem{
			Path: path,
			FS:   os.DirFS(path),
		}, &mio.MediaFileSystem{})

		files, err := lib.Scan(ctx)
		if err != nil {
			log.Fatal("failed to scan library", zap.Error(err))
		}

		if err := writeGroups(cmd.OutOrStdout(), grouper.GroupFiles(ctx, files), !scanJSON); err != nil {
			log.Fatal("failed to write groups", zap.Error(err))
		}
	},
}

func init() {
	scanCmd.Flags().BoolVar(&scanJSON, "json", false, "print json instead of a readable tree")
	rootCmd.AddCommand(scanCmd)
}
