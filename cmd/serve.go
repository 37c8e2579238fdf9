package cmd

import (
	"os"

	mio "github.com/kasuboski/mediagroup/pkg/io"
	"github.com/kasuboski/mediagroup/pkg/library"
	"github.com/kasuboski/mediagroup/server"
	"go.uber.org/zap"

	"github.com/spf13/cobra"
)

// serveCmd represents the serve command
var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "start the grouping server",
	Long:  `start the grouping server`,
	Run: func(cmd *cobra.Command, args []string) {
		cfg, log, grouper := setup()

		var lib library.Library
		if cfg.Library.Dir != "" {
			lib = library.New(library.FileSystem{
				Path: cfg.Library.Dir,
				FS:   os.DirFS(cfg.Library.Dir),
			}, &mio.MediaFileSystem{})
		} else {
			log.Info("no library directory configured, library endpoints are disabled")
		}

		srv := server.New(log, grouper, lib)
		if err := srv.Serve(cfg.Server.Port); err != nil {
			log.Error("server shutdown failed", zap.Error(err))
		}
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)
}
