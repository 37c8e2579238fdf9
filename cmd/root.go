package cmd

import (
	"os"
	"strings"

	"github.com/kasuboski/mediagroup/config"
	"github.com/kasuboski/mediagroup/pkg/grouping"
	"github.com/kasuboski/mediagroup/pkg/logger"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"
)

var cfgFile string

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "mediagroup",
	Short: "group media files into series and seasons",
	Long: `mediagroup groups scanned media files and rename previews into series,
seasons and missing episode placeholders.`,
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(initConfig)
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file")
}

func initConfig() {
	viper.SetConfigFile(cfgFile)

	viper.SetEnvPrefix("MEDIAGROUP")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", ""))
	viper.AutomaticEnv()

	viper.SetDefault("server.port", 8080)

	viper.SetDefault("library.dir", "")

	viper.SetDefault("grouping.locale", "en")

	viper.SetDefault("log.level", "info")
	viper.SetDefault("log.json", false)
}

// setup reads the configuration and builds the logger and grouper every command shares
func setup() (config.Config, *zap.SugaredLogger, grouping.Grouper) {
	log := logger.Get()

	cfg, err := config.New(viper.GetViper())
	if err != nil {
		log.Fatal("failed to read configurations", zap.Error(err))
	}

	log, err = logger.Configure(cfg.Log.Level, cfg.Log.JSON)
	if err != nil {
		log.Warnw("invalid log level, using info", "level", cfg.Log.Level, "error", err)
	}

	tag, err := cfg.LanguageTag()
	if err != nil {
		log.Warnw("invalid grouping locale, using english", "locale", cfg.Grouping.Locale, "error", err)
	}

	return cfg, log, grouping.New(grouping.WithLanguage(tag))
}
