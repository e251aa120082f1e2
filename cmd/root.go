package cmd

import (
	"fmt"
	"runtime"

	"github.com/spf13/cobra"

	"github.com/AnyUserName/wallgen/internal/config"
	"github.com/AnyUserName/wallgen/internal/logging"
)

var (
	version    = "0.1.0"
	configFile string
	conf       config.Config
)

var rootCmd = &cobra.Command{
	Use:   "wallgen",
	Short: "Procedural abstract wallpapers for phone screens",
	Long: `wallgen — paints abstract phone wallpapers from a seeded random recipe:
a two-color gradient, paper texture, two to four blended pattern layers,
grain and a soft vignette.

The same size and seed always reproduce the same pixels.`,
	Version:       version,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
		var err error
		conf, err = config.Load(cmd, configFile)
		if err != nil {
			return err
		}
		logging.Setup(conf.LogLevel)
		return nil
	},
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&configFile, "config", "c", "", "path to config file (yaml, json, toml)")
	rootCmd.PersistentFlags().String("log-level", "info", "log level: trace, debug, info, warn, error, none")
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "verbose output (same as --log-level=debug)")
	rootCmd.SetVersionTemplate(fmt.Sprintf(
		"wallgen %s (%s/%s, %s)\n",
		version, runtime.GOOS, runtime.GOARCH, runtime.Version(),
	))
}
