package main

import (
	"os"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/vovakirdan/brickbreaker/internal/config"
)

var flagResolved bool

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the game config",
	Long: `Print the built-in default config as YAML. Save it to
~/.arcade/configs/breakout.yaml or ./configs/breakout.yaml to customize the game.

With --resolved, print the config that would be used after applying
--config and the search paths.`,
	Args: cobra.NoArgs,
	Run:  runConfig,
}

func init() {
	configCmd.Flags().BoolVar(&flagResolved, "resolved", false, "Print the config in effect instead of the defaults")
}

func runConfig(_ *cobra.Command, _ []string) {
	if !flagResolved {
		os.Stdout.Write(config.GetDefaultYAML("breakout"))
		return
	}

	cfg, err := config.LoadBreakout(flagConfig)
	if err != nil {
		fail("%v", err)
	}
	enc := yaml.NewEncoder(os.Stdout)
	enc.SetIndent(2)
	if err := enc.Encode(cfg); err != nil {
		fail("encoding config: %v", err)
	}
	enc.Close()
}
