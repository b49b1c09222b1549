package main

import (
	"fmt"
	"os"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/spf13/cobra"

	"github.com/decker502/birthday/pkg/app"
	"github.com/decker502/birthday/pkg/config"
	"github.com/decker502/birthday/pkg/embedded"
)

// cliOptions 命令行参数，未设置的项回落到环境变量
type cliOptions struct {
	configPath string
	verbose    bool
	logLevel   string
	fullscreen bool
}

func newRootCmd() *cobra.Command {
	opts := &cliOptions{}

	cmd := &cobra.Command{
		Use:           "birthday",
		Short:         "A small interactive birthday celebration",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			env, err := config.LoadEnvOverrides()
			if err != nil {
				return err
			}
			merge(cmd, opts, env)
			return run(opts)
		},
	}

	cmd.Flags().StringVarP(&opts.configPath, "config", "c", "", "path to a celebration YAML file (default: embedded data/celebration.yaml)")
	cmd.Flags().BoolVarP(&opts.verbose, "verbose", "v", false, "enable logging")
	cmd.Flags().StringVar(&opts.logLevel, "log-level", "info", "log level: debug, info, warn, error")
	cmd.Flags().BoolVar(&opts.fullscreen, "fullscreen", false, "start in fullscreen")

	return cmd
}

// merge 用环境变量填充未显式指定的参数
func merge(cmd *cobra.Command, opts *cliOptions, env config.EnvOverrides) {
	flags := cmd.Flags()
	if !flags.Changed("config") && env.ConfigPath != "" {
		opts.configPath = env.ConfigPath
	}
	if !flags.Changed("verbose") && env.Verbose {
		opts.verbose = true
	}
	if !flags.Changed("log-level") && env.LogLevel != "" {
		opts.logLevel = env.LogLevel
	}
	if !flags.Changed("fullscreen") && env.Fullscreen {
		opts.fullscreen = true
	}
}

func run(opts *cliOptions) error {
	embedded.Init(dataFS)

	gameApp, err := app.NewApp(app.Config{
		Verbose:    opts.verbose,
		LogLevel:   opts.logLevel,
		ConfigPath: opts.configPath,
	})
	if err != nil {
		return fmt.Errorf("initialization failed: %w", err)
	}
	defer gameApp.Close()

	window := gameApp.WindowConfig()
	ebiten.SetWindowSize(window.Width, window.Height)
	ebiten.SetWindowTitle(window.Title)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetFullscreen(opts.fullscreen)

	return ebiten.RunGame(gameApp)
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
