package main

import (
	"github.com/spf13/cobra"

	"github.com/suryansh-23/secretsieve/internal/config"
	"github.com/suryansh-23/secretsieve/internal/debug"
)

func newRootCmd(state *appState) *cobra.Command {
	var (
		cfgPath   string
		debugFlag bool
	)

	rootCmd := &cobra.Command{
		Use:           "secretsieve",
		Short:         "Find credentials and other secrets in text",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			resolvedPath, err := resolveConfigPath(cfgPath)
			if err != nil {
				return err
			}
			cfg, found, err := config.Load(resolvedPath)
			if err != nil {
				return err
			}
			if debugFlag {
				cfg.Debug.Enabled = true
			}
			state.cfg = cfg
			state.cfgFound = found
			state.cfgPath = resolvedPath
			state.logger = debug.New(cfg.Debug.Enabled)
			state.eng = nil
			state.logger.Debug().Str("config", resolvedPath).Bool("found", found).Msg("config loaded")
			return nil
		},
	}

	rootCmd.PersistentFlags().StringVar(&cfgPath, "config", "", "config file path")
	rootCmd.PersistentFlags().BoolVar(&debugFlag, "debug", false, "enable sanitized debug logging")

	rootCmd.AddCommand(newDetectCmd(state))
	rootCmd.AddCommand(newTypesCmd(state))
	rootCmd.AddCommand(newInitCmd(state))
	rootCmd.AddCommand(newVersionCmd(state))

	return rootCmd
}
