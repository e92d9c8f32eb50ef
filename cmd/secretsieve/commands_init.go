package main

import (
	"errors"
	"fmt"
	"io"
	"slices"
	"strings"

	"github.com/charmbracelet/huh"
	"github.com/spf13/cobra"

	"github.com/suryansh-23/secretsieve"
	"github.com/suryansh-23/secretsieve/internal/config"
	"github.com/suryansh-23/secretsieve/internal/mask"
	"github.com/suryansh-23/secretsieve/internal/registry"
	"github.com/suryansh-23/secretsieve/internal/types"
	"github.com/suryansh-23/secretsieve/internal/ui"
)

func newInitCmd(state *appState) *cobra.Command {
	var useDefaults bool
	cmd := &cobra.Command{
		Use:   "init",
		Short: "Write a config file, interactively or with defaults",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			path := state.cfgPath
			out := cmd.OutOrStdout()
			catalog, err := registry.New(registry.Defaults()...)
			if err != nil {
				return err
			}

			cfg := config.DefaultConfig()
			if useDefaults || !isTerminal(cmd.InOrStdin()) {
				if exists(path) {
					fmt.Fprintf(out, "Config exists, overwriting: %s\n", path)
				}
				return finishInit(out, path, cfg)
			}

			selectedVendors := catalog.Vendors()
			format := string(cfg.Output.Format)
			maskValues := cfg.Output.Mask
			overwrite := false

			form := ui.NewForm(
				huh.NewGroup(
					huh.NewConfirm().Title("Config exists. Overwrite?").Value(&overwrite),
				).WithHideFunc(func() bool { return !exists(path) }),
				huh.NewGroup(
					huh.NewMultiSelect[string]().
						Title("Detect secrets from").
						Description("Unselected vendors are written as disabled types.").
						Value(&selectedVendors).
						Options(vendorOptions(catalog)...),
				),
				huh.NewGroup(
					huh.NewSelect[string]().Title("Default output format").Value(&format).Options(
						huh.NewOption("Text (default)", string(types.FormatText)),
						huh.NewOption("JSON", string(types.FormatJSON)),
						huh.NewOption("YAML", string(types.FormatYAML)),
					),
				),
				huh.NewGroup(
					huh.NewConfirm().Title("Mask secret values in reports?").Value(&maskValues),
				),
			)
			if err := runAnimatedForm(form, cmd.InOrStdin(), cmd.ErrOrStderr()); err != nil {
				return err
			}
			if exists(path) && !overwrite {
				return errors.New("init cancelled")
			}

			cfg.Detection.DisabledTypes = disabledTypes(catalog, selectedVendors)
			cfg.Output.Format = types.Format(format)
			cfg.Output.Mask = maskValues
			return finishInit(out, path, cfg)
		},
	}
	cmd.Flags().BoolVar(&useDefaults, "defaults", false, "write the default config without prompts")
	return cmd
}

func vendorOptions(catalog *registry.Registry) []huh.Option[string] {
	vendors := catalog.Vendors()
	options := make([]huh.Option[string], 0, len(vendors))
	for _, vendor := range vendors {
		label := fmt.Sprintf("%s (%d)", vendor, len(catalog.VendorTypes(vendor)))
		options = append(options, huh.NewOption(label, vendor))
	}
	return options
}

// disabledTypes returns the ids of every vendor not in selected.
func disabledTypes(catalog *registry.Registry, selected []string) []string {
	keep := make(map[string]struct{}, len(selected))
	for _, vendor := range selected {
		keep[strings.TrimSpace(vendor)] = struct{}{}
	}
	var out []string
	for _, vendor := range catalog.Vendors() {
		if _, ok := keep[vendor]; ok {
			continue
		}
		out = append(out, catalog.VendorTypes(vendor)...)
	}
	return out
}

func finishInit(out io.Writer, path string, cfg config.Config) error {
	if err := runSelfTest(out, cfg); err != nil {
		return err
	}
	if err := config.Write(path, cfg); err != nil {
		return err
	}
	fmt.Fprintln(out, ui.Clean("Wrote config to "+path))
	return nil
}

// runSelfTest builds an engine from cfg and checks that a synthetic GitHub
// token is still found. It is skipped when the github vendor is disabled.
func runSelfTest(out io.Writer, cfg config.Config) error {
	eng, err := secretsieve.New(secretsieve.WithConfig(cfg))
	if err != nil {
		return fmt.Errorf("self-test: %w", err)
	}
	if !slices.Contains(eng.ListVendors(), "github") {
		fmt.Fprintln(out, "Self-test skipped: github types disabled")
		return nil
	}
	token, err := config.SyntheticGitHubPAT()
	if err != nil {
		return err
	}
	secrets, err := eng.Detect("GITHUB_TOKEN="+token, "github")
	if err != nil {
		return fmt.Errorf("self-test: %w", err)
	}
	if len(secrets) != 1 || secrets[0].Value != token {
		return errors.New("self-test failed: synthetic token was not detected")
	}
	masked := mask.Value(token, mask.Options{Char: cfg.Output.MaskChar, Reveal: cfg.Output.Reveal})
	fmt.Fprintf(out, "Self-test output: %s %s\n", secrets[0].Type, masked)
	return nil
}
