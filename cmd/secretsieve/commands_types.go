package main

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"

	"github.com/suryansh-23/secretsieve/internal/ui"
)

func newTypesCmd(state *appState) *cobra.Command {
	var (
		vendors bool
		plain   bool
	)
	cmd := &cobra.Command{
		Use:   "types",
		Short: "List the supported secret types",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			eng, err := state.engine()
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			if plain {
				for _, id := range eng.ListSupportedTypes() {
					fmt.Fprintln(out, id)
				}
				return nil
			}

			var t *table.Table
			if vendors {
				groups := make(map[string][]string)
				for _, def := range eng.Definitions() {
					groups[def.Vendor] = append(groups[def.Vendor], def.ID)
				}
				t = newTable("VENDOR", "TYPES")
				for _, vendor := range eng.ListVendors() {
					t.Row(vendor, strings.Join(groups[vendor], ", "))
				}
			} else {
				t = newTable("TYPE", "VENDOR", "TIER", "DESCRIPTION")
				for _, def := range eng.Definitions() {
					t.Row(def.ID, def.Vendor, string(def.Tier), def.Description)
				}
			}
			fmt.Fprintln(out, t.Render())
			return nil
		},
	}
	cmd.Flags().BoolVar(&vendors, "vendors", false, "group types by vendor")
	cmd.Flags().BoolVar(&plain, "plain", false, "print type ids only, one per line")
	return cmd
}

func newTable(headers ...string) *table.Table {
	header := lipgloss.NewStyle().Foreground(ui.Primary).Bold(true).Padding(0, 1)
	cell := lipgloss.NewStyle().Padding(0, 1)
	return table.New().
		Border(lipgloss.NormalBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(ui.Muted)).
		Headers(headers...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return header
			}
			return cell
		})
}
