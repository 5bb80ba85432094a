package cli

import (
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"

	"github.com/foundry-tools/foundry/internal/audit"
	"github.com/foundry-tools/foundry/internal/options"
	"github.com/foundry-tools/foundry/internal/plugins"
)

var debugOptions optionFlags

var headerStyle = lipgloss.NewStyle().Bold(true).Padding(0, 1)

func init() {
	debugOptions.register(debugCmd)
	rootCmd.AddCommand(debugCmd)
}

var debugCmd = &cobra.Command{
	Use:   "debug",
	Short: "Show detected options and plugin warnings",
	Long: `Print the options that init would use, where each one came from, and the
result of checking installed lint plugins against the supported versions.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		flags, err := debugOptions.overrides(cmd.Flags().Changed, plugins.Default())
		if err != nil {
			return err
		}

		p, err := loadProject(flagDir, flags, cmd.ErrOrStderr())
		if err != nil {
			return err
		}

		// Findings are shown in the table rather than logged.
		auditor := audit.New(p.Registry, slog.New(slog.DiscardHandler))
		findings := auditor.Run(p.Manifest)

		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "%s (%s)\n\n", p.ManifestPath, packageLabel(p))
		printOptions(out, p)
		fmt.Fprintln(out)
		printFindings(out, findings)
		return nil
	},
}

func packageLabel(p *project) string {
	if p.Manifest.Name == "" {
		return "unnamed package"
	}
	if p.Manifest.Version == "" {
		return p.Manifest.Name
	}
	return p.Manifest.Name + "@" + p.Manifest.Version
}

func printOptions(w io.Writer, p *project) {
	sources := options.Sources(p.Explicit)
	opts := p.Options

	pluginLabels := make([]string, len(opts.Plugins))
	for i, name := range opts.Plugins {
		pluginLabels[i] = options.Label(options.PluginChoices(p.Registry), string(name))
	}

	rows := [][]string{
		{"language", options.Label(options.LanguageChoices, string(opts.Language)), string(sources["language"])},
		{"environments", joinLabels(options.EnvironmentChoices, opts.Environments), string(sources["environments"])},
		{"frameworks", joinLabels(options.FrameworkChoices, opts.Frameworks), string(sources["frameworks"])},
		{"plugins", orNone(strings.Join(pluginLabels, ", ")), string(sources["plugins"])},
		{"openSource", fmt.Sprint(opts.OpenSource), string(sources["openSource"])},
	}

	t := table.New().
		Border(lipgloss.NormalBorder()).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return headerStyle
			}
			return lipgloss.NewStyle().Padding(0, 1)
		}).
		Headers("OPTION", "VALUE", "SOURCE").
		Rows(rows...)
	fmt.Fprintln(w, t.Render())
}

func printFindings(w io.Writer, findings []audit.Finding) {
	if len(findings) == 0 {
		fmt.Fprintln(w, "No plugin warnings.")
		return
	}

	rows := make([][]string, len(findings))
	for i, f := range findings {
		rows[i] = []string{string(f.Kind), f.Package, orNone(f.Installed), f.Supported, f.Message()}
	}

	t := table.New().
		Border(lipgloss.NormalBorder()).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return headerStyle
			}
			return lipgloss.NewStyle().Padding(0, 1)
		}).
		Headers("KIND", "PACKAGE", "INSTALLED", "SUPPORTED", "MESSAGE").
		Rows(rows...)
	fmt.Fprintln(w, t.Render())
}

func joinLabels[T ~string](choices []options.Choice, values []T) string {
	labels := make([]string, len(values))
	for i, v := range values {
		labels[i] = options.Label(choices, string(v))
	}
	return orNone(strings.Join(labels, ", "))
}

func orNone(s string) string {
	if s == "" {
		return "-"
	}
	return s
}
