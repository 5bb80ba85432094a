package cli

import (
	"errors"
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/foundry-tools/foundry/internal/audit"
	"github.com/foundry-tools/foundry/internal/branding"
	"github.com/foundry-tools/foundry/internal/compose"
	"github.com/foundry-tools/foundry/internal/config"
	"github.com/foundry-tools/foundry/internal/emitter"
	"github.com/foundry-tools/foundry/internal/manifest"
	"github.com/foundry-tools/foundry/internal/plugins"
	"github.com/foundry-tools/foundry/internal/presets"
	"github.com/foundry-tools/foundry/internal/scripts"
)

var (
	initTools     []string
	initFormat    string
	initOverwrite bool
	initOptions   optionFlags
)

var (
	styleDone    = lipgloss.NewStyle().Foreground(lipgloss.Color("#4CAF50")).Bold(true)
	styleSkipped = lipgloss.NewStyle().Foreground(lipgloss.Color("#999999"))
	styleFailed  = lipgloss.NewStyle().Foreground(lipgloss.Color("#FF6B6B")).Bold(true)
)

func init() {
	initCmd.Flags().StringSliceVar(&initTools, "config", toolNames(presets.AllTools()), "Tools to set up")
	initCmd.Flags().StringVar(&initFormat, "format", "", "Output format: json writes the composed config, module writes a file calling the preset (default from config, else json)")
	initCmd.Flags().BoolVar(&initOverwrite, "overwrite", false, "Replace existing config files and scripts")
	initOptions.register(initCmd)
	rootCmd.AddCommand(initCmd)
}

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Write config files for the project",
	Long: `Write config files for the project in the nearest directory containing a package.json.

Options are detected from package.json unless pinned in its "` + branding.ManifestKey() + `" section
or passed as flags. Existing files are kept unless --overwrite is given.`,
	Example: `  ` + branding.CLIName() + ` init
  ` + branding.CLIName() + ` init --config eslint,prettier --language TypeScript
  ` + branding.CLIName() + ` init --format module --plugin jest,storybook --overwrite`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		tools, err := parseTools(initTools)
		if err != nil {
			return err
		}

		formatValue := initFormat
		if !cmd.Flags().Changed("format") {
			formatValue = config.Get(config.KeyFormat)
		}
		format, err := presets.ParseFormat(formatValue)
		if err != nil {
			return err
		}

		flags, err := initOptions.overrides(cmd.Flags().Changed, plugins.Default())
		if err != nil {
			return err
		}

		return runInit(initRequest{
			Dir:       flagDir,
			Tools:     tools,
			Format:    format,
			Overwrite: initOverwrite || config.GetBool(config.KeyOverwrite),
			Flags:     flags,
			Stdout:    cmd.OutOrStdout(),
			Stderr:    cmd.ErrOrStderr(),
		})
	},
}

type initRequest struct {
	Dir       string
	Tools     []presets.Tool
	Format    presets.OutputFormat
	Overwrite bool
	Flags     manifest.Overrides
	Stdout    io.Writer
	Stderr    io.Writer
}

// runInit generates the config files and package.json scripts of every
// requested tool. Files and scripts that would clobber existing content are
// skipped and reported together in the returned error.
func runInit(req initRequest) error {
	p, err := loadProject(req.Dir, req.Flags, req.Stderr)
	if err != nil {
		return err
	}

	audit.New(p.Registry, p.Logger).Run(p.Manifest)

	params := presets.Params{
		Options:   p.Options,
		Registry:  p.Registry,
		Format:    req.Format,
		Tools:     req.Tools,
		Customize: customizations(p),
	}

	var files []emitter.File
	var wanted []presets.Script
	for _, tool := range req.Tools {
		out, err := presets.Generate(tool, params)
		if err != nil {
			return err
		}
		files = append(files, out.Files...)
		wanted = append(wanted, out.Scripts...)
	}

	result, writeErr := emitter.Write(p.Dir, files, req.Overwrite)
	if result != nil {
		for _, path := range result.Written {
			fmt.Fprintf(req.Stdout, "%s %s\n", styleDone.Render("wrote"), path)
		}
	}
	if writeErr != nil && !errors.Is(writeErr, emitter.ErrFileExists) {
		return writeErr
	}

	errs := []error{writeErr}
	for _, s := range wanted {
		outcome, err := scripts.Add(p.ManifestPath, s.Name, s.Command, req.Overwrite)
		switch {
		case errors.Is(err, scripts.ErrScriptConflict):
			fmt.Fprintf(req.Stdout, "%s script %q\n", styleFailed.Render("kept"), s.Name)
			errs = append(errs, err)
		case err != nil:
			return err
		case outcome == scripts.Unchanged:
			fmt.Fprintf(req.Stdout, "%s script %q\n", styleSkipped.Render("unchanged"), s.Name)
		default:
			fmt.Fprintf(req.Stdout, "%s script %q\n", styleDone.Render(string(outcome)), s.Name)
		}
	}

	return errors.Join(errs...)
}

// customizations converts the manifest's per-tool customize section,
// dropping entries for unknown tools.
func customizations(p *project) map[presets.Tool]compose.Fragment {
	if len(p.Explicit.Customize) == 0 {
		return nil
	}
	out := make(map[presets.Tool]compose.Fragment, len(p.Explicit.Customize))
	for name, fragment := range p.Explicit.Customize {
		tool, ok := presets.ParseTool(name)
		if !ok {
			p.Logger.Warn("ignoring customization for unknown tool", "tool", name)
			continue
		}
		out[tool] = fragment
	}
	return out
}

func parseTools(names []string) ([]presets.Tool, error) {
	var tools []presets.Tool
	seen := make(map[presets.Tool]bool)
	for _, name := range names {
		if name == "" {
			continue
		}
		tool, ok := presets.ParseTool(name)
		if !ok {
			return nil, fmt.Errorf("unknown tool %q: expected one of %v", name, toolNames(presets.AllTools()))
		}
		if !seen[tool] {
			seen[tool] = true
			tools = append(tools, tool)
		}
	}
	if len(tools) == 0 {
		return nil, fmt.Errorf("no tools selected")
	}
	return tools, nil
}

func toolNames(tools []presets.Tool) []string {
	names := make([]string, len(tools))
	for i, t := range tools {
		names[i] = string(t)
	}
	return names
}
