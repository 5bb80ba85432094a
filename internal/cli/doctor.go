package cli

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os/exec"

	"github.com/spf13/cobra"

	"github.com/foundry-tools/foundry/internal/audit"
	"github.com/foundry-tools/foundry/internal/manifest"
	"github.com/foundry-tools/foundry/internal/presets"
	"github.com/foundry-tools/foundry/internal/runner"
)

var doctorTools []string

func init() {
	doctorCmd.Flags().StringSliceVar(&doctorTools, "config", toolNames(presets.AllTools()), "Tools whose binaries should be installed")
	rootCmd.AddCommand(doctorCmd)
}

var doctorCmd = &cobra.Command{
	Use:   "doctor",
	Short: "Check the project setup",
	Long: `Run diagnostic checks on the project: the package.json option overrides,
the Node.js runtime, the tool binaries in node_modules/.bin, and the versions
of installed lint plugins.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		tools, err := parseTools(doctorTools)
		if err != nil {
			return err
		}
		return runDoctor(cmd.OutOrStdout(), cmd.ErrOrStderr(), flagDir, tools)
	},
}

// errChecksFailed is returned when at least one check reported FAIL.
var errChecksFailed = errors.New("some checks failed")

func runDoctor(w, stderr io.Writer, dir string, tools []presets.Tool) error {
	p, err := loadProject(dir, manifest.Overrides{}, stderr)
	if err != nil {
		return err
	}

	failed := !checkOverrides(w, p)
	checkRuntime(w)
	checkBinaries(w, p.Dir, tools)
	checkPlugins(w, p)

	if failed {
		return errChecksFailed
	}
	return nil
}

func checkOverrides(w io.Writer, p *project) bool {
	fmt.Fprintf(w, "Manifest check: %s\n", p.ManifestPath)

	result, err := manifest.ValidateOverrides(p.Manifest)
	if err != nil {
		fmt.Fprintf(w, "  [FAIL] %v\n", err)
		return false
	}
	if result.Valid {
		fmt.Fprintf(w, "  [ OK ] options are valid\n")
		return true
	}

	fmt.Fprintf(w, "  [FAIL] %d validation issue(s):\n", len(result.Issues))
	for _, issue := range result.Issues {
		fmt.Fprintf(w, "    - %s\n", issue)
	}
	return false
}

func checkRuntime(w io.Writer) {
	fmt.Fprintln(w, "Runtime check:")
	for _, name := range []string{"node", "npm"} {
		path, err := exec.LookPath(name)
		if err != nil {
			fmt.Fprintf(w, "  [MISS] %s not found\n", name)
			continue
		}
		fmt.Fprintf(w, "  [ OK ] %s found at %s\n", name, path)
	}
}

func checkBinaries(w io.Writer, dir string, tools []presets.Tool) {
	fmt.Fprintln(w, "Tool check:")
	for _, tool := range tools {
		bin, err := runner.Resolve(dir, string(tool))
		if err != nil {
			fmt.Fprintf(w, "  [MISS] %s is not installed\n", tool)
			continue
		}
		fmt.Fprintf(w, "  [ OK ] %s found at %s\n", tool, bin)
	}
}

func checkPlugins(w io.Writer, p *project) {
	fmt.Fprintln(w, "Plugin check:")
	findings := audit.New(p.Registry, slog.New(slog.DiscardHandler)).Run(p.Manifest)
	if len(findings) == 0 {
		fmt.Fprintln(w, "  [ OK ] installed plugins are supported")
		return
	}
	for _, f := range findings {
		fmt.Fprintf(w, "  [WARN] %s\n", f.Message())
	}
}
