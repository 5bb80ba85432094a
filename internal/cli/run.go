package cli

import (
	"fmt"
	"os"
	"os/signal"

	"github.com/spf13/cobra"

	"github.com/foundry-tools/foundry/internal/branding"
	"github.com/foundry-tools/foundry/internal/config"
	"github.com/foundry-tools/foundry/internal/logging"
	"github.com/foundry-tools/foundry/internal/runner"
)

var runCmd = &cobra.Command{
	Use:   "run <tool> [args...]",
	Short: "Run a tool installed in the project",
	Long: `Run a tool from the nearest node_modules/.bin, passing every argument through
unchanged. The command exits with the tool's exit code.

Generated package.json scripts call tools this way, e.g.
  ` + branding.CLIName() + ` run eslint --fix .`,
	DisableFlagParsing: true,
	RunE:               runRun,
}

func init() {
	rootCmd.AddCommand(runCmd)
}

func runRun(cmd *cobra.Command, args []string) error {
	if len(args) == 0 || args[0] == "-h" || args[0] == "--help" {
		return cmd.Help()
	}
	tool, toolArgs := args[0], args[1:]

	cwd, err := os.Getwd()
	if err != nil {
		return fmt.Errorf("getting current directory: %w", err)
	}

	logger := logging.New(cmd.ErrOrStderr(), config.Debug())

	bin, err := runner.Resolve(cwd, tool)
	if err != nil {
		return err
	}
	logger.Debug("running tool", "bin", bin, "args", toolArgs)

	// The child receives interrupts from the terminal directly; the parent
	// only waits for it to exit.
	interrupts := make(chan os.Signal, 1)
	signal.Notify(interrupts, os.Interrupt)
	defer signal.Stop(interrupts)

	r := &runner.Runner{
		Stdin:  cmd.InOrStdin(),
		Stdout: cmd.OutOrStdout(),
		Stderr: cmd.ErrOrStderr(),
	}
	code, err := r.Run(cmd.Context(), cwd, bin, toolArgs)
	if err != nil {
		return err
	}
	if code != 0 {
		return &ExitCodeError{Code: code}
	}
	return nil
}
