package cli

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/foundry-tools/foundry/internal/branding"
	"github.com/foundry-tools/foundry/internal/config"
)

var (
	buildVersion string
	buildCommit  string
	buildDate    string
)

var (
	flagDebug bool
	flagDir   string
)

var rootCmd = &cobra.Command{
	Use:   branding.CLIName(),
	Short: branding.Description(),
	Long: branding.DisplayName() + ` sets up ESLint, Prettier, Stylelint, lint-staged, Husky and
semantic-release for a JavaScript or TypeScript project. It reads package.json,
works out the language, environments, frameworks and plugins in use, and writes
config files tailored to them.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		config.Load()
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVar(&flagDebug, "debug", false, "Print debug output (also "+branding.EnvVar("DEBUG")+")")
	rootCmd.PersistentFlags().StringVarP(&flagDir, "dir", "C", ".", "Project directory")
	_ = viper.BindPFlag(config.KeyDebug, rootCmd.PersistentFlags().Lookup("debug"))
}

// ExitCodeError carries the exit code of a child process so main can
// exit with it.
type ExitCodeError struct {
	Code int
}

func (e *ExitCodeError) Error() string {
	return fmt.Sprintf("exit status %d", e.Code)
}

// Execute runs the root command with build info injected via ldflags and
// returns the process exit code.
func Execute(version, commit, date string) int {
	buildVersion = version
	buildCommit = commit
	buildDate = date

	err := rootCmd.Execute()
	if err == nil {
		return 0
	}

	var exitErr *ExitCodeError
	if errors.As(err, &exitErr) {
		return exitErr.Code
	}
	fmt.Fprintf(os.Stderr, "Error: %v\n", err)
	return 1
}
