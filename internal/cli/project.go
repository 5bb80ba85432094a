package cli

import (
	"fmt"
	"io"
	"log/slog"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/foundry-tools/foundry/internal/config"
	"github.com/foundry-tools/foundry/internal/logging"
	"github.com/foundry-tools/foundry/internal/manifest"
	"github.com/foundry-tools/foundry/internal/options"
	"github.com/foundry-tools/foundry/internal/plugins"
)

// project is a loaded package.json with its resolved options.
type project struct {
	Dir          string // directory holding package.json
	ManifestPath string
	Manifest     *manifest.PackageJSON
	Explicit     manifest.Overrides
	Registry     *plugins.Registry
	Options      options.Options
	Logger       *slog.Logger
}

// loadProject finds the package.json nearest to dir, loads the project's
// .env, and resolves options. Values in flags take precedence over the
// manifest's own overrides.
func loadProject(dir string, flags manifest.Overrides, stderr io.Writer) (*project, error) {
	path, err := manifest.Find(dir)
	if err != nil {
		return nil, err
	}
	projectDir := filepath.Dir(path)

	// The .env file may toggle debug output, so it is read before the
	// logger is built.
	envErr := config.LoadProjectEnv(projectDir)
	logger := logging.New(stderr, config.Debug())
	if envErr != nil {
		logger.Warn("ignoring project environment file", "error", envErr)
	}

	m, err := manifest.Load(path)
	if err != nil {
		return nil, err
	}
	logger.Debug("loaded manifest", "path", path, "name", m.Name)

	result, err := manifest.ValidateOverrides(m)
	if err != nil {
		return nil, fmt.Errorf("validating overrides: %w", err)
	}
	for _, issue := range result.Issues {
		logger.Warn("invalid option in package.json", "issue", issue.String())
	}

	registry := plugins.Default()
	explicit := options.Normalize(m.Overrides.Merge(flags), registry)
	opts := options.Resolve(m, explicit, registry)
	logger.Debug("resolved options",
		"language", opts.Language,
		"environments", opts.Environments,
		"frameworks", opts.Frameworks,
		"plugins", opts.Plugins,
		"openSource", opts.OpenSource,
	)

	return &project{
		Dir:          projectDir,
		ManifestPath: path,
		Manifest:     m,
		Explicit:     explicit,
		Registry:     registry,
		Options:      opts,
		Logger:       logger,
	}, nil
}

// optionFlags holds the option overrides shared by init and debug.
type optionFlags struct {
	language     string
	environments []string
	frameworks   []string
	plugins      []string
	openSource   bool
	private      bool
}

// overrides converts the flags that were set into manifest.Overrides.
// Values are validated and normalized to their canonical spelling.
func (f *optionFlags) overrides(changed func(name string) bool, registry *plugins.Registry) (manifest.Overrides, error) {
	var o manifest.Overrides

	if changed("language") {
		lang, err := options.ParseLanguage(f.language)
		if err != nil {
			return o, err
		}
		s := string(lang)
		o.Language = &s
	}
	if changed("environment") {
		list, err := parseList(f.environments, func(s string) (string, error) {
			env, err := options.ParseEnvironment(s)
			return string(env), err
		})
		if err != nil {
			return o, err
		}
		o.Environments = &list
	}
	if changed("framework") {
		list, err := parseList(f.frameworks, func(s string) (string, error) {
			fw, err := options.ParseFramework(s)
			return string(fw), err
		})
		if err != nil {
			return o, err
		}
		o.Frameworks = &list
	}
	if changed("plugin") {
		list, err := parseList(f.plugins, func(s string) (string, error) {
			name, err := options.ParsePlugin(registry, s)
			return string(name), err
		})
		if err != nil {
			return o, err
		}
		o.Plugins = &list
	}
	switch {
	case f.openSource && f.private:
		return o, fmt.Errorf("--open-source and --private are mutually exclusive")
	case changed("open-source"):
		o.OpenSource = &f.openSource
	case changed("private"):
		v := !f.private
		o.OpenSource = &v
	}

	return o, nil
}

func parseList(values []string, parse func(string) (string, error)) ([]string, error) {
	out := make([]string, 0, len(values))
	seen := make(map[string]bool, len(values))
	for _, v := range values {
		if v == "" {
			continue
		}
		parsed, err := parse(v)
		if err != nil {
			return nil, err
		}
		if seen[parsed] {
			continue
		}
		seen[parsed] = true
		out = append(out, parsed)
	}
	return out, nil
}

func (f *optionFlags) register(cmd *cobra.Command) {
	flags := cmd.Flags()
	flags.StringVar(&f.language, "language", "", "Source language (TypeScript, JavaScript)")
	flags.StringSliceVar(&f.environments, "environment", nil, "Target environments (Node, Browser)")
	flags.StringSliceVar(&f.frameworks, "framework", nil, "Frameworks (Next.js, React)")
	flags.StringSliceVar(&f.plugins, "plugin", nil, "Plugins, e.g. jest,storybook")
	flags.BoolVar(&f.openSource, "open-source", false, "Treat the project as open source")
	flags.BoolVar(&f.private, "private", false, "Treat the project as closed source")
}
