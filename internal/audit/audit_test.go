package audit

import (
	"bytes"
	"log/slog"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/foundry-tools/foundry/internal/manifest"
	"github.com/foundry-tools/foundry/internal/plugins"
)

func newTestAuditor(registry *plugins.Registry) (*Auditor, *bytes.Buffer) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
	return New(registry, logger), &buf
}

func TestWarnAboutUnsupportedPlugins_BelowSupportedRange(t *testing.T) {
	a, logs := newTestAuditor(plugins.Default())
	m := &manifest.PackageJSON{Dependencies: map[string]string{"@next/eslint-plugin-next": "^14.0.0"}}

	findings := a.WarnAboutUnsupportedPlugins(m)

	require.Len(t, findings, 1)
	f := findings[0]
	assert.Equal(t, KindUnsupported, f.Kind)
	assert.Equal(t, "@next/eslint-plugin-next", f.Package)
	assert.Equal(t, "^14.0.0", f.Installed)
	assert.Equal(t, ">=15.0.0", f.Supported)

	msg := f.Message()
	assert.Contains(t, msg, "@next/eslint-plugin-next")
	assert.Contains(t, msg, "^14.0.0")
	assert.Contains(t, msg, ">=15.0.0")
	assert.Contains(t, msg, "Pull requests welcome")

	assert.Equal(t, 1, strings.Count(logs.String(), "level=WARN"))
}

func TestWarnAboutUnsupportedPlugins_SupportedVersions(t *testing.T) {
	a, logs := newTestAuditor(plugins.Default())
	m := &manifest.PackageJSON{
		Dependencies: map[string]string{"@next/eslint-plugin-next": "^15.2.0"},
		DevDependencies: map[string]string{
			"eslint-plugin-jest": "https://registry.example.com/eslint-plugin-jest-28.2.0.tgz",
		},
	}

	assert.Empty(t, a.WarnAboutUnsupportedPlugins(m))
	assert.Empty(t, logs.String())
}

func TestWarnAboutUnsupportedPlugins_NeverFails(t *testing.T) {
	garbage := []string{
		"latest",
		"",
		"💥",
		"^^^1",
		">=",
		"1.2.3.4.5",
		"https://example.com/plugin.tgz",
		"https://example.com/plugin-27.0.0.tgz",
		"git+ssh://git@github.com:org/repo.git#v1.0.0",
		"npm:other-package@^1.0.0",
		"|| ||",
	}

	for _, spec := range garbage {
		t.Run(spec, func(t *testing.T) {
			a, _ := newTestAuditor(plugins.Default())
			m := &manifest.PackageJSON{Dependencies: map[string]string{
				"eslint-plugin-jest":     spec,
				"eslint-plugin-cypress":  "^3.1.0",
				"@emotion/eslint-plugin": "^10.0.0",
			}}

			var findings []Finding
			assert.NotPanics(t, func() { findings = a.WarnAboutUnsupportedPlugins(m) })

			// The emotion plugin is still audited after a bad jest entry.
			var sawEmotion bool
			for _, f := range findings {
				if f.Package == "@emotion/eslint-plugin" {
					sawEmotion = true
					assert.Equal(t, KindUnsupported, f.Kind)
				}
				if f.Package == "eslint-plugin-cypress" {
					t.Errorf("supported cypress plugin reported: %s", f.Message())
				}
			}
			assert.True(t, sawEmotion, "later entries must still be audited")
		})
	}
}

func TestWarnAboutUnsupportedPlugins_UnverifiedMessage(t *testing.T) {
	a, logs := newTestAuditor(plugins.Default())
	m := &manifest.PackageJSON{Dependencies: map[string]string{"eslint-plugin-jest": "latest"}}

	findings := a.WarnAboutUnsupportedPlugins(m)

	require.Len(t, findings, 1)
	assert.Equal(t, KindUnverified, findings[0].Kind)
	assert.Error(t, findings[0].Err)
	assert.Contains(t, findings[0].Message(), "Failed to verify")
	assert.Contains(t, logs.String(), "Failed to verify")
}

func TestWarnAboutMissingPlugins_FrameworkWithoutPlugin(t *testing.T) {
	a, _ := newTestAuditor(plugins.Default())
	m := &manifest.PackageJSON{Dependencies: map[string]string{"next": "^1.0.0"}}

	findings := a.WarnAboutMissingPlugins(m)

	require.Len(t, findings, 1)
	assert.Equal(t, KindMissing, findings[0].Kind)
	assert.Equal(t, "next", findings[0].Framework)
	assert.Equal(t, "@next/eslint-plugin-next", findings[0].Package)
	assert.Contains(t, findings[0].Message(), "next")
	assert.Contains(t, findings[0].Message(), "@next/eslint-plugin-next")
}

func TestWarnAboutMissingPlugins_OneWarningPerCompanion(t *testing.T) {
	a, _ := newTestAuditor(plugins.Default())
	m := &manifest.PackageJSON{Dependencies: map[string]string{"@sumup/circuit-ui": "^8.0.0"}}

	findings := a.WarnAboutMissingPlugins(m)

	require.Len(t, findings, 2)
	assert.Equal(t, "@sumup/eslint-plugin-circuit-ui", findings[0].Package)
	assert.Equal(t, "@sumup/stylelint-plugin-circuit-ui", findings[1].Package)
}

func TestWarnAboutMissingPlugins_AnyCompanionSuffices(t *testing.T) {
	a, _ := newTestAuditor(plugins.Default())
	m := &manifest.PackageJSON{
		Dependencies:    map[string]string{"@sumup/circuit-ui": "^8.0.0", "@emotion/styled": "^11.0.0"},
		DevDependencies: map[string]string{"@sumup/stylelint-plugin-circuit-ui": "^2.0.0", "@emotion/eslint-plugin": "^11.0.0"},
	}

	assert.Empty(t, a.WarnAboutMissingPlugins(m))
}

func TestRun_FixtureRegistry(t *testing.T) {
	registry := plugins.NewRegistry(plugins.Descriptor{
		Name:              "custom",
		FrameworkPackages: []string{"custom-framework"},
		ESLintPlugins:     map[string]string{"eslint-plugin-custom": "^2.0.0"},
	})
	a, _ := newTestAuditor(registry)

	m := &manifest.PackageJSON{Dependencies: map[string]string{"custom-framework": "1.0.0"}}
	findings := a.Run(m)
	require.Len(t, findings, 1)
	assert.Equal(t, KindMissing, findings[0].Kind)

	m = &manifest.PackageJSON{Dependencies: map[string]string{
		"custom-framework":     "1.0.0",
		"eslint-plugin-custom": "^1.0.0",
	}}
	findings = a.Run(m)
	require.Len(t, findings, 1)
	assert.Equal(t, KindUnsupported, findings[0].Kind)
}

func TestAuditDoesNotMutateManifest(t *testing.T) {
	a, _ := newTestAuditor(plugins.Default())
	deps := map[string]string{"next": "^14.0.0", "@next/eslint-plugin-next": "^14.0.0"}
	m := &manifest.PackageJSON{Dependencies: deps}

	a.Run(m)

	assert.Equal(t, map[string]string{"next": "^14.0.0", "@next/eslint-plugin-next": "^14.0.0"}, m.Dependencies)
}
