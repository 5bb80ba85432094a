package audit

import (
	"fmt"
	"log/slog"

	"github.com/foundry-tools/foundry/internal/branding"
	"github.com/foundry-tools/foundry/internal/manifest"
	"github.com/foundry-tools/foundry/internal/plugins"
)

// Kind classifies a Finding.
type Kind string

const (
	// KindUnsupported marks a plugin installed outside its supported range.
	KindUnsupported Kind = "unsupported"
	// KindUnverified marks a plugin whose version could not be checked.
	KindUnverified Kind = "unverified"
	// KindMissing marks a framework installed without its companion plugin.
	KindMissing Kind = "missing"
)

// Finding is one warning produced by the auditor.
type Finding struct {
	Kind      Kind
	Plugin    plugins.Name
	Package   string // companion plugin package
	Installed string // installed version spec, as written in package.json
	Supported string // supported range from the registry
	Framework string // installed framework package (KindMissing only)
	Err       error  // verification error (KindUnverified only)
}

// Message renders the finding as a user-facing sentence.
func (f Finding) Message() string {
	switch f.Kind {
	case KindUnsupported:
		return fmt.Sprintf("%s@%s is not supported. %s supports %s. Pull requests welcome!",
			f.Package, f.Installed, branding.DisplayName(), f.Supported)
	case KindUnverified:
		return fmt.Sprintf("Failed to verify the installed version of %s (%s): %v",
			f.Package, f.Installed, f.Err)
	case KindMissing:
		return fmt.Sprintf("Found %s but not %s. Install %s to enable its lint rules.",
			f.Framework, f.Package, f.Package)
	default:
		return string(f.Kind)
	}
}

// Auditor checks manifests against a plugin registry and writes a warning
// to Logger for every finding.
type Auditor struct {
	Registry *plugins.Registry
	Logger   *slog.Logger
}

// New returns an Auditor. A nil logger falls back to slog.Default().
func New(registry *plugins.Registry, logger *slog.Logger) *Auditor {
	if logger == nil {
		logger = slog.Default()
	}
	return &Auditor{Registry: registry, Logger: logger}
}

// Run performs both checks and returns all findings.
func (a *Auditor) Run(m *manifest.PackageJSON) []Finding {
	findings := a.WarnAboutUnsupportedPlugins(m)
	return append(findings, a.WarnAboutMissingPlugins(m)...)
}

// WarnAboutUnsupportedPlugins warns about every installed companion plugin
// whose version range does not intersect the supported range. Versions that
// cannot be parsed produce a "failed to verify" warning instead.
func (a *Auditor) WarnAboutUnsupportedPlugins(m *manifest.PackageJSON) []Finding {
	var findings []Finding
	for _, d := range a.Registry.All() {
		for _, c := range d.Companions() {
			installed, ok := manifest.DependencyVersion(m, c.Package)
			if !ok {
				continue
			}
			if f, ok := a.checkVersion(d.Name, c, installed); ok {
				findings = append(findings, f)
				a.log(f)
			}
		}
	}
	return findings
}

// checkVersion compares one installed plugin against its supported range.
// A panic while checking is turned into a KindUnverified finding so the
// remaining packages are still audited.
func (a *Auditor) checkVersion(name plugins.Name, c plugins.Companion, installed string) (f Finding, report bool) {
	f = Finding{
		Plugin:    name,
		Package:   c.Package,
		Installed: installed,
		Supported: c.Supported,
	}

	defer func() {
		if r := recover(); r != nil {
			f.Kind = KindUnverified
			f.Err = fmt.Errorf("%v", r)
			report = true
		}
	}()

	normalized, err := NormalizeInstalled(installed)
	if err != nil {
		f.Kind, f.Err = KindUnverified, err
		return f, true
	}

	ok, err := Intersects(normalized, c.Supported)
	if err != nil {
		f.Kind, f.Err = KindUnverified, err
		return f, true
	}
	if !ok {
		f.Kind = KindUnsupported
		return f, true
	}
	return f, false
}

// WarnAboutMissingPlugins warns when a framework package of a registry entry
// is installed but none of its companion plugins are. One warning is
// produced per missing companion plugin.
func (a *Auditor) WarnAboutMissingPlugins(m *manifest.PackageJSON) []Finding {
	var findings []Finding
	for _, d := range a.Registry.All() {
		framework, ok := firstInstalled(m, d.FrameworkPackages)
		if !ok {
			continue
		}

		companions := d.Companions()
		anyInstalled := false
		for _, c := range companions {
			if manifest.HasDependency(m, c.Package) {
				anyInstalled = true
				break
			}
		}
		if anyInstalled {
			continue
		}

		for _, c := range companions {
			f := Finding{
				Kind:      KindMissing,
				Plugin:    d.Name,
				Package:   c.Package,
				Supported: c.Supported,
				Framework: framework,
			}
			findings = append(findings, f)
			a.log(f)
		}
	}
	return findings
}

func firstInstalled(m *manifest.PackageJSON, names []string) (string, bool) {
	for _, name := range names {
		if manifest.HasDependency(m, name) {
			return name, true
		}
	}
	return "", false
}

func (a *Auditor) log(f Finding) {
	logger := a.Logger
	if logger == nil {
		logger = slog.Default()
	}
	attrs := []any{"kind", string(f.Kind), "package", f.Package}
	if f.Err != nil {
		attrs = append(attrs, "error", f.Err)
	}
	logger.Warn(f.Message(), attrs...)
}
