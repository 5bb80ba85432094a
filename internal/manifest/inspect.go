package manifest

// HasDependency reports whether name is listed in dependencies or
// devDependencies, with any version string.
func HasDependency(m *PackageJSON, name string) bool {
	_, ok := DependencyVersion(m, name)
	return ok
}

// HasAnyDependency reports whether at least one of names is installed.
func HasAnyDependency(m *PackageJSON, names ...string) bool {
	for _, name := range names {
		if HasDependency(m, name) {
			return true
		}
	}
	return false
}

// DependencyVersion returns the raw version range of name, looking in
// dependencies before devDependencies.
func DependencyVersion(m *PackageJSON, name string) (string, bool) {
	if m == nil {
		return "", false
	}
	if v, ok := m.Dependencies[name]; ok {
		return v, true
	}
	if v, ok := m.DevDependencies[name]; ok {
		return v, true
	}
	return "", false
}

// IsCLI reports whether the package declares executables.
func IsCLI(m *PackageJSON) bool {
	return m != nil && m.HasBin
}

// IsBrowserBundle reports whether the package declares a browser entry.
func IsBrowserBundle(m *PackageJSON) bool {
	return m != nil && m.HasBrowser
}
