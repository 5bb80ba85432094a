package audit

import (
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/Masterminds/semver/v3"
)

var (
	// tarballVersion captures the version in ".../name-1.2.3.tgz" and
	// ".../name-1.2.3-beta.1.tgz".
	tarballVersion = regexp.MustCompile(`(\d+\.\d+\.\d+(?:-[0-9A-Za-z.-]+)?)\.tgz$`)

	// operatorSpace joins an operator with the version that follows it.
	operatorSpace = regexp.MustCompile(`(~>|<=|>=|[<>=^~])\s+`)

	errNoTarballVersion = errors.New("no version found in tarball URL")
)

// NormalizeInstalled turns an installed version spec into a semver range.
// Tarball URLs are reduced to the version embedded in their file name, and
// an empty spec means any version, as it does for npm.
func NormalizeInstalled(spec string) (string, error) {
	spec = strings.TrimSpace(spec)
	if spec == "" {
		return "*", nil
	}
	if !strings.HasSuffix(spec, ".tgz") {
		return spec, nil
	}
	match := tarballVersion.FindStringSubmatch(spec)
	if match == nil {
		return "", fmt.Errorf("%w: %s", errNoTarballVersion, spec)
	}
	return match[1], nil
}

// Intersects reports whether some version satisfies both ranges, using npm
// range syntax (||, hyphen ranges, ^, ~, x-ranges and comparators).
func Intersects(a, b string) (bool, error) {
	if _, err := semver.NewConstraint(a); err != nil {
		return false, fmt.Errorf("parsing range %q: %w", a, err)
	}
	cb, err := semver.NewConstraint(b)
	if err != nil {
		return false, fmt.Errorf("parsing range %q: %w", b, err)
	}

	// A pinned version needs no interval arithmetic.
	if v, err := semver.StrictNewVersion(strings.TrimPrefix(strings.TrimSpace(a), "=")); err == nil {
		return cb.Check(v), nil
	}

	setsA, err := parseRange(a)
	if err != nil {
		return false, err
	}
	setsB, err := parseRange(b)
	if err != nil {
		return false, err
	}

	for _, x := range setsA {
		for _, y := range setsB {
			if !x.intersect(y).empty() {
				return true, nil
			}
		}
	}
	return false, nil
}

// bound is one end of an interval. A nil version means unbounded.
type bound struct {
	version   *semver.Version
	inclusive bool
}

// interval is the set of versions matched by one comparator set.
type interval struct {
	lower bound
	upper bound
}

func anyVersion() interval { return interval{} }

func (iv interval) intersect(other interval) interval {
	return interval{
		lower: maxLower(iv.lower, other.lower),
		upper: minUpper(iv.upper, other.upper),
	}
}

func (iv interval) empty() bool {
	if iv.lower.version == nil || iv.upper.version == nil {
		return false
	}
	switch iv.lower.version.Compare(iv.upper.version) {
	case 1:
		return true
	case 0:
		return !iv.lower.inclusive || !iv.upper.inclusive
	default:
		return false
	}
}

func maxLower(a, b bound) bound {
	if a.version == nil {
		return b
	}
	if b.version == nil {
		return a
	}
	switch a.version.Compare(b.version) {
	case 1:
		return a
	case -1:
		return b
	default:
		return bound{version: a.version, inclusive: a.inclusive && b.inclusive}
	}
}

func minUpper(a, b bound) bound {
	if a.version == nil {
		return b
	}
	if b.version == nil {
		return a
	}
	switch a.version.Compare(b.version) {
	case -1:
		return a
	case 1:
		return b
	default:
		return bound{version: a.version, inclusive: a.inclusive && b.inclusive}
	}
}

// parseRange splits a range on "||" and converts each comparator set.
func parseRange(r string) ([]interval, error) {
	var sets []interval
	for _, part := range strings.Split(r, "||") {
		iv, err := parseComparatorSet(strings.TrimSpace(part))
		if err != nil {
			return nil, fmt.Errorf("parsing range %q: %w", r, err)
		}
		sets = append(sets, iv)
	}
	return sets, nil
}

func parseComparatorSet(set string) (interval, error) {
	if set == "" {
		return anyVersion(), nil
	}

	if from, to, ok := strings.Cut(set, " - "); ok {
		lo, err := parsePartial(strings.TrimSpace(from))
		if err != nil {
			return interval{}, err
		}
		hi, err := parsePartial(strings.TrimSpace(to))
		if err != nil {
			return interval{}, err
		}
		return interval{lower: lo.floor(), upper: hi.ceilingInclusive()}, nil
	}

	set = operatorSpace.ReplaceAllString(set, "$1")
	set = strings.ReplaceAll(set, ",", " ")

	result := anyVersion()
	for _, token := range strings.Fields(set) {
		iv, err := parseComparator(token)
		if err != nil {
			return interval{}, err
		}
		result = result.intersect(iv)
	}
	return result, nil
}

func parseComparator(token string) (interval, error) {
	op := ""
	for _, candidate := range []string{"~>", ">=", "<=", ">", "<", "=", "^", "~"} {
		if strings.HasPrefix(token, candidate) {
			op = candidate
			break
		}
	}
	p, err := parsePartial(strings.TrimPrefix(token, op))
	if err != nil {
		return interval{}, err
	}

	if p.wildcard() {
		if op == "<" || op == ">" {
			// "<*" and ">*" match nothing.
			v := semver.New(0, 0, 0, "", "")
			return interval{lower: bound{version: v}, upper: bound{version: v}}, nil
		}
		return anyVersion(), nil
	}

	switch op {
	case "", "=":
		return interval{lower: p.floor(), upper: p.ceilingInclusive()}, nil
	case ">=":
		return interval{lower: p.floor()}, nil
	case ">":
		if p.complete() {
			return interval{lower: bound{version: p.version()}}, nil
		}
		return interval{lower: p.ceilingInclusive().asLower()}, nil
	case "<":
		return interval{upper: bound{version: p.floor().version}}, nil
	case "<=":
		return interval{upper: p.ceilingInclusive()}, nil
	case "~", "~>":
		return p.tilde(), nil
	case "^":
		return p.caret(), nil
	}
	return interval{}, fmt.Errorf("unsupported operator %q", op)
}

// partial is a version with possibly missing minor and patch parts.
type partial struct {
	major, minor, patch uint64
	parts               int // number of numeric parts given: 0..3
	pre                 string
}

func parsePartial(s string) (partial, error) {
	s = strings.TrimPrefix(strings.TrimSpace(s), "v")
	if s == "" {
		return partial{}, nil
	}

	core, pre, _ := strings.Cut(s, "-")
	core, _, _ = strings.Cut(core, "+")
	pre, _, _ = strings.Cut(pre, "+")

	var p partial
	fields := strings.Split(core, ".")
	if len(fields) > 3 {
		return partial{}, fmt.Errorf("invalid version %q", s)
	}
	for i, f := range fields {
		if f == "x" || f == "X" || f == "*" {
			break
		}
		n, err := strconv.ParseUint(f, 10, 64)
		if err != nil {
			return partial{}, fmt.Errorf("invalid version %q: %w", s, err)
		}
		switch i {
		case 0:
			p.major = n
		case 1:
			p.minor = n
		case 2:
			p.patch = n
		}
		p.parts = i + 1
	}
	if p.parts == 3 {
		p.pre = pre
	}
	return p, nil
}

func (p partial) wildcard() bool { return p.parts == 0 }
func (p partial) complete() bool { return p.parts == 3 }

func (p partial) version() *semver.Version {
	return semver.New(p.major, p.minor, p.patch, p.pre, "")
}

// floor is the smallest version the partial matches.
func (p partial) floor() bound {
	if p.wildcard() {
		return bound{}
	}
	return bound{version: p.version(), inclusive: true}
}

// ceilingInclusive is the upper bound of the versions the partial matches:
// "1.2.3" → <=1.2.3, "1.2" → <1.3.0, "1" → <2.0.0.
func (p partial) ceilingInclusive() bound {
	switch p.parts {
	case 0:
		return bound{}
	case 1:
		return bound{version: semver.New(p.major+1, 0, 0, "", "")}
	case 2:
		return bound{version: semver.New(p.major, p.minor+1, 0, "", "")}
	default:
		return bound{version: p.version(), inclusive: true}
	}
}

// asLower flips an upper bound into the lower bound of its complement.
func (b bound) asLower() bound {
	return bound{version: b.version, inclusive: !b.inclusive}
}

func (p partial) tilde() interval {
	lower := p.floor()
	if p.parts == 1 {
		return interval{lower: lower, upper: bound{version: semver.New(p.major+1, 0, 0, "", "")}}
	}
	return interval{lower: lower, upper: bound{version: semver.New(p.major, p.minor+1, 0, "", "")}}
}

func (p partial) caret() interval {
	lower := p.floor()
	var upper *semver.Version
	switch {
	case p.major > 0 || p.parts == 1:
		upper = semver.New(p.major+1, 0, 0, "", "")
	case p.minor > 0 || p.parts == 2:
		upper = semver.New(0, p.minor+1, 0, "", "")
	default:
		upper = semver.New(0, 0, p.patch+1, "", "")
	}
	return interval{lower: lower, upper: bound{version: upper}}
}
