package compose

import (
	"encoding/json"
	"fmt"
	"reflect"
)

// Fragment is a partial, tool-native configuration object.
type Fragment = map[string]any

// Strategy selects how two values under the same key are combined.
type Strategy int

const (
	// Auto unions sequences, merges records recursively and replaces the rest.
	Auto Strategy = iota
	// Union concatenates sequences and drops repeated values.
	Union
	// Shallow merges records one level deep; override keys win.
	Shallow
	// Deep merges records recursively.
	Deep
	// Replace always takes the override value.
	Replace
)

func (s Strategy) String() string {
	switch s {
	case Union:
		return "union"
	case Shallow:
		return "shallow"
	case Deep:
		return "deep"
	case Replace:
		return "replace"
	default:
		return "auto"
	}
}

// DefaultStrategies is the strategy table used by Customize.
var DefaultStrategies = map[string]Strategy{
	"rules": Shallow,
}

// Composer merges fragments according to a per-key strategy table.
// Keys without an entry use Auto.
type Composer struct {
	Strategies map[string]Strategy
}

// New returns a Composer using strategies.
func New(strategies map[string]Strategy) *Composer {
	return &Composer{Strategies: strategies}
}

var defaultComposer = New(DefaultStrategies)

// Customize merges override into base with DefaultStrategies. Neither
// argument is modified; the result shares no containers with them.
func Customize(base, override Fragment) Fragment {
	return defaultComposer.Customize(base, override)
}

// Fold applies Customize from left to right: fragments are merged into base
// in order, so later fragments win conflicts.
func Fold(base Fragment, fragments ...Fragment) Fragment {
	return defaultComposer.Fold(base, fragments...)
}

// Customize merges override into base.
func (c *Composer) Customize(base, override Fragment) Fragment {
	return c.mergeRecords(normalizeRecord(base), normalizeRecord(override))
}

// Fold merges each fragment into base in order.
func (c *Composer) Fold(base Fragment, fragments ...Fragment) Fragment {
	acc := c.Customize(base, nil)
	for _, f := range fragments {
		acc = c.Customize(acc, f)
	}
	return acc
}

func (c *Composer) strategy(key string) Strategy {
	if s, ok := c.Strategies[key]; ok {
		return s
	}
	return Auto
}

func (c *Composer) mergeRecords(base, override map[string]any) map[string]any {
	out := make(map[string]any, len(base)+len(override))
	for k, v := range base {
		out[k] = clone(v)
	}
	for k, v := range override {
		if existing, ok := out[k]; ok {
			out[k] = c.mergeValue(k, existing, v)
			continue
		}
		out[k] = clone(v)
	}
	return out
}

func (c *Composer) mergeValue(key string, base, override any) any {
	strategy := c.strategy(key)
	if strategy == Replace {
		return clone(override)
	}

	baseSeq, baseIsSeq := base.([]any)
	overrideSeq, overrideIsSeq := override.([]any)
	if baseIsSeq && overrideIsSeq {
		return union(baseSeq, overrideSeq)
	}

	baseRec, baseIsRec := base.(map[string]any)
	overrideRec, overrideIsRec := override.(map[string]any)
	if baseIsRec && overrideIsRec {
		if strategy == Shallow {
			return shallowMerge(baseRec, overrideRec)
		}
		return c.mergeRecords(baseRec, overrideRec)
	}

	// Type mismatch or scalar, including nil: the override wins.
	return clone(override)
}

// union concatenates a and b and keeps the first occurrence of each value.
func union(a, b []any) []any {
	out := make([]any, 0, len(a)+len(b))
	seen := make(map[string]bool, len(a)+len(b))
	for _, list := range [][]any{a, b} {
		for _, v := range list {
			key := identity(v)
			if seen[key] {
				continue
			}
			seen[key] = true
			out = append(out, clone(v))
		}
	}
	return out
}

func shallowMerge(base, override map[string]any) map[string]any {
	out := make(map[string]any, len(base)+len(override))
	for k, v := range base {
		out[k] = clone(v)
	}
	for k, v := range override {
		out[k] = clone(v)
	}
	return out
}

// identity returns a key that is equal for structurally equal values.
func identity(v any) string {
	data, err := json.Marshal(v)
	if err != nil {
		return fmt.Sprintf("%T:%#v", v, v)
	}
	return string(data)
}

// clone deep-copies normalized values.
func clone(v any) any {
	switch val := v.(type) {
	case map[string]any:
		out := make(map[string]any, len(val))
		for k, item := range val {
			out[k] = clone(item)
		}
		return out
	case []any:
		out := make([]any, len(val))
		for i, item := range val {
			out[i] = clone(item)
		}
		return out
	default:
		return val
	}
}

func normalizeRecord(f Fragment) map[string]any {
	if f == nil {
		return map[string]any{}
	}
	rec, _ := normalize(f).(map[string]any)
	return rec
}

// normalize converts typed slices and string-keyed maps into []any and
// map[string]any so fragments written as Go literals merge like JSON.
func normalize(v any) any {
	switch val := v.(type) {
	case nil:
		return nil
	case map[string]any:
		out := make(map[string]any, len(val))
		for k, item := range val {
			out[k] = normalize(item)
		}
		return out
	case []any:
		out := make([]any, len(val))
		for i, item := range val {
			out[i] = normalize(item)
		}
		return out
	}

	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Slice, reflect.Array:
		if rv.Kind() == reflect.Slice && rv.IsNil() {
			return nil
		}
		out := make([]any, rv.Len())
		for i := range out {
			out[i] = normalize(rv.Index(i).Interface())
		}
		return out
	case reflect.Map:
		if rv.Type().Key().Kind() != reflect.String {
			return v
		}
		if rv.IsNil() {
			return nil
		}
		out := make(map[string]any, rv.Len())
		iter := rv.MapRange()
		for iter.Next() {
			out[iter.Key().String()] = normalize(iter.Value().Interface())
		}
		return out
	default:
		return v
	}
}
