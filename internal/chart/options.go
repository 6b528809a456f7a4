package chart

import (
	"fmt"

	"github.com/goccy/go-json"
)

// Options is the nested configuration passed to the charting library when
// the chart is drawn. Keys are encoded in sorted order so the output is
// stable between runs.
type Options map[string]any

// Set stores value at the nested path, creating or replacing intermediate
// maps as needed.
func (o Options) Set(value any, path ...string) {
	if len(path) == 0 {
		return
	}
	m := map[string]any(o)
	for _, key := range path[:len(path)-1] {
		next, ok := m[key].(map[string]any)
		if !ok {
			if opts, isOpts := m[key].(Options); isOpts {
				next = opts
			} else {
				next = make(map[string]any)
				m[key] = next
			}
		}
		m = next
	}
	m[path[len(path)-1]] = value
}

// Get returns the value at the nested path.
func (o Options) Get(path ...string) (any, bool) {
	if len(path) == 0 {
		return nil, false
	}
	var cur any = map[string]any(o)
	for _, key := range path {
		m, ok := asMap(cur)
		if !ok {
			return nil, false
		}
		if cur, ok = m[key]; !ok {
			return nil, false
		}
	}
	return cur, true
}

// Bool returns the value at path when it is a bool.
func (o Options) Bool(path ...string) bool {
	v, _ := o.Get(path...)
	b, _ := v.(bool)
	return b
}

// Clone returns a deep copy of the nested maps. Leaf values are shared.
func (o Options) Clone() Options {
	return Options(cloneMap(o))
}

// JSON encodes the options in the shape the charting library expects.
func (o Options) JSON() (string, error) {
	b, err := json.Marshal(map[string]any(o))
	if err != nil {
		return "", fmt.Errorf("failed to encode chart options: %w", err)
	}
	return string(b), nil
}

func asMap(v any) (map[string]any, bool) {
	switch m := v.(type) {
	case map[string]any:
		return m, true
	case Options:
		return m, true
	}
	return nil, false
}

func cloneMap(src map[string]any) map[string]any {
	dst := make(map[string]any, len(src))
	for k, v := range src {
		if m, ok := asMap(v); ok {
			dst[k] = cloneMap(m)
			continue
		}
		dst[k] = v
	}
	return dst
}
