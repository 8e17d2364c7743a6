package mcptools

import (
	"math"

	"gong-mcp/internal/validate"
)

// binder extracts typed values from the raw MCP argument bag, collecting a
// field error for every type mismatch instead of failing on the first.
// Missing keys yield zero values or the supplied default; the request layer
// decides whether absence is acceptable.
type binder struct {
	args map[string]any
	c    validate.Collector
}

func newBinder(args map[string]any) *binder {
	return &binder{args: args}
}

func (b *binder) str(key string) string {
	v, ok := b.args[key]
	if !ok || v == nil {
		return ""
	}
	s, ok := v.(string)
	if !ok {
		b.c.Add(key, "must be a string")
		return ""
	}
	return s
}

func (b *binder) strSlice(key string) []string {
	v, ok := b.args[key]
	if !ok || v == nil {
		return nil
	}
	items, ok := v.([]any)
	if !ok {
		b.c.Add(key, "must be an array of strings")
		return nil
	}
	out := make([]string, 0, len(items))
	for _, item := range items {
		s, ok := item.(string)
		if !ok {
			b.c.Add(key, "must be an array of strings")
			return nil
		}
		out = append(out, s)
	}
	return out
}

// intOr returns def when the key was omitted. JSON numbers arrive as
// float64; non-integral values are rejected rather than rounded.
func (b *binder) intOr(key string, def int) int {
	v, ok := b.args[key]
	if !ok || v == nil {
		return def
	}
	f, ok := v.(float64)
	if !ok || f != math.Trunc(f) {
		b.c.Add(key, "must be an integer")
		return def
	}
	return int(f)
}

func (b *binder) boolPtr(key string) *bool {
	v, ok := b.args[key]
	if !ok || v == nil {
		return nil
	}
	val, ok := v.(bool)
	if !ok {
		b.c.Add(key, "must be a boolean")
		return nil
	}
	return &val
}

// err reports the accumulated binding violations as a validation error.
func (b *binder) err() error {
	return b.c.Err()
}
