package layout

import (
	"fmt"
	"strings"
)

// Key names a placeholder. Its text is what the format documentation shows
// between braces.
type Key string

// Binding supplies the value for one key.
type Binding struct {
	Key   Key
	Value string
}

// Layout is a fixed sequence of lines; each line lists its keys separated by
// single spaces. A nil line is a blank separator.
type Layout [][]Key

// Format renders the layout with "{key}" placeholders instead of values.
func (l Layout) Format() string {
	var sb strings.Builder
	for _, keys := range l {
		for i, k := range keys {
			if i > 0 {
				sb.WriteByte(' ')
			}
			sb.WriteString("{" + string(k) + "}")
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}

// Keys lists every key in layout order.
func (l Layout) Keys() []Key {
	var out []Key
	for _, keys := range l {
		out = append(out, keys...)
	}
	return out
}

// Render substitutes bindings into the layout. Every key must be bound
// exactly once; unused bindings are rejected too, so a layout and its
// binding list cannot drift apart unnoticed.
func (l Layout) Render(bindings []Binding) (string, error) {
	values := make(map[Key]string, len(bindings))
	for _, b := range bindings {
		if _, dup := values[b.Key]; dup {
			return "", fmt.Errorf("key %q bound twice", b.Key)
		}
		values[b.Key] = b.Value
	}

	used := make(map[Key]bool, len(values))
	var sb strings.Builder
	for _, keys := range l {
		for i, k := range keys {
			v, ok := values[k]
			if !ok {
				return "", fmt.Errorf("key %q is not bound", k)
			}
			used[k] = true
			if i > 0 {
				sb.WriteByte(' ')
			}
			sb.WriteString(v)
		}
		sb.WriteByte('\n')
	}

	for _, b := range bindings {
		if !used[b.Key] {
			return "", fmt.Errorf("key %q is not part of the layout", b.Key)
		}
	}
	return sb.String(), nil
}
