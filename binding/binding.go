package binding

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

var placeholder = regexp.MustCompile(`\$\{([^}]+)\}`)

// Interpolate replaces every ${path.to.value} placeholder in text with
// the corresponding value from data, a decoded JSON document. When
// data is nil or a path does not resolve, the placeholder is left
// as-is.
func Interpolate(text string, data any) string {
	if data == nil {
		return text
	}
	return placeholder.ReplaceAllStringFunc(text, func(match string) string {
		path := strings.TrimSpace(placeholder.FindStringSubmatch(match)[1])
		if path == "" {
			return match
		}
		if val, ok := lookup(data, path); ok {
			return fmt.Sprint(val)
		}
		return match
	})
}

// lookup walks data along a dotted path with optional [i] indexes,
// e.g. "speakers[0].name". Only the map and slice shapes produced by
// encoding/json can be descended into; anything else ends the walk.
func lookup(data any, path string) (any, bool) {
	current := data
	for _, segment := range strings.Split(path, ".") {
		name := segment
		var indexes []string
		if i := strings.IndexByte(segment, '['); i != -1 {
			name = segment[:i]
			rest := segment[i:]
			for strings.HasPrefix(rest, "[") {
				end := strings.IndexByte(rest, ']')
				if end == -1 {
					break
				}
				indexes = append(indexes, rest[1:end])
				rest = rest[end+1:]
			}
		}
		if name != "" {
			m, ok := current.(map[string]interface{})
			if !ok {
				return nil, false
			}
			child, ok := m[name]
			if !ok {
				return nil, false
			}
			current = child
		}
		for _, index := range indexes {
			n, err := strconv.Atoi(index)
			if err != nil {
				return nil, false
			}
			arr, ok := current.([]interface{})
			if !ok || n < 0 || n >= len(arr) {
				return nil, false
			}
			current = arr[n]
		}
	}
	return current, true
}
