package schema

import (
	"regexp"
	"strings"
)

var placeholderRe = regexp.MustCompile(`\{\{([a-zA-Z0-9_]+)\}\}`)

// Fill instantiates a template with extracted field values, then prunes
// every branch that stayed empty or still carries an unresolved
// placeholder. The input template is not modified; the result contains no
// {{...}} tokens.
func Fill(tpl Template, values map[string]string) map[string]interface{} {
	if tpl == nil {
		return map[string]interface{}{}
	}
	filled := fillValue(map[string]interface{}(tpl), values)
	pruned, ok := pruneValue(filled)
	if !ok {
		return map[string]interface{}{}
	}
	out, ok := pruned.(map[string]interface{})
	if !ok {
		return map[string]interface{}{}
	}
	return out
}

// Placeholders returns the distinct placeholder names appearing anywhere in
// a template, used to verify templates against extractor coverage.
func Placeholders(tpl Template) []string {
	seen := map[string]bool{}
	var names []string
	collectPlaceholders(map[string]interface{}(tpl), seen, &names)
	return names
}

func collectPlaceholders(v interface{}, seen map[string]bool, names *[]string) {
	switch val := v.(type) {
	case string:
		for _, m := range placeholderRe.FindAllStringSubmatch(val, -1) {
			if !seen[m[1]] {
				seen[m[1]] = true
				*names = append(*names, m[1])
			}
		}
	case map[string]interface{}:
		for _, child := range val {
			collectPlaceholders(child, seen, names)
		}
	case []interface{}:
		for _, child := range val {
			collectPlaceholders(child, seen, names)
		}
	}
}

// fillValue deep-copies the tree, substituting placeholders in string
// leaves. A placeholder whose value is missing or empty is left in place so
// the prune pass drops the surrounding field.
func fillValue(v interface{}, values map[string]string) interface{} {
	switch val := v.(type) {
	case string:
		return placeholderRe.ReplaceAllStringFunc(val, func(token string) string {
			name := placeholderRe.FindStringSubmatch(token)[1]
			if replacement, ok := values[name]; ok && replacement != "" {
				return replacement
			}
			return token
		})
	case map[string]interface{}:
		out := make(map[string]interface{}, len(val))
		for k, child := range val {
			out[k] = fillValue(child, values)
		}
		return out
	case []interface{}:
		out := make([]interface{}, 0, len(val))
		for _, child := range val {
			out = append(out, fillValue(child, values))
		}
		return out
	default:
		return val
	}
}

// pruneValue walks the filled tree and reports whether the value should be
// kept. Strings are dropped when empty or still containing a placeholder;
// objects and arrays are dropped when nothing inside them survives.
func pruneValue(v interface{}) (interface{}, bool) {
	switch val := v.(type) {
	case nil:
		return nil, false
	case string:
		if strings.TrimSpace(val) == "" || placeholderRe.MatchString(val) {
			return nil, false
		}
		return val, true
	case map[string]interface{}:
		out := make(map[string]interface{}, len(val))
		for k, child := range val {
			if kept, ok := pruneValue(child); ok {
				out[k] = kept
			}
		}
		// An object reduced to only its @type marker carries no data.
		if len(out) == 0 {
			return nil, false
		}
		if len(out) == 1 {
			if _, only := out["@type"]; only {
				return nil, false
			}
		}
		return out, true
	case []interface{}:
		out := make([]interface{}, 0, len(val))
		for _, child := range val {
			if kept, ok := pruneValue(child); ok {
				out = append(out, kept)
			}
		}
		if len(out) == 0 {
			return nil, false
		}
		return out, true
	default:
		return val, true
	}
}
