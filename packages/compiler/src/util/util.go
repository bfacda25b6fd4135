package util

import (
	"bytes"
	"encoding/json"
	"regexp"
	"strings"
)

var (
	dashCaseRegexp     = regexp.MustCompile(`-+([a-z0-9])`)
	fnExpressionRe     = regexp.MustCompile(`^\s*(async\s*)?(\([^)]*?\)|[\w$_]+)\s*(:[^=]+)?=>|^\s*(async\s+)?function(?:\s+[\w$]+)?\s*\(`)
	memberExpressionRe = regexp.MustCompile(`^[A-Za-z_$][\w$]*(?:\s*\.\s*[A-Za-z_$][\w$]*|\[[^\]]+\])*$`)
)

// DashCaseToCamelCase converts a dash-case string to camelCase
func DashCaseToCamelCase(input string) string {
	return dashCaseRegexp.ReplaceAllStringFunc(input, func(match string) string {
		parts := dashCaseRegexp.FindStringSubmatch(match)
		if len(parts) > 1 {
			return strings.ToUpper(parts[1])
		}
		return match
	})
}

// IsMemberExpression reports whether s is a (possibly dotted or indexed)
// member access such as `foo`, `foo.bar` or `foo[bar].baz`.
func IsMemberExpression(s string) bool {
	return memberExpressionRe.MatchString(strings.TrimSpace(s))
}

// IsFunctionExpression reports whether s is an arrow or function expression.
func IsFunctionExpression(s string) bool {
	return fnExpressionRe.MatchString(s)
}

// JSONStringify quotes s the way JSON.stringify does. Unlike
// json.Marshal it leaves <, > and & alone since templates are full of them.
func JSONStringify(s string) string {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(s); err != nil {
		// Encoding a string cannot fail.
		panic(err)
	}
	return strings.TrimSuffix(buf.String(), "\n")
}
