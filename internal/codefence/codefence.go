// Package codefence removes the markdown code fence models like to wrap
// generated code in.
package codefence

import "strings"

const fence = "```"

// Strip removes a single fenced block wrapper from s. The opening fence may
// carry a language tag ("```javascript", "```js") on the same line. Text that
// is not wrapped in a fence on both ends is returned unmodified.
func Strip(s string) string {
	trimmed := strings.TrimSpace(s)
	if len(trimmed) < 2*len(fence) || !strings.HasPrefix(trimmed, fence) || !strings.HasSuffix(trimmed, fence) {
		return s
	}

	inner := trimmed[len(fence) : len(trimmed)-len(fence)]
	if tag, rest, ok := strings.Cut(inner, "\n"); ok && isLanguageTag(tag) {
		inner = rest
	}
	return strings.TrimSpace(inner)
}

// isLanguageTag reports whether the text after an opening fence is an info
// string such as "javascript", "js" or "c++" rather than code.
func isLanguageTag(s string) bool {
	s = strings.TrimSpace(s)
	if s == "" {
		return true
	}
	for _, r := range s {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9':
		case r == '-', r == '_', r == '+', r == '#', r == '.':
		default:
			return false
		}
	}
	return true
}
