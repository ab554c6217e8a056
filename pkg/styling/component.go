// Package styling scopes component CSS. Every class selector in a
// stylesheet is rewritten to a name prefixed with a hash of the sheet, so
// two components may both define .title without colliding.
package styling

import (
	"crypto/sha256"
	"encoding/hex"
	"regexp"
	"strings"
)

// ComponentStyle represents a component's scoped styles
type ComponentStyle struct {
	// Hash is derived from the source CSS, e.g. "_1a2b3c"
	Hash string

	// names maps original class names to hashed class names
	// e.g., "card" -> "_1a2b3c_card"
	names map[string]string

	// CSS is the rewritten stylesheet
	CSS string

	// Source is the stylesheet as written
	Source string
}

var classSelector = regexp.MustCompile(`\.(-?[_a-zA-Z][_a-zA-Z0-9-]*)`)

// Style scopes css and returns the hashed class names
func Style(css string) *ComponentStyle {
	sum := sha256.Sum256([]byte(css))
	hash := "_" + hex.EncodeToString(sum[:])[:6]

	s := &ComponentStyle{
		Hash:   hash,
		names:  make(map[string]string),
		Source: css,
	}
	s.CSS = s.rewrite(removeComments(css))
	return s
}

// block kinds while walking the stylesheet
const (
	blockRules     = iota // top level, @media, @supports: contains rules
	blockDecl             // a rule body: declarations only
	blockKeyframes        // @keyframes: percentages and from/to, never classes
)

// rewrite walks the sheet, renaming classes in selector preludes only.
// Declarations (which may contain "0.5s" and the like) are copied as is.
func (c *ComponentStyle) rewrite(css string) string {
	var out strings.Builder
	out.Grow(len(css) + len(css)/4)

	stack := []int{blockRules}
	start := 0
	for i := 0; i < len(css); i++ {
		ch := css[i]
		top := stack[len(stack)-1]
		switch ch {
		case '{':
			prelude := css[start:i]
			trimmed := strings.TrimSpace(prelude)
			switch {
			case top != blockRules:
				out.WriteString(prelude)
				stack = append(stack, blockDecl)
			case strings.HasPrefix(trimmed, "@keyframes"), strings.HasPrefix(trimmed, "@-webkit-keyframes"):
				out.WriteString(prelude)
				stack = append(stack, blockKeyframes)
			case strings.HasPrefix(trimmed, "@"):
				out.WriteString(prelude)
				stack = append(stack, blockRules)
			default:
				out.WriteString(c.scopeSelector(prelude))
				stack = append(stack, blockDecl)
			}
			out.WriteByte(ch)
			start = i + 1
		case '}':
			out.WriteString(css[start : i+1])
			if len(stack) > 1 {
				stack = stack[:len(stack)-1]
			}
			start = i + 1
		case ';':
			// @import and friends at rule level, declarations elsewhere
			out.WriteString(css[start : i+1])
			start = i + 1
		}
	}
	out.WriteString(css[start:])
	return out.String()
}

func (c *ComponentStyle) scopeSelector(sel string) string {
	return classSelector.ReplaceAllStringFunc(sel, func(m string) string {
		name := m[1:]
		hashed, ok := c.names[name]
		if !ok {
			hashed = c.Hash + "_" + name
			c.names[name] = hashed
		}
		return "." + hashed
	})
}

// removeComments removes CSS comments from the string
func removeComments(css string) string {
	result := strings.Builder{}
	i := 0
	for i < len(css) {
		if i < len(css)-1 && css[i] == '/' && css[i+1] == '*' {
			i += 2
			for i < len(css)-1 && !(css[i] == '*' && css[i+1] == '/') {
				i++
			}
			i += 2
		} else {
			result.WriteByte(css[i])
			i++
		}
	}
	return result.String()
}

// Class returns the hashed class name for the given original name.
// Names the sheet never declares are returned unchanged so global
// classes from site.css can be mixed in.
func (c *ComponentStyle) Class(name string) string {
	if c == nil {
		return name
	}
	if v, ok := c.names[name]; ok {
		return v
	}
	return name
}

// Classes returns multiple hashed class names separated by space.
// Empty names are skipped, which pairs with conditional class lists.
func (c *ComponentStyle) Classes(names ...string) string {
	parts := make([]string, 0, len(names))
	for _, name := range names {
		if name == "" {
			continue
		}
		parts = append(parts, c.Class(name))
	}
	return strings.Join(parts, " ")
}

// Has returns whether a class name exists in this component's styles
func (c *ComponentStyle) Has(name string) bool {
	if c == nil || c.names == nil {
		return false
	}
	_, ok := c.names[name]
	return ok
}

// GetHash returns the hash for this component's styles
func (c *ComponentStyle) GetHash() string {
	if c == nil {
		return ""
	}
	return c.Hash
}
