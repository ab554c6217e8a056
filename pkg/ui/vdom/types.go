package vdom

import "strings"

// VKind represents the type of virtual node
type VKind uint8

const (
	// KindElement represents a DOM element node
	KindElement VKind = iota
	// KindText represents a text node
	KindText
	// KindFragment represents a fragment (multiple children without parent)
	KindFragment
	// KindRaw represents trusted, pre-rendered markup (markdown output, inline SVG)
	KindRaw
)

// VNodeFlags are bitwise flags describing a VNode
type VNodeFlags uint8

const (
	// FlagHasKey indicates this node has a key for list reconciliation
	FlagHasKey VNodeFlags = 1 << iota
	// FlagHasRef indicates this node has a ref callback
	FlagHasRef
	// FlagLive indicates the node is patched by the live protocol and needs a hydration id
	FlagLive
)

// LiveProp marks an element as a live patch target.
// The value is the view name the server uses to address it.
const LiveProp = "data-live"

// Props represents the properties/attributes of a VNode
type Props map[string]any

// VNode represents a virtual DOM node.
// Once created it should be treated as immutable.
type VNode struct {
	// Kind determines the type of this node
	Kind VKind

	// Tag is the element tag name (e.g., "div", "span")
	Tag string

	// Props contains all attributes for this node
	Props Props

	// Kids contains child nodes
	Kids []VNode

	// Key is used for list identity; empty means no key
	Key string

	// Flags contains hints for renderers
	Flags VNodeFlags

	// Text content for KindText, markup for KindRaw
	Text string
}

// NewElement creates a new element VNode
func NewElement(tag string, props Props, children ...*VNode) *VNode {
	flags := VNodeFlags(0)

	if props != nil {
		if _, ok := props["key"]; ok {
			flags |= FlagHasKey
		}
		if _, ok := props["ref"]; ok {
			flags |= FlagHasRef
		}
		if _, ok := props[LiveProp]; ok {
			flags |= FlagLive
		}
	}

	node := &VNode{
		Kind:  KindElement,
		Tag:   strings.ToLower(tag),
		Props: props,
		Kids:  collect(children),
		Flags: flags,
	}
	if key, ok := props["key"].(string); ok {
		node.Key = key
	}
	return node
}

// NewText creates a new text VNode
func NewText(text string) *VNode {
	return &VNode{
		Kind: KindText,
		Text: text,
	}
}

// NewRaw creates a VNode whose markup is written verbatim by renderers.
// Only use it for markup produced by the application itself.
func NewRaw(markup string) *VNode {
	return &VNode{
		Kind: KindRaw,
		Text: markup,
	}
}

// NewFragment creates a new fragment VNode
func NewFragment(children ...*VNode) *VNode {
	return &VNode{
		Kind: KindFragment,
		Kids: collect(children),
	}
}

// collect copies non-nil children into a value slice
func collect(children []*VNode) []VNode {
	kids := make([]VNode, 0, len(children))
	for _, child := range children {
		if child != nil {
			kids = append(kids, *child)
		}
	}
	return kids
}

// IsElement returns true if this is an element node
func (v VNode) IsElement() bool {
	return v.Kind == KindElement
}

// IsText returns true if this is a text node
func (v VNode) IsText() bool {
	return v.Kind == KindText
}

// HasFlag returns true if the specified flag is set
func (v VNode) HasFlag(flag VNodeFlags) bool {
	return v.Flags&flag != 0
}

// Attr returns the string form of an attribute, or "" when absent
func (v VNode) Attr(name string) string {
	if v.Props == nil {
		return ""
	}
	if s, ok := v.Props[name].(string); ok {
		return s
	}
	return ""
}

// Find walks the tree depth-first and returns the first element for which
// match returns true.
func (v *VNode) Find(match func(*VNode) bool) *VNode {
	if v == nil {
		return nil
	}
	if v.Kind == KindElement && match(v) {
		return v
	}
	for i := range v.Kids {
		if found := v.Kids[i].Find(match); found != nil {
			return found
		}
	}
	return nil
}

// FindAll returns every element for which match returns true, in document order.
func (v *VNode) FindAll(match func(*VNode) bool) []*VNode {
	var out []*VNode
	var walk func(n *VNode)
	walk = func(n *VNode) {
		if n.Kind == KindElement && match(n) {
			out = append(out, n)
		}
		for i := range n.Kids {
			walk(&n.Kids[i])
		}
	}
	if v != nil {
		walk(v)
	}
	return out
}

// TextContent concatenates the text of every descendant text node.
func (v *VNode) TextContent() string {
	var b strings.Builder
	var walk func(n *VNode)
	walk = func(n *VNode) {
		if n.Kind == KindText {
			b.WriteString(n.Text)
		}
		for i := range n.Kids {
			walk(&n.Kids[i])
		}
	}
	if v != nil {
		walk(v)
	}
	return b.String()
}
