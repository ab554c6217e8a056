package components

import (
	"github.com/korden-tech/korden/pkg/styling"
	"github.com/korden-tech/korden/pkg/ui/el"
	"github.com/korden-tech/korden/pkg/ui/vdom"
)

// ButtonVariant defines the visual style of the button
type ButtonVariant string

const (
	ButtonPrimary   ButtonVariant = "primary"
	ButtonSecondary ButtonVariant = "secondary"
	ButtonGhost     ButtonVariant = "ghost"
)

// ButtonSize defines the size of the button
type ButtonSize string

const (
	ButtonSmall  ButtonSize = "small"
	ButtonMedium ButtonSize = "medium"
	ButtonLarge  ButtonSize = "large"
)

var buttonStyle = styling.Define(`
.btn {
	display: inline-flex;
	align-items: center;
	justify-content: center;
	gap: 0.5rem;
	border-radius: 9999px;
	font-weight: 600;
	letter-spacing: 0.02em;
	border: 1px solid transparent;
	cursor: pointer;
	text-decoration: none;
	transition: transform 0.2s ease, box-shadow 0.3s ease, background 0.3s ease, color 0.3s ease;
}
.btn:hover { transform: translateY(-2px); }
.btn:disabled, .btn[aria-busy="true"] { opacity: 0.6; cursor: not-allowed; transform: none; }
.primary {
	background: linear-gradient(90deg, #7E22CE, #9333EA);
	color: #fff;
	box-shadow: 0 0 20px rgba(147, 51, 234, 0.35);
}
.primary:hover { box-shadow: 0 0 30px rgba(245, 158, 11, 0.45); }
.secondary {
	background: rgba(255, 255, 255, 0.05);
	border-color: rgba(255, 255, 255, 0.15);
	color: #e2e8f0;
}
.secondary:hover { border-color: #F59E0B; color: #F59E0B; }
.ghost { background: transparent; color: #cbd5e1; }
.ghost:hover { color: #F59E0B; }
.small { padding: 0.4rem 1rem; font-size: 0.8rem; }
.medium { padding: 0.7rem 1.5rem; font-size: 0.95rem; }
.large { padding: 1rem 2.25rem; font-size: 1.05rem; }
.icon { display: inline-flex; transition: transform 0.2s ease; }
.btn:hover .icon { transform: translateX(3px); }
`)

// ButtonProps defines the properties for the Button component
type ButtonProps struct {
	Text     string
	Variant  ButtonVariant
	Size     ButtonSize
	Href     string // renders a link styled as a button
	Type     string // button type attribute, default "button"
	Icon     string // trailing icon name
	Disabled bool
	Loading  bool
	Class    string
	ID       string
	Attrs    vdom.Props // extra attributes such as data-* hooks
}

// Button creates a reusable button component. With Href set it renders an
// anchor so navigation works without scripts.
func Button(props ButtonProps) *vdom.VNode {
	if props.Variant == "" {
		props.Variant = ButtonPrimary
	}
	if props.Size == "" {
		props.Size = ButtonMedium
	}

	attrs := vdom.Props{
		"class": el.Class(buttonStyle.Classes("btn", string(props.Variant), string(props.Size)), props.Class),
	}
	for k, v := range props.Attrs {
		attrs[k] = v
	}
	if props.ID != "" {
		attrs["id"] = props.ID
	}

	children := []*vdom.VNode{el.Text(props.Text)}
	if props.Loading {
		children = []*vdom.VNode{Spinner(SpinnerProps{Size: SpinnerSmall}), el.Text(props.Text)}
		attrs["aria-busy"] = "true"
	} else if props.Icon != "" {
		children = append(children, el.Span(el.Props{"class": buttonStyle.Class("icon")}, Icon(props.Icon, 18, "")))
	}

	if props.Href != "" {
		attrs["href"] = props.Href
		return el.A(attrs, children...)
	}

	if props.Type == "" {
		props.Type = "button"
	}
	attrs["type"] = props.Type
	attrs["disabled"] = props.Disabled || props.Loading
	return el.Button(attrs, children...)
}
