package components

import (
	"github.com/korden-tech/korden/pkg/styling"
	"github.com/korden-tech/korden/pkg/ui/el"
	"github.com/korden-tech/korden/pkg/ui/vdom"
)

// SpinnerSize selects the spinner diameter
type SpinnerSize string

const (
	SpinnerSmall  SpinnerSize = "small"
	SpinnerMedium SpinnerSize = "medium"
	SpinnerLarge  SpinnerSize = "large"
)

var spinnerStyle = styling.Define(`
.spinner { display: inline-block; animation: spin 1s linear infinite; }
.container { display: inline-flex; align-items: center; gap: 0.75rem; color: #94a3b8; }
@keyframes spin { to { transform: rotate(360deg); } }
`)

// SpinnerProps defines the properties for the Spinner component
type SpinnerProps struct {
	Size  SpinnerSize
	Color string // CSS color value, default currentColor
	Text  string // Optional loading text
}

// Spinner creates a loading spinner
func Spinner(props SpinnerProps) *vdom.VNode {
	if props.Color == "" {
		props.Color = "currentColor"
	}

	size := "24"
	switch props.Size {
	case SpinnerSmall:
		size = "16"
	case SpinnerLarge:
		size = "48"
	}

	svg := el.Raw(`<svg class="` + spinnerStyle.Class("spinner") + `" width="` + size + `" height="` + size +
		`" viewBox="0 0 24 24" fill="none" aria-hidden="true">` +
		`<circle cx="12" cy="12" r="10" stroke="` + props.Color + `" stroke-width="2" stroke-opacity="0.25"/>` +
		`<path d="M22 12a10 10 0 0 0-10-10" stroke="` + props.Color + `" stroke-width="2" stroke-linecap="round"/></svg>`)

	if props.Text == "" {
		return svg
	}
	return el.Div(el.Props{"class": spinnerStyle.Class("container"), "role": "status"},
		svg,
		el.Span(nil, el.Text(props.Text)),
	)
}
