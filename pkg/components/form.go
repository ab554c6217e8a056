package components

import (
	"github.com/korden-tech/korden/pkg/styling"
	"github.com/korden-tech/korden/pkg/ui/el"
	"github.com/korden-tech/korden/pkg/ui/vdom"
)

var formStyle = styling.Define(`
.field { display: flex; flex-direction: column; gap: 0.5rem; }
.label {
	font-family: ui-monospace, SFMono-Regular, Menlo, monospace;
	font-size: 0.7rem;
	letter-spacing: 0.2em;
	color: #a855f7;
}
.control {
	width: 100%;
	padding: 0.9rem 1rem;
	border-radius: 0.75rem;
	border: 1px solid rgba(255, 255, 255, 0.1);
	background: rgba(0, 0, 0, 0.4);
	color: #fff;
	font: inherit;
	transition: border-color 0.2s ease, box-shadow 0.2s ease;
}
.control::placeholder { color: #475569; }
.control:focus { outline: none; border-color: #F59E0B; box-shadow: 0 0 0 3px rgba(245, 158, 11, 0.15); }
.control:disabled { opacity: 0.6; }
.invalid .control { border-color: #ef4444; }
.error { font-size: 0.8rem; color: #f87171; }
textarea.control { resize: vertical; min-height: 7rem; }
`)

// FieldProps defines an input or textarea with its label
type FieldProps struct {
	ID          string
	Name        string
	Label       string
	Type        string // input type; "textarea" renders a textarea
	Value       string
	Placeholder string
	Error       string
	Rows        int
	MaxLength   int
	Required    bool
	Disabled    bool
	Attrs       vdom.Props
}

// Field renders a labelled form control with an optional error message
func Field(props FieldProps) *vdom.VNode {
	if props.ID == "" {
		props.ID = props.Name
	}
	if props.Type == "" {
		props.Type = "text"
	}

	attrs := vdom.Props{
		"class":       formStyle.Class("control"),
		"id":          props.ID,
		"name":        props.Name,
		"placeholder": props.Placeholder,
		"required":    props.Required,
		"disabled":    props.Disabled,
	}
	if props.MaxLength > 0 {
		attrs["maxlength"] = props.MaxLength
	}
	if props.Error != "" {
		attrs["aria-invalid"] = "true"
		attrs["aria-describedby"] = props.ID + "-error"
	}
	for k, v := range props.Attrs {
		attrs[k] = v
	}

	var control *vdom.VNode
	if props.Type == "textarea" {
		rows := props.Rows
		if rows == 0 {
			rows = 4
		}
		attrs["rows"] = rows
		control = el.Textarea(attrs, el.Text(props.Value))
	} else {
		attrs["type"] = props.Type
		attrs["value"] = props.Value
		control = el.Input(attrs)
	}

	return el.Div(el.Props{"class": formStyle.Classes("field", el.ClassIf(props.Error != "", "invalid"))},
		el.Label(el.Props{"class": formStyle.Class("label"), "for": props.ID}, el.Text(props.Label)),
		control,
		el.If(props.Error != "", el.Span(el.Props{"class": formStyle.Class("error"), "id": props.ID + "-error"}, el.Text(props.Error))),
	)
}
