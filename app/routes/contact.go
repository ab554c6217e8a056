package routes

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"net/url"

	"github.com/korden-tech/korden/internal/contact"
	"github.com/korden-tech/korden/pkg/components"
	"github.com/korden-tech/korden/pkg/live"
	"github.com/korden-tech/korden/pkg/reactive"
	"github.com/korden-tech/korden/pkg/server"
	"github.com/korden-tech/korden/pkg/styling"
	"github.com/korden-tech/korden/pkg/ui/el"
	"github.com/korden-tech/korden/pkg/ui/vdom"
)

// ContactView is the live region holding the message form
const ContactView = "contact"

var contactStyle = styling.Define(`
.page { position: relative; overflow: hidden; padding: 9rem 0 6rem; }
.particles { position: absolute; inset: 0; width: 100%; height: 100%; opacity: 0.6; pointer-events: none; }
.inner { position: relative; z-index: 1; }
.intro { text-align: center; margin-bottom: 5rem; }
.badge {
	display: inline-flex;
	align-items: center;
	gap: 0.5rem;
	margin-bottom: 1.5rem;
	padding: 0.35rem 1rem;
	border-radius: 9999px;
	border: 1px solid rgba(255, 255, 255, 0.1);
	background: rgba(255, 255, 255, 0.05);
	font-family: ui-monospace, SFMono-Regular, Menlo, monospace;
	font-size: 0.75rem;
	letter-spacing: 0.2em;
	color: #e9d5ff;
}
.badge svg { color: #c084fc; }
.heading { margin: 0 0 1.5rem; font-size: clamp(2.75rem, 7vw, 4.5rem); font-weight: 800; color: #fff; }
.accent {
	color: transparent;
	background: linear-gradient(90deg, #c084fc, #818cf8);
	-webkit-background-clip: text;
	background-clip: text;
}
.lead { margin: 0 auto; max-width: 32rem; color: #94a3b8; font-weight: 300; }
.grid { display: grid; gap: 2.5rem; }
@media (min-width: 1024px) { .grid { grid-template-columns: 1fr 1fr; } }
.column { display: flex; flex-direction: column; gap: 2rem; }
.channels { display: flex; flex-direction: column; gap: 1.5rem; }
.channel { display: flex; align-items: flex-start; gap: 1rem; color: inherit; text-decoration: none; }
.glyph {
	display: flex;
	flex-shrink: 0;
	align-items: center;
	justify-content: center;
	width: 3rem;
	height: 3rem;
	border-radius: 1rem;
	border: 1px solid rgba(255, 255, 255, 0.1);
	background: rgba(255, 255, 255, 0.05);
	color: #94a3b8;
	transition: color 0.2s ease, border-color 0.2s ease;
}
.channel:hover .glyph { color: #c084fc; border-color: rgba(168, 85, 247, 0.3); }
.key { margin: 0 0 0.25rem; font-family: ui-monospace, SFMono-Regular, Menlo, monospace; font-size: 0.7rem; letter-spacing: 0.1em; color: #64748b; }
.value { margin: 0; color: #fff; font-weight: 500; }
.whatsapp {
	display: flex;
	align-items: center;
	justify-content: center;
	gap: 0.75rem;
	margin-top: 2rem;
	padding: 1rem;
	border-radius: 0.75rem;
	background: #25D366;
	color: #000;
	font-weight: 700;
	text-decoration: none;
	box-shadow: 0 0 20px -5px rgba(37, 211, 102, 0.4);
	transition: background 0.2s ease, box-shadow 0.2s ease;
}
.whatsapp:hover { background: #1fb355; box-shadow: 0 0 30px -5px rgba(37, 211, 102, 0.6); }
.map { position: relative; height: 16rem; border-radius: 2rem; overflow: hidden; border: 1px solid rgba(255, 255, 255, 0.1); }
.map img { position: absolute; inset: 0; width: 100%; height: 100%; object-fit: cover; opacity: 0.5; filter: grayscale(100%); transition: all 0.7s ease-out; }
.map:hover img { filter: none; transform: scale(1.1); }
.shade { position: absolute; inset: 0; background: linear-gradient(0deg, #020205, rgba(2, 2, 5, 0.2) 60%, transparent); }
.scan {
	position: absolute;
	left: 0;
	width: 100%;
	height: 4px;
	background: rgba(168, 85, 247, 0.5);
	box-shadow: 0 0 15px rgba(168, 85, 247, 0.8);
	animation: scan 3s ease-in-out infinite;
}
@keyframes scan { 0% { top: 0%; opacity: 0; } 10% { opacity: 1; } 90% { opacity: 1; } 100% { top: 100%; opacity: 0; } }
.tag { position: absolute; left: 1.5rem; bottom: 1.5rem; padding: 0.5rem 1rem; border-radius: 0.5rem; background: rgba(0, 0, 0, 0.6); border: 1px solid rgba(255, 255, 255, 0.1); }
.feed { display: flex; align-items: center; gap: 0.5rem; font-family: ui-monospace, SFMono-Regular, Menlo, monospace; font-size: 0.65rem; color: #4ade80; }
.dot { width: 0.5rem; height: 0.5rem; border-radius: 9999px; background: #22c55e; }
.tag strong { color: #fff; font-size: 0.9rem; }
.panel { position: relative; padding: 2.5rem; border-radius: 2rem; border: 1px solid rgba(255, 255, 255, 0.05); background: #0a0a0f; box-shadow: 0 25px 50px -12px rgba(0, 0, 0, 0.5); }
.panel h3 { margin: 0 0 0.5rem; font-size: 1.5rem; color: #fff; }
.hint { margin: 0 0 2rem; font-size: 0.9rem; color: #94a3b8; }
.region { min-height: 25rem; }
.form { display: flex; flex-direction: column; gap: 1.5rem; }
.failed { margin: 0; padding: 0.75rem 1rem; border-radius: 0.75rem; background: rgba(239, 68, 68, 0.1); color: #fca5a5; font-size: 0.85rem; }
.done { display: flex; flex-direction: column; align-items: center; justify-content: center; min-height: 25rem; text-align: center; }
.sent {
	display: flex;
	align-items: center;
	justify-content: center;
	width: 5rem;
	height: 5rem;
	margin-bottom: 1.5rem;
	border-radius: 9999px;
	border: 1px solid rgba(34, 197, 94, 0.2);
	background: rgba(34, 197, 94, 0.1);
	color: #22c55e;
	box-shadow: 0 0 30px -5px rgba(34, 197, 94, 0.3);
}
.done h4 { margin: 0 0 0.5rem; font-size: 1.5rem; color: #fff; }
.done p { margin: 0 0 2rem; max-width: 20rem; font-size: 0.9rem; color: #94a3b8; }
`)

type formStatus int

const (
	formIdle formStatus = iota
	formSubmitting
	formSent
	formFailed
)

// contactForm is everything the message form renders from
type contactForm struct {
	Status  formStatus
	Values  contact.Submission
	Errors  map[string]string
	Receipt contact.Receipt
}

// Contact renders the contact page. A POST is the form's fallback when
// scripts are off: it waits out the submission and renders the outcome.
func (a *App) Contact(ctx server.Ctx) (*vdom.VNode, error) {
	ctx.SetTitle("Contact")

	var form contactForm
	if ctx.Method() == http.MethodPost {
		ctx.NoCache()
		var sub contact.Submission
		if err := ctx.Bind(&sub); err != nil {
			return nil, err
		}
		receipt, clean, err := a.contact.Submit(ctx.Context(), sub)
		var verr *contact.ValidationError
		switch {
		case errors.As(err, &verr):
			ctx.Status(http.StatusUnprocessableEntity)
			form = contactForm{Values: clean, Errors: verr.Reasons()}
		case err != nil:
			return nil, err
		default:
			ctx.Logger().Info("contact submission accepted", "receipt", receipt.ID)
			form = contactForm{Status: formSent, Receipt: receipt}
		}
	}

	return a.contactPage(form), nil
}

func (a *App) contactPage(form contactForm) *vdom.VNode {
	company := a.Site().Company

	region := el.Props{"class": contactStyle.Class("region")}
	if a.liveEnabled() {
		region["data-live-view"] = ContactView
		region[vdom.LiveProp] = ContactView
	}

	return el.Div(el.Props{"class": contactStyle.Class("page")},
		el.Canvas(el.Props{"class": contactStyle.Class("particles"), "data-fx": "particles", "aria-hidden": "true"}),
		el.Div(el.Props{"class": el.Class("container", contactStyle.Class("inner"))},
			el.Div(el.Props{"class": contactStyle.Class("intro")},
				el.Span(el.Props{"class": contactStyle.Class("badge")},
					components.Icon("globe", 14, ""),
					el.Text("UPLINK_ESTABLISHED"),
				),
				el.H1(el.Props{"class": contactStyle.Class("heading")},
					el.Text("Let's "),
					el.Span(el.Props{"class": contactStyle.Class("accent")}, el.Text("Collaborate")),
				),
				el.P(el.Props{"class": contactStyle.Class("lead")},
					el.Text("Ready to engineer the future? Initiate the transmission below."),
				),
			),
			el.Div(el.Props{"class": contactStyle.Class("grid")},
				el.Div(el.Props{"class": contactStyle.Class("column")},
					components.Card(components.CardProps{Title: "Direct Channels", Glow: components.GlowPurple, Hover: true},
						el.Div(el.Props{"class": contactStyle.Class("channels")},
							channel("map-pin", "HQ_LOCATION", company.Address, ""),
							channel("phone", "VOICE_LINK", company.Phone, "tel:"+compactPhone(company.Phone)),
							channel("mail", "DATA_PACKET", company.Email, "mailto:"+company.Email),
						),
						el.A(el.Props{
							"class":  contactStyle.Class("whatsapp"),
							"href":   company.WhatsAppURL(),
							"target": "_blank",
							"rel":    "noreferrer",
						},
							components.Icon("message-circle", 20, ""),
							el.Span(nil, el.Text("Initiate WhatsApp Chat")),
							components.Icon("arrow-right", 16, ""),
						),
					),
					el.Div(el.Props{"class": contactStyle.Class("map")},
						el.Img(el.Props{"src": a.Site().About.Image, "alt": "Map Location", "loading": "lazy"}),
						el.Div(el.Props{"class": contactStyle.Class("shade")}),
						el.Div(el.Props{"class": contactStyle.Class("scan")}),
						el.Div(el.Props{"class": contactStyle.Class("tag")},
							el.Div(el.Props{"class": contactStyle.Class("feed")},
								el.Span(el.Props{"class": contactStyle.Class("dot")}),
								el.Text("LIVE_FEED"),
							),
							el.Strong(nil, el.Text("Mumbai Operations Center")),
						),
					),
				),
				el.Div(el.Props{"class": contactStyle.Class("panel")},
					el.H3(nil, el.Text("Message Protocol")),
					el.P(el.Props{"class": contactStyle.Class("hint")}, el.Text("Fill out the parameters below to initiate contact.")),
					el.Div(region, renderContactForm(form)),
				),
			),
		),
	)
}

func channel(icon, key, value, href string) *vdom.VNode {
	body := []*vdom.VNode{
		el.Span(el.Props{"class": contactStyle.Class("glyph")}, components.Icon(icon, 20, "")),
		el.Div(nil,
			el.P(el.Props{"class": contactStyle.Class("key")}, el.Text(key)),
			el.P(el.Props{"class": contactStyle.Class("value")}, el.Text(value)),
		),
	}
	if href == "" {
		return el.Div(el.Props{"class": contactStyle.Class("channel")}, body...)
	}
	return el.A(el.Props{"class": contactStyle.Class("channel"), "href": href}, body...)
}

// compactPhone drops the spaces from a display number for tel: links
func compactPhone(phone string) string {
	out := make([]byte, 0, len(phone))
	for i := 0; i < len(phone); i++ {
		if c := phone[i]; c == '+' || (c >= '0' && c <= '9') {
			out = append(out, c)
		}
	}
	return string(out)
}

// renderContactForm is the live region body: the form, or the sent screen
func renderContactForm(form contactForm) *vdom.VNode {
	if form.Status == formSent {
		return el.Div(el.Props{"class": contactStyle.Class("done"), "role": "status"},
			el.Div(el.Props{"class": contactStyle.Class("sent")}, components.Icon("send", 32, "")),
			el.H4(nil, el.Text("Transmission Sent")),
			el.P(nil, el.Text("Our team has received your packet. Expect a response within 24 hours.")),
			components.Button(components.ButtonProps{
				Text:    "RESET_FORM",
				Href:    "/contact",
				Variant: components.ButtonGhost,
				Size:    components.ButtonSmall,
				Attrs:   vdom.Props{"data-live-event": live.EventReset.String()},
			}),
		)
	}

	busy := form.Status == formSubmitting
	button := components.ButtonProps{
		Text:    "TRANSMIT MESSAGE",
		Type:    "submit",
		Icon:    "arrow-right",
		Size:    components.ButtonLarge,
		Loading: busy,
	}
	if busy {
		button.Text = "TRANSMITTING..."
		button.Icon = ""
	}

	return el.Form(el.Props{
		"class":           contactStyle.Class("form"),
		"method":          "post",
		"action":          "/contact",
		"data-live-event": live.EventSubmit.String(),
	},
		el.If(form.Status == formFailed, el.P(el.Props{"class": contactStyle.Class("failed"), "role": "alert"},
			el.Text("Transmission failed. Please try again."),
		)),
		components.Field(components.FieldProps{
			Name:        "name",
			Label:       "USER_NAME",
			Value:       form.Values.Name,
			Placeholder: "Enter full name",
			Error:       form.Errors["name"],
			MaxLength:   contact.MaxNameLen,
			Required:    true,
			Disabled:    busy,
		}),
		components.Field(components.FieldProps{
			Name:        "email",
			Label:       "EMAIL_ADDRESS",
			Type:        "email",
			Value:       form.Values.Email,
			Placeholder: "name@company.com",
			Error:       form.Errors["email"],
			MaxLength:   contact.MaxEmailLen,
			Required:    true,
			Disabled:    busy,
		}),
		components.Field(components.FieldProps{
			Name:        "message",
			Label:       "MESSAGE_DATA",
			Type:        "textarea",
			Value:       form.Values.Message,
			Placeholder: "Tell us about your project requirements...",
			Error:       form.Errors["message"],
			Rows:        4,
			MaxLength:   contact.MaxMessageLen,
			Required:    true,
			Disabled:    busy,
		}),
		components.Button(button),
	)
}

// contactView submits the form over the live connection
type contactView struct {
	form    *reactive.State[contactForm]
	service *contact.Service
	logger  *slog.Logger
}

func (a *App) newContactView(sched reactive.Scheduler, _ url.Values) live.View {
	return &contactView{
		form:    reactive.NewState(contactForm{}, sched),
		service: a.contact,
		logger:  a.logger.With("view", ContactView),
	}
}

func (v *contactView) Render() *vdom.VNode {
	return renderContactForm(v.form.Get())
}

func (v *contactView) Sources() []reactive.Source {
	return []reactive.Source{v.form}
}

// Handle must not block, so the simulated round trip runs on its own
// goroutine bound to the session context.
func (v *contactView) Handle(ctx context.Context, evt live.Event) error {
	switch evt.Type {
	case live.EventSubmit:
		if v.form.Get().Status == formSubmitting {
			return nil
		}
		sub := contact.Submission{
			Name:    evt.Field("name"),
			Email:   evt.Field("email"),
			Message: evt.Field("message"),
		}
		v.form.Set(contactForm{Status: formSubmitting, Values: sub})
		go v.submit(ctx, sub)
	case live.EventReset:
		v.form.Set(contactForm{})
	default:
		return errors.New("unsupported event " + evt.Type.String())
	}
	return nil
}

func (v *contactView) submit(ctx context.Context, sub contact.Submission) {
	receipt, clean, err := v.service.Submit(ctx, sub)
	var verr *contact.ValidationError
	switch {
	case err == nil:
		v.logger.Info("contact submission accepted", "receipt", receipt.ID)
		v.form.Set(contactForm{Status: formSent, Receipt: receipt})
	case errors.As(err, &verr):
		v.form.Set(contactForm{Values: clean, Errors: verr.Reasons()})
	case ctx.Err() != nil:
		// session closed mid-submit
	default:
		v.logger.Error("contact submission failed", "err", err)
		v.form.Set(contactForm{Status: formFailed, Values: clean})
	}
}

// contactRejection is the 422 body of POST /api/contact
type contactRejection struct {
	Error  string            `json:"error"`
	Fields map[string]string `json:"fields"`
}

// ContactAPI accepts a JSON submission and answers with a receipt
func (a *App) ContactAPI(ctx server.Ctx) (any, error) {
	var sub contact.Submission
	if err := ctx.Bind(&sub); err != nil {
		return nil, err
	}
	receipt, _, err := a.contact.Submit(ctx.Context(), sub)
	var verr *contact.ValidationError
	if errors.As(err, &verr) {
		ctx.Status(http.StatusUnprocessableEntity)
		return contactRejection{Error: "invalid submission", Fields: verr.Reasons()}, nil
	}
	if err != nil {
		return nil, err
	}
	ctx.Logger().Info("contact submission accepted", "receipt", receipt.ID)
	ctx.Status(http.StatusAccepted)
	return receipt, nil
}
