package routes

import (
	"net/http"
	"strconv"

	"github.com/korden-tech/korden/pkg/components"
	"github.com/korden-tech/korden/pkg/server"
	"github.com/korden-tech/korden/pkg/styling"
	"github.com/korden-tech/korden/pkg/ui/el"
	"github.com/korden-tech/korden/pkg/ui/vdom"
)

var errorStyle = styling.Define(`
.page {
	display: flex;
	flex-direction: column;
	align-items: center;
	justify-content: center;
	min-height: 80vh;
	padding: 10rem 1.5rem 6rem;
	text-align: center;
}
.code {
	margin: 0;
	font-size: clamp(5rem, 18vw, 10rem);
	font-weight: 800;
	line-height: 1;
	color: transparent;
	-webkit-text-stroke: 2px #F59E0B;
}
.page h1 { margin: 1.5rem 0 1rem; font-size: 2rem; color: #fff; }
.page p { margin: 0 0 2.5rem; max-width: 28rem; color: #94a3b8; }
`)

// NotFound is rendered for unknown paths
func (a *App) NotFound(ctx server.Ctx) (*vdom.VNode, error) {
	ctx.SetTitle("Page Not Found")
	return errorPage(http.StatusNotFound, "Signal Lost", "The page you are looking for has moved or never existed."), nil
}

// ErrorPage is rendered when a handler fails
func (a *App) ErrorPage(ctx server.Ctx) (*vdom.VNode, error) {
	code := server.StatusOf(server.ErrorOf(ctx))
	ctx.SetTitle(http.StatusText(code))

	msg := "Something went wrong on our side. Please try again in a moment."
	if code < 500 {
		msg = "The request could not be processed."
	}
	return errorPage(code, http.StatusText(code), msg), nil
}

func errorPage(code int, heading, msg string) *vdom.VNode {
	return el.Section(el.Props{"class": errorStyle.Class("page")},
		el.P(el.Props{"class": errorStyle.Class("code"), "aria-hidden": "true"}, el.Text(strconv.Itoa(code))),
		el.H1(nil, el.Text(heading)),
		el.P(nil, el.Text(msg)),
		components.Button(components.ButtonProps{Text: "Return Home", Href: "/", Icon: "arrow-right"}),
	)
}
