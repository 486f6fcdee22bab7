package components

import (
	"context"
	"io"

	"github.com/a-h/templ"
	g "maragu.dev/gomponents"
)

// Templ adapts a gomponents node to a templ component so it can be served
// with templ.Handler or patched over datastar SSE.
func Templ(n g.Node) templ.Component {
	return templ.ComponentFunc(func(_ context.Context, w io.Writer) error {
		if n == nil {
			return nil
		}
		return n.Render(w)
	})
}
