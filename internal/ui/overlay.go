package ui

import (
	"strings"

	"charm.land/lipgloss/v2"
	"github.com/charmbracelet/x/ansi"
)

// OverlayTitle labels the sidebar dialog.
const OverlayTitle = "Sidebar"

// OverlayHint is the visible dismissal hint.
const OverlayHint = "esc · close"

// Overlay draws the sidebar as a modal dialog over a dimmed backdrop and
// remembers where the dialog landed for mouse hit tests.
type Overlay struct {
	width, height int
}

// SetBounds records where the dialog sits so hit tests work before the
// first Render.
func (o *Overlay) SetBounds(width, termWidth, termHeight int) {
	o.width = min(width, termWidth)
	o.height = termHeight
}

// Render composes dialog content of the given width over base, which is
// the full-screen rendering underneath.
func (o *Overlay) Render(base string, termWidth, termHeight int, content string, width int) string {
	o.SetBounds(width, termWidth, termHeight)

	backdrop := o.backdrop(base, termWidth, termHeight)

	inner := max(o.width-BorderSize-2, 1)
	title := DialogTitleStyle.Render(OverlayTitle)
	hint := DialogHintStyle.Render(OverlayHint)
	bodyHeight := max(termHeight-BorderSize-2, 1)
	body := lipgloss.NewStyle().Width(inner).Height(bodyHeight).MaxHeight(bodyHeight).Render(content)
	dialog := DialogStyle.Width(o.width).Height(termHeight).Render(
		lipgloss.JoinVertical(lipgloss.Left, title, body, hint),
	)

	layers := []*lipgloss.Layer{
		lipgloss.NewLayer(backdrop).X(0).Y(0),
		lipgloss.NewLayer(dialog).X(0).Y(0),
	}
	return lipgloss.NewCompositor(layers...).Render()
}

// backdrop dims base and pads it to the full terminal.
func (o *Overlay) backdrop(base string, termWidth, termHeight int) string {
	lines := strings.Split(ansi.Strip(base), "\n")
	out := make([]string, termHeight)
	for i := range out {
		line := ""
		if i < len(lines) {
			line = ansi.Truncate(lines[i], termWidth, "")
		}
		if pad := termWidth - ansi.StringWidth(line); pad > 0 {
			line += strings.Repeat(" ", pad)
		}
		out[i] = BackdropStyle.Render(line)
	}
	if termHeight > 0 {
		hint := " click outside or " + OverlayHint + " "
		last := out[termHeight-1]
		if w := ansi.StringWidth(hint); w < termWidth-o.width {
			out[termHeight-1] = ansi.Truncate(last, termWidth-w, "") + DialogHintStyle.Render(hint)
		}
	}
	return strings.Join(out, "\n")
}

// InDialog reports whether the cell at (x, y) is inside the dialog.
// Anything else on screen is backdrop.
func (o *Overlay) InDialog(x, y int) bool {
	return x >= 0 && x < o.width && y >= 0 && y < o.height
}
