package app

import (
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
	"github.com/zhubert/chatshell/internal/layout"
	"github.com/zhubert/chatshell/internal/ui"
)

// updateSizes pushes the current layout arithmetic into every panel.
func (m *Model) updateSizes() {
	if m.width > 0 && m.height > 0 {
		m.ctx.UpdateTerminalSize(m.width, m.height)
	}
	ctx := m.ctx

	m.header.SetWidth(ctx.TerminalWidth)
	m.footer.SetWidth(ctx.TerminalWidth)

	if m.OverlayShown() {
		m.sidebar.SetSize(ctx.OverlayWidth, ctx.TerminalHeight-ui.BorderSize)
		m.dialog.SetBounds(ctx.OverlayWidth, ctx.TerminalWidth, ctx.TerminalHeight)
	} else {
		m.sidebar.SetSize(ctx.SidebarWidth, ctx.ContentHeight)
	}

	m.composer.SetWidth(ctx.BodyWidth)
	m.messages.SetSize(ctx.BodyWidth, max(ctx.ContentHeight-m.composer.Height(), 0))
	m.compose.SetSize(ctx.BodyWidth, ctx.ContentHeight)
}

// View renders the UI
func (m *Model) View() tea.View {
	var v tea.View
	v.AltScreen = true
	v.MouseMode = tea.MouseModeCellMotion
	v.ReportFocus = true

	if m.width == 0 || m.height == 0 {
		v.SetContent("Loading...")
		return v
	}
	v.SetContent(m.render())
	return v
}

// RenderToString returns the rendered view as a string, for tests and
// frame capture.
func (m *Model) RenderToString() string {
	if m.width == 0 || m.height == 0 {
		return "Loading..."
	}
	return m.render()
}

// render draws exactly one presentation for the current behavior: no
// sidebar, an inline sidebar panel, or the sidebar dialog over a backdrop.
func (m *Model) render() string {
	behavior := m.Behavior()

	var body string
	switch {
	case behavior == layout.None:
		body = m.renderDashboard()
	case behavior == layout.Inline && m.open.Read():
		body = lipgloss.JoinHorizontal(lipgloss.Top, m.sidebar.View(), m.renderMain())
	default:
		body = m.renderMain()
	}

	screen := lipgloss.JoinVertical(lipgloss.Left,
		m.header.View(),
		body,
		m.footer.View(),
	)

	if behavior != layout.Overlay || !m.open.Read() {
		return screen
	}
	ctx := m.ctx
	content := m.sidebar.Content(max(ctx.OverlayWidth-ui.BorderSize-2, 1))
	return m.dialog.Render(screen, ctx.TerminalWidth, ctx.TerminalHeight, content, ctx.OverlayWidth)
}

// renderMain draws the chat or compose region.
func (m *Model) renderMain() string {
	if m.view.Read() == ui.ViewCompose {
		return m.compose.View()
	}
	return lipgloss.JoinVertical(lipgloss.Left, m.messages.View(), m.composer.View())
}

// renderDashboard draws the placeholder region shown in dashboard mode.
func (m *Model) renderDashboard() string {
	ctx := m.ctx
	text := m.opts.Slots.EmptyState
	if text == "" {
		text = "Dashboard"
	}
	inner := ui.DashboardStyle.Render(text)
	return ui.PanelStyle.
		Width(ctx.TerminalWidth).
		Height(ctx.ContentHeight).
		Render(lipgloss.Place(
			max(ctx.TerminalWidth-ui.BorderSize, 0),
			max(ctx.ContentHeight-ui.BorderSize, 0),
			lipgloss.Center, lipgloss.Center, inner,
		))
}
