package app

import (
	tea "charm.land/bubbletea/v2"
	"github.com/zhubert/chatshell/internal/ui"
)

// ShowFlash displays a flash message in the footer and returns the
// command that starts its auto-dismiss timer.
func (m *Model) ShowFlash(text string, flashType ui.FlashType) tea.Cmd {
	m.footer.SetFlash(text, flashType)
	return ui.FlashTick()
}

// ShowFlashError displays an error flash message
func (m *Model) ShowFlashError(text string) tea.Cmd {
	return m.ShowFlash(text, ui.FlashError)
}

// ShowFlashInfo displays an info flash message
func (m *Model) ShowFlashInfo(text string) tea.Cmd {
	return m.ShowFlash(text, ui.FlashInfo)
}

// ShowFlashSuccess displays a success flash message
func (m *Model) ShowFlashSuccess(text string) tea.Cmd {
	return m.ShowFlash(text, ui.FlashSuccess)
}

// handleFlashTick clears an expired flash and keeps ticking while one is
// still showing.
func (m *Model) handleFlashTick() tea.Cmd {
	if m.footer.ClearIfExpired() || !m.footer.HasFlash() {
		return nil
	}
	return ui.FlashTick()
}
