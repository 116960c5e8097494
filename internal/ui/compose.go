package ui

import (
	"strings"

	"charm.land/bubbles/v2/help"
	tea "charm.land/bubbletea/v2"
	huh "charm.land/huh/v2"
	"charm.land/lipgloss/v2"
	"github.com/zhubert/chatshell/internal/keys"
)

// DefaultModels are the model choices offered by the compose form.
var DefaultModels = []string{"default", "fast", "reasoning"}

// ComposeView is the "new conversation" form shown in compose view mode.
type ComposeView struct {
	form          *huh.Form
	width, height int
	mounted       bool
	focused       bool
	models        []string

	title   string
	model   string
	message string
}

// NewComposeView creates a compose form offering models. An empty list
// falls back to DefaultModels.
func NewComposeView(models []string) *ComposeView {
	if len(models) == 0 {
		models = DefaultModels
	}
	c := &ComposeView{models: models}
	c.reset()
	return c
}

func (c *ComposeView) reset() {
	c.title, c.message = "", ""
	c.model = c.models[0]

	options := make([]huh.Option[string], len(c.models))
	for i, m := range c.models {
		options[i] = huh.NewOption(m, m)
	}

	c.form = huh.NewForm(huh.NewGroup(
		huh.NewInput().
			Title("Title").
			Placeholder("New chat").
			CharLimit(ComposeTitleLimit).
			Value(&c.title),
		huh.NewSelect[string]().
			Title("Model").
			Options(options...).
			Value(&c.model),
		huh.NewText().
			Title("First message").
			Description("Optional").
			CharLimit(ComposerCharLimit).
			Lines(4).
			Value(&c.message),
	)).
		WithTheme(FormTheme()).
		WithShowHelp(false).
		WithWidth(c.formWidth()).
		WithLayout(huh.LayoutStack)

	c.form.Init()
}

func (c *ComposeView) formWidth() int {
	return max(c.width-BorderSize-2, 20)
}

// SetSize sets the outer size of the compose panel.
func (c *ComposeView) SetSize(width, height int) {
	c.width = width
	c.height = height
	c.form = c.form.WithWidth(c.formWidth())
}

// SetMounted mounts or unmounts the form.
func (c *ComposeView) SetMounted(m bool) {
	c.mounted = m
}

// CanFocus implements focus.Element.
func (c *ComposeView) CanFocus() bool {
	return c.mounted
}

// SetFocused implements focus.Focuser.
func (c *ComposeView) SetFocused(focused bool) {
	c.focused = focused
}

// HandleKey drives the form. Escape abandons it.
func (c *ComposeView) HandleKey(msg tea.KeyPressMsg) (tea.Cmd, bool) {
	if msg.String() == keys.Escape {
		c.reset()
		return emit(ComposeCancelMsg{}), true
	}
	return c.Update(msg), true
}

// Update forwards a message to the form and reports a submission once
// the form completes.
func (c *ComposeView) Update(msg tea.Msg) tea.Cmd {
	m, cmd := c.form.Update(msg)
	if f, ok := m.(*huh.Form); ok {
		c.form = f
	}
	if c.form.State != huh.StateCompleted {
		return cmd
	}

	submit := ComposeSubmitMsg{
		Title:   strings.TrimSpace(c.title),
		Model:   c.model,
		Message: strings.TrimSpace(c.message),
	}
	c.reset()
	return tea.Batch(cmd, emit(submit))
}

// View renders the compose panel.
func (c *ComposeView) View() string {
	style := PanelStyle
	if c.focused {
		style = PanelFocusedStyle
	}
	content := lipgloss.JoinVertical(lipgloss.Left,
		PanelTitleStyle.Render("New conversation"),
		c.form.View(),
		DialogHintStyle.Render(" enter · next   esc · cancel"),
	)
	return style.Width(c.width).Height(c.height).Render(content)
}

// FormTheme returns a huh theme that matches the current palette.
func FormTheme() huh.Theme {
	return huh.ThemeFunc(func(isDark bool) *huh.Styles {
		t := huh.ThemeBase(isDark)

		t.Focused.Base = lipgloss.NewStyle().
			PaddingLeft(1).
			BorderStyle(lipgloss.NormalBorder()).
			BorderLeft(true).
			BorderForeground(ColorPrimary)
		t.Focused.Card = t.Focused.Base
		t.Focused.Title = lipgloss.NewStyle().Foreground(ColorText).Bold(true)
		t.Focused.Description = lipgloss.NewStyle().Foreground(ColorTextMuted).Italic(true)
		t.Focused.ErrorIndicator = lipgloss.NewStyle().Foreground(ColorWarning).SetString(" *")
		t.Focused.ErrorMessage = lipgloss.NewStyle().Foreground(ColorWarning)

		t.Focused.SelectSelector = lipgloss.NewStyle().Foreground(ColorPrimary).SetString("> ")
		t.Focused.NextIndicator = lipgloss.NewStyle().Foreground(ColorPrimary).MarginLeft(1).SetString("→")
		t.Focused.PrevIndicator = lipgloss.NewStyle().Foreground(ColorPrimary).MarginRight(1).SetString("←")
		t.Focused.Option = lipgloss.NewStyle().Foreground(ColorText)

		t.Focused.TextInput.Cursor = lipgloss.NewStyle().Foreground(ColorPrimary)
		t.Focused.TextInput.Placeholder = lipgloss.NewStyle().Foreground(ColorTextMuted)
		t.Focused.TextInput.Prompt = lipgloss.NewStyle().Foreground(ColorPrimary)
		t.Focused.TextInput.Text = lipgloss.NewStyle().Foreground(ColorText)

		t.Blurred = t.Focused
		t.Blurred.Base = lipgloss.NewStyle().PaddingLeft(2)
		t.Blurred.Card = t.Blurred.Base
		t.Blurred.NextIndicator = lipgloss.NewStyle()
		t.Blurred.PrevIndicator = lipgloss.NewStyle()

		t.FieldSeparator = lipgloss.NewStyle().SetString("\n")
		t.Help = help.New().Styles

		return t
	})
}
