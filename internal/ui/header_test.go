package ui

import (
	"strings"
	"testing"

	tea "charm.land/bubbletea/v2"
	"github.com/charmbracelet/x/ansi"
)

func TestNewHeader(t *testing.T) {
	header := NewHeader()

	if header == nil {
		t.Fatal("NewHeader() returned nil")
	}
	if header.CanFocus() {
		t.Error("header without OnToggle should not be focusable")
	}
}

func TestHeader_View_Title(t *testing.T) {
	header := NewHeader()
	header.SetWidth(80)

	view := stripANSI(header.View())

	if !strings.Contains(view, "chatshell") {
		t.Errorf("Header should contain title, got: %q", view)
	}
	if strings.Contains(view, ToggleGlyphOpen) || strings.Contains(view, ToggleGlyphClosed) {
		t.Errorf("toggle should be hidden without OnToggle: %q", view)
	}
}

func TestHeader_View_ToggleIndicator(t *testing.T) {
	tests := []struct {
		name   string
		isOpen bool
		want   string
		absent string
	}{
		{"open", true, ToggleGlyphOpen, ToggleGlyphClosed},
		{"closed", false, ToggleGlyphClosed, ToggleGlyphOpen},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			header := NewHeader()
			header.SetWidth(80)
			header.SetProps(HeaderProps{IsOpen: tt.isOpen, OnToggle: func() {}})

			view := stripANSI(header.View())
			if !strings.Contains(view, tt.want) {
				t.Errorf("expected %q in %q", tt.want, view)
			}
			if strings.Contains(view, tt.absent) {
				t.Errorf("did not expect %q in %q", tt.absent, view)
			}
		})
	}
}

func TestHeader_View_FillsWidth(t *testing.T) {
	header := NewHeader()
	header.SetWidth(100)
	header.SetRight("acme workspace")
	header.SetProps(HeaderProps{OnToggle: func() {}})

	view := header.View()
	if w := ansi.StringWidth(view); w != 100 {
		t.Errorf("header width = %d, want 100", w)
	}
	plain := stripANSI(view)
	if !strings.HasSuffix(plain, "acme workspace ") {
		t.Errorf("right slot should be right-aligned: %q", plain)
	}
}

func TestHeader_View_TruncatesRightSlot(t *testing.T) {
	header := NewHeader()
	header.SetWidth(40)
	header.SetRight(strings.Repeat("x", 80))

	view := header.View()
	if w := ansi.StringWidth(view); w > 40 {
		t.Errorf("header overflowed: width %d", w)
	}
	if !strings.Contains(stripANSI(view), "…") {
		t.Error("truncated slot should end with an ellipsis")
	}
}

func TestHeader_HandleKey(t *testing.T) {
	toggles := 0
	var changed []ViewMode
	header := NewHeader()
	header.SetProps(HeaderProps{
		OnToggle:         func() { toggles++ },
		ViewMode:         ViewChat,
		OnViewModeChange: func(v ViewMode) { changed = append(changed, v) },
	})

	if _, handled := header.HandleKey(tea.KeyPressMsg{Code: tea.KeyEnter}); !handled {
		t.Error("Enter should be handled")
	}
	if _, handled := header.HandleKey(tea.KeyPressMsg{Code: tea.KeySpace, Text: " "}); !handled {
		t.Error("Space should be handled")
	}
	if toggles != 2 {
		t.Errorf("OnToggle called %d times, want 2", toggles)
	}

	if _, handled := header.HandleKey(tea.KeyPressMsg{Code: tea.KeyRight}); !handled {
		t.Error("Right should switch tabs")
	}
	if len(changed) != 1 || changed[0] != ViewCompose {
		t.Errorf("OnViewModeChange calls = %v, want [compose]", changed)
	}

	if _, handled := header.HandleKey(tea.KeyPressMsg{Code: 'x', Text: "x"}); handled {
		t.Error("unrelated keys should fall through")
	}
}

func TestHeader_HitTesting(t *testing.T) {
	header := NewHeader()
	header.SetWidth(80)
	header.SetProps(HeaderProps{OnToggle: func() {}, ViewMode: ViewChat})
	plain := stripANSI(header.View())

	toggleCol := ansi.StringWidth(plain[:strings.Index(plain, ToggleGlyphClosed)])
	if !header.ToggleAt(toggleCol) {
		t.Errorf("ToggleAt(%d) = false", toggleCol)
	}
	if header.ToggleAt(toggleCol + 5) {
		t.Error("ToggleAt should be false away from the glyph")
	}

	composeCol := ansi.StringWidth(plain[:strings.Index(plain, "compose")])
	if mode, ok := header.TabAt(composeCol + 1); !ok || mode != ViewCompose {
		t.Errorf("TabAt(%d) = %v, %v", composeCol+1, mode, ok)
	}
}

func TestParseViewMode(t *testing.T) {
	tests := []struct {
		in      string
		want    ViewMode
		wantErr bool
	}{
		{"", ViewChat, false},
		{"chat", ViewChat, false},
		{"Compose", ViewCompose, false},
		{"split", ViewChat, true},
	}
	for _, tt := range tests {
		got, err := ParseViewMode(tt.in)
		if (err != nil) != tt.wantErr {
			t.Errorf("ParseViewMode(%q) err = %v", tt.in, err)
		}
		if got != tt.want {
			t.Errorf("ParseViewMode(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
	if ViewChat.Toggle() != ViewCompose || ViewCompose.Toggle() != ViewChat {
		t.Error("Toggle should flip between chat and compose")
	}
}
