package ui

// Mouse selection in the message list.
//
// The app hands the list panel-relative coordinates (0,0 is the panel's
// top-left border cell). The list subtracts the border so a selection is
// stored in viewport coordinates, which is also the coordinate space of
// the ultraviolet screen buffer used to draw the highlight.

import (
	"strings"
	"time"

	tea "charm.land/bubbletea/v2"
	uv "github.com/charmbracelet/ultraviolet"
	"github.com/charmbracelet/x/ansi"
	"github.com/rivo/uniseg"
)

const (
	doubleClickThreshold = 500 * time.Millisecond
	clickTolerance       = 2 // cells
)

// selection is a start and end cell in viewport coordinates. A negative
// start means nothing is selected.
type selection struct {
	startCol, startLine int
	endCol, endLine     int
	dragging            bool

	lastClick    time.Time
	lastX, lastY int
	clickCount   int
}

func newSelection() selection {
	return selection{startCol: -1, startLine: -1, endCol: -1, endLine: -1}
}

func (s *selection) start(col, line int) {
	s.startCol, s.startLine = col, line
	s.endCol, s.endLine = col, line
	s.dragging = true
}

func (s *selection) extend(col, line int) {
	if !s.dragging {
		return
	}
	s.endCol, s.endLine = col, line
}

func (s *selection) clear() {
	click, x, y, n := s.lastClick, s.lastX, s.lastY, s.clickCount
	*s = newSelection()
	s.lastClick, s.lastX, s.lastY, s.clickCount = click, x, y, n
}

// active reports whether a non-empty range is selected.
func (s *selection) active() bool {
	return s.startCol >= 0 && s.startLine >= 0 &&
		(s.endCol != s.startCol || s.endLine != s.startLine)
}

// area returns the selection with the start before the end in reading
// order.
func (s *selection) area() (startCol, startLine, endCol, endLine int) {
	startCol, startLine = s.startCol, s.startLine
	endCol, endLine = s.endCol, s.endLine
	if startLine > endLine || (startLine == endLine && startCol > endCol) {
		startCol, endCol = endCol, startCol
		startLine, endLine = endLine, startLine
	}
	return
}

// InBounds reports whether the panel-relative cell (x, y) is inside the
// list panel.
func (l *MessageList) InBounds(x, y int) bool {
	return l.mounted && x >= 0 && x < l.width && y >= 0 && y < l.height
}

// HandleMouseClick starts a selection at the panel-relative cell (x, y).
// A second click on the same spot selects the word under it and copies it.
func (l *MessageList) HandleMouseClick(x, y int) tea.Cmd {
	col, line := x-1, y-1
	now := l.now()
	s := &l.sel

	if now.Sub(s.lastClick) <= doubleClickThreshold &&
		abs(col-s.lastX) <= clickTolerance && abs(line-s.lastY) <= clickTolerance {
		s.clickCount++
	} else {
		s.clickCount = 1
	}
	s.lastClick, s.lastX, s.lastY = now, col, line

	if s.clickCount >= 2 {
		s.clickCount = 0
		l.selectWord(col, line)
		return l.copySelection()
	}
	s.start(col, line)
	return nil
}

// HandleMouseMotion extends an in-progress drag.
func (l *MessageList) HandleMouseMotion(x, y int) {
	l.sel.extend(x-1, y-1)
}

// HandleMouseRelease ends the drag and copies the selected text. The
// highlight stays until the next click or content change.
func (l *MessageList) HandleMouseRelease(x, y int) tea.Cmd {
	if !l.sel.dragging {
		return nil
	}
	l.sel.extend(x-1, y-1)
	l.sel.dragging = false
	return l.copySelection()
}

// HasSelection reports whether text is selected.
func (l *MessageList) HasSelection() bool {
	return l.sel.active()
}

// ClearSelection drops the current selection.
func (l *MessageList) ClearSelection() {
	l.sel.clear()
}

// SelectedText returns the selected text with styling removed.
func (l *MessageList) SelectedText() string {
	if !l.sel.active() {
		return ""
	}
	lines := strings.Split(l.viewport.View(), "\n")
	startCol, startLine, endCol, endLine := l.sel.area()

	var sb strings.Builder
	for y := max(startLine, 0); y <= endLine && y < len(lines); y++ {
		line := ansi.Strip(lines[y])
		from, to := 0, ansi.StringWidth(line)
		if y == startLine {
			from = startCol
		}
		if y == endLine {
			to = min(endCol, to)
		}
		if from < to {
			sb.WriteString(ansi.Cut(line, max(from, 0), to))
		}
		if y < endLine {
			sb.WriteString("\n")
		}
	}
	return strings.TrimSpace(sb.String())
}

func (l *MessageList) copySelection() tea.Cmd {
	text := l.SelectedText()
	if text == "" || l.clip == nil {
		return nil
	}
	clip := l.clip
	return func() tea.Msg {
		return CopiedMsg{Err: clip.WriteText(text)}
	}
}

// selectWord selects the run of non-space graphemes under (col, line).
func (l *MessageList) selectWord(col, line int) {
	lines := strings.Split(l.viewport.View(), "\n")
	if line < 0 || line >= len(lines) {
		return
	}
	text := ansi.Strip(lines[line])

	type cluster struct {
		col, width int
		space      bool
	}
	var clusters []cluster
	pos := 0
	gr := uniseg.NewGraphemes(text)
	for gr.Next() {
		w := gr.Width()
		clusters = append(clusters, cluster{col: pos, width: w, space: strings.TrimSpace(gr.Str()) == ""})
		pos += w
	}

	hit := -1
	for i, c := range clusters {
		if col >= c.col && col < c.col+c.width {
			hit = i
			break
		}
	}
	if hit < 0 || clusters[hit].space {
		return
	}
	first, last := hit, hit
	for first > 0 && !clusters[first-1].space {
		first--
	}
	for last < len(clusters)-1 && !clusters[last+1].space {
		last++
	}

	l.sel.startCol, l.sel.startLine = clusters[first].col, line
	l.sel.endCol, l.sel.endLine = clusters[last].col+clusters[last].width, line
	l.sel.dragging = false
}

// selectionView draws the selection highlight over the rendered viewport.
func (l *MessageList) selectionView(view string) string {
	if !l.sel.active() {
		return view
	}
	width, height := l.viewport.Width(), l.viewport.Height()
	if width <= 0 || height <= 0 {
		return view
	}

	area := uv.Rect(0, 0, width, height)
	scr := uv.NewScreenBuffer(area.Dx(), area.Dy())
	uv.NewStyledString(view).Draw(scr, area)

	bg := TextSelectionStyle.GetBackground()
	fg := TextSelectionStyle.GetForeground()
	startCol, startLine, endCol, endLine := l.sel.area()
	for y := max(startLine, 0); y <= endLine && y < height; y++ {
		from, to := 0, width
		if y == startLine {
			from = startCol
		}
		if y == endLine {
			to = endCol
		}
		for x := max(from, 0); x < to && x < width; x++ {
			cell := scr.CellAt(x, y)
			if cell == nil {
				continue
			}
			cell = cell.Clone()
			cell.Style.Bg = bg
			cell.Style.Fg = fg
			scr.SetCell(x, y, cell)
		}
	}
	return scr.Render()
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
