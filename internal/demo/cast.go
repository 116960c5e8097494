package demo

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/charmbracelet/x/ansi"
)

// castHeader is the first line of an asciicast v2 file.
type castHeader struct {
	Version   int               `json:"version"`
	Width     int               `json:"width"`
	Height    int               `json:"height"`
	Timestamp int64             `json:"timestamp,omitempty"`
	Title     string            `json:"title,omitempty"`
	Env       map[string]string `json:"env,omitempty"`
}

// GenerateASCIICast writes frames as an asciicast v2 recording. Each frame
// clears the screen and redraws; a resize emits an "r" event first.
func GenerateASCIICast(w io.Writer, frames []Frame, width, height int) error {
	enc := json.NewEncoder(w)
	header := castHeader{
		Version: 2,
		Width:   width,
		Height:  height,
		Env:     map[string]string{"TERM": "xterm-256color", "SHELL": "/bin/sh"},
	}
	if err := enc.Encode(header); err != nil {
		return fmt.Errorf("write cast header: %w", err)
	}

	var elapsed time.Duration
	curW, curH := width, height
	for i, f := range frames {
		elapsed += f.Delay
		at := elapsed.Seconds()

		if f.Width > 0 && f.Height > 0 && (f.Width != curW || f.Height != curH) {
			curW, curH = f.Width, f.Height
			if err := enc.Encode([]any{at, "r", fmt.Sprintf("%dx%d", curW, curH)}); err != nil {
				return fmt.Errorf("write resize for frame %d: %w", i, err)
			}
		}

		data := ansi.EraseEntireScreen + ansi.CursorHomePosition + toTerminal(f.Content)
		if err := enc.Encode([]any{at, "o", data}); err != nil {
			return fmt.Errorf("write frame %d: %w", i, err)
		}
		if f.Annotation != "" {
			if err := enc.Encode([]any{at, "m", f.Annotation}); err != nil {
				return fmt.Errorf("write marker for frame %d: %w", i, err)
			}
		}
	}
	return nil
}

// WriteFrames prints frames as plain text separated by headers.
func WriteFrames(w io.Writer, frames []Frame, stripANSI bool) error {
	if _, err := fmt.Fprintf(w, "Captured %d frames\n", len(frames)); err != nil {
		return err
	}
	for i, f := range frames {
		fmt.Fprintf(w, "\n=== Frame %d (delay: %v) ===\n", i, f.Delay)
		if f.Annotation != "" {
			fmt.Fprintf(w, "Annotation: %s\n", f.Annotation)
		}
		content := f.Content
		if stripANSI {
			content = ansi.Strip(content)
		}
		if _, err := fmt.Fprintln(w, content); err != nil {
			return err
		}
	}
	return nil
}

// toTerminal converts bare newlines to CRLF so a raw terminal returns to
// column zero.
func toTerminal(s string) string {
	return strings.ReplaceAll(s, "\n", "\r\n")
}
