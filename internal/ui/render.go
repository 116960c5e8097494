package ui

import (
	"bytes"
	"strings"

	"github.com/alecthomas/chroma/v2"
	"github.com/alecthomas/chroma/v2/formatters"
	"github.com/alecthomas/chroma/v2/lexers"
	"github.com/alecthomas/chroma/v2/styles"
	"github.com/charmbracelet/x/ansi"
)

// highlightCode applies syntax highlighting to code using chroma
func highlightCode(code, language string) string {
	lexer := lexers.Get(language)
	if lexer == nil {
		lexer = lexers.Analyse(code)
	}
	if lexer == nil {
		lexer = lexers.Fallback
	}
	lexer = chroma.Coalesce(lexer)

	style := styles.Get(CurrentTheme().CodeStyle)
	if style == nil {
		style = styles.Fallback
	}

	formatter := formatters.Get("terminal256")
	if formatter == nil {
		formatter = formatters.Fallback
	}

	iterator, err := lexer.Tokenise(nil, code)
	if err != nil {
		return code
	}

	var buf bytes.Buffer
	if err := formatter.Format(&buf, style, iterator); err != nil {
		return code
	}
	out := buf.String()
	// Lexers that ensure a trailing newline add one the caller did not write.
	if !strings.HasSuffix(code, "\n") && strings.HasSuffix(ansi.Strip(out), "\n") {
		if i := strings.LastIndex(out, "\n"); i >= 0 {
			out = out[:i] + out[i+1:]
		}
	}
	return out
}

// wrapText wraps text to the specified width, handling ANSI escape codes
func wrapText(text string, width int) string {
	if width <= 0 {
		return text
	}
	return ansi.Wrap(text, width, "")
}

// renderContent renders message text: fenced code blocks are highlighted,
// list items get a bullet, everything else is wrapped.
func renderContent(content string, width int) string {
	if width <= 0 {
		width = DefaultWrapWidth
	}

	var result strings.Builder
	inCode := false
	lang := ""
	var code strings.Builder

	flushCode := func() {
		result.WriteString(highlightCode(code.String(), lang))
		result.WriteString("\n")
		code.Reset()
		lang = ""
	}

	for _, line := range strings.Split(content, "\n") {
		if strings.HasPrefix(line, "```") {
			if inCode {
				inCode = false
				flushCode()
			} else {
				inCode = true
				lang = strings.TrimSpace(strings.TrimPrefix(line, "```"))
			}
			continue
		}
		if inCode {
			if code.Len() > 0 {
				code.WriteString("\n")
			}
			code.WriteString(line)
			continue
		}

		trimmed := strings.TrimSpace(line)
		if strings.HasPrefix(trimmed, "- ") || strings.HasPrefix(trimmed, "* ") {
			wrapped := wrapText(trimmed[2:], width-4)
			wrapped = strings.ReplaceAll(wrapped, "\n", "\n    ")
			result.WriteString("  • " + wrapped + "\n")
			continue
		}
		result.WriteString(wrapText(line, width))
		result.WriteString("\n")
	}
	if inCode {
		flushCode()
	}

	return strings.TrimRight(result.String(), "\n")
}
