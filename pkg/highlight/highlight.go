// Package highlight turns chroma tokens into tview colour tags.
package highlight

import (
	"strings"

	"github.com/alecthomas/chroma/v2"
	"github.com/alecthomas/chroma/v2/lexers"
	"github.com/alecthomas/chroma/v2/styles"
	"github.com/rivo/tview"
)

const styleName = "dracula"

var getStyle = styles.Get

var getFallbackStyle = func() *chroma.Style {
	return styles.Fallback
}

// ForFileName colorizes text with a lexer matched by file name. Without a
// matching lexer the text is returned escaped but otherwise untouched.
func ForFileName(name, text string) (string, error) {
	lexer := lexers.Match(name)
	if lexer == nil {
		return tview.Escape(text), nil
	}
	return Colorize(text, lexer)
}

// Colorize emits the text as tview dynamic-colour markup.
func Colorize(text string, lexer chroma.Lexer) (string, error) {
	iterator, err := lexer.Tokenise(nil, text)
	if err != nil {
		return "", err
	}

	style := getStyle(styleName)
	if style == nil {
		style = getFallbackStyle()
	}

	var sb strings.Builder
	for _, token := range iterator.Tokens() {
		color := style.Get(token.Type)
		value := tview.Escape(token.Value)
		if color.IsZero() {
			sb.WriteString(value)
			continue
		}
		sb.WriteString("[" + color.Colour.String() + "]")
		sb.WriteString(value)
		sb.WriteString("[-]")
	}

	return sb.String(), nil
}
