// Package highlighter renders buffer lines with chroma syntax colors.
// It hands out one lipgloss style per rune so the game can overlay sprites
// cell by cell.
package highlighter

import (
	"strings"
	"sync"

	"github.com/alecthomas/chroma/v2"
	"github.com/alecthomas/chroma/v2/lexers"
	"github.com/alecthomas/chroma/v2/styles"
	"github.com/charmbracelet/lipgloss"
)

// Highlighter tokenizes a buffer once per round and serves per-rune styles.
type Highlighter struct {
	lexer chroma.Lexer
	style *chroma.Style

	mu         sync.RWMutex
	lineTokens map[int][]chroma.Token
	styleCache map[chroma.TokenType]lipgloss.Style
}

// New creates a highlighter for the given chroma language and style theme.
// Unknown names fall back to plain text and chroma's default style.
func New(language, theme string) *Highlighter {
	lexer := lexers.Get(language)
	if lexer == nil {
		lexer = lexers.Fallback
	}

	return &Highlighter{
		lexer:      chroma.Coalesce(lexer),
		style:      styles.Get(theme),
		lineTokens: make(map[int][]chroma.Token),
		styleCache: make(map[chroma.TokenType]lipgloss.Style),
	}
}

// SetContent tokenizes the buffer and replaces the line cache. Buffers are
// immutable for a round, so this runs once per round.
func (h *Highlighter) SetContent(lines []string) {
	h.mu.Lock()
	defer h.mu.Unlock()

	h.lineTokens = make(map[int][]chroma.Token, len(lines))

	content := strings.Join(lines, "\n")
	if content == "" {
		return
	}

	iterator, err := h.lexer.Tokenise(nil, content)
	if err != nil {
		return
	}

	// Chroma tokens can span lines; split them so each cache entry holds
	// exactly one line's worth.
	row := 0
	h.lineTokens[row] = nil
	for _, token := range iterator.Tokens() {
		value := token.Value
		for strings.Contains(value, "\n") {
			before, after, _ := strings.Cut(value, "\n")
			if before != "" {
				h.lineTokens[row] = append(h.lineTokens[row], chroma.Token{Type: token.Type, Value: before})
			}
			row++
			h.lineTokens[row] = nil
			value = after
		}
		if value != "" {
			h.lineTokens[row] = append(h.lineTokens[row], chroma.Token{Type: token.Type, Value: value})
		}
	}
}

// LineStyles returns one style per rune of the given line. Columns past the
// tokenized width get the zero style.
func (h *Highlighter) LineStyles(row, width int) []lipgloss.Style {
	h.mu.RLock()
	tokens := h.lineTokens[row]
	h.mu.RUnlock()

	out := make([]lipgloss.Style, width)
	col := 0
	for _, token := range tokens {
		style := h.styleFor(token.Type)
		for range token.Value {
			if col >= width {
				return out
			}
			out[col] = style
			col++
		}
	}
	return out
}

// styleFor converts a chroma token type to a lipgloss style, cached.
func (h *Highlighter) styleFor(tokenType chroma.TokenType) lipgloss.Style {
	h.mu.RLock()
	style, ok := h.styleCache[tokenType]
	h.mu.RUnlock()
	if ok {
		return style
	}

	entry := h.style.Get(tokenType)

	style = lipgloss.NewStyle()
	if entry.Colour.IsSet() {
		style = style.Foreground(lipgloss.Color(entry.Colour.String()))
	}
	if entry.Bold == chroma.Yes {
		style = style.Bold(true)
	}
	if entry.Italic == chroma.Yes {
		style = style.Italic(true)
	}
	if entry.Underline == chroma.Yes {
		style = style.Underline(true)
	}

	h.mu.Lock()
	h.styleCache[tokenType] = style
	h.mu.Unlock()

	return style
}
