package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/glamour/styles"
	"golang.org/x/term"
)

const defaultPreviewWidth = 80

// renderPreview renders markdown for display on w. Terminals get the
// automatic color style at the terminal's width; anything else gets plain
// ASCII at a fixed width.
func renderPreview(w io.Writer, markdown string) (string, error) {
	if markdown == "" {
		return "", nil
	}
	width := defaultPreviewWidth
	opts := []glamour.TermRendererOption{glamour.WithStyles(styles.ASCIIStyleConfig)}
	if f, ok := w.(*os.File); ok && term.IsTerminal(int(f.Fd())) {
		if cols, _, err := term.GetSize(int(f.Fd())); err == nil && cols > 0 {
			width = cols
		}
		opts = []glamour.TermRendererOption{glamour.WithAutoStyle()}
	}
	opts = append(opts, glamour.WithWordWrap(width))

	r, err := glamour.NewTermRenderer(opts...)
	if err != nil {
		return "", fmt.Errorf("create preview renderer: %w", err)
	}
	out, err := r.Render(markdown)
	if err != nil {
		return "", fmt.Errorf("render preview: %w", err)
	}
	return out, nil
}
