package components

import (
	"strings"
	"sync"

	"github.com/charmbracelet/glamour"
)

var (
	mdMu        sync.Mutex
	mdRenderers = map[int]*glamour.TermRenderer{}
)

// RenderMarkdown renders md word-wrapped to width. On renderer failure the
// source is returned unchanged.
func RenderMarkdown(md string, width int) string {
	if width < 10 {
		width = 10
	}

	mdMu.Lock()
	defer mdMu.Unlock()

	r, ok := mdRenderers[width]
	if !ok {
		var err error
		r, err = glamour.NewTermRenderer(
			glamour.WithAutoStyle(),
			glamour.WithWordWrap(width),
		)
		if err != nil {
			return md
		}
		mdRenderers[width] = r
	}

	out, err := r.Render(md)
	if err != nil {
		return md
	}
	return strings.Trim(out, "\n")
}
