package components

import (
	"fmt"
	"strings"
	"sync"

	"github.com/charmbracelet/glamour"
	"github.com/ocluk/caolan/internal/models"
)

// DetailViewProps holds the data for the side pane
type DetailViewProps struct {
	Detail *models.Detail
	Width  int
}

// Cache Glamour renderers by width to avoid expensive re-creation
var (
	rendererCache sync.Map // map[int]*glamour.TermRenderer
)

// getRenderer returns a cached renderer for the given width
func getRenderer(width int) (*glamour.TermRenderer, error) {
	if cached, ok := rendererCache.Load(width); ok {
		return cached.(*glamour.TermRenderer), nil
	}

	renderer, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(width),
	)
	if err != nil {
		return nil, err
	}

	rendererCache.Store(width, renderer)
	return renderer, nil
}

// DetailMarkdown formats a detail as the markdown shown in the side pane
func DetailMarkdown(d *models.Detail) string {
	var b strings.Builder
	fmt.Fprintf(&b, "# %s\n\n", orPlaceholder(d.Name))
	fmt.Fprintf(&b, "- **Address:** %s\n", orPlaceholder(d.Address))
	fmt.Fprintf(&b, "- **Date of birth:** %s\n", orPlaceholder(d.DateOfBirth))
	fmt.Fprintf(&b, "- **Telephone:** %s\n", orPlaceholder(d.Telephone))
	return b.String()
}

func orPlaceholder(s string) string {
	if strings.TrimSpace(s) == "" {
		return "_(none)_"
	}
	return s
}

// RenderDetailView renders the selected record through glamour.
// Falls back to the raw markdown if rendering fails.
func RenderDetailView(props DetailViewProps) string {
	if props.Detail == nil {
		return SubtleStyle.Render("No detail selected")
	}

	markdown := DetailMarkdown(props.Detail)
	renderer, err := getRenderer(max(props.Width, 10))
	if err != nil {
		return markdown
	}
	rendered, err := renderer.Render(markdown)
	if err != nil {
		return markdown
	}
	return strings.TrimSpace(rendered)
}
