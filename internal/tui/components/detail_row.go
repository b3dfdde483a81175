package components

import (
	"fmt"
	"strconv"

	"github.com/charmbracelet/x/ansi"
	"github.com/ocluk/caolan/internal/models"
)

const (
	idColumnWidth    = 5
	phoneColumnWidth = 16
	columnGap        = 2
)

// DetailRowProps holds the data for one list row
type DetailRowProps struct {
	Detail   *models.Detail
	Selected bool
	Width    int
}

// nameColumnWidth returns what is left for the name once the fixed columns are placed
func nameColumnWidth(width int) int {
	return max(width-idColumnWidth-phoneColumnWidth-2*columnGap, 8)
}

func formatRow(width int, id, name, telephone string) string {
	nameWidth := nameColumnWidth(width)
	return fmt.Sprintf("%-*s%*s%-*s%*s%-*s",
		idColumnWidth, ansi.Truncate(id, idColumnWidth, ""),
		columnGap, "",
		nameWidth, ansi.Truncate(name, nameWidth, "…"),
		columnGap, "",
		phoneColumnWidth, ansi.Truncate(telephone, phoneColumnWidth, "…"),
	)
}

// RenderDetailHeader renders the column titles above the list
func RenderDetailHeader(width int) string {
	return HeaderStyle.Render(formatRow(width, "ID", "Name", "Telephone"))
}

// RenderDetailRow renders one record as a single list line
func RenderDetailRow(props DetailRowProps) string {
	d := props.Detail
	line := formatRow(props.Width, strconv.FormatInt(d.ID, 10), d.Name, d.Telephone)
	if props.Selected {
		return SelectedRowStyle.Render(line)
	}
	return RowStyle.Render(line)
}
