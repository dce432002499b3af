package root

import (
	"fmt"
	"io"

	"taskroll/internal/taskstore"
	"taskroll/internal/ui"
)

func printRows(w io.Writer, rows []taskstore.Row) {
	if len(rows) == 0 {
		fmt.Fprintln(w, ui.Muted.Render("(no tasks)"))
		return
	}
	for _, row := range rows {
		dot := ui.PriorityStyle(row.Priority).Render("●")
		fmt.Fprintf(w, "%s %2d. %s\n", dot, row.Index+1, ui.RowText(row.Label, row.Selected))
	}
}
