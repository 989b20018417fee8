package formatter

import (
	"fmt"
	"time"

	"github.com/alexanderramin/juju/internal/domain"
)

// ProjectListData is everything the project list needs besides the projects.
type ProjectListData struct {
	Projects   []*domain.Project
	SelectedID string
	LastActive map[string]time.Time
	Minutes    map[string]int
	Now        time.Time
}

// FormatProjectList renders projects in the given order, marking the selected
// one and archived ones.
func FormatProjectList(d ProjectListData) string {
	rows := make([][]string, 0, len(d.Projects))
	for _, p := range d.Projects {
		marker := " "
		if p.ID == d.SelectedID {
			marker = StyleHeader.Render("▸")
		}
		name := ProjectSwatch(p.Color) + " " + p.Name
		if p.Archived {
			name = Dim(p.Name + " (archived)")
		}
		last := Dim("never")
		if t, ok := d.LastActive[p.ID]; ok {
			last = HumanDate(t, d.Now)
		}
		rows = append(rows, []string{
			marker,
			TruncID(p.ID),
			name,
			fmt.Sprintf("%d", p.Order),
			FormatMinutes(d.Minutes[p.ID]),
			last,
		})
	}
	return RenderTable([]string{"", "ID", "NAME", "ORDER", "TOTAL", "LAST"}, rows)
}
