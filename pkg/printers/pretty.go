package printers

import (
	"fmt"
	"strings"
	"time"

	"github.com/fatih/color"
	"github.com/gosuri/uitable"

	"tableflip.dev/pumpdesk/pkg/glyph"
	"tableflip.dev/pumpdesk/pkg/workitem"
)

// PrettyPrint renders task and duty lists as terminal tables.
type PrettyPrint struct {
	ShowID bool

	// Products and Guns resolve ids to display names when set.
	Products map[string]string
	Guns     map[string]string

	// Now is the clock used for overdue marking; time.Now when nil.
	Now func() time.Time
}

var spacing = strings.Repeat(" ", len("171dff69f8b99dca  "))

func (pp *PrettyPrint) now() time.Time {
	if pp.Now != nil {
		return pp.Now()
	}
	return time.Now()
}

func (pp *PrettyPrint) NewLine() {
	fmt.Println("")
}

func (pp *PrettyPrint) Title(title string) {
	t := color.New(color.Bold, color.Underline)

	if pp.ShowID {
		_, _ = t.Print(spacing)
	}
	_, _ = t.Println(title)
}

// TitleWithPage renders a list title with its page position.
func (pp *PrettyPrint) TitleWithPage(title string, pageIndex, totalPages, count int) {
	t := color.New(color.Bold, color.Underline)
	c := color.New(color.Faint)

	if pp.ShowID {
		_, _ = t.Print(spacing)
	}
	_, _ = t.Print(title)
	_, _ = c.Printf(" - page %d/%d", pageIndex+1, totalPages)

	switch count {
	case 1:
		_, _ = c.Println(" - 1 item")
	default:
		_, _ = c.Printf(" - %d items\n", count)
	}
}

// Tasks renders a page of tasks. Overdue rows get a red marker next to the
// due date.
func (pp *PrettyPrint) Tasks(tasks ...*workitem.Task) {
	if len(tasks) == 0 {
		pp.none()
		return
	}

	now := pp.now()
	red := color.New(color.FgRed, color.Bold)

	tbl := uitable.New()
	tbl.Separator = "  "
	for _, t := range tasks {
		due := t.DueDate.String()
		if t.Overdue(now) {
			due = red.Sprintf("%s %s", due, glyph.Overdue)
		}
		row := []interface{}{
			glyph.ForStatus(string(t.Status)).String(),
			t.Title,
			string(t.Priority),
			t.AssignedTo,
			t.Shift,
			due,
		}
		if pp.ShowID {
			row = append([]interface{}{t.ID}, row...)
		}
		tbl.AddRow(row...)
	}
	_, _ = fmt.Fprintln(color.Output, tbl)
}

// Duties renders a page of daily duties with their pump assignments.
func (pp *PrettyPrint) Duties(duties ...*workitem.DailyDuty) {
	if len(duties) == 0 {
		pp.none()
		return
	}

	tbl := uitable.New()
	tbl.Separator = "  "
	for _, d := range duties {
		row := []interface{}{
			glyph.ForStatus(d.StatusLabel()).String(),
			d.DutyDate.String(),
			d.EmployeeID,
			fmt.Sprintf("%s-%s", d.ShiftStart, d.ShiftEnd),
			d.TotalHours + "h",
			pp.assignments(d),
		}
		if pp.ShowID {
			row = append([]interface{}{d.ID}, row...)
		}
		tbl.AddRow(row...)
	}
	_, _ = fmt.Fprintln(color.Output, tbl)
}

func (pp *PrettyPrint) assignments(d *workitem.DailyDuty) string {
	parts := make([]string, 0, len(d.Assignments))
	for _, a := range d.Assignments {
		product := a.ProductID
		if name, ok := pp.Products[a.ProductID]; ok {
			product = name
		}
		gun := a.GunID
		if label, ok := pp.Guns[a.GunID]; ok {
			gun = label
		}
		parts = append(parts, fmt.Sprintf("%s@%s", product, gun))
	}
	return strings.Join(parts, ", ")
}

func (pp *PrettyPrint) none() {
	f := color.New(color.Faint, color.Italic)
	if pp.ShowID {
		_, _ = f.Print(spacing)
	}
	_, _ = f.Print(" none\n\n")
}
