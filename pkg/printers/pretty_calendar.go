package printers

import (
	"fmt"
	"strings"
	"time"

	"github.com/fatih/color"

	"tableflip.dev/pumpdesk/pkg/workitem"
)

// Calendar prints a month grid with days that carry duties in bold.
func (pp *PrettyPrint) Calendar(on time.Time, duties ...*workitem.DailyDuty) {
	then := time.Date(on.Year(), on.Month(), 1, 1, 0, 0, 0, time.Local)
	pp.PrintMonth(then, duties...)
}

const width = len("11 12 13 14 15 16 17") // an example week

func (pp *PrettyPrint) PrintMonth(then time.Time, duties ...*workitem.DailyDuty) {
	days := DaysIn(then)

	count := make([]int, days)
	for _, d := range duties {
		day, err := d.DutyDate.Day()
		if err != nil {
			continue
		}
		if day.Month() == then.Month() && day.Year() == then.Year() {
			count[day.Day()-1]++
		}
	}

	pp.PrintMonthCount(then, count)
}

func (pp *PrettyPrint) PrintMonthCount(then time.Time, count []int) {
	d := StartDay(then)

	tf := color.New(color.FgWhite, color.Italic)

	m := then.Month().String()
	mid := (width - len(m)) / 2
	tf.Printf("%s%s%s\n", strings.Repeat(" ", mid), m, strings.Repeat(" ", width-mid-len(m)))

	days := DaysIn(then)

	// Pad out the start of the month.
	for i := time.Sunday; i < d; i++ {
		fmt.Print("   ")
	}

	l1 := color.New(color.Faint, color.FgWhite)
	l2 := color.New(color.Bold, color.FgHiWhite)

	for i := 0; i < days; i++ {
		if i < len(count) && count[i] > 0 {
			l2.Printf("%2d ", i+1)
		} else {
			l1.Printf("%2d ", i+1)
		}

		d++
		if d > time.Saturday {
			d = time.Sunday
			fmt.Print("\n")
		}
	}
	fmt.Print("\n\n")
}

func DaysIn(then time.Time) int {
	return time.Date(then.Local().Year(), then.Local().Month()+1, 0, 0, 0, 0, 0, time.Local).Day()
}

func StartDay(then time.Time) time.Weekday {
	return time.Date(then.Local().Year(), then.Local().Month(), 1, 1, 0, 0, 0, time.Local).Weekday()
}
