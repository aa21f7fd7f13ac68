package cli

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/fatih/color"
	"github.com/jedib0t/go-pretty/v6/table"

	"github.com/riskibarqy/football-stats/internal/domain/match"
)

const displayDateLayout = "Mon 02 Jan 2006"

type palette struct {
	win   *color.Color
	draw  *color.Color
	loss  *color.Color
	title *color.Color
	prize *color.Color
	drop  *color.Color
}

func newPalette(enabled bool) palette {
	p := palette{
		win:   color.New(color.FgGreen),
		draw:  color.New(color.FgYellow),
		loss:  color.New(color.FgRed),
		title: color.New(color.Bold),
		prize: color.New(color.FgCyan),
		drop:  color.New(color.FgMagenta),
	}
	if !enabled {
		for _, c := range []*color.Color{p.win, p.draw, p.loss, p.title, p.prize, p.drop} {
			c.DisableColor()
		}
	}
	return p
}

// form colours each W/D/L letter; placeholders for unplayed slots stay plain.
func (p palette) form(value string) string {
	var b strings.Builder
	for _, r := range value {
		switch r {
		case 'W':
			b.WriteString(p.win.Sprint("W"))
		case 'D':
			b.WriteString(p.draw.Sprint("D"))
		case 'L':
			b.WriteString(p.loss.Sprint("L"))
		default:
			b.WriteRune(r)
		}
	}
	return b.String()
}

// zone marks a team name by the zone it sits in: positive ids are prize
// zones, negative ids relegation zones.
func (p palette) zone(team string, zone int) string {
	switch {
	case zone > 0:
		return p.prize.Sprint(team)
	case zone < 0:
		return p.drop.Sprint(team)
	default:
		return team
	}
}

func newTable(title string) table.Writer {
	tbl := table.NewWriter()
	tbl.SetStyle(table.StyleLight)
	if title != "" {
		tbl.SetTitle(title)
	}
	return tbl
}

func render(w io.Writer, tbl table.Writer) {
	fmt.Fprintln(w, tbl.Render())
}

// attendance renders a crowd figure with thousands separators; unknown
// crowds print as a dash.
func attendance(value int) string {
	if value <= 0 {
		return "-"
	}
	return humanize.Comma(int64(value))
}

func signed(value int) string {
	if value > 0 {
		return fmt.Sprintf("+%d", value)
	}
	return fmt.Sprintf("%d", value)
}

func displayDate(t time.Time) string {
	if t.IsZero() {
		return "-"
	}
	return t.Format(displayDateLayout)
}

func score(r match.Result) string {
	return fmt.Sprintf("%d-%d", r.HomeGoals, r.AwayGoals)
}

// resultsTable lists matches as date, fixture, score and crowd.
func resultsTable(title string, results []match.Result) table.Writer {
	tbl := newTable(title)
	tbl.AppendHeader(table.Row{"Date", "Home", "Score", "Away", "Attendance"})
	for _, r := range results {
		tbl.AppendRow(table.Row{displayDate(r.Date), r.HomeTeam, score(r), r.AwayTeam, attendanceOf(r)})
	}
	tbl.AppendFooter(table.Row{fmt.Sprintf("%d matches", len(results))})
	return tbl
}

func attendanceOf(r match.Result) string {
	if !r.HasAttendance() {
		return "-"
	}
	return attendance(r.Attendance)
}
