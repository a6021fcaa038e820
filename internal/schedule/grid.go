package schedule

// Entry is one stored timetable row in grid terms. Period is 1-based.
type Entry struct {
	Day     string
	Period  int
	Subject string
	Teacher string
}

// Grid is one class's week: a row of PeriodsPerDay cells for each weekday.
type Grid map[string][]Cell

// NewGrid returns a grid with an empty row for every weekday.
func NewGrid() Grid {
	g := make(Grid, len(Weekdays))
	for _, d := range Weekdays {
		g[d] = make([]Cell, PeriodsPerDay)
	}
	return g
}

// BuildGrid places entries into a fresh grid. Entries with an unknown day or
// an out-of-range period are dropped rather than failing the whole grid; the
// generator output is stored verbatim and may be ragged.
func BuildGrid(entries []Entry) Grid {
	g := NewGrid()
	for _, e := range entries {
		row, ok := g[e.Day]
		if !ok || e.Period < 1 || e.Period > PeriodsPerDay {
			continue
		}
		row[e.Period-1] = Cell{Subject: e.Subject, Teacher: e.Teacher}
	}
	return g
}

// Entries flattens the grid back to 1-based rows. Every position is emitted,
// free periods included, so replacing a class rewrites its full week.
func (g Grid) Entries() []Entry {
	entries := make([]Entry, 0, len(Weekdays)*PeriodsPerDay)
	for _, day := range Weekdays {
		row := g[day]
		for i := 0; i < PeriodsPerDay; i++ {
			var c Cell
			if i < len(row) {
				c = row[i]
			}
			entries = append(entries, Entry{
				Day:     day,
				Period:  i + 1,
				Subject: c.Subject,
				Teacher: c.Teacher,
			})
		}
	}
	return entries
}
