package schedule

// Event is one televised session of a race weekend.
type Event struct {
	Name    string `json:"name"`
	Date    string `json:"date"`
	Time    string `json:"time"`
	Network string `json:"network"`
}

// RaceGroup holds every session at one venue in table order.
type RaceGroup struct {
	City   string  `json:"city"`
	Events []Event `json:"events"`
}

// Schedule is the season's race weekends in document order.
type Schedule []RaceGroup

// TableRow is the raw text of one table row, one entry per cell.
type TableRow struct {
	Cells []string
}

// NewTableRow creates a TableRow from cell values
func NewTableRow(cells ...string) TableRow {
	return TableRow{Cells: cells}
}

// EventCount returns the total number of events across all groups
func (s Schedule) EventCount() int {
	n := 0
	for _, g := range s {
		n += len(g.Events)
	}
	return n
}
