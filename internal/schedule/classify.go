package schedule

import "strings"

// RowCells is the number of cells every schedule row carries
const RowCells = 4

// RowKind tells a header row apart from an event row
type RowKind int

const (
	RowHeader RowKind = iota
	RowEvent
)

func (k RowKind) String() string {
	switch k {
	case RowHeader:
		return "header"
	case RowEvent:
		return "event"
	default:
		return "unknown"
	}
}

// Row is a classified TableRow. City is set for headers, Event for events.
type Row struct {
	Kind  RowKind
	City  string
	Event Event
}

// Classify decides whether a row starts a new race group or adds an event to
// the current one. A blank first cell marks a header whose second cell is the
// city. Cell text is kept verbatim; only the blank check trims.
func Classify(row TableRow) (Row, error) {
	if len(row.Cells) != RowCells {
		return Row{}, &MalformedRowError{Cells: len(row.Cells)}
	}

	c := row.Cells
	if strings.TrimSpace(c[0]) == "" {
		return Row{Kind: RowHeader, City: c[1]}, nil
	}

	return Row{
		Kind: RowEvent,
		Event: Event{
			Name:    c[0],
			Date:    c[1],
			Time:    c[2],
			Network: c[3],
		},
	}, nil
}
