package schedule

import "fmt"

// Build groups rows into race weekends in input order. Every event row must
// follow a header row; the last open group is flushed after the loop.
func Build(rows []TableRow) (Schedule, error) {
	races := make(Schedule, 0)

	var current *RaceGroup
	for i, raw := range rows {
		row, err := Classify(raw)
		if err != nil {
			return nil, fmt.Errorf("row %d: %w", i, err)
		}

		switch row.Kind {
		case RowHeader:
			if current != nil {
				races = append(races, *current)
			}
			current = &RaceGroup{City: row.City, Events: []Event{}}
		case RowEvent:
			if current == nil {
				return nil, &OrphanEventError{Row: i}
			}
			current.Events = append(current.Events, row.Event)
		}
	}

	if current != nil {
		races = append(races, *current)
	}

	return races, nil
}
