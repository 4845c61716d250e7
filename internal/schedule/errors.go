package schedule

import (
	"errors"
	"fmt"
)

var (
	// ErrMalformedRow is matched by MalformedRowError
	ErrMalformedRow = errors.New("malformed row")
	// ErrOrphanEvent is matched by OrphanEventError
	ErrOrphanEvent = errors.New("event row before any race header")
	// ErrDateParse is matched by DateParseError
	ErrDateParse = errors.New("unparseable event date")
)

// MalformedRowError reports a row without exactly RowCells cells.
type MalformedRowError struct {
	Cells int
}

func (e *MalformedRowError) Error() string {
	return fmt.Sprintf("unexpected number of columns: expected %d, got %d", RowCells, e.Cells)
}

func (e *MalformedRowError) Is(target error) bool {
	return target == ErrMalformedRow
}

// OrphanEventError reports an event row that appears before any header row.
type OrphanEventError struct {
	Row int
}

func (e *OrphanEventError) Error() string {
	return fmt.Sprintf("row %d: %v", e.Row, ErrOrphanEvent)
}

func (e *OrphanEventError) Is(target error) bool {
	return target == ErrOrphanEvent
}

// DateParseError reports a date that cannot be completed into a calendar day.
type DateParseError struct {
	Text string
	Year int
	Err  error
}

func (e *DateParseError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("parsing date %q with year %d: %v", e.Text, e.Year, e.Err)
	}
	return fmt.Sprintf("parsing date %q with year %d", e.Text, e.Year)
}

func (e *DateParseError) Is(target error) bool {
	return target == ErrDateParse
}

func (e *DateParseError) Unwrap() error {
	return e.Err
}
