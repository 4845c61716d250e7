package scraper

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/PuerkitoBio/goquery"
	"github.com/pfrederiksen/f1-schedule/internal/schedule"
	"golang.org/x/net/html/charset"
)

const (
	ScheduleURL = "https://www.tsn.ca/2021-formula-one-racing-on-tsn-1.431562?tsn-amp"
	UserAgent   = "f1-schedule/1.0 (github.com/pfrederiksen/f1-schedule)"
	Timeout     = 30 * time.Second

	// TableSelector matches the tbody that follows the header tbody
	TableSelector = "div.stats-table table tbody + tbody"
)

var (
	ErrTableNotFound = errors.New("unable to find race table")
	ErrEmptyTable    = errors.New("no rows found in race table")
	ErrFetchTimeout  = errors.New("fetch timed out")
)

// FetchTimeoutError reports a fetch that hit its deadline.
type FetchTimeoutError struct {
	URL string
	Err error
}

func (e *FetchTimeoutError) Error() string {
	return fmt.Sprintf("fetching %s: %v: %v", e.URL, ErrFetchTimeout, e.Err)
}

func (e *FetchTimeoutError) Is(target error) bool {
	return target == ErrFetchTimeout
}

func (e *FetchTimeoutError) Unwrap() error {
	return e.Err
}

// Scraper fetches the schedule page
type Scraper struct {
	client *http.Client
	url    string
}

// Option configures a Scraper
type Option func(*Scraper)

// WithURL overrides the schedule page URL
func WithURL(url string) Option {
	return func(s *Scraper) {
		s.url = url
	}
}

// WithTimeout overrides the HTTP client timeout
func WithTimeout(d time.Duration) Option {
	return func(s *Scraper) {
		s.client.Timeout = d
	}
}

// New creates a new Scraper instance
func New(opts ...Option) *Scraper {
	s := &Scraper{
		client: &http.Client{
			Timeout: Timeout,
		},
		url: ScheduleURL,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// URL returns the page the scraper fetches
func (s *Scraper) URL() string {
	return s.url
}

// FetchRows downloads the schedule page and returns the rows of its race table
func (s *Scraper) FetchRows(ctx context.Context) ([]schedule.TableRow, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.url, nil)
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("User-Agent", UserAgent)

	resp, err := s.client.Do(req)
	if err != nil {
		if isTimeout(ctx, err) {
			return nil, &FetchTimeoutError{URL: s.url, Err: err}
		}
		return nil, fmt.Errorf("fetching page: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("unexpected status code: %d", resp.StatusCode)
	}

	body, err := charset.NewReader(resp.Body, resp.Header.Get("Content-Type"))
	if err != nil {
		return nil, fmt.Errorf("decoding page: %w", err)
	}

	rows, err := ParseRows(body)
	if err != nil && isTimeout(ctx, err) {
		return nil, &FetchTimeoutError{URL: s.url, Err: err}
	}
	return rows, err
}

// ParseRows extracts the race table rows from an HTML document
func ParseRows(r io.Reader) ([]schedule.TableRow, error) {
	doc, err := goquery.NewDocumentFromReader(r)
	if err != nil {
		return nil, fmt.Errorf("parsing HTML: %w", err)
	}

	table := doc.Find(TableSelector).First()
	if table.Length() == 0 {
		return nil, ErrTableNotFound
	}

	trs := table.Find("tr")
	if trs.Length() == 0 {
		return nil, ErrEmptyTable
	}

	rows := make([]schedule.TableRow, 0, trs.Length())
	trs.Each(func(_ int, tr *goquery.Selection) {
		cells := make([]string, 0, schedule.RowCells)
		tr.Find("td").Each(func(_ int, td *goquery.Selection) {
			cells = append(cells, td.Text())
		})
		rows = append(rows, schedule.TableRow{Cells: cells})
	})

	return rows, nil
}

func isTimeout(ctx context.Context, err error) bool {
	if errors.Is(err, context.DeadlineExceeded) || errors.Is(ctx.Err(), context.DeadlineExceeded) {
		return true
	}
	var te interface{ Timeout() bool }
	return errors.As(err, &te) && te.Timeout()
}
