package render

import (
	"bytes"
	"embed"
	"encoding/json"
	"fmt"
	"html/template"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/pfrederiksen/f1-schedule/internal/calendar"
	"github.com/pfrederiksen/f1-schedule/internal/schedule"
	"github.com/pfrederiksen/f1-schedule/internal/storage"
)

const (
	PageFile     = "index.html"
	RacesFile    = "races.json"
	CalendarFile = "races.ics"
)

//go:embed templates/index.html.tmpl
var templates embed.FS

var funcs = template.FuncMap{
	"trim": strings.TrimSpace,
}

// Writer persists a set of output files, all or nothing
type Writer interface {
	WriteFiles(files ...storage.File) error
}

var _ Writer = (*storage.Storage)(nil)

// Options configures a Gateway
type Options struct {
	// TemplatePath is an html/template file; empty uses the built-in page
	TemplatePath string
	// Year completes the partial event dates for the calendar feed
	Year int
	// Location is the zone session times are given in
	Location *time.Location
	// Now stamps calendar entries; defaults to time.Now
	Now func() time.Time
}

// Gateway renders and writes the site files
type Gateway struct {
	out  Writer
	tmpl *template.Template
	opts Options
}

// Documents holds the rendered files before they are written
type Documents struct {
	Page     []byte
	Races    []byte
	Calendar []byte
}

// New creates a Gateway writing through out
func New(out Writer, opts Options) (*Gateway, error) {
	tmpl, err := LoadTemplate(opts.TemplatePath)
	if err != nil {
		return nil, err
	}
	if opts.Location == nil {
		opts.Location = time.UTC
	}
	if opts.Now == nil {
		opts.Now = time.Now
	}

	return &Gateway{
		out:  out,
		tmpl: tmpl,
		opts: opts,
	}, nil
}

// LoadTemplate parses the page template at path, or the built-in one when
// path is empty
func LoadTemplate(path string) (*template.Template, error) {
	if path == "" {
		tmpl, err := template.New("index.html.tmpl").Funcs(funcs).ParseFS(templates, "templates/index.html.tmpl")
		if err != nil {
			return nil, fmt.Errorf("parsing built-in template: %w", err)
		}
		return tmpl, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading template: %w", err)
	}

	tmpl, err := template.New(filepath.Base(path)).Funcs(funcs).Parse(string(data))
	if err != nil {
		return nil, fmt.Errorf("parsing template %s: %w", path, err)
	}
	return tmpl, nil
}

// Build renders all documents without writing anything
func (g *Gateway) Build(races schedule.Schedule, next *string) (*Documents, error) {
	var nextRaceWeekend interface{}
	if next != nil {
		nextRaceWeekend = *next
	}

	var page bytes.Buffer
	err := g.tmpl.Execute(&page, map[string]interface{}{
		"races":           races,
		"nextRaceWeekend": nextRaceWeekend,
	})
	if err != nil {
		return nil, fmt.Errorf("rendering page: %w", err)
	}

	racesJSON, err := json.MarshalIndent(races, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("encoding races: %w", err)
	}

	ics, err := calendar.GenerateICS(races, g.opts.Year, g.opts.Location, g.opts.Now())
	if err != nil {
		return nil, fmt.Errorf("generating calendar: %w", err)
	}

	return &Documents{
		Page:     page.Bytes(),
		Races:    racesJSON,
		Calendar: []byte(ics),
	}, nil
}

// Render renders the page, races JSON and calendar, then writes them
func (g *Gateway) Render(races schedule.Schedule, next *string) error {
	docs, err := g.Build(races, next)
	if err != nil {
		return err
	}

	err = g.out.WriteFiles(
		storage.File{Name: PageFile, Data: docs.Page},
		storage.File{Name: RacesFile, Data: docs.Races},
		storage.File{Name: CalendarFile, Data: docs.Calendar},
	)
	if err != nil {
		return fmt.Errorf("writing site: %w", err)
	}

	return nil
}
