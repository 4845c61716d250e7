// Package cli implements the command-line interface for f1-schedule.
//
// The cli package provides the Cobra root command. A run fetches the schedule
// table, groups it into race weekends, keeps the ones that are not over yet
// and either writes the site (index.html, races.json, races.ics) or, with
// --dry-run, prints the result as text or JSON. Every flag can also be set
// through an F1_SCHEDULE_* environment variable.
package cli
