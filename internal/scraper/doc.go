// Package scraper fetches the TSN Formula One broadcast page and extracts the
// rows of its schedule table.
//
// The schedule lives in the second tbody of the table inside the
// "stats-table" container. Each tr of that tbody becomes a schedule.TableRow
// holding the text of its td cells. Structural surprises (missing table, no
// rows) are reported as sentinel errors before any row is handed on.
package scraper
