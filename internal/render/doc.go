// Package render turns the upcoming race weekends into the published site:
// an HTML page, a JSON dump of the races and an iCalendar feed.
//
// All three documents are produced in memory first and written only when
// every one of them rendered successfully.
package render
