package schedule

import (
	"time"

	"github.com/mergestat/timediff"
)

// RelativeLabel renders the distance from "from" to "to" the way day.js
// fromNow does: "in 3 days", "a month ago", "in a few seconds".
func RelativeLabel(from, to time.Time) string {
	return timediff.TimeDiff(to, timediff.WithStartTime(from))
}
