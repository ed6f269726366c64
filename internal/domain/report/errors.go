package report

import "errors"

// ErrNoDataForDate indicates a daily report request for a past (or
// future) day with neither an archive record nor live data.
var ErrNoDataForDate = errors.New("no data for date")
