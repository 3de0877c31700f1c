// Package memory holds map-backed repositories used by tests and by
// deployments that run without Postgres.
package memory

import "time"

func nowUTC() time.Time {
	return time.Now().UTC()
}

func paginate[T any](items []T, limit, skip int) []T {
	if skip > 0 {
		if skip >= len(items) {
			return []T{}
		}
		items = items[skip:]
	}
	if limit > 0 && limit < len(items) {
		items = items[:limit]
	}

	return items
}
