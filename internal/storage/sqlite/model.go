package sqlite

import "time"

// Item is one row of the local_storage table
type Item struct {
	Key       string
	Value     string
	UpdatedAt time.Time
}
