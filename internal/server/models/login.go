package models

import "time"

// LoginRecord is one append-only audit entry. At is anchored to the reading
// process's clock by the reconciler; Degraded marks records whose stored
// timestamp could not be converted and fell back to the read time.
type LoginRecord struct {
	ID       string
	Username string
	At       time.Time
	Degraded bool
}
