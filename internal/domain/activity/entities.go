package activity

import "time"

// Entry is an append-only audit record. Business logic never reads entries
// back; failures while appending are swallowed by callers.
type Entry struct {
	ID          string    `json:"id"`
	Timestamp   time.Time `json:"timestamp"`
	Actor       string    `json:"actor"`
	Description string    `json:"description"`
}
