package chat

import "time"

// Session captures a transient anonymous conversation. History is in-memory
// only; the flat transcript file is the sole durable record.
type Session struct {
	ID        string    `json:"id"`
	CreatedAt time.Time `json:"createdAt"`
}
