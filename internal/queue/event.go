// Package queue defines message payloads exchanged over the message broker
// and the background consumer that turns them into an audit trail.
package queue

// Image event actions.
const (
	ActionUploaded = "uploaded"
	ActionDeleted  = "deleted"
)

// ImageEvent is published whenever an image upload or delete completes. It
// carries enough information for downstream consumers to log or trigger
// processing without querying the primary database.
type ImageEvent struct {
	EventID    string `json:"event_id"`
	Action     string `json:"action"`
	Folder     string `json:"folder"`
	EntityID   uint64 `json:"entity_id"`
	ImageID    uint64 `json:"image_id"`
	FileName   string `json:"file_name"`
	ImageURL   string `json:"image_url"`
	FileSize   int64  `json:"file_size"`
	OccurredAt string `json:"occurred_at"`
}
