package model

import "time"

// Event is a catalog entity with a location and a scheduled date/time.
type Event struct {
	ID          uint64    `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	Location    string    `json:"location"`
	DateTime    time.Time `json:"dateTime"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

// EventImage is the metadata row for a stored event image file. Events carry
// no main-image flag.
type EventImage struct {
	ID        uint64    `json:"id"`
	EventID   uint64    `json:"eventId"`
	ImageURL  string    `json:"imageUrl"`
	FileName  string    `json:"fileName"`
	FileSize  int64     `json:"fileSize"`
	FileType  string    `json:"fileType"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}
