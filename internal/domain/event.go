package domain

import "time"

type Event struct {
	ID          int64     `json:"id"`
	Name        string    `json:"name"`
	Location    string    `json:"location"`
	DateEvent   time.Time `json:"date_event"`
	Finished    bool      `json:"finished"`
	DateCreated time.Time `json:"date_created"`
	DateUpdated time.Time `json:"date_updated"`
}

// CanUpdate rejects any field update once the event is finished.
func (e *Event) CanUpdate() error {
	if e.Finished {
		return ErrEventFinished
	}
	return nil
}
