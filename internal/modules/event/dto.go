package event

import "salescrm/internal/domain"

type UpdateEventRequest struct {
	Name      *string `json:"name"`
	Location  *string `json:"location"`
	DateEvent *string `json:"date_event"`
	Finished  *bool   `json:"finished"`
}

type ListItem struct {
	Name      string `json:"name"`
	DateEvent string `json:"date_event"`
	ID        int64  `json:"id"`
}

type Detail struct {
	Name        string `json:"name"`
	Location    string `json:"location"`
	DateCreated string `json:"date_created"`
	DateUpdated string `json:"date_updated"`
	DateEvent   string `json:"date_event"`
	Finished    bool   `json:"finished"`
	ID          int64  `json:"id"`
}

const timeLayout = "2006-01-02T15:04:05Z07:00"

func toListItem(e domain.Event) ListItem {
	return ListItem{
		Name:      e.Name,
		DateEvent: e.DateEvent.Format(timeLayout),
		ID:        e.ID,
	}
}

func toDetail(e *domain.Event) Detail {
	return Detail{
		Name:        e.Name,
		Location:    e.Location,
		DateCreated: e.DateCreated.Format(timeLayout),
		DateUpdated: e.DateUpdated.Format(timeLayout),
		DateEvent:   e.DateEvent.Format(timeLayout),
		Finished:    e.Finished,
		ID:          e.ID,
	}
}
