package repository

import (
	"context"
	"errors"
	"time"

	"salescrm/internal/domain"

	"gorm.io/gorm"
)

type EventRepository struct {
	db *gorm.DB
}

func NewEventRepository(db *gorm.DB) *EventRepository {
	return &EventRepository{db: db}
}

type eventModel struct {
	ID          int64     `gorm:"column:id;primaryKey"`
	Name        string    `gorm:"column:name"`
	Location    string    `gorm:"column:location"`
	DateEvent   time.Time `gorm:"column:date_event"`
	Finished    bool      `gorm:"column:finished"`
	DateCreated time.Time `gorm:"column:date_created"`
	DateUpdated time.Time `gorm:"column:date_updated"`
}

func (eventModel) TableName() string { return "events" }

func toDomainEvent(m eventModel) *domain.Event {
	return &domain.Event{
		ID:          m.ID,
		Name:        m.Name,
		Location:    m.Location,
		DateEvent:   m.DateEvent,
		Finished:    m.Finished,
		DateCreated: m.DateCreated,
		DateUpdated: m.DateUpdated,
	}
}

func toEventModel(e *domain.Event) eventModel {
	return eventModel{
		ID:          e.ID,
		Name:        e.Name,
		Location:    e.Location,
		DateEvent:   e.DateEvent,
		Finished:    e.Finished,
		DateCreated: e.DateCreated,
		DateUpdated: e.DateUpdated,
	}
}

func (r *EventRepository) GetByID(ctx context.Context, id int64) (*domain.Event, error) {
	var m eventModel
	tx := r.db.WithContext(ctx).First(&m, id)
	if tx.Error != nil {
		if errors.Is(tx.Error, gorm.ErrRecordNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, tx.Error
	}
	return toDomainEvent(m), nil
}

// GetByIDScoped fetches a single event through the caller's contract
// scope.
func (r *EventRepository) GetByIDScoped(ctx context.Context, scope domain.ContractScope, id int64) (*domain.Event, error) {
	sub := applyContractScope(r.db.Model(&contractModel{}).Select("event_id").Where("event_id IS NOT NULL"), scope)

	var m eventModel
	tx := r.db.WithContext(ctx).Model(&eventModel{}).
		Where("id = ? AND id IN (?)", id, sub).
		First(&m)
	if tx.Error != nil {
		if errors.Is(tx.Error, gorm.ErrRecordNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, tx.Error
	}
	return toDomainEvent(m), nil
}

// List projects the resolved contract scope onto events: an event is
// visible iff its owning contract is. Customer filters run through the
// owning contract as well.
func (r *EventRepository) List(ctx context.Context, scope domain.ContractScope, f domain.EventFilter) ([]domain.Event, error) {
	sub := r.db.Model(&contractModel{}).Select("event_id").Where("event_id IS NOT NULL")
	sub = applyContractScope(sub, scope)

	if f.LastName != "" || f.CompagnyName != "" || f.Email != "" {
		sub = sub.Joins("JOIN customers ON customers.id = contracts.customer_id")
		if f.LastName != "" {
			sub = sub.Where("LOWER(customers.last_name) LIKE ?", contains(f.LastName))
		}
		if f.CompagnyName != "" {
			sub = sub.Where("LOWER(customers.compagny_name) LIKE ?", contains(f.CompagnyName))
		}
		if f.Email != "" {
			sub = sub.Where("LOWER(customers.email) LIKE ?", contains(f.Email))
		}
	}

	q := r.db.WithContext(ctx).Model(&eventModel{}).Where("id IN (?)", sub)
	if f.Date != "" {
		q = q.Where("CAST(date_event AS TEXT) LIKE ?", "%"+f.Date+"%")
	}

	var rows []eventModel
	if err := q.Order("id").Find(&rows).Error; err != nil {
		return nil, err
	}

	events := make([]domain.Event, 0, len(rows))
	for _, m := range rows {
		events = append(events, *toDomainEvent(m))
	}
	return events, nil
}

func (r *EventRepository) Update(ctx context.Context, e *domain.Event) error {
	e.DateUpdated = time.Now()
	tx := r.db.WithContext(ctx).Model(&eventModel{ID: e.ID}).Updates(map[string]any{
		"name":         e.Name,
		"location":     e.Location,
		"date_event":   e.DateEvent,
		"finished":     e.Finished,
		"date_updated": e.DateUpdated,
	})
	if tx.Error != nil {
		return tx.Error
	}
	if tx.RowsAffected == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// DeleteCascade removes the event and its owning contract in one
// transaction. Contracts are never deleted any other way.
func (r *EventRepository) DeleteCascade(ctx context.Context, eventID int64) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		res := tx.Delete(&eventModel{}, eventID)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return domain.ErrNotFound
		}
		return tx.Where("event_id = ?", eventID).Delete(&contractModel{}).Error
	})
}
