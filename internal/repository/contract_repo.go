package repository

import (
	"context"
	"errors"
	"time"

	"salescrm/internal/domain"

	"gorm.io/gorm"
)

type ContractRepository struct {
	db *gorm.DB
}

func NewContractRepository(db *gorm.DB) *ContractRepository {
	return &ContractRepository{db: db}
}

type contractModel struct {
	ID          int64      `gorm:"column:id;primaryKey"`
	CustomerID  int64      `gorm:"column:customer_id"`
	SellerID    *int64     `gorm:"column:seller_id"`
	SupportID   *int64     `gorm:"column:support_id"`
	EventID     *int64     `gorm:"column:event_id;uniqueIndex"`
	Due         float64    `gorm:"column:due"`
	Signed      bool       `gorm:"column:signed"`
	DateSigned  *time.Time `gorm:"column:date_signed"`
	Payed       bool       `gorm:"column:payed"`
	DateCreated time.Time  `gorm:"column:date_created"`
	DateUpdated time.Time  `gorm:"column:date_updated"`
}

func (contractModel) TableName() string { return "contracts" }

func toDomainContract(m contractModel) *domain.Contract {
	return &domain.Contract{
		ID:          m.ID,
		CustomerID:  m.CustomerID,
		SellerID:    m.SellerID,
		SupportID:   m.SupportID,
		EventID:     m.EventID,
		Due:         m.Due,
		Signed:      m.Signed,
		DateSigned:  m.DateSigned,
		Payed:       m.Payed,
		DateCreated: m.DateCreated,
		DateUpdated: m.DateUpdated,
	}
}

func toContractModel(c *domain.Contract) contractModel {
	return contractModel{
		ID:          c.ID,
		CustomerID:  c.CustomerID,
		SellerID:    c.SellerID,
		SupportID:   c.SupportID,
		EventID:     c.EventID,
		Due:         c.Due,
		Signed:      c.Signed,
		DateSigned:  c.DateSigned,
		Payed:       c.Payed,
		DateCreated: c.DateCreated,
		DateUpdated: c.DateUpdated,
	}
}

// Create persists the contract and promotes the customer's existing
// flag in the same transaction, so a reader never sees a contract
// against a not-yet-existing customer.
func (r *ContractRepository) Create(ctx context.Context, c *domain.Contract) error {
	now := time.Now()
	c.DateCreated = now
	c.DateUpdated = now

	m := toContractModel(c)
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&m).Error; err != nil {
			return err
		}
		return tx.Model(&customerModel{}).
			Where("id = ? AND existing = ?", m.CustomerID, false).
			Updates(map[string]any{"existing": true, "date_updated": now}).Error
	})
	if err != nil {
		return err
	}
	*c = *toDomainContract(m)
	return nil
}

// GetByIDScoped fetches a single contract through the caller's scope.
func (r *ContractRepository) GetByIDScoped(ctx context.Context, scope domain.ContractScope, id int64) (*domain.Contract, error) {
	q := applyContractScope(r.db.WithContext(ctx).Model(&contractModel{}), scope)

	var m contractModel
	tx := q.Where("id = ?", id).First(&m)
	if tx.Error != nil {
		if errors.Is(tx.Error, gorm.ErrRecordNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, tx.Error
	}
	return toDomainContract(m), nil
}

func (r *ContractRepository) List(ctx context.Context, scope domain.ContractScope, f domain.ContractFilter) ([]domain.Contract, error) {
	q := r.db.WithContext(ctx).Model(&contractModel{})
	q = applyContractScope(q, scope)

	if f.LastName != "" || f.CompagnyName != "" {
		q = q.Joins("JOIN customers ON customers.id = contracts.customer_id")
		if f.LastName != "" {
			q = q.Where("LOWER(customers.last_name) LIKE ?", contains(f.LastName))
		}
		if f.CompagnyName != "" {
			q = q.Where("LOWER(customers.compagny_name) LIKE ?", contains(f.CompagnyName))
		}
	}
	if f.Date != "" {
		q = q.Where("CAST(contracts.date_created AS TEXT) LIKE ?", "%"+f.Date+"%")
	}
	if f.DueLow != nil {
		q = q.Where("contracts.due > ?", *f.DueLow)
	}
	if f.DueHigh != nil {
		q = q.Where("contracts.due < ?", *f.DueHigh)
	}

	var rows []contractModel
	if err := q.Order("contracts.id").Find(&rows).Error; err != nil {
		return nil, err
	}

	contracts := make([]domain.Contract, 0, len(rows))
	for _, m := range rows {
		contracts = append(contracts, *toDomainContract(m))
	}
	return contracts, nil
}

func (r *ContractRepository) Update(ctx context.Context, c *domain.Contract) error {
	c.DateUpdated = time.Now()
	tx := r.db.WithContext(ctx).Model(&contractModel{ID: c.ID}).Updates(map[string]any{
		"customer_id":  c.CustomerID,
		"support_id":   c.SupportID,
		"due":          c.Due,
		"payed":        c.Payed,
		"date_updated": c.DateUpdated,
	})
	if tx.Error != nil {
		return tx.Error
	}
	if tx.RowsAffected == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// Sign runs the signing transition as one atomic unit: it creates the
// event, links it and flips the signed flag. The guarded UPDATE keeps
// a concurrent second sign from slipping through between the read and
// the write.
func (r *ContractRepository) Sign(ctx context.Context, contractID int64, e *domain.Event) (*domain.Contract, error) {
	now := time.Now()
	e.Finished = false
	e.DateCreated = now
	e.DateUpdated = now

	em := toEventModel(e)
	var signed contractModel

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&em).Error; err != nil {
			return err
		}

		res := tx.Model(&contractModel{}).
			Where("id = ? AND signed = ?", contractID, false).
			Updates(map[string]any{
				"event_id":     em.ID,
				"signed":       true,
				"date_signed":  now,
				"date_updated": now,
			})
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return domain.ErrAlreadySigned
		}

		return tx.First(&signed, contractID).Error
	})
	if err != nil {
		return nil, err
	}

	*e = *toDomainEvent(em)
	return toDomainContract(signed), nil
}
