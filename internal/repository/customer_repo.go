package repository

import (
	"context"
	"errors"
	"time"

	"salescrm/internal/domain"

	"gorm.io/gorm"
)

type CustomerRepository struct {
	db *gorm.DB
}

func NewCustomerRepository(db *gorm.DB) *CustomerRepository {
	return &CustomerRepository{db: db}
}

type customerModel struct {
	ID           int64     `gorm:"column:id;primaryKey"`
	FirstName    string    `gorm:"column:first_name"`
	LastName     string    `gorm:"column:last_name"`
	Email        string    `gorm:"column:email"`
	Phone        *string   `gorm:"column:phone"`
	CompagnyName string    `gorm:"column:compagny_name"`
	Notes        string    `gorm:"column:notes;type:text"`
	Existing     bool      `gorm:"column:existing"`
	SellerID     *int64    `gorm:"column:seller_id"`
	DateCreated  time.Time `gorm:"column:date_created"`
	DateUpdated  time.Time `gorm:"column:date_updated"`
}

func (customerModel) TableName() string { return "customers" }

func toDomainCustomer(m customerModel) *domain.Customer {
	var phone string
	if m.Phone != nil {
		phone = *m.Phone
	}

	return &domain.Customer{
		ID:           m.ID,
		FirstName:    m.FirstName,
		LastName:     m.LastName,
		Email:        m.Email,
		Phone:        phone,
		CompagnyName: m.CompagnyName,
		Notes:        m.Notes,
		Existing:     m.Existing,
		SellerID:     m.SellerID,
		DateCreated:  m.DateCreated,
		DateUpdated:  m.DateUpdated,
	}
}

func toCustomerModel(c *domain.Customer) customerModel {
	var phone *string
	if c.Phone != "" {
		v := c.Phone
		phone = &v
	}

	return customerModel{
		ID:           c.ID,
		FirstName:    c.FirstName,
		LastName:     c.LastName,
		Email:        c.Email,
		Phone:        phone,
		CompagnyName: c.CompagnyName,
		Notes:        c.Notes,
		Existing:     c.Existing,
		SellerID:     c.SellerID,
		DateCreated:  c.DateCreated,
		DateUpdated:  c.DateUpdated,
	}
}

func (r *CustomerRepository) Create(ctx context.Context, c *domain.Customer) error {
	now := time.Now()
	c.DateCreated = now
	c.DateUpdated = now

	m := toCustomerModel(c)
	tx := r.db.WithContext(ctx).Create(&m)
	if tx.Error != nil {
		return tx.Error
	}
	*c = *toDomainCustomer(m)
	return nil
}

func (r *CustomerRepository) GetByID(ctx context.Context, id int64) (*domain.Customer, error) {
	var m customerModel
	tx := r.db.WithContext(ctx).First(&m, id)
	if tx.Error != nil {
		if errors.Is(tx.Error, gorm.ErrRecordNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, tx.Error
	}
	return toDomainCustomer(m), nil
}

func (r *CustomerRepository) applyScope(q *gorm.DB, scope domain.CustomerScope) *gorm.DB {
	switch {
	case scope.All:
	case scope.SellerID != nil:
		q = q.Where("seller_id = ?", *scope.SellerID)
	case scope.SupportID != nil:
		sub := r.db.Model(&contractModel{}).
			Select("customer_id").
			Where("support_id = ?", *scope.SupportID)
		q = q.Where("id IN (?)", sub)
	default:
		q = q.Where("1 = 0")
	}
	return q
}

// GetByIDScoped fetches a single customer through the caller's scope,
// so an out-of-scope id surfaces as not-found rather than leaking the
// record.
func (r *CustomerRepository) GetByIDScoped(ctx context.Context, scope domain.CustomerScope, id int64) (*domain.Customer, error) {
	q := r.applyScope(r.db.WithContext(ctx).Model(&customerModel{}), scope)

	var m customerModel
	tx := q.Where("id = ?", id).First(&m)
	if tx.Error != nil {
		if errors.Is(tx.Error, gorm.ErrRecordNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, tx.Error
	}
	return toDomainCustomer(m), nil
}

// List returns the customers matching the resolved scope, narrowed by
// the optional filters. The zero scope matches nothing.
func (r *CustomerRepository) List(ctx context.Context, scope domain.CustomerScope, f domain.CustomerFilter) ([]domain.Customer, error) {
	q := r.applyScope(r.db.WithContext(ctx).Model(&customerModel{}), scope)

	if f.LastName != "" {
		q = q.Where("LOWER(last_name) LIKE ?", contains(f.LastName))
	}
	if f.CompagnyName != "" {
		q = q.Where("LOWER(compagny_name) LIKE ?", contains(f.CompagnyName))
	}
	if f.Email != "" {
		q = q.Where("LOWER(email) LIKE ?", contains(f.Email))
	}

	var rows []customerModel
	if err := q.Order("id").Find(&rows).Error; err != nil {
		return nil, err
	}

	customers := make([]domain.Customer, 0, len(rows))
	for _, m := range rows {
		customers = append(customers, *toDomainCustomer(m))
	}
	return customers, nil
}

func (r *CustomerRepository) Update(ctx context.Context, c *domain.Customer) error {
	c.DateUpdated = time.Now()
	m := toCustomerModel(c)
	tx := r.db.WithContext(ctx).Model(&customerModel{ID: c.ID}).Updates(map[string]any{
		"first_name":    m.FirstName,
		"last_name":     m.LastName,
		"email":         m.Email,
		"phone":         m.Phone,
		"compagny_name": m.CompagnyName,
		"notes":         m.Notes,
		"seller_id":     m.SellerID,
		"date_updated":  m.DateUpdated,
	})
	if tx.Error != nil {
		return tx.Error
	}
	if tx.RowsAffected == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *CustomerRepository) Delete(ctx context.Context, id int64) error {
	tx := r.db.WithContext(ctx).Delete(&customerModel{}, id)
	if tx.Error != nil {
		return tx.Error
	}
	if tx.RowsAffected == 0 {
		return domain.ErrNotFound
	}
	return nil
}
