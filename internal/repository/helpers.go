package repository

import (
	"strings"

	"salescrm/internal/domain"

	"gorm.io/gorm"
)

// contains builds a case-insensitive substring pattern for LIKE.
func contains(v string) string {
	return "%" + strings.ToLower(v) + "%"
}

// applyContractScope translates a resolved contract scope into WHERE
// clauses on the contracts table. Event listings reuse it through a
// subquery. The zero scope matches nothing.
func applyContractScope(q *gorm.DB, scope domain.ContractScope) *gorm.DB {
	if scope.All {
		return q
	}

	matched := false
	if scope.CustomerID != nil {
		q = q.Where("customer_id = ?", *scope.CustomerID)
		matched = true
	}
	if scope.SellerID != nil {
		q = q.Where("seller_id = ?", *scope.SellerID)
		matched = true
	}
	if scope.SupportID != nil {
		q = q.Where("support_id = ?", *scope.SupportID)
		matched = true
	}
	if scope.ActorID != nil {
		q = q.Where("(seller_id = ? OR support_id = ?)", *scope.ActorID, *scope.ActorID)
		matched = true
	}
	if !matched {
		q = q.Where("1 = 0")
	}
	return q
}
