package domain

import "net/http"

// Entity is the resource family a policy decision applies to.
type Entity int

const (
	EntityCustomer Entity = iota
	EntityContract
	EntityEvent
)

// Action mirrors the CRUD verbs the HTTP layer maps onto handlers.
type Action int

const (
	ActionList Action = iota
	ActionRetrieve
	ActionCreate
	ActionUpdate
	ActionPartialUpdate
	ActionDelete
)

// Allow is the pure authorization predicate evaluated before any data
// access. Reads are universal; writes are role-gated per entity; every
// combination not explicitly allowed is denied.
func Allow(role Role, method string, entity Entity, action Action) bool {
	if method == http.MethodGet || action == ActionList || action == ActionRetrieve {
		return true
	}

	switch entity {
	case EntityCustomer:
		switch action {
		case ActionCreate, ActionUpdate, ActionPartialUpdate:
			return role == RoleManager || role == RoleSeller
		case ActionDelete:
			return role == RoleManager
		}

	case EntityContract:
		switch action {
		case ActionCreate, ActionUpdate, ActionPartialUpdate:
			return role == RoleManager || role == RoleSeller
		case ActionDelete:
			// Contracts are only removed through the event cascade.
			return false
		}

	case EntityEvent:
		switch action {
		case ActionCreate:
			// Event creation is the signing side effect, reserved to
			// the seller flow. Managers may not create events.
			return role == RoleSeller
		case ActionUpdate, ActionPartialUpdate:
			return role == RoleSupport || role == RoleManager
		case ActionDelete:
			return role == RoleManager
		}
	}

	return false
}
