package domain

// PathContextKind tells the scope resolver which URL nesting the
// request came through. It is fixed at route registration and passed
// down explicitly, never re-derived from the raw path inside business
// logic.
type PathContextKind int

const (
	ScopeTopLevel PathContextKind = iota
	ScopeUnderUser
	ScopeUnderCustomer
)

type PathContext struct {
	Kind       PathContextKind
	UserID     int64
	CustomerID int64
}

func TopLevel() PathContext              { return PathContext{Kind: ScopeTopLevel} }
func UnderUser(userID int64) PathContext { return PathContext{Kind: ScopeUnderUser, UserID: userID} }
func UnderCustomer(customerID int64) PathContext {
	return PathContext{Kind: ScopeUnderCustomer, CustomerID: customerID}
}

// CustomerScope is an immutable query specification for the set of
// customers a request may read. The zero value matches nothing.
type CustomerScope struct {
	All       bool
	SellerID  *int64
	SupportID *int64 // customers reached through contracts where support = x
}

// ContractScope is the contract counterpart. Event listings project
// through it: an event is visible iff its owning contract is. All set
// pointers are combined with AND; ActorID matches contracts where the
// user is either seller or support.
type ContractScope struct {
	All        bool
	CustomerID *int64
	SellerID   *int64
	SupportID  *int64
	ActorID    *int64
}

// CustomerScopeFor resolves the top-level /customers visibility.
func CustomerScopeFor(p Principal) CustomerScope {
	switch p.Role {
	case RoleManager:
		return CustomerScope{All: true}
	case RoleSeller:
		id := p.ID
		return CustomerScope{SellerID: &id}
	case RoleSupport:
		id := p.ID
		return CustomerScope{SupportID: &id}
	}
	return CustomerScope{}
}

// CustomerScopeOfUser resolves /users/:user_id/customers for an
// already-fetched target user. Callers must have verified that the
// requester is a manager; managers themselves own no customers.
func CustomerScopeOfUser(target *User) (CustomerScope, error) {
	switch target.Role {
	case RoleManager:
		return CustomerScope{}, ErrManagerNoRecords
	case RoleSeller:
		id := target.ID
		return CustomerScope{SellerID: &id}, nil
	case RoleSupport:
		id := target.ID
		return CustomerScope{SupportID: &id}, nil
	}
	return CustomerScope{}, ErrNotFound
}

// ContractScopeFor resolves top-level /contracts and /events.
func ContractScopeFor(p Principal) ContractScope {
	if p.IsManager() {
		return ContractScope{All: true}
	}
	id := p.ID
	return ContractScope{ActorID: &id}
}

// ContractScopeOfUser resolves /users/:user_id/contracts and
// /users/:user_id/events.
func ContractScopeOfUser(target *User) (ContractScope, error) {
	if target.Role == RoleManager {
		return ContractScope{}, ErrManagerNoRecords
	}
	id := target.ID
	return ContractScope{ActorID: &id}, nil
}

// ContractScopeOfCustomer resolves /customers/:customer_id/contracts.
func ContractScopeOfCustomer(p Principal, customerID int64) ContractScope {
	if p.IsManager() {
		return ContractScope{CustomerID: &customerID}
	}
	actor := p.ID
	return ContractScope{CustomerID: &customerID, ActorID: &actor}
}

// EventScopeOfCustomer resolves /customers/:customer_id/events. Unlike
// the contract listing, the non-manager branch splits by role: a seller
// sees events of contracts they sold for that customer, a support user
// the ones they are in charge of.
func EventScopeOfCustomer(p Principal, customerID int64) ContractScope {
	switch p.Role {
	case RoleManager:
		return ContractScope{CustomerID: &customerID}
	case RoleSeller:
		id := p.ID
		return ContractScope{CustomerID: &customerID, SellerID: &id}
	case RoleSupport:
		id := p.ID
		return ContractScope{CustomerID: &customerID, SupportID: &id}
	}
	return ContractScope{}
}
