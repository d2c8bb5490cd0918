package domain

// Filter specifications applied on top of an already-resolved scope.
// Empty fields are skipped; set fields combine with AND.

type CustomerFilter struct {
	LastName     string
	CompagnyName string
	Email        string
}

type ContractFilter struct {
	// LastName and CompagnyName match against the linked customer.
	LastName     string
	CompagnyName string
	// Date is a substring match against the creation timestamp.
	Date    string
	DueLow  *float64 // strictly greater than
	DueHigh *float64 // strictly less than
}

type EventFilter struct {
	// Customer fields are matched through the owning contract.
	LastName     string
	CompagnyName string
	Email        string
	// Date is a substring match against the scheduled event date.
	Date string
}
