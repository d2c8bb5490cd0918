package contract

import "errors"

var (
	ErrMissingFields   = errors.New("missing fields (support, customer or seller)")
	ErrWrongRole       = errors.New("the selected user does not have the expected role")
	ErrImmutableFields = errors.New("you are trying to update unupdatable fields")
	ErrBadEventDate    = errors.New("date_event must use the DD/MM/YYYY HH:MM format")
)
