package domain

import "errors"

var (
	ErrNotFound        = errors.New("record not found")
	ErrAccessDenied    = errors.New("you are not authorized to perform this action")
	ErrNameFieldsEmpty = errors.New("compagny_name and last_name can't be both empty")
	ErrAlreadySigned   = errors.New("this contract is already signed")
	ErrEventFinished   = errors.New("can't update a finished event")
	// ErrManagerNoRecords covers the user-nested contexts: a manager
	// owns no customers, contracts or events.
	ErrManagerNoRecords = errors.New("this user is a manager, therefore he is in charge of no record")
)
