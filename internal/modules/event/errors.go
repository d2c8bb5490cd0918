package event

import "errors"

var ErrBadEventDate = errors.New("date_event must use the DD/MM/YYYY HH:MM format")
