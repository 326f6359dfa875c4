package holiday

import "errors"

var (
	ErrEventNotFound  = errors.New("calendar event not found")
	ErrDuplicateEvent = errors.New("calendar event already exists for this date")
)
