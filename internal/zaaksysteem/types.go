package zaaksysteem

import "github.com/google/uuid"

// envelope is the outer {"result": {...}} wrapper. It never leaves this package.
type envelope struct {
	Result *result `json:"result"`
}

type result struct {
	Instance *instance `json:"instance"`
}

// instance carries the case id on success and message/type on failure.
type instance struct {
	ID      string `json:"id"`
	Message string `json:"message"`
	Type    string `json:"type"`
}

// Case is a successfully resolved case number.
type Case struct {
	Number int
	UUID   uuid.UUID
}
