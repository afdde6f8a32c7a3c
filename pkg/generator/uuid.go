package generator

import "github.com/google/uuid"

// UUID returns a time-ordered (v7) identifier. It is stamped on outbound
// requests as X-Request-Id so attempts can be correlated in debug logs.
func UUID() string {
	newUUID, err := uuid.NewV7()
	if err != nil {
		return uuid.NewString()
	}
	return newUUID.String()
}
