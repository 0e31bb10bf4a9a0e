package planner

import (
	"strconv"
	"time"

	"github.com/google/uuid"
)

// IDGenerator produces unique session ids. Injectable so tests can use a
// deterministic sequence.
type IDGenerator func() string

// NewID returns a random UUID, falling back to a nanosecond timestamp
// string if the random source is unavailable. Never fails.
func NewID() string {
	id, err := uuid.NewRandom()
	if err != nil {
		return strconv.FormatInt(time.Now().UnixNano(), 10)
	}
	return id.String()
}
