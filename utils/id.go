package utils

import (
	"strconv"
	"time"
)

// NewID returns a wall-clock derived identifier, the same scheme the demo
// dataset uses for its ids. Known weakness: not collision-resistant under
// concurrent creation.
func NewID() string {
	return strconv.FormatInt(time.Now().UnixNano(), 10)
}
