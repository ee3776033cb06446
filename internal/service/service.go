// Package service holds the business logic between the API handlers and the
// file-backed record store.
package service

import (
	"strconv"
	"time"

	"github.com/google/uuid"
)

// newID generates an opaque record ID: millisecond timestamp plus a short
// random suffix. Sortable by creation time, unique enough for flat files.
func newID() string {
	return strconv.FormatInt(time.Now().UnixMilli(), 10) + uuid.NewString()[:8]
}
