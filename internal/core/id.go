package core

import (
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
)

// NewID generates a server-assigned entity ID of the form
// <prefix>_<base36 unix-milli>_<8 char random suffix>. The timestamp
// component keeps IDs roughly sortable by creation time; the suffix
// makes collisions within one millisecond a non-issue.
func NewID(prefix string) string {
	ts := strconv.FormatInt(time.Now().UnixMilli(), 36)
	suffix := strings.ReplaceAll(uuid.NewString(), "-", "")[:8]
	return prefix + "_" + ts + "_" + suffix
}
