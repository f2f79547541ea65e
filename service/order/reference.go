package order

import (
	"crypto/rand"
	"sync"
	"time"

	"github.com/oklog/ulid/v2"
)

var (
	entropyMu sync.Mutex
	entropy   = ulid.Monotonic(rand.Reader, 0)
)

// newReference generates the per-submission idempotency reference the
// upstream uses for duplicate detection. ULIDs combine a millisecond
// timestamp with monotonic entropy, so two submissions within the same
// clock tick still get distinct, ordered references.
func newReference() string {
	entropyMu.Lock()
	defer entropyMu.Unlock()
	return ulid.MustNew(ulid.Timestamp(time.Now()), entropy).String()
}
