package naming

import (
	"fmt"
	"sync"
)

// ClaimTracker records which input file owns each computed target path
// within a single run. When two inputs derive the same target, the second
// claim fails before either rename reaches the disk — the on-disk existence
// check alone cannot catch this, because the first rename may not have
// happened yet. This is also the only serialization point a future parallel
// runner would need. All methods are goroutine-safe.
type ClaimTracker struct {
	mu     sync.Mutex
	owners map[string]string // target path → input path that owns it
}

// NewClaimTracker creates a ready-to-use tracker.
func NewClaimTracker() *ClaimTracker {
	return &ClaimTracker{owners: make(map[string]string)}
}

// Claim registers input as the owner of target. Re-claiming one's own target
// is allowed; a target owned by a different input fails with
// [ErrTargetExists].
func (ct *ClaimTracker) Claim(input, target string) error {
	ct.mu.Lock()
	defer ct.mu.Unlock()

	owner, exists := ct.owners[target]
	if exists && owner != input {
		return fmt.Errorf("%q already claimed by %q: %w", target, owner, ErrTargetExists)
	}
	ct.owners[target] = input
	return nil
}
