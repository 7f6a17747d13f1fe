package reasoning

import (
	"errors"
	"fmt"
)

// ErrUnavailable reports that the store's critical section can no longer be
// entered because an earlier access panicked while holding the lock. Store
// operations never return it; it is folded into "absent" at the boundary.
var ErrUnavailable = errors.New("reasoning store unavailable")

// errPoisoned marks the access whose panic poisoned the store.
var errPoisoned = fmt.Errorf("%w: panic while locked", ErrUnavailable)
