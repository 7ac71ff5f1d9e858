// Package lock serializes registry mutations across processes. Every
// operation that writes under .spring/commands takes an advisory file lock
// at .spring/.lock for its duration, so two concurrent spring invocations
// against the same project cannot interleave tree copies or deletes.
package lock

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/gofrs/flock"
)

// acquireTimeout bounds how long an operation waits for a competing
// process before giving up.
const acquireTimeout = 10 * time.Second

const retryInterval = 100 * time.Millisecond

// RegistryLock is a held advisory lock on a project's command registry.
type RegistryLock struct {
	fl *flock.Flock
}

// Acquire takes the registry lock for projectRoot, creating the .spring
// directory if needed. It blocks up to a bounded wait for a competing
// process, then fails.
func Acquire(projectRoot string) (*RegistryLock, error) {
	lockDir := filepath.Join(projectRoot, ".spring")
	if err := os.MkdirAll(lockDir, 0755); err != nil {
		return nil, fmt.Errorf("creating lock directory: %w", err)
	}

	fl := flock.New(filepath.Join(lockDir, ".lock"))

	deadline := time.Now().Add(acquireTimeout)
	for {
		locked, err := fl.TryLock()
		if err != nil {
			return nil, fmt.Errorf("acquiring registry lock: %w", err)
		}
		if locked {
			return &RegistryLock{fl: fl}, nil
		}
		if time.Now().After(deadline) {
			return nil, fmt.Errorf("registry lock %s held by another process", fl.Path())
		}
		time.Sleep(retryInterval)
	}
}

// Path returns the lock file path.
func (l *RegistryLock) Path() string {
	return l.fl.Path()
}

// Release drops the lock. Safe to call once per Acquire.
func (l *RegistryLock) Release() error {
	return l.fl.Unlock()
}
