// Package platform holds the small amount of OS-facing glue restwatch
// needs.
package platform

import (
	"errors"
	"fmt"
	"hash/fnv"
	"net"
)

// lockName seeds the lock port. Changing it orphans running instances,
// so it stays put even if the binaries are renamed.
const lockName = "restwatch"

// ErrAlreadyRunning indicates another restwatch instance already holds
// the lock.
var ErrAlreadyRunning = errors.New("restwatch is already running")

// InstanceGuard holds the single-instance lock for the GUI process.
type InstanceGuard struct {
	listener net.Listener
	address  string
}

// AcquireLock claims the restwatch instance lock by binding a localhost
// port derived from the lock name. A second process hashes to the same
// port, fails to bind, and is told to go away.
func AcquireLock() (*InstanceGuard, error) {
	return acquireNamed(lockName)
}

func acquireNamed(name string) (*InstanceGuard, error) {
	address := fmt.Sprintf("127.0.0.1:%d", lockPort(name))
	listener, err := net.Listen("tcp", address)
	if err != nil {
		return nil, ErrAlreadyRunning
	}
	return &InstanceGuard{listener: listener, address: address}, nil
}

// Release frees the lock.
func (guard *InstanceGuard) Release() error {
	if guard == nil || guard.listener == nil {
		return nil
	}
	return guard.listener.Close()
}

// Address returns the bound address.
func (guard *InstanceGuard) Address() string {
	if guard == nil {
		return ""
	}
	return guard.address
}

// lockPort folds the name into the dynamic range 20000-39999.
func lockPort(name string) int {
	const (
		minPort = 20000
		maxPort = 39999
	)
	hash := fnv.New32a()
	_, _ = hash.Write([]byte(name))
	return minPort + int(hash.Sum32()%uint32(maxPort-minPort+1))
}
