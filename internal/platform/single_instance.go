package platform

import (
	"errors"
	"fmt"
	"hash/fnv"
	"net"
	"strconv"
)

// ErrAlreadyRunning indicates another instance already holds the lock.
var ErrAlreadyRunning = errors.New("instance already running")

const (
	instanceHost    = "127.0.0.1"
	instancePortMin = 20000
	instancePortMax = 39999
)

// InstanceGuard keeps a localhost listener open for the process lifetime.
type InstanceGuard struct {
	listener net.Listener
}

// AcquireSingleInstance claims the port assigned to appName. A second
// process with the same name gets ErrAlreadyRunning together with the
// listen error.
func AcquireSingleInstance(appName string) (*InstanceGuard, error) {
	address := net.JoinHostPort(instanceHost, strconv.Itoa(instancePort(appName)))
	listener, err := net.Listen("tcp", address)
	if err != nil {
		return nil, fmt.Errorf("claim %s: %w", address, errors.Join(ErrAlreadyRunning, err))
	}
	return &InstanceGuard{listener: listener}, nil
}

// Release frees the lock. It is safe on a nil guard.
func (guard *InstanceGuard) Release() error {
	if guard == nil || guard.listener == nil {
		return nil
	}
	return guard.listener.Close()
}

// Address returns the claimed host:port, or "" without a guard.
func (guard *InstanceGuard) Address() string {
	if guard == nil || guard.listener == nil {
		return ""
	}
	return guard.listener.Addr().String()
}

// instancePort hashes appName into the reserved port range.
func instancePort(appName string) int {
	hash := fnv.New32a()
	_, _ = hash.Write([]byte(appName))
	span := uint32(instancePortMax - instancePortMin + 1)
	return instancePortMin + int(hash.Sum32()%span)
}
