package ftpserver

import (
	"errors"
	"fmt"
)

// ExecutionError is the "true" executor failure kind: an executor that
// could not produce any ExecutionResult at all (as opposed to the vast
// majority of failures, which are expressed as a plain 4xx/5xx
// ExecutionResult). The stub auth/driver collaborators never emit one, but
// a custom driver could; the engine maps it to 451 and logs it.
type ExecutionError struct {
	str string
	err error
}

// NewExecutionError wraps a driver/filesystem failure as an ExecutionError.
func NewExecutionError(str string, err error) ExecutionError {
	return ExecutionError{str: str, err: err}
}

func (e ExecutionError) Error() string {
	return fmt.Sprintf("execution error: %s: %v", e.str, e.err)
}

func (e ExecutionError) Unwrap() error { return e.err }

// DriverError wraps a configuration failure: a malformed or unreadable
// config file, or a filesystem/auth collaborator that can't be built from
// it. Always fatal to process startup, never part of a command's normal
// 4xx/5xx response path.
type DriverError struct {
	str string
	err error
}

func newDriverError(str string, err error) DriverError {
	return DriverError{str: str, err: err}
}

func (e DriverError) Error() string {
	return fmt.Sprintf("driver error: %s: %v", e.str, e.err)
}

func (e DriverError) Unwrap() error { return e.err }

// NetworkError wraps a failure binding, accepting or dialing a TCP socket.
type NetworkError struct {
	str string
	err error
}

func newNetworkError(str string, err error) NetworkError {
	return NetworkError{str: str, err: err}
}

func (e NetworkError) Error() string {
	return fmt.Sprintf("network error: %s: %v", e.str, e.err)
}

func (e NetworkError) Unwrap() error { return e.err }

// errIPv6Unsupported is returned when a client's control connection peer
// address isn't IPv4: this is treated as a fatal session error since
// PASV/PORT encoding is IPv4-only.
var errIPv6Unsupported = errors.New("IPv6 peers are not supported")
