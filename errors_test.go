package ftpserver

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExecutionErrorUnwrap(t *testing.T) {
	cause := errors.New("disk full")
	err := NewExecutionError("writing file", cause)

	assert.Equal(t, cause, errors.Unwrap(err))
	assert.Contains(t, err.Error(), "disk full")
}

func TestDriverErrorUnwrap(t *testing.T) {
	cause := errors.New("malformed toml")
	err := newDriverError("parsing config", cause)

	assert.Equal(t, cause, errors.Unwrap(err))
	assert.Contains(t, err.Error(), "malformed toml")
}

func TestNetworkErrorUnwrap(t *testing.T) {
	cause := errors.New("address already in use")
	err := newNetworkError("cannot listen", cause)

	assert.Equal(t, cause, errors.Unwrap(err))
	assert.Contains(t, err.Error(), "address already in use")
}

func TestIPv6Unsupported(t *testing.T) {
	assert.EqualError(t, errIPv6Unsupported, "IPv6 peers are not supported")
}
