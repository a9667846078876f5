package ftpserver

import (
	"net"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewSessionStateStartsAtRoot(t *testing.T) {
	s := NewSessionState(net.ParseIP("127.0.0.1"), net.ParseIP("127.0.0.2"))
	assert.Equal(t, "/", s.NamePrefix)
	assert.False(t, s.IsAuthenticated)
	assert.False(t, s.HasPreviousCmd)
}

func TestWithPreviousCommandTracksLast(t *testing.T) {
	s := NewSessionState(net.ParseIP("127.0.0.1"), net.ParseIP("127.0.0.2"))
	next := s.withPreviousCommand(VerbUSER)

	assert.True(t, next.HasPreviousCmd)
	assert.Equal(t, VerbUSER, next.PreviousCommand)
	assert.False(t, s.HasPreviousCmd, "original snapshot must be untouched")
}

func TestPassiveAndPortAreMutuallyExclusive(t *testing.T) {
	s := NewSessionState(net.ParseIP("127.0.0.1"), net.ParseIP("127.0.0.2"))

	withPort := s.withPortAddr(PortAddr{IP: net.ParseIP("10.0.0.1"), Port: 4000})
	assert.NotNil(t, withPort.PortAddr)

	withPassive := withPort.withPassiveListener(nil)
	assert.Nil(t, withPassive.PortAddr)
}

func TestClearTransferPlanResetsEverything(t *testing.T) {
	s := NewSessionState(net.ParseIP("127.0.0.1"), net.ParseIP("127.0.0.2"))
	s.Transfer = TransferPlan{Kind: TransferRetrieve, Parameter: "/a"}
	s.FileOffset = 42
	s.PortAddr = &PortAddr{IP: net.ParseIP("10.0.0.1"), Port: 4000}

	cleared := s.clearTransferPlan()

	assert.False(t, cleared.Transfer.isSet())
	assert.Zero(t, cleared.FileOffset)
	assert.Nil(t, cleared.PortAddr)
	assert.Nil(t, cleared.DataListener)
}

func TestResolvePathAbsolute(t *testing.T) {
	s := NewSessionState(net.ParseIP("127.0.0.1"), net.ParseIP("127.0.0.2"))
	s.NamePrefix = "/home/user"

	assert.Equal(t, "/etc", s.resolvePath("/etc"))
}

func TestResolvePathRelative(t *testing.T) {
	s := NewSessionState(net.ParseIP("127.0.0.1"), net.ParseIP("127.0.0.2"))
	s.NamePrefix = "/home/user"

	assert.Equal(t, "/home/user/docs", s.resolvePath("docs"))
}

func TestResolvePathDotDot(t *testing.T) {
	s := NewSessionState(net.ParseIP("127.0.0.1"), net.ParseIP("127.0.0.2"))
	s.NamePrefix = "/home/user"

	assert.Equal(t, "/home", s.resolvePath(".."))
}
