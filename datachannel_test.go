package ftpserver

import (
	"net"
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestListenPassiveTCPBindsEphemeralPort(t *testing.T) {
	l, err := listenPassiveTCP()
	require.NoError(t, err)
	defer l.Close()

	addr, ok := l.Addr().(*net.TCPAddr)
	require.True(t, ok)
	assert.NotZero(t, addr.Port)
}

func TestOpenDataSocketPassiveAccept(t *testing.T) {
	l, err := listenPassiveTCP()
	require.NoError(t, err)

	state := newTestState().withPassiveListener(l)

	done := make(chan net.Conn, 1)
	go func() {
		conn, err := openDataSocket(state)
		require.NoError(t, err)
		done <- conn
	}()

	client, err := net.Dial("tcp4", l.Addr().String())
	require.NoError(t, err)
	defer client.Close()

	conn := <-done
	defer conn.Close()
	assert.NotNil(t, conn)
}

func TestOpenDataSocketActiveDial(t *testing.T) {
	listener, err := net.Listen("tcp4", "127.0.0.1:0")
	require.NoError(t, err)
	defer listener.Close()

	tcpAddr, ok := listener.Addr().(*net.TCPAddr)
	require.True(t, ok)

	state := newTestState().withPortAddr(PortAddr{IP: tcpAddr.IP, Port: tcpAddr.Port})

	accepted := make(chan net.Conn, 1)
	go func() {
		conn, err := listener.Accept()
		require.NoError(t, err)
		accepted <- conn
	}()

	conn, err := openDataSocket(state)
	require.NoError(t, err)
	defer conn.Close()

	server := <-accepted
	defer server.Close()
}

func TestOpenDataSocketNoPlanReturnsError(t *testing.T) {
	_, err := openDataSocket(newTestState())
	require.Error(t, err)
}

func TestEnactTransferPlanUnsetKind(t *testing.T) {
	status, msg := enactTransferPlan(newTestEnv(), TransferPlan{}, 0, nil)
	assert.Equal(t, StatusCantOpenDataConnection, status)
	assert.NotEmpty(t, msg)
}

func TestRunDataChannelListDispatches(t *testing.T) {
	env := newTestEnv()
	require.NoError(t, afero.WriteFile(env.FS, "/a.txt", []byte("hi"), 0o644))

	l, err := listenPassiveTCP()
	require.NoError(t, err)

	state := newTestState().withPassiveListener(l)
	state.Transfer = TransferPlan{Kind: TransferList, Parameter: "/"}

	result := make(chan struct {
		status int
		msg    string
	}, 1)

	go func() {
		client, err := net.Dial("tcp4", l.Addr().String())
		require.NoError(t, err)
		defer client.Close()
		buf := make([]byte, 4096)
		_, _ = client.Read(buf)
	}()

	newState, status, msg := runDataChannel(env, state)
	result <- struct {
		status int
		msg    string
	}{status, msg}

	got := <-result
	assert.Equal(t, StatusDataConnClosingOK, got.status)
	assert.NotEmpty(t, got.msg)
	assert.False(t, newState.Transfer.isSet())
	assert.Nil(t, newState.DataListener)
}
