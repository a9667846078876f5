package ftpserver

import (
	"fmt"
	"net"
	"time"
)

// passiveAcceptTimeout bounds the wait for a client to dial a PASV
// listener. Without a deadline a client that never connects would wedge
// the session forever; expiry is treated as 425.
const passiveAcceptTimeout = 30 * time.Second

// activeDialTimeout bounds an active-mode connect back to the client.
const activeDialTimeout = 30 * time.Second

// listenPassiveTCP opens an ephemeral TCP listener on 0.0.0.0, reusing the
// address/port via the platform Control hook in control_unix.go/
// control_windows.go so a server restart can rebind promptly.
func listenPassiveTCP() (*net.TCPListener, error) {
	lc := net.ListenConfig{Control: Control}

	l, err := lc.Listen(nil, "tcp4", "0.0.0.0:0") //nolint:staticcheck // context not needed for a bind
	if err != nil {
		return nil, newNetworkError("could not listen for passive connection", err)
	}

	tcpListener, ok := l.(*net.TCPListener)
	if !ok {
		_ = l.Close()

		return nil, newNetworkError("passive listener is not TCP", nil)
	}

	return tcpListener, nil
}

// runDataChannel is the data channel manager. Given a session whose state
// carries a TransferPlan, it opens the data socket (passive accept or
// active dial), runs the plan, tears the socket and plan-related state
// down, and returns the secondary (status, message) for the engine to
// write.
//
// Every one of the plan's listener/port fields is cleared regardless of
// outcome, so a failed transfer never leaves a stale listener or target
// address armed for the next command.
func runDataChannel(env *Environment, state SessionState) (SessionState, int, string) {
	plan := state.Transfer

	if state.DataListener != nil {
		defer state.DataListener.Close()
	}

	conn, err := openDataSocket(state)
	if err != nil {
		return state.clearTransferPlan(), StatusCantOpenDataConnection, "No data connection was established."
	}

	status, message := enactTransferPlan(env, plan, state.FileOffset, conn)

	_ = conn.Close()

	return state.clearTransferPlan(), status, message
}

// openDataSocket resolves the session's planned data connection, whichever
// mode (passive or active) is set. Passive listeners are put into a bounded
// accept; active targets are dialed with a bounded timeout.
func openDataSocket(state SessionState) (net.Conn, error) {
	switch {
	case state.DataListener != nil:
		if err := state.DataListener.SetDeadline(time.Now().Add(passiveAcceptTimeout)); err != nil {
			return nil, err
		}

		return state.DataListener.Accept()

	case state.PortAddr != nil:
		raddr := &net.TCPAddr{IP: state.PortAddr.IP, Port: state.PortAddr.Port}

		return net.DialTimeout("tcp4", raddr.String(), activeDialTimeout)

	default:
		return nil, fmt.Errorf("no data connection planned")
	}
}

// enactTransferPlan dispatches on the plan's tagged kind: a switch over a
// closed enum stands in for the polymorphic transfer closures a language
// with first-class function values would use here.
func enactTransferPlan(env *Environment, plan TransferPlan, offset int64, conn net.Conn) (int, string) {
	switch plan.Kind {
	case TransferRetrieve:
		return transferRetrieve(env, plan.Parameter, offset, conn)
	case TransferStore:
		return transferStore(env, plan.Parameter, offset, conn, false)
	case TransferAppend:
		return transferStore(env, plan.Parameter, offset, conn, true)
	case TransferStoreUnique:
		return transferStoreUnique(env, plan.Parameter, conn)
	case TransferList:
		return transferList(env, plan.Parameter, conn, false)
	case TransferNlst:
		return transferList(env, plan.Parameter, conn, true)
	default:
		return StatusCantOpenDataConnection, "No data connection was established."
	}
}
