// Package ftpserver implements a classic (RFC 959) FTP server: a control
// connection session engine, command parser, verb registry and the
// active/passive data channel manager that backs file and directory
// transfers.
package ftpserver

import (
	"errors"
	"fmt"
	"net"
	"syscall"
	"time"

	"github.com/relayftp/fetpd/log"
)

// ErrNotListening is returned when an action is only valid while listening.
var ErrNotListening = errors.New("not listening")

// Settings configures the listener an FtpServer binds.
type Settings struct {
	ListenAddr string // host:port, e.g. "0.0.0.0:2121"
}

// FtpServer owns the main listener and accepts one session per connection.
type FtpServer struct {
	Logger        log.Logger
	settings      Settings
	env           *Environment
	listener      net.Listener
	clientCounter uint32
}

// NewFtpServer builds a server from its settings and collaborators.
func NewFtpServer(settings Settings, env *Environment, logger log.Logger) *FtpServer {
	if settings.ListenAddr == "" {
		settings.ListenAddr = "0.0.0.0:2121"
	}

	return &FtpServer{
		Logger:   logger,
		settings: settings,
		env:      env,
	}
}

// Listen binds the main listener with the platform's socket-reuse Control
// hook. Not a blocking call.
func (server *FtpServer) Listen() error {
	lc := net.ListenConfig{Control: Control}

	listener, err := lc.Listen(nil, "tcp", server.settings.ListenAddr) //nolint:staticcheck
	if err != nil {
		return newNetworkError("cannot listen on main port", err)
	}

	server.listener = listener
	server.Logger.Info("listening", "address", listener.Addr())

	return nil
}

// Serve accepts and processes incoming clients until the listener is
// closed or a non-temporary accept error occurs.
func (server *FtpServer) Serve() error {
	var tempDelay time.Duration

	for {
		conn, err := server.listener.Accept()
		if err != nil {
			stop, finalErr := server.handleAcceptError(err, &tempDelay)
			if stop {
				return finalErr
			}

			continue
		}

		tempDelay = 0

		server.clientArrival(conn)
	}
}

func (server *FtpServer) handleAcceptError(err error, tempDelay *time.Duration) (bool, error) {
	var opErr *net.OpError
	if errors.As(err, &opErr) && opErr.Err.Error() == "use of closed network connection" {
		server.listener = nil

		return true, nil
	}

	var ne net.Error
	if errors.As(err, &ne) && ne.Temporary() { //nolint:staticcheck
		if *tempDelay == 0 {
			*tempDelay = 5 * time.Millisecond
		} else {
			*tempDelay *= 2
		}

		if max := time.Second; *tempDelay > max {
			*tempDelay = max
		}

		server.Logger.Warn("accept error, retrying", "err", err, "delay", *tempDelay)
		time.Sleep(*tempDelay)

		return false, nil
	}

	var errno syscall.Errno
	if errors.As(err, &errno) && (errno == syscall.ECONNABORTED || errno == syscall.ECONNRESET) {
		return false, nil
	}

	server.Logger.Error("listener accept error", err)

	return true, newNetworkError("listener accept error", err)
}

// ListenAndServe chains Listen and Serve.
func (server *FtpServer) ListenAndServe() error {
	if err := server.Listen(); err != nil {
		return err
	}

	server.Logger.Info("starting")

	return server.Serve()
}

// Addr reports the listening address, or "" before Listen and once Serve
// has returned because the listener was closed.
func (server *FtpServer) Addr() string {
	if server.listener == nil {
		return ""
	}

	return server.listener.Addr().String()
}

// Stop closes the listener, unblocking Serve.
func (server *FtpServer) Stop() error {
	if server.listener == nil {
		return ErrNotListening
	}

	if err := server.listener.Close(); err != nil {
		return newNetworkError("could not close listener", err)
	}

	return nil
}

func (server *FtpServer) clientArrival(conn net.Conn) {
	server.clientCounter++
	id := server.clientCounter

	logger := server.Logger.With("clientId", id)

	sess, err := newSession(conn, server.env, logger)
	if err != nil {
		logger.Warn("rejecting client", "err", err)
		_ = conn.Close()

		return
	}

	logger.Debug("client connected", "remoteAddr", fmt.Sprint(conn.RemoteAddr()))

	go sess.serve()
}
