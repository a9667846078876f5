package ftpserver

import (
	"bufio"
	"io"
	"net"
	"time"

	"github.com/relayftp/fetpd/log"
)

// idleTimeout bounds how long a session may sit between commands before
// the control connection is closed.
const idleTimeout = 5 * time.Minute

// session runs one client's control connection start to finish: greet,
// read-parse-dispatch loop, and teardown. It owns the only mutable
// variable in the whole request path, the current SessionState snapshot;
// everything else flows through return values.
type session struct {
	conn   net.Conn
	reader *bufio.Reader
	writer *bufio.Writer
	env    *Environment
	logger log.Logger
	state  SessionState
}

// newSession builds a session for a freshly accepted connection, refusing
// non-IPv4 peers immediately since PASV/PORT encoding cannot represent
// them.
func newSession(conn net.Conn, env *Environment, logger log.Logger) (*session, error) {
	localAddr, ok := conn.LocalAddr().(*net.TCPAddr)
	if !ok {
		return nil, newNetworkError("control connection has no TCP local address", nil)
	}

	peerAddr, ok := conn.RemoteAddr().(*net.TCPAddr)
	if !ok {
		return nil, newNetworkError("control connection has no TCP remote address", nil)
	}

	if localAddr.IP.To4() == nil || peerAddr.IP.To4() == nil {
		return nil, errIPv6Unsupported
	}

	return &session{
		conn:   conn,
		reader: bufio.NewReader(conn),
		writer: bufio.NewWriter(conn),
		env:    env,
		logger: logger,
		state:  NewSessionState(localAddr.IP, peerAddr.IP),
	}, nil
}

// serve drives the session to completion: one greeting, then a
// read/dispatch/reply loop until QUIT, a fatal read error, or a fatal
// write error.
func (s *session) serve() {
	defer s.conn.Close()

	if err := s.greet(); err != nil {
		s.logger.Warn("could not send greeting", "err", err)

		return
	}

	for {
		if err := s.conn.SetDeadline(time.Now().Add(idleTimeout)); err != nil {
			s.logger.Warn("could not set idle deadline", "err", err)

			return
		}

		line, err := readLine(s.reader)
		if err != nil {
			s.handleReadError(err)

			if _, isCmdErr := err.(*CommandError); isCmdErr {
				continue
			}

			return
		}

		quit, err := s.handleLine(line)
		if err != nil {
			s.logger.Warn("control connection write failed", "err", err)

			return
		}

		if quit {
			return
		}
	}
}

func (s *session) greet() error {
	return writeReply(s.writer, StatusServiceReady, "fetpd ready.")
}

func (s *session) handleReadError(err error) {
	if cmdErr, ok := err.(*CommandError); ok {
		if writeErr := writeReply(s.writer, StatusSyntaxError, cmdErr.Error()); writeErr != nil {
			s.logger.Warn("control connection write failed", "err", writeErr)
		}

		return
	}

	if err == io.EOF {
		s.logger.Info("client disconnected")

		return
	}

	s.logger.Warn("control connection read failed", "err", err)
}

// handleLine parses and dispatches a single command line, writes its
// primary reply, runs the data channel manager and writes the secondary
// reply if the command staged a transfer, and reports whether the session
// should end.
func (s *session) handleLine(line string) (quit bool, err error) {
	cmd, parseErr := parseCommand(line)
	if parseErr != nil {
		return false, writeReply(s.writer, StatusSyntaxError, parseErr.Error())
	}

	executor, found := lookupExecutor(cmd.Verb)
	if !found {
		return false, writeReply(s.writer, StatusSyntaxError, "Unknown command")
	}

	result, execErr := executor(s.env, s.state, cmd.Argument)
	if execErr != nil {
		s.logger.Error("executor failed", execErr, "verb", string(cmd.Verb))

		return false, writeReply(s.writer, StatusLocalError, "Internal error")
	}

	nextState := s.state
	if result.NewState != nil {
		nextState = *result.NewState
	}

	s.state = nextState.withPreviousCommand(cmd.Verb)

	if err := writeReply(s.writer, result.Status, result.Message); err != nil {
		return false, err
	}

	if s.state.Transfer.isSet() {
		var status int

		var message string

		s.state, status, message = runDataChannel(s.env, s.state)

		if err := writeReply(s.writer, status, message); err != nil {
			return false, err
		}
	}

	return cmd.Verb == VerbQUIT, nil
}
