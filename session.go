package ftpserver

import (
	"net"
	"path"
)

// TransferKind tags the deferred action an executor plants into
// SessionState for the data channel manager to enact. Go has no sum types,
// so the transfer plan is expressed as a tagged variant dispatched by the
// data channel manager, rather than as an arbitrary closure value.
type TransferKind int

// Supported transfer plans.
const (
	TransferNone TransferKind = iota
	TransferRetrieve
	TransferStore
	TransferAppend
	TransferStoreUnique
	TransferList
	TransferNlst
)

// TransferPlan is the deferred data-channel action an executor installs.
// Parameter carries the resolved filesystem path (or, for STOU, the
// requested directory) the plan acts on.
type TransferPlan struct {
	Kind      TransferKind
	Parameter string
}

func (p TransferPlan) isSet() bool { return p.Kind != TransferNone }

// PortAddr is the IPv4 address/port pair parsed out of a PORT command.
type PortAddr struct {
	IP   net.IP
	Port int
}

// SessionState is the value-typed record carrying all per-connection data.
// Executors never mutate it: they consume a read-only snapshot and return
// an optional replacement, which the engine installs.
type SessionState struct {
	User             string
	IsAuthenticated  bool
	PreviousCommand  Verb
	HasPreviousCmd   bool
	BinaryFlag       bool
	NamePrefix       string
	HasGreeted       bool
	FileOffset       int64
	LocalIP          net.IP
	PeerIP           net.IP
	PortAddr         *PortAddr
	DataListener     *net.TCPListener
	Transfer         TransferPlan
	RenameFrom       string
	HasRenameFrom    bool
}

// NewSessionState creates the initial state for a freshly accepted
// connection. NamePrefix always starts at the configured root, "/".
func NewSessionState(localIP, peerIP net.IP) SessionState {
	return SessionState{
		NamePrefix: "/",
		LocalIP:    localIP,
		PeerIP:     peerIP,
	}
}

// clone returns a shallow copy safe for an executor to modify and return as
// its new_state: SessionState holds no field an executor needs to deep-copy
// (slices/maps), only values and pointers that are themselves replaced
// wholesale, never mutated in place.
func (s SessionState) clone() SessionState {
	return s
}

// withPreviousCommand returns a copy with PreviousCommand set to v,
// regardless of whether the command that just ran succeeded.
func (s SessionState) withPreviousCommand(v Verb) SessionState {
	next := s.clone()
	next.PreviousCommand = v
	next.HasPreviousCmd = true

	return next
}

// clearTransferPlan drops the plan, the single-use REST offset, and the
// data connection target after one data-phase attempt: REST only ever
// applies to the transfer it immediately precedes, and a client must
// reissue PASV/PORT before every subsequent transfer.
func (s SessionState) clearTransferPlan() SessionState {
	next := s.clone()
	next.Transfer = TransferPlan{}
	next.FileOffset = 0
	next.DataListener = nil
	next.PortAddr = nil

	return next
}

// withPassiveListener installs a PASV listener, clearing any PORT address:
// the two data-connection modes are mutually exclusive.
func (s SessionState) withPassiveListener(l *net.TCPListener) SessionState {
	next := s.clone()
	next.DataListener = l
	next.PortAddr = nil

	return next
}

// withPortAddr installs a PORT target, clearing any PASV listener.
func (s SessionState) withPortAddr(addr PortAddr) SessionState {
	next := s.clone()
	next.PortAddr = &addr
	next.DataListener = nil

	return next
}

// resolvePath canonicalizes NamePrefix combined with a (possibly relative)
// argument, the way CWD and every file/dir command does.
func (s SessionState) resolvePath(argument string) string {
	decoded := decodeLFQuoting(argument)

	if path.IsAbs(decoded) {
		return path.Clean(decoded)
	}

	return path.Clean(path.Join(s.NamePrefix, decoded))
}
