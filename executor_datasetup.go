package ftpserver

import (
	"fmt"
	"net"
	"strconv"
	"strings"
)

// executePASV implements PASV. Binds an ephemeral listener on 0.0.0.0 and
// replies with the session's local IP and the listener's port. Storing the
// listener clears any previously planned PORT target, since the two
// data-connection modes are mutually exclusive.
func executePASV(_ *Environment, state SessionState, _ string) (ExecutionResult, error) {
	if state.DataListener != nil {
		_ = state.DataListener.Close()
	}

	listener, err := listenPassiveTCP()
	if err != nil {
		return ok(StatusActionNotTaken, fmt.Sprintf("Could not listen for passive connection: %v", err)), nil
	}

	port := listener.Addr().(*net.TCPAddr).Port
	ip := state.LocalIP.To4()

	if ip == nil {
		_ = listener.Close()

		return ok(StatusActionNotTaken, "local address is not IPv4"), nil
	}

	p1, p2 := port/256, port%256

	msg := fmt.Sprintf("=%d,%d,%d,%d,%d,%d", ip[0], ip[1], ip[2], ip[3], p1, p2)

	next := state.withPassiveListener(listener)

	return okWithState(StatusEnteringPassive, msg, next), nil
}

// parsePortArgument splits and validates a "h1,h2,h3,h4,p1,p2" PORT argument.
func parsePortArgument(argument string) (PortAddr, error) {
	parts := strings.Split(strings.TrimSpace(argument), ",")
	if len(parts) != 6 {
		return PortAddr{}, newCommandError("malformed PORT argument: %q", argument)
	}

	nums := make([]int, 6)

	for i, p := range parts {
		n, err := strconv.Atoi(p)
		if err != nil || n < 0 || n > 255 {
			return PortAddr{}, newCommandError("malformed PORT argument: %q", argument)
		}

		nums[i] = n
	}

	ip := net.IPv4(byte(nums[0]), byte(nums[1]), byte(nums[2]), byte(nums[3]))
	port := nums[4]*256 + nums[5]

	return PortAddr{IP: ip, Port: port}, nil
}

// executePORT implements PORT. Storing the address clears any previously
// planned PASV listener, since the two data-connection modes are mutually
// exclusive.
func executePORT(_ *Environment, state SessionState, argument string) (ExecutionResult, error) {
	addr, err := parsePortArgument(argument)
	if err != nil {
		return ok(StatusSyntaxErrorParameters, err.Error()), nil
	}

	if state.DataListener != nil {
		_ = state.DataListener.Close()
	}

	next := state.withPortAddr(addr)

	return okWithState(StatusCommandOK, "Okay.", next), nil
}

// executeREST implements REST: stores the offset consumed by the next data
// transfer; the offset is consumed and reset once that transfer runs.
func executeREST(_ *Environment, state SessionState, argument string) (ExecutionResult, error) {
	offset, err := strconv.ParseInt(strings.TrimSpace(argument), 10, 64)
	if err != nil || offset < 0 {
		return ok(StatusSyntaxErrorParameters, fmt.Sprintf("Couldn't parse offset: %q", argument)), nil
	}

	next := state.clone()
	next.FileOffset = offset

	return okWithState(StatusFileActionPending, fmt.Sprintf("Start position set to %d", offset), next), nil
}
