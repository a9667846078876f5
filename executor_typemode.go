package ftpserver

import "strings"

// executeTYPE implements TYPE. Only ASCII and image (binary) representation
// types are honored; "L 8" is the byte-size spelling of
// image type some clients send.
func executeTYPE(_ *Environment, state SessionState, argument string) (ExecutionResult, error) {
	fields := strings.Fields(strings.ToUpper(argument))

	var binary bool

	switch {
	case len(fields) == 1 && fields[0] == "I":
		binary = true
	case len(fields) == 2 && fields[0] == "L" && fields[1] == "8":
		binary = true
	case len(fields) == 1 && fields[0] == "A":
		binary = false
	case len(fields) == 2 && fields[0] == "A" && fields[1] == "N":
		binary = false
	default:
		return ok(StatusNotImplementedForParam, "Not understood"), nil
	}

	next := state.clone()
	next.BinaryFlag = binary

	msg := "ASCII mode enabled."
	if binary {
		msg = "Binary mode enabled."
	}

	return okWithState(StatusCommandOK, msg, next), nil
}

// executeSTRU implements STRU. Only file structure is supported, per
// record structure is not implemented.
func executeSTRU(_ *Environment, _ SessionState, argument string) (ExecutionResult, error) {
	if !strings.EqualFold(strings.TrimSpace(argument), "F") {
		return ok(StatusNotImplementedForParam, "Only file structure is supported."), nil
	}

	return ok(StatusCommandOK, "Using file structure."), nil
}

// executeMODE implements MODE. Only stream mode is supported; block and
// compressed modes are not implemented.
func executeMODE(_ *Environment, _ SessionState, argument string) (ExecutionResult, error) {
	if !strings.EqualFold(strings.TrimSpace(argument), "S") {
		return ok(StatusNotImplementedForParam, "Only stream mode is supported."), nil
	}

	return ok(StatusCommandOK, "Using stream mode."), nil
}

// executeALLO implements ALLO: a permanent no-op, since the filesystem
// namespace manages its own space.
func executeALLO(_ *Environment, _ SessionState, _ string) (ExecutionResult, error) {
	return ok(StatusAlreadyLoggedIn, "ALLO is superfluous, space is not reserved."), nil
}
