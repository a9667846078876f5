package ftpserver

// executeSYST implements SYST with a fixed, generic answer: the engine
// never exposes the host OS to a client.
func executeSYST(_ *Environment, _ SessionState, _ string) (ExecutionResult, error) {
	return ok(StatusSystemType, "UNIX Type: L8"), nil
}

// executeSTAT implements STAT as permanently unimplemented.
func executeSTAT(_ *Environment, _ SessionState, _ string) (ExecutionResult, error) {
	return ok(StatusNotImplemented, "STAT is not implemented"), nil
}

// executeHELP implements HELP: a fixed banner with no argument, and a
// refusal to describe any individual verb.
func executeHELP(_ *Environment, _ SessionState, argument string) (ExecutionResult, error) {
	if argument != "" {
		return ok(StatusNotImplementedForParam, "HELP does not support arguments"), nil
	}

	return ok(StatusHelp, "Help: see RFC 959"), nil
}

// executeNOOP implements NOOP.
func executeNOOP(_ *Environment, _ SessionState, _ string) (ExecutionResult, error) {
	return ok(StatusCommandOK, "OK"), nil
}

// executeQUIT implements QUIT. The engine inspects the Verb itself to
// terminate the session after writing this reply; QUIT needs no dedicated
// session-state flag.
func executeQUIT(_ *Environment, _ SessionState, _ string) (ExecutionResult, error) {
	return ok(StatusClosingControlConn, "Goodbye."), nil
}
