package ftpserver

// executeUSER implements the USER verb. The anonymous user grants
// immediate authentication; any other username just records itself and
// waits for PASS.
func executeUSER(_ *Environment, state SessionState, argument string) (ExecutionResult, error) {
	if argument == "" {
		return ok(StatusSyntaxErrorParameters, "USER requires a username"), nil
	}

	next := state.clone()
	next.User = argument

	if argument == "anonymous" {
		next.IsAuthenticated = true

		return okWithState(StatusUserLoggedIn, "Anonymous login ok, public access granted.", next), nil
	}

	next.IsAuthenticated = false

	return okWithState(StatusUserOK, "User name okay, need password.", next), nil
}

// executePASS implements the PASS verb. Requires USER to have run
// immediately before it; the auth predicate is the opaque external
// credential collaborator.
func executePASS(env *Environment, state SessionState, argument string) (ExecutionResult, error) {
	if !state.HasPreviousCmd || state.PreviousCommand != VerbUSER {
		return ok(StatusBadCommandSequence, "USER is expected before PASS"), nil
	}

	if state.User == "anonymous" && state.IsAuthenticated {
		return ok(StatusAlreadyLoggedIn, "Already logged in as anonymous"), nil
	}

	if argument == "" {
		return ok(StatusSyntaxErrorParameters, "PASS requires a password"), nil
	}

	if env.Auth == nil || !env.Auth(state.User, argument) {
		return ok(StatusNotLoggedIn, "User name or password incorrect."), nil
	}

	next := state.clone()
	next.IsAuthenticated = true

	return okWithState(StatusUserLoggedIn, "Password ok, continue", next), nil
}

// executeACCT implements the ACCT verb. There is no account system;
// it only reports the current login status and enforces that ACCT must
// immediately follow PASS, tracked as its own previous-command state
// distinct from the login flag.
func executeACCT(_ *Environment, state SessionState, _ string) (ExecutionResult, error) {
	if !state.HasPreviousCmd || state.PreviousCommand != VerbPASS {
		return ok(StatusBadCommandSequence, "PASS is expected before ACCT"), nil
	}

	if !state.IsAuthenticated {
		return ok(StatusNotLoggedIn, "Not logged in"), nil
	}

	return ok(StatusAlreadyLoggedIn, "Command superfluous, already logged in"), nil
}
