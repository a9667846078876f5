package ftpserver

import "fmt"

// pathExists reports whether path is present in fs, the way RETR/LIST/NLST
// check before staging a transfer plan: a missing path is rejected at
// command time with 550 rather than deferred to the data phase.
func pathExists(fs FileSystem, path string) bool {
	_, err := fs.Stat(path)
	return err == nil
}

// executeRETR stages a RETR. A missing path is rejected immediately with
// 550, before any data connection is attempted.
func executeRETR(env *Environment, state SessionState, argument string) (ExecutionResult, error) {
	if argument == "" {
		return ok(StatusSyntaxErrorParameters, "RETR requires a path"), nil
	}

	resolved := state.resolvePath(argument)

	if !pathExists(env.FS, resolved) {
		return ok(StatusActionNotTaken, "File not found."), nil
	}

	next := state.clone()
	next.Transfer = TransferPlan{Kind: TransferRetrieve, Parameter: resolved}

	return okWithState(StatusFileStatusOK, fmt.Sprintf("Opening data connection for %s", resolved), next), nil
}

// executeSTOR stages a STOR.
func executeSTOR(_ *Environment, state SessionState, argument string) (ExecutionResult, error) {
	if argument == "" {
		return ok(StatusSyntaxErrorParameters, "STOR requires a path"), nil
	}

	resolved := state.resolvePath(argument)

	next := state.clone()
	next.Transfer = TransferPlan{Kind: TransferStore, Parameter: resolved}

	return okWithState(StatusFileStatusOK, fmt.Sprintf("Opening data connection for %s", resolved), next), nil
}

// executeAPPE stages an APPE.
func executeAPPE(_ *Environment, state SessionState, argument string) (ExecutionResult, error) {
	if argument == "" {
		return ok(StatusSyntaxErrorParameters, "APPE requires a path"), nil
	}

	resolved := state.resolvePath(argument)

	next := state.clone()
	next.Transfer = TransferPlan{Kind: TransferAppend, Parameter: resolved}

	return okWithState(StatusFileStatusOK, fmt.Sprintf("Opening data connection for %s", resolved), next), nil
}

// executeSTOU stages a STOU: the parameter is the target directory, and the
// engine picks a unique name under it once the data channel opens.
func executeSTOU(_ *Environment, state SessionState, argument string) (ExecutionResult, error) {
	dir := state.NamePrefix
	if argument != "" {
		dir = state.resolvePath(argument)
	}

	next := state.clone()
	next.Transfer = TransferPlan{Kind: TransferStoreUnique, Parameter: dir}

	return okWithState(StatusFileStatusOK, "Opening data connection for unique file store", next), nil
}

// executeLIST stages a LIST: argument defaults to the current directory.
// A missing path is rejected immediately with 550.
func executeLIST(env *Environment, state SessionState, argument string) (ExecutionResult, error) {
	dir := state.NamePrefix
	if argument != "" {
		dir = state.resolvePath(argument)
	}

	if !pathExists(env.FS, dir) {
		return ok(StatusActionNotTaken, "File not found."), nil
	}

	next := state.clone()
	next.Transfer = TransferPlan{Kind: TransferList, Parameter: dir}

	return okWithState(StatusFileStatusOK, "Opening data connection for directory listing", next), nil
}

// executeNLST stages an NLST: argument defaults to the current directory.
// A missing path is rejected immediately with 550.
func executeNLST(env *Environment, state SessionState, argument string) (ExecutionResult, error) {
	dir := state.NamePrefix
	if argument != "" {
		dir = state.resolvePath(argument)
	}

	if !pathExists(env.FS, dir) {
		return ok(StatusActionNotTaken, "File not found."), nil
	}

	next := state.clone()
	next.Transfer = TransferPlan{Kind: TransferNlst, Parameter: dir}

	return okWithState(StatusFileStatusOK, "Opening data connection for name listing", next), nil
}
