package ftpserver

import (
	"fmt"
	"path"
)

// executePWD implements PWD/XPWD. The working directory is quoted with the
// LF->NUL scheme so an embedded newline survives the line-oriented wire
// format.
func executePWD(_ *Environment, state SessionState, _ string) (ExecutionResult, error) {
	return ok(StatusPathCreated, fmt.Sprintf("\"%s\" is the current directory", encodeLFQuoting(state.NamePrefix))), nil
}

// executeCWD implements CWD/XCWD. Resolution must succeed against the
// filesystem namespace before NamePrefix is replaced; failure leaves the
// prior value untouched.
func executeCWD(env *Environment, state SessionState, argument string) (ExecutionResult, error) {
	resolved := state.resolvePath(argument)

	info, err := env.FS.Stat(resolved)
	if err != nil || !info.IsDir() {
		return ok(StatusActionNotTaken, fmt.Sprintf("Could not change directory to %s", encodeLFQuoting(resolved))), nil
	}

	next := state.clone()
	next.NamePrefix = resolved

	return okWithState(StatusFileOK, fmt.Sprintf("CWD worked on %s", encodeLFQuoting(resolved)), next), nil
}

// executeCDUP implements CDUP/XCUP: pop the last path component, staying at
// root if already there. There is no failure status for it: popping past
// root is defined to stay at root.
func executeCDUP(_ *Environment, state SessionState, _ string) (ExecutionResult, error) {
	parent := path.Dir(state.NamePrefix)

	next := state.clone()
	next.NamePrefix = parent

	return okWithState(StatusFileOK, fmt.Sprintf("CDUP worked on %s", parent), next), nil
}

// executeMKD implements MKD/XMKD.
func executeMKD(env *Environment, state SessionState, argument string) (ExecutionResult, error) {
	resolved := state.resolvePath(argument)

	if err := env.FS.Mkdir(resolved, 0o755); err != nil {
		return ok(StatusActionNotTaken, fmt.Sprintf("Could not create %q: %v", resolved, err)), nil
	}

	return ok(StatusPathCreated, fmt.Sprintf("%q created", resolved)), nil
}

// executeRMD implements RMD/XRMD.
func executeRMD(env *Environment, state SessionState, argument string) (ExecutionResult, error) {
	resolved := state.resolvePath(argument)

	if err := env.FS.RemoveAll(resolved); err != nil {
		return ok(StatusActionNotTaken, fmt.Sprintf("Could not delete dir %s: %v", resolved, err)), nil
	}

	return ok(StatusFileOK, fmt.Sprintf("Deleted dir %s", resolved)), nil
}

// executeDELE implements DELE.
func executeDELE(env *Environment, state SessionState, argument string) (ExecutionResult, error) {
	resolved := state.resolvePath(argument)

	if err := env.FS.Remove(resolved); err != nil {
		return ok(StatusActionNotTaken, fmt.Sprintf("Could not delete %s: %v", resolved, err)), nil
	}

	return ok(StatusFileOK, fmt.Sprintf("Deleted file %s", resolved)), nil
}

// executeRNFR implements RNFR: stages the source path for a following RNTO.
func executeRNFR(env *Environment, state SessionState, argument string) (ExecutionResult, error) {
	resolved := state.resolvePath(argument)

	if _, err := env.FS.Stat(resolved); err != nil {
		return ok(StatusActionNotTaken, fmt.Sprintf("Could not access %s: %v", resolved, err)), nil
	}

	next := state.clone()
	next.RenameFrom = resolved
	next.HasRenameFrom = true

	return okWithState(StatusFileActionPending, "Sure, give me a target", next), nil
}

// executeRNTO implements RNTO: commits the rename staged by an immediately
// preceding RNFR.
func executeRNTO(env *Environment, state SessionState, argument string) (ExecutionResult, error) {
	if !state.HasPreviousCmd || state.PreviousCommand != VerbRNFR || !state.HasRenameFrom {
		return ok(StatusBadCommandSequence, "RNFR is expected before RNTO"), nil
	}

	resolved := state.resolvePath(argument)

	if err := env.FS.Rename(state.RenameFrom, resolved); err != nil {
		return ok(StatusActionNotTaken, fmt.Sprintf("Could not rename %s to %s: %v", state.RenameFrom, resolved, err)), nil
	}

	next := state.clone()
	next.RenameFrom = ""
	next.HasRenameFrom = false

	return okWithState(StatusFileOK, "Rename successful", next), nil
}
