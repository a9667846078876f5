package ftpserver

import (
	"fmt"
	"regexp"
	"strings"
)

// maxCommandLineLength is the hard cap on a control-channel line, in bytes,
// CRLF included. Exceeding it is a parse error, never a silent truncation.
const maxCommandLineLength = 1024

// Command is a parsed control-channel line: a known Verb plus its raw
// argument. Case folding applies only to the verb, never to Argument.
type Command struct {
	Verb     Verb
	Argument string
}

// CommandError is returned by parseCommand for anything that isn't a
// well-formed, known command line. It is always reported to the peer as a
// 500 reply; it is never fatal to the session.
type CommandError struct {
	msg string
}

func (e *CommandError) Error() string { return e.msg }

func newCommandError(format string, args ...interface{}) *CommandError {
	return &CommandError{msg: fmt.Sprintf(format, args...)}
}

// lineShape matches "<verb>( <argument>)?" after CR/LF has been trimmed.
// The verb is one-or-more letters; the argument, if present, is anything
// up to (but not including) the trailing control-character run that
// readLine leaves on, which parseCommand trims separately.
var lineShape = regexp.MustCompile(`^[A-Za-z]+( .*)?$`)

// parseCommand turns one raw control-channel line into a Command.
//
//  1. reject if longer than maxCommandLineLength or non-ASCII
//  2. match against the verb/argument shape
//  3. extract and case-fold the verb, rejecting unknown ones
//  4. extract the argument, trimming only the trailing CR/LF run
func parseCommand(line string) (Command, error) {
	if len(line) > maxCommandLineLength {
		return Command{}, newCommandError("command line exceeds %d bytes", maxCommandLineLength)
	}

	for i := 0; i < len(line); i++ {
		if line[i] >= 0x80 {
			return Command{}, newCommandError("non-ASCII byte at offset %d", i)
		}
	}

	trimmed := strings.TrimRight(line, "\r\n")

	if !lineShape.MatchString(trimmed) {
		return Command{}, newCommandError("malformed command line: %q", line)
	}

	verbToken := trimmed
	argument := ""

	if idx := strings.IndexByte(trimmed, ' '); idx >= 0 {
		verbToken = trimmed[:idx]
		argument = trimmed[idx+1:]
	}

	verb, ok := parseVerb(verbToken)
	if !ok {
		return Command{}, newCommandError("Unknown verb: %s", verbToken)
	}

	return Command{Verb: verb, Argument: argument}, nil
}
