package ftpserver

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseCommandRoundTrip(t *testing.T) {
	cmd, err := parseCommand("RETR /pub/file.txt\r\n")
	require.NoError(t, err)
	assert.Equal(t, VerbRETR, cmd.Verb)
	assert.Equal(t, "/pub/file.txt", cmd.Argument)
}

func TestParseCommandCaseInsensitiveVerb(t *testing.T) {
	cmd, err := parseCommand("retr /pub/file.txt\r\n")
	require.NoError(t, err)
	assert.Equal(t, VerbRETR, cmd.Verb)
}

func TestParseCommandNoArgument(t *testing.T) {
	cmd, err := parseCommand("PWD\r\n")
	require.NoError(t, err)
	assert.Equal(t, VerbPWD, cmd.Verb)
	assert.Empty(t, cmd.Argument)
}

func TestParseCommandAlias(t *testing.T) {
	cmd, err := parseCommand("XPWD\r\n")
	require.NoError(t, err)
	assert.Equal(t, VerbPWD, cmd.Verb)
}

func TestParseCommandUnknownVerb(t *testing.T) {
	_, err := parseCommand("BOGUS arg\r\n")
	require.Error(t, err)

	var cmdErr *CommandError
	require.ErrorAs(t, err, &cmdErr)
}

func TestParseCommandTooLong(t *testing.T) {
	_, err := parseCommand("RETR " + strings.Repeat("a", maxCommandLineLength) + "\r\n")
	require.Error(t, err)
}

func TestParseCommandRejectsNonASCII(t *testing.T) {
	_, err := parseCommand("RETR café.txt\r\n")
	require.Error(t, err)
}

func TestParseCommandArgumentPreservesCase(t *testing.T) {
	cmd, err := parseCommand("STOR MixedCase.TXT\r\n")
	require.NoError(t, err)
	assert.Equal(t, "MixedCase.TXT", cmd.Argument)
}
