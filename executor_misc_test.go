package ftpserver

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExecuteSYST(t *testing.T) {
	res, err := executeSYST(newTestEnv(), newTestState(), "")
	require.NoError(t, err)
	assert.Equal(t, StatusSystemType, res.Status)
	assert.Contains(t, res.Message, "UNIX")
}

func TestExecuteSTATNotImplemented(t *testing.T) {
	res, err := executeSTAT(newTestEnv(), newTestState(), "")
	require.NoError(t, err)
	assert.Equal(t, StatusNotImplemented, res.Status)
}

func TestExecuteHELPNoArgument(t *testing.T) {
	res, err := executeHELP(newTestEnv(), newTestState(), "")
	require.NoError(t, err)
	assert.Equal(t, StatusHelp, res.Status)
}

func TestExecuteHELPWithArgumentRejected(t *testing.T) {
	res, err := executeHELP(newTestEnv(), newTestState(), "RETR")
	require.NoError(t, err)
	assert.Equal(t, StatusNotImplementedForParam, res.Status)
}

func TestExecuteNOOP(t *testing.T) {
	res, err := executeNOOP(newTestEnv(), newTestState(), "")
	require.NoError(t, err)
	assert.Equal(t, StatusCommandOK, res.Status)
}

func TestExecuteQUIT(t *testing.T) {
	res, err := executeQUIT(newTestEnv(), newTestState(), "")
	require.NoError(t, err)
	assert.Equal(t, StatusClosingControlConn, res.Status)
	assert.Contains(t, res.Message, "Goodbye")
}
