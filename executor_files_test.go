package ftpserver

import (
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExecuteRETRStagesPlan(t *testing.T) {
	env := newTestEnv()
	require.NoError(t, afero.WriteFile(env.FS, "/file.txt", []byte("hi"), 0o644))

	res, err := executeRETR(env, newTestState(), "file.txt")
	require.NoError(t, err)
	assert.Equal(t, StatusFileStatusOK, res.Status)
	require.NotNil(t, res.NewState)
	assert.Equal(t, TransferRetrieve, res.NewState.Transfer.Kind)
	assert.Equal(t, "/file.txt", res.NewState.Transfer.Parameter)
}

func TestExecuteRETRRequiresArgument(t *testing.T) {
	res, err := executeRETR(newTestEnv(), newTestState(), "")
	require.NoError(t, err)
	assert.Equal(t, StatusSyntaxErrorParameters, res.Status)
	assert.Nil(t, res.NewState)
}

func TestExecuteRETRMissingFileRejectedBeforeDataPhase(t *testing.T) {
	res, err := executeRETR(newTestEnv(), newTestState(), "nope.txt")
	require.NoError(t, err)
	assert.Equal(t, StatusActionNotTaken, res.Status)
	assert.Nil(t, res.NewState)
}

func TestExecuteSTORStagesPlan(t *testing.T) {
	res, err := executeSTOR(newTestEnv(), newTestState(), "upload.bin")
	require.NoError(t, err)
	assert.Equal(t, StatusFileStatusOK, res.Status)
	assert.Equal(t, TransferStore, res.NewState.Transfer.Kind)
}

func TestExecuteAPPEStagesPlan(t *testing.T) {
	res, err := executeAPPE(newTestEnv(), newTestState(), "log.txt")
	require.NoError(t, err)
	assert.Equal(t, StatusFileStatusOK, res.Status)
	assert.Equal(t, TransferAppend, res.NewState.Transfer.Kind)
}

func TestExecuteSTOUDefaultsToCurrentDir(t *testing.T) {
	state := newTestState()
	state.NamePrefix = "/uploads"

	res, err := executeSTOU(newTestEnv(), state, "")
	require.NoError(t, err)
	assert.Equal(t, StatusFileStatusOK, res.Status)
	assert.Equal(t, TransferStoreUnique, res.NewState.Transfer.Kind)
	assert.Equal(t, "/uploads", res.NewState.Transfer.Parameter)
}

func TestExecuteLISTDefaultsToCurrentDir(t *testing.T) {
	env := newTestEnv()
	require.NoError(t, env.FS.Mkdir("/pub", 0o755))

	state := newTestState()
	state.NamePrefix = "/pub"

	res, err := executeLIST(env, state, "")
	require.NoError(t, err)
	assert.Equal(t, StatusFileStatusOK, res.Status)
	assert.Equal(t, TransferList, res.NewState.Transfer.Kind)
	assert.Equal(t, "/pub", res.NewState.Transfer.Parameter)
}

func TestExecuteLISTWithArgument(t *testing.T) {
	env := newTestEnv()
	require.NoError(t, env.FS.Mkdir("/sub", 0o755))

	res, err := executeLIST(env, newTestState(), "sub")
	require.NoError(t, err)
	assert.Equal(t, "/sub", res.NewState.Transfer.Parameter)
}

func TestExecuteLISTMissingPathRejectedBeforeDataPhase(t *testing.T) {
	res, err := executeLIST(newTestEnv(), newTestState(), "nope")
	require.NoError(t, err)
	assert.Equal(t, StatusActionNotTaken, res.Status)
	assert.Nil(t, res.NewState)
}

func TestExecuteNLSTStagesPlan(t *testing.T) {
	res, err := executeNLST(newTestEnv(), newTestState(), "")
	require.NoError(t, err)
	assert.Equal(t, StatusFileStatusOK, res.Status)
	assert.Equal(t, TransferNlst, res.NewState.Transfer.Kind)
}

func TestExecuteNLSTMissingPathRejectedBeforeDataPhase(t *testing.T) {
	res, err := executeNLST(newTestEnv(), newTestState(), "nope")
	require.NoError(t, err)
	assert.Equal(t, StatusActionNotTaken, res.Status)
	assert.Nil(t, res.NewState)
}
