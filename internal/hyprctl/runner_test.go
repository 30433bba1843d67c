package hyprctl

import (
	"context"
	"os/exec"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func requireShell(t *testing.T) {
	t.Helper()
	if _, err := exec.LookPath("sh"); err != nil {
		t.Skip("sh not available")
	}
}

func TestExecRunner_Output(t *testing.T) {
	requireShell(t)

	out, err := ExecRunner{}.Output(context.Background(), "sh", "-c", "echo hello")
	require.NoError(t, err)
	assert.Equal(t, "hello\n", string(out))
}

func TestExecRunner_OutputFailureCarriesStderr(t *testing.T) {
	requireShell(t)

	_, err := ExecRunner{}.Output(context.Background(), "sh", "-c", "echo broken >&2; exit 3")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "broken")
}

func TestExecRunner_StartMissingBinary(t *testing.T) {
	err := ExecRunner{}.Start("hyprwin-no-such-binary-for-tests")
	assert.Error(t, err)
}
