package proc

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	hwerrors "github.com/chazuruo/hyprwin/internal/errors"
)

func TestTable_Self(t *testing.T) {
	name, err := NewTable().Name(os.Getpid())
	require.NoError(t, err)
	assert.NotEmpty(t, name)
}

func TestTable_InvalidPid(t *testing.T) {
	for _, pid := range []int{0, -1} {
		_, err := NewTable().Name(pid)
		assert.True(t, hwerrors.IsInvalid(err), "pid %d", pid)
	}
}

func TestTable_Gone(t *testing.T) {
	// Larger than any Linux pid_max.
	_, err := NewTable().Name(1 << 30)
	assert.Error(t, err)
}

func TestStatic(t *testing.T) {
	s := Static{42: "firefox"}

	name, err := s.Name(42)
	require.NoError(t, err)
	assert.Equal(t, "firefox", name)

	_, err = s.Name(7)
	assert.True(t, hwerrors.IsNotFound(err))
}
