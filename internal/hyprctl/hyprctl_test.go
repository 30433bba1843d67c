package hyprctl

import (
	"context"
	"errors"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	hwerrors "github.com/chazuruo/hyprwin/internal/errors"
)

type call struct {
	name string
	args []string
}

type fakeRunner struct {
	mu       sync.Mutex
	output   []byte
	err      error
	startErr error
	outputs  []call
	starts   []call
}

func (f *fakeRunner) Output(_ context.Context, name string, args ...string) ([]byte, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.outputs = append(f.outputs, call{name, args})
	return f.output, f.err
}

func (f *fakeRunner) Start(name string, args ...string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.starts = append(f.starts, call{name, args})
	return f.startErr
}

const clientsJSON = `[
  {"address": "0x1", "mapped": true, "class": "firefox", "title": "Mozilla Firefox", "pid": 100, "workspace": {"id": 1}},
  {"address": "0x2", "class": "kitty", "title": "~", "pid": 200},
  {"address": "0x3", "class": "", "title": "", "pid": -1}
]`

func TestClients(t *testing.T) {
	runner := &fakeRunner{output: []byte(clientsJSON)}
	c := New("", runner, nil)

	records, err := c.Clients(context.Background())
	require.NoError(t, err)
	require.Len(t, records, 3)

	assert.Equal(t, "0x1", records[0].Address)
	assert.Equal(t, "firefox", records[0].Class)
	assert.Equal(t, "Mozilla Firefox", records[0].Title)
	assert.Equal(t, 100, records[0].PID)
	assert.Equal(t, -1, records[2].PID)

	require.Len(t, runner.outputs, 1)
	assert.Equal(t, "hyprctl", runner.outputs[0].name)
	assert.Equal(t, []string{"clients", "-j"}, runner.outputs[0].args)
}

func TestClients_CommandWithArguments(t *testing.T) {
	runner := &fakeRunner{output: []byte("[]")}
	c := New("  /opt/bin/hyprctl --instance 1 ", runner, nil)

	records, err := c.Clients(context.Background())
	require.NoError(t, err)
	assert.Empty(t, records)

	assert.Equal(t, "/opt/bin/hyprctl", runner.outputs[0].name)
	assert.Equal(t, []string{"--instance", "1", "clients", "-j"}, runner.outputs[0].args)
	assert.Equal(t, []string{"/opt/bin/hyprctl", "--instance", "1"}, c.Command())
}

func TestClients_Errors(t *testing.T) {
	tests := []struct {
		name    string
		runner  *fakeRunner
		isParse bool
	}{
		{"command fails", &fakeRunner{err: errors.New("exit status 1: HYPRLAND_INSTANCE_SIGNATURE not set")}, false},
		{"bad json", &fakeRunner{output: []byte("not json")}, true},
		{"wrong shape", &fakeRunner{output: []byte(`{"address": "0x1"}`)}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := New("hyprctl", tt.runner, nil).Clients(context.Background())
			require.Error(t, err)

			ce, ok := hwerrors.AsCommandError(err)
			require.True(t, ok)
			assert.Equal(t, "hyprctl clients -j", ce.Cmd)
			assert.Equal(t, tt.isParse, hwerrors.IsParse(err))
			assert.Equal(t, !tt.isParse, hwerrors.IsCommand(err))
		})
	}
}

func TestSnapshot(t *testing.T) {
	c := New("", &fakeRunner{output: []byte(clientsJSON)}, nil)

	snap := c.Snapshot(context.Background())
	require.Equal(t, 3, snap.Len())
	for i, r := range snap.Records() {
		assert.Equal(t, uint64(i), r.ID)
	}
}

func TestSnapshot_FailureIsEmpty(t *testing.T) {
	c := New("", &fakeRunner{err: errors.New("no such file")}, nil)

	snap := c.Snapshot(context.Background())
	require.NotNil(t, snap)
	assert.Equal(t, 0, snap.Len())
}

func TestFocus(t *testing.T) {
	runner := &fakeRunner{}
	c := New("", runner, nil)

	require.NoError(t, c.Focus("0x55d0c1a2"))

	require.Len(t, runner.starts, 1)
	assert.Equal(t, "hyprctl", runner.starts[0].name)
	assert.Equal(t, []string{"dispatch", "focuswindow", "address:0x55d0c1a2"}, runner.starts[0].args)
	assert.Empty(t, runner.outputs)
}

func TestFocus_StartFailure(t *testing.T) {
	c := New("", &fakeRunner{startErr: errors.New("executable file not found")}, nil)

	err := c.Focus("0x1")
	require.Error(t, err)
	assert.True(t, hwerrors.IsCommand(err))
	assert.True(t, strings.Contains(err.Error(), "address:0x1"))
}
