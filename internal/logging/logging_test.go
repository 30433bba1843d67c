package logging

import (
	"bytes"
	"testing"

	"github.com/hashicorp/go-hclog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		in      string
		want    hclog.Level
		wantErr bool
	}{
		{"", hclog.Warn, false},
		{"trace", hclog.Trace, false},
		{"DEBUG", hclog.Debug, false},
		{" info ", hclog.Info, false},
		{"warn", hclog.Warn, false},
		{"error", hclog.Error, false},
		{"off", hclog.Off, false},
		{"loud", hclog.NoLevel, true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseLevel(tt.in)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestNew_RespectsLevel(t *testing.T) {
	var buf bytes.Buffer
	logger := New(Options{Level: "warn", Output: &buf})

	logger.Debug("hidden")
	logger.Warn("shown", "key", "value")

	out := buf.String()
	assert.NotContains(t, out, "hidden")
	assert.Contains(t, out, "shown")
	assert.Contains(t, out, "key=value")
}

func TestNew_UnknownLevelFallsBack(t *testing.T) {
	var buf bytes.Buffer
	logger := New(Options{Level: "nonsense", Output: &buf})

	logger.Info("hidden")
	logger.Warn("shown")

	assert.NotContains(t, buf.String(), "hidden")
	assert.Contains(t, buf.String(), "shown")
}

func TestSession_TagsLines(t *testing.T) {
	var buf bytes.Buffer
	logger := Session(New(Options{Level: "info", Output: &buf}))

	logger.Info("snapshot taken")

	assert.Contains(t, buf.String(), "hyprwin.session")
	assert.Contains(t, buf.String(), "session=")
}

func TestSession_NilParent(t *testing.T) {
	assert.NotPanics(t, func() {
		Session(nil).Info("nothing")
	})
}
