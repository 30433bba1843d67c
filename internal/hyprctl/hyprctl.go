// Package hyprctl talks to the Hyprland compositor through its hyprctl CLI.
package hyprctl

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/hashicorp/go-hclog"

	hwerrors "github.com/chazuruo/hyprwin/internal/errors"
	"github.com/chazuruo/hyprwin/internal/window"
)

// DefaultCommand is the hyprctl executable looked up on PATH.
const DefaultCommand = "hyprctl"

// client mirrors the fields of one element of `hyprctl clients -j`.
// Everything else in the payload is ignored.
type client struct {
	Address string `json:"address"`
	Class   string `json:"class"`
	Title   string `json:"title"`
	PID     int    `json:"pid"`
}

// Client issues hyprctl requests.
type Client struct {
	command []string
	runner  Runner
	logger  hclog.Logger
}

// New creates a client. command may carry leading arguments, for example
// "hyprctl --instance 1"; an empty command selects DefaultCommand. A nil
// runner selects ExecRunner.
func New(command string, runner Runner, logger hclog.Logger) *Client {
	parts := strings.Fields(command)
	if len(parts) == 0 {
		parts = []string{DefaultCommand}
	}
	if runner == nil {
		runner = ExecRunner{}
	}
	if logger == nil {
		logger = hclog.NewNullLogger()
	}
	return &Client{command: parts, runner: runner, logger: logger}
}

// Clients lists the open windows in compositor order.
func (c *Client) Clients(ctx context.Context) ([]window.Record, error) {
	args := c.args("clients", "-j")

	out, err := c.runner.Output(ctx, c.command[0], args...)
	if err != nil {
		return nil, &hwerrors.CommandError{
			Op:  "list clients",
			Err: fmt.Errorf("%w: %v", hwerrors.ErrCommand, err),
			Cmd: c.display(args),
		}
	}

	var clients []client
	if err := json.Unmarshal(out, &clients); err != nil {
		return nil, &hwerrors.CommandError{
			Op:  "list clients",
			Err: fmt.Errorf("%w: %v", hwerrors.ErrParse, err),
			Cmd: c.display(args),
		}
	}

	records := make([]window.Record, len(clients))
	for i, cl := range clients {
		records[i] = window.Record{
			Address: cl.Address,
			Class:   cl.Class,
			Title:   cl.Title,
			PID:     cl.PID,
		}
	}

	c.logger.Debug("listed clients", "count", len(records))
	return records, nil
}

// Snapshot lists the open windows and numbers them. When the compositor
// cannot be queried the failure is logged and an empty snapshot returned.
func (c *Client) Snapshot(ctx context.Context) *window.Snapshot {
	records, err := c.Clients(ctx)
	if err != nil {
		c.logger.Warn("window snapshot unavailable", "error", err)
		return window.Empty()
	}
	return window.NewSnapshot(records)
}

// Focus asks the compositor to focus the window at address. The request is
// started and not waited for.
func (c *Client) Focus(address string) error {
	args := c.args("dispatch", "focuswindow", "address:"+address)

	if err := c.runner.Start(c.command[0], args...); err != nil {
		return &hwerrors.CommandError{
			Op:  "focus window",
			Err: fmt.Errorf("%w: %v", hwerrors.ErrCommand, err),
			Cmd: c.display(args),
		}
	}

	c.logger.Debug("focus dispatched", "address", address)
	return nil
}

// Command returns the executable and leading arguments in use.
func (c *Client) Command() []string {
	return append([]string(nil), c.command...)
}

func (c *Client) args(extra ...string) []string {
	args := make([]string, 0, len(c.command)-1+len(extra))
	args = append(args, c.command[1:]...)
	return append(args, extra...)
}

func (c *Client) display(args []string) string {
	return strings.Join(append([]string{c.command[0]}, args...), " ")
}
