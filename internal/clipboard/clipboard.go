// Package clipboard copies text to the user's clipboard through one of
// several backends.
package clipboard

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/atotto/clipboard"
	"github.com/aymanbagabas/go-osc52/v2"
	"github.com/godbus/dbus/v5"
)

// Backend names accepted by New.
const (
	BackendAuto    = "auto"
	BackendSystem  = "system"
	BackendOSC52   = "osc52"
	BackendKlipper = "klipper"
	BackendStdout  = "stdout"
)

// ErrUnsupportedBackend is returned for an unknown backend name.
var ErrUnsupportedBackend = errors.New("unsupported clipboard backend")

// Writer puts text on a clipboard.
type Writer interface {
	WriteText(ctx context.Context, text string) error
}

// System writes through the platform clipboard tools (xclip, xsel,
// wl-copy, pbcopy or the Windows API).
type System struct{}

// WriteText implements Writer.
func (System) WriteText(_ context.Context, text string) error {
	if clipboard.Unsupported {
		return fmt.Errorf("%w: no system clipboard utility found", ErrUnsupportedBackend)
	}
	return clipboard.WriteAll(text)
}

// OSC52 writes an OSC 52 escape sequence so the terminal sets its clipboard.
// It works over SSH and inside tmux or screen.
type OSC52 struct {
	out  io.Writer
	term string
	tmux bool
}

// NewOSC52 creates an OSC52 writer. The multiplexer wrapping is derived from
// the TERM and TMUX environment variables.
func NewOSC52(out io.Writer) *OSC52 {
	return &OSC52{
		out:  out,
		term: os.Getenv("TERM"),
		tmux: os.Getenv("TMUX") != "",
	}
}

// WriteText implements Writer.
func (o *OSC52) WriteText(_ context.Context, text string) error {
	seq := osc52.New(text)
	switch {
	case o.tmux:
		seq = seq.Tmux()
	case strings.HasPrefix(o.term, "screen"):
		seq = seq.Screen()
	}
	_, err := seq.WriteTo(o.out)
	return err
}

// Stdout prints the text followed by a newline.
type Stdout struct {
	out io.Writer
}

// NewStdout creates a Stdout writer.
func NewStdout(out io.Writer) *Stdout {
	return &Stdout{out: out}
}

// WriteText implements Writer.
func (s *Stdout) WriteText(_ context.Context, text string) error {
	_, err := fmt.Fprintln(s.out, text)
	return err
}

// New returns the Writer for backend. Escape sequences and printed text go to
// out. The auto backend prefers OSC 52 over SSH, then the system clipboard,
// then OSC 52.
func New(backend string, out io.Writer) (Writer, error) {
	switch backend {
	case BackendSystem:
		return System{}, nil
	case BackendOSC52:
		return NewOSC52(out), nil
	case BackendStdout:
		return NewStdout(out), nil
	case BackendKlipper:
		conn, err := dbus.ConnectSessionBus()
		if err != nil {
			return nil, fmt.Errorf("connect to session bus: %w", err)
		}
		return NewKlipper(conn.Object(KlipperService, KlipperPath)), nil
	case BackendAuto, "":
		return auto(out), nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedBackend, backend)
	}
}

func auto(out io.Writer) Writer {
	if os.Getenv("SSH_TTY") != "" || os.Getenv("SSH_CONNECTION") != "" {
		slog.Debug("clipboard backend selected", "backend", BackendOSC52, "reason", "ssh session")
		return NewOSC52(out)
	}
	if !clipboard.Unsupported {
		slog.Debug("clipboard backend selected", "backend", BackendSystem)
		return System{}
	}
	slog.Debug("clipboard backend selected", "backend", BackendOSC52, "reason", "no system clipboard")
	return NewOSC52(out)
}
