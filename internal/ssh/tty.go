// Package ssh lets a tcell screen run over a gliderlabs/ssh session.
package ssh

import (
	"sync"

	"github.com/gdamore/tcell/v2"
	gossh "github.com/gliderlabs/ssh"
)

// SessionTty implements tcell.Tty on top of an SSH session. Keyboard input
// is read from the session and rendered output is written back to it.
type SessionTty struct {
	gossh.Session

	mu     sync.RWMutex
	window gossh.Window
	winCh  <-chan gossh.Window
	once   sync.Once
	onSize func()
}

// NewSessionTty wraps s. pty carries the initial window size and winCh the
// later window-change requests.
func NewSessionTty(s gossh.Session, pty gossh.Pty, winCh <-chan gossh.Window) *SessionTty {
	return &SessionTty{Session: s, window: pty.Window, winCh: winCh}
}

// Start, Stop and Drain are no-ops: the SSH channel is opened and closed by
// the server handler, and writes are not buffered locally.
func (t *SessionTty) Start() error { return nil }
func (t *SessionTty) Stop() error  { return nil }
func (t *SessionTty) Drain() error { return nil }

// WindowSize returns the client's current terminal dimensions.
func (t *SessionTty) WindowSize() (tcell.WindowSize, error) {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return tcell.WindowSize{Width: t.window.Width, Height: t.window.Height}, nil
}

// NotifyResize registers cb to run after every window change. The channel
// watcher is started on the first call and lives as long as the session.
func (t *SessionTty) NotifyResize(cb func()) {
	t.mu.Lock()
	t.onSize = cb
	t.mu.Unlock()
	t.once.Do(func() { go t.watch() })
}

func (t *SessionTty) watch() {
	for win := range t.winCh {
		t.mu.Lock()
		t.window = win
		cb := t.onSize
		t.mu.Unlock()
		if cb != nil {
			cb()
		}
	}
}
