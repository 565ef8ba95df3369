package ssh

import (
	"testing"
	"time"

	gossh "github.com/gliderlabs/ssh"
)

func TestSessionTtyResize(t *testing.T) {
	winCh := make(chan gossh.Window, 1)
	tty := NewSessionTty(nil, gossh.Pty{Window: gossh.Window{Width: 80, Height: 24}}, winCh)

	size, err := tty.WindowSize()
	if err != nil {
		t.Fatalf("WindowSize: %v", err)
	}
	if size.Width != 80 || size.Height != 24 {
		t.Fatalf("initial size = %dx%d, want 80x24", size.Width, size.Height)
	}

	resized := make(chan struct{}, 1)
	tty.NotifyResize(func() { resized <- struct{}{} })
	winCh <- gossh.Window{Width: 120, Height: 50}

	select {
	case <-resized:
	case <-time.After(time.Second):
		t.Fatal("resize callback not invoked")
	}
	size, _ = tty.WindowSize()
	if size.Width != 120 || size.Height != 50 {
		t.Fatalf("size after resize = %dx%d, want 120x50", size.Width, size.Height)
	}
	close(winCh)
}
