// bananalike-server serves BananaLike over SSH. Every connection gets its
// own map and player. Build:
//
//	go build -o bananalike-server ./cmd/server
//
// Usage:
//
//	./bananalike-server [--port 2222] [--key server_host_key]
//
// Connect with:
//
//	ssh -t -p 2222 localhost
package main

import (
	"context"
	"crypto/ed25519"
	"crypto/rand"
	"encoding/pem"
	"errors"
	"flag"
	"fmt"
	"log"
	"os"

	"bananalike/internal/config"
	"bananalike/internal/game"
	internalssh "bananalike/internal/ssh"
	"bananalike/internal/telemetry"

	gossh "github.com/gliderlabs/ssh"
	xssh "golang.org/x/crypto/ssh"
)

func main() {
	port := flag.Int("port", 2222, "SSH server port")
	keyFile := flag.String("key", "server_host_key", "Path to the PEM-encoded host key (auto-generated if absent)")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("load config: %v", err)
	}
	if cfg.Trace {
		shutdown, err := telemetry.Setup(context.Background())
		if err != nil {
			log.Printf("telemetry disabled: %v", err)
		} else {
			defer shutdown(context.Background()) //nolint:errcheck
		}
	}

	signer, err := loadOrCreateHostKey(*keyFile)
	if err != nil {
		log.Fatalf("host key: %v", err)
	}

	srv := &gossh.Server{
		Addr: fmt.Sprintf(":%d", *port),
		Handler: func(s gossh.Session) {
			handleSession(s, cfg.Seed)
		},
		// Accept PTY requests from any client.
		PtyCallback: func(_ gossh.Context, _ gossh.Pty) bool { return true },
		HostSigners: []gossh.Signer{signer},
	}

	log.Printf("%s SSH server listening on :%d", game.Title, *port)
	log.Printf("Connect with:  ssh -t -p %d -o StrictHostKeyChecking=no localhost", *port)
	log.Fatal(srv.ListenAndServe())
}

// handleSession plays one game on the session's terminal and blocks until
// the player quits or disconnects.
func handleSession(s gossh.Session, seed int64) {
	screen, err := internalssh.NewScreen(s)
	if errors.Is(err, internalssh.ErrNoPTY) {
		fmt.Fprintln(s, "This game requires a PTY. Connect with: ssh -t -p 2222 <host>")
		return
	}
	if err != nil {
		fmt.Fprintf(s, "Terminal setup failed: %v\n", err)
		log.Printf("session %s: %v", s.RemoteAddr(), err)
		return
	}

	log.Printf("session %s (%s) started", s.RemoteAddr(), s.User())
	game.NewWithScreen(s.Context(), screen, seed).Run(s.Context())
	log.Printf("session %s ended", s.RemoteAddr())
}

// loadOrCreateHostKey loads a PEM private key from path, or generates and
// persists a new ed25519 key if the file is absent or unreadable.
func loadOrCreateHostKey(path string) (gossh.Signer, error) {
	if data, err := os.ReadFile(path); err == nil {
		if signer, err := xssh.ParsePrivateKey(data); err == nil {
			log.Printf("Loaded host key from %s", path)
			return signer, nil
		}
	}

	log.Printf("Generating new ed25519 host key → %s", path)
	_, key, err := ed25519.GenerateKey(rand.Reader)
	if err != nil {
		return nil, fmt.Errorf("generate host key: %w", err)
	}
	signer, err := xssh.NewSignerFromKey(key)
	if err != nil {
		return nil, fmt.Errorf("create signer: %w", err)
	}
	// Persist for next run (non-fatal if it fails).
	if pemBlock, err := xssh.MarshalPrivateKey(key, "bananalike server"); err == nil {
		_ = os.WriteFile(path, pem.EncodeToMemory(pemBlock), 0600)
	}
	return signer, nil
}
