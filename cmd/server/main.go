// tile-sandbox-server serves the sandbox over SSH. Every connection gets
// its own simulation, and tilemaps are saved under the SSH user name.
//
//	go build -o tile-sandbox-server ./cmd/server
//	./tile-sandbox-server [--port 2222] [--key server_host_key] [--config sandbox.yaml] [--mode gravity]
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
	"os"
	"os/signal"
	"strings"
	"sync"
	"syscall"
	"time"
	"unicode"

	"github.com/gdamore/tcell/v2"
	gossh "github.com/gliderlabs/ssh"
	"github.com/google/uuid"
	"go.uber.org/zap"
	xssh "golang.org/x/crypto/ssh"
	"golang.org/x/sync/errgroup"

	"tile-sandbox/internal/config"
	"tile-sandbox/internal/logging"
	"tile-sandbox/internal/render"
	"tile-sandbox/internal/sim"
	internalssh "tile-sandbox/internal/ssh"
	"tile-sandbox/internal/term"
)

const (
	maxNameBytes = 16
	shutdownWait = 5 * time.Second
)

// allowedTerms lists the TERM values passed through to terminfo. Anything
// else falls back to xterm-256color.
var allowedTerms = map[string]bool{
	"xterm":                 true,
	"xterm-256color":        true,
	"screen":                true,
	"screen-256color":       true,
	"tmux":                  true,
	"tmux-256color":         true,
	"linux":                 true,
	"vt100":                 true,
	"rxvt-unicode":          true,
	"rxvt-unicode-256color": true,
}

func main() {
	port := flag.Int("port", 2222, "SSH server port")
	keyFile := flag.String("key", "server_host_key", "PEM host key, generated when absent")
	cfgFile := flag.String("config", "", "YAML config file")
	mode := flag.String("mode", "", "simulation: sandbox or gravity (overrides config)")
	flag.Parse()

	cfg, err := config.Load(*cfgFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
	if *mode != "" {
		cfg.Mode = *mode
	}
	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}

	log, err := logging.Open(cfg.Log.Level, cfg.Log.Encoding, cfg.Log.File)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
	defer func() { _ = log.Sync() }()

	signer, err := loadOrCreateHostKey(*keyFile, log)
	if err != nil {
		log.Fatal("host key", zap.Error(err))
	}

	srv := &server{cfg: cfg, log: log}
	ssh := &gossh.Server{
		Addr:        fmt.Sprintf(":%d", *port),
		Handler:     srv.handleSession,
		PtyCallback: func(gossh.Context, gossh.Pty) bool { return true },
		HostSigners: []gossh.Signer{signer},
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		log.Info("listening", zap.String("addr", ssh.Addr), zap.String("mode", cfg.Mode))
		if err := ssh.ListenAndServe(); !errors.Is(err, gossh.ErrServerClosed) {
			return err
		}
		return nil
	})
	g.Go(func() error {
		<-ctx.Done()
		log.Info("shutting down", zap.Int("sessions", srv.active()))
		sctx, cancel := context.WithTimeout(context.Background(), shutdownWait)
		defer cancel()
		return ssh.Shutdown(sctx)
	})
	if err := g.Wait(); err != nil && !errors.Is(err, context.DeadlineExceeded) {
		log.Error("server stopped", zap.Error(err))
		os.Exit(1)
	}
}

type server struct {
	cfg config.Config
	log *zap.Logger

	mu       sync.Mutex
	sessions map[string]string // session id -> user
}

func (s *server) track(id, user string) func() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.sessions == nil {
		s.sessions = make(map[string]string)
	}
	s.sessions[id] = user
	return func() {
		s.mu.Lock()
		delete(s.sessions, id)
		s.mu.Unlock()
	}
}

func (s *server) active() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.sessions)
}

// handleSession runs one simulation for the lifetime of the connection.
func (s *server) handleSession(sess gossh.Session) {
	user := sanitizeName(sess.User())
	if user == "" {
		user = "guest"
	}
	id := uuid.NewString()
	log := s.log.With(zap.String("session", id), zap.String("user", user))
	defer s.track(id, user)()

	pty, winCh, ok := sess.Pty()
	if !ok {
		fmt.Fprintln(sess, "tile-sandbox needs a PTY. Connect with: ssh -t -p 2222 <host>")
		return
	}
	screen, err := newSessionScreen(sess, pty, winCh, sessionTerm(sess.Environ(), pty.Term))
	if err != nil {
		fmt.Fprintf(sess, "Terminal setup failed: %v\n", err)
		log.Warn("terminal setup failed", zap.Error(err))
		return
	}

	log.Info("session started", zap.String("remote", sess.RemoteAddr().String()))
	game := sim.New(s.cfg, sim.NewDeps(s.cfg, user, render.FileTextures{}, log))
	if err := term.Run(sess.Context(), screen, s.cfg, game, log); err != nil {
		log.Error("session failed", zap.Error(err))
		fmt.Fprintf(sess, "error: %v\n", err)
		return
	}
	log.Info("session ended")
}

// termMu guards the TERM variable terminfo reads during screen creation.
var termMu sync.Mutex

func newSessionScreen(sess gossh.Session, pty gossh.Pty, winCh <-chan gossh.Window, termName string) (tcell.Screen, error) {
	tty := internalssh.NewTty(sess, pty, winCh)
	termMu.Lock()
	_ = os.Setenv("TERM", termName)
	screen, err := tcell.NewTerminfoScreenFromTty(tty)
	termMu.Unlock()
	if err != nil {
		return nil, err
	}
	if err := screen.Init(); err != nil {
		return nil, err
	}
	return screen, nil
}

// sessionTerm picks the client's TERM from its environment or PTY request,
// falling back to xterm-256color for anything not in allowedTerms.
func sessionTerm(environ []string, ptyTerm string) string {
	name := ptyTerm
	for _, env := range environ {
		if v, ok := strings.CutPrefix(env, "TERM="); ok {
			name = v
			break
		}
	}
	if allowedTerms[name] {
		return name
	}
	return "xterm-256color"
}

// sanitizeName drops control characters and truncates to maxNameBytes
// without splitting a rune.
func sanitizeName(s string) string {
	var b strings.Builder
	for _, r := range s {
		if unicode.IsControl(r) {
			continue
		}
		n := len(string(r))
		if b.Len()+n > maxNameBytes {
			break
		}
		b.WriteRune(r)
	}
	return b.String()
}

// loadOrCreateHostKey loads a PEM private key from path, or generates an
// ed25519 key and tries to persist it.
func loadOrCreateHostKey(path string, log *zap.Logger) (gossh.Signer, error) {
	if data, err := os.ReadFile(path); err == nil {
		if signer, err := xssh.ParsePrivateKey(data); err == nil {
			log.Info("loaded host key", zap.String("path", path))
			return signer, nil
		}
	}

	log.Info("generating ed25519 host key", zap.String("path", path))
	_, key, err := ed25519.GenerateKey(rand.Reader)
	if err != nil {
		return nil, fmt.Errorf("generate host key: %w", err)
	}
	signer, err := xssh.NewSignerFromKey(key)
	if err != nil {
		return nil, fmt.Errorf("create signer: %w", err)
	}
	if block, err := xssh.MarshalPrivateKey(key, "tile-sandbox server"); err == nil {
		if err := os.WriteFile(path, pem.EncodeToMemory(block), 0o600); err != nil {
			log.Warn("host key not saved", zap.Error(err))
		}
	}
	return signer, nil
}
