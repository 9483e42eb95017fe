package main

import (
	"os"
	"path/filepath"
	"testing"

	"go.uber.org/zap"
)

func TestSanitizeName(t *testing.T) {
	cases := []struct {
		name   string
		input  string
		expect string
	}{
		{"normal short name", "Alice", "Alice"},
		{"exactly 16 chars", "1234567890123456", "1234567890123456"},
		{"long name truncated", "ThisIsAVeryLongUsername", "ThisIsAVeryLongU"},
		{"control chars stripped", "he\x00ll\x1bo", "hello"},
		{"ansi escape partial", "he\x1b[31mllo", "he[31mllo"},
		{"empty input", "", ""},
		{"pure control chars", "\x00\x01\x02\x1b", ""},
		{"multi-byte runes not split", "日本語のテスト名前", "日本語のテ"},
		{"tabs stripped", "hello\tworld", "helloworld"},
		{"newlines stripped", "hello\nworld", "helloworld"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := sanitizeName(tc.input)
			if got != tc.expect {
				t.Errorf("sanitizeName(%q) = %q, want %q", tc.input, got, tc.expect)
			}
		})
	}
}

func TestSessionTerm(t *testing.T) {
	cases := []struct {
		name    string
		environ []string
		pty     string
		want    string
	}{
		{"env wins", []string{"LANG=C", "TERM=tmux"}, "xterm", "tmux"},
		{"pty fallback", nil, "screen", "screen"},
		{"unknown term", []string{"TERM=evil-term"}, "", "xterm-256color"},
		{"path traversal", []string{"TERM=../../../etc/passwd"}, "", "xterm-256color"},
		{"empty", nil, "", "xterm-256color"},
		{"kitty not listed", nil, "xterm-kitty", "xterm-256color"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := sessionTerm(tc.environ, tc.pty); got != tc.want {
				t.Errorf("sessionTerm = %q, want %q", got, tc.want)
			}
		})
	}
}

func TestHostKeyPersisted(t *testing.T) {
	path := filepath.Join(t.TempDir(), "host_key")
	first, err := loadOrCreateHostKey(path, zap.NewNop())
	if err != nil {
		t.Fatal(err)
	}
	if _, err := os.Stat(path); err != nil {
		t.Fatalf("key not written: %v", err)
	}
	second, err := loadOrCreateHostKey(path, zap.NewNop())
	if err != nil {
		t.Fatal(err)
	}
	if string(first.PublicKey().Marshal()) != string(second.PublicKey().Marshal()) {
		t.Error("reloaded key differs")
	}
}

func TestTrackSessions(t *testing.T) {
	s := &server{}
	done := s.track("a", "alice")
	s.track("b", "bob")
	if s.active() != 2 {
		t.Fatalf("active=%d", s.active())
	}
	done()
	if s.active() != 1 {
		t.Errorf("active=%d after end", s.active())
	}
}
