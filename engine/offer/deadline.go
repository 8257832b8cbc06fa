// Package offer implements the launch-pricing mechanics: the session-stable
// countdown deadline, the remaining-time math, and the one-way discount
// reveal machine.
package offer

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/spf13/afero"
)

// DeadlineStore persists a single offer deadline for the lifetime of a
// session. GetOrCreate reads the stored deadline if present, otherwise
// stores now+duration and returns it. The deadline is immutable once
// created.
type DeadlineStore interface {
	GetOrCreate(duration time.Duration) (time.Time, error)
}

// MemoryStore keeps the deadline in memory only. It is the fallback when
// no session-scoped file can be written, and the store of choice in tests.
type MemoryStore struct {
	now      func() time.Time
	deadline time.Time
}

// NewMemoryStore creates a MemoryStore with an injectable clock.
func NewMemoryStore(now func() time.Time) *MemoryStore {
	if now == nil {
		now = time.Now
	}
	return &MemoryStore{now: now}
}

// GetOrCreate implements DeadlineStore.
func (s *MemoryStore) GetOrCreate(duration time.Duration) (time.Time, error) {
	if s.deadline.IsZero() {
		s.deadline = s.now().Add(duration)
	}
	return s.deadline, nil
}

// SessionStore persists the deadline as an epoch-millisecond string in a
// file keyed by the terminal session, so re-running the binary in the same
// shell keeps the same countdown while a new shell starts a fresh one.
type SessionStore struct {
	fs   afero.Fs
	path string
	now  func() time.Time
}

// SessionKey derives a stable per-shell key. It prefers the environment
// set by the first run (CLUBOS_SESSION), falling back to the controlling
// terminal device, and finally to a random id (which degrades to
// per-process behavior, matching the no-storage fallback posture).
func SessionKey(getenv func(string) string) string {
	if key := getenv("CLUBOS_SESSION"); key != "" {
		return sanitizeKey(key)
	}
	if tty := getenv("SSH_TTY"); tty != "" {
		return sanitizeKey(tty)
	}
	if term := getenv("TERM_SESSION_ID"); term != "" {
		return sanitizeKey(term)
	}
	return uuid.NewString()
}

func sanitizeKey(key string) string {
	return strings.Map(func(r rune) rune {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9', r == '-', r == '_':
			return r
		default:
			return '-'
		}
	}, key)
}

// NewSessionStore creates a file-backed store under dir (usually the OS
// temp dir) for the given session key.
func NewSessionStore(fs afero.Fs, dir, sessionKey string, now func() time.Time) *SessionStore {
	if now == nil {
		now = time.Now
	}
	return &SessionStore{
		fs:   fs,
		path: filepath.Join(dir, "clubos-offer-"+sessionKey),
		now:  now,
	}
}

// GetOrCreate implements DeadlineStore. Read errors other than absence are
// treated as absence; write errors are returned so the caller can fall
// back to a memory store.
func (s *SessionStore) GetOrCreate(duration time.Duration) (time.Time, error) {
	if raw, err := afero.ReadFile(s.fs, s.path); err == nil {
		if ms, parseErr := strconv.ParseInt(strings.TrimSpace(string(raw)), 10, 64); parseErr == nil {
			return time.UnixMilli(ms), nil
		}
	}
	deadline := s.now().Add(duration)
	data := []byte(strconv.FormatInt(deadline.UnixMilli(), 10))
	if err := afero.WriteFile(s.fs, s.path, data, 0o600); err != nil {
		return time.Time{}, fmt.Errorf("failed to persist offer deadline: %w", err)
	}
	return deadline, nil
}

// DefaultStore returns the store used outside tests: the offer deadline
// lives in a file under the OS temp dir, keyed by the terminal session.
func DefaultStore() DeadlineStore {
	return NewSessionStore(afero.NewOsFs(), os.TempDir(), SessionKey(os.Getenv), nil)
}
