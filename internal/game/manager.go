package game

import (
	"errors"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
)

var (
	ErrGameInProgress = errors.New("game already in progress")
	ErrNoGame         = errors.New("no game in this chat")
	ErrNoHostedGame   = errors.New("no hosted game qualifies")
	ErrEmptySubject   = errors.New("subject must not be empty")
	ErrNotAllowed     = errors.New("not allowed")
	ErrInvalidState   = errors.New("invalid state for action")
)

// Manager owns the chat -> session registry and the transition rules on
// it. A single mutex guards the whole map; session counts stay small and
// FindByHost scans every entry, so per-chat locking buys nothing here.
type Manager struct {
	mu       sync.Mutex
	sessions map[int64]*Session
	seq      uint64
}

func NewManager() *Manager {
	return &Manager{sessions: make(map[int64]*Session)}
}

// StartGame creates a session in AwaitingSubject state. The existence
// check and the insert happen under one lock hold, so two racing starts
// cannot both win.
func (m *Manager) StartGame(chatID, hostID int64, hostName string) (Session, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.sessions[chatID] != nil {
		return Session{}, ErrGameInProgress
	}
	m.seq++
	s := &Session{
		ID:        uuid.NewString(),
		ChatID:    chatID,
		State:     StateAwaitingSubject,
		HostID:    hostID,
		HostName:  hostName,
		CreatedAt: time.Now().UTC(),
		seq:       m.seq,
	}
	m.sessions[chatID] = s
	return *s, nil
}

// Get returns a snapshot of the chat's session, if any. No side effects.
func (m *Manager) Get(chatID int64) (Session, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	s := m.sessions[chatID]
	if s == nil {
		return Session{}, false
	}
	return *s, true
}

// ArmSubjectEntry marks the caller's awaiting session as collecting the
// subject through the private conversation. When the caller hosts
// several setups at once the earliest-created one is chosen.
func (m *Manager) ArmSubjectEntry(userID int64) (Session, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	s := m.findByHost(userID, func(s *Session) bool {
		return s.State == StateAwaitingSubject
	})
	if s == nil {
		return Session{}, ErrNoHostedGame
	}
	s.EntryArmed = true
	return *s, nil
}

// CommitSubject stores the trimmed subject on the armed awaiting session
// hosted by userID and activates it. The subject is settable exactly
// once: an active session no longer qualifies, so a second commit
// reports ErrNoHostedGame. An empty subject is retryable and leaves the
// session untouched.
func (m *Manager) CommitSubject(userID int64, subject string) (Session, error) {
	subject = strings.TrimSpace(subject)
	if subject == "" {
		return Session{}, ErrEmptySubject
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	s := m.findByHost(userID, func(s *Session) bool {
		return s.State == StateAwaitingSubject && s.EntryArmed
	})
	if s == nil {
		return Session{}, ErrNoHostedGame
	}
	s.Subject = subject
	s.State = StateActive
	s.EntryArmed = false
	return *s, nil
}

// RecordWinner stores the winner's display name on an active session.
// A second call overwrites; conclusion follows immediately in the
// normal flow.
func (m *Manager) RecordWinner(chatID int64, name string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	s := m.sessions[chatID]
	if s == nil {
		return ErrNoGame
	}
	if s.State != StateActive {
		return ErrInvalidState
	}
	s.WinnerName = name
	return nil
}

// EndGame removes the chat's session in any state and returns the final
// snapshot. Only the host or a privileged actor may conclude; callers
// resolve privilege before calling so no network round trip happens
// under the registry lock.
func (m *Manager) EndGame(chatID, actorID int64, privileged bool) (Session, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	s := m.sessions[chatID]
	if s == nil {
		return Session{}, ErrNoGame
	}
	if s.HostID != actorID && !privileged {
		return Session{}, ErrNotAllowed
	}
	delete(m.sessions, chatID)
	return *s, nil
}

// ConcludeGuessed records the winner and removes the session in one
// step. Only the host may confirm a correct guess, and only while a
// subject is committed.
func (m *Manager) ConcludeGuessed(chatID, hostID int64, winnerName string) (Session, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	s := m.sessions[chatID]
	if s == nil {
		return Session{}, ErrNoGame
	}
	if s.HostID != hostID {
		return Session{}, ErrNotAllowed
	}
	if s.State != StateActive {
		return Session{}, ErrInvalidState
	}
	s.WinnerName = winnerName
	delete(m.sessions, chatID)
	return *s, nil
}

// FindByHost returns a snapshot of the session hosted by userID that
// matches pred. A host may run games in several chats at once; the
// earliest-created session wins, with the chat ID as the final
// tie-break, so the choice is deterministic regardless of map iteration
// order.
func (m *Manager) FindByHost(userID int64, pred func(Session) bool) (Session, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	s := m.findByHost(userID, func(s *Session) bool { return pred(*s) })
	if s == nil {
		return Session{}, false
	}
	return *s, true
}

func (m *Manager) findByHost(userID int64, pred func(*Session) bool) *Session {
	var best *Session
	for _, s := range m.sessions {
		if s.HostID != userID || !pred(s) {
			continue
		}
		if best == nil || s.seq < best.seq || (s.seq == best.seq && s.ChatID < best.ChatID) {
			best = s
		}
	}
	return best
}

// Count reports the number of live sessions.
func (m *Manager) Count() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.sessions)
}

// Sessions returns snapshots of all live sessions in creation order.
func (m *Manager) Sessions() []Session {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]Session, 0, len(m.sessions))
	for _, s := range m.sessions {
		out = append(out, *s)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].seq < out[j].seq })
	return out
}
