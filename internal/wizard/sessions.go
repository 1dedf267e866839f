package wizard

import (
	"errors"
	"sync"

	"github.com/google/uuid"

	"sitegen_server/internal/types"
)

var (
	ErrSessionNotFound = errors.New("wizard session not found")
	// ErrComplete signals that the questionnaire has reached review and
	// takes no further answers.
	ErrComplete = errors.New("questionnaire is complete")
)

// Session is one in-flight questionnaire. The settings inside are
// single-writer: only the owning user session advances them.
type Session struct {
	ID       string
	Step     Step
	Settings types.Settings

	history []Step // visited steps, for Back
}

// Store keeps active sessions in memory, keyed by ID. The mutex only
// guards map access and session pointers; generation never holds it.
type Store struct {
	mu       sync.Mutex
	sessions map[string]*Session
}

func NewStore() *Store {
	return &Store{sessions: make(map[string]*Session)}
}

// Start creates a fresh session at the first step with default settings.
func (s *Store) Start() Session {
	session := &Session{
		ID:       uuid.New().String(),
		Step:     StepTitle,
		Settings: types.DefaultSettings(),
	}
	s.mu.Lock()
	s.sessions[session.ID] = session
	s.mu.Unlock()
	return *session
}

// Get returns a snapshot of the session.
func (s *Store) Get(id string) (Session, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	session, ok := s.sessions[id]
	if !ok {
		return Session{}, ErrSessionNotFound
	}
	return *session, nil
}

// Answer applies the user's input to the session's current step and
// returns the updated snapshot.
func (s *Store) Answer(id, input string) (Session, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	session, ok := s.sessions[id]
	if !ok {
		return Session{}, ErrSessionNotFound
	}

	next, updated, err := Apply(session.Step, session.Settings, input)
	if err != nil {
		return *session, err
	}
	session.history = append(session.history, session.Step)
	session.Step = next
	session.Settings = updated
	return *session, nil
}

// Back rewinds the session one step. Answers already recorded stay in
// the settings; re-answering the step overwrites them.
func (s *Store) Back(id string) (Session, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	session, ok := s.sessions[id]
	if !ok {
		return Session{}, ErrSessionNotFound
	}
	if n := len(session.history); n > 0 {
		session.Step = session.history[n-1]
		session.history = session.history[:n-1]
	}
	return *session, nil
}

// Delete drops a session, typically after generation consumed it.
func (s *Store) Delete(id string) {
	s.mu.Lock()
	delete(s.sessions, id)
	s.mu.Unlock()
}
