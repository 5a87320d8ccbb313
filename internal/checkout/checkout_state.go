package checkout

import "sync"

type State string

const (
	StateCollecting State = "COLLECTING"
	StateSubmitting State = "SUBMITTING"
	StateConfirmed  State = "CONFIRMED"
)

// String representation (for logging)
func (s State) String() string {
	return string(s)
}

// Session tracks one checkout's progress. While a submission is in
// flight the session is in StateSubmitting and a second place-order is
// refused; a failed submission returns to StateCollecting with the
// error message retained so the user can correct and retry.
type Session struct {
	mu        sync.Mutex
	state     State
	lastError string
}

func NewSession() *Session {
	return &Session{state: StateCollecting}
}

func (s *Session) State() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

func (s *Session) LastError() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.lastError
}

func (s *Session) beginSubmit() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.state == StateSubmitting {
		return ErrSubmissionInFlight
	}
	s.state = StateSubmitting
	s.lastError = ""
	return nil
}

func (s *Session) confirm() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state = StateConfirmed
	s.lastError = ""
}

func (s *Session) fail(message string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state = StateCollecting
	s.lastError = message
}

// Reset acknowledges a confirmed order; the next user action returns to
// catalog browsing with a fresh collecting state.
func (s *Session) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state = StateCollecting
	s.lastError = ""
}
