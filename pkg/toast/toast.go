package toast

import (
	"encoding/gob"
	"net/http"

	"github.com/gorilla/sessions"
)

type Level string

const (
	LevelInfo    Level = "info"
	LevelSuccess Level = "success"
	LevelWarning Level = "warning"
	LevelError   Level = "error"
)

// Toast is a transient notification shown on the next rendered screen.
type Toast struct {
	Level   Level  `json:"level"`
	Message string `json:"message"`
}

func init() {
	gob.Register(Toast{})
}

// Notifier receives the toasts raised while handling one request.
type Notifier interface {
	Info(message string)
	Warning(message string)
}

// Recorder buffers toasts for one request.
type Recorder struct {
	Toasts []Toast
}

func (r *Recorder) Info(message string) {
	r.Toasts = append(r.Toasts, Toast{Level: LevelInfo, Message: message})
}

func (r *Recorder) Warning(message string) {
	r.Toasts = append(r.Toasts, Toast{Level: LevelWarning, Message: message})
}

func (r *Recorder) Success(message string) {
	r.Toasts = append(r.Toasts, Toast{Level: LevelSuccess, Message: message})
}

func (r *Recorder) Error(message string) {
	r.Toasts = append(r.Toasts, Toast{Level: LevelError, Message: message})
}

const flashKey = "_toasts"

// SessionStore carries toasts across a redirect as session flashes.
type SessionStore struct {
	store sessions.Store
	name  string
}

func NewSessionStore(store sessions.Store, name string) *SessionStore {
	return &SessionStore{store: store, name: name}
}

// NewCookieStore keeps flashes in a signed cookie.
func NewCookieStore(secret []byte, name string) *SessionStore {
	cs := sessions.NewCookieStore(secret)
	cs.Options.HttpOnly = true
	cs.Options.SameSite = http.SameSiteLaxMode
	return NewSessionStore(cs, name)
}

// Flush appends toasts to the session. It must run before the response
// headers are written.
func (s *SessionStore) Flush(w http.ResponseWriter, r *http.Request, toasts []Toast) error {
	if len(toasts) == 0 {
		return nil
	}
	sess, err := s.store.Get(r, s.name)
	if err != nil && sess == nil {
		return err
	}
	for _, t := range toasts {
		sess.AddFlash(t, flashKey)
	}
	return sess.Save(r, w)
}

// Drain returns and removes the pending toasts.
func (s *SessionStore) Drain(w http.ResponseWriter, r *http.Request) ([]Toast, error) {
	sess, err := s.store.Get(r, s.name)
	if err != nil && sess == nil {
		return nil, err
	}
	flashes := sess.Flashes(flashKey)
	if len(flashes) == 0 {
		return nil, nil
	}

	toasts := make([]Toast, 0, len(flashes))
	for _, f := range flashes {
		if t, ok := f.(Toast); ok {
			toasts = append(toasts, t)
		}
	}
	return toasts, sess.Save(r, w)
}
