package session

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"time"
)

// Data is the per-client session field bag. Fields absent from the stored
// JSON decode to their zero values; a zero UserID means anonymous.
type Data struct {
	UserID            uint   `json:"userid,omitempty"`
	Cart              []uint `json:"cart,omitempty"`
	CartSubtotal      int64  `json:"cart_subtotal,omitempty"`
	Page              int    `json:"page,omitempty"`
	LastViewedProduct uint   `json:"lastviewedproduct,omitempty"`
}

// LoggedIn reports whether the session belongs to an authenticated user.
func (d *Data) LoggedIn() bool {
	return d.UserID != 0
}

// Session is one client's state for the duration of a request. Handlers
// mutate Data; the manager persists it back on commit only when it changed.
type Session struct {
	Data Data

	token     string
	isNew     bool
	destroyed bool
	loaded    []byte
}

// Destroy marks the session for deletion on commit. Used by logout.
func (s *Session) Destroy() {
	s.Data = Data{}
	s.destroyed = true
}

// Manager loads and saves sessions around each request. Sessions are created
// implicitly: a token is only minted (and a cookie only issued) once a
// request actually writes session state.
type Manager struct {
	store  Store
	secret []byte
	ttl    time.Duration
	cookie CookieOptions
}

func NewManager(store Store, secret string, ttl time.Duration, cookie CookieOptions) *Manager {
	return &Manager{
		store:  store,
		secret: []byte(secret),
		ttl:    ttl,
		cookie: cookie.normalize(),
	}
}

// Open resolves the request's session. A missing, tampered or expired cookie
// yields a fresh anonymous session rather than an error.
func (m *Manager) Open(ctx context.Context, r *http.Request) *Session {
	cookie, err := r.Cookie(m.cookie.Name)
	if err != nil {
		return m.fresh()
	}

	token, ok := Verify(cookie.Value, m.secret)
	if !ok {
		return m.fresh()
	}

	raw, err := m.store.Load(ctx, token)
	if err != nil || raw == nil {
		return m.fresh()
	}

	s := &Session{token: token, loaded: raw}
	if err := json.Unmarshal(raw, &s.Data); err != nil {
		return m.fresh()
	}
	return s
}

func (m *Manager) fresh() *Session {
	return &Session{isNew: true}
}

// Commit persists the session if it was written to during the request.
// The write is load-mutate-save: the serialized state replaces the stored
// value wholesale, so concurrent writers to the same session are
// last-write-wins.
func (m *Manager) Commit(ctx context.Context, w http.ResponseWriter, s *Session) error {
	if s.destroyed {
		if !s.isNew {
			if err := m.store.Delete(ctx, s.token); err != nil {
				return err
			}
		}
		ClearCookie(w, m.cookie)
		return nil
	}

	raw, err := json.Marshal(&s.Data)
	if err != nil {
		return err
	}

	// Nothing was ever written; don't create empty sessions.
	if s.isNew && bytes.Equal(raw, []byte("{}")) {
		return nil
	}
	if !s.isNew && bytes.Equal(raw, s.loaded) {
		return nil
	}

	if s.isNew {
		token, err := NewToken()
		if err != nil {
			return err
		}
		s.token = token
	}

	if err := m.store.Save(ctx, s.token, raw, m.ttl); err != nil {
		return err
	}

	if s.isNew {
		SetCookie(w, Sign(s.token, m.secret), m.ttl, m.cookie)
		s.isNew = false
	}
	s.loaded = raw
	return nil
}
