package auth

import (
	"context"
	"net/http"
	"time"

	"github.com/gorilla/securecookie"
)

const (
	cookieName = "reservarapida_session"
	cookieTTL  = 14 * 24 * time.Hour
)

// Store carries each browser's gate in a signed and encrypted cookie.
type Store struct {
	sc *securecookie.SecureCookie
}

type ctxKey string

const sessionKey ctxKey = "session"

// Session is what the main flow knows about the signed-in user.
type Session struct {
	Email string
}

type cookieValue struct {
	Authenticated bool
	Email         string
}

func NewStore(hashKey, blockKey []byte) *Store {
	sc := securecookie.New(hashKey, blockKey)
	// keep cookie small and secure
	sc.MaxAge(int(cookieTTL.Seconds()))
	return &Store{sc: sc}
}

// Load rebuilds the gate for r. A missing or tampered cookie yields an
// unauthenticated gate.
func (s *Store) Load(r *http.Request) (*Gate, Session) {
	g := &Gate{}
	c, err := r.Cookie(cookieName)
	if err != nil {
		return g, Session{}
	}
	var v cookieValue
	if err := s.sc.Decode(cookieName, c.Value, &v); err != nil {
		return g, Session{}
	}
	if v.Authenticated {
		g.Login()
	}
	return g, Session{Email: v.Email}
}

// Save writes the gate back. An unauthenticated gate clears the cookie.
func (s *Store) Save(w http.ResponseWriter, r *http.Request, g *Gate, sess Session) error {
	if !g.Authenticated() {
		s.Clear(w)
		return nil
	}
	encoded, err := s.sc.Encode(cookieName, cookieValue{Authenticated: true, Email: sess.Email})
	if err != nil {
		return err
	}
	http.SetCookie(w, &http.Cookie{
		Name:     cookieName,
		Value:    encoded,
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
		Secure:   r.TLS != nil,
		MaxAge:   int(cookieTTL.Seconds()),
	})
	return nil
}

func (s *Store) Clear(w http.ResponseWriter) {
	http.SetCookie(w, &http.Cookie{
		Name:     cookieName,
		Value:    "",
		Path:     "/",
		HttpOnly: true,
		MaxAge:   -1,
	})
}

// RequireAuth mounts next only for authenticated gates; everyone else is sent
// to the login screen.
func (s *Store) RequireAuth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		g, sess := s.Load(r)
		if !g.Authenticated() {
			http.Redirect(w, r, "/login", http.StatusFound)
			return
		}
		ctx := context.WithValue(r.Context(), sessionKey, sess)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// RedirectIfAuthenticated keeps signed-in users out of the auth screens.
func (s *Store) RedirectIfAuthenticated(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if g, _ := s.Load(r); g.Authenticated() {
			http.Redirect(w, r, "/", http.StatusFound)
			return
		}
		next.ServeHTTP(w, r)
	})
}

func SessionFromContext(ctx context.Context) (Session, bool) {
	sess, ok := ctx.Value(sessionKey).(Session)
	return sess, ok
}
