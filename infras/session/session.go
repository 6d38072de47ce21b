package session

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"github.com/jmcelreavey/todo-li-app/config"
	"github.com/jmcelreavey/todo-li-app/shared/constant"
	"github.com/jmcelreavey/todo-li-app/shared/timezone"
)

var (
	ErrNoSession      = errors.New("no session")
	ErrInvalidSession = errors.New("invalid session")
)

// Claims is the signed payload carried by the session cookie.
type Claims struct {
	UserID int64  `json:"user_id"`
	Flash  string `json:"flash,omitempty"`
	jwt.RegisteredClaims
}

// State is the mutable per-request view of a session. It is read from the
// cookie at the start of a request and written back whenever it changes.
type State struct {
	UserID int64

	flash string
	dirty bool
}

// Flash stores a one-shot message shown by the next rendered page.
func (s *State) Flash(message string) {
	s.flash = message
	s.dirty = true
}

// ConsumeFlash returns the pending flash message and removes it. Reading the
// message marks the state dirty so the caller rewrites the cookie without it.
func (s *State) ConsumeFlash() string {
	message := s.flash
	if message != "" {
		s.flash = ""
		s.dirty = true
	}

	return message
}

// Dirty reports whether the state changed since it was read.
func (s *State) Dirty() bool {
	return s.dirty
}

// Sessions issues, verifies, and clears the signed session cookie.
type Sessions interface {
	Issue(userID int64) *State
	Read(r *http.Request) (*State, error)
	Write(w http.ResponseWriter, state *State) error
	Clear(w http.ResponseWriter)
}

type Service struct {
	config *config.Config
}

func New(cfg *config.Config) Sessions {
	return &Service{
		config: cfg,
	}
}

// Issue creates a fresh session state for a signed-in user.
func (s *Service) Issue(userID int64) *State {
	return &State{
		UserID: userID,
		dirty:  true,
	}
}

// Read parses and verifies the session cookie. An absent cookie yields
// ErrNoSession; a tampered, expired, or malformed one yields
// ErrInvalidSession.
func (s *Service) Read(r *http.Request) (*State, error) {
	cookie, err := r.Cookie(s.config.Session.CookieName)
	if err != nil || cookie.Value == "" {
		return nil, ErrNoSession
	}

	claims := &Claims{}

	token, err := jwt.ParseWithClaims(cookie.Value, claims, func(token *jwt.Token) (any, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("%w: unexpected signing method %v", ErrInvalidSession, token.Header["alg"])
		}

		return []byte(s.config.Session.Secret), nil
	})
	if err != nil || !token.Valid {
		return nil, ErrInvalidSession
	}

	if claims.UserID == 0 {
		return nil, ErrInvalidSession
	}

	return &State{
		UserID: claims.UserID,
		flash:  claims.Flash,
	}, nil
}

// Write signs the state and sets the cookie.
func (s *Service) Write(w http.ResponseWriter, state *State) error {
	now := timezone.Now()
	expiresAt := now.Add(time.Duration(s.config.Session.ExpireMin) * time.Minute)

	claims := Claims{
		UserID: state.UserID,
		Flash:  state.flash,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(expiresAt),
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
			Issuer:    s.config.App.Name,
			Subject:   strconv.FormatInt(state.UserID, 10),
			ID:        uuid.NewString(),
		},
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(s.config.Session.Secret))
	if err != nil {
		return fmt.Errorf("failed to sign session: %w", err)
	}

	http.SetCookie(w, s.cookie(signed, expiresAt, 0))

	return nil
}

// Clear expires the cookie, ending the session.
func (s *Service) Clear(w http.ResponseWriter) {
	http.SetCookie(w, s.cookie("", time.Time{}, -1))
}

func (s *Service) cookie(value string, expires time.Time, maxAge int) *http.Cookie {
	return &http.Cookie{
		Name:     s.config.Session.CookieName,
		Value:    value,
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
		Secure:   s.config.Server.Env != constant.ServerEnvDevelopment,
		Expires:  expires,
		MaxAge:   maxAge,
	}
}
