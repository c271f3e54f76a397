package http

import (
	"errors"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"

	"github.com/tair/wastesmart-storefront/internal/httpapi"
	"github.com/tair/wastesmart-storefront/internal/session/domain"
	"github.com/tair/wastesmart-storefront/internal/session/usecase/query"
	"github.com/tair/wastesmart-storefront/pkg/auth"
	"github.com/tair/wastesmart-storefront/pkg/logger"
)

// CookieName holds the signed browser session id
const CookieName = "sid"

// SessionMiddleware gives every request a browser session and loads the
// identity stored for it
type SessionMiddleware struct {
	tokens      *auth.TokenManager
	loader      *query.LoadSessionHandler
	secure      bool
	corruptions *prometheus.CounterVec
}

func NewSessionMiddleware(tokens *auth.TokenManager, loader *query.LoadSessionHandler, secure bool, reg prometheus.Registerer) *SessionMiddleware {
	corruptions := prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "storefront_session_corruptions_total",
			Help: "Stored session records discarded because they failed validation",
		},
		[]string{"kind"},
	)
	reg.MustRegister(corruptions)

	return &SessionMiddleware{tokens: tokens, loader: loader, secure: secure, corruptions: corruptions}
}

func (m *SessionMiddleware) Handler(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		sid, err := m.sessionID(w, r)
		if err != nil {
			logger.Error(r.Context()).Err(err).Msg("Failed to issue session cookie")
			httpapi.RespondFail(w, http.StatusInternalServerError, "Something went wrong. Please try again.")
			return
		}

		s, err := m.loader.Handle(r.Context(), query.LoadSessionQuery{SessionID: sid})
		var corrupted *domain.CorruptedError
		switch {
		case errors.As(err, &corrupted):
			m.corruptions.WithLabelValues(string(corrupted.Kind)).Inc()
			httpapi.RespondError(w, r, "load_session", err)
			return
		case err != nil:
			// store outage: serve the request as anonymous
			logger.Warn(r.Context()).Err(err).Msg("Session store unavailable")
			s = &domain.Context{SessionID: sid}
		}

		next.ServeHTTP(w, r.WithContext(domain.WithContext(r.Context(), s)))
	})
}

// sessionID returns the id from a valid cookie or issues a new one
func (m *SessionMiddleware) sessionID(w http.ResponseWriter, r *http.Request) (string, error) {
	if c, err := r.Cookie(CookieName); err == nil {
		if claims, err := m.tokens.ValidateToken(c.Value); err == nil && claims.SessionID != "" {
			return claims.SessionID, nil
		}
	}

	sid := uuid.NewString()
	token, err := m.tokens.GenerateToken(sid)
	if err != nil {
		return "", err
	}
	http.SetCookie(w, &http.Cookie{
		Name:     CookieName,
		Value:    token,
		Path:     "/",
		MaxAge:   int(m.tokens.TTL() / time.Second),
		HttpOnly: true,
		Secure:   m.secure,
		SameSite: http.SameSiteLaxMode,
	})
	return sid, nil
}
