package api

import (
	"net/http"
	"strings"
	"time"

	"github.com/odvcencio/maestro/internal/auth"
	"github.com/odvcencio/maestro/internal/models"
)

type loginRequest struct {
	UserID string `json:"user_id"`
}

type sessionResponse struct {
	Token     string      `json:"token,omitempty"`
	SessionID string      `json:"session_id"`
	ExpiresAt time.Time   `json:"expires_at"`
	User      models.User `json:"user"`
}

// handleLogin opens a dashboard session. There are no credentials: the body
// names a user to sign in as, or the configured demo user when omitted.
func (s *Server) handleLogin(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if !decodeJSONBody(w, r, &req, true) {
		return
	}
	userID := strings.TrimSpace(req.UserID)
	if userID == "" {
		userID = s.opts.DemoUserID
	}
	user, ok := s.catalog.User(userID)
	if !ok {
		s.metrics.sessionEvent("rejected")
		jsonError(w, "user not found", http.StatusNotFound)
		return
	}

	token, claims, err := s.authSvc.GenerateToken(user.ID, user.Name, user.Role)
	if err != nil {
		s.logger.Error("issue session token", "user_id", user.ID, "error", err)
		jsonError(w, "internal error", http.StatusInternalServerError)
		return
	}
	http.SetCookie(w, &http.Cookie{
		Name:     auth.CookieName,
		Value:    token,
		Path:     "/",
		Expires:  claims.ExpiresAt.Time,
		MaxAge:   int(s.authSvc.Duration() / time.Second),
		HttpOnly: true,
		Secure:   s.opts.CookieSecure,
		SameSite: http.SameSiteLaxMode,
	})
	s.metrics.sessionEvent("login")
	s.logger.Info("session opened", "user_id", user.ID, "session_id", claims.SessionID())
	jsonResponse(w, http.StatusOK, sessionResponse{
		Token:     token,
		SessionID: claims.SessionID(),
		ExpiresAt: claims.ExpiresAt.Time,
		User:      user,
	})
}

// handleLogout revokes the session token and drops its connection toggles.
func (s *Server) handleLogout(w http.ResponseWriter, r *http.Request) {
	claims := auth.GetClaims(r.Context())
	s.authSvc.Revoke(claims.SessionID(), claims.ExpiresAt.Time)
	s.connections.Discard(claims.SessionID())
	http.SetCookie(w, &http.Cookie{
		Name:     auth.CookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   s.opts.CookieSecure,
		SameSite: http.SameSiteLaxMode,
	})
	s.metrics.sessionEvent("logout")
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) handleSession(w http.ResponseWriter, r *http.Request) {
	claims := auth.GetClaims(r.Context())
	user, ok := s.catalog.User(claims.UserID)
	if !ok {
		jsonError(w, "user not found", http.StatusNotFound)
		return
	}
	jsonResponse(w, http.StatusOK, sessionResponse{
		SessionID: claims.SessionID(),
		ExpiresAt: claims.ExpiresAt.Time,
		User:      user,
	})
}
