package handlers

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/floobyte/site-api/internal/infra/http/middleware"
	"github.com/floobyte/site-api/internal/infra/session"
	"github.com/floobyte/site-api/internal/usecase"
)

type AuthHandler struct {
	Credentials  usecase.AdminCredentials
	Sessions     session.Store
	SessionTTL   time.Duration
	SecureCookie bool
}

func NewAuthHandler(creds usecase.AdminCredentials, sessions session.Store, ttl time.Duration, secureCookie bool) *AuthHandler {
	return &AuthHandler{
		Credentials:  creds,
		Sessions:     sessions,
		SessionTTL:   ttl,
		SecureCookie: secureCookie,
	}
}

type loginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeMessage(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	if req.Username == "" || req.Password == "" {
		writeMessage(w, http.StatusBadRequest, "Username and password are required")
		return
	}

	if !usecase.VerifyAdminCredentials(h.Credentials, req.Username, req.Password) {
		writeMessage(w, http.StatusUnauthorized, "Invalid username or password")
		return
	}

	// Issue a fresh token on every login so a pre-login cookie can never
	// become an authenticated session.
	if old, err := r.Cookie(middleware.SessionCookieName); err == nil {
		h.Sessions.Delete(old.Value)
	}
	token := h.Sessions.Create(session.Data{Authenticated: true, User: req.Username})
	http.SetCookie(w, h.sessionCookie(token, int(h.SessionTTL.Seconds())))

	writeJSON(w, http.StatusOK, map[string]string{
		"message": "Login successful",
		"user":    req.Username,
	})
}

func (h *AuthHandler) Logout(w http.ResponseWriter, r *http.Request) {
	if c, err := r.Cookie(middleware.SessionCookieName); err == nil {
		h.Sessions.Delete(c.Value)
	}
	http.SetCookie(w, h.sessionCookie("", -1))
	writeMessage(w, http.StatusOK, "Logout successful")
}

type authStatusResponse struct {
	IsAuthenticated bool   `json:"isAuthenticated"`
	User            string `json:"user,omitempty"`
}

func (h *AuthHandler) Status(w http.ResponseWriter, r *http.Request) {
	if h.Credentials.Disabled {
		writeJSON(w, http.StatusOK, authStatusResponse{IsAuthenticated: true})
		return
	}

	var resp authStatusResponse
	if c, err := r.Cookie(middleware.SessionCookieName); err == nil {
		if data, ok := h.Sessions.Get(c.Value); ok {
			resp.IsAuthenticated = data.Authenticated
			resp.User = data.User
		}
	}
	writeJSON(w, http.StatusOK, resp)
}

func (h *AuthHandler) sessionCookie(value string, maxAge int) *http.Cookie {
	return &http.Cookie{
		Name:     middleware.SessionCookieName,
		Value:    value,
		Path:     "/",
		MaxAge:   maxAge,
		HttpOnly: true,
		Secure:   h.SecureCookie,
		SameSite: http.SameSiteLaxMode,
	}
}
