package handler

import (
	"net/http"

	"github.com/authgate-dev/authgate/internal/api"
	"github.com/authgate-dev/authgate/internal/domain"
	"github.com/authgate-dev/authgate/internal/middleware"
)

const accessTokenCookie = "accessToken"

func (h *Handler) Register(w http.ResponseWriter, r *http.Request) {
	var raw domain.RawCredentials
	if err := decode(r.Body, &raw); err != nil {
		writeError(w, err)
		return
	}

	user, err := h.auth.Register(raw)
	if err != nil {
		writeError(w, err)
		return
	}

	api.Write(w, http.StatusCreated, api.Success("User registered successfully", user))
}

// Login authenticates credentials and transports the session token as an
// HttpOnly cookie. The token never appears in the JSON body; the envelope
// carries the user projection only.
func (h *Handler) Login(w http.ResponseWriter, r *http.Request) {
	var raw domain.RawCredentials
	if err := decode(r.Body, &raw); err != nil {
		writeError(w, err)
		return
	}

	user, token, err := h.auth.Login(raw)
	if err != nil {
		writeError(w, err)
		return
	}

	http.SetCookie(w, &http.Cookie{
		Path:     "/",
		Name:     accessTokenCookie,
		Value:    token,
		MaxAge:   int(h.cfg.JwtTTL().Seconds()),
		HttpOnly: true,
		Secure:   h.cfg.Public.SecureCookies,
		SameSite: http.SameSiteLaxMode,
	})

	api.Write(w, http.StatusOK, api.Success("User logged in successfully", map[string]any{"user": user}))
}

// Logout clears the token cookie. Tokens themselves stay valid until expiry;
// there is no server-side session state to revoke.
func (h *Handler) Logout(w http.ResponseWriter, r *http.Request) {
	http.SetCookie(w, &http.Cookie{
		Path:     "/",
		Name:     accessTokenCookie,
		Value:    "",
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   h.cfg.Public.SecureCookies,
		SameSite: http.SameSiteLaxMode,
	})

	api.Write(w, http.StatusOK, api.Success("User logged out", nil))
}

// Me returns the identity carried by the access token.
func (h *Handler) Me(w http.ResponseWriter, r *http.Request) {
	user := middleware.GetUserFromContext(r)
	if user == nil {
		api.Write(w, http.StatusUnauthorized, api.Error("Please sign-in"))
		return
	}

	api.Write(w, http.StatusOK, api.Success("Authenticated", map[string]any{
		"id":    user.Id,
		"email": user.Email,
	}))
}
