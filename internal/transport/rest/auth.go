package rest

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/heartmarshall/realty-crm/internal/navigation"
	"github.com/heartmarshall/realty-crm/internal/service/auth"
	"github.com/heartmarshall/realty-crm/internal/session"
)

const (
	msgConfirmEmail = "Check your email to confirm your account!"
	msgSignedUp     = "Account created! You can sign in now."
	msgConfirmed    = "Email confirmed! You can sign in now."
)

// authService defines the minimal interface needed by AuthHandler.
type authService interface {
	SignUp(ctx context.Context, input auth.SignUpInput) (*auth.SignUpResult, error)
	Confirm(ctx context.Context, input auth.ConfirmInput) error
	Refresh(ctx context.Context, input auth.RefreshInput) (*auth.AuthResult, error)
}

// sessionManager applies the transitions that change session state.
type sessionManager interface {
	SignIn(ctx context.Context, input auth.SignInInput) (*auth.AuthResult, session.State, error)
	SignOut(ctx context.Context) error
}

// AuthHandler serves auth REST endpoints.
type AuthHandler struct {
	svc      authService
	sessions sessionManager
	log      *slog.Logger
}

// NewAuthHandler creates an AuthHandler.
func NewAuthHandler(svc authService, sessions sessionManager, logger *slog.Logger) *AuthHandler {
	return &AuthHandler{svc: svc, sessions: sessions, log: logger.With("handler", "auth")}
}

type signInRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type signUpRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	FullName string `json:"full_name"`
}

type refreshRequest struct {
	RefreshToken string `json:"refresh_token"`
}

type confirmRequest struct {
	Token string `json:"token"`
}

type authResponse struct {
	AccessToken  string       `json:"access_token"`
	RefreshToken string       `json:"refresh_token"`
	ExpiresIn    int          `json:"expires_in"`
	User         userResponse `json:"user"`
	Redirect     string       `json:"redirect,omitempty"`
}

type signUpResponse struct {
	User                userResponse `json:"user"`
	PendingConfirmation bool         `json:"pending_confirmation"`
	Message             string       `json:"message"`
}

type authPage struct {
	Title    string   `json:"title"`
	Subtitle string   `json:"subtitle"`
	Modes    []string `json:"modes"`
}

// Page handles GET /auth. Signed in sessions are sent to their home page.
func (h *AuthHandler) Page(w http.ResponseWriter, r *http.Request) {
	if state := session.FromContext(r.Context()); state.Authenticated {
		http.Redirect(w, r, navigation.Home(state.Role).Path, http.StatusFound)
		return
	}
	writeJSON(w, http.StatusOK, authPage{
		Title:    "RealEstate CRM",
		Subtitle: "Sign in to manage your leads, listings and tasks.",
		Modes:    []string{"sign_in", "sign_up"},
	})
}

// SignIn handles POST /auth/sign-in. The response names the page to open
// next, the first destination of the resolved role.
func (h *AuthHandler) SignIn(w http.ResponseWriter, r *http.Request) {
	var req signInRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	result, state, err := h.sessions.SignIn(r.Context(), auth.SignInInput{
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	resp := toAuthResponse(result)
	resp.Redirect = navigation.Home(state.Role).Path
	writeJSON(w, http.StatusOK, resp)
}

// SignUp handles POST /auth/sign-up.
func (h *AuthHandler) SignUp(w http.ResponseWriter, r *http.Request) {
	var req signUpRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	result, err := h.svc.SignUp(r.Context(), auth.SignUpInput{
		Email:    req.Email,
		Password: req.Password,
		FullName: req.FullName,
	})
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	msg := msgSignedUp
	if result.PendingConfirmation {
		msg = msgConfirmEmail
	}
	writeJSON(w, http.StatusCreated, signUpResponse{
		User:                presentUser(result.User),
		PendingConfirmation: result.PendingConfirmation,
		Message:             msg,
	})
}

// Confirm handles GET /auth/confirm?token= from the emailed link and
// POST /auth/confirm with a JSON body.
func (h *AuthHandler) Confirm(w http.ResponseWriter, r *http.Request) {
	token := r.URL.Query().Get("token")
	if r.Method == http.MethodPost {
		var req confirmRequest
		if !decodeJSON(w, r, &req) {
			return
		}
		token = req.Token
	}

	if err := h.svc.Confirm(r.Context(), auth.ConfirmInput{Token: token}); err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"message": msgConfirmed})
}

// Refresh handles POST /auth/refresh.
func (h *AuthHandler) Refresh(w http.ResponseWriter, r *http.Request) {
	var req refreshRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	result, err := h.svc.Refresh(r.Context(), auth.RefreshInput{RefreshToken: req.RefreshToken})
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, toAuthResponse(result))
}

// SignOut handles POST /auth/sign-out. It needs a valid bearer token.
func (h *AuthHandler) SignOut(w http.ResponseWriter, r *http.Request) {
	if !session.FromContext(r.Context()).Authenticated {
		writeError(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	if err := h.sessions.SignOut(r.Context()); err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{"status": "ok", "redirect": navigation.AuthPath})
}

func toAuthResponse(result *auth.AuthResult) authResponse {
	return authResponse{
		AccessToken:  result.AccessToken,
		RefreshToken: result.RefreshToken,
		ExpiresIn:    int(result.ExpiresIn.Seconds()),
		User:         presentUser(result.User),
	}
}
