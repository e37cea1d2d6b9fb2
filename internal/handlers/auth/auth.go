package auth

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"

	"gitlab.com/codearena.net/internal/config"
	"gitlab.com/codearena.net/internal/core/ports/primary"
	"gitlab.com/codearena.net/internal/core/services/auth"
	"gitlab.com/codearena.net/internal/domain"
	"gitlab.com/codearena.net/internal/handlers"
	"gitlab.com/codearena.net/internal/handlers/response"
)

const (
	googleUserInfoURL = "https://www.googleapis.com/oauth2/v3/userinfo"
	oauthStateCookie  = "oauthstate"
)

type ServiceDependencies struct {
	GGAuthService    auth.IAuthService
	LocalAuthService auth.ILocalAuthService
	GGAuthConfig     *config.GGAuthConfig
}

// GoogleUser struct to decode Google API response
type GoogleUser struct {
	ID    string `json:"sub"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

type LoginRequest struct {
	UserName string `json:"user_name"`
	Password string `json:"password"`
}

type RegisterRequest struct {
	UserName string  `json:"user_name"`
	Password string  `json:"password"`
	Email    *string `json:"email"`
}

type Handler struct {
	providerHandler   map[domain.Provider]auth.IAuthService
	localAuthService  auth.ILocalAuthService
	googleOAuthConfig *oauth2.Config
	logger            primary.Logger
}

func NewHandler(logger primary.Logger) *Handler {
	return &Handler{
		providerHandler: make(map[domain.Provider]auth.IAuthService),
		logger:          logger,
	}
}

func newGoogleOAuthConfig(cfg *config.GGAuthConfig) *oauth2.Config {
	return &oauth2.Config{
		ClientID:     cfg.ClientID,
		ClientSecret: cfg.ClientSecret,
		RedirectURL:  cfg.RedirectURL,
		Scopes:       []string{"openid", "profile", "email"},
		Endpoint:     google.Endpoint,
	}
}

func (h *Handler) RegisterRoutes(router *mux.Router, svcDep *ServiceDependencies) {
	h.providerHandler[domain.ProviderLocal] = svcDep.LocalAuthService
	h.localAuthService = svcDep.LocalAuthService
	router.HandleFunc("/auth/register", h.RegisterHandler).Methods("POST")
	router.HandleFunc("/auth/login", h.LoginHandler).Methods("POST")

	if svcDep.GGAuthService == nil || svcDep.GGAuthConfig == nil || !svcDep.GGAuthConfig.Enabled() {
		h.logger.Info("Google sign-in disabled")
		return
	}
	h.providerHandler[domain.ProviderGoogle] = svcDep.GGAuthService
	h.googleOAuthConfig = newGoogleOAuthConfig(svcDep.GGAuthConfig)
	router.HandleFunc("/auth/google", h.GoogleLoginHandler).Methods("GET")
	router.HandleFunc("/auth/callback", h.GoogleCallbackHandler).Methods("GET")
}

func (h *Handler) RegisterHandler(w http.ResponseWriter, r *http.Request) {
	var req RegisterRequest
	if !handlers.DecodeJSON(w, r, &req) {
		return
	}

	token, err := h.localAuthService.Register(r.Context(), req.UserName, req.Password, req.Email)
	if err != nil {
		h.logger.Info("Registration rejected", "userName", req.UserName, "error", err)
		response.WriteServiceError(w, err)
		return
	}

	response.WriteJSON(w, http.StatusCreated, domain.LoginResponse{Token: token})
}

func (h *Handler) LoginHandler(w http.ResponseWriter, r *http.Request) {
	var req LoginRequest
	if !handlers.DecodeJSON(w, r, &req) {
		return
	}

	token, err := h.providerHandler[domain.ProviderLocal].Login(r.Context(), &domain.Users{
		UserName:     req.UserName,
		PasswordHash: &req.Password,
		AuthProvider: string(domain.ProviderLocal),
	})
	if err != nil {
		response.WriteServiceError(w, err)
		return
	}

	response.WriteSuccess(w, domain.LoginResponse{Token: token})
}

// GoogleLoginHandler redirects user to Google OAuth2 login
func (h *Handler) GoogleLoginHandler(w http.ResponseWriter, r *http.Request) {
	state := uuid.NewString()
	http.SetCookie(w, &http.Cookie{
		Name:     oauthStateCookie,
		Value:    state,
		Path:     "/auth",
		Expires:  time.Now().Add(10 * time.Minute),
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
	http.Redirect(w, r, h.googleOAuthConfig.AuthCodeURL(state), http.StatusTemporaryRedirect)
}

// GoogleCallbackHandler handles Google OAuth2 callback
func (h *Handler) GoogleCallbackHandler(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	stateCookie, err := r.Cookie(oauthStateCookie)
	if err != nil || stateCookie.Value == "" || stateCookie.Value != r.URL.Query().Get("state") {
		response.WriteError(w, response.ErrorMessage{Message: "Invalid OAuth state", StatusCode: http.StatusBadRequest})
		return
	}

	// Get authorization code from URL
	code := r.URL.Query().Get("code")
	if code == "" {
		response.WriteError(w, response.ErrorMessage{Message: "No code in URL", StatusCode: http.StatusBadRequest})
		return
	}
	// Exchange code for access token
	token, err := h.googleOAuthConfig.Exchange(ctx, code)
	if err != nil {
		h.logger.Error("Failed to exchange OAuth code", "error", err)
		response.WriteError(w, response.ErrorMessage{Message: "Failed to get token", StatusCode: http.StatusBadGateway})
		return
	}
	// Fetch user info from Google API
	client := h.googleOAuthConfig.Client(ctx, token)
	resp, err := client.Get(googleUserInfoURL)
	if err != nil {
		h.logger.Error("Failed to get Google user info", "error", err)
		response.WriteError(w, response.ErrorMessage{Message: "Failed to get user info", StatusCode: http.StatusBadGateway})
		return
	}
	defer resp.Body.Close()
	var googleUser GoogleUser
	if err := json.NewDecoder(resp.Body).Decode(&googleUser); err != nil {
		response.WriteError(w, response.ErrorMessage{Message: "Failed to decode user info", StatusCode: http.StatusBadGateway})
		return
	}

	tokenStr, err := h.providerHandler[domain.ProviderGoogle].Login(ctx, &domain.Users{
		GoogleID:     &googleUser.ID,
		Email:        &googleUser.Email,
		AuthProvider: string(domain.ProviderGoogle),
	})
	if err != nil {
		response.WriteServiceError(w, err)
		return
	}

	response.WriteSuccess(w, domain.LoginResponse{Token: tokenStr})
}
