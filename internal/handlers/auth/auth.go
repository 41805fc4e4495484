package auth

import (
	"encoding/json"
	"net/http"

	"github.com/gorilla/mux"
	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"

	"gitlab.com/codeclass-2026.net/internal/config"
	"gitlab.com/codeclass-2026.net/internal/core/ports/primary"
	"gitlab.com/codeclass-2026.net/internal/core/services/auth"
	"gitlab.com/codeclass-2026.net/internal/domain"
	"gitlab.com/codeclass-2026.net/internal/handlers"
)

type ServiceDependencies struct {
	GGAuthService    auth.IAuthService
	LocalAuthService auth.IAuthService
}

// GoogleUser decodes the Google userinfo response.
type GoogleUser struct {
	ID    string `json:"sub"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

type Handler struct {
	providerHandler map[domain.Provider]auth.IAuthService
	oauthConfig     *oauth2.Config
	logger          primary.Logger
}

func NewHandler(ggCfg *config.GGAuthConfig, logger primary.Logger) *Handler {
	return &Handler{
		providerHandler: make(map[domain.Provider]auth.IAuthService),
		oauthConfig: &oauth2.Config{
			ClientID:     ggCfg.ClientID,
			ClientSecret: ggCfg.ClientSecret,
			RedirectURL:  ggCfg.RedirectURL,
			Scopes:       []string{"profile", "email"},
			Endpoint:     google.Endpoint,
		},
		logger: logger,
	}
}

func (h *Handler) RegisterRoutes(router *mux.Router, svcDep *ServiceDependencies) {
	h.providerHandler[domain.ProviderGoogle] = svcDep.GGAuthService
	h.providerHandler[domain.ProviderLocal] = svcDep.LocalAuthService
	router.HandleFunc("/api/auth/signup", h.SignupHandler).Methods("POST")
	router.HandleFunc("/api/auth/login", h.LoginHandler).Methods("POST")
	router.HandleFunc("/auth/google", h.GoogleLoginHandler)
	router.HandleFunc("/auth/callback", h.GoogleCallbackHandler).Methods("GET")
}

type credentialsRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	Name     string `json:"name"`
}

func (h *Handler) SignupHandler(w http.ResponseWriter, r *http.Request) {
	var req credentialsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		handlers.ResponseError(w, "invalid request body", http.StatusBadRequest)
		return
	}

	resp, err := h.providerHandler[domain.ProviderLocal].Signup(r.Context(), auth.Credentials{
		Email:    req.Email,
		Password: req.Password,
		Name:     req.Name,
	})
	if err != nil {
		handlers.WriteServiceError(w, err)
		return
	}
	handlers.ResponseWithJson(w, http.StatusCreated, resp)
}

func (h *Handler) LoginHandler(w http.ResponseWriter, r *http.Request) {
	var req credentialsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		handlers.ResponseError(w, "invalid request body", http.StatusBadRequest)
		return
	}

	resp, err := h.providerHandler[domain.ProviderLocal].Login(r.Context(), auth.Credentials{
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		handlers.WriteServiceError(w, err)
		return
	}
	handlers.ResponseWithJson(w, http.StatusOK, resp)
}

// GoogleLoginHandler redirects the browser to the Google OAuth2 consent page.
func (h *Handler) GoogleLoginHandler(w http.ResponseWriter, r *http.Request) {
	url := h.oauthConfig.AuthCodeURL("randomstate")
	http.Redirect(w, r, url, http.StatusTemporaryRedirect)
}

// GoogleCallbackHandler exchanges the authorization code, fetches the Google
// profile and issues a session token.
func (h *Handler) GoogleCallbackHandler(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	code := r.URL.Query().Get("code")
	if code == "" {
		handlers.ResponseError(w, "No code in URL", http.StatusBadRequest)
		return
	}
	token, err := h.oauthConfig.Exchange(ctx, code)
	if err != nil {
		h.logger.Error("OAuth code exchange failed", "error", err)
		handlers.ResponseError(w, "Failed to get token", http.StatusInternalServerError)
		return
	}

	client := h.oauthConfig.Client(ctx, token)
	resp, err := client.Get("https://www.googleapis.com/oauth2/v3/userinfo")
	if err != nil {
		handlers.ResponseError(w, "Failed to get user info", http.StatusInternalServerError)
		return
	}
	defer resp.Body.Close()

	var googleUser GoogleUser
	if err := json.NewDecoder(resp.Body).Decode(&googleUser); err != nil {
		handlers.ResponseError(w, "Failed to decode user info", http.StatusInternalServerError)
		return
	}

	loginResponse, err := h.providerHandler[domain.ProviderGoogle].Login(ctx, auth.Credentials{
		Email:    googleUser.Email,
		Name:     googleUser.Name,
		GoogleID: googleUser.ID,
	})
	if err != nil {
		handlers.WriteServiceError(w, err)
		return
	}
	handlers.ResponseWithJson(w, http.StatusOK, loginResponse)
}
