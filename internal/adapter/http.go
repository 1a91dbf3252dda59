package adapter

import (
	"context"
	"fmt"
	"net/url"
	"strings"
	"sync"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/google/uuid"

	"github.com/MKhiriev/go-pii-keeper/internal/utils"
	"github.com/MKhiriev/go-pii-keeper/models"
)

const traceIDHeader = "X-Trace-ID"

// HTTPClientConfig configures [NewHTTPServerAdapter].
type HTTPClientConfig struct {
	// Address is the server address, with or without scheme.
	Address string
	Timeout time.Duration
}

type httpServerAdapter struct {
	client *resty.Client

	mu    sync.RWMutex
	token string
}

// NewHTTPServerAdapter returns a REST implementation of [ServerAdapter].
// Every request carries a fresh X-Trace-ID so client and server logs can
// be correlated.
func NewHTTPServerAdapter(cfg HTTPClientConfig) (ServerAdapter, error) {
	baseURL, err := normalizeBaseURL(cfg.Address)
	if err != nil {
		return nil, fmt.Errorf("invalid server address: %w", err)
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = 15 * time.Second
	}

	client := resty.New().
		SetBaseURL(baseURL).
		SetTimeout(cfg.Timeout).
		SetHeader("Accept", "application/json").
		OnBeforeRequest(func(_ *resty.Client, r *resty.Request) error {
			r.SetHeader(traceIDHeader, uuid.NewString())
			return nil
		})

	return &httpServerAdapter{client: client}, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}
	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

func (h *httpServerAdapter) SetToken(token string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.token = strings.TrimSpace(token)
}

func (h *httpServerAdapter) Token() string {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.token
}

func (h *httpServerAdapter) Register(ctx context.Context, credentials models.Credentials) error {
	return h.authenticate(ctx, "/api/user/register", credentials)
}

func (h *httpServerAdapter) Login(ctx context.Context, credentials models.Credentials) error {
	return h.authenticate(ctx, "/api/user/login", credentials)
}

func (h *httpServerAdapter) authenticate(ctx context.Context, path string, credentials models.Credentials) error {
	resp, err := h.client.R().SetContext(ctx).SetBody(credentials).Post(path)
	if err != nil {
		return fmt.Errorf("%s request: %w", path, err)
	}
	if err = mapHTTPError(resp); err != nil {
		return err
	}

	token, err := utils.ParseBearerToken(resp.Header().Get("Authorization"))
	if err != nil {
		return fmt.Errorf("%s response: %w", path, err)
	}

	h.SetToken(token)
	return nil
}

func (h *httpServerAdapter) Logout(ctx context.Context) error {
	req, err := h.authedRequest(ctx)
	if err != nil {
		return err
	}
	resp, err := req.Post("/api/user/logout")
	if err != nil {
		return fmt.Errorf("logout request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return err
	}

	h.SetToken("")
	return nil
}

func (h *httpServerAdapter) ChangePassword(ctx context.Context, change models.PasswordChange) error {
	req, err := h.authedRequest(ctx)
	if err != nil {
		return err
	}
	resp, err := req.SetBody(change).Put("/api/user/password")
	if err != nil {
		return fmt.Errorf("change password request: %w", err)
	}
	return mapHTTPError(resp)
}

func (h *httpServerAdapter) EmailExists(ctx context.Context, email string) (bool, error) {
	var result models.EmailExists
	resp, err := h.client.R().SetContext(ctx).
		SetQueryParam("email", email).
		SetResult(&result).
		Get("/api/user/exists")
	if err != nil {
		return false, fmt.Errorf("email exists request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return false, err
	}
	return result.Exists, nil
}

func (h *httpServerAdapter) Profile(ctx context.Context) (models.Profile, error) {
	var profile models.Profile
	err := h.doAuthed(ctx, "get profile", func(r *resty.Request) (*resty.Response, error) {
		return r.SetResult(&profile).Get("/api/user/profile")
	})
	return profile, err
}

func (h *httpServerAdapter) UpdateProfile(ctx context.Context, update models.ProfileUpdate) (models.Profile, error) {
	var profile models.Profile
	err := h.doAuthed(ctx, "update profile", func(r *resty.Request) (*resty.Response, error) {
		return r.SetBody(update).SetResult(&profile).Put("/api/user/profile")
	})
	return profile, err
}

func (h *httpServerAdapter) CreateContact(ctx context.Context, contact models.NewContact) (models.ContactView, error) {
	var view models.ContactView
	err := h.doAuthed(ctx, "create contact", func(r *resty.Request) (*resty.Response, error) {
		return r.SetBody(contact).SetResult(&view).Post("/api/contacts")
	})
	return view, err
}

func (h *httpServerAdapter) ListContacts(ctx context.Context) ([]models.ContactView, error) {
	var views []models.ContactView
	err := h.doAuthed(ctx, "list contacts", func(r *resty.Request) (*resty.Response, error) {
		return r.SetResult(&views).Get("/api/contacts")
	})
	return views, err
}

func (h *httpServerAdapter) SearchContacts(ctx context.Context, email string) ([]models.ContactView, error) {
	var views []models.ContactView
	err := h.doAuthed(ctx, "search contacts", func(r *resty.Request) (*resty.Response, error) {
		return r.SetQueryParam("email", email).SetResult(&views).Get("/api/contacts/search")
	})
	return views, err
}

func (h *httpServerAdapter) doAuthed(ctx context.Context, op string, send func(*resty.Request) (*resty.Response, error)) error {
	req, err := h.authedRequest(ctx)
	if err != nil {
		return err
	}
	resp, err := send(req)
	if err != nil {
		return fmt.Errorf("%s request: %w", op, err)
	}
	return mapHTTPError(resp)
}

func (h *httpServerAdapter) authedRequest(ctx context.Context) (*resty.Request, error) {
	token := h.Token()
	if token == "" {
		return nil, ErrNoToken
	}
	return h.client.R().SetContext(ctx).SetAuthToken(token), nil
}
