package dashboard

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/textproto"
	"strings"
	"time"

	"github.com/jrautos/go-dealer-backend/internal/domain"
)

// Sentinel errors surfaced by the client. Everything else is wrapped with
// the failing operation.
var (
	// ErrInvalidPassword is returned by Login when the backend rejects the
	// password. The UI shows it as "Contraseña incorrecta".
	ErrInvalidPassword = errors.New("invalid password")
	// ErrUnauthorized means the session token is missing, expired, or revoked.
	ErrUnauthorized = errors.New("unauthorized")
	// ErrNotFound means the addressed vehicle no longer exists.
	ErrNotFound = errors.New("not found")
)

// VehicleDraft is the write payload for creating or fully editing a listing.
// JSON keys match the backend's vehicle schema.
type VehicleDraft struct {
	Name          string   `json:"name"`
	Year          string   `json:"year"`
	Brand         string   `json:"brand"`
	BodyType      string   `json:"bodyType"`
	Engine        string   `json:"engine"`
	Fuel          string   `json:"fuel"`
	Transmission  string   `json:"transmission"`
	DescriptionES string   `json:"description_es"`
	DescriptionEN string   `json:"description_en"`
	Images        []string `json:"images"`
	CoverImage    string   `json:"cover_image"`
}

// withCover returns the draft with CoverImage synced to the first image,
// the same rule the backend enforces when persisting.
func (d VehicleDraft) withCover() VehicleDraft {
	if len(d.Images) > 0 {
		d.CoverImage = d.Images[0]
	}
	return d
}

// Client is a typed HTTP client for the admin surface. BaseURL points at the
// server root (e.g. "http://localhost:8001"); the /api prefix is appended
// here. The session supplies the bearer token per request.
type Client struct {
	BaseURL string
	Session *Session

	// HTTP is injectable for tests; nil means a 30s-timeout default.
	HTTP *http.Client
}

// NewClient builds a client against baseURL using the given session.
func NewClient(baseURL string, session *Session) *Client {
	return &Client{
		BaseURL: strings.TrimRight(baseURL, "/"),
		Session: session,
		HTTP:    &http.Client{Timeout: 30 * time.Second},
	}
}

// Login exchanges the password for a bearer token and stores it in the
// session. A 401 yields ErrInvalidPassword and leaves the session logged out.
func (c *Client) Login(ctx context.Context, password string) error {
	body, err := json.Marshal(map[string]string{"password": password})
	if err != nil {
		return fmt.Errorf("login: %w", err)
	}
	resp, err := c.send(ctx, http.MethodPost, "/api/admin/login", "application/json", bytes.NewReader(body), false)
	if err != nil {
		return fmt.Errorf("login: %w", err)
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusOK:
		var out struct {
			Token string `json:"token"`
		}
		if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
			return fmt.Errorf("login: decode: %w", err)
		}
		if out.Token == "" {
			return fmt.Errorf("login: empty token in response")
		}
		c.Session.set(out.Token)
		return nil
	case resp.StatusCode == http.StatusUnauthorized:
		return ErrInvalidPassword
	default:
		return fmt.Errorf("login: %w", statusError(resp))
	}
}

// ListVehicles returns the full inventory, hidden listings included.
func (c *Client) ListVehicles(ctx context.Context) ([]domain.Vehicle, error) {
	var out []domain.Vehicle
	if err := c.getJSON(ctx, "/api/admin/vehicles", &out); err != nil {
		return nil, fmt.Errorf("list vehicles: %w", err)
	}
	return out, nil
}

// ListContacts returns the contact-form inbox, newest first.
func (c *Client) ListContacts(ctx context.Context) ([]domain.ContactMessage, error) {
	var out []domain.ContactMessage
	if err := c.getJSON(ctx, "/api/admin/contacts", &out); err != nil {
		return nil, fmt.Errorf("list contacts: %w", err)
	}
	return out, nil
}

// CreateVehicle submits a new listing and returns the persisted record.
func (c *Client) CreateVehicle(ctx context.Context, d VehicleDraft) (*domain.Vehicle, error) {
	var out domain.Vehicle
	if err := c.writeJSON(ctx, http.MethodPost, "/api/admin/vehicles", d.withCover(), http.StatusCreated, &out); err != nil {
		return nil, fmt.Errorf("create vehicle: %w", err)
	}
	return &out, nil
}

// UpdateVehicle replaces every editable field of an existing listing.
func (c *Client) UpdateVehicle(ctx context.Context, id string, d VehicleDraft) (*domain.Vehicle, error) {
	var out domain.Vehicle
	if err := c.writeJSON(ctx, http.MethodPut, "/api/admin/vehicles/"+id, d.withCover(), http.StatusOK, &out); err != nil {
		return nil, fmt.Errorf("update vehicle: %w", err)
	}
	return &out, nil
}

// SetAvailability flips a listing's visibility. The payload deliberately
// contains only the `available` flag so no other stored field is touched.
func (c *Client) SetAvailability(ctx context.Context, id string, available bool) (*domain.Vehicle, error) {
	var out domain.Vehicle
	payload := map[string]bool{"available": available}
	if err := c.writeJSON(ctx, http.MethodPut, "/api/admin/vehicles/"+id, payload, http.StatusOK, &out); err != nil {
		return nil, fmt.Errorf("set availability: %w", err)
	}
	return &out, nil
}

// DeleteVehicle permanently removes a listing.
func (c *Client) DeleteVehicle(ctx context.Context, id string) error {
	resp, err := c.send(ctx, http.MethodDelete, "/api/admin/vehicles/"+id, "", nil, true)
	if err != nil {
		return fmt.Errorf("delete vehicle: %w", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusNoContent {
		return fmt.Errorf("delete vehicle: %w", statusError(resp))
	}
	return nil
}

// UploadImage sends one image as a multipart form and returns its public
// URL. contentType must be the image's MIME type.
func (c *Client) UploadImage(ctx context.Context, filename, contentType string, r io.Reader) (string, error) {
	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	hdr := textproto.MIMEHeader{}
	hdr.Set("Content-Disposition", fmt.Sprintf(`form-data; name="file"; filename=%q`, filename))
	hdr.Set("Content-Type", contentType)
	part, err := mw.CreatePart(hdr)
	if err != nil {
		return "", fmt.Errorf("upload: %w", err)
	}
	if _, err := io.Copy(part, r); err != nil {
		return "", fmt.Errorf("upload: read image: %w", err)
	}
	if err := mw.Close(); err != nil {
		return "", fmt.Errorf("upload: %w", err)
	}

	resp, err := c.send(ctx, http.MethodPost, "/api/admin/upload", mw.FormDataContentType(), &buf, true)
	if err != nil {
		return "", fmt.Errorf("upload: %w", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusCreated {
		return "", fmt.Errorf("upload: %w", statusError(resp))
	}

	var out struct {
		URL string `json:"url"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return "", fmt.Errorf("upload: decode: %w", err)
	}
	return out.URL, nil
}

// getJSON performs an authenticated GET and decodes the 200 response.
func (c *Client) getJSON(ctx context.Context, path string, out any) error {
	resp, err := c.send(ctx, http.MethodGet, path, "", nil, true)
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return statusError(resp)
	}
	return json.NewDecoder(resp.Body).Decode(out)
}

// writeJSON performs an authenticated write with a JSON payload and decodes
// the response when it matches wantStatus.
func (c *Client) writeJSON(ctx context.Context, method, path string, payload any, wantStatus int, out any) error {
	body, err := json.Marshal(payload)
	if err != nil {
		return err
	}
	resp, err := c.send(ctx, method, path, "application/json", bytes.NewReader(body), true)
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	if resp.StatusCode != wantStatus {
		return statusError(resp)
	}
	if out == nil {
		return nil
	}
	return json.NewDecoder(resp.Body).Decode(out)
}

// send builds and executes one request. authed attaches the session token.
func (c *Client) send(ctx context.Context, method, path, contentType string, body io.Reader, authed bool) (*http.Response, error) {
	req, err := http.NewRequestWithContext(ctx, method, c.BaseURL+path, body)
	if err != nil {
		return nil, err
	}
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}
	if authed {
		req.Header.Set("Authorization", "Bearer "+c.Session.Token())
	}

	client := c.HTTP
	if client == nil {
		client = &http.Client{Timeout: 30 * time.Second}
	}
	return client.Do(req)
}

// statusError maps an unexpected response to a sentinel or a descriptive
// error carrying the backend's message when one is present.
func statusError(resp *http.Response) error {
	switch resp.StatusCode {
	case http.StatusUnauthorized:
		return ErrUnauthorized
	case http.StatusNotFound:
		return ErrNotFound
	}

	var envelope struct {
		Code    string `json:"code"`
		Message string `json:"message"`
	}
	if err := json.NewDecoder(io.LimitReader(resp.Body, 4096)).Decode(&envelope); err == nil && envelope.Message != "" {
		return fmt.Errorf("server answered %d (%s): %s", resp.StatusCode, envelope.Code, envelope.Message)
	}
	return fmt.Errorf("server answered %d", resp.StatusCode)
}
