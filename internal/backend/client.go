package backend

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/textproto"
	"strings"
	"time"

	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"

	"cerberus/internal/models"
)

// Client talks to the moderation backend. It holds no session state;
// the bearer token is passed per call.
type Client struct {
	baseURL string
	http    *http.Client
}

// New creates a backend client. A zero timeout disables client-side
// timeouts; failure signaling is then left to the transport.
func New(baseURL string, timeout time.Duration) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: timeout},
	}
}

type loginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type loginResponse struct {
	Token string `json:"token"`
}

// Login exchanges demo credentials for a bearer token. Any deviation
// from the expected shape is an error; the caller decides whether to
// degrade to unauthenticated mode.
func (c *Client) Login(ctx context.Context, username, password string) (string, error) {
	body, err := json.Marshal(loginRequest{Username: username, Password: password})
	if err != nil {
		return "", fmt.Errorf("encode login request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/api/auth/login", bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("build login request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return "", fmt.Errorf("login request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return "", &models.HTTPError{StatusCode: resp.StatusCode}
	}

	var lr loginResponse
	if err := json.NewDecoder(resp.Body).Decode(&lr); err != nil {
		return "", fmt.Errorf("%w: %v", models.ErrParse, err)
	}
	if lr.Token == "" {
		return "", fmt.Errorf("%w: login response missing token", models.ErrParse)
	}
	return lr.Token, nil
}

// Moderate submits content and/or an image as multipart form data and
// decodes the analysis response. The token is attached as a bearer
// header when non-empty.
func (c *Client) Moderate(ctx context.Context, mr *models.ModerationRequest, token string) (*models.ModerationResponse, error) {
	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)

	if err := writer.WriteField("content", mr.Content); err != nil {
		return nil, fmt.Errorf("write content field: %w", err)
	}
	userID := mr.UserID
	if userID == "" {
		userID = "anonymous"
	}
	if err := writer.WriteField("user_id", userID); err != nil {
		return nil, fmt.Errorf("write user_id field: %w", err)
	}
	if mr.HasImage() {
		if err := writeImagePart(writer, mr); err != nil {
			return nil, err
		}
	}
	if err := writer.Close(); err != nil {
		return nil, fmt.Errorf("finalize multipart body: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/moderate", &buf)
	if err != nil {
		return nil, fmt.Errorf("build moderation request: %w", err)
	}
	req.Header.Set("Content-Type", writer.FormDataContentType())
	req.Header.Set("Idempotency-Key", uuid.NewString())
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("moderation request failed: %w", err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read moderation response: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		log.Debugf("moderation backend returned %d: %s", resp.StatusCode, truncateBody(raw))
		return nil, &models.HTTPError{StatusCode: resp.StatusCode, Body: string(raw)}
	}

	var result models.ModerationResponse
	if err := json.Unmarshal(raw, &result); err != nil {
		return nil, fmt.Errorf("%w: %v", models.ErrParse, err)
	}
	if result.Error != "" {
		return nil, fmt.Errorf("%w: %s", models.ErrServerReported, result.Error)
	}
	return &result, nil
}

func writeImagePart(writer *multipart.Writer, mr *models.ModerationRequest) error {
	name := mr.ImageName
	if name == "" {
		name = "upload"
	}
	header := textproto.MIMEHeader{}
	header.Set("Content-Disposition",
		fmt.Sprintf(`form-data; name="image"; filename=%q`, name))
	header.Set("Content-Type", http.DetectContentType(mr.Image))
	part, err := writer.CreatePart(header)
	if err != nil {
		return fmt.Errorf("create image part: %w", err)
	}
	if _, err := part.Write(mr.Image); err != nil {
		return fmt.Errorf("write image part: %w", err)
	}
	return nil
}

func truncateBody(raw []byte) string {
	const max = 256
	if len(raw) <= max {
		return string(raw)
	}
	return string(raw[:max]) + "..."
}
