package storage

import (
	"bytes"
	"context"
	"crypto/sha1"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/url"
	"path"
	"strconv"
	"strings"
	"time"

	"github.com/nuestra-historia/backend/internal/config"
	"github.com/nuestra-historia/backend/internal/domain"
)

const cloudinaryBaseURL = "https://api.cloudinary.com/v1_1"

// Cloudinary uploads images to the Cloudinary HTTP API using signed requests
// and returns the served secure URL.
type Cloudinary struct {
	client    *http.Client
	baseURL   string
	cloudName string
	apiKey    string
	apiSecret string
	folder    string
	now       func() time.Time
}

// NewCloudinary creates a Cloudinary store from config.
func NewCloudinary(cfg config.CloudinaryConfig) *Cloudinary {
	return &Cloudinary{
		client:    &http.Client{Timeout: 30 * time.Second},
		baseURL:   cloudinaryBaseURL,
		cloudName: cfg.CloudName,
		apiKey:    cfg.APIKey,
		apiSecret: cfg.APISecret,
		folder:    cfg.Folder,
		now:       time.Now,
	}
}

type uploadResponse struct {
	SecureURL string `json:"secure_url"`
	Error     struct {
		Message string `json:"message"`
	} `json:"error"`
}

// Save uploads the file and returns its secure URL. Upstream failures map to
// domain.ErrUnavailable; the caller surfaces them as a generic server error.
func (c *Cloudinary) Save(ctx context.Context, up Upload) (string, error) {
	timestamp := strconv.FormatInt(c.now().Unix(), 10)
	signature := c.sign("folder=" + c.folder + "&timestamp=" + timestamp)

	var body bytes.Buffer
	w := multipart.NewWriter(&body)

	part, err := w.CreateFormFile("file", up.Filename)
	if err != nil {
		return "", fmt.Errorf("storage: build upload form: %w", err)
	}
	if _, err := io.Copy(part, up.Content); err != nil {
		return "", fmt.Errorf("storage: read upload: %w", err)
	}

	fields := map[string]string{
		"api_key":   c.apiKey,
		"timestamp": timestamp,
		"folder":    c.folder,
		"signature": signature,
	}
	for k, v := range fields {
		if err := w.WriteField(k, v); err != nil {
			return "", fmt.Errorf("storage: build upload form: %w", err)
		}
	}
	if err := w.Close(); err != nil {
		return "", fmt.Errorf("storage: build upload form: %w", err)
	}

	url := fmt.Sprintf("%s/%s/image/upload", c.baseURL, c.cloudName)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, &body)
	if err != nil {
		return "", fmt.Errorf("storage: build upload request: %w", err)
	}
	req.Header.Set("Content-Type", w.FormDataContentType())

	resp, err := c.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("storage: cloudinary upload: %w", domain.ErrUnavailable)
	}
	defer resp.Body.Close()

	var result uploadResponse
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return "", fmt.Errorf("storage: decode cloudinary response: %w", domain.ErrUnavailable)
	}

	if resp.StatusCode != http.StatusOK || result.SecureURL == "" {
		return "", fmt.Errorf("storage: cloudinary upload failed (%d): %s: %w",
			resp.StatusCode, result.Error.Message, domain.ErrUnavailable)
	}

	return result.SecureURL, nil
}

type destroyResponse struct {
	Result string `json:"result"`
	Error  struct {
		Message string `json:"message"`
	} `json:"error"`
}

// Remove destroys the asset behind a secure URL previously returned by Save.
// URLs that do not look like Cloudinary delivery URLs are ignored.
func (c *Cloudinary) Remove(ctx context.Context, rawURL string) error {
	publicID := publicIDFromURL(rawURL)
	if publicID == "" {
		return nil
	}

	timestamp := strconv.FormatInt(c.now().Unix(), 10)
	signature := c.sign("public_id=" + publicID + "&timestamp=" + timestamp)

	form := url.Values{}
	form.Set("public_id", publicID)
	form.Set("timestamp", timestamp)
	form.Set("api_key", c.apiKey)
	form.Set("signature", signature)

	endpoint := fmt.Sprintf("%s/%s/image/destroy", c.baseURL, c.cloudName)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, strings.NewReader(form.Encode()))
	if err != nil {
		return fmt.Errorf("storage: build destroy request: %w", err)
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := c.client.Do(req)
	if err != nil {
		return fmt.Errorf("storage: cloudinary destroy: %w", domain.ErrUnavailable)
	}
	defer resp.Body.Close()

	var result destroyResponse
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return fmt.Errorf("storage: decode cloudinary response: %w", domain.ErrUnavailable)
	}

	// "not found" is fine: the asset is already gone.
	if resp.StatusCode != http.StatusOK || (result.Result != "ok" && result.Result != "not found") {
		return fmt.Errorf("storage: cloudinary destroy failed (%d): %s: %w",
			resp.StatusCode, result.Error.Message, domain.ErrUnavailable)
	}

	return nil
}

// publicIDFromURL extracts the public ID (folder/name without extension) from
// a Cloudinary delivery URL. Returns "" when the URL has no upload segment.
func publicIDFromURL(rawURL string) string {
	_, after, found := strings.Cut(rawURL, "/image/upload/")
	if !found {
		return ""
	}

	segments := strings.Split(after, "/")
	// Drop the version segment (v123...).
	if first := segments[0]; len(segments) > 1 && len(first) > 1 && first[0] == 'v' && isDigits(first[1:]) {
		segments = segments[1:]
	}

	id := strings.Join(segments, "/")
	if ext := path.Ext(id); ext != "" {
		id = strings.TrimSuffix(id, ext)
	}
	return id
}

func isDigits(s string) bool {
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return len(s) > 0
}

// sign computes the Cloudinary request signature: the SHA-1 hex digest of the
// sorted parameter string concatenated with the API secret.
func (c *Cloudinary) sign(params string) string {
	h := sha1.Sum([]byte(params + c.apiSecret))
	return hex.EncodeToString(h[:])
}
