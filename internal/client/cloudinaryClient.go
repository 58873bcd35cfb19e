package client

import (
	"context"
	"crypto/sha1"
	"encoding/base64"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"sort"
	"strconv"
	"strings"
	"time"

	"facade-storefront/internal/config"
)

// CloudinaryClient uploads payment slip images and returns their public URL.
type CloudinaryClient interface {
	UploadPaymentSlip(ctx context.Context, file []byte, mimeType, uploadID string) (string, error)
}

type cloudinaryClientImpl struct {
	httpClient *http.Client
	baseApiURL string
	cloudName  string
	apiKey     string
	apiSecret  string
	folder     string
}

type cloudinaryUploadResult struct {
	SecureURL string `json:"secure_url"`
}

func NewCloudinaryClient(cfg *config.Cloudinary) CloudinaryClient {
	return &cloudinaryClientImpl{
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
		baseApiURL: cfg.BaseApiURL,
		cloudName:  cfg.CloudName,
		apiKey:     cfg.APIKey,
		apiSecret:  cfg.APISecret,
		folder:     cfg.Folder,
	}
}

func (c *cloudinaryClientImpl) UploadPaymentSlip(ctx context.Context, file []byte, mimeType, uploadID string) (string, error) {
	if c.cloudName == "" || c.apiKey == "" || c.apiSecret == "" {
		return "", fmt.Errorf("cloudinary configuration missing")
	}

	encoded := fmt.Sprintf("data:%s;base64,%s", mimeType, base64.StdEncoding.EncodeToString(file))
	publicID := fmt.Sprintf("%s-%d", uploadID, time.Now().UnixMilli())
	timestamp := strconv.FormatInt(time.Now().Unix(), 10)

	form := url.Values{}
	form.Set("file", encoded)
	form.Set("api_key", c.apiKey)
	form.Set("folder", c.folder)
	form.Set("public_id", publicID)
	form.Set("timestamp", timestamp)
	form.Set("signature", c.sign(map[string]string{
		"folder":    c.folder,
		"public_id": publicID,
		"timestamp": timestamp,
	}))

	endpoint := fmt.Sprintf("%s/v1_1/%s/image/upload", c.baseApiURL, c.cloudName)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint,
		strings.NewReader(form.Encode()))
	if err != nil {
		return "", fmt.Errorf("http new request: %w", err)
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("http client do: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		b, _ := io.ReadAll(resp.Body)
		return "", fmt.Errorf("cloudinary error %d: %s", resp.StatusCode, string(b))
	}

	var result cloudinaryUploadResult
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return "", fmt.Errorf("decode cloudinary response: %w", err)
	}

	return result.SecureURL, nil
}

// sign builds the SHA-1 upload signature over the sorted non-file params,
// as required by the Cloudinary upload API.
func (c *cloudinaryClientImpl) sign(params map[string]string) string {
	keys := make([]string, 0, len(params))
	for k := range params {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	pairs := make([]string, 0, len(keys))
	for _, k := range keys {
		pairs = append(pairs, k+"="+params[k])
	}

	sum := sha1.Sum([]byte(strings.Join(pairs, "&") + c.apiSecret))
	return hex.EncodeToString(sum[:])
}
