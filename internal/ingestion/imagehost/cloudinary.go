package imagehost

import (
	"bytes"
	"context"
	"crypto/sha1"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"sort"
	"strconv"
	"time"
)

var ErrNotConfigured = errors.New("image host credentials not configured")

// Uploader pushes user images to Cloudinary using signed uploads.
type Uploader struct {
	cloudName  string
	apiKey     string
	apiSecret  string
	folder     string
	httpClient *http.Client
}

func NewUploader(cloudName, apiKey, apiSecret, folder string) *Uploader {
	return &Uploader{
		cloudName: cloudName,
		apiKey:    apiKey,
		apiSecret: apiSecret,
		folder:    folder,
		httpClient: &http.Client{
			Timeout: 60 * time.Second,
		},
	}
}

// UploadResult is the subset of the upload response we care about.
type UploadResult struct {
	PublicID  string `json:"public_id"`
	SecureURL string `json:"secure_url"`
	Format    string `json:"format"`
	Bytes     int64  `json:"bytes"`
}

// Upload sends the image bytes as a signed multipart upload and returns the
// hosted URL.
func (u *Uploader) Upload(ctx context.Context, filename string, data io.Reader) (*UploadResult, error) {
	if u.cloudName == "" || u.apiKey == "" || u.apiSecret == "" {
		return nil, ErrNotConfigured
	}

	timestamp := strconv.FormatInt(time.Now().Unix(), 10)
	params := map[string]string{
		"timestamp": timestamp,
		"folder":    u.folder,
	}
	signature := u.sign(params)

	var body bytes.Buffer
	writer := multipart.NewWriter(&body)

	part, err := writer.CreateFormFile("file", filename)
	if err != nil {
		return nil, err
	}
	if _, err := io.Copy(part, data); err != nil {
		return nil, err
	}

	fields := map[string]string{
		"api_key":   u.apiKey,
		"timestamp": timestamp,
		"folder":    u.folder,
		"signature": signature,
	}
	for key, value := range fields {
		if err := writer.WriteField(key, value); err != nil {
			return nil, err
		}
	}
	if err := writer.Close(); err != nil {
		return nil, err
	}

	endpoint := fmt.Sprintf("https://api.cloudinary.com/v1_1/%s/image/upload", u.cloudName)
	req, err := http.NewRequestWithContext(ctx, "POST", endpoint, &body)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", writer.FormDataContentType())

	resp, err := u.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("upload request failed: %w", err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read upload response: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("upload failed with HTTP %d: %s", resp.StatusCode, string(respBody))
	}

	var result UploadResult
	if err := json.Unmarshal(respBody, &result); err != nil {
		return nil, fmt.Errorf("failed to parse upload response: %w", err)
	}
	return &result, nil
}

// sign builds the request signature: parameters sorted by key, joined as
// key=value pairs with '&', with the API secret appended, hashed with SHA-1.
func (u *Uploader) sign(params map[string]string) string {
	keys := make([]string, 0, len(params))
	for key := range params {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	var toSign bytes.Buffer
	for i, key := range keys {
		if i > 0 {
			toSign.WriteByte('&')
		}
		toSign.WriteString(key)
		toSign.WriteByte('=')
		toSign.WriteString(params[key])
	}
	toSign.WriteString(u.apiSecret)

	sum := sha1.Sum(toSign.Bytes())
	return hex.EncodeToString(sum[:])
}
