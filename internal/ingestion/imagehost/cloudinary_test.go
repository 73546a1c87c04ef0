package imagehost

import (
	"context"
	"crypto/sha1"
	"encoding/hex"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSign_SortsKeysAndAppendsSecret(t *testing.T) {
	uploader := NewUploader("demo", "key", "secret", "uploads")

	got := uploader.sign(map[string]string{
		"timestamp": "1234",
		"folder":    "uploads",
	})

	sum := sha1.Sum([]byte("folder=uploads&timestamp=1234secret"))
	assert.Equal(t, hex.EncodeToString(sum[:]), got)
}

func TestSign_Deterministic(t *testing.T) {
	uploader := NewUploader("demo", "key", "secret", "uploads")
	params := map[string]string{"timestamp": "1234", "folder": "uploads"}

	assert.Equal(t, uploader.sign(params), uploader.sign(params))
}

func TestUpload_MissingCredentials(t *testing.T) {
	uploader := NewUploader("", "", "", "uploads")

	_, err := uploader.Upload(context.Background(), "photo.jpg", strings.NewReader("bytes"))

	assert.ErrorIs(t, err, ErrNotConfigured)
}
