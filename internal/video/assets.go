package video

import (
	"crypto/rand"
	"encoding/base64"
	"fmt"
)

const (
	maxThumbnailBytes = 10 << 20 // 10 MiB
	maxVideoBytes     = 1 << 30  // 1 GiB
)

// Extension allow-lists per upload kind. Adding a type here is a deployment
// policy decision; anything not listed is rejected.
var thumbnailExtensions = map[string]string{
	"image/jpeg": ".jpg",
	"image/png":  ".png",
}

var videoExtensions = map[string]string{
	"video/mp4": ".mp4",
}

// newAssetName returns a fresh unguessable filename stem, 32 random bytes
// in unpadded URL-safe base64.
func newAssetName() (string, error) {
	stem := make([]byte, 32)
	if _, err := rand.Read(stem); err != nil {
		return "", fmt.Errorf("failed to generate asset name: %w", err)
	}
	return base64.RawURLEncoding.EncodeToString(stem), nil
}
