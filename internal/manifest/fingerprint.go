package manifest

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"

	"github.com/gowebpki/jcs"
)

// Fingerprint returns the hex-encoded SHA-256 digest of the document's
// RFC 8785 (JCS) canonical form. Two manifests with the same content
// fingerprint identically regardless of key order or whitespace.
//
// This is an identity aid for display and logs, not a signature check.
func Fingerprint(data []byte) (string, error) {
	canonical, err := jcs.Transform(data)
	if err != nil {
		return "", fmt.Errorf("canonicalize manifest: %w", err)
	}

	sum := sha256.Sum256(canonical)
	return hex.EncodeToString(sum[:]), nil
}
