package cache

import (
	"crypto/sha256"
	"fmt"
)

// Key fingerprints a request. The four fields are hashed in this fixed,
// documented order: query, OS, shell, mode. A NUL byte terminates each
// field so adjacent fields cannot blur into each other. The working
// directory is deliberately not part of the fingerprint.
func Key(query, os, shell, mode string) string {
	h := sha256.New()
	for _, field := range []string{query, os, shell, mode} {
		h.Write([]byte(field))
		h.Write([]byte{0})
	}
	return fmt.Sprintf("%x", h.Sum(nil))
}
