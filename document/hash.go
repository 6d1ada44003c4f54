package document

import (
	"crypto/sha256"
	"encoding/hex"
)

// ContentHash returns the SHA-256 digest of the canonical JSON bytes, hex
// encoded. Semantically equal documents hash identically; sync
// collaborators compare this value (together with Version and UpdatedAt)
// to detect remote divergence.
func (d *Document) ContentHash() (string, error) {
	data, err := d.CanonicalJSON()
	if err != nil {
		return "", err
	}
	sum := sha256.Sum256(data)
	return hex.EncodeToString(sum[:]), nil
}
