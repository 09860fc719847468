package scene

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
)

// Domain prefixes for content-addressed identity. Version suffix enables
// future algorithm migration.
const (
	DomainScene  = "hyperobject/scene/v1"
	DomainDesign = "hyperobject/design/v1"
)

// hashWithDomain computes SHA-256 hash with domain separation.
// Format: SHA256(domain + 0x00 + data)
// The null byte separator prevents domain/data boundary ambiguity.
func hashWithDomain(domain string, data []byte) string {
	h := sha256.New()
	h.Write([]byte(domain))
	h.Write([]byte{0x00})
	h.Write(data)
	return hex.EncodeToString(h.Sum(nil))
}

// Fingerprint computes the content-addressed ID of a CSG tree. Two trees
// fingerprint equal iff their canonical manifests are byte-identical, so the
// ID is stable across runs, platforms, and process restarts.
func Fingerprint(n Node) (string, error) {
	canonical, err := MarshalManifest(n)
	if err != nil {
		return "", fmt.Errorf("Fingerprint: failed to marshal: %w", err)
	}
	return hashWithDomain(DomainScene, canonical), nil
}

// FingerprintDesign computes the content-addressed ID of a resolved design
// given its canonical map form (micrometer integers, as in manifests).
func FingerprintDesign(m map[string]any) (string, error) {
	canonical, err := MarshalCanonical(m)
	if err != nil {
		return "", fmt.Errorf("FingerprintDesign: failed to marshal: %w", err)
	}
	return hashWithDomain(DomainDesign, canonical), nil
}

// MustFingerprint is like Fingerprint but panics on error.
// Use only in tests or when the tree is known to be valid.
func MustFingerprint(n Node) string {
	id, err := Fingerprint(n)
	if err != nil {
		panic(err)
	}
	return id
}
