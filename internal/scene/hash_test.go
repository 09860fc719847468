package scene

import (
	"crypto/sha256"
	"encoding/hex"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFingerprintIsStable(t *testing.T) {
	n := &Group{Name: "part", Child: &Box{Size: Vec{X: 1, Y: 2, Z: 3}}}

	a, err := Fingerprint(n)
	require.NoError(t, err)
	b, err := Fingerprint(n)
	require.NoError(t, err)

	assert.Equal(t, a, b)
	assert.Len(t, a, 64) // hex SHA-256
}

func TestFingerprintMatchesManualDomainHash(t *testing.T) {
	n := &Box{Size: Vec{X: 1, Y: 2, Z: 3}}

	canonical, err := MarshalManifest(n)
	require.NoError(t, err)

	h := sha256.New()
	h.Write([]byte(DomainScene))
	h.Write([]byte{0x00})
	h.Write(canonical)
	want := hex.EncodeToString(h.Sum(nil))

	got, err := Fingerprint(n)
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestFingerprintSensitiveToGeometry(t *testing.T) {
	a := MustFingerprint(&Box{Size: Vec{X: 1, Y: 1, Z: 1}})
	b := MustFingerprint(&Box{Size: Vec{X: 1, Y: 1, Z: 1.001}})
	assert.NotEqual(t, a, b)
}

func TestFingerprintInsensitiveBelowMicrometer(t *testing.T) {
	a := MustFingerprint(&Box{Size: Vec{X: 1, Y: 1, Z: 1}})
	b := MustFingerprint(&Box{Size: Vec{X: 1, Y: 1, Z: 1.0000001}})
	assert.Equal(t, a, b)
}

func TestSceneAndDesignDomainsDiffer(t *testing.T) {
	// The same bytes under different domains must never collide.
	m := map[string]any{"kind": "box", "round_um": int64(0), "size_um": []any{int64(1), int64(1), int64(1)}}

	designID, err := FingerprintDesign(m)
	require.NoError(t, err)

	canonical, err := MarshalCanonical(m)
	require.NoError(t, err)
	assert.NotEqual(t, designID, hashWithDomain(DomainScene, canonical))
}

func TestMustFingerprintPanicsOnBadTree(t *testing.T) {
	assert.Panics(t, func() {
		MustFingerprint(&Group{Name: "broken"}) // nil child
	})
}
