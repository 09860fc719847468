package scene

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMarshalCanonicalSortsKeysUTF16(t *testing.T) {
	out, err := MarshalCanonical(map[string]any{
		"zeta":  int64(1),
		"alpha": int64(2),
		"kind":  "box",
	})
	require.NoError(t, err)
	assert.Equal(t, `{"alpha":2,"kind":"box","zeta":1}`, string(out))
}

func TestMarshalCanonicalUTF16OrderDiffersFromBytes(t *testing.T) {
	// U+FF61 (EF BD A1 in UTF-8) sorts after U+10000 (F0 90 80 80) in UTF-16
	// code units because the latter is a surrogate pair starting at 0xD800.
	out, err := MarshalCanonical(map[string]any{
		"｡":     int64(1),
		"\U00010000": int64(2),
	})
	require.NoError(t, err)
	assert.Equal(t, "{\"\U00010000\":2,\"｡\":1}", string(out))
}

func TestMarshalCanonicalNoHTMLEscape(t *testing.T) {
	out, err := MarshalCanonical("a<b>&c")
	require.NoError(t, err)
	assert.Equal(t, `"a<b>&c"`, string(out))
}

func TestMarshalCanonicalRejectsFloats(t *testing.T) {
	_, err := MarshalCanonical(1.5)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "floats are forbidden")

	_, err = MarshalCanonical(map[string]any{"x": 1.5})
	assert.Error(t, err)
}

func TestMarshalCanonicalRejectsNull(t *testing.T) {
	_, err := MarshalCanonical(nil)
	require.Error(t, err)

	_, err = MarshalCanonical([]any{nil})
	assert.Error(t, err)
}

func TestMarshalCanonicalRejectsLineSeparators(t *testing.T) {
	_, err := MarshalCanonical("a\u2028b")
	assert.Error(t, err)

	_, err = MarshalCanonical("a\u2029b")
	assert.Error(t, err)
}

func TestMarshalCanonicalNFCNormalizes(t *testing.T) {
	// e + combining acute normalizes to the precomposed form.
	out, err := MarshalCanonical("e\u0301")
	require.NoError(t, err)
	assert.Equal(t, "\"\u00e9\"", string(out))
}

func TestMarshalCanonicalArraysAndScalars(t *testing.T) {
	out, err := MarshalCanonical([]any{int64(1), "two", true, false})
	require.NoError(t, err)
	assert.Equal(t, `[1,"two",true,false]`, string(out))
}

func TestMarshalCanonicalNested(t *testing.T) {
	out, err := MarshalCanonical(map[string]any{
		"child": map[string]any{"kind": "box"},
		"kind":  "group",
	})
	require.NoError(t, err)
	assert.Equal(t, `{"child":{"kind":"box"},"kind":"group"}`, string(out))
}
