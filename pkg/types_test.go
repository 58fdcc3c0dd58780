package pkg

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseSessionKeyFixedContexts(t *testing.T) {
	for _, raw := range []string{"general", "triage", "imaging", "dispatch", "pharmacy"} {
		key, err := ParseSessionKey(raw)
		require.NoError(t, err, raw)
		assert.Equal(t, SessionKey(raw), key)
		assert.Empty(t, key.ID())
	}
}

func TestParseSessionKeyAddressedContexts(t *testing.T) {
	key, err := ParseSessionKey("doctor:doc-7")
	require.NoError(t, err)
	assert.Equal(t, KindDoctor, key.Kind())
	assert.Equal(t, "doc-7", key.ID())
	assert.Equal(t, DoctorSession("doc-7"), key)

	key, err = ParseSessionKey("specialist:skin")
	require.NoError(t, err)
	assert.Equal(t, KindSpecialist, key.Kind())
	assert.Equal(t, "skin", key.ID())
}

func TestParseSessionKeyRejectsMalformed(t *testing.T) {
	for _, raw := range []string{"", "nurse", "doctor:", "specialist:", "doctor", "general:x"} {
		_, err := ParseSessionKey(raw)
		assert.Error(t, err, "raw %q", raw)
	}
}

func TestSessionKeyEqualityIsIdentity(t *testing.T) {
	assert.Equal(t, DoctorSession("d1"), DoctorSession("d1"))
	assert.NotEqual(t, DoctorSession("d1"), DoctorSession("d2"))
	assert.NotEqual(t, DoctorSession("skin"), SpecialistSession("skin"))
}
