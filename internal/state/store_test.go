package state

import (
	"encoding/json"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testOrigin = "https://acme.crm.example.com/api"

func openTestStore(t *testing.T, dir string) *Store {
	t.Helper()
	s, err := Open(dir, testOrigin)
	require.NoError(t, err)
	return s
}

func TestSetGetClear(t *testing.T) {
	s := openTestStore(t, t.TempDir())

	require.NoError(t, s.Set(KeyTenantSlug, "acme"))
	assert.Equal(t, "acme", s.Get(KeyTenantSlug))

	require.NoError(t, s.Clear(KeyTenantSlug))
	assert.Empty(t, s.Get(KeyTenantSlug))
}

func TestSurvivesReopen(t *testing.T) {
	dir := t.TempDir()

	s := openTestStore(t, dir)
	require.NoError(t, s.Set(KeyToken, "T1"))
	require.NoError(t, s.Set(KeyTenantID, "tenant-42"))
	require.NoError(t, s.Set(KeyTenantSlug, "acme"))

	reopened := openTestStore(t, dir)
	assert.Equal(t, "T1", reopened.Get(KeyToken))
	assert.Equal(t, "tenant-42", reopened.Get(KeyTenantID))
	assert.Equal(t, "acme", reopened.Get(KeyTenantSlug))
}

func TestClearAll(t *testing.T) {
	dir := t.TempDir()

	s := openTestStore(t, dir)
	require.NoError(t, s.Set(KeyToken, "T1"))
	require.NoError(t, s.Set(KeyTenantID, "tenant-42"))
	require.NoError(t, s.Set(KeyTenantSlug, "acme"))

	require.NoError(t, s.ClearAll())

	assert.Empty(t, s.Get(KeyToken))
	assert.Empty(t, s.Get(KeyTenantID))
	assert.Empty(t, s.Get(KeyTenantSlug))

	reopened := openTestStore(t, dir)
	assert.Empty(t, reopened.Get(KeyToken))
}

func TestSetEmptyValueClears(t *testing.T) {
	s := openTestStore(t, t.TempDir())

	require.NoError(t, s.Set(KeyTenantID, "tenant-42"))
	require.NoError(t, s.Set(KeyTenantID, ""))
	assert.Empty(t, s.Get(KeyTenantID))
}

func TestTokenEncryptedAtRest(t *testing.T) {
	dir := t.TempDir()

	s := openTestStore(t, dir)
	require.NoError(t, s.Set(KeyToken, "super-secret-token"))
	require.NoError(t, s.Set(KeyTenantSlug, "acme"))

	raw, err := os.ReadFile(s.Path())
	require.NoError(t, err)

	assert.NotContains(t, string(raw), "super-secret-token")

	var onDisk map[string]string
	require.NoError(t, json.Unmarshal(raw, &onDisk))
	assert.Equal(t, "acme", onDisk[KeyTenantSlug], "tenant slug stays plaintext")
	assert.NotEmpty(t, onDisk[KeyToken])
}

func TestOriginsAreIsolated(t *testing.T) {
	dir := t.TempDir()

	s1, err := Open(dir, "https://acme.crm.example.com/api")
	require.NoError(t, err)
	require.NoError(t, s1.Set(KeyToken, "T1"))

	s2, err := Open(dir, "https://northside.crm.example.com/api")
	require.NoError(t, err)

	assert.NotEqual(t, s1.Path(), s2.Path())
	assert.Empty(t, s2.Get(KeyToken))
}

func TestUndecryptableTokenTreatedAsAbsent(t *testing.T) {
	dir := t.TempDir()

	s := openTestStore(t, dir)
	require.NoError(t, s.Set(KeyToken, "T1"))
	require.NoError(t, s.Set(KeyTenantSlug, "acme"))

	// Rotate the keyfile out from under the store to simulate key loss.
	require.NoError(t, os.Remove(s.Path()))
	raw := map[string]string{KeyToken: "bm90LWEtcmVhbC1jaXBoZXJ0ZXh0", KeyTenantSlug: "acme"}
	data, err := json.Marshal(raw)
	require.NoError(t, err)
	require.NoError(t, os.WriteFile(s.Path(), data, 0o600))

	reopened := openTestStore(t, dir)
	assert.Empty(t, reopened.Get(KeyToken))
	assert.Equal(t, "acme", reopened.Get(KeyTenantSlug))
}
