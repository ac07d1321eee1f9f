package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_FreshDirGetsDefaults(t *testing.T) {
	dir := t.TempDir()
	cfg, err := Load(dir)
	require.NoError(t, err)
	assert.Equal(t, "abis", cfg.ABIDir)
	assert.Equal(t, dir, cfg.Dir())
}

func TestLoad_CreatesConfigDir(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "deep", "config")
	_, err := Load(dir)
	require.NoError(t, err)

	info, err := os.Stat(dir)
	require.NoError(t, err)
	assert.True(t, info.IsDir())
}

func TestLoad_ReadsExistingConfig(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(
		filepath.Join(dir, "config.json"),
		[]byte(`{"abi_dir":"/opt/abis"}`),
		0o600,
	))

	cfg, err := Load(dir)
	require.NoError(t, err)
	assert.Equal(t, "/opt/abis", cfg.ABIDir)
}

func TestLoad_EmptyABIDirFallsBackToDefault(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(
		filepath.Join(dir, "config.json"),
		[]byte(`{"abi_dir":""}`),
		0o600,
	))

	cfg, err := Load(dir)
	require.NoError(t, err)
	assert.Equal(t, "abis", cfg.ABIDir)
}

func TestLoad_MalformedConfigFails(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(
		filepath.Join(dir, "config.json"),
		[]byte(`{broken`),
		0o600,
	))

	_, err := Load(dir)
	assert.Error(t, err)
}

func TestSave_RoundTrips(t *testing.T) {
	dir := t.TempDir()
	cfg, err := Load(dir)
	require.NoError(t, err)

	cfg.ABIDir = "custom-abis"
	require.NoError(t, cfg.Save())

	reloaded, err := Load(dir)
	require.NoError(t, err)
	assert.Equal(t, "custom-abis", reloaded.ABIDir)
}

func TestABIDirPath_RelativeJoinsConfigDir(t *testing.T) {
	dir := t.TempDir()
	cfg, err := Load(dir)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "abis"), cfg.ABIDirPath())
}

func TestABIDirPath_AbsolutePreserved(t *testing.T) {
	cfg, err := Load(t.TempDir())
	require.NoError(t, err)

	cfg.ABIDir = "/opt/abis"
	assert.Equal(t, "/opt/abis", cfg.ABIDirPath())
}
