package config

import (
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestApplyDefaults_FillsMissingSections(t *testing.T) {
	cfg := &Config{}
	cfg.applyDefaults()

	require.NotNil(t, cfg.Auth)
	assert.Equal(t, defaultMaxRequestBodySize, cfg.HTTP.MaxRequestBodySize)
	assert.Equal(t, defaultPageSize, cfg.Pagination.PageSize)
	assert.Equal(t, defaultMaxFiles, cfg.Upload.MaxFiles)
	assert.Equal(t, "uploads", cfg.Upload.StaticPrefix)
	assert.Equal(t, os.TempDir(), cfg.Upload.StagingDir)
	assert.Equal(t, 2*time.Minute, cfg.Transcription.Timeout)
	assert.Equal(t, 14*24*time.Hour, cfg.Auth.SessionTTL)
	assert.NotEmpty(t, cfg.Storage.BucketURL)
	assert.Empty(t, cfg.Transcription.Command)
}

func TestApplyDefaults_KeepsConfiguredValues(t *testing.T) {
	cfg := &Config{
		Pagination:    &PaginationConfig{PageSize: 3},
		Upload:        &UploadConfig{MaxFiles: 2, StaticPrefix: "media", StagingDir: "/srv/staging"},
		Transcription: &TranscriptionConfig{Command: "whisper", Timeout: 10 * time.Second},
		Auth:          &AuthConfig{PrivilegedEmail: "root@example.com", AccessTokenTTL: time.Hour},
	}
	cfg.applyDefaults()

	assert.Equal(t, 3, cfg.Pagination.PageSize)
	assert.Equal(t, 2, cfg.Upload.MaxFiles)
	assert.Equal(t, "media", cfg.Upload.StaticPrefix)
	assert.Equal(t, "/srv/staging", cfg.Upload.StagingDir)
	assert.Equal(t, 10*time.Second, cfg.Transcription.Timeout)
	assert.Equal(t, time.Hour, cfg.Auth.AccessTokenTTL)
	assert.Equal(t, "root@example.com", cfg.Auth.PrivilegedEmail)
}

func TestLoadWithEnv_EnvOverridesYAML(t *testing.T) {
	dir := t.TempDir()
	yamlBody := []byte("auth:\n  privilegedEmail: admin@example.com\npagination:\n  pageSize: 5\n")
	require.NoError(t, os.WriteFile(dir+"/test.yaml", yamlBody, 0o600))

	t.Chdir(dir)
	t.Setenv("AUTH_PRIVILEGEDEMAIL", "boss@example.com")

	cfg, err := LoadWithEnv[Config]("test")
	require.NoError(t, err)
	require.NotNil(t, cfg.Auth)
	assert.Equal(t, "boss@example.com", cfg.Auth.PrivilegedEmail)
	assert.Equal(t, 5, cfg.Pagination.PageSize)
}
