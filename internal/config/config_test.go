package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefault(t *testing.T) {
	cfg := Default()

	assert.Equal(t, 8080, cfg.Server.Port)
	assert.Equal(t, 30*time.Second, cfg.Server.ReadTimeout)
	assert.Equal(t, int64(20<<20), cfg.Upload.MaxSizeBytes)
	assert.True(t, cfg.Security.RateLimit.Enabled)

	require.NoError(t, cfg.validate())
}

func TestValidate_RejectsBadPort(t *testing.T) {
	cfg := Default()
	cfg.Server.Port = -1

	assert.Error(t, cfg.validate())
}

func TestValidate_RejectsZeroUploadLimit(t *testing.T) {
	cfg := Default()
	cfg.Upload.MaxSizeBytes = 0

	assert.Error(t, cfg.validate())
}

func TestValidate_FillsLoggingDefaults(t *testing.T) {
	cfg := Default()
	cfg.Logging.Format = ""
	cfg.Logging.FilePath = ""

	require.NoError(t, cfg.validate())
	assert.Equal(t, "json", cfg.Logging.Format)
	assert.Equal(t, "logs/app.log", cfg.Logging.FilePath)
}

func TestMergeConfigs_EnvTakesPrecedence(t *testing.T) {
	fileCfg := Config{}
	fileCfg.Server.Port = 9000
	fileCfg.Logging.Level = "debug"
	fileCfg.Upload.MaxSizeBytes = 1024

	envCfg := Config{}
	envCfg.Server.Port = 8081

	merged := mergeConfigs(fileCfg, envCfg)

	// Env value wins where set, file value fills the gaps.
	assert.Equal(t, 8081, merged.Server.Port)
	assert.Equal(t, "debug", merged.Logging.Level)
	assert.Equal(t, int64(1024), merged.Upload.MaxSizeBytes)
}

func TestLoad_FromEnvironment(t *testing.T) {
	t.Setenv("CALLPULSE_SERVER_PORT", "9999")
	t.Setenv("CALLPULSE_UPLOAD_MAX_SIZE_BYTES", "1048576")
	t.Setenv("CALLPULSE_SECURITY_RATE_LIMIT_ENABLED", "false")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 9999, cfg.Server.Port)
	assert.Equal(t, int64(1048576), cfg.Upload.MaxSizeBytes)
	assert.False(t, cfg.Security.RateLimit.Enabled)
}
