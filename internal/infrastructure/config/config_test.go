package config

import (
	"os"
	"runtime"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setRequired(t *testing.T) {
	t.Helper()
	t.Setenv("S3_ACCESS_KEY_ID", "key")
	t.Setenv("S3_SECRET_ACCESS_KEY", "secret")
}

func TestLoad(t *testing.T) {
	t.Run("defaults", func(t *testing.T) {
		setRequired(t)

		cfg, err := Load()

		require.NoError(t, err)
		assert.Equal(t, "scaled", cfg.Scaler.Prefix)
		assert.Equal(t, []int{200, 400, 800}, cfg.Scaler.Targets)
		assert.Equal(t, 90, cfg.Scaler.JPEGQuality)
		assert.Equal(t, "scaler:jobs", cfg.Stream.Name)
		assert.Equal(t, 5*time.Second, cfg.Server.ReadHeaderTimeout)
		assert.False(t, cfg.Database.Enabled)
		assert.False(t, cfg.Stream.AsyncEvents)
	})

	t.Run("overrides targets", func(t *testing.T) {
		setRequired(t)
		t.Setenv("SCALER_TARGETS", "64,1024")
		t.Setenv("SCALER_PREFIX", "thumb")

		cfg, err := Load()

		require.NoError(t, err)
		assert.Equal(t, []int{64, 1024}, cfg.Scaler.Targets)
		assert.Equal(t, "thumb", cfg.Scaler.Prefix)
	})

	t.Run("missing credentials", func(t *testing.T) {
		setRequired(t)
		require.NoError(t, os.Unsetenv("S3_ACCESS_KEY_ID"))
		require.NoError(t, os.Unsetenv("S3_SECRET_ACCESS_KEY"))

		_, err := Load()

		assert.Error(t, err)
	})

	t.Run("rejects non-positive target", func(t *testing.T) {
		setRequired(t)
		t.Setenv("SCALER_TARGETS", "200,0")

		_, err := Load()

		assert.ErrorContains(t, err, "scale target must be positive")
	})
}

func TestScalerConfig_RejectsDuplicateTargets(t *testing.T) {
	setRequired(t)
	t.Setenv("SCALER_TARGETS", "200,400,200")

	_, err := Load()

	assert.ErrorContains(t, err, "scale target 200 is listed twice")
}

func TestScalerConfig_WorkerCount(t *testing.T) {
	assert.Equal(t, 3, ScalerConfig{Workers: 3}.WorkerCount())
	assert.Equal(t, runtime.NumCPU(), ScalerConfig{}.WorkerCount())
}

func TestScalerConfig_Validate(t *testing.T) {
	assert.NoError(t, ScalerConfig{Prefix: "scaled", Targets: []int{1}}.Validate())
	assert.Error(t, ScalerConfig{Targets: []int{200}}.Validate())
	assert.Error(t, ScalerConfig{Prefix: "scaled"}.Validate())
}
