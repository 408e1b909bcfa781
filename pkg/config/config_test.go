// ReelMatch Core
// Copyright (c) 2026 The ReelMatch Project Contributors.
// SPDX-License-Identifier: GPL-3.0-or-later
//
// This file is part of ReelMatch Core.
//
// ReelMatch Core is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// ReelMatch Core is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with ReelMatch Core.  If not, see <http://www.gnu.org/licenses/>.

package config

import (
	"fmt"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/reelmatch/reelmatch-core/pkg/api/validation"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, body string) *Instance {
	t.Helper()

	cfgPath := filepath.Join(t.TempDir(), CfgFile)
	data := fmt.Sprintf("config_schema = %d\n%s", SchemaVersion, body)
	require.NoError(t, os.WriteFile(cfgPath, []byte(data), 0o600))

	return &Instance{
		cfgPath:  cfgPath,
		vals:     BaseDefaults,
		defaults: BaseDefaults,
	}
}

func TestNewConfig_WritesDefaults(t *testing.T) {
	t.Parallel()

	tempDir := t.TempDir()
	cfg, err := NewConfig(tempDir, BaseDefaults)
	require.NoError(t, err)

	assert.FileExists(t, filepath.Join(tempDir, CfgFile))
	assert.Equal(t, filepath.Join(tempDir, CfgFile), cfg.Path())
	assert.Equal(t, filepath.Join(tempDir, DefaultArtifactsDir), cfg.ArtifactsDir())
	assert.Empty(t, cfg.CatalogPath())
	assert.Empty(t, cfg.MatrixPath())
	assert.Equal(t, DefaultTopN, cfg.DefaultTopN())
	assert.Equal(t, DefaultMaxTopN, cfg.MaxTopN())
	assert.True(t, cfg.TokenIndex())
	assert.Equal(t, DefaultEvaluationK, cfg.EvaluationK())
	assert.Zero(t, cfg.EvaluationWorkers())
	assert.Equal(t, ":5000", cfg.APIListen())
	assert.Equal(t, DefaultRequestTimeout, cfg.RequestTimeout())
	assert.False(t, cfg.ErrorReporting())
	assert.False(t, cfg.DebugLogging())
	assert.Equal(t, tempDir, cfg.LogDir())

	perSecond, burst := cfg.RateLimit()
	assert.InDelta(t, DefaultRequestsPerSecond, perSecond, 1e-9)
	assert.Equal(t, DefaultRequestBurst, burst)
}

func TestNewConfig_ReloadsSavedFile(t *testing.T) {
	t.Parallel()

	tempDir := t.TempDir()
	cfg, err := NewConfig(tempDir, BaseDefaults)
	require.NoError(t, err)

	cfg.SetAPIPort(8088)
	cfg.SetDefaultTopN(7)
	cfg.SetTokenIndex(false)
	require.NoError(t, cfg.Save())

	again, err := NewConfig(tempDir, BaseDefaults)
	require.NoError(t, err)
	assert.Equal(t, 8088, again.APIPort())
	assert.Equal(t, 7, again.DefaultTopN())
	assert.False(t, again.TokenIndex())
}

func TestLoad_OverridesDefaults(t *testing.T) {
	t.Parallel()

	cfg := writeConfig(t, `
debug_logging = true
log_dir = "/var/log/reelmatch"

[artifacts]
dir = "/srv/models"
catalog = "data/movies.csv"
matrix = "/srv/models/run-7/cosine_similarity.npy"

[recommend]
default_top_n = 5
max_top_n = 20

[resolver]
token_index = false

[evaluation]
k = 15
workers = 3

[service]
api_listen = "127.0.0.1:9000"
request_timeout = "5s"
allowed_origins = ["https://reelmatch.example.org"]

[service.rate_limit]
requests_per_second = 2.5
burst = 4

[telemetry]
error_reporting = true
dsn = "https://key@sentry.example.org/1"
`)
	require.NoError(t, cfg.Load())

	assert.True(t, cfg.DebugLogging())
	assert.Equal(t, "/var/log/reelmatch", cfg.LogDir())
	assert.Equal(t, "/srv/models", cfg.ArtifactsDir())
	assert.Equal(t, filepath.Join(filepath.Dir(cfg.Path()), "data", "movies.csv"), cfg.CatalogPath())
	assert.Equal(t, "/srv/models/run-7/cosine_similarity.npy", cfg.MatrixPath())
	assert.Equal(t, 5, cfg.DefaultTopN())
	assert.Equal(t, 20, cfg.MaxTopN())
	assert.False(t, cfg.TokenIndex())
	assert.Equal(t, 15, cfg.EvaluationK())
	assert.Equal(t, 3, cfg.EvaluationWorkers())
	assert.Equal(t, "127.0.0.1:9000", cfg.APIListen())
	assert.Equal(t, 5*time.Second, cfg.RequestTimeout())
	assert.Equal(t, []string{"https://reelmatch.example.org"}, cfg.AllowedOrigins())
	assert.True(t, cfg.ErrorReporting())
	assert.Equal(t, "https://key@sentry.example.org/1", cfg.TelemetryDSN())

	perSecond, burst := cfg.RateLimit()
	assert.InDelta(t, 2.5, perSecond, 1e-9)
	assert.Equal(t, 4, burst)
}

func TestLoad_PreservesDefaultsForMissingFields(t *testing.T) {
	t.Parallel()

	cfg := writeConfig(t, "")
	require.NoError(t, cfg.Load())

	assert.Equal(t, DefaultArtifactsDir, cfg.vals.Artifacts.Dir)
	assert.Nil(t, cfg.vals.Service.APIPort, "Service.APIPort should be nil (getter returns default)")
	assert.Nil(t, cfg.vals.Resolver.TokenIndex)
	assert.True(t, cfg.TokenIndex())
}

func TestLoad_SchemaMismatch(t *testing.T) {
	t.Parallel()

	cfgPath := filepath.Join(t.TempDir(), CfgFile)
	require.NoError(t, os.WriteFile(cfgPath, []byte("config_schema = 99\n"), 0o600))

	cfg := &Instance{cfgPath: cfgPath, defaults: BaseDefaults}
	require.ErrorIs(t, cfg.Load(), ErrSchemaMismatch)
}

func TestLoad_InvalidValues(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		body    string
		message string
	}{
		{
			name:    "top n below one",
			body:    "[recommend]\ndefault_top_n = 0\n",
			message: "must be greater than or equal to 1",
		},
		{
			name:    "bad listen address",
			body:    "[service]\napi_listen = \"localhost\"\n",
			message: "must be a host:port address",
		},
		{
			name:    "port out of range",
			body:    "[service]\napi_port = 70000\n",
			message: "must be less than or equal to 65535",
		},
		{
			name:    "negative workers",
			body:    "[evaluation]\nworkers = -1\n",
			message: "must be greater than or equal to 0",
		},
		{
			name:    "zero rate",
			body:    "[service.rate_limit]\nrequests_per_second = 0.0\n",
			message: "must be greater than 0",
		},
		{
			name:    "negative max top n",
			body:    "[recommend]\nmax_top_n = -1\n",
			message: "must be greater than or equal to 0",
		},
		{
			name:    "bad request timeout",
			body:    "[service]\nrequest_timeout = \"soon\"\n",
			message: "must be a valid duration",
		},
		{
			name:    "dsn not a url",
			body:    "[telemetry]\ndsn = \"not a url\"\n",
			message: "must be a valid URL",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			cfg := writeConfig(t, tt.body)
			err := cfg.Load()
			require.Error(t, err)
			var valErr *validation.Error
			require.ErrorAs(t, err, &valErr)
			assert.Contains(t, err.Error(), tt.message)
		})
	}
}

func TestLoad_MalformedTOML(t *testing.T) {
	t.Parallel()

	cfg := writeConfig(t, "[recommend\n")
	err := cfg.Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to unmarshal config")
}

func TestLoad_NoPath(t *testing.T) {
	t.Parallel()

	cfg := &Instance{}
	require.Error(t, cfg.Load())
	require.Error(t, cfg.Save())
}

func TestErrorReportingNeedsDSN(t *testing.T) {
	t.Parallel()

	cfg := &Instance{}
	cfg.SetErrorReporting(true)
	assert.False(t, cfg.ErrorReporting())

	cfg.vals.Telemetry.DSN = "https://key@sentry.example.org/1"
	assert.True(t, cfg.ErrorReporting())
}

func TestSetArtifactsDir(t *testing.T) {
	t.Parallel()

	cfg := &Instance{}
	assert.Equal(t, DefaultArtifactsDir, cfg.ArtifactsDir())

	cfg.SetArtifactsDir("/opt/reelmatch/artifacts")
	assert.Equal(t, "/opt/reelmatch/artifacts", cfg.ArtifactsDir())
}

func TestEnvironment(t *testing.T) {
	t.Setenv(DeploymentEnv, "")
	assert.Equal(t, DefaultEnvironment, Environment())

	t.Setenv(DeploymentEnv, "staging")
	assert.Equal(t, "staging", Environment())
}
