/*
 * Copyright 2025 tomoncle.
 * Licensed under the Apache License, Version 2.0 (the "License");
 * you may not use this file except in compliance with the License.
 * You may obtain a copy of the License at
 *
 *     http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing, software
 * distributed under the License is distributed on an "AS IS" BASIS,
 * WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 * See the License for the specific language governing permissions and
 * limitations under the License.
 */

package database

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	return path
}

func TestLoadConfig(t *testing.T) {
	path := writeConfig(t, `
connection_config:
  type: postgres
  host: db.internal
  port: 5432
  username: catalog
  dbname: menagerie
  max_open_conns: 20
  slow_query_time: 500ms
`)

	cfg, err := LoadConfig(path)
	require.NoError(t, err)

	c := cfg.ConnectionConfig
	assert.Equal(t, TypePostgres, c.Type)
	assert.Equal(t, "db.internal", c.Host)
	assert.Equal(t, 5432, c.Port)
	assert.Equal(t, "menagerie", c.DBName)
	assert.Equal(t, 20, c.MaxOpenConns)
	assert.Equal(t, 500*time.Millisecond, c.SlowQueryTime)
	// untouched keys keep their defaults
	assert.Equal(t, 10, c.MaxIdleConns)
	assert.Equal(t, time.Hour, c.ConnMaxLifetime)
}

func TestLoadConfigEnvOverride(t *testing.T) {
	path := writeConfig(t, `
connection_config:
  type: mysql
  host: localhost
  port: 3306
`)
	t.Setenv("DB_TYPE", "PGX")
	t.Setenv("DB_HOST", "10.0.0.5")
	t.Setenv("DB_PORT", "6432")
	t.Setenv("DB_PASSWORD", "s3cret")
	t.Setenv("DB_MAX_IDLE_CONNS", "not-a-number")
	t.Setenv("DB_CONN_MAX_LIFETIME", "90")
	t.Setenv("DB_ENABLE_QUERY_LOG", "yes")

	cfg, err := LoadConfig(path)
	require.NoError(t, err)

	c := cfg.ConnectionConfig
	assert.Equal(t, TypePgx, c.Type)
	assert.Equal(t, "10.0.0.5", c.Host)
	assert.Equal(t, 6432, c.Port)
	assert.Equal(t, "s3cret", c.Password)
	assert.Equal(t, 10, c.MaxIdleConns)
	assert.Equal(t, 90*time.Second, c.ConnMaxLifetime)
	assert.True(t, c.EnableQueryLog)
}

func TestLoadConfigEnvOnly(t *testing.T) {
	t.Setenv("DB_TYPE", "sqlite")
	t.Setenv("DB_NAME", "catalog")

	cfg, err := LoadConfig("")
	require.NoError(t, err)
	assert.Equal(t, TypeSQLite, cfg.ConnectionConfig.Type)
	assert.Equal(t, "catalog", cfg.ConnectionConfig.DBName)
}

func TestLoadConfigErrors(t *testing.T) {
	_, err := LoadConfig(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.ErrorContains(t, err, "failed to read config file")

	_, err = LoadConfig(writeConfig(t, "connection_config: [oops"))
	assert.ErrorContains(t, err, "failed to parse config file")

	_, err = LoadConfig(writeConfig(t, "connection_config:\n  type: oracle\n"))
	assert.ErrorContains(t, err, `unsupported database type: "oracle"`)
}

func TestConnectionConfigValidate(t *testing.T) {
	for _, typ := range []string{TypeMySQL, TypePostgres, TypePgx, TypeSQLite} {
		assert.NoError(t, (&ConnectionConfig{Type: typ}).Validate(), typ)
	}
	assert.Error(t, (&ConnectionConfig{}).Validate())
}
