/* Copyright 2025 Off Course Authors
 *
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

package infra

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/offcourse/offcourse/pkg/assert"
	"github.com/offcourse/offcourse/pkg/cli/config"
	"github.com/offcourse/offcourse/pkg/cli/consts"
	"github.com/offcourse/offcourse/pkg/cli/context"
	"github.com/offcourse/offcourse/pkg/cli/database"
	"github.com/offcourse/offcourse/pkg/dirs"
	"github.com/pkg/errors"
)

func setupEnv(t *testing.T) string {
	tmpDir := t.TempDir()

	t.Setenv("XDG_CONFIG_HOME", filepath.Join(tmpDir, "config"))
	t.Setenv("XDG_DATA_HOME", filepath.Join(tmpDir, "data"))
	for _, key := range []string{config.EnvMode, config.EnvOrigin, config.EnvBackendHost, config.EnvBackendPort} {
		t.Setenv(key, "")
	}
	dirs.Reload()
	t.Cleanup(dirs.Reload)

	return tmpDir
}

func TestInit(t *testing.T) {
	tmpDir := setupEnv(t)

	ctx, err := Init("test-version", Options{EnvPath: filepath.Join(tmpDir, "missing.env")})
	if err != nil {
		t.Fatal(errors.Wrap(err, "initializing"))
	}
	defer ctx.DB.Close()

	assert.Equal(t, ctx.Version, "test-version", "version mismatch")
	assert.Equal(t, ctx.Backend.Mode, context.ModeDevelopment, "mode mismatch")
	assert.Equal(t, ctx.Backend.Host, context.DefaultBackendHost, "host mismatch")
	assert.Equal(t, ctx.Backend.Port, context.DefaultBackendPort, "port mismatch")
	assert.Equal(t, ctx.SessionToken, "", "token should be empty before login")
	assert.Equal(t, ctx.DB.Filepath, filepath.Join(tmpDir, "data", dirs.AppDirName, consts.DBFileName), "db path mismatch")

	if _, err := os.Stat(filepath.Join(tmpDir, "config", dirs.AppDirName, consts.ConfigFilename)); err != nil {
		t.Fatal(errors.Wrap(err, "config file should have been written"))
	}
}

func TestInit_precedence(t *testing.T) {
	tmpDir := setupEnv(t)

	envPath := filepath.Join(tmpDir, ".env")
	env := "OFFCOURSE_MODE=production\nOFFCOURSE_ORIGIN=http://env.example\nBACKEND_PORT=9999\n"
	if err := os.WriteFile(envPath, []byte(env), 0644); err != nil {
		t.Fatal(errors.Wrap(err, "writing env file"))
	}

	t.Run("env file", func(t *testing.T) {
		ctx, err := Init("v", Options{EnvPath: envPath, DBPath: filepath.Join(tmpDir, "a.db")})
		if err != nil {
			t.Fatal(errors.Wrap(err, "initializing"))
		}
		defer ctx.DB.Close()

		assert.Equal(t, ctx.Backend.Mode, context.ModeProduction, "mode mismatch")
		assert.Equal(t, ctx.Backend.Origin, "http://env.example", "origin mismatch")
		assert.Equal(t, ctx.Backend.Port, 9999, "port mismatch")
	})

	t.Run("flags", func(t *testing.T) {
		ctx, err := Init("v", Options{EnvPath: envPath, DBPath: filepath.Join(tmpDir, "b.db"), Mode: "development", Origin: "http://flag.example/"})
		if err != nil {
			t.Fatal(errors.Wrap(err, "initializing"))
		}
		defer ctx.DB.Close()

		assert.Equal(t, ctx.Backend.Mode, context.ModeDevelopment, "mode mismatch")
		assert.Equal(t, ctx.Backend.Origin, "http://flag.example", "origin mismatch")
	})

	t.Run("invalid mode", func(t *testing.T) {
		_, err := Init("v", Options{EnvPath: envPath, DBPath: filepath.Join(tmpDir, "c.db"), Mode: "staging"})
		if !errors.Is(err, config.ErrInvalidMode) {
			t.Fatalf("expected an invalid mode error, got %v", err)
		}
	})
}

func TestInit_sessionToken(t *testing.T) {
	tmpDir := setupEnv(t)
	dbPath := filepath.Join(tmpDir, "offcourse.db")

	db, err := database.Open(dbPath)
	if err != nil {
		t.Fatal(errors.Wrap(err, "opening db"))
	}
	if err := database.UpsertSystem(db, consts.SystemSessionToken, "tok"); err != nil {
		t.Fatal(err)
	}
	db.Close()

	ctx, err := Init("v", Options{DBPath: dbPath, EnvPath: filepath.Join(tmpDir, "missing.env")})
	if err != nil {
		t.Fatal(errors.Wrap(err, "initializing"))
	}
	defer ctx.DB.Close()

	assert.Equal(t, ctx.SessionToken, "tok", "token mismatch")
}
