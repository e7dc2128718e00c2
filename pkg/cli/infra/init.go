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

// Package infra provides operations and definitions for the
// local infrastructure for offcourse
package infra

import (
	"path/filepath"

	"github.com/offcourse/offcourse/pkg/cli/client"
	"github.com/offcourse/offcourse/pkg/cli/config"
	"github.com/offcourse/offcourse/pkg/cli/consts"
	"github.com/offcourse/offcourse/pkg/cli/context"
	"github.com/offcourse/offcourse/pkg/cli/database"
	"github.com/offcourse/offcourse/pkg/cli/log"
	"github.com/offcourse/offcourse/pkg/cli/utils"
	"github.com/offcourse/offcourse/pkg/clock"
	"github.com/offcourse/offcourse/pkg/dirs"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
)

// RunEFunc is a function type of offcourse commands
type RunEFunc func(*cobra.Command, []string) error

// Options are the values given on the command line that take precedence over
// the config file and the environment
type Options struct {
	DBPath string
	Mode   string
	Origin string
	// EnvPath is the dotenv file to read. Defaults to the one in the working directory.
	EnvPath string
}

func getDBPath(paths context.Paths, customPath string) string {
	if customPath != "" {
		return customPath
	}

	return filepath.Join(paths.Data, consts.DBFileName)
}

// initFiles creates, if necessary, the offcourse directories and the config file
func initFiles(paths context.Paths) error {
	if err := utils.EnsureDir(paths.Config); err != nil {
		return errors.Wrap(err, "creating the config dir")
	}
	if err := utils.EnsureDir(paths.Data); err != nil {
		return errors.Wrap(err, "creating the data dir")
	}
	if err := config.InitFile(paths); err != nil {
		return errors.Wrap(err, "generating the config file")
	}

	return nil
}

// resolveBackend merges the config file, the environment and the command line
// options, in increasing order of precedence
func resolveBackend(paths context.Paths, opts Options) (context.Backend, error) {
	cf, err := config.Read(paths)
	if err != nil {
		return context.Backend{}, errors.Wrap(err, "reading config")
	}

	envPath := opts.EnvPath
	if envPath == "" {
		envPath = consts.EnvFilename
	}

	env, err := config.ReadEnv(envPath)
	if err != nil {
		return context.Backend{}, errors.Wrap(err, "reading the environment")
	}

	if opts.Mode != "" {
		env[config.EnvMode] = opts.Mode
	}
	if opts.Origin != "" {
		env[config.EnvOrigin] = opts.Origin
	}

	return config.Resolve(cf, env)
}

// loadSessionToken returns the stored access token, or an empty string when
// the user has not logged in
func loadSessionToken(db *database.DB) (string, error) {
	var token string

	err := database.GetSystem(db, consts.SystemSessionToken, &token)
	if errors.Is(err, database.ErrNotFound) {
		return "", nil
	} else if err != nil {
		return "", errors.Wrap(err, "finding the session token")
	}

	return token, nil
}

// Init initializes the offcourse environment and returns a new context
func Init(versionTag string, opts Options) (*context.OffCourseCtx, error) {
	paths := context.Paths{
		Config: dirs.AppConfig(),
		Data:   dirs.AppData(),
	}

	if err := initFiles(paths); err != nil {
		return nil, errors.Wrap(err, "initializing files")
	}

	backend, err := resolveBackend(paths, opts)
	if err != nil {
		return nil, errors.Wrap(err, "resolving the backend")
	}

	db, err := database.Open(getDBPath(paths, opts.DBPath))
	if err != nil {
		return nil, errors.Wrap(err, "connecting to db")
	}

	token, err := loadSessionToken(db)
	if err != nil {
		db.Close()
		return nil, err
	}

	ctx := context.OffCourseCtx{
		Paths:        paths,
		Backend:      backend,
		Version:      versionTag,
		DB:           db,
		SessionToken: token,
		Clock:        clock.New(),
		HTTPClient:   client.NewRateLimitedHTTPClient(),
	}

	log.Debug("context: %+v\n", context.Redact(ctx))

	return &ctx, nil
}
