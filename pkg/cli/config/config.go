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

// Package config reads and writes the offcourse configuration
package config

import (
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
	"github.com/offcourse/offcourse/pkg/cli/consts"
	"github.com/offcourse/offcourse/pkg/cli/context"
	"github.com/offcourse/offcourse/pkg/cli/log"
	"github.com/offcourse/offcourse/pkg/cli/utils"
	"github.com/pkg/errors"
	"gopkg.in/yaml.v2"
)

// Environment variables that override the config file
const (
	EnvMode        = "OFFCOURSE_MODE"
	EnvOrigin      = "OFFCOURSE_ORIGIN"
	EnvBackendHost = "BACKEND_HOST"
	EnvBackendPort = "BACKEND_PORT"
)

// ErrInvalidMode is returned for a mode other than production or development
var ErrInvalidMode = errors.New("invalid mode")

// Backend is the backend section of the config file
type Backend struct {
	Mode   string `yaml:"mode"`
	Host   string `yaml:"host"`
	Port   int    `yaml:"port"`
	Origin string `yaml:"origin,omitempty"`
}

// Config holds offcourse configuration
type Config struct {
	Backend Backend `yaml:"backend"`
}

// Default returns the config written on first run
func Default() Config {
	return Config{
		Backend: Backend{
			Mode: string(context.ModeDevelopment),
			Host: context.DefaultBackendHost,
			Port: context.DefaultBackendPort,
		},
	}
}

// GetPath returns the path to the config file
func GetPath(paths context.Paths) string {
	return filepath.Join(paths.Config, consts.ConfigFilename)
}

// Read reads the config file
func Read(paths context.Paths) (Config, error) {
	var ret Config

	b, err := os.ReadFile(GetPath(paths))
	if err != nil {
		return ret, errors.Wrap(err, "reading config file")
	}

	if err := yaml.Unmarshal(b, &ret); err != nil {
		return ret, errors.Wrap(err, "unmarshalling config")
	}

	return ret, nil
}

// Write writes the config to the config file
func Write(paths context.Paths, cf Config) error {
	b, err := yaml.Marshal(cf)
	if err != nil {
		return errors.Wrap(err, "marshalling config into YAML")
	}

	if err := os.WriteFile(GetPath(paths), b, 0644); err != nil {
		return errors.Wrap(err, "writing the config file")
	}

	return nil
}

// InitFile writes the default config unless a config file already exists
func InitFile(paths context.Paths) error {
	ok, err := utils.FileExists(GetPath(paths))
	if err != nil {
		return errors.Wrap(err, "checking if config exists")
	}
	if ok {
		return nil
	}

	return Write(paths, Default())
}

// ReadEnv collects the override variables from the dotenv file at envPath and
// the process environment. Process variables win over the dotenv file. A
// missing dotenv file is not an error.
func ReadEnv(envPath string) (map[string]string, error) {
	ret := map[string]string{}

	ok, err := utils.FileExists(envPath)
	if err != nil {
		return nil, errors.Wrap(err, "checking the env file")
	}
	if ok {
		fileEnv, err := godotenv.Read(envPath)
		if err != nil {
			return nil, errors.Wrapf(err, "parsing %s", envPath)
		}
		for k, v := range fileEnv {
			ret[k] = v
		}
	}

	for _, key := range []string{EnvMode, EnvOrigin, EnvBackendHost, EnvBackendPort} {
		if v, ok := os.LookupEnv(key); ok && v != "" {
			ret[key] = v
		}
	}

	return ret, nil
}

// ParseMode parses a mode name
func ParseMode(s string) (context.Mode, error) {
	switch context.Mode(strings.ToLower(strings.TrimSpace(s))) {
	case context.ModeProduction:
		return context.ModeProduction, nil
	case context.ModeDevelopment, "":
		return context.ModeDevelopment, nil
	default:
		return "", errors.Wrapf(ErrInvalidMode, "'%s'", s)
	}
}

// Resolve merges the config file with environment overrides into the backend
// definition used for the rest of the process
func Resolve(cf Config, env map[string]string) (context.Backend, error) {
	b := cf.Backend

	if v := env[EnvMode]; v != "" {
		b.Mode = v
	}
	if v := env[EnvOrigin]; v != "" {
		b.Origin = v
	}
	if v := env[EnvBackendHost]; v != "" {
		b.Host = v
	}
	if v := env[EnvBackendPort]; v != "" {
		port, err := strconv.Atoi(v)
		if err != nil || port <= 0 || port > 65535 {
			return context.Backend{}, errors.Errorf("invalid %s '%s'", EnvBackendPort, v)
		}
		b.Port = port
	}

	mode, err := ParseMode(b.Mode)
	if err != nil {
		return context.Backend{}, err
	}

	if b.Host == "" {
		b.Host = context.DefaultBackendHost
	}
	if b.Port == 0 {
		b.Port = context.DefaultBackendPort
	}

	ret := context.Backend{
		Mode:   mode,
		Host:   b.Host,
		Port:   b.Port,
		Origin: strings.TrimRight(b.Origin, "/"),
	}

	log.Debug("backend: %+v\n", ret)

	return ret, nil
}
