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

package main

import (
	"os"
	"strings"

	"github.com/offcourse/offcourse/pkg/cli/client"
	"github.com/offcourse/offcourse/pkg/cli/config"
	"github.com/offcourse/offcourse/pkg/cli/infra"
	"github.com/offcourse/offcourse/pkg/cli/log"
	"github.com/pkg/errors"

	// commands
	"github.com/offcourse/offcourse/pkg/cli/cmd/account"
	"github.com/offcourse/offcourse/pkg/cli/cmd/assets"
	"github.com/offcourse/offcourse/pkg/cli/cmd/courses"
	"github.com/offcourse/offcourse/pkg/cli/cmd/fs"
	"github.com/offcourse/offcourse/pkg/cli/cmd/login"
	"github.com/offcourse/offcourse/pkg/cli/cmd/logout"
	"github.com/offcourse/offcourse/pkg/cli/cmd/logs"
	"github.com/offcourse/offcourse/pkg/cli/cmd/root"
	"github.com/offcourse/offcourse/pkg/cli/cmd/scans"
	"github.com/offcourse/offcourse/pkg/cli/cmd/tags"
	"github.com/offcourse/offcourse/pkg/cli/cmd/version"
	"github.com/offcourse/offcourse/pkg/cli/cmd/whoami"
)

// versionTag is populated during link time
var versionTag = "master"

// parseFlag extracts the value of a persistent flag from command line
// arguments regardless of where it appears (before or after subcommand).
// Returns empty string if not found.
func parseFlag(args []string, name string) string {
	long := "--" + name

	for i, arg := range args {
		if arg == "--" {
			break
		}
		if strings.HasPrefix(arg, long+"=") {
			return strings.TrimPrefix(arg, long+"=")
		}
		if arg == long && i+1 < len(args) {
			return args[i+1]
		}
	}

	return ""
}

func main() {
	// The context is built before cobra parses the command line, so the
	// persistent flags are picked out by hand
	args := os.Args[1:]
	opts := infra.Options{
		DBPath: parseFlag(args, root.FlagDBPath),
		Mode:   parseFlag(args, root.FlagMode),
		Origin: parseFlag(args, root.FlagOrigin),
	}

	ctx, err := infra.Init(versionTag, opts)
	if err != nil {
		log.Errorf("%s\n", errors.Wrap(err, "initializing context").Error())
		os.Exit(1)
	}
	defer ctx.DB.Close()

	root.Register(login.NewCmd(*ctx))
	root.Register(logout.NewCmd(*ctx))
	root.Register(whoami.NewCmd(*ctx))
	root.Register(account.NewCmd(*ctx))
	root.Register(fs.NewCmd(*ctx))
	root.Register(courses.NewCmd(*ctx))
	root.Register(assets.NewCmd(*ctx))
	root.Register(scans.NewCmd(*ctx))
	root.Register(tags.NewCmd(*ctx))
	root.Register(logs.NewCmd(*ctx))
	root.Register(version.NewCmd(*ctx))

	if err := root.Execute(); err != nil {
		log.Errorf("%s\n", err.Error())
		if client.IsTransport(err) {
			log.Plainf("check the backend settings in %s\n", config.GetPath(ctx.Paths))
		}
		ctx.DB.Close()
		os.Exit(1)
	}
}
