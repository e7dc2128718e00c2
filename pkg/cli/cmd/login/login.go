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

// Package login implements the login command
package login

import (
	"strings"

	"github.com/offcourse/offcourse/pkg/cli/client"
	"github.com/offcourse/offcourse/pkg/cli/consts"
	"github.com/offcourse/offcourse/pkg/cli/context"
	"github.com/offcourse/offcourse/pkg/cli/database"
	"github.com/offcourse/offcourse/pkg/cli/infra"
	"github.com/offcourse/offcourse/pkg/cli/log"
	"github.com/offcourse/offcourse/pkg/cli/ui"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
)

var example = `
  offcourse login
  offcourse login --username alice`

var usernameFlag string

// NewCmd returns a new login command
func NewCmd(ctx context.OffCourseCtx) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "login",
		Short:   "Login to the server",
		Example: example,
		RunE:    newRun(ctx),
	}

	f := cmd.Flags()
	f.StringVarP(&usernameFlag, "username", "u", "", "username (prompted when omitted)")

	return cmd
}

// Do logs in with the given credentials and stores the session token
func Do(ctx context.OffCourseCtx, username, password string) error {
	resp, err := client.Login(ctx, username, password)
	if err != nil {
		return err
	}

	if err := database.UpsertSystem(ctx.DB, consts.SystemSessionToken, resp.Token); err != nil {
		return errors.Wrap(err, "saving the session token")
	}
	if err := database.UpsertSystem(ctx.DB, consts.SystemSessionUser, username); err != nil {
		return errors.Wrap(err, "saving the session user")
	}

	return nil
}

func getCredentials() (string, string, error) {
	username := usernameFlag
	if username == "" {
		if err := ui.PromptInput("username:", &username); err != nil {
			return "", "", errors.Wrap(err, "getting username input")
		}
	}

	username = strings.TrimSpace(username)
	if username == "" {
		return "", "", errors.New("empty username")
	}

	var password string
	if err := ui.PromptPassword("password:", &password); err != nil {
		return "", "", errors.Wrap(err, "getting password input")
	}
	if password == "" {
		return "", "", errors.New("empty password")
	}

	return username, password, nil
}

func newRun(ctx context.OffCourseCtx) infra.RunEFunc {
	return func(cmd *cobra.Command, args []string) error {
		log.Debug("logging in through %s\n", client.BackendURL(ctx.Backend, client.AuthAPI))

		username, password, err := getCredentials()
		if err != nil {
			return err
		}

		if err := Do(ctx, username, password); err != nil {
			return errors.Wrap(err, "logging in")
		}

		log.Successf("logged in as %s\n", username)

		return nil
	}
}
