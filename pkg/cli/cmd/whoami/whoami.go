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

// Package whoami implements the whoami command
package whoami

import (
	"github.com/fatih/color"
	"github.com/offcourse/offcourse/pkg/cli/context"
	"github.com/offcourse/offcourse/pkg/cli/infra"
	"github.com/offcourse/offcourse/pkg/cli/output"
	"github.com/offcourse/offcourse/pkg/cli/session"
	"github.com/spf13/cobra"
)

// NewCmd returns a new whoami command
func NewCmd(ctx context.OffCourseCtx) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "whoami",
		Short: "Print the user of the current session",
		RunE:  newRun(ctx),
	}

	return cmd
}

func newRun(ctx context.OffCourseCtx) infra.RunEFunc {
	return func(cmd *cobra.Command, args []string) error {
		h := infra.NewSession(ctx)
		if err := h.Refresh(); err != nil {
			return err
		}

		snap := h.Snapshot()
		if snap.State != session.StateAuthenticated {
			return infra.ErrNotLoggedIn
		}

		output.UserInfo(color.Output, *snap.User)

		return nil
	}
}
