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

// Package account implements commands managing the account of the current user
package account

import (
	"github.com/offcourse/offcourse/pkg/cli/context"
	"github.com/offcourse/offcourse/pkg/cli/infra"
	"github.com/offcourse/offcourse/pkg/cli/log"
	"github.com/offcourse/offcourse/pkg/cli/ui"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
)

var yesFlag bool

// NewCmd returns a new account command
func NewCmd(ctx context.OffCourseCtx) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "account",
		Short: "Manage your account",
	}

	del := &cobra.Command{
		Use:     "delete",
		Short:   "Delete your account",
		Example: "\n  offcourse account delete",
		RunE:    newDeleteRun(ctx),
	}
	del.Flags().BoolVarP(&yesFlag, "yes", "y", false, "skip the confirmation")

	cmd.AddCommand(del)

	return cmd
}

func newDeleteRun(ctx context.OffCourseCtx) infra.RunEFunc {
	return func(cmd *cobra.Command, args []string) error {
		if !yesFlag {
			ok, err := ui.Confirm("delete your account? this cannot be undone", false)
			if err != nil {
				return errors.Wrap(err, "getting confirmation")
			}
			if !ok {
				log.Warnf("aborted by user\n")
				return nil
			}
		}

		if err := infra.NewSession(ctx).DeleteAccount(); err != nil {
			return infra.CheckSession(ctx, err)
		}

		log.Success("account deleted\n")

		return nil
	}
}
