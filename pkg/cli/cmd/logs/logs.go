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

// Package logs implements the commands reading the server logs
package logs

import (
	"strings"

	"github.com/fatih/color"
	"github.com/offcourse/offcourse/pkg/cli/client"
	"github.com/offcourse/offcourse/pkg/cli/context"
	"github.com/offcourse/offcourse/pkg/cli/infra"
	"github.com/offcourse/offcourse/pkg/cli/log"
	"github.com/offcourse/offcourse/pkg/cli/models"
	"github.com/offcourse/offcourse/pkg/cli/output"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
)

var example = `
 * List recent errors and warnings
 offcourse logs ls --levels error,warn

 * List the log types known to the server
 offcourse logs types`

var (
	levelsFlag   []string
	typesFlag    []string
	messagesFlag []string
	pageFlag     int
	perPageFlag  int
)

// NewCmd returns a new logs command
func NewCmd(ctx context.OffCourseCtx) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "logs",
		Short:   "Read the server logs",
		Example: example,
	}

	ls := &cobra.Command{
		Use:   "ls",
		Short: "List log entries",
		Args:  cobra.NoArgs,
		RunE:  newLsRun(ctx),
	}
	f := ls.Flags()
	f.StringSliceVar(&levelsFlag, "levels", nil, "filter by levels: debug, info, warn or error")
	f.StringSliceVar(&typesFlag, "types", nil, "filter by log types")
	f.StringSliceVar(&messagesFlag, "messages", nil, "filter by messages")
	f.IntVar(&pageFlag, "page", 0, "page to list")
	f.IntVar(&perPageFlag, "perPage", 0, "number of entries per page")

	types := &cobra.Command{
		Use:   "types",
		Short: "List the log types",
		Args:  cobra.NoArgs,
		RunE:  newTypesRun(ctx),
	}

	cmd.AddCommand(ls, types)

	return cmd
}

func parseLevels(names []string) ([]models.LogLevel, error) {
	ret := make([]models.LogLevel, 0, len(names))

	for _, name := range names {
		level, ok := models.ParseLogLevel(strings.ToLower(strings.TrimSpace(name)))
		if !ok {
			return nil, errors.Errorf("invalid level '%s'", name)
		}

		ret = append(ret, level)
	}

	return ret, nil
}

func newLsRun(ctx context.OffCourseCtx) infra.RunEFunc {
	return func(cmd *cobra.Command, args []string) error {
		levels, err := parseLevels(levelsFlag)
		if err != nil {
			return err
		}

		page, err := client.GetLogs(ctx, &client.LogsParams{
			PageParams: client.PageParams{Page: pageFlag, PerPage: perPageFlag},
			Levels:     levels,
			Types:      typesFlag,
			Messages:   messagesFlag,
		})
		if err != nil {
			return infra.CheckSession(ctx, err)
		}

		output.LogList(color.Output, page.Items)
		output.PageFooter(color.Output, page)

		return nil
	}
}

func newTypesRun(ctx context.OffCourseCtx) infra.RunEFunc {
	return func(cmd *cobra.Command, args []string) error {
		types, err := client.GetLogTypes(ctx)
		if err != nil {
			return infra.CheckSession(ctx, err)
		}

		for _, t := range types {
			log.Plainf("%s\n", t)
		}

		return nil
	}
}
