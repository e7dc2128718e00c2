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

package courses

import (
	"github.com/fatih/color"
	"github.com/offcourse/offcourse/pkg/cli/client"
	"github.com/offcourse/offcourse/pkg/cli/context"
	"github.com/offcourse/offcourse/pkg/cli/infra"
	"github.com/offcourse/offcourse/pkg/cli/log"
	"github.com/offcourse/offcourse/pkg/cli/output"
	"github.com/spf13/cobra"
)

var lsExample = `
 * List the first page of courses
 offcourse courses ls

 * List every started course tagged go
 offcourse courses ls --all --progress started --tags go`

var (
	allFlag      bool
	pageFlag     int
	perPageFlag  int
	orderByFlag  string
	progressFlag string
	tagsFlag     []string
	titlesFlag   []string
)

func newLsCmd(ctx context.OffCourseCtx) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "ls",
		Aliases: []string{"l"},
		Short:   "List courses",
		Example: lsExample,
		Args:    exactArgs(0),
		RunE:    newLsRun(ctx),
	}

	f := cmd.Flags()
	f.BoolVar(&allFlag, "all", false, "list every page")
	f.IntVar(&pageFlag, "page", 0, "page to list")
	f.IntVar(&perPageFlag, "perPage", 0, "number of courses per page")
	f.StringVar(&orderByFlag, "orderBy", "", "sort order, for instance 'title asc'")
	f.StringVar(&progressFlag, "progress", "", "filter by progress: 'not started', 'started', 'not completed' or 'completed'")
	f.StringSliceVar(&tagsFlag, "tags", nil, "filter by tags")
	f.StringSliceVar(&titlesFlag, "titles", nil, "filter by titles")

	return cmd
}

func newLsRun(ctx context.OffCourseCtx) infra.RunEFunc {
	return func(cmd *cobra.Command, args []string) error {
		progress, err := parseProgress(progressFlag)
		if err != nil {
			return err
		}

		params := &client.CoursesParams{
			PageParams: client.PageParams{Page: pageFlag, PerPage: perPageFlag},
			OrderBy:    orderByFlag,
			Progress:   progress,
			Tags:       tagsFlag,
			Titles:     titlesFlag,
		}

		if allFlag {
			courses, err := client.GetAllCourses(ctx, params)
			if err != nil {
				return infra.CheckSession(ctx, err)
			}

			if len(courses) == 0 {
				log.Info("no courses\n")
				return nil
			}

			output.CourseList(color.Output, courses)
			return nil
		}

		page, err := client.GetCourses(ctx, params)
		if err != nil {
			return infra.CheckSession(ctx, err)
		}

		output.CourseList(color.Output, page.Items)
		output.PageFooter(color.Output, page)

		return nil
	}
}
