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

// Package assets implements the commands listing assets and recording progress
package assets

import (
	"github.com/fatih/color"
	"github.com/offcourse/offcourse/pkg/cli/client"
	"github.com/offcourse/offcourse/pkg/cli/context"
	"github.com/offcourse/offcourse/pkg/cli/infra"
	"github.com/offcourse/offcourse/pkg/cli/log"
	"github.com/offcourse/offcourse/pkg/cli/models"
	"github.com/offcourse/offcourse/pkg/cli/output"
	"github.com/offcourse/offcourse/pkg/cli/validate"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
)

var example = `
 * List the assets of a course with their attachments
 offcourse assets ls 8d2c1e --all --expand

 * Record the playback position of a video
 offcourse assets progress 8d2c1e 3f9a20 --pos 120

 * Mark an asset as completed
 offcourse assets progress 8d2c1e 3f9a20 --completed`

var (
	allFlag       bool
	expandFlag    bool
	pageFlag      int
	perPageFlag   int
	orderByFlag   string
	posFlag       int
	completedFlag bool
)

// NewCmd returns a new assets command
func NewCmd(ctx context.OffCourseCtx) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "assets",
		Short:   "List course assets and record progress",
		Example: example,
	}

	ls := &cobra.Command{
		Use:   "ls <courseId>",
		Short: "List the assets of a course",
		Args:  cobra.ExactArgs(1),
		RunE:  newLsRun(ctx),
	}
	lf := ls.Flags()
	lf.BoolVar(&allFlag, "all", false, "list every page")
	lf.BoolVar(&expandFlag, "expand", false, "include attachments")
	lf.IntVar(&pageFlag, "page", 0, "page to list")
	lf.IntVar(&perPageFlag, "perPage", 0, "number of assets per page")
	lf.StringVar(&orderByFlag, "orderBy", "", "sort order, for instance 'chapter asc,prefix asc'")

	progress := &cobra.Command{
		Use:   "progress <courseId> <assetId>",
		Short: "Record the progress of an asset",
		Args:  cobra.ExactArgs(2),
		RunE:  newProgressRun(ctx),
	}
	pf := progress.Flags()
	pf.IntVar(&posFlag, "pos", 0, "video position in seconds")
	pf.BoolVar(&completedFlag, "completed", false, "whether the asset is completed")

	cmd.AddCommand(ls, progress)

	return cmd
}

func newLsRun(ctx context.OffCourseCtx) infra.RunEFunc {
	return func(cmd *cobra.Command, args []string) error {
		courseID := args[0]
		if err := validate.ID(courseID); err != nil {
			return errors.Wrap(err, "invalid course id")
		}

		params := &client.AssetsParams{
			PageParams: client.PageParams{Page: pageFlag, PerPage: perPageFlag},
			OrderBy:    orderByFlag,
			Expand:     expandFlag,
		}

		if allFlag {
			assets, err := client.GetAllCourseAssets(ctx, courseID, params)
			if err != nil {
				return infra.CheckSession(ctx, err)
			}

			if len(assets) == 0 {
				log.Info("no assets\n")
				return nil
			}

			output.AssetList(color.Output, assets)
			return nil
		}

		page, err := client.GetCourseAssets(ctx, courseID, params)
		if err != nil {
			return infra.CheckSession(ctx, err)
		}

		output.AssetList(color.Output, page.Items)
		output.PageFooter(color.Output, page)

		return nil
	}
}

func findAsset(assets []models.Asset, id string) (models.Asset, bool) {
	for _, a := range assets {
		if a.ID == id {
			return a, true
		}
	}

	return models.Asset{}, false
}

func newProgressRun(ctx context.OffCourseCtx) infra.RunEFunc {
	return func(cmd *cobra.Command, args []string) error {
		courseID, assetID := args[0], args[1]
		if err := validate.ID(courseID); err != nil {
			return errors.Wrap(err, "invalid course id")
		}
		if err := validate.ID(assetID); err != nil {
			return errors.Wrap(err, "invalid asset id")
		}

		f := cmd.Flags()
		if !f.Changed("pos") && !f.Changed("completed") {
			return errors.New("nothing to update")
		}
		if err := validate.VideoPos(posFlag); err != nil {
			return errors.Wrap(err, "invalid position")
		}

		assets, err := client.GetAllCourseAssets(ctx, courseID, nil)
		if err != nil {
			return infra.CheckSession(ctx, err)
		}

		asset, ok := findAsset(assets, assetID)
		if !ok {
			return errors.Errorf("asset %s not found in course %s", assetID, courseID)
		}

		if f.Changed("pos") {
			asset.VideoPos = posFlag
		}
		if f.Changed("completed") {
			asset.Completed = completedFlag
		}

		updated, err := client.UpdateAsset(ctx, asset)
		if err != nil {
			return infra.CheckSession(ctx, err)
		}

		log.Successf("updated %s\n", updated.Title)
		output.AssetList(color.Output, []models.Asset{updated})

		return nil
	}
}
