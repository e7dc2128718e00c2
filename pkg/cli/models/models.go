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

// Package models defines the entities exchanged with the Off Course API and
// validates server payloads against them
package models

// Base holds the fields shared by persisted entities
type Base struct {
	ID        string `json:"id"`
	CreatedAt string `json:"createdAt"`
	UpdatedAt string `json:"updatedAt"`
}

// Course is a directory of course content known to the server
type Course struct {
	Base
	Title     string `json:"title"`
	Path      string `json:"path"`
	HasCard   bool   `json:"hasCard"`
	Available bool   `json:"available"`

	ScanStatus ScanStatus `json:"scanStatus" validate:"scan_status"`

	Started           bool   `json:"started"`
	StartedAt         string `json:"startedAt"`
	Percent           int    `json:"percent" validate:"min=0,max=100"`
	CompletedAt       string `json:"completedAt"`
	ProgressUpdatedAt string `json:"progressUpdatedAt"`
}

// Completed reports whether every asset of the course is completed
func (c Course) Completed() bool {
	return c.Percent == 100
}

// Asset is a playable or readable file belonging to a course
type Asset struct {
	Base
	CourseID  string    `json:"courseId"`
	Title     string    `json:"title"`
	Prefix    int       `json:"prefix"`
	Chapter   string    `json:"chapter"`
	Path      string    `json:"path"`
	AssetType AssetType `json:"assetType" validate:"asset_type"`

	VideoPos    int    `json:"videoPos" validate:"min=0"`
	Completed   bool   `json:"completed"`
	CompletedAt string `json:"completedAt"`

	Attachments []Attachment `json:"attachments,omitempty" validate:"omitempty,dive"`
}

// Started reports whether playback or reading of the asset has begun
func (a Asset) Started() bool {
	return a.VideoPos > 0 || a.Completed
}

// Attachment is a supplementary file attached to an asset
type Attachment struct {
	Base
	CourseID string `json:"courseId"`
	AssetID  string `json:"assetId"`
	Title    string `json:"title"`
	Path     string `json:"path"`
}

// TagCourse is the course summary expanded into a tag
type TagCourse struct {
	ID    string `json:"id"`
	Title string `json:"title"`
}

// Tag is a label that can be attached to courses
type Tag struct {
	Base
	Tag         string      `json:"tag"`
	CourseCount int         `json:"courseCount" validate:"min=0"`
	Courses     []TagCourse `json:"courses,omitempty"`
}

// CourseTag links a tag to a course. ForDeletion is a client-side staging
// flag and is never sent to the server.
type CourseTag struct {
	ID          string `json:"id"`
	Tag         string `json:"tag"`
	ForDeletion bool   `json:"forDeletion,omitempty"`
}

// Scan is a request to (re)scan a course directory
type Scan struct {
	Base
	CourseID string     `json:"courseId"`
	Status   ScanStatus `json:"status" validate:"scan_status"`
}

// Log is a server log entry
type Log struct {
	ID        string                 `json:"id"`
	Level     LogLevel               `json:"level" validate:"log_level"`
	Message   string                 `json:"message"`
	Data      map[string]interface{} `json:"data"`
	CreatedAt string                 `json:"createdAt"`
}

// User is the authenticated user returned by the identity check
type User struct {
	ID          string   `json:"id"`
	Username    string   `json:"username"`
	DisplayName string   `json:"displayName"`
	Role        UserRole `json:"role" validate:"user_role"`
}

// FileInfo is a directory or file in a filesystem listing
type FileInfo struct {
	Title          string             `json:"title"`
	Path           string             `json:"path"`
	Classification PathClassification `json:"classification" validate:"path_class"`
}

// FileSystem is a directory listing. Without a path it lists the available
// drives as directories.
type FileSystem struct {
	Count       int        `json:"count" validate:"min=0"`
	Directories []FileInfo `json:"directories" validate:"dive"`
	Files       []FileInfo `json:"files" validate:"dive"`
}
