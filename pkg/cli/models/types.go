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

package models

// ScanStatus is the state of a course scan
type ScanStatus string

const (
	// ScanStatusWaiting means the scan is queued
	ScanStatusWaiting ScanStatus = "waiting"
	// ScanStatusProcessing means the scan is running
	ScanStatusProcessing ScanStatus = "processing"
	// ScanStatusIdle means no scan is queued or running
	ScanStatusIdle ScanStatus = ""
)

// ScanStatuses is the closed set of scan statuses
var ScanStatuses = []ScanStatus{ScanStatusWaiting, ScanStatusProcessing, ScanStatusIdle}

// String returns a printable status, naming the idle status explicitly
func (s ScanStatus) String() string {
	if s == ScanStatusIdle {
		return "idle"
	}

	return string(s)
}

// AssetType is the kind of content an asset holds
type AssetType string

const (
	// AssetTypeVideo is a video asset
	AssetTypeVideo AssetType = "video"
	// AssetTypeHTML is an HTML asset
	AssetTypeHTML AssetType = "html"
	// AssetTypePDF is a PDF asset
	AssetTypePDF AssetType = "pdf"
)

// AssetTypes is the closed set of asset types
var AssetTypes = []AssetType{AssetTypeVideo, AssetTypeHTML, AssetTypePDF}

// UserRole is the role of an authenticated user
type UserRole string

const (
	// UserRoleAdmin may use admin-only operations
	UserRoleAdmin UserRole = "admin"
	// UserRoleUser is a regular user
	UserRoleUser UserRole = "user"
)

// UserRoles is the closed set of user roles
var UserRoles = []UserRole{UserRoleAdmin, UserRoleUser}

// LogLevel is the numeric severity of a server log entry
type LogLevel int

const (
	LogLevelDebug LogLevel = -4
	LogLevelInfo  LogLevel = 0
	LogLevelWarn  LogLevel = 4
	LogLevelError LogLevel = 8
)

// LogLevels is the closed set of log levels
var LogLevels = []LogLevel{LogLevelDebug, LogLevelInfo, LogLevelWarn, LogLevelError}

var logLevelNames = map[LogLevel]string{
	LogLevelDebug: "debug",
	LogLevelInfo:  "info",
	LogLevelWarn:  "warn",
	LogLevelError: "error",
}

func (l LogLevel) String() string {
	if name, ok := logLevelNames[l]; ok {
		return name
	}

	return "unknown"
}

// ParseLogLevel maps a level name to its numeric value
func ParseLogLevel(name string) (LogLevel, bool) {
	for level, n := range logLevelNames {
		if n == name {
			return level, true
		}
	}

	return 0, false
}

// PathClassification describes how a filesystem path relates to known courses
type PathClassification int

const (
	PathClassificationNone PathClassification = iota
	PathClassificationAncestor
	PathClassificationCourse
	PathClassificationDescendant
)

func (p PathClassification) String() string {
	switch p {
	case PathClassificationAncestor:
		return "ancestor"
	case PathClassificationCourse:
		return "course"
	case PathClassificationDescendant:
		return "descendant"
	default:
		return "none"
	}
}

// CourseProgress filters courses by progress
type CourseProgress string

const (
	CourseProgressNotStarted   CourseProgress = "Not Started"
	CourseProgressStarted      CourseProgress = "Started"
	CourseProgressNotCompleted CourseProgress = "Not Completed"
	CourseProgressCompleted    CourseProgress = "Completed"
)

// CourseProgresses is the closed set of progress filters
var CourseProgresses = []CourseProgress{
	CourseProgressNotStarted,
	CourseProgressStarted,
	CourseProgressNotCompleted,
	CourseProgressCompleted,
}
