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

// Package consts provides definitions of constants
package consts

var (
	// DBFileName is the filename of the local SQLite database
	DBFileName = "offcourse.db"
	// ConfigFilename is the name of the config file
	ConfigFilename = "offcourserc"
	// EnvFilename is the dotenv file read from the working directory at startup
	EnvFilename = ".env"

	// SystemSessionToken is the system key holding the access token issued at login
	SystemSessionToken = "session_token"
	// SystemSessionUser is the system key holding the username that logged in
	SystemSessionUser = "session_user"

	// LoginPath is the view the session holder navigates to when unauthenticated
	LoginPath = "/auth/login/"
)
