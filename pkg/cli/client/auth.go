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

package client

import (
	"net/http"

	"github.com/offcourse/offcourse/pkg/cli/context"
	"github.com/offcourse/offcourse/pkg/cli/models"
	"github.com/pkg/errors"
)

// GetMe gets the user the session belongs to
func GetMe(ctx context.OffCourseCtx) (models.User, error) {
	ret, err := getJSON(ctx, resourcePath(AuthAPI, "me"), nil, models.UserDecoder)
	if err != nil {
		return models.User{}, errors.Wrap(err, "failed to retrieve user")
	}

	return ret, nil
}

// Logout ends the session on the server
func Logout(ctx context.OffCourseCtx) error {
	_, err := doReq(ctx, http.MethodPost, resourcePath(AuthAPI, "logout"), &requestOptions{
		ExpectedContentType: &contentTypeNone,
	})
	if err != nil {
		return errors.Wrap(err, "failed to log out")
	}

	return nil
}

// DeleteMe deletes the account the session belongs to
func DeleteMe(ctx context.OffCourseCtx) error {
	if err := deleteReq(ctx, resourcePath(AuthAPI, "me")); err != nil {
		return errors.Wrap(err, "failed to delete account")
	}

	return nil
}

type loginPayload struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// LoginResp is the response from the login endpoint
type LoginResp struct {
	Token string `json:"token"`
}

var loginDecoder = models.DecoderFunc[LoginResp](models.Decode[LoginResp])

// Login authenticates with the server and returns the session token
func Login(ctx context.OffCourseCtx, username, password string) (LoginResp, error) {
	payload := loginPayload{
		Username: username,
		Password: password,
	}

	ret, err := sendJSON(ctx, http.MethodPost, resourcePath(AuthAPI, "login"), payload, loginDecoder)
	if err != nil {
		return LoginResp{}, errors.Wrap(err, "failed to log in")
	}

	if ret.Token == "" {
		return LoginResp{}, errors.New("failed to log in: server returned an empty token")
	}

	return ret, nil
}
