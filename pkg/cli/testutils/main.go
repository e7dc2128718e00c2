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

// Package testutils provides utilities used in tests
package testutils

import (
	"bufio"
	"bytes"
	"fmt"
	"io"
	"net/http"
	"os/exec"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/offcourse/offcourse/pkg/cli/consts"
	"github.com/offcourse/offcourse/pkg/cli/context"
	"github.com/offcourse/offcourse/pkg/cli/database"
	"github.com/offcourse/offcourse/pkg/clock"
	"github.com/pkg/errors"
)

// Prompts for user input
const (
	PromptDeleteCourse  = "delete course"
	PromptDeleteTag     = "delete tag"
	PromptDeleteAccount = "delete your account"
)

// Timeout for waiting for prompts in tests
const promptTimeout = 10 * time.Second

// NewCtx returns a runtime context pointed at the given backend, with a
// temporary database and a mock clock
func NewCtx(t *testing.T, b *Backend) context.OffCourseCtx {
	dir := t.TempDir()

	return context.OffCourseCtx{
		Paths: context.Paths{
			Config: dir,
			Data:   dir,
		},
		Backend: context.Backend{
			Mode:   context.ModeProduction,
			Origin: b.Server.URL,
		},
		Version:    "test",
		DB:         database.InitTestFileDB(t),
		Clock:      clock.NewMock(),
		HTTPClient: &http.Client{},
	}
}

// Login simulates a logged in user by storing the backend's session token in
// the local database and the context
func Login(t *testing.T, ctx *context.OffCourseCtx, token string) {
	if err := database.UpsertSystem(ctx.DB, consts.SystemSessionToken, token); err != nil {
		t.Fatal(errors.Wrap(err, "inserting session token"))
	}

	ctx.SessionToken = token
}

// Env returns the environment pointing the command line at the given backend,
// with its directories inside dir
func Env(dir string, b *Backend) []string {
	return []string{
		fmt.Sprintf("XDG_CONFIG_HOME=%s", dir),
		fmt.Sprintf("XDG_DATA_HOME=%s", dir),
		fmt.Sprintf("HOME=%s", dir),
		"OFFCOURSE_MODE=production",
		fmt.Sprintf("OFFCOURSE_ORIGIN=%s", b.Server.URL),
	}
}

// NewCmd returns a new command running the test binary, and pointers to its stderr and stdout
func NewCmd(opts RunCmdOptions, binaryName string, arg ...string) (*exec.Cmd, *bytes.Buffer, *bytes.Buffer, error) {
	var stderr, stdout bytes.Buffer

	binaryPath, err := filepath.Abs(binaryName)
	if err != nil {
		return &exec.Cmd{}, &stderr, &stdout, errors.Wrap(err, "getting the absolute path to the test binary")
	}

	cmd := exec.Command(binaryPath, arg...)
	cmd.Stderr = &stderr
	cmd.Stdout = &stdout
	cmd.Dir = opts.Dir

	cmd.Env = opts.Env

	return cmd, &stderr, &stdout, nil
}

// RunCmdOptions is an option for RunCmd
type RunCmdOptions struct {
	Env []string
	// Dir is the working directory of the command
	Dir string
}

// RunCmd runs a command of the test binary and returns its stdout
func RunCmd(t *testing.T, opts RunCmdOptions, binaryName string, arg ...string) string {
	t.Logf("running: %s %s", binaryName, strings.Join(arg, " "))

	cmd, stderr, stdout, err := NewCmd(opts, binaryName, arg...)
	if err != nil {
		t.Logf("\n%s", stdout)
		t.Fatal(errors.Wrap(err, "getting command").Error())
	}

	cmd.Env = append(cmd.Env, "OFFCOURSE_DEBUG=1")

	if err := cmd.Run(); err != nil {
		t.Logf("\n%s", stdout)
		t.Fatal(errors.Wrapf(err, "running command %s", stderr.String()))
	}

	// Print stdout if and only if test fails later
	t.Logf("\n%s", stdout)

	return stdout.String()
}

// RunCmdErr runs a command of the test binary that is expected to fail and
// returns its stderr
func RunCmdErr(t *testing.T, opts RunCmdOptions, binaryName string, arg ...string) string {
	t.Logf("running: %s %s", binaryName, strings.Join(arg, " "))

	cmd, stderr, stdout, err := NewCmd(opts, binaryName, arg...)
	if err != nil {
		t.Fatal(errors.Wrap(err, "getting command").Error())
	}

	if err := cmd.Run(); err == nil {
		t.Logf("\n%s", stdout)
		t.Fatal("expected the command to fail")
	}

	return stderr.String()
}

// WaitCmd runs a command of the test binary and passes stdout to the callback.
func WaitCmd(t *testing.T, opts RunCmdOptions, runFunc func(io.Reader, io.WriteCloser) error, binaryName string, arg ...string) (string, error) {
	t.Logf("running: %s %s", binaryName, strings.Join(arg, " "))

	binaryPath, err := filepath.Abs(binaryName)
	if err != nil {
		return "", errors.Wrap(err, "getting absolute path to test binary")
	}

	cmd := exec.Command(binaryPath, arg...)
	cmd.Env = opts.Env
	cmd.Dir = opts.Dir

	var stderr bytes.Buffer
	cmd.Stderr = &stderr

	stdout, err := cmd.StdoutPipe()
	if err != nil {
		return "", errors.Wrap(err, "getting stdout pipe")
	}

	stdin, err := cmd.StdinPipe()
	if err != nil {
		return "", errors.Wrap(err, "getting stdin")
	}
	defer stdin.Close()

	if err = cmd.Start(); err != nil {
		return "", errors.Wrap(err, "starting command")
	}

	var output bytes.Buffer
	tee := io.TeeReader(stdout, &output)

	err = runFunc(tee, stdin)
	if err != nil {
		t.Logf("\n%s", output.String())
		return output.String(), errors.Wrap(err, "running callback")
	}

	io.Copy(&output, stdout)

	if err := cmd.Wait(); err != nil {
		t.Logf("\n%s", output.String())
		return output.String(), errors.Wrapf(err, "command failed: %s", stderr.String())
	}

	t.Logf("\n%s", output.String())
	return output.String(), nil
}

// MustWaitCmd runs WaitCmd and fails the test on error
func MustWaitCmd(t *testing.T, opts RunCmdOptions, runFunc func(io.Reader, io.WriteCloser) error, binaryName string, arg ...string) string {
	output, err := WaitCmd(t, opts, runFunc, binaryName, arg...)
	if err != nil {
		t.Fatal(err)
	}

	return output
}

// waitForPrompt waits for an expected prompt to appear in stdout with a timeout.
// Prompts without a trailing newline are found by reading byte by byte.
func waitForPrompt(stdout io.Reader, expectedPrompt string, timeout time.Duration) error {
	type result struct {
		found bool
		err   error
	}
	resultCh := make(chan result, 1)

	go func() {
		reader := bufio.NewReader(stdout)
		var buffer strings.Builder
		found := false

		for {
			b, err := reader.ReadByte()
			if err != nil {
				resultCh <- result{found: found, err: err}
				return
			}

			buffer.WriteByte(b)
			if strings.Contains(buffer.String(), expectedPrompt) {
				found = true
				break
			}
		}

		resultCh <- result{found: found, err: nil}
	}()

	select {
	case res := <-resultCh:
		if res.err != nil && res.err != io.EOF {
			return errors.Wrap(res.err, "reading stdout")
		}
		if !res.found {
			return errors.Errorf("expected prompt '%s' not found in stdout", expectedPrompt)
		}
		return nil
	case <-time.After(timeout):
		return errors.Errorf("timeout waiting for prompt '%s'", expectedPrompt)
	}
}

// userRespondToPrompt waits for a prompt and sends a response
func userRespondToPrompt(stdout io.Reader, stdin io.WriteCloser, expectedPrompt, response, action string) error {
	if err := waitForPrompt(stdout, expectedPrompt, promptTimeout); err != nil {
		return err
	}

	if _, err := io.WriteString(stdin, response); err != nil {
		return errors.Wrapf(err, "indicating %s in stdin", action)
	}

	return nil
}

// ConfirmDeleteCourse waits for the prompt for deleting a course and confirms
func ConfirmDeleteCourse(stdout io.Reader, stdin io.WriteCloser) error {
	return userRespondToPrompt(stdout, stdin, PromptDeleteCourse, "y\n", "confirmation")
}

// CancelDeleteCourse waits for the prompt for deleting a course and cancels
func CancelDeleteCourse(stdout io.Reader, stdin io.WriteCloser) error {
	return userRespondToPrompt(stdout, stdin, PromptDeleteCourse, "n\n", "cancellation")
}

// ConfirmDeleteTag waits for the prompt for deleting a tag and confirms
func ConfirmDeleteTag(stdout io.Reader, stdin io.WriteCloser) error {
	return userRespondToPrompt(stdout, stdin, PromptDeleteTag, "y\n", "confirmation")
}

// ConfirmDeleteAccount waits for the prompt for deleting the account and confirms
func ConfirmDeleteAccount(stdout io.Reader, stdin io.WriteCloser) error {
	return userRespondToPrompt(stdout, stdin, PromptDeleteAccount, "y\n", "confirmation")
}
