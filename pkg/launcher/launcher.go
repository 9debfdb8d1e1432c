/*
Copyright © 2026 mayapy-launcher authors
SPDX-License-Identifier: MIT
*/

package launcher

import (
	"context"
	stderrors "errors"
	"fmt"
	"log/slog"
	"os"
	"os/exec"

	"github.com/Muream/mayapy-launcher/pkg/errors"
	"github.com/Muream/mayapy-launcher/pkg/install"
)

// Launcher starts the mayapy interpreter of a resolved Maya release with
// forwarded arguments, wiring the child to the launcher's own stdio.
type Launcher struct {
	store install.Store
}

// New creates a Launcher over the given installation store.
func New(store install.Store) *Launcher {
	return &Launcher{store: store}
}

// Launch execs mayapy for the given release with the given arguments and
// blocks until the child exits. A non-zero child exit comes back as an
// *exec.ExitError (use ExitCode to recover the code); a child that could
// not be started at all surfaces as a LAUNCH_FAILED structured error, and a
// release whose interpreter path cannot be derived as INSTALL_NOT_FOUND.
func (l *Launcher) Launch(ctx context.Context, release install.Release, args []string) error {
	path, err := l.store.Mayapy(ctx, release)
	if err != nil {
		return err
	}

	slog.Debug("launching mayapy", "release", release, "path", path, "args", args)

	cmd := exec.CommandContext(ctx, path, args...)
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr

	if err := cmd.Run(); err != nil {
		var exitErr *exec.ExitError
		if stderrors.As(err, &exitErr) {
			// The child ran and failed; its exit code is the caller's.
			return err
		}
		return errors.Wrap(
			errors.ErrCodeLaunchFailed,
			fmt.Sprintf("failed to start %s", path),
			err,
		)
	}

	return nil
}

// ExitCode maps a Launch error to a process exit code: 0 for nil, the
// child's own code for an *exec.ExitError, and 1 for everything else.
func ExitCode(err error) int {
	if err == nil {
		return 0
	}
	var exitErr *exec.ExitError
	if stderrors.As(err, &exitErr) {
		return exitErr.ExitCode()
	}
	return 1
}
