// SPDX-FileCopyrightText: 2025 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

package dhcp

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os/exec"

	"github.com/aibor/krunboot/internal/exitcode"
)

// Run runs the selected client as child process and waits for it to
// terminate.
//
// A non-zero exit code is returned as [exitcode.Error] and termination by a
// signal as [exitcode.SignalError]. If neither is recorded,
// [exitcode.ErrUnknownStatus] is returned.
func (s Selection) Run(ctx context.Context) error {
	cmd := exec.CommandContext(ctx, s.Path, s.Args...)

	output, err := cmd.CombinedOutput()

	slog.Debug("DHCP client output",
		slog.String("client", s.Name),
		slog.String("output", string(output)),
	)

	var exitErr *exec.ExitError
	if err != nil && !errors.As(err, &exitErr) {
		return fmt.Errorf("execute `%s` as child process: %w", s.Name, err)
	}

	outcome := exitcode.FromProcessState(cmd.ProcessState)
	if err := outcome.Err(); err != nil {
		return fmt.Errorf("`%s` process: %w", s.Name, err)
	}

	return nil
}
