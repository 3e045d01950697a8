// SPDX-FileCopyrightText: 2025 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

package sysinit

import (
	"context"
	"fmt"
)

// Func is a boot step run by [Run].
type Func func(ctx context.Context) error

// Run runs the given [Func]s in the order given and stops at the first error.
//
// There is no retry and no rollback of the steps that ran already. A failed
// boot stage is supposed to be aborted as a whole by the caller. Panics are
// recovered and returned as error wrapping [ErrPanic].
//
// A typical guest boot stage would be:
//
//	err := Run(ctx,
//		[WithDefaultEnv]([EnvVars]{"PATH": "/usr/sbin:/usr/bin:/sbin:/bin"}),
//		[WithInterfaceUp]("lo"),
//		func(ctx context.Context) error {
//			// Mount and network setup.
//		},
//	)
//	if err == nil {
//		err = [Exec](os.Args[1:])
//	}
func Run(ctx context.Context, funcs ...Func) (err error) {
	defer func() {
		rec := recover()
		if rec == nil {
			return
		}

		if recoveredErr, ok := rec.(error); ok {
			err = fmt.Errorf("%w: %w", ErrPanic, recoveredErr)
		} else {
			err = fmt.Errorf("%w: %v", ErrPanic, rec)
		}
	}()

	for _, fn := range funcs {
		if err = fn(ctx); err != nil {
			return err
		}
	}

	return nil
}
