// SPDX-FileCopyrightText: 2025 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

package exitcode

import (
	"os"
	"syscall"
)

// Kind is the way a process terminated.
type Kind int

// Process termination kinds.
const (
	KindSuccess Kind = iota
	KindExitCode
	KindSignal
	KindUnknown
)

func (k Kind) String() string {
	switch k {
	case KindSuccess:
		return "success"
	case KindExitCode:
		return "exit code"
	case KindSignal:
		return "signal"
	default:
		return "unknown"
	}
}

// Outcome describes how a process terminated. Code is only set for
// [KindExitCode] and Signal only for [KindSignal].
type Outcome struct {
	Kind   Kind
	Code   int
	Signal syscall.Signal
}

// FromWaitStatus classifies the given wait status.
//
// A status that neither reports a regular exit nor a terminating signal, like
// a stopped or continued process, results in [KindUnknown].
func FromWaitStatus(status syscall.WaitStatus) Outcome {
	switch {
	case status.Exited() && status.ExitStatus() == 0:
		return Outcome{Kind: KindSuccess}
	case status.Exited():
		return Outcome{Kind: KindExitCode, Code: status.ExitStatus()}
	case status.Signaled():
		return Outcome{Kind: KindSignal, Signal: status.Signal()}
	default:
		return Outcome{Kind: KindUnknown}
	}
}

// FromProcessState classifies the given state of an exited process.
func FromProcessState(state *os.ProcessState) Outcome {
	if state == nil {
		return Outcome{Kind: KindUnknown}
	}

	status, ok := state.Sys().(syscall.WaitStatus)
	if !ok {
		return Outcome{Kind: KindUnknown}
	}

	return FromWaitStatus(status)
}

// Err returns the error for the outcome. It is nil for [KindSuccess].
func (o Outcome) Err() error {
	switch o.Kind {
	case KindSuccess:
		return nil
	case KindExitCode:
		return Error(o.Code)
	case KindSignal:
		return SignalError(o.Signal)
	default:
		return ErrUnknownStatus
	}
}
