// SPDX-FileCopyrightText: 2025 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

package cmd

import (
	"flag"
	"fmt"
	"io"
	"path/filepath"
)

const (
	guestName = "krun-guest"
	netName   = "krun-net"

	guestUsageMessage = `Usage of 'krun-guest':
    krun-guest [flags...] command [args...]

Prepares the guest file system and network and replaces itself with the
given command once everything is set up.

Network modes:
    dhcp    run dhcpcd or dhclient, whichever is found first
    static  program KRUN_NETWORK_ADDRESS, KRUN_NETWORK_MASK and
            KRUN_NETWORK_ROUTER via netlink
    none    leave the network alone
`

	netUsageMessage = `Usage of 'krun-net':
    krun-net [flags...]

Programs the static network plan given by KRUN_NETWORK_ADDRESS,
KRUN_NETWORK_MASK and KRUN_NETWORK_ROUTER via netlink. Values present in the
environment take precedence over the ones in the env file.

Without -netns, the network, host name and resolver config of the calling
process are configured. With -netns, the guest root file system (-root) is
required as well. The UTS namespace (-uts) defaults to the sibling of a
/proc/<pid>/ns/net path.
`
)

// baseFlags are the flags all commands have in common.
type baseFlags struct {
	flagSet      *flag.FlagSet
	usageMessage string

	debug   bool
	version bool
}

func (f *baseFlags) init(name, usageMessage string, output io.Writer) {
	f.usageMessage = usageMessage

	flagSet := flag.NewFlagSet(name, flag.ContinueOnError)
	flagSet.SetOutput(output)
	flagSet.Usage = f.usage

	flagSet.BoolVar(
		&f.debug,
		"debug",
		f.debug,
		"enable debug output",
	)

	flagSet.BoolVar(
		&f.version,
		"version",
		f.version,
		"show version and exit",
	)

	f.flagSet = flagSet
}

func (f *baseFlags) parse(args []string) error {
	// Parses arguments up to the first one that is not prefixed with a "-" or
	// is "--".
	err := f.flagSet.Parse(args)
	if err != nil {
		return &ParseArgsError{msg: "flag parse", err: err}
	}

	return nil
}

// fail fails like flag does. It prints the error first and then usage.
func (f *baseFlags) fail(msg string, err error) error {
	err = &ParseArgsError{msg: msg, err: err}
	fmt.Fprintln(f.flagSet.Output(), err.Error())

	f.flagSet.Usage()

	return err
}

func (f *baseFlags) usage() {
	fmt.Fprint(f.flagSet.Output(), f.usageMessage)
	fmt.Fprintln(f.flagSet.Output(), "\nFlags:")
	f.flagSet.PrintDefaults()
}

type guestFlags struct {
	baseFlags

	network NetworkMode
	command []string
}

func parseGuestArgs(args []string, output io.Writer) (*guestFlags, error) {
	flags := &guestFlags{
		network: NetworkModeDHCP,
	}

	flags.init(guestName, guestUsageMessage, output)

	flags.flagSet.TextVar(
		&flags.network,
		"network",
		flags.network,
		"network mode: dhcp, static, none",
	)

	if err := flags.parse(args); err != nil {
		return nil, err
	}

	if flags.version {
		return flags, nil
	}

	flags.command = flags.flagSet.Args()
	if len(flags.command) < 1 {
		return nil, flags.fail("no command given", nil)
	}

	return flags, nil
}

type netFlags struct {
	baseFlags

	netNS   string
	uts     string
	root    string
	envFile string
}

// guestContext returns true if a foreign guest is configured.
func (f *netFlags) guestContext() bool {
	return f.netNS != ""
}

// siblingUTSNamespace returns the UTS namespace path next to the given
// network namespace path, if it is a /proc/<pid>/ns/net like path.
func siblingUTSNamespace(netNS string) string {
	dir, base := filepath.Split(netNS)
	if base != "net" || filepath.Base(dir) != "ns" {
		return ""
	}

	return filepath.Join(dir, "uts")
}

func (f *netFlags) validateGuestContext() error {
	if !f.guestContext() {
		if f.root != "" || f.uts != "" {
			return ErrIncompleteGuestContext
		}

		return nil
	}

	if f.uts == "" {
		f.uts = siblingUTSNamespace(f.netNS)
	}

	if f.root == "" || f.uts == "" {
		return ErrIncompleteGuestContext
	}

	return nil
}

func parseNetArgs(args []string, output io.Writer) (*netFlags, error) {
	flags := &netFlags{}

	flags.init(netName, netUsageMessage, output)

	flags.flagSet.StringVar(
		&flags.netNS,
		"netns",
		flags.netNS,
		"network namespace file to configure, like /proc/<pid>/ns/net "+
			"(default is the current network namespace)",
	)

	flags.flagSet.StringVar(
		&flags.uts,
		"uts",
		flags.uts,
		"UTS namespace file of the guest the host name is set in "+
			"(default derived from -netns)",
	)

	flags.flagSet.StringVar(
		&flags.root,
		"root",
		flags.root,
		"guest root file system the host name and resolver config files "+
			"are resolved in (required with -netns)",
	)

	flags.flagSet.StringVar(
		&flags.envFile,
		"env-file",
		flags.envFile,
		"optional dotenv file with KRUN_NETWORK_* variables",
	)

	if err := flags.parse(args); err != nil {
		return nil, err
	}

	if flags.version {
		return flags, nil
	}

	if flags.flagSet.NArg() > 0 {
		return nil, flags.fail("positional arguments", ErrUnexpectedArgs)
	}

	if err := flags.validateGuestContext(); err != nil {
		return nil, flags.fail("guest context", err)
	}

	return flags, nil
}
