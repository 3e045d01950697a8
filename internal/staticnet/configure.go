// SPDX-FileCopyrightText: 2025 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

package staticnet

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"

	"github.com/aibor/krunboot/sysinit"
	"github.com/vishvananda/netlink"
)

// Defaults used by [DefaultConfig].
const (
	defaultInterface  = "eth0"
	defaultResolvConf = "/etc/resolv.conf"
)

// Config defines the parameters for [Configure].
type Config struct {
	// HostnameFile is the file the host name is read from.
	HostnameFile string

	// ResolvConf is overwritten with the gateway as name server.
	ResolvConf string

	// Interface is the name of the link the address is assigned to.
	Interface string

	// NetNS is the path of the network namespace to configure. If empty, the
	// namespace of the calling thread is used.
	NetNS string

	// LookupEnv looks up the environment variables of the [Plan].
	LookupEnv LookupEnvFunc

	// SetHostname sets the kernel host name.
	SetHostname func(string) error

	// Open opens the netlink handle for NetNS.
	Open OpenFunc
}

// DefaultConfig returns the [Config] for the guest network.
func DefaultConfig() Config {
	return Config{
		HostnameFile: sysinit.HostnameFile,
		ResolvConf:   defaultResolvConf,
		Interface:    defaultInterface,
		LookupEnv:    os.LookupEnv,
		SetHostname:  sysinit.SetHostname,
		Open:         OpenHandle,
	}
}

// Configure sets the host name and programs the static network plan read
// from the environment.
//
// The plan is read and validated before any netlink request is sent. If the
// configured interface does not exist, no address is assigned, but the
// default route and the resolver config are set up anyway.
func Configure(ctx context.Context, cfg Config) (err error) {
	err = sysinit.ConfigureHostname(cfg.HostnameFile, cfg.SetHostname)
	if err != nil {
		return err //nolint:wrapcheck
	}

	plan, err := PlanFromEnv(cfg.LookupEnv)
	if err != nil {
		return err
	}

	slog.Info("Static network plan",
		slog.String("address", plan.Prefix().String()),
		slog.String("gateway", plan.Gateway.String()),
	)

	handle, err := cfg.Open(cfg.NetNS)
	if err != nil {
		return err
	}

	channel := OpenChannel(ctx, handle)
	defer func() {
		if closeErr := channel.Close(); closeErr != nil {
			err = errors.Join(err, fmt.Errorf("close netlink channel: %w", closeErr))
		}
	}()

	if err := apply(ctx, channel, plan, cfg.Interface); err != nil {
		return err
	}

	slog.Debug("Write resolver config", slog.String("path", cfg.ResolvConf))

	return WriteResolvConf(cfg.ResolvConf, plan.Gateway)
}

func apply(ctx context.Context, channel *Channel, plan Plan, ifName string) error {
	link, err := channel.LinkByName(ctx, ifName)
	if err != nil {
		return err
	}

	if link == nil {
		slog.Info("Link not found, skip address assignment",
			slog.String("link", ifName))
	} else {
		addr := &netlink.Addr{IPNet: plan.IPNet()}
		if err := channel.AddrAdd(ctx, link, addr); err != nil {
			return err
		}

		if err := channel.LinkSetUp(ctx, link); err != nil {
			return err
		}

		slog.Debug("Link configured",
			slog.String("link", ifName),
			slog.String("address", addr.IPNet.String()),
		)
	}

	route := &netlink.Route{Gw: plan.GatewayIP()}
	if err := channel.RouteAdd(ctx, route); err != nil {
		return err
	}

	slog.Debug("Default route added", slog.String("gateway", plan.Gateway.String()))

	return nil
}

// WithConfigure returns a setup [sysinit.Func] that wraps [Configure] and can
// be used with [sysinit.Run].
func WithConfigure(cfg Config) sysinit.Func {
	return func(ctx context.Context) error {
		return Configure(ctx, cfg)
	}
}
