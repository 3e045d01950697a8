// SPDX-FileCopyrightText: 2025 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

package staticnet

import (
	"fmt"

	"github.com/vishvananda/netlink"
	"github.com/vishvananda/netns"
)

// Netlink is the part of a netlink handle used for the configuration.
type Netlink interface {
	LinkByName(name string) (netlink.Link, error)
	AddrAdd(link netlink.Link, addr *netlink.Addr) error
	LinkSetUp(link netlink.Link) error
	RouteAdd(route *netlink.Route) error
	Close()
}

var _ Netlink = (*netlink.Handle)(nil)

// OpenFunc opens a [Netlink] handle for the network namespace at the given
// path.
type OpenFunc func(nsPath string) (Netlink, error)

// OpenHandle opens a netlink handle scoped to the network namespace at the
// given path, like /proc/<pid>/ns/net or /run/netns/<name>. With an empty
// path, the handle is scoped to the network namespace of the calling thread.
func OpenHandle(nsPath string) (Netlink, error) {
	if nsPath == "" {
		handle, err := netlink.NewHandle()
		if err != nil {
			return nil, fmt.Errorf("open netlink handle: %w", err)
		}

		return handle, nil
	}

	nsHandle, err := netns.GetFromPath(nsPath)
	if err != nil {
		return nil, fmt.Errorf("open network namespace %s: %w", nsPath, err)
	}

	// The netlink sockets stay in the namespace they were created in, so the
	// namespace handle is not needed anymore once the handle exists.
	defer nsHandle.Close()

	handle, err := netlink.NewHandleAt(nsHandle)
	if err != nil {
		return nil, fmt.Errorf("open netlink handle in %s: %w", nsPath, err)
	}

	return handle, nil
}
