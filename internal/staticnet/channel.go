// SPDX-FileCopyrightText: 2025 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

package staticnet

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/vishvananda/netlink"
	"golang.org/x/sync/errgroup"
)

type request struct {
	fn   func(Netlink) error
	resp chan error
}

// Channel serializes netlink requests onto a single pump goroutine that owns
// the handle.
//
// Each request blocks until its response arrived, so there is never more than
// one request in flight. Requests have no timeout. The context passed to the
// requests only aborts waiting, for example on shutdown. A request that hangs
// in the kernel keeps the pump and the handle alive until it returns, but it
// does not block [Channel.Close].
type Channel struct {
	requests chan request
	group    *errgroup.Group
	closed   <-chan struct{}
	cancel   context.CancelFunc

	mu       sync.Mutex
	inFlight bool
}

// OpenChannel starts the pump goroutine for the given handle. The handle is
// closed by the pump when the channel is closed.
//
// [Channel.Close] must be called to stop the pump.
func OpenChannel(ctx context.Context, handle Netlink) *Channel {
	ctx, cancel := context.WithCancel(ctx)
	group, ctx := errgroup.WithContext(ctx)

	channel := &Channel{
		requests: make(chan request),
		group:    group,
		closed:   ctx.Done(),
		cancel:   cancel,
	}

	group.Go(func() error {
		defer handle.Close()

		for {
			select {
			case <-ctx.Done():
				return nil
			case req := <-channel.requests:
				if !channel.begin(ctx) {
					req.resp <- ErrChannelClosed
					return nil
				}

				err := req.fn(handle)

				channel.end()

				req.resp <- err
			}
		}
	})

	return channel
}

// begin marks a request as in flight unless the channel is closed already.
func (c *Channel) begin(ctx context.Context) bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	if ctx.Err() != nil {
		return false
	}

	c.inFlight = true

	return true
}

func (c *Channel) end() {
	c.mu.Lock()
	c.inFlight = false
	c.mu.Unlock()
}

// Close stops the pump goroutine and waits for it to terminate.
//
// If a request is still in flight, Close does not wait and returns
// [ErrRequestInFlight]. The pump closes the handle as soon as the request
// returns.
func (c *Channel) Close() error {
	c.cancel()

	c.mu.Lock()
	inFlight := c.inFlight
	c.mu.Unlock()

	if inFlight {
		return ErrRequestInFlight
	}

	return c.group.Wait() //nolint:wrapcheck
}

// Do runs fn on the pump goroutine and waits for its result.
func (c *Channel) Do(ctx context.Context, fn func(Netlink) error) error {
	select {
	case <-c.closed:
		return ErrChannelClosed
	default:
	}

	req := request{
		fn:   fn,
		resp: make(chan error, 1),
	}

	select {
	case c.requests <- req:
	case <-c.closed:
		return ErrChannelClosed
	case <-ctx.Done():
		return ctx.Err() //nolint:wrapcheck
	}

	select {
	case err := <-req.resp:
		return err
	case <-ctx.Done():
		return ctx.Err() //nolint:wrapcheck
	}
}

// LinkByName looks up the link with the given name. It returns nil without
// error if the link does not exist.
func (c *Channel) LinkByName(ctx context.Context, name string) (netlink.Link, error) {
	var link netlink.Link

	err := c.Do(ctx, func(handle Netlink) error {
		var err error

		link, err = handle.LinkByName(name)

		return err
	})
	if err != nil {
		var notFoundErr netlink.LinkNotFoundError
		if errors.As(err, &notFoundErr) {
			return nil, nil
		}

		return nil, fmt.Errorf("look up link %s: %w", name, err)
	}

	return link, nil
}

// AddrAdd adds the address to the link.
func (c *Channel) AddrAdd(ctx context.Context, link netlink.Link, addr *netlink.Addr) error {
	err := c.Do(ctx, func(handle Netlink) error {
		return handle.AddrAdd(link, addr)
	})
	if err != nil {
		return fmt.Errorf("add address %s to %s: %w", addr.IPNet, link.Attrs().Name, err)
	}

	return nil
}

// LinkSetUp brings the link up.
func (c *Channel) LinkSetUp(ctx context.Context, link netlink.Link) error {
	err := c.Do(ctx, func(handle Netlink) error {
		return handle.LinkSetUp(link)
	})
	if err != nil {
		return fmt.Errorf("set link %s up: %w", link.Attrs().Name, err)
	}

	return nil
}

// RouteAdd adds the route.
func (c *Channel) RouteAdd(ctx context.Context, route *netlink.Route) error {
	err := c.Do(ctx, func(handle Netlink) error {
		return handle.RouteAdd(route)
	})
	if err != nil {
		return fmt.Errorf("add route via %s: %w", route.Gw, err)
	}

	return nil
}
