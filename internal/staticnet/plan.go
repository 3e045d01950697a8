// SPDX-FileCopyrightText: 2025 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

package staticnet

import (
	"encoding/binary"
	"fmt"
	"math/bits"
	"net"
	"net/netip"
)

// Environment variables the static network plan is read from.
const (
	EnvAddress = "KRUN_NETWORK_ADDRESS"
	EnvMask    = "KRUN_NETWORK_MASK"
	EnvRouter  = "KRUN_NETWORK_ROUTER"
)

const ipv4Bits = 32

// LookupEnvFunc looks up environment variables like [os.LookupEnv].
type LookupEnvFunc func(key string) (string, bool)

// Plan is the static IPv4 network configuration of the guest.
type Plan struct {
	Address netip.Addr
	Mask    netip.Addr
	Gateway netip.Addr
}

// PlanFromEnv reads the [Plan] from the environment variables [EnvAddress],
// [EnvMask] and [EnvRouter]. All of them are required.
//
// The returned error is an [*EnvError] naming the offending variable.
func PlanFromEnv(lookup LookupEnvFunc) (Plan, error) {
	var (
		plan Plan
		err  error
	)

	plan.Address, err = ipv4FromEnv(lookup, EnvAddress)
	if err != nil {
		return Plan{}, err
	}

	plan.Mask, err = ipv4FromEnv(lookup, EnvMask)
	if err != nil {
		return Plan{}, err
	}

	plan.Gateway, err = ipv4FromEnv(lookup, EnvRouter)
	if err != nil {
		return Plan{}, err
	}

	return plan, nil
}

func ipv4FromEnv(lookup LookupEnvFunc, name string) (netip.Addr, error) {
	value, exists := lookup(name)
	if !exists {
		return netip.Addr{}, &EnvError{Name: name, Err: ErrMissingVar}
	}

	addr, err := netip.ParseAddr(value)
	if err != nil {
		return netip.Addr{}, &EnvError{
			Name: name,
			Err:  fmt.Errorf("%w: %w", ErrInvalidAddress, err),
		}
	}

	if !addr.Is4() {
		return netip.Addr{}, &EnvError{
			Name: name,
			Err:  fmt.Errorf("%w: %s", ErrInvalidAddress, value),
		}
	}

	return addr, nil
}

// PrefixLen returns the prefix length of the mask.
//
// It counts the leading one bits of the mask. The mask is not checked for
// being contiguous. For a mask like 255.0.255.0 the result does not describe
// the actual mask.
func (p Plan) PrefixLen() int {
	mask := p.Mask.As4()
	return bits.LeadingZeros32(^binary.BigEndian.Uint32(mask[:]))
}

// Prefix returns the address with the prefix length of the mask.
func (p Plan) Prefix() netip.Prefix {
	return netip.PrefixFrom(p.Address, p.PrefixLen())
}

// IPNet returns the address and mask as [net.IPNet] for netlink.
func (p Plan) IPNet() *net.IPNet {
	return &net.IPNet{
		IP:   net.IP(p.Address.AsSlice()),
		Mask: net.CIDRMask(p.PrefixLen(), ipv4Bits),
	}
}

// GatewayIP returns the gateway address as [net.IP] for netlink.
func (p Plan) GatewayIP() net.IP {
	return net.IP(p.Gateway.AsSlice())
}
