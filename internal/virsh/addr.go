package virsh

import (
	"context"
	"strings"

	"go.uber.org/zap"
)

// addressSources are queried in this order. The DHCP lease table only
// covers hypervisor-managed networks, so the ARP table and the guest
// agent serve as fallbacks for bridged or agent-equipped guests. Every
// source is queried even after a hit; the result is the union in
// discovery order.
var addressSources = []string{"lease", "arp", "agent"}

// ResolveAddresses returns the domain's distinct IPv4 addresses across
// all address sources. A failing source is logged and skipped. An empty
// result is a normal outcome, not an error: many guests simply have no
// resolvable address.
func (c *Client) ResolveAddresses(ctx context.Context, name string) []string {
	var addrs []string
	for _, source := range addressSources {
		out, err := c.DomIfAddr(ctx, name, source)
		if err != nil {
			c.logger.Warn("address source failed",
				zap.String("domain", name),
				zap.String("source", source),
				zap.Error(err),
			)
			continue
		}
		addrs = unionAddresses(addrs, out)
	}

	if len(addrs) == 0 {
		c.logger.Info("no IPv4 address found", zap.String("domain", name))
	} else {
		c.logger.Debug("addresses resolved",
			zap.String("domain", name),
			zap.Strings("addresses", addrs),
		)
	}

	return addrs
}

// ParseAddresses extracts the IPv4 addresses from one domifaddr output,
// in row order, deduplicated.
//
// Example input:
//
//	 Name       MAC address          Protocol     Address
//	-------------------------------------------------------
//	 vnet0      52:54:00:aa:bb:cc    ipv4         192.168.122.5/24
//
// The first two lines are header and separator. A data row needs at
// least four fields with "ipv4" in the third; the fourth is the address,
// stripped of any prefix length.
func ParseAddresses(out string) []string {
	lines := strings.Split(out, "\n")
	if len(lines) <= 2 {
		return nil
	}

	var addrs []string
	for _, line := range lines[2:] {
		fields := strings.Fields(line)
		if len(fields) < 4 || fields[2] != "ipv4" {
			continue
		}

		addr := fields[3]
		if i := strings.IndexByte(addr, '/'); i >= 0 {
			addr = addr[:i]
		}

		if !containsString(addrs, addr) {
			addrs = append(addrs, addr)
		}
	}

	return addrs
}

// unionAddresses folds one source's addresses into the running union.
// An address seen before keeps its first-discovery position.
func unionAddresses(addrs []string, out string) []string {
	for _, addr := range ParseAddresses(out) {
		if !containsString(addrs, addr) {
			addrs = append(addrs, addr)
		}
	}
	return addrs
}

func containsString(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}
