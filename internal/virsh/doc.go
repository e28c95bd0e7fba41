// Package virsh invokes the libvirt control tool and parses its output.
//
// This package deliberately treats virsh as the only interface to the
// hypervisor: domains are listed, inspected, and driven by running the
// tool as a subprocess and reading what it prints. No libvirt RPC socket
// is ever opened. That keeps virtui's privileges, authentication, and
// remote access identical to what the operator already has with virsh
// itself, including URI aliases and polkit rules.
//
// # Architecture
//
// The flow for every operation is the same:
//
//	Client.run ──> exec virsh [-c URI] <subcommand...> ──> captured stdout
//	                                                            │
//	                parsers (ParseList, ParseAddresses) <───────┘
//
// Output capture is complete before parsing starts; nothing in this
// package streams.
//
// # Parsing Tolerance
//
// The tabular parsers skip the two header lines unconditionally and then
// judge each row only by its field count, so column widths, extra blank
// lines, and separator rows never matter. Rows that do not look like
// data are dropped without complaint: an empty inventory and an empty
// address list are both valid results.
//
// # Usage Example
//
//	client := virsh.NewClient(virsh.Config{ConnectURI: "qemu:///system"}, logger)
//
//	out, err := client.List(ctx, true)
//	if err != nil {
//	    return err
//	}
//	domains := virsh.ParseList(out)
//
//	addrs := client.ResolveAddresses(ctx, "vm1")
//
// # Interactive Sessions
//
// ConsoleCommand and SSHCommand only build exec.Cmd values. Wiring their
// stdin and stdout to the real terminal is the caller's job; the
// dashboard does it by suspending itself around the child process.
package virsh
