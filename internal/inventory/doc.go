// Package inventory turns raw control tool output into the domain
// snapshots and detail text the rest of virtui consumes.
//
// The service sits between the virsh client and the user interfaces:
// Refresh produces the enriched domain rows for the table, Detail the
// combined address and descriptor text for the detail panel. Both
// degrade per domain rather than fail whole; only a failed list is an
// error, because without it there is no inventory at all.
package inventory
