// Package cli provides the command-line interface for ulidsq.
//
// Commands:
//   - encode: convert ULIDs to compact IDs
//   - decode: convert compact IDs back to ULIDs
//   - inspect: show the timestamp and randomness fields of an identifier
//   - config: display the effective configuration and where each value came from
//   - version: show build information
//
// encode and decode read identifiers from their arguments, or one per line
// from stdin when no arguments are given. Results go to stdout; logs go to
// stderr.
package cli
