/*
Package host implements logging.Logger on top of the Tarmac host runtime.

Entries are encoded as a google.protobuf.Struct carrying the message, level,
creation time, fields, error, tags and caller location, then sent over a waPC
host call to the "logging" capability with the level name as the function.
Entries below the configured level are reported as disabled and never leave
the guest.

Tests can inject Config.HostCall, typically hostmock.Mock.HostCall, to exercise
routing and failure paths without a real host.
*/
package host
