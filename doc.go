/*
Package logging defines the leveled logging capability shared by application
code and its test doubles.

The package exposes the ordered LogLevel enumeration, the LogEntry record and
the Logger interface. Log, Logf and Write are convenience helpers that consult
Logger.IsEnabled before building the call and fill in the caller's file,
function and line. Implementations live in sub-packages: host forwards entries
to the Tarmac host runtime and mock records calls for assertions in tests.
*/
package logging
