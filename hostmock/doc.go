/*
Package hostmock provides a pretend Tarmac host for the logging capability.

It lets host.Logger tests check exactly what reaches the host without a real
runtime: routing, the decoded entry payload, and how host failures and status
codes are surfaced.

Quick start

	m, _ := hostmock.New(hostmock.Config{
	  Namespace:  "tarmac",
	  Capability: "logging",
	  Function:   "Warn",
	  Validate: func(s *structpb.Struct) error {
	    if s.GetFields()["message"].GetStringValue() != "disk almost full" {
	      return errors.New("wrong message")
	    }
	    return nil
	  },
	  Status: &sdkproto.Status{Status: "OK", Code: 200},
	})

	l, _ := host.New(host.Config{HostCall: m.HostCall})

Behavior

  - Every call is recorded before anything else is checked; Calls returns a
    copy of the history. The mock is safe for concurrent use.
  - If Fail is true, HostCall returns Error, or ErrOperationFailed when Error is nil.
  - Otherwise the namespace, capability and function are compared with the
    non-empty expectations, the payload is decoded into a structpb.Struct and
    passed to Validate.
  - Response is returned verbatim when set; otherwise Status is marshalled when
    set; otherwise the response is empty.
*/
package hostmock
