package host

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/rockcore/logging"
	sdkproto "github.com/tarmac-project/protobuf-go/sdk"
	wapc "github.com/wapc/wapc-guest-tinygo"
	pb "google.golang.org/protobuf/proto"
	"google.golang.org/protobuf/types/known/structpb"
)

const (
	// DefaultNamespace is used when no explicit namespace is provided.
	DefaultNamespace = "tarmac"

	// CapabilityName is the host capability log entries are sent to.
	CapabilityName = "logging"

	hostStatusOK       = int32(200)
	hostStatusBadInput = int32(400)
	hostStatusMaxError = int32(599)
)

var (
	// ErrHostCall indicates that a waPC host invocation failed.
	ErrHostCall = errors.New("host call failed")

	// ErrHostResponseInvalid signals that the host returned an invalid or unexpected payload.
	ErrHostResponseInvalid = errors.New("host response is invalid or unexpected")

	// ErrHostError means the host completed the call but reported a failure status.
	ErrHostError = errors.New("host returned an error status")

	// ErrMarshalEntry wraps failures while encoding a log entry.
	ErrMarshalEntry = errors.New("failed to marshal log entry")
)

// HostCall defines the waPC host function signature used for logging.
type HostCall func(string, string, string, []byte) ([]byte, error)

// Config controls how a Logger interacts with the host runtime.
type Config struct {
	// Namespace scopes host interactions. Defaults to DefaultNamespace.
	Namespace string

	// Level is the minimum level forwarded to the host. Defaults to logging.Debug.
	Level logging.LogLevel

	// HostCall overrides the waPC host function used for logging operations.
	HostCall HostCall
}

// Logger forwards log entries to the host logging capability.
type Logger struct {
	namespace string
	level     logging.LogLevel
	hostCall  HostCall
}

// Ensure Logger satisfies the logging.Logger interface at compile time.
var _ logging.Logger = (*Logger)(nil)

// New creates a Logger with namespace defaults and optional host-call override.
func New(cfg Config) (*Logger, error) {
	if !cfg.Level.Valid() {
		return nil, fmt.Errorf("%w: %s", logging.ErrInvalidLevel, cfg.Level)
	}

	namespace := cfg.Namespace
	if namespace == "" {
		namespace = DefaultNamespace
	}

	hostCall := cfg.HostCall
	if hostCall == nil {
		hostCall = wapc.HostCall
	}

	return &Logger{namespace: namespace, level: cfg.Level, hostCall: hostCall}, nil
}

// IsEnabled reports whether level is at or above the configured level.
func (l *Logger) IsEnabled(level logging.LogLevel) bool {
	return level.Valid() && level >= l.level
}

// Log encodes entry and sends it to the host. The host call is synchronous;
// ctx is only checked before the call is made.
func (l *Logger) Log(ctx context.Context, entry *logging.LogEntry, callerFile, callerMember string, callerLine int) error {
	if entry == nil {
		return logging.ErrNilEntry
	}
	if err := ctx.Err(); err != nil {
		return err
	}

	payload, err := encode(entry, callerFile, callerMember, callerLine)
	if err != nil {
		return err
	}

	respBytes, callErr := l.hostCall(l.namespace, CapabilityName, entry.Level.String(), payload)
	if callErr != nil && len(respBytes) == 0 {
		return errors.Join(ErrHostCall, callErr)
	}

	// Hosts that do not report a status acknowledge with an empty response.
	if len(respBytes) == 0 {
		return nil
	}

	var status sdkproto.Status
	if unmarshalErr := pb.Unmarshal(respBytes, &status); unmarshalErr != nil {
		if callErr != nil {
			return errors.Join(ErrHostCall, callErr, ErrHostResponseInvalid, unmarshalErr)
		}
		return errors.Join(ErrHostResponseInvalid, unmarshalErr)
	}

	return validateStatus(&status, callErr)
}

func encode(entry *logging.LogEntry, file, member string, line int) ([]byte, error) {
	fields := map[string]any{
		"message": entry.Message,
		"level":   entry.Level.String(),
		"caller": map[string]any{
			"file":   file,
			"member": member,
			"line":   line,
		},
	}
	if !entry.CreateTime.IsZero() {
		fields["createTime"] = entry.CreateTime.UTC().Format(time.RFC3339Nano)
	}
	if len(entry.Fields) > 0 {
		fields["fields"] = entry.Fields
	}
	if entry.Err != nil {
		fields["error"] = entry.Err.Error()
	}
	if len(entry.Tags) > 0 {
		tags := make([]any, len(entry.Tags))
		for i, t := range entry.Tags {
			tags[i] = t
		}
		fields["tags"] = tags
	}

	s, err := structpb.NewStruct(fields)
	if err != nil {
		return nil, errors.Join(ErrMarshalEntry, err)
	}

	b, err := pb.Marshal(s)
	if err != nil {
		return nil, errors.Join(ErrMarshalEntry, err)
	}
	return b, nil
}

func validateStatus(status *sdkproto.Status, callErr error) error {
	code := status.GetCode()
	switch {
	case code == 0 || code == hostStatusOK:
		if callErr != nil {
			return errors.Join(ErrHostCall, callErr)
		}
		return nil
	case code >= hostStatusBadInput && code <= hostStatusMaxError:
		detail := fmt.Sprintf("host status %d", code)
		if msg := status.GetStatus(); msg != "" {
			detail = fmt.Sprintf("%s: %s", detail, msg)
		}
		if callErr != nil {
			return errors.Join(ErrHostCall, callErr, ErrHostError, errors.New(detail))
		}
		return errors.Join(ErrHostError, errors.New(detail))
	default:
		statusErr := fmt.Errorf("unexpected host status code %d", code)
		if callErr != nil {
			return errors.Join(ErrHostCall, callErr, ErrHostResponseInvalid, statusErr)
		}
		return errors.Join(ErrHostResponseInvalid, statusErr)
	}
}
