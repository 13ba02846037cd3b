package hostmock

import (
	"errors"
	"fmt"
	"sync"

	sdkproto "github.com/tarmac-project/protobuf-go/sdk"
	pb "google.golang.org/protobuf/proto"
	"google.golang.org/protobuf/types/known/structpb"
)

var (
	// ErrUnexpectedNamespace is returned when the namespace is not as expected.
	ErrUnexpectedNamespace = errors.New("unexpected namespace")

	// ErrUnexpectedCapability is returned when the capability is not as expected.
	ErrUnexpectedCapability = errors.New("unexpected capability")

	// ErrUnexpectedFunction is returned when the function is not as expected.
	ErrUnexpectedFunction = errors.New("unexpected function")

	// ErrOperationFailed is returned when Fail is set without a custom error.
	ErrOperationFailed = errors.New("operation failed")

	// ErrInvalidPayload is returned when the payload is not an encoded protobuf Struct.
	ErrInvalidPayload = errors.New("payload is not a valid log entry")
)

// Config describes the host the mock pretends to be. Empty routing fields
// match anything.
type Config struct {
	// Namespace is the namespace expected in the host call.
	Namespace string

	// Capability is the capability expected in the host call.
	Capability string

	// Function is the function expected in the host call.
	Function string

	// Fail makes every call return Error, or ErrOperationFailed when Error is nil.
	Fail bool

	// Error is returned when Fail is set.
	Error error

	// Validate inspects the decoded payload.
	Validate func(*structpb.Struct) error

	// Status, when set, is marshalled and returned as the response.
	Status *sdkproto.Status

	// Response, when set, is returned verbatim and takes precedence over Status.
	Response []byte
}

// Call records a host call observed by the mock.
type Call struct {
	Namespace  string
	Capability string
	Function   string
	// Payload is the decoded entry, nil when decoding failed.
	Payload *structpb.Struct
}

// Mock simulates the host side of the logging capability. It is safe for
// concurrent use.
type Mock struct {
	cfg Config

	mu    sync.Mutex
	calls []Call
}

// New creates a Mock from config.
func New(config Config) (*Mock, error) {
	return &Mock{cfg: config, calls: []Call{}}, nil
}

// Calls returns a copy of every host call in order, including failed ones.
func (m *Mock) Calls() []Call {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]Call(nil), m.calls...)
}

// HostCall records the call, then validates routing and payload before
// returning the configured response.
func (m *Mock) HostCall(namespace, capability, function string, payload []byte) ([]byte, error) {
	call := Call{Namespace: namespace, Capability: capability, Function: function}

	decoded := &structpb.Struct{}
	decodeErr := pb.Unmarshal(payload, decoded)
	if decodeErr == nil {
		call.Payload = decoded
	}
	m.mu.Lock()
	m.calls = append(m.calls, call)
	m.mu.Unlock()

	if m.cfg.Fail {
		if m.cfg.Error != nil {
			return nil, m.cfg.Error
		}
		return nil, ErrOperationFailed
	}

	if m.cfg.Namespace != "" && m.cfg.Namespace != namespace {
		return nil, fmt.Errorf("%w: expected namespace %s, got %s", ErrUnexpectedNamespace, m.cfg.Namespace, namespace)
	}
	if m.cfg.Capability != "" && m.cfg.Capability != capability {
		return nil, fmt.Errorf("%w: expected capability %s, got %s", ErrUnexpectedCapability, m.cfg.Capability, capability)
	}
	if m.cfg.Function != "" && m.cfg.Function != function {
		return nil, fmt.Errorf("%w: expected function %s, got %s", ErrUnexpectedFunction, m.cfg.Function, function)
	}

	if decodeErr != nil {
		return nil, errors.Join(ErrInvalidPayload, decodeErr)
	}
	if m.cfg.Validate != nil {
		if err := m.cfg.Validate(decoded); err != nil {
			return nil, err
		}
	}

	if m.cfg.Response != nil {
		return m.cfg.Response, nil
	}
	if m.cfg.Status != nil {
		b, err := pb.Marshal(m.cfg.Status)
		if err != nil {
			return nil, fmt.Errorf("failed to marshal status: %w", err)
		}
		return b, nil
	}
	return nil, nil
}
