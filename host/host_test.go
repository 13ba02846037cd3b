package host

import (
	"context"
	"errors"
	"reflect"
	"testing"
	"time"

	"github.com/rockcore/logging"
	"github.com/rockcore/logging/hostmock"
	sdkproto "github.com/tarmac-project/protobuf-go/sdk"
	"google.golang.org/protobuf/types/known/structpb"
)

func TestNew(t *testing.T) {
	t.Parallel()

	customHostCall := func(string, string, string, []byte) ([]byte, error) {
		return nil, nil
	}

	tt := []struct {
		name        string
		cfg         Config
		wantNS      string
		wantLevel   logging.LogLevel
		wantHostPtr uintptr
		wantErr     error
	}{
		{
			name:      "custom namespace",
			cfg:       Config{Namespace: "custom", Level: logging.Warn},
			wantNS:    "custom",
			wantLevel: logging.Warn,
		},
		{
			name:        "default namespace with override",
			cfg:         Config{HostCall: customHostCall},
			wantNS:      DefaultNamespace,
			wantLevel:   logging.Debug,
			wantHostPtr: reflect.ValueOf(customHostCall).Pointer(),
		},
		{
			name:    "invalid level",
			cfg:     Config{Level: logging.LogLevel(12)},
			wantErr: logging.ErrInvalidLevel,
		},
	}

	for _, tc := range tt {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			l, err := New(tc.cfg)
			if !errors.Is(err, tc.wantErr) {
				t.Fatalf("expected error %v, got %v", tc.wantErr, err)
			}
			if err != nil {
				return
			}

			if l.namespace != tc.wantNS {
				t.Fatalf("namespace mismatch: want %q, got %q", tc.wantNS, l.namespace)
			}
			if l.level != tc.wantLevel {
				t.Fatalf("level mismatch: want %s, got %s", tc.wantLevel, l.level)
			}

			if tc.wantHostPtr != 0 {
				if got := reflect.ValueOf(l.hostCall).Pointer(); got != tc.wantHostPtr {
					t.Fatalf("hostcall pointer mismatch: want %v, got %v", tc.wantHostPtr, got)
				}
			}
		})
	}
}

func TestIsEnabled(t *testing.T) {
	t.Parallel()

	for _, threshold := range logging.Levels() {
		l, err := New(Config{Level: threshold, HostCall: func(string, string, string, []byte) ([]byte, error) { return nil, nil }})
		if err != nil {
			t.Fatalf("New returned error: %v", err)
		}
		for _, level := range logging.Levels() {
			if got, want := l.IsEnabled(level), level >= threshold; got != want {
				t.Fatalf("IsEnabled(%s) with level %s: want %v, got %v", level, threshold, want, got)
			}
		}
		if l.IsEnabled(logging.LogLevel(9)) {
			t.Fatalf("expected unknown level to be disabled")
		}
	}
}

func TestLog(t *testing.T) {
	t.Parallel()

	created := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
	entry := &logging.LogEntry{
		Message:    "disk almost full",
		Level:      logging.Warn,
		CreateTime: created,
		Fields:     map[string]any{"percent": 91},
		Err:        errors.New("quota"),
		Tags:       []string{"storage"},
	}

	tt := []struct {
		name    string
		cfg     hostmock.Config
		wantErr error
	}{
		{
			name: "payload routed and encoded",
			cfg: hostmock.Config{
				Namespace:  "testing",
				Capability: CapabilityName,
				Function:   "Warn",
				Validate: func(s *structpb.Struct) error {
					f := s.GetFields()
					if f["message"].GetStringValue() != "disk almost full" ||
						f["level"].GetStringValue() != "Warn" ||
						f["error"].GetStringValue() != "quota" ||
						f["createTime"].GetStringValue() != "2024-03-01T12:00:00Z" {
						return errors.New("unexpected entry fields")
					}
					if f["fields"].GetStructValue().GetFields()["percent"].GetNumberValue() != 91 {
						return errors.New("unexpected extended fields")
					}
					if f["tags"].GetListValue().GetValues()[0].GetStringValue() != "storage" {
						return errors.New("unexpected tags")
					}
					caller := f["caller"].GetStructValue().GetFields()
					if caller["file"].GetStringValue() != "main.go" ||
						caller["member"].GetStringValue() != "run" ||
						caller["line"].GetNumberValue() != 7 {
						return errors.New("unexpected caller")
					}
					return nil
				},
			},
		},
		{
			name: "ok status",
			cfg:  hostmock.Config{Status: &sdkproto.Status{Status: "OK", Code: 200}},
		},
		{
			name:    "host failure",
			cfg:     hostmock.Config{Fail: true, Error: errors.New("host down")},
			wantErr: ErrHostCall,
		},
		{
			name:    "error status",
			cfg:     hostmock.Config{Status: &sdkproto.Status{Status: "Invalid", Code: 400}},
			wantErr: ErrHostError,
		},
		{
			name:    "unknown status",
			cfg:     hostmock.Config{Status: &sdkproto.Status{Status: "Teapot", Code: 999}},
			wantErr: ErrHostResponseInvalid,
		},
		{
			name:    "invalid response",
			cfg:     hostmock.Config{Response: []byte{0xff, 0xff}},
			wantErr: ErrHostResponseInvalid,
		},
	}

	for _, tc := range tt {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			m, err := hostmock.New(tc.cfg)
			if err != nil {
				t.Fatalf("hostmock.New returned error: %v", err)
			}
			l, err := New(Config{Namespace: "testing", HostCall: m.HostCall})
			if err != nil {
				t.Fatalf("New returned error: %v", err)
			}

			err = l.Log(context.Background(), entry, "main.go", "run", 7)
			if !errors.Is(err, tc.wantErr) {
				t.Fatalf("expected error %v, got %v", tc.wantErr, err)
			}
			if n := len(m.Calls()); n != 1 {
				t.Fatalf("expected 1 host call, got %d", n)
			}
		})
	}
}

func TestLogRejected(t *testing.T) {
	t.Parallel()

	m, _ := hostmock.New(hostmock.Config{})
	l, err := New(Config{HostCall: m.HostCall})
	if err != nil {
		t.Fatalf("New returned error: %v", err)
	}

	if err := l.Log(context.Background(), nil, "", "", 0); !errors.Is(err, logging.ErrNilEntry) {
		t.Fatalf("expected ErrNilEntry, got %v", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if err := l.Log(ctx, logging.NewEntry(logging.Info, "x"), "", "", 0); !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context.Canceled, got %v", err)
	}

	bad := logging.NewEntry(logging.Info, "x").WithField("ch", make(chan int))
	if err := l.Log(context.Background(), bad, "", "", 0); !errors.Is(err, ErrMarshalEntry) {
		t.Fatalf("expected ErrMarshalEntry, got %v", err)
	}

	if n := len(m.Calls()); n != 0 {
		t.Fatalf("expected no host calls, got %d", n)
	}
}

func TestHelpersThroughHost(t *testing.T) {
	t.Parallel()

	m, _ := hostmock.New(hostmock.Config{Capability: CapabilityName})
	l, err := New(Config{Level: logging.Error, HostCall: m.HostCall})
	if err != nil {
		t.Fatalf("New returned error: %v", err)
	}

	ctx := context.Background()
	for _, level := range logging.Levels() {
		if err := logging.Log(ctx, l, level, "msg"); err != nil {
			t.Fatalf("Log(%s) returned error: %v", level, err)
		}
	}

	want := []string{"Error", "Fatal", "Audit"}
	calls := m.Calls()
	if len(calls) != len(want) {
		t.Fatalf("expected %d host calls, got %d", len(want), len(calls))
	}
	for i, fn := range want {
		if calls[i].Function != fn {
			t.Fatalf("call %d: want function %s, got %s", i, fn, calls[i].Function)
		}
		if calls[i].Payload.GetFields()["caller"].GetStructValue().GetFields()["member"].GetStringValue() != "TestHelpersThroughHost" {
			t.Fatalf("call %d: unexpected caller %v", i, calls[i].Payload)
		}
	}
}
