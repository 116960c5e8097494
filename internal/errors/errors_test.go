package errors

import (
	"errors"
	"fmt"
	"testing"
)

func TestKind_String(t *testing.T) {
	tests := []struct {
		kind     Kind
		expected string
	}{
		{KindUnknown, "unknown error"},
		{KindNotFound, "not found"},
		{KindInvalid, "invalid"},
		{KindIO, "I/O error"},
		{KindConfig, "configuration error"},
		{KindProcess, "process error"},
		{KindTimeout, "timeout"},
		{Kind(999), "unknown error"},
	}

	for _, tt := range tests {
		t.Run(tt.expected, func(t *testing.T) {
			if got := tt.kind.String(); got != tt.expected {
				t.Errorf("Kind.String() = %q, want %q", got, tt.expected)
			}
		})
	}
}

func TestError_Error(t *testing.T) {
	tests := []struct {
		name     string
		err      *Error
		expected string
	}{
		{
			name:     "with op and context",
			err:      &Error{Op: "test.Op", Context: "some context", Err: errors.New("underlying error")},
			expected: "test.Op: some context: underlying error",
		},
		{
			name:     "with op only",
			err:      &Error{Op: "test.Op", Err: errors.New("underlying error")},
			expected: "test.Op: underlying error",
		},
		{
			name:     "without op",
			err:      &Error{Err: errors.New("underlying error")},
			expected: "underlying error",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.err.Error(); got != tt.expected {
				t.Errorf("Error.Error() = %q, want %q", got, tt.expected)
			}
		})
	}
}

func TestE_ContextBecomesMessageWithoutCause(t *testing.T) {
	err := E(Op("layout.ParseMode"), KindInvalid, "bad mode")

	if got := err.Error(); got != "layout.ParseMode: bad mode" {
		t.Errorf("Error() = %q", got)
	}
	if !Is(err, KindInvalid) {
		t.Error("expected KindInvalid")
	}
}

func TestE_WrapsCause(t *testing.T) {
	cause := errors.New("disk full")
	err := ConfigSaveFailed("/tmp/x.yaml", cause)

	if !errors.Is(err, cause) {
		t.Error("errors.Is should find the cause")
	}
	if GetKind(err) != KindConfig {
		t.Errorf("GetKind = %v, want %v", GetKind(err), KindConfig)
	}
}

func TestGetKind_ThroughWrapping(t *testing.T) {
	err := fmt.Errorf("outer: %w", BinaryNotFound("pnpm"))

	if GetKind(err) != KindNotFound {
		t.Errorf("GetKind = %v, want %v", GetKind(err), KindNotFound)
	}
	if GetKind(errors.New("plain")) != KindUnknown {
		t.Error("plain errors should be KindUnknown")
	}
}

func TestConstructors(t *testing.T) {
	tests := []struct {
		name string
		err  error
		kind Kind
	}{
		{"ConfigLoadFailed", ConfigLoadFailed("p", errors.New("x")), KindConfig},
		{"ConfigInvalid", ConfigInvalid("breakpoint must be positive"), KindInvalid},
		{"UnknownMode", UnknownMode("grid"), KindInvalid},
		{"UnknownViewMode", UnknownViewMode("split"), KindInvalid},
		{"BinaryNotFound", BinaryNotFound("pnpm"), KindNotFound},
		{"ProcessExited", ProcessExited("pnpm", 2, errors.New("exit status 2")), KindProcess},
		{"ProcessTimeout", ProcessTimeout("pnpm"), KindTimeout},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if !Is(tt.err, tt.kind) {
				t.Errorf("%s kind = %v, want %v", tt.name, GetKind(tt.err), tt.kind)
			}
		})
	}
}
