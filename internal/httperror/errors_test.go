package httperror

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/habitlock/verify-server/internal/gemini"
	"github.com/habitlock/verify-server/internal/verify"
)

func TestFromErrorMapping(t *testing.T) {
	apiErr := FromError(fmt.Errorf("pipeline: %w", verify.ErrNoJSON))
	if apiErr == nil || apiErr.Code != CodeExtraction || apiErr.Status != http.StatusInternalServerError {
		t.Fatalf("expected extraction failure, got %+v", apiErr)
	}

	apiErr = FromError(fmt.Errorf("pipeline: %w", verify.ErrSchema))
	if apiErr == nil || apiErr.Code != CodeSchema {
		t.Fatalf("expected schema violation, got %+v", apiErr)
	}

	apiErr = FromError(fmt.Errorf("%w: status 503", gemini.ErrUpstream))
	if apiErr == nil || apiErr.Code != CodeUpstream {
		t.Fatalf("expected upstream error, got %+v", apiErr)
	}

	apiErr = FromError(gemini.ErrMissingAPIKey)
	if apiErr == nil || apiErr.Code != CodeUpstream {
		t.Fatalf("expected upstream error, got %+v", apiErr)
	}

	apiErr = FromError(context.DeadlineExceeded)
	if apiErr == nil || apiErr.Code != CodeUpstream {
		t.Fatalf("expected upstream error for timeout, got %+v", apiErr)
	}

	apiErr = FromError(errors.New("boom"))
	if apiErr == nil || apiErr.Code != CodeInternal {
		t.Fatalf("expected internal error, got %+v", apiErr)
	}

	if FromError(nil) != nil {
		t.Fatalf("nil error must map to nil")
	}
}

func TestPostValidationFailuresShareOneMessage(t *testing.T) {
	codes := map[ErrorCode]error{
		CodeExtraction: verify.ErrNoJSON,
		CodeSchema:     verify.ErrSchema,
		CodeUpstream:   gemini.ErrUpstream,
		CodeInternal:   errors.New("boom"),
	}

	seen := ""
	for code, err := range codes {
		status, payload := Response(err)
		if status != http.StatusInternalServerError {
			t.Fatalf("%s: expected 500, got %d", code, status)
		}
		if seen == "" {
			seen = payload.Error
		} else if payload.Error != seen {
			t.Fatalf("%s: message %q differs from %q", code, payload.Error, seen)
		}
	}
}

func TestGenericMessageHidesCause(t *testing.T) {
	cause := fmt.Errorf("%w: upstream said quota exceeded for key AIza123", gemini.ErrUpstream)
	_, payload := Response(cause)
	if payload.Error != genericFailureMessage {
		t.Fatalf("upstream detail leaked to client: %q", payload.Error)
	}
}

func TestNewMissingField(t *testing.T) {
	err := NewMissingField("imageBase64")
	if err.Status != http.StatusBadRequest || err.Code != CodeRequestInvalid {
		t.Fatalf("unexpected error: %+v", err)
	}
	if err.Message != "imageBase64 is required" {
		t.Fatalf("unexpected message: %s", err.Message)
	}
}

func TestErrorUnwrap(t *testing.T) {
	cause := errors.New("root cause")
	wrapped := NewInternal(cause)
	if !errors.Is(wrapped, cause) {
		t.Fatalf("expected wrapped cause to survive errors.Is")
	}

	var apiErr *Error
	if !errors.As(fmt.Errorf("outer: %w", wrapped), &apiErr) || apiErr.Code != CodeInternal {
		t.Fatalf("expected errors.As to find *Error")
	}
}

func TestMethodNotAllowedAndUnauthorized(t *testing.T) {
	if err := NewMethodNotAllowed(); err.Status != http.StatusMethodNotAllowed {
		t.Fatalf("unexpected status: %d", err.Status)
	}
	if err := NewUnauthorized(); err.Status != http.StatusUnauthorized {
		t.Fatalf("unexpected status: %d", err.Status)
	}
}
