package errors

import (
	stderrs "errors"
	"fmt"
	"net/http"
	"testing"
)

func TestHTTPStatusCodeMapping(t *testing.T) {
	cases := []struct {
		code ErrorCode
		want int
	}{
		{ErrorCodeNotFound, http.StatusNotFound},
		{ErrorCodeInvalidArgument, http.StatusUnprocessableEntity},
		{ErrorCodeUnsupportedPlatform, http.StatusUnprocessableEntity},
		{ErrorCodeVideoIDExtraction, http.StatusUnprocessableEntity},
		{ErrorCodeValidation, http.StatusBadRequest},
		{ErrorCodeJSON, http.StatusBadRequest},
		{ErrorCodeInvalidVideoURL, http.StatusBadRequest},
		{ErrorCodeUnavailable, http.StatusServiceUnavailable},
		{ErrorCodeRateLimited, http.StatusTooManyRequests},
		{ErrorCodePanic, http.StatusInternalServerError},
		{ErrorCodeUnknown, http.StatusInternalServerError},
		{9999, http.StatusInternalServerError}, // default branch
	}
	for _, c := range cases {
		if got := HTTPStatusCode(c.code); got != c.want {
			t.Fatalf("HTTPStatusCode(%v) = %d, want %d", c.code, got, c.want)
		}
	}
}

func TestErrorCodeString(t *testing.T) {
	if ErrorCodeUnsupportedPlatform.String() != "UNSUPPORTED_PLATFORM" {
		t.Fatalf("unexpected name %q", ErrorCodeUnsupportedPlatform.String())
	}
	if ErrorCodeVideoIDExtraction.String() != "VIDEO_ID_EXTRACTION_FAILED" {
		t.Fatalf("unexpected name %q", ErrorCodeVideoIDExtraction.String())
	}
	if ErrorCode(4242).String() != "UNKNOWN" {
		t.Fatalf("out of range code should render UNKNOWN")
	}
}

func TestErrorTypeAndMethods(t *testing.T) {
	// nil *Error should render "<nil>"
	var e *Error
	if e.Error() != "<nil>" {
		t.Fatalf("nil *Error render = %q, want <nil>", e.Error())
	}

	e1 := New(ErrorCodeValidation, "bad stuff")
	if CodeOf(e1) != ErrorCodeValidation {
		t.Fatalf("CodeOf(New) = %v", CodeOf(e1))
	}
	e2 := Newf(ErrorCodeJSON, "bad json %d", 12)
	if got := e2.Error(); got != "bad json 12" {
		t.Fatalf("Newf().Error = %q", got)
	}

	src := stderrs.New("root")
	e3 := Wrap(src, ErrorCodeUnavailable, "upstream failed")
	if u := stderrs.Unwrap(e3); u == nil || u.Error() != "root" {
		t.Fatalf("Wrap did not keep orig")
	}
	e4 := Wrapf(src, ErrorCodeUnsupportedPlatform, "nope %s", "here")
	if want := "nope here: root"; e4.Error() != want {
		t.Fatalf("Wrapf().Error = %q, want %q", e4.Error(), want)
	}
	if got, ok := As(e4); !ok || got.Code() != ErrorCodeUnsupportedPlatform || got.Message() != "nope here" {
		t.Fatalf("As() failed for our error")
	}
	if _, ok := As(src); ok {
		t.Fatalf("As() true for foreign error")
	}

	// copy-on-write mutators
	e5 := Wrap(src, ErrorCodeInvalidArgument, "oops")
	e6 := WithField(e5, "video_url")
	e7 := WithOp(e6, "detect")
	if fe, ok := As(e6); !ok || fe.Field() != "video_url" {
		t.Fatalf("WithField failed")
	}
	if oe, ok := As(e7); !ok || oe.Op() != "detect" {
		t.Fatalf("WithOp failed")
	}
	if fe0, _ := As(e5); fe0.Field() != "" || fe0.Op() != "" {
		t.Fatalf("copy-on-write mutated original")
	}
	if WithField(src, "x") != src {
		t.Fatalf("WithField should leave foreign errors untouched")
	}

	w := (&Error{code: ErrorCodeInvalidVideoURL, msg: "bad link", field: "input"}).ToWire()
	if w.Code != ErrorCodeInvalidVideoURL || w.Message != "bad link" || w.Field != "input" {
		t.Fatalf("ToWire mismatch: %+v", w)
	}
	if wf := WireFrom(nil); wf != (Wire{}) {
		t.Fatalf("WireFrom(nil) expected zero, got %+v", wf)
	}
	if wf := WireFrom(src); wf.Code != ErrorCodeUnknown || wf.Message != "root" {
		t.Fatalf("WireFrom(foreign) mismatch: %+v", wf)
	}
	// only e.msg reaches the wire, never the cause
	if wf := WireFrom(e4); wf.Message != "nope here" {
		t.Fatalf("WireFrom(ours) mismatch: %+v", wf)
	}

	if st, _ := HTTP(nil); st != http.StatusOK {
		t.Fatalf("HTTP(nil) status = %d", st)
	}
	if st, wire := HTTP(e4); st != http.StatusUnprocessableEntity || wire.Code != ErrorCodeUnsupportedPlatform {
		t.Fatalf("HTTP(e4) = %d %+v", st, wire)
	}

	if !IsCode(NotFoundf("x"), ErrorCodeNotFound) ||
		!IsCode(InvalidArgf("x"), ErrorCodeInvalidArgument) ||
		!IsCode(JSONErrf("x"), ErrorCodeJSON) ||
		!IsCode(PanicErrf("x"), ErrorCodePanic) ||
		!IsCode(UnsupportedPlatformf("x"), ErrorCodeUnsupportedPlatform) ||
		!IsCode(InvalidVideoURLf("x"), ErrorCodeInvalidVideoURL) ||
		!IsCode(VideoIDf("x"), ErrorCodeVideoIDExtraction) ||
		!IsCode(RateLimitedf("x"), ErrorCodeRateLimited) {
		t.Fatalf("sugar helpers code mismatch")
	}

	if WrapIf(nil, ErrorCodeUnknown, "ignored") != nil {
		t.Fatalf("WrapIf(nil) should return nil")
	}
	if WrapIf(src, ErrorCodeUnknown, "wrapped") == nil {
		t.Fatalf("WrapIf(non-nil) should wrap")
	}

	deep := fmt.Errorf("level2: %w", fmt.Errorf("level1: %w", src))
	if got := Root(deep); got == nil || got.Error() != "root" {
		t.Fatalf("Root() failed, got %v", got)
	}
}
