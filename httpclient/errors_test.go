package httpclient

import (
	"errors"
	"testing"
)

func TestDecodeError_ValidationDetails(t *testing.T) {
	body := []byte(`{"details":[{"message":"Field required"},{"message":"Invalid format"}]}`)
	err := DecodeError(422, body)

	if err.Error() != "Field required. Invalid format" {
		t.Errorf("expected joined detail messages, got %q", err.Error())
	}
	if len(err.Details) != 2 {
		t.Errorf("expected 2 details, got %d", len(err.Details))
	}
}

func TestDecodeError_DetailsIgnoredOnOtherStatus(t *testing.T) {
	// The details list only drives the message on 422.
	body := []byte(`{"message":"Bad request","details":[{"message":"ignored"}]}`)
	err := DecodeError(400, body)

	if err.Error() != "Bad request" {
		t.Errorf("expected top-level message, got %q", err.Error())
	}
}

func TestDecodeError_MessageField(t *testing.T) {
	err := DecodeError(500, []byte(`{"message":"Something went wrong"}`))
	if err.Error() != "Something went wrong" {
		t.Errorf("expected message field, got %q", err.Error())
	}
}

func TestDecodeError_Synthesized(t *testing.T) {
	tests := []struct {
		name string
		body []byte
	}{
		{"empty body", nil},
		{"unparseable body", []byte("<html>not json</html>")},
		{"json without message", []byte(`{"error":true}`)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := DecodeError(404, tt.body)
			if err.Error() != "HTTP error! status: 404" {
				t.Errorf("expected synthesized message, got %q", err.Error())
			}
		})
	}
}

func TestDecodeError_EmptyDetailsFallsThrough(t *testing.T) {
	err := DecodeError(422, []byte(`{"details":[],"message":"Validation error"}`))
	if err.Error() != "Validation error" {
		t.Errorf("expected message fallback for empty details, got %q", err.Error())
	}
}

func TestErrorPredicates(t *testing.T) {
	if !IsValidation(DecodeError(422, []byte(`{"details":[{"message":"x"}]}`))) {
		t.Error("expected IsValidation for 422")
	}
	if !IsAuth(DecodeError(401, nil)) || !IsAuth(DecodeError(403, nil)) {
		t.Error("expected IsAuth for 401 and 403")
	}
	if !IsNotFound(DecodeError(404, nil)) {
		t.Error("expected IsNotFound for 404")
	}
	if !IsServer(DecodeError(503, nil)) {
		t.Error("expected IsServer for 503")
	}
	if IsServer(DecodeError(404, nil)) {
		t.Error("404 is not a server error")
	}
	if StatusOf(errors.New("plain")) != 0 {
		t.Error("expected 0 status for non-API errors")
	}
}
