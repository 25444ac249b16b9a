package adapter

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"github.com/MKhiriev/go-eagle/models"
	"github.com/go-resty/resty/v2"
)

// decodeResponse unwraps the Eagle envelope of resp and returns its raw data
// payload.
func decodeResponse(resp *resty.Response) (json.RawMessage, error) {
	var envelope models.Response
	decodeErr := json.Unmarshal(resp.Body(), &envelope)

	if decodeErr != nil || envelope.Status == "" {
		if err := mapHTTPError(resp); err != nil {
			return nil, err
		}
		if decodeErr != nil {
			return nil, fmt.Errorf("%w: %w", ErrMalformedResponse, decodeErr)
		}
		return nil, fmt.Errorf("%w: missing status", ErrMalformedResponse)
	}

	if !envelope.OK() {
		return nil, &RemoteAPIError{
			Status:     envelope.Status,
			Message:    envelopeMessage(envelope),
			Code:       envelope.CodeText(),
			HTTPStatus: resp.StatusCode(),
		}
	}

	return envelope.Data, nil
}

// envelopeMessage prefers the message field and falls back to a data
// payload that is a plain string.
func envelopeMessage(envelope models.Response) string {
	if envelope.Message != "" {
		return envelope.Message
	}
	var msg string
	if err := json.Unmarshal(envelope.Data, &msg); err == nil {
		return msg
	}
	return ""
}

func mapHTTPError(resp *resty.Response) error {
	if resp.StatusCode() >= http.StatusOK && resp.StatusCode() < http.StatusMultipleChoices {
		return nil
	}

	body := strings.TrimSpace(string(resp.Body()))

	switch resp.StatusCode() {
	case http.StatusBadRequest:
		return fmt.Errorf("%w: %s", ErrBadRequest, body)
	case http.StatusNotFound:
		return fmt.Errorf("%w: %s", ErrNotFound, body)
	case http.StatusMethodNotAllowed:
		return fmt.Errorf("%w: %s", ErrMethodNotAllowed, body)
	case http.StatusInternalServerError:
		return fmt.Errorf("%w: %s", ErrInternalServerError, body)
	default:
		if body == "" {
			body = http.StatusText(resp.StatusCode())
		}
		return fmt.Errorf("http %d: %s", resp.StatusCode(), body)
	}
}
