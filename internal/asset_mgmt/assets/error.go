package assets

import (
	"errors"
	"fmt"
	"net/http"

	"AMS-backend/internal/platform/upstream"
)

type Code string

const (
	CodeInvalidArgument Code = "INVALID_ARGUMENT"
	CodeUpstream        Code = "UPSTREAM"
	CodeInternal        Code = "INTERNAL"
)

type APIError struct {
	Code    Code
	Message string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func toHTTPStatus(err error) int {
	var api *APIError
	if errors.As(err, &api) {
		switch api.Code {
		case CodeInvalidArgument:
			return http.StatusBadRequest
		case CodeUpstream:
			return http.StatusBadGateway
		}
	}
	return http.StatusInternalServerError
}

// upstream のエラーは文言を保ったままドメインエラーへ包む
func wrapUpstream(err error) error {
	var ue *upstream.Error
	if errors.As(err, &ue) {
		return &APIError{Code: CodeUpstream, Message: ue.Message}
	}
	return &APIError{Code: CodeUpstream, Message: err.Error()}
}
