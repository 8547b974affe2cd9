package borrows

import (
	"errors"
	"fmt"
	"net/http"

	"AMS-backend/internal/platform/upstream"
)

type DomainError struct {
	Code    string
	Message string
}

func (e *DomainError) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// 共通エラーコード（必要に応じて追加）
const (
	ErrCodeNotFound        = "NOT_FOUND"
	ErrCodeInvalidArgument = "INVALID_ARGUMENT"
	ErrCodeUpstream        = "UPSTREAM"
	ErrCodeInternal        = "INTERNAL"
)

func NewNotFoundError(msg string) error {
	return &DomainError{Code: ErrCodeNotFound, Message: msg}
}

func NewInvalidArgumentError(msg string) error {
	return &DomainError{Code: ErrCodeInvalidArgument, Message: msg}
}

// NewUpstreamError は upstream から抽出済みの文言をそのまま載せる。
func NewUpstreamError(err error) error {
	var ue *upstream.Error
	if errors.As(err, &ue) {
		return &DomainError{Code: ErrCodeUpstream, Message: ue.Message}
	}
	return &DomainError{Code: ErrCodeUpstream, Message: err.Error()}
}

func ToHTTPStatus(err error) int {
	var de *DomainError
	if errors.As(err, &de) {
		switch de.Code {
		case ErrCodeNotFound:
			return http.StatusNotFound
		case ErrCodeInvalidArgument:
			return http.StatusBadRequest
		case ErrCodeUpstream:
			return http.StatusBadGateway
		}
	}
	return http.StatusInternalServerError
}
