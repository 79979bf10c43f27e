package server

import (
	"fmt"
	"net/http"
	"strings"
)

type ErrorKind int

const (
	MissingFile ErrorKind = iota
	NoFileSelected
	UnsupportedType
	PayloadTooLarge
	ProcessingError
	NotFound
	InternalError
)

// apiError 带类型标签的请求失败，handler 据此决定状态码和响应体
type apiError struct {
	kind    ErrorKind
	message string
	details string
}

func (e *apiError) Error() string {
	if e.details != "" {
		return fmt.Sprintf("%s: %s", e.message, e.details)
	}
	return e.message
}

func (e *apiError) status() int {
	switch e.kind {
	case MissingFile, NoFileSelected, UnsupportedType:
		return http.StatusBadRequest
	case PayloadTooLarge:
		return http.StatusRequestEntityTooLarge
	case NotFound:
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}

func errMissingFile() *apiError {
	return &apiError{kind: MissingFile, message: "No image file provided"}
}

func errNoFileSelected() *apiError {
	return &apiError{kind: NoFileSelected, message: "No image selected"}
}

func errUnsupportedType(allowed []string) *apiError {
	return &apiError{
		kind:    UnsupportedType,
		message: fmt.Sprintf("File type not allowed. Supported types: %s", strings.Join(allowed, ", ")),
	}
}

func errPayloadTooLarge(maxMB int64) *apiError {
	return &apiError{
		kind:    PayloadTooLarge,
		message: fmt.Sprintf("File too large. Maximum size is %dMB", maxMB),
	}
}

func errProcessing(err error) *apiError {
	return &apiError{kind: ProcessingError, message: "Failed to process image", details: err.Error()}
}
