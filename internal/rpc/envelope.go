package rpc

import (
	"encoding/json"
	"net/http"

	"todo-list/internal/errors"
	"todo-list/internal/validation"
)

// Error codes carried in the error envelope.
const (
	CodeBadRequest         = "BAD_REQUEST"
	CodeNotFound           = "NOT_FOUND"
	CodeMethodNotSupported = "METHOD_NOT_SUPPORTED"
	CodeTimeout            = "TIMEOUT"
	CodeInternal           = "INTERNAL_SERVER_ERROR"
)

const internalMessage = "Internal server error"

// SuccessEnvelope is the body of a 200 response: {"result":{"data":...}}.
type SuccessEnvelope struct {
	Result ResultBody `json:"result"`
}

// ResultBody holds the procedure output.
type ResultBody struct {
	Data json.RawMessage `json:"data"`
}

// ErrorEnvelope is the body of a failed call.
type ErrorEnvelope struct {
	Error ErrorBody `json:"error"`
}

// ErrorBody describes a failure.
type ErrorBody struct {
	Message string    `json:"message"`
	Code    string    `json:"code"`
	Data    ErrorData `json:"data"`
}

// ErrorData carries the machine-readable detail of a failure.
type ErrorData struct {
	Code        string              `json:"code"`
	HTTPStatus  int                 `json:"httpStatus"`
	Procedure   string              `json:"procedure,omitempty"`
	FieldErrors map[string][]string `json:"fieldErrors,omitempty"`
}

// newErrorEnvelope classifies err into a status and envelope. Store failures
// and anything unrecognised are reported without their cause.
func newErrorEnvelope(procedure string, err error) (int, ErrorEnvelope) {
	status, code, message := classify(err)

	body := ErrorBody{
		Message: message,
		Code:    code,
		Data: ErrorData{
			Code:       code,
			HTTPStatus: status,
			Procedure:  procedure,
		},
	}
	if status == http.StatusBadRequest {
		if ve, ok := validation.AsValidationError(err); ok {
			body.Data.FieldErrors = ve.FieldMessages()
		}
	}
	return status, ErrorEnvelope{Error: body}
}

func classify(err error) (int, string, string) {
	appErr, ok := errors.AsAppError(err)
	if !ok {
		if ve, isValidation := validation.AsValidationError(err); isValidation {
			return http.StatusBadRequest, CodeBadRequest, ve.GetUserFriendlyMessage()
		}
		return http.StatusInternalServerError, CodeInternal, internalMessage
	}

	switch appErr.Type {
	case errors.ErrorTypeValidation, errors.ErrorTypeInvalidInput:
		return http.StatusBadRequest, CodeBadRequest, appErr.Message
	case errors.ErrorTypeNotFound:
		return http.StatusNotFound, CodeNotFound, appErr.Message
	case errors.ErrorTypeMethodNotSupported:
		return http.StatusMethodNotAllowed, CodeMethodNotSupported, appErr.Message
	case errors.ErrorTypeTimeout:
		return http.StatusRequestTimeout, CodeTimeout, errors.GetUserMessage(appErr)
	default:
		return http.StatusInternalServerError, CodeInternal, internalMessage
	}
}
