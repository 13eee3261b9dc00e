package api

import (
	"github.com/helpconnect/helpconnect-api/external/geocoding"
	"github.com/helpconnect/helpconnect-api/feed"
	"github.com/helpconnect/helpconnect-api/store"
)

var (
	errorMessageMap = map[int64]string{
		999:  "internal server error",
		1000: "invalid credentials",
		1001: "invalid authorization format",
		1003: "invalid token",

		1010: "invalid parameters",
		1011: "cannot parse request",

		1100: store.ErrAccountTaken.Error(),
		1101: store.ErrAccountNotFound.Error(),

		1200: store.ErrRequestNotExist.Error(),
		1201: feed.ErrInvalidUrgency.Error(),
		1202: feed.ErrInvalidStatus.Error(),
		1203: feed.ErrInvalidCategory.Error(),
		1204: geocoding.ErrNotFound.Error(),

		1300: store.ErrMessageNotExist.Error(),
	}

	errorInternalServer             = errorJSON(999)
	errorInvalidCredentials         = errorJSON(1000)
	errorInvalidAuthorizationFormat = errorJSON(1001)
	errorInvalidToken               = errorJSON(1003)

	errorInvalidParameters  = errorJSON(1010)
	errorCannotParseRequest = errorJSON(1011)

	errorAccountTaken    = errorJSON(1100)
	errorAccountNotFound = errorJSON(1101)

	errorRequestNotExist     = errorJSON(1200)
	errorInvalidUrgency      = errorJSON(1201)
	errorInvalidStatus       = errorJSON(1202)
	errorInvalidCategory     = errorJSON(1203)
	errorLocationNotResolved = errorJSON(1204)

	errorMessageNotExist = errorJSON(1300)
)

type ErrorResponse struct {
	Code    int64  `json:"code"`
	Message string `json:"message"`
}

// errorJSON converts an error code to a standardized error object
func errorJSON(code int64) ErrorResponse {
	var message string
	if msg, ok := errorMessageMap[code]; ok {
		message = msg
	} else {
		message = "unknown"
	}

	return ErrorResponse{
		Code:    code,
		Message: message,
	}
}
