package utils

import (
	"errors"
	"net/http"
	"petgromee-web/internal/pkg/constvars"
	"petgromee-web/internal/pkg/dto/responses"
	"petgromee-web/internal/pkg/exceptions"
	"sync/atomic"

	"github.com/goccy/go-json"
	"go.uber.org/zap"
)

var exposeDevMessages atomic.Bool

// SetExposeDevMessages controls whether error responses carry dev messages and locations.
// It is set once while bootstrapping from the configured environment.
func SetExposeDevMessages(expose bool) {
	exposeDevMessages.Store(expose)
}

func BuildSuccessResponse(w http.ResponseWriter, code int, message string, data interface{}) {
	response := responses.ResponseDTO{
		Success: true,
		Message: message,
		Data:    data,
	}
	w.Header().Set(constvars.HeaderContentType, constvars.MIMEApplicationJSON)
	w.WriteHeader(code)
	json.NewEncoder(w).Encode(response)
}

func BuildValidationErrorResponse(w http.ResponseWriter, message string, fields map[string]string) {
	response := responses.ResponseDTO{
		Success: false,
		Message: message,
		Errors:  fields,
	}
	w.Header().Set(constvars.HeaderContentType, constvars.MIMEApplicationJSON)
	w.WriteHeader(constvars.StatusUnprocessableEntity)
	json.NewEncoder(w).Encode(response)
}

func BuildErrorResponse(log *zap.Logger, w http.ResponseWriter, err error) {
	code, clientMessage, customErr := ResolveError(log, err)

	w.Header().Set(constvars.HeaderContentType, constvars.MIMEApplicationJSON)
	w.WriteHeader(code)
	response := exceptions.CustomError{
		StatusCode:    code,
		Success:       false,
		ClientMessage: clientMessage,
	}

	if customErr != nil && exposeDevMessages.Load() {
		response.DevMessage = customErr.DevMessage
		response.Locations = customErr.Locations
	}
	json.NewEncoder(w).Encode(response)
}

// ResolveError logs err and returns the status code and client message it maps to.
func ResolveError(log *zap.Logger, err error) (int, string, *exceptions.CustomError) {
	code := constvars.StatusInternalServerError
	clientMessage := constvars.ErrClientSomethingWrongWithApplication

	var customErr *exceptions.CustomError
	if errors.As(err, &customErr) {
		code = customErr.StatusCode
		clientMessage = customErr.ClientMessage
		for _, location := range customErr.Locations {
			location := map[string]interface{}{
				"file":          location.File,
				"line":          location.Line,
				"function_name": location.FunctionName,
			}
			log.Error(customErr.DevMessage,
				zap.Any("location", location),
			)
		}
		return code, clientMessage, customErr
	}

	if err != nil {
		log.Error(err.Error())
	}
	return code, clientMessage, nil
}
