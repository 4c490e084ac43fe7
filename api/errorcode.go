package api

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/nicksnyder/go-i18n/v2/i18n"

	"github.com/sacavia/sacavia-api/utils"
)

const (
	codeValidation   = "VALIDATION_ERROR"
	codeAuthRequired = "AUTH_REQUIRED"
	codeNotFound     = "NOT_FOUND"
	codeServerError  = "SERVER_ERROR"
)

var (
	errorMessageMap = map[string]string{
		codeValidation:   "error.validation",
		codeAuthRequired: "error.auth_required",
		codeNotFound:     "error.not_found",
		codeServerError:  "error.server",
	}

	errorStatusMap = map[string]int{
		codeValidation:   http.StatusBadRequest,
		codeAuthRequired: http.StatusUnauthorized,
		codeNotFound:     http.StatusNotFound,
		codeServerError:  http.StatusInternalServerError,
	}
)

var errInvalidAccount = fmt.Errorf("invalid account in request context")

type ErrorResponse struct {
	Success bool   `json:"success"`
	Error   string `json:"error"`
	Code    string `json:"code"`
}

// errorJSON converts an error code to a standardized error object, with the
// message localized for the request
func errorJSON(c *gin.Context, code string) ErrorResponse {
	messageID, ok := errorMessageMap[code]
	if !ok {
		code = codeServerError
		messageID = errorMessageMap[codeServerError]
	}

	return ErrorResponse{
		Success: false,
		Error:   utils.Localize(localizer(c), messageID, nil),
		Code:    code,
	}
}

// errorMessage builds an error object for a code with a specific message
func errorMessage(code, message string) ErrorResponse {
	return ErrorResponse{
		Success: false,
		Error:   message,
		Code:    code,
	}
}

func errorStatus(code string) int {
	if status, ok := errorStatusMap[code]; ok {
		return status
	}
	return http.StatusInternalServerError
}

func localizer(c *gin.Context) *i18n.Localizer {
	return utils.NewLocalizer(c.GetHeader("Accept-Language"))
}

func localize(c *gin.Context, messageID string) string {
	return utils.Localize(localizer(c), messageID, nil)
}
