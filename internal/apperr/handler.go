package apperr

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/labstack/echo/v4"
)

type ErrorBody struct {
	Error string `json:"error"`
	Title string `json:"title,omitempty"`
}

func GlobalErrorHandler() echo.HTTPErrorHandler {
	return func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}

		status, body := Classify(err)
		if status == http.StatusInternalServerError {
			slog.Error("Unhandled error", "error", err, "uri", c.Request().RequestURI)
		}
		_ = c.JSON(status, body)
	}
}

// Classify maps an error chain to an HTTP status and response body.
func Classify(err error) (int, ErrorBody) {
	var (
		nf *ConfigNotFoundError
		cm *ConfigMalformedError
		ic *InsufficientColumnsError
		ea *EmptyAssessmentColumnError
		ii *InvalidInputError
		ve *ValidationError
		ue *UpstreamError
		he *echo.HTTPError
	)

	switch {
	case errors.As(err, &nf):
		return http.StatusNotFound, ErrorBody{Error: nf.Error(), Title: "config not found"}
	case errors.As(err, &cm):
		return http.StatusUnprocessableEntity, ErrorBody{Error: cm.Error(), Title: "config malformed"}
	case errors.As(err, &ic):
		return http.StatusUnprocessableEntity, ErrorBody{Error: ic.Error(), Title: "insufficient columns"}
	case errors.As(err, &ea):
		return http.StatusUnprocessableEntity, ErrorBody{Error: ea.Error(), Title: "empty assessment column"}
	case errors.As(err, &ii):
		return http.StatusBadRequest, ErrorBody{Error: ii.Error(), Title: "invalid input"}
	case errors.As(err, &ve):
		return http.StatusBadRequest, ErrorBody{Error: ve.Message, Title: "validation error"}
	case errors.As(err, &ue):
		return http.StatusBadGateway, ErrorBody{Error: ue.Error(), Title: "upstream error"}
	case errors.As(err, &he):
		return he.Code, ErrorBody{Error: fmt.Sprintf("%v", he.Message)}
	default:
		return http.StatusInternalServerError, ErrorBody{Error: "internal server error"}
	}
}
