package adapter

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/go-resty/resty/v2"
)

// maxErrorBodyLen caps how much of a failed response body ends up in the
// error message.
const maxErrorBodyLen = 256

var statusErrors = map[int]error{
	http.StatusBadRequest:          ErrBadRequest,
	http.StatusUnauthorized:        ErrUnauthorized,
	http.StatusForbidden:           ErrForbidden,
	http.StatusNotFound:            ErrNotFound,
	http.StatusConflict:            ErrConflict,
	http.StatusInternalServerError: ErrInternalServerError,
	http.StatusBadGateway:          ErrBadGateway,
	http.StatusServiceUnavailable:  ErrServiceUnavailable,
	http.StatusGatewayTimeout:      ErrGatewayTimeout,
}

// mapHTTPError turns a non-2xx persistence service answer into an error
// wrapping the matching sentinel. Unknown statuses keep their code in the
// message.
func mapHTTPError(resp *resty.Response) error {
	status := resp.StatusCode()
	if status >= http.StatusOK && status < http.StatusMultipleChoices {
		return nil
	}

	detail := errorDetail(resp.Body(), status)

	if sentinel, ok := statusErrors[status]; ok {
		return fmt.Errorf("%w: %s", sentinel, detail)
	}

	return fmt.Errorf("http %d: %s", status, detail)
}

func errorDetail(body []byte, status int) string {
	detail := strings.TrimSpace(string(body))
	if detail == "" {
		return http.StatusText(status)
	}
	if len(detail) > maxErrorBodyLen {
		return detail[:maxErrorBodyLen] + "..."
	}
	return detail
}
