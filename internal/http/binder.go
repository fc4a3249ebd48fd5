package http

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"
)

// jsonBinder decodes the request body as exactly one JSON value.
// Anything but whitespace after that value is a bad request.
type jsonBinder struct{}

func (jsonBinder) Bind(i interface{}, c echo.Context) error {
	req := c.Request()
	if req.ContentLength == 0 {
		return nil
	}

	if !strings.HasPrefix(req.Header.Get(echo.HeaderContentType), echo.MIMEApplicationJSON) {
		return echo.ErrUnsupportedMediaType
	}

	dec := json.NewDecoder(req.Body)
	if err := dec.Decode(i); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error()).SetInternal(err)
	}

	var extra json.RawMessage
	if err := dec.Decode(&extra); !errors.Is(err, io.EOF) {
		return echo.NewHTTPError(http.StatusBadRequest, "unexpected data after JSON body")
	}
	return nil
}
