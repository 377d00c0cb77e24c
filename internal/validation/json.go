package validation

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/deppfellow/courses/internal/errs"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// StrictBody marks payloads whose JSON body may only carry the fields the
// payload declares. Any other key is rejected with a 400.
type StrictBody interface {
	StrictBody()
}

// JSONSerializer is Echo's default serializer with unknown-field checks
// for StrictBody payloads.
type JSONSerializer struct {
	echo.DefaultJSONSerializer
}

// Deserialize decodes the request body into i. Errors come back as
// *echo.HTTPError so the binder hands them on unchanged.
func (s JSONSerializer) Deserialize(c echo.Context, i interface{}) error {
	dec := json.NewDecoder(c.Request().Body)
	if _, ok := i.(StrictBody); ok {
		dec.DisallowUnknownFields()
	}

	if err := dec.Decode(i); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, jsonErrorMessage(err)).SetInternal(err)
	}
	return nil
}

// DecodeStrict decodes data into v, rejecting keys v does not declare.
// Failures are 400 *errs.HTTPError values carrying the same messages the
// binder produces.
func DecodeStrict(data []byte, v interface{}) error {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()

	if err := dec.Decode(v); err != nil {
		return errs.NewBadRequestError(jsonErrorMessage(err), false, nil, nil)
	}
	return nil
}

func jsonErrorMessage(err error) string {
	if field, ok := unknownField(err); ok {
		return fmt.Sprintf("%q is not allowed", field)
	}

	var typeErr *json.UnmarshalTypeError
	if errors.As(err, &typeErr) {
		return fmt.Sprintf(
			"Unmarshal type error: expected=%v, got=%v, field=%v, offset=%v",
			typeErr.Type, typeErr.Value, typeErr.Field, typeErr.Offset,
		)
	}

	var syntaxErr *json.SyntaxError
	if errors.As(err, &syntaxErr) {
		return fmt.Sprintf("Syntax error: offset=%v, error=%v", syntaxErr.Offset, syntaxErr.Error())
	}

	return err.Error()
}

// unknownField extracts the key from encoding/json's
// `json: unknown field "foo"` error, which has no typed form.
func unknownField(err error) (string, bool) {
	rest, ok := strings.CutPrefix(err.Error(), "json: unknown field ")
	if !ok {
		return "", false
	}

	field, err := strconv.Unquote(rest)
	if err != nil {
		return rest, true
	}
	return field, true
}
