// README: Base handler utilities (JSON helpers, error mapping, validation detail).
package handlers

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"

	"travelplanner/internal/planner"
)

// detailResponse is the body of every error response.
type detailResponse struct {
	Detail any `json:"detail"`
}

// fieldError is one entry of a 422 validation detail list.
type fieldError struct {
	Loc  []string `json:"loc"`
	Msg  string   `json:"msg"`
	Type string   `json:"type"`
}

func writeJSON(c *gin.Context, status int, v any) {
	c.JSON(status, v)
}

func writeDetail(c *gin.Context, status int, detail any) {
	writeJSON(c, status, detailResponse{Detail: detail})
}

// writeBindError answers a request whose body could not be bound to the target type.
func writeBindError(c *gin.Context, err error) {
	writeDetail(c, http.StatusUnprocessableEntity, validationDetail(err))
}

func writePlanError(c *gin.Context, err error) {
	var upstream *planner.UpstreamError
	switch {
	case errors.As(err, &upstream):
		writeDetail(c, upstream.StatusCode(), upstream.Detail())
	case errors.Is(err, planner.ErrInvalidRequest):
		writeDetail(c, http.StatusUnprocessableEntity, []fieldError{{
			Loc:  []string{"body"},
			Msg:  err.Error(),
			Type: "value_error",
		}})
	default:
		writeDetail(c, http.StatusInternalServerError, "internal error")
	}
}

func validationDetail(err error) []fieldError {
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) {
		out := make([]fieldError, 0, len(verrs))
		for _, fe := range verrs {
			out = append(out, fieldError{
				Loc:  []string{"body", fe.Field()},
				Msg:  validationMessage(fe),
				Type: "value_error." + fe.Tag(),
			})
		}
		return out
	}

	var typeErr *json.UnmarshalTypeError
	if errors.As(err, &typeErr) {
		loc := []string{"body"}
		if typeErr.Field != "" {
			loc = append(loc, typeErr.Field)
		}
		return []fieldError{{
			Loc:  loc,
			Msg:  fmt.Sprintf("expected %s, got %s", typeErr.Type, typeErr.Value),
			Type: "type_error",
		}}
	}

	if errors.Is(err, io.EOF) {
		return []fieldError{{Loc: []string{"body"}, Msg: "request body is required", Type: "value_error.missing"}}
	}
	return []fieldError{{Loc: []string{"body"}, Msg: "invalid JSON body: " + err.Error(), Type: "value_error.jsondecode"}}
}

func validationMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "field required"
	case "gt":
		return "must be greater than " + fe.Param()
	default:
		return fmt.Sprintf("failed %q validation", fe.Tag())
	}
}
