package handlers

import (
	"net/http"
	"strconv"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
)

var validate = validator.New()

func atoiOr(s string, def int) int {
	if s == "" {
		return def
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return def
	}
	return n
}

// clampLimit keeps list endpoints from returning unbounded result sets.
func clampLimit(n, def, max int) int {
	if n <= 0 {
		return def
	}
	if n > max {
		return max
	}
	return n
}

// termList expands the term query value: 1-4 select one term, anything
// else means all of terms 1-4 combined.
func termList(term int) []int {
	if term >= 1 && term <= 4 {
		return []int{term}
	}
	return []int{1, 2, 3, 4}
}

// validationError renders validator failures as a field map, 422.
func validationError(err error) error {
	fields := map[string]string{}
	if verrs, ok := err.(validator.ValidationErrors); ok {
		for _, fe := range verrs {
			fields[fe.Field()] = fe.Tag()
		}
	}
	return echo.NewHTTPError(http.StatusUnprocessableEntity, map[string]any{
		"error":  "VALIDATION_ERROR",
		"fields": fields,
	})
}
