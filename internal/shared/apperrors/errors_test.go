package apperrors

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHTTPStatus(t *testing.T) {
	tests := []struct {
		name   string
		err    error
		status int
	}{
		{"validation maps to 400", Validation("bad input"), http.StatusBadRequest},
		{"not found maps to 404", NotFound("thing %d", 7), http.StatusNotFound},
		{"conflict maps to 409", Conflict("seat taken"), http.StatusConflict},
		{"forbidden maps to 403", Forbidden("not yours"), http.StatusForbidden},
		{"unclassified maps to 500", errors.New("boom"), http.StatusInternalServerError},
		{"nil maps to 500", nil, http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.status, HTTPStatus(tt.err))
		})
	}
}

func TestWrappingSurvivesFurtherWrapping(t *testing.T) {
	err := fmt.Errorf("ticket 3: %w", Conflict("seat already booked"))

	assert.ErrorIs(t, err, ErrConflict)
	assert.Equal(t, http.StatusConflict, HTTPStatus(err))
	assert.Contains(t, err.Error(), "seat already booked")
}

func TestMessageFormatting(t *testing.T) {
	err := NotFound("schedule %s", "abc")
	assert.Equal(t, "schedule abc: not found", err.Error())
}
