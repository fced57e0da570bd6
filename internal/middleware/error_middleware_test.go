package middleware

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kaan/uniforum/internal/app/models/dto"
	"github.com/kaan/uniforum/internal/pkg/apperrors"
)

func responseFor(t *testing.T, err error) *httptest.ResponseRecorder {
	t.Helper()
	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/test", nil)
	HandleAPIError(c, err)
	return w
}

func TestHandleAPIError_StatusMapping(t *testing.T) {
	cases := []struct {
		name string
		err  error
		want int
	}{
		{"permission denied", apperrors.ErrPermissionDenied, http.StatusForbidden},
		{"wrapped forbidden", apperrors.NewForbiddenError("only students can upvote answers"), http.StatusForbidden},
		{"faculty not assigned", apperrors.ErrFacultyNotAssigned, http.StatusForbidden},
		{"question not found", apperrors.ErrQuestionNotFound, http.StatusNotFound},
		{"answer not found", apperrors.ErrAnswerNotFound, http.StatusNotFound},
		{"subject not found", apperrors.ErrSubjectNotFound, http.StatusNotFound},
		{"validation", apperrors.NewValidationError("title must not be empty"), http.StatusBadRequest},
		{"subject outside department", apperrors.ErrSubjectNotInDepartment, http.StatusBadRequest},
		{"already voted", apperrors.ErrAlreadyVoted, http.StatusConflict},
		{"no department", apperrors.ErrNoDepartment, http.StatusUnprocessableEntity},
		{"username taken", apperrors.ErrUsernameAlreadyExists, http.StatusConflict},
		{"bad credentials", apperrors.ErrInvalidCredentials, http.StatusUnauthorized},
		{"expired token", apperrors.ErrTokenExpired, http.StatusUnauthorized},
		{"unknown", errors.New("boom"), http.StatusInternalServerError},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			w := responseFor(t, tc.err)
			assert.Equal(t, tc.want, w.Code)
		})
	}
}

func TestHandleAPIError_AlreadyVotedUsesVoteShape(t *testing.T) {
	w := responseFor(t, apperrors.ErrAlreadyVoted)

	var resp dto.UpvoteResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.False(t, resp.Success)
	assert.Equal(t, apperrors.ErrAlreadyVoted.Error(), resp.Message)
}

func TestHandleAPIError_UnknownHidesDetails(t *testing.T) {
	w := responseFor(t, errors.New("pgx: connection refused"))

	var resp dto.ErrorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.NotNil(t, resp.Error)
	assert.NotContains(t, resp.Error.Message, "pgx")
}
