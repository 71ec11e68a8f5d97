package response

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func record(t *testing.T, write func(c *gin.Context)) (*httptest.ResponseRecorder, Envelope) {
	t.Helper()
	gin.SetMode(gin.TestMode)
	recorder := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(recorder)
	write(c)

	var envelope Envelope
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &envelope))
	return recorder, envelope
}

func TestKindStatusMapping(t *testing.T) {
	cases := map[Kind]int{
		KindValidation:   http.StatusBadRequest,
		KindNotFound:     http.StatusNotFound,
		KindUnauthorized: http.StatusUnauthorized,
		KindForbidden:    http.StatusForbidden,
		KindConflict:     http.StatusConflict,
		KindInternal:     http.StatusInternalServerError,
	}
	for kind, status := range cases {
		recorder, envelope := record(t, func(c *gin.Context) {
			Fail(c, kind, "failed", "details")
		})
		assert.Equal(t, status, recorder.Code)
		assert.False(t, envelope.Success)
		assert.Equal(t, "failed", envelope.Title)
	}
}

func TestFromErrorPreservesKind(t *testing.T) {
	recorder, envelope := record(t, func(c *gin.Context) {
		FromError(c, NewError(KindConflict, "Already Paid", "order is settled"))
	})
	assert.Equal(t, http.StatusConflict, recorder.Code)
	assert.Equal(t, "Already Paid", envelope.Title)
	assert.Equal(t, "order is settled", envelope.Description)
}

func TestFromErrorWrapsUnexpected(t *testing.T) {
	recorder, envelope := record(t, func(c *gin.Context) {
		FromError(c, errors.New("connection refused"))
	})
	assert.Equal(t, http.StatusInternalServerError, recorder.Code)
	assert.Equal(t, "Something went wrong", envelope.Title)
	assert.Equal(t, "connection refused", envelope.ExceptionMessage)
}

func TestOKEnvelope(t *testing.T) {
	recorder, envelope := record(t, func(c *gin.Context) {
		OK(c, "Cart retrieved", gin.H{"id": 1})
	})
	assert.Equal(t, http.StatusOK, recorder.Code)
	assert.True(t, envelope.Success)
	assert.Equal(t, "Cart retrieved", envelope.Title)
	assert.NotNil(t, envelope.Content)
}
