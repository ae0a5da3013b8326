package util

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"lingo_backend/pkg/logger"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

func init() {
	gin.SetMode(gin.TestMode)
	logger.Log = zap.NewNop()
}

func testContext() (*gin.Context, *httptest.ResponseRecorder) {
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/", nil)
	return c, w
}

func TestSuccess_RawPayload(t *testing.T) {
	c, w := testContext()
	Success(c, gin.H{"xp": 120, "level": 2})

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"xp":120,"level":2}`, w.Body.String())
}

func TestCreated(t *testing.T) {
	c, w := testContext()
	Created(c, gin.H{"id": 1})

	assert.Equal(t, http.StatusCreated, w.Code)
	assert.JSONEq(t, `{"id":1}`, w.Body.String())
}

func TestErrorShapes(t *testing.T) {
	c, w := testContext()
	BadRequest(c, "User already exists")
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.JSONEq(t, `{"error":"User already exists"}`, w.Body.String())

	c, w = testContext()
	Unauthorized(c, "Invalid credentials")
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.JSONEq(t, `{"error":"Invalid credentials"}`, w.Body.String())

	c, w = testContext()
	NotFound(c, "User not found")
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.JSONEq(t, `{"error":"User not found"}`, w.Body.String())

	c, w = testContext()
	Forbidden(c)
	assert.Equal(t, http.StatusForbidden, w.Code)
	assert.JSONEq(t, `{"error":"Forbidden"}`, w.Body.String())
}

func TestServerError_GenericMessage(t *testing.T) {
	c, w := testContext()
	LogServerError(c, errors.New("dial tcp: connection refused"))

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	// 内部错误详情不外泄
	assert.JSONEq(t, `{"error":"Server error"}`, w.Body.String())
}
