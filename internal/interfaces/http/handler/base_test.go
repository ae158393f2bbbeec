package handler

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tokopos/backend/internal/domain/shared"
	"github.com/tokopos/backend/internal/interfaces/http/dto"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func decodeResponse(t *testing.T, w *httptest.ResponseRecorder) dto.Response {
	t.Helper()
	var resp dto.Response
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	return resp
}

func TestBaseHandlerResponses(t *testing.T) {
	h := BaseHandler{}

	t.Run("Success wraps data with success true", func(t *testing.T) {
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)

		h.Success(c, gin.H{"name": "Kopi Susu"})

		assert.Equal(t, http.StatusOK, w.Code)
		resp := decodeResponse(t, w)
		assert.True(t, resp.Success)
		assert.Nil(t, resp.Error)
	})

	t.Run("SuccessWithMeta computes total pages and defaults paging", func(t *testing.T) {
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)

		h.SuccessWithMeta(c, []string{}, 45, 0, 0)

		resp := decodeResponse(t, w)
		require.NotNil(t, resp.Meta)
		assert.Equal(t, int64(45), resp.Meta.Total)
		assert.Equal(t, 1, resp.Meta.Page)
		assert.Equal(t, 20, resp.Meta.PageSize)
		assert.Equal(t, 3, resp.Meta.TotalPages)
	})

	t.Run("Created responds 201", func(t *testing.T) {
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)

		h.Created(c, gin.H{"id": uuid.New()})

		assert.Equal(t, http.StatusCreated, w.Code)
	})

	t.Run("NoContent responds 204 with an empty body", func(t *testing.T) {
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)

		h.NoContent(c)

		assert.Equal(t, http.StatusNoContent, w.Code)
		assert.Empty(t, w.Body.String())
	})

	t.Run("errors carry the request ID", func(t *testing.T) {
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)
		c.Set("request_id", "req-123")

		h.BadRequest(c, "bad input")

		resp := decodeResponse(t, w)
		require.NotNil(t, resp.Error)
		assert.Equal(t, "req-123", resp.Error.RequestID)
	})
}

func TestBaseHandlerHandleDomainError(t *testing.T) {
	h := BaseHandler{}

	t.Run("not found maps to 404", func(t *testing.T) {
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)

		h.HandleDomainError(c, shared.ErrNotFound)

		assert.Equal(t, http.StatusNotFound, w.Code)
		resp := decodeResponse(t, w)
		assert.Equal(t, "NOT_FOUND", resp.Error.Code)
	})

	t.Run("duplicate SKU maps to 400", func(t *testing.T) {
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)

		h.HandleDomainError(c, shared.ErrDuplicateSKU)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		resp := decodeResponse(t, w)
		assert.Equal(t, "DUPLICATE_SKU", resp.Error.Code)
	})

	t.Run("business rule violations map to 400", func(t *testing.T) {
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)

		h.HandleDomainError(c, shared.ErrCategoryCycle)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		resp := decodeResponse(t, w)
		assert.Equal(t, "CATEGORY_CYCLE", resp.Error.Code)
	})

	t.Run("unexpected errors become a 500 without leaking details", func(t *testing.T) {
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)
		c.Request = httptest.NewRequest("GET", "/boom", nil)

		h.HandleDomainError(c, assert.AnError)

		assert.Equal(t, http.StatusInternalServerError, w.Code)
		resp := decodeResponse(t, w)
		assert.NotContains(t, resp.Error.Message, assert.AnError.Error())
	})
}

func TestBaseHandlerParseIDParam(t *testing.T) {
	h := BaseHandler{}

	t.Run("parses a valid UUID", func(t *testing.T) {
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)
		want := uuid.New()
		c.Params = gin.Params{{Key: "id", Value: want.String()}}

		got, ok := h.parseIDParam(c, "id")

		assert.True(t, ok)
		assert.Equal(t, want, got)
	})

	t.Run("replies 400 for a malformed UUID", func(t *testing.T) {
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)
		c.Params = gin.Params{{Key: "id", Value: "not-a-uuid"}}

		_, ok := h.parseIDParam(c, "id")

		assert.False(t, ok)
		assert.Equal(t, http.StatusBadRequest, w.Code)
		resp := decodeResponse(t, w)
		assert.Contains(t, resp.Error.Message, "id")
	})
}
