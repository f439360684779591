package errors

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var errSoldOut = errors.New("sold out")

func serve(t *testing.T, r *Responder, err error) (*httptest.ResponseRecorder, ProblemDetail) {
	t.Helper()
	gin.SetMode(gin.TestMode)
	engine := gin.New()
	engine.GET("/api/cart", func(c *gin.Context) {
		c.Set(requestIDKey, "req-1")
		r.RespondError(c, err)
	})
	rec := httptest.NewRecorder()
	engine.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/cart", nil))

	var problem ProblemDetail
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &problem))
	return rec, problem
}

func TestResponder_MapperWins(t *testing.T) {
	r := NewResponder(func(err error) (ProblemDetail, bool) {
		if errors.Is(err, errSoldOut) {
			return ErrConflict.WithDetail(err.Error()), true
		}
		return ProblemDetail{}, false
	})

	rec, problem := serve(t, r, fmt.Errorf("increment: %w", errSoldOut))
	assert.Equal(t, http.StatusConflict, rec.Code)
	assert.Equal(t, ContentTypeProblemJSON, rec.Header().Get("Content-Type"))
	assert.Equal(t, TypeConflict, problem.Type)
	assert.Equal(t, "increment: sold out", problem.Detail)
	assert.Equal(t, "/api/cart", problem.Instance)
	assert.Equal(t, "req-1", problem.RequestID)
}

func TestResponder_Fallbacks(t *testing.T) {
	rec, problem := serve(t, DefaultResponder, errors.New("boom"))
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Equal(t, "boom", problem.Detail)

	store := DefaultResponder.WithFallback(func(err error) ProblemDetail {
		return NewDataStoreProblem(err.Error())
	})
	rec, problem = serve(t, store, errors.New(`relation "products" does not exist`))
	assert.Equal(t, http.StatusBadGateway, rec.Code)
	assert.Equal(t, `relation "products" does not exist`, problem.Detail)

	// the copy must not change the original
	assert.Equal(t, http.StatusInternalServerError, DefaultResponder.Problem(errors.New("x")).Status)
}

func TestResponder_PassesProblemThrough(t *testing.T) {
	rec, problem := serve(t, DefaultResponder, NewValidationProblem(map[string]string{"quantity": "required"}))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, TypeValidation, problem.Type)
	assert.Equal(t, map[string]any{"fields": map[string]any{"quantity": "required"}}, problem.Extensions)
}

func TestWithExtension_DoesNotShareMap(t *testing.T) {
	base := ErrValidation.WithExtension("a", 1)
	_ = base.WithExtension("b", 2)
	assert.Len(t, base.Extensions, 1)
	assert.Nil(t, ErrValidation.Extensions)
}
