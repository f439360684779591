package errors

import (
	"errors"

	"github.com/gin-gonic/gin"
)

// ContentTypeProblemJSON is the media type of every problem response.
const ContentTypeProblemJSON = "application/problem+json"

// requestIDKey matches the gin key the request-id middleware sets.
const requestIDKey = "X-Request-ID"

// ErrorMapper turns a domain error into a problem, reporting whether it matched.
type ErrorMapper func(err error) (ProblemDetail, bool)

// Responder writes problem documents. Errors go through the mappers in
// order; the first match wins and anything unmatched goes to the fallback.
type Responder struct {
	mappers  []ErrorMapper
	fallback func(error) ProblemDetail
}

// NewResponder builds a responder whose fallback is a 500 problem.
func NewResponder(mappers ...ErrorMapper) *Responder {
	return &Responder{mappers: mappers, fallback: internalProblem}
}

// DefaultResponder has no mappers.
var DefaultResponder = NewResponder()

// WithFallback returns a copy that uses fallback for unmapped errors.
func (r *Responder) WithFallback(fallback func(error) ProblemDetail) *Responder {
	cp := *r
	if fallback == nil {
		fallback = internalProblem
	}
	cp.fallback = fallback
	return &cp
}

// Respond aborts the request with problem.
func (r *Responder) Respond(c *gin.Context, problem ProblemDetail) {
	if problem.Instance == "" {
		problem.Instance = c.Request.URL.Path
	}
	if problem.RequestID == "" {
		problem.RequestID = c.GetString(requestIDKey)
	}
	c.Header("Content-Type", ContentTypeProblemJSON)
	c.AbortWithStatusJSON(problem.Status, problem)
}

// RespondError maps err and responds. A nil err writes nothing.
func (r *Responder) RespondError(c *gin.Context, err error) {
	if err == nil {
		return
	}
	r.Respond(c, r.Problem(err))
}

// Problem resolves err without writing anything.
func (r *Responder) Problem(err error) ProblemDetail {
	var problem ProblemDetail
	if errors.As(err, &problem) {
		return problem
	}
	for _, mapper := range r.mappers {
		if problem, ok := mapper(err); ok {
			return problem
		}
	}
	return r.fallback(err)
}

func (r *Responder) BadRequest(c *gin.Context, detail string) {
	r.Respond(c, ErrBadRequest.WithDetail(detail))
}

func (r *Responder) ValidationFailed(c *gin.Context, fieldErrors map[string]string) {
	r.Respond(c, NewValidationProblem(fieldErrors))
}

func (r *Responder) Unauthorized(c *gin.Context, detail string) {
	r.Respond(c, ErrUnauthorized.WithDetail(detail))
}

func internalProblem(err error) ProblemDetail {
	return ErrInternal.WithDetail(err.Error())
}
