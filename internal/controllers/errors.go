package controllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"myfinances-be/internal/service"
)

// respondServiceError maps service errors onto HTTP responses. Business
// failures (validation, rules, auth, not-found) answer 400 with their
// message; anything else is an internal error.
func respondServiceError(c *gin.Context, err error) {
	var (
		validationErr *service.ValidationError
		businessErr   *service.BusinessRuleError
		authErr       *service.AuthenticationError
		notFoundErr   *service.NotFoundError
	)

	switch {
	case errors.As(err, &validationErr),
		errors.As(err, &businessErr),
		errors.As(err, &authErr),
		errors.As(err, &notFoundErr):
		c.JSON(http.StatusBadRequest, gin.H{
			"error": err.Error(),
		})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": err.Error(),
		})
	}
}
