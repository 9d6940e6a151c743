package middleware

import (
	"context"

	"github.com/gin-gonic/gin"
)

// companyIDKey stores the authenticated company's ID in the request context.
const companyIDKey = contextKey("companyID")

// WithCompanyID returns a copy of ctx carrying the company ID.
func WithCompanyID(ctx context.Context, companyID string) context.Context {
	return context.WithValue(ctx, companyIDKey, companyID)
}

// GetCompanyIDFromContext retrieves the authenticated company ID from the Gin
// context, checking the request context as well.
func GetCompanyIDFromContext(c *gin.Context) (string, bool) {
	if val, exists := c.Get(string(companyIDKey)); exists {
		companyID, ok := val.(string)
		return companyID, ok && companyID != ""
	}
	companyID, ok := c.Request.Context().Value(companyIDKey).(string)
	return companyID, ok && companyID != ""
}
