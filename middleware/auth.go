package middleware

import (
	"net/http"
	"strings"

	"dermacare/utils"

	"github.com/gin-gonic/gin"
)

// ContextPatientID is the gin context key carrying the resolved caller id.
const ContextPatientID = "patientID"

func bearerPatientID(c *gin.Context) string {
	authHeader := c.GetHeader("Authorization")
	if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
		return ""
	}
	tokenString := strings.TrimPrefix(authHeader, "Bearer ")
	if tokenString == "" {
		return ""
	}
	patientID, err := utils.ExtractIDFromToken(tokenString)
	if err != nil {
		return ""
	}
	return patientID
}

// AuthRequired rejects requests without a resolvable patient identity.
func AuthRequired() gin.HandlerFunc {
	return func(c *gin.Context) {
		patientID := bearerPatientID(c)
		if patientID == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"success": false,
				"message": "Authentication required",
			})
			return
		}
		c.Set(ContextPatientID, patientID)
		c.Next()
	}
}

// AuthOptional resolves the patient identity when a valid token is present
// and continues anonymously otherwise. Handlers decide what anonymous
// callers see.
func AuthOptional() gin.HandlerFunc {
	return func(c *gin.Context) {
		if patientID := bearerPatientID(c); patientID != "" {
			c.Set(ContextPatientID, patientID)
		}
		c.Next()
	}
}

// PatientID returns the resolved caller id, or "" for anonymous requests.
func PatientID(c *gin.Context) string {
	id, _ := c.Get(ContextPatientID)
	s, _ := id.(string)
	return s
}
