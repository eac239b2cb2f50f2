package middlewares

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/yeremiapane/ranahan-restaurant/models"
	"github.com/yeremiapane/ranahan-restaurant/utils"
)

const LoginPage = "/index.html"

// pagePrefixes -> folder halaman dan role yang boleh membukanya
var pagePrefixes = map[string]string{
	"/manager":  models.RoleManager,
	"/staff":    models.RoleStaff,
	"/moniter":  models.RoleMonitor,
	"/customer": models.RoleCustomer,
}

// RequiredRole -> role untuk path halaman, "" jika halaman publik
func RequiredRole(path string) string {
	for prefix, role := range pagePrefixes {
		if path == prefix || strings.HasPrefix(path, prefix+"/") || strings.HasPrefix(path, prefix+".") {
			return role
		}
	}
	return ""
}

// SessionGate redirect ke halaman login bila sesi tidak ada atau role tidak cocok
func SessionGate() gin.HandlerFunc {
	return func(c *gin.Context) {
		role := RequiredRole(c.Request.URL.Path)
		if role == "" {
			c.Next()
			return
		}

		token := sessionToken(c)
		if token == "" {
			c.Redirect(http.StatusFound, LoginPage)
			c.Abort()
			return
		}

		claims, err := utils.ParseToken(token)
		if err != nil || claims.Role != role {
			utils.InfoLogger.Printf("session gate: %s denied for role %q", c.Request.URL.Path, roleOf(claims))
			c.Redirect(http.StatusFound, LoginPage)
			c.Abort()
			return
		}

		c.Next()
	}
}

func roleOf(claims *utils.CustomClaims) string {
	if claims == nil {
		return ""
	}
	return claims.Role
}
