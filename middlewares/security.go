package middlewares

import (
	"strings"

	"github.com/gin-gonic/gin"
)

const hstsValue = "max-age=31536000; includeSubDomains"

func SecurityHeaders() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Header("X-Frame-Options", "DENY")
		c.Header("X-Content-Type-Options", "nosniff")
		c.Header("X-XSS-Protection", "1; mode=block")
		// halaman statis memakai inline script dan gambar dari luar
		c.Header("Content-Security-Policy", "default-src 'self' 'unsafe-inline'; img-src 'self' data: https:")
		c.Header("Referrer-Policy", "strict-origin-when-cross-origin")

		// HSTS hanya lewat HTTPS; server dev lokal berjalan di http biasa
		if isHTTPS(c) {
			c.Header("Strict-Transport-Security", hstsValue)
		}

		c.Next()
	}
}

// isHTTPS -> TLS langsung, atau di belakang proxy yang mengirim X-Forwarded-Proto
func isHTTPS(c *gin.Context) bool {
	if c.Request.TLS != nil {
		return true
	}
	return strings.EqualFold(c.GetHeader("X-Forwarded-Proto"), "https")
}
