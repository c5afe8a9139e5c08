package ratelimit

import (
	"fmt"
	"net"
	"net/http"
	"strings"

	"buslink/internal/shared/utils/response"

	"github.com/gin-gonic/gin"
)

// Middleware applies the rate limiter to every request.
func Middleware(rateLimiter *RateLimiter) gin.HandlerFunc {
	return func(c *gin.Context) {
		clientIP := getClientIP(c)
		limitType := getRateLimitType(c.FullPath())

		result, err := rateLimiter.IsAllowed(c.Request.Context(), clientIP, limitType)
		if err != nil {
			response.RespondJSON(c, "error", http.StatusInternalServerError,
				"Rate limit check failed", nil, nil)
			c.Abort()
			return
		}

		c.Header("X-RateLimit-Limit", fmt.Sprintf("%d", result.Limit))
		c.Header("X-RateLimit-Remaining", fmt.Sprintf("%d", result.Remaining))
		c.Header("X-RateLimit-Reset", fmt.Sprintf("%d", result.ResetTime))

		if !result.Allowed {
			response.RespondJSON(c, "error", http.StatusTooManyRequests,
				"Rate limit exceeded, try again later", nil, nil)
			c.Abort()
			return
		}

		c.Next()
	}
}

// getRateLimitType classifies a route into a rate limit class.
func getRateLimitType(path string) RateLimitType {
	switch {
	// Health/monitoring endpoints
	case strings.HasPrefix(path, "/health"),
		strings.HasPrefix(path, "/ping"):
		return RateLimitTypeHealth

	// Authentication endpoints
	case strings.Contains(path, "/auth/"):
		return RateLimitTypeAuth

	// Booking flow: ticket sales, availability, parcels
	case strings.Contains(path, "/tickets"),
		strings.Contains(path, "/availability"),
		strings.Contains(path, "/parcels"):
		return RateLimitTypeBooking

	// Liquidation endpoints
	case strings.Contains(path, "/liquidations"):
		return RateLimitTypeFinance

	// Fleet/route/company administration
	case strings.Contains(path, "/companies"),
		strings.Contains(path, "/buses"),
		strings.Contains(path, "/drivers"),
		strings.Contains(path, "/seat-tiers"),
		strings.Contains(path, "/bus-templates"):
		return RateLimitTypeAdmin

	// Public browsing endpoints
	case strings.Contains(path, "/routes"),
		strings.Contains(path, "/locations"),
		strings.Contains(path, "/schedules"),
		strings.Contains(path, "/tracking"):
		return RateLimitTypePublic

	default:
		return RateLimitTypeDefault
	}
}

// getClientIP extracts the real client IP
func getClientIP(c *gin.Context) string {
	// Check X-Forwarded-For header
	xForwardedFor := c.GetHeader("X-Forwarded-For")
	if xForwardedFor != "" {
		ips := strings.Split(xForwardedFor, ",")
		if len(ips) > 0 {
			ip := strings.TrimSpace(ips[0])
			if net.ParseIP(ip) != nil {
				return ip
			}
		}
	}

	// Check X-Real-IP header
	xRealIP := c.GetHeader("X-Real-IP")
	if xRealIP != "" {
		if net.ParseIP(xRealIP) != nil {
			return xRealIP
		}
	}

	// Fall back to RemoteAddr
	ip, _, err := net.SplitHostPort(c.Request.RemoteAddr)
	if err != nil {
		return c.Request.RemoteAddr
	}

	return ip
}
