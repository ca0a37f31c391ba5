package handlers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"portfolioBackend/internal/errs"
	"portfolioBackend/internal/models"
	"portfolioBackend/internal/msgs"
	"portfolioBackend/internal/ratelimit"
	"portfolioBackend/internal/utils"
)

// MustAuthenticateMiddleware guards the admin routes. A missing token
// and an invalid or expired one are both rejected with 401, with
// distinct messages.
func (rh *RestHandler) MustAuthenticateMiddleware() gin.HandlerFunc {
	return func(ctx *gin.Context) {
		jwtToken := ctx.GetHeader("Authorization")
		if jwtToken != "" {
			if strings.Contains(jwtToken, "Bearer") {
				jwtToken = strings.Replace(jwtToken, "Bearer ", "", 1)
			}
		}

		if jwtToken == "" {
			ctx.AbortWithStatusJSON(http.StatusUnauthorized, models.Response{
				Success: false,
				Message: msgs.MsgAccessDenied,
				Errors:  []error{errs.ErrUnauthorized},
			})
			return
		}

		claims, err := utils.VerifyToken(jwtToken, rh.authService.JwtKey())
		if err != nil {
			ctx.AbortWithStatusJSON(http.StatusUnauthorized, models.Response{
				Success: false,
				Message: msgs.MsgInvalidToken,
				Errors:  []error{errs.ErrInvalidToken},
			})
			return
		}

		ctx.Set("admin_id", claims.AdminID)
		ctx.Set("admin_email", claims.Email)
		ctx.Next()
	}
}

// RateLimitMiddleware rejects requests once the client IP exhausts the
// limiter's budget.
func RateLimitMiddleware(limiter ratelimit.Limiter, message string) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		if !limiter.Allow(ctx.ClientIP()) {
			ctx.AbortWithStatusJSON(http.StatusTooManyRequests, models.Response{
				Success: false,
				Message: message,
				Errors:  []error{errs.ErrTooManyRequests},
			})
			return
		}
		ctx.Next()
	}
}
