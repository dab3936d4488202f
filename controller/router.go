package controller

import (
	"net/http"
	"strconv"
	"strings"

	"scholarship/auth"
	"scholarship/engine"
	"scholarship/repository"

	"github.com/gin-contrib/cache/persistence"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type RouteInfo struct {
	Method        string
	Path          string
	HandlerFunc   gin.HandlerFunc
	Authenticated bool
	RequiredRoles []repository.Permission
}

const claimsKey = "claims"

func SetRoutes(r *gin.Engine, db *gorm.DB, e *engine.Engine, cacheStore persistence.CacheStore) {
	group := r.Group("/api")
	routes := make([]RouteInfo, 0)
	routes = append(routes, setupScholarshipController(db, e)...)
	routes = append(routes, setupApplicationController(db, e)...)
	routes = append(routes, setupReviewerController(db)...)
	routes = append(routes, setupReportController(db, cacheStore)...)
	for _, route := range routes {
		handlerfuncs := make([]gin.HandlerFunc, 0)
		if route.Authenticated {
			handlerfuncs = append(handlerfuncs, AuthMiddleware(route.RequiredRoles))
		}
		handlerfuncs = append(handlerfuncs, route.HandlerFunc)
		group.Handle(route.Method, route.Path, handlerfuncs...)
	}
}

func tokenFromRequest(c *gin.Context) string {
	authHeader := c.GetHeader("Authorization")
	if strings.HasPrefix(authHeader, "Bearer ") {
		return authHeader[len("Bearer "):]
	}
	authCookie, err := c.Cookie("auth")
	if err != nil {
		return ""
	}
	return authCookie
}

// AuthMiddleware rejects requests without a valid token and, when roles are
// given, tokens carrying none of them.
func AuthMiddleware(roles []repository.Permission) gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenString := tokenFromRequest(c)
		if tokenString == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Unauthenticated"})
			return
		}
		claims, err := auth.ClaimsFromToken(tokenString)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Unauthenticated"})
			return
		}
		if len(roles) > 0 && !claims.HasAny(roles) {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "Unauthorized"})
			return
		}
		c.Set(claimsKey, claims)
		c.Next()
	}
}

func getClaims(c *gin.Context) *auth.Claims {
	claims, ok := c.Get(claimsKey)
	if !ok {
		return nil
	}
	return claims.(*auth.Claims)
}

// actorId is the authenticated user id. Only valid behind AuthMiddleware.
func actorId(c *gin.Context) int {
	claims := getClaims(c)
	if claims == nil {
		return 0
	}
	return claims.UserId
}

func pathId(c *gin.Context, name string) (int, bool) {
	id, err := strconv.Atoi(c.Param(name))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid " + name})
		return 0, false
	}
	return id, true
}
