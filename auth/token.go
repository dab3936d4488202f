package auth

import (
	"errors"
	"time"

	"scholarship/config"
	"scholarship/repository"
	"scholarship/utils"

	"github.com/golang-jwt/jwt/v5"
)

var ErrInvalidClaims = errors.New("invalid token claims")

type Claims struct {
	UserId      int      `json:"user_id"`
	Permissions []string `json:"permissions"`
	Exp         int64    `json:"exp"`
}

func (claims *Claims) FromJWTClaims(jwtClaims jwt.Claims) error {
	mapClaims, ok := jwtClaims.(jwt.MapClaims)
	if !ok {
		return ErrInvalidClaims
	}
	userId, ok := mapClaims["user_id"].(float64)
	if !ok {
		return ErrInvalidClaims
	}
	exp, ok := mapClaims["exp"].(float64)
	if !ok {
		return ErrInvalidClaims
	}
	permissions := []string{}
	if raw, ok := mapClaims["permissions"].([]interface{}); ok {
		for _, perm := range raw {
			if p, ok := perm.(string); ok {
				permissions = append(permissions, p)
			}
		}
	}
	claims.UserId = int(userId)
	claims.Exp = int64(exp)
	claims.Permissions = permissions
	return nil
}

func (claims *Claims) Valid() error {
	if time.Now().Unix() > claims.Exp {
		return jwt.ErrTokenExpired
	}
	return nil
}

func (claims *Claims) HasAny(permissions []repository.Permission) bool {
	for _, required := range permissions {
		if utils.Contains(claims.Permissions, string(required)) {
			return true
		}
	}
	return false
}

func CreateToken(user *repository.User) (string, error) {
	return createToken(user, time.Now().Add(time.Hour*24*21))
}

func createToken(user *repository.User, expiresAt time.Time) (string, error) {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256,
		jwt.MapClaims{
			"user_id":     user.ID,
			"permissions": user.PermissionStrings(),
			"exp":         expiresAt.Unix(),
		})

	tokenString, err := token.SignedString([]byte(config.Env().JWTSecret))
	if err != nil {
		return "", err
	}

	return tokenString, nil
}

func ParseToken(tokenString string) (*jwt.Token, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		return []byte(config.Env().JWTSecret), nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))

	if err != nil {
		return nil, err
	}
	return token, nil
}

// ClaimsFromToken parses and validates tokenString.
func ClaimsFromToken(tokenString string) (*Claims, error) {
	token, err := ParseToken(tokenString)
	if err != nil {
		return nil, err
	}
	if !token.Valid {
		return nil, jwt.ErrTokenInvalidClaims
	}
	claims := &Claims{}
	if err := claims.FromJWTClaims(token.Claims); err != nil {
		return nil, err
	}
	if err := claims.Valid(); err != nil {
		return nil, err
	}
	return claims, nil
}
