package tokens

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

var ErrTokenExpired = errors.New("token expired")

// ProfileClaims токен панели аналитики. Выдается внешней системой авторизации, сервис его только проверяет.
type ProfileClaims struct {
	jwt.RegisteredClaims
	ProfileID uuid.UUID
}

// GenerateProfileJWT подписывает токен профиля. Используется в тестах и для выдачи служебных токенов.
func GenerateProfileJWT(profileID uuid.UUID, expire time.Duration, key []byte) (string, error) {
	claims := ProfileClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(expire)),
		},
		ProfileID: profileID,
	}
	token, err := generateJWT(claims, key)
	if err != nil {
		return "", fmt.Errorf("generating profile jwt token: %s", err.Error())
	}
	return token, nil
}

func ValidateProfileJWT(tokenString string, key []byte) (*ProfileClaims, error) {
	token, err := validateJWT(tokenString, new(ProfileClaims), key)
	if err != nil {
		return nil, fmt.Errorf("validating profile jwt token: %w", err)
	}

	claims, ok := token.Claims.(*ProfileClaims)
	if !ok || claims.ProfileID == uuid.Nil {
		return nil, errors.New("invalid claims")
	}
	return claims, nil
}

func generateJWT(claims jwt.Claims, key []byte) (string, error) {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tokenString, err := token.SignedString(key)
	if err != nil {
		return "", fmt.Errorf("generating jwt token: %s", err.Error())
	}

	return tokenString, nil
}

func validateJWT(tokenString string, claims jwt.Claims, key []byte) (*jwt.Token, error) {
	token, err := jwt.ParseWithClaims(tokenString, claims, func(_ *jwt.Token) (any, error) {
		return key, nil
	}, jwt.WithValidMethods([]string{"HS256"}))

	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, ErrTokenExpired
		}
		return nil, fmt.Errorf("parsing jwt token: %w", err)
	}

	return token, nil
}
