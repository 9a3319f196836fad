package service

import (
	"crypto/subtle"
	"strings"
)

// TokenAuthService проверяет bearer-токен из заголовка Authorization
type TokenAuthService struct {
	apiToken []byte
}

// NewTokenAuthService создает новый экземпляр TokenAuthService
func NewTokenAuthService(apiToken string) *TokenAuthService {
	return &TokenAuthService{
		apiToken: []byte(apiToken),
	}
}

// ExtractToken возвращает часть заголовка после первого пробела.
// Для "Bearer abc" это "abc"; без пробела возвращается пустая строка.
func ExtractToken(header string) string {
	_, token, found := strings.Cut(header, " ")
	if !found {
		return ""
	}
	return token
}

// Authorize сравнивает токен из заголовка с настроенным секретом на точное совпадение
func (a *TokenAuthService) Authorize(header string) bool {
	if len(a.apiToken) == 0 {
		return false
	}

	token := ExtractToken(header)
	if token == "" {
		return false
	}

	return subtle.ConstantTimeCompare([]byte(token), a.apiToken) == 1
}
