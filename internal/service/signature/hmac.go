// Package signature проверяет подпись вебхуков платежного провайдера (HMAC-SHA256 в hex).
package signature

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"strings"
)

// hexLength длина hex представления SHA-256.
const hexLength = sha256.Size * 2

// Sign возвращает hex подпись тела body секретом secret.
func Sign(body []byte, secret string) string {
	mac := hmac.New(sha256.New, []byte(secret))
	_, _ = mac.Write(body)
	return hex.EncodeToString(mac.Sum(nil))
}

// Verify сравнивает переданную подпись с ожидаемой за постоянное время. Подпись другой длины,
// не hex строка или пустой секрет сразу дают false, без побайтового сравнения.
func Verify(body []byte, provided, secret string) bool {
	if secret == "" {
		return false
	}
	provided = strings.ToLower(strings.TrimSpace(provided))
	if len(provided) != hexLength {
		return false
	}
	providedMAC, decodeErr := hex.DecodeString(provided)
	if decodeErr != nil {
		return false
	}

	mac := hmac.New(sha256.New, []byte(secret))
	_, _ = mac.Write(body)
	return hmac.Equal(providedMAC, mac.Sum(nil))
}
