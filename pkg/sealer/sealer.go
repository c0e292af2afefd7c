// Package sealer issues opaque payment reference tokens. The token
// binds a booking id to its kind ("booking" or "recurring") so the
// payment provider cannot be pointed at someone else's booking when
// the webhook comes back.
package sealer

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"encoding/base64"
	"fmt"
	"io"
	"os"
	"strings"
)

const (
	EnvSealerKey = "SEALER_KEY"

	// Development fallback. Production sets SEALER_KEY.
	defaultKey = "0Yt7xKqGmPvZsBwRnA4dU8eH2cJfL6oTiV3yD9gXaM0="
)

func loadKey() ([]byte, error) {
	encoded := os.Getenv(EnvSealerKey)
	if encoded == "" {
		encoded = defaultKey
	}
	return base64.StdEncoding.DecodeString(encoded)
}

func CreatePaymentToken(bookingID string, kind string) (string, error) {
	plaintext := []byte(bookingID + ":" + kind)

	key, err := loadKey()
	if err != nil {
		return "", err
	}

	block, err := aes.NewCipher(key)
	if err != nil {
		return "", err
	}

	aesgcm, err := cipher.NewGCM(block)
	if err != nil {
		return "", err
	}

	nonce := make([]byte, aesgcm.NonceSize())
	if _, err := io.ReadFull(rand.Reader, nonce); err != nil {
		return "", err
	}

	ct := aesgcm.Seal(nonce, nonce, plaintext, nil)
	return base64.RawURLEncoding.EncodeToString(ct), nil
}

func ParsePaymentToken(token string) (bookingID string, kind string, err error) {
	key, err := loadKey()
	if err != nil {
		return "", "", err
	}

	data, err := base64.RawURLEncoding.DecodeString(token)
	if err != nil {
		return "", "", err
	}

	block, err := aes.NewCipher(key)
	if err != nil {
		return "", "", err
	}

	aesgcm, err := cipher.NewGCM(block)
	if err != nil {
		return "", "", err
	}

	nonceSize := aesgcm.NonceSize()
	if len(data) < nonceSize {
		return "", "", fmt.Errorf("token too short")
	}
	nonce := data[:nonceSize]
	ciphertext := data[nonceSize:]

	pt, err := aesgcm.Open(nil, nonce, ciphertext, nil)
	if err != nil {
		return "", "", err
	}

	parts := strings.SplitN(string(pt), ":", 2)
	if len(parts) != 2 {
		return "", "", fmt.Errorf("invalid token format")
	}

	return parts[0], parts[1], nil
}
