/* pkg/crypto/password.go */

package crypto

import (
	"crypto/rand"
	"fmt"
	"math/big"
)

// GeneratePassword creates a strong random password with at least 1 of each char class.
func GeneratePassword(length int) (string, error) {
	if length < 4 {
		return "", fmt.Errorf("password length must be at least 4")
	}

	lower := "abcdefghijklmnopqrstuvwxyz"
	upper := "ABCDEFGHIJKLMNOPQRSTUVWXYZ"
	digits := "0123456789"
	symbols := "!@#$%&*?" // bash-safe
	all := lower + upper + digits + symbols

	var pw []byte

	// Guarantee 1 character from each category
	for _, group := range []string{lower, upper, digits, symbols} {
		c, err := randomChar(group)
		if err != nil {
			return "", err
		}
		pw = append(pw, c)
	}

	// Fill the rest
	for i := len(pw); i < length; i++ {
		c, err := randomChar(all)
		if err != nil {
			return "", err
		}
		pw = append(pw, c)
	}

	if err := shuffle(pw); err != nil {
		return "", err
	}

	return string(pw), nil
}

func randomChar(charset string) (byte, error) {
	n, err := rand.Int(rand.Reader, big.NewInt(int64(len(charset))))
	if err != nil {
		return 0, err
	}
	return charset[n.Int64()], nil
}

func shuffle(b []byte) error {
	for i := len(b) - 1; i > 0; i-- {
		jBig, err := rand.Int(rand.Reader, big.NewInt(int64(i+1)))
		if err != nil {
			return err
		}
		j := int(jBig.Int64())
		b[i], b[j] = b[j], b[i]
	}
	return nil
}
