// Package otpx generates the short numeric codes used for email
// verification. Codes are derived with HOTP over a throwaway random secret so
// the distribution is uniform over the 6-digit space.
package otpx

import (
	"crypto/rand"
	"encoding/base32"
	"encoding/binary"
	"fmt"

	"github.com/pquerna/otp"
	"github.com/pquerna/otp/hotp"
)

// Digits in a verification code.
const Digits = otp.DigitsSix

// NewCode returns a fresh 6-digit numeric verification code.
func NewCode() (string, error) {
	var buf [28]byte // 20-byte secret + 8-byte counter
	if _, err := rand.Read(buf[:]); err != nil {
		return "", fmt.Errorf("otpx: failed to gather entropy: %w", err)
	}

	secret := base32.StdEncoding.WithPadding(base32.NoPadding).EncodeToString(buf[:20])
	counter := binary.BigEndian.Uint64(buf[20:])

	code, err := hotp.GenerateCodeCustom(secret, counter, hotp.ValidateOpts{
		Digits:    Digits,
		Algorithm: otp.AlgorithmSHA1,
	})
	if err != nil {
		return "", fmt.Errorf("otpx: failed to derive code: %w", err)
	}

	return code, nil
}
