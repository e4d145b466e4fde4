package entity

import (
	"crypto/rand"
	"math/big"
)

// ReferralCodeLength is the number of characters in a generated referral code
const ReferralCodeLength = 6

const referralAlphabet = "0123456789ABCDEFGHIJKLMNOPQRSTUVWXYZ"

// NewReferralCode returns a random uppercase base-36 token
func NewReferralCode() (string, error) {
	max := big.NewInt(int64(len(referralAlphabet)))
	code := make([]byte, ReferralCodeLength)
	for i := range code {
		n, err := rand.Int(rand.Reader, max)
		if err != nil {
			return "", err
		}
		code[i] = referralAlphabet[n.Int64()]
	}
	return string(code), nil
}

// ReferralLink builds the sign-up link that carries the referral code
func ReferralLink(baseURL, code string) string {
	return baseURL + "?ref=" + code
}
