// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package otp

import (
	"crypto/rand"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"io"
	"math/big"
)

const (
	codeDigits = 6
	codeMin    = 100000
	codeMax    = 999999
)

var codeRange = big.NewInt(codeMax - codeMin + 1)

// generateCode draws a code uniformly from [codeMin, codeMax] so it always has
// codeDigits digits and never a leading zero.
func generateCode(r io.Reader) (string, error) {
	if r == nil {
		r = rand.Reader
	}

	n, err := rand.Int(r, codeRange)
	if err != nil {
		return "", fmt.Errorf("failed to generate otp: %w", err)
	}

	return fmt.Sprintf("%d", n.Int64()+codeMin), nil
}

func validFormat(code string) bool {
	if len(code) != codeDigits {
		return false
	}

	for _, c := range code {
		if c < '0' || c > '9' {
			return false
		}
	}

	return true
}

// hashCode binds the code to its user so equal codes of different users never
// share a digest.
func hashCode(userID, code string) string {
	sum := sha256.Sum256([]byte(userID + ":" + code))
	return hex.EncodeToString(sum[:])
}
