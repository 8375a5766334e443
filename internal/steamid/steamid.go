package steamid

import (
	apperrors "github.com/steam-lens/profile-api/pkg/errors"
)

// Base is the SteamID64 of account number zero in the public universe.
// Friend codes are decimal offsets from this value.
const Base = "76561197960265728"

// Convert turns a numeric friend code into a SteamID64 decimal string.
//
// A 17-digit input that is already numerically above Base is a full
// SteamID64 and is returned unchanged. Everything else is treated as an
// account number and shifted by Base. The addition is done on decimal
// digit strings so the result stays exact regardless of the platform's
// native integer width.
func Convert(code string) (string, error) {
	if code == "" {
		return "", apperrors.NewAppError(apperrors.CodeInvalidFormat, "friend code is empty", nil)
	}
	for i := 0; i < len(code); i++ {
		if code[i] < '0' || code[i] > '9' {
			return "", apperrors.NewAppErrorf(apperrors.CodeInvalidFormat, nil,
				"friend code contains non-digit character %q", code[i])
		}
	}

	// Lexicographic comparison is numeric here: both operands are
	// digit strings of identical length.
	if len(code) == len(Base) && code > Base {
		return code, nil
	}

	return AddDecimal(code, Base), nil
}

// AddDecimal adds two unsigned integers given as decimal digit strings
// and returns their sum as a decimal digit string.
//
// Digits are walked least-significant first with a running carry; a final
// nonzero carry emits one extra leading digit. Leading zeros in an input
// are harmless: they sum as zeroes at the longer operand's width.
func AddDecimal(a, b string) string {
	buf := make([]byte, 0, maxInt(len(a), len(b))+1)
	carry := byte(0)

	for i, j := len(a)-1, len(b)-1; i >= 0 || j >= 0 || carry > 0; i, j = i-1, j-1 {
		sum := carry
		if i >= 0 {
			sum += a[i] - '0'
		}
		if j >= 0 {
			sum += b[j] - '0'
		}
		buf = append(buf, '0'+sum%10)
		carry = sum / 10
	}

	// Digits were emitted least-significant first
	for l, r := 0, len(buf)-1; l < r; l, r = l+1, r-1 {
		buf[l], buf[r] = buf[r], buf[l]
	}

	return string(buf)
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}
