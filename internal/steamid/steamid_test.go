package steamid

import (
	"fmt"
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "github.com/steam-lens/profile-api/pkg/errors"
)

// oracle computes a+b with math/big, the independent reference for AddDecimal.
func oracle(t *testing.T, a, b string) string {
	t.Helper()

	x, ok := new(big.Int).SetString(a, 10)
	require.True(t, ok, "oracle operand %q", a)
	y, ok := new(big.Int).SetString(b, 10)
	require.True(t, ok, "oracle operand %q", b)

	return new(big.Int).Add(x, y).String()
}

func TestConvert_FriendCodes(t *testing.T) {
	tests := []struct {
		name string
		code string
		want string
	}{
		{"smallest account", "1", "76561197960265729"},
		{"zero offset", "0", "76561197960265728"},
		{"typical friend code", "123456789", "76561198083722517"},
		{"nine digits max", "999999999", "76561198960265727"},
		{"single digit", "7", "76561197960265735"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Convert(tt.code)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, oracle(t, tt.code, Base), got)
		})
	}
}

func TestConvert_AgainstBigIntOracle(t *testing.T) {
	// Digit strings up to length 16 must all agree with unbounded addition.
	codes := []string{
		"1", "9", "10", "99", "100",
		"1234567890123456", // 16 digits
		"9999999999999999",
		"8234567011",
		"40265728",
		"39734272",
	}

	for _, code := range codes {
		got, err := Convert(code)
		require.NoError(t, err, "code %q", code)
		assert.Equal(t, oracle(t, code, Base), got, "code %q", code)
	}
}

func TestConvert_PassthroughSteamID64(t *testing.T) {
	// 17 digits and above the base constant: already a SteamID64.
	got, err := Convert("76561197960265729")
	require.NoError(t, err)
	assert.Equal(t, "76561197960265729", got)

	got, err = Convert("76561198083722517")
	require.NoError(t, err)
	assert.Equal(t, "76561198083722517", got)
}

func TestConvert_SeventeenDigitsBelowBase(t *testing.T) {
	// 17 digits but not above the base: still treated as an offset.
	code := "10000000000000000"
	got, err := Convert(code)
	require.NoError(t, err)
	assert.Equal(t, oracle(t, code, Base), got)

	// The base itself is not strictly greater, so it gets shifted too.
	got, err = Convert(Base)
	require.NoError(t, err)
	assert.Equal(t, oracle(t, Base, Base), got)
}

func TestConvert_LongerThanSeventeenDigits(t *testing.T) {
	code := "123456789012345678901"
	got, err := Convert(code)
	require.NoError(t, err)
	assert.Equal(t, oracle(t, code, Base), got)
}

func TestConvert_LeadingZeros(t *testing.T) {
	got, err := Convert("0000001")
	require.NoError(t, err)
	assert.Equal(t, "76561197960265729", got)
}

func TestConvert_InvalidFormat(t *testing.T) {
	for _, code := range []string{"", "12a34", "-5", " 123", "１２３", "12.5"} {
		t.Run(fmt.Sprintf("%q", code), func(t *testing.T) {
			_, err := Convert(code)
			require.Error(t, err)

			appErr, ok := err.(*apperrors.AppError)
			require.True(t, ok)
			assert.Equal(t, apperrors.CodeInvalidFormat, appErr.Code)
		})
	}
}

func TestAddDecimal(t *testing.T) {
	tests := []struct {
		a, b, want string
	}{
		{"0", "0", "0"},
		{"1", "9", "10"},
		{"999", "1", "1000"},
		{"999999999999999999", "1", "1000000000000000000"}, // carry past 64-bit-ish widths
		{"5", "76561197960265728", "76561197960265733"},
		{"007", "3", "010"}, // input leading zeros preserve the operand width
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, AddDecimal(tt.a, tt.b), "%s + %s", tt.a, tt.b)
	}
}

func TestAddDecimal_EmitsSingleCarryDigit(t *testing.T) {
	got := AddDecimal("99999999999999999", "99999999999999999")
	want := oracle(t, "99999999999999999", "99999999999999999")
	assert.Equal(t, want, got)
	assert.Len(t, got, 18)
}
