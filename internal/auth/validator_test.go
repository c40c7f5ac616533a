package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPasswordStrength(t *testing.T) {
	t.Run("Scores Known Passwords", func(t *testing.T) {
		cases := []struct {
			password string
			score    int
			label    string
		}{
			{"", 0, "Weak"},
			{"abc", 1, "Weak"},
			{"abcdefgh", 2, "Medium"},
			{"Abcdefgh", 3, "Medium"},
			{"Abcdefg1", 4, "Strong"},
			{"Abcdef1!", 5, "Strong"},
			{"A1!", 4, "Strong"},
			{"12345678", 2, "Medium"},
		}

		for _, tc := range cases {
			assert.Equal(t, tc.score, PasswordStrength(tc.password), "password %q", tc.password)
			assert.Equal(t, tc.label, StrengthLabel(PasswordStrength(tc.password)), "password %q", tc.password)
		}
	})

	t.Run("Length Counts Characters Not Bytes", func(t *testing.T) {
		// Five two-byte runes: ten bytes, but only five characters.
		assert.Equal(t, 1, PasswordStrength("ééééé"))
		// Eight runes earn the length point.
		assert.Equal(t, 2, PasswordStrength("éééééééé"))
	})

	t.Run("Score Stays In Range", func(t *testing.T) {
		for _, p := range []string{"", "a", "A", "1", "!", "aA1!x", "AAbbcc1122!!??zzXX"} {
			score := PasswordStrength(p)
			assert.GreaterOrEqual(t, score, 0)
			assert.LessOrEqual(t, score, 5)
		}
	})

	t.Run("Score Is Monotonic As Criteria Are Added", func(t *testing.T) {
		// Each password satisfies one more criterion than the previous.
		steps := []string{"", "abc", "abcdefgh", "Abcdefgh", "Abcdefg1", "Abcdef1!"}
		prev := -1
		for _, p := range steps {
			score := PasswordStrength(p)
			assert.Greater(t, score, prev, "password %q", p)
			prev = score
		}
	})
}

func TestValidateSignIn(t *testing.T) {
	t.Run("Requires Email And Password", func(t *testing.T) {
		assert.Error(t, ValidateSignIn("", "secret"))
		assert.Error(t, ValidateSignIn("user@example.com", ""))
		assert.NoError(t, ValidateSignIn("user@example.com", "secret"))
	})

	t.Run("No Strength Check On Sign In", func(t *testing.T) {
		assert.NoError(t, ValidateSignIn("user@example.com", "abc"))
	})
}

func TestValidateRegistration(t *testing.T) {
	t.Run("Rejects Password Mismatch", func(t *testing.T) {
		err := ValidateRegistration("hydra", "user@example.com", "Abcdef1!", "Abcdef1?")
		require.Error(t, err)

		validationErr, ok := err.(*ValidationError)
		require.True(t, ok)
		assert.Equal(t, "Passwords do not match", validationErr.Message)
	})

	t.Run("Rejects Weak Password", func(t *testing.T) {
		err := ValidateRegistration("hydra", "user@example.com", "abc", "abc")
		require.Error(t, err)

		validationErr, ok := err.(*ValidationError)
		require.True(t, ok)
		assert.Equal(t, "password", validationErr.Field)
	})

	t.Run("Accepts Strong Password", func(t *testing.T) {
		assert.NoError(t, ValidateRegistration("hydra", "user@example.com", "Abcdef1!", "Abcdef1!"))
	})

	t.Run("Accepts Minimum Strength", func(t *testing.T) {
		// Score 3: length, upper, lower.
		assert.NoError(t, ValidateRegistration("hydra", "user@example.com", "Abcdefgh", "Abcdefgh"))
	})
}
