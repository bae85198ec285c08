package auth

import (
	"testing"

	jwt "github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/spec-kit/campus-portal/internal/domain"
)

func mint(t *testing.T, claims jwt.MapClaims) string {
	t.Helper()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte("backend-only-secret"))
	require.NoError(t, err)
	return signed
}

func TestUnverifiedDecoder_Decode(t *testing.T) {
	decoder := NewUnverifiedDecoder()

	t.Run("name falls back to email local part", func(t *testing.T) {
		credential := mint(t, jwt.MapClaims{"email": "a@x.com", "role": "FACULTY", "userId": "1"})

		claims, err := decoder.Decode(credential)
		require.NoError(t, err)
		assert.Equal(t, domain.Claims{Email: "a@x.com", Role: domain.RoleFaculty, SubjectID: "1", Name: "a"}, claims)
	})

	t.Run("name claim is kept", func(t *testing.T) {
		credential := mint(t, jwt.MapClaims{"email": "j@x.com", "role": "STUDENT", "userId": "9", "name": "Jane"})

		claims, err := decoder.Decode(credential)
		require.NoError(t, err)
		assert.Equal(t, "Jane", claims.Name)
	})

	t.Run("numeric subject id", func(t *testing.T) {
		credential := mint(t, jwt.MapClaims{"email": "n@x.com", "role": "ADMIN", "userId": 42})

		claims, err := decoder.Decode(credential)
		require.NoError(t, err)
		assert.Equal(t, "42", claims.SubjectID)
		assert.Equal(t, domain.RoleAdmin, claims.Role)
	})

	t.Run("signature and expiry are not checked", func(t *testing.T) {
		credential := mint(t, jwt.MapClaims{"email": "e@x.com", "role": "STUDENT", "userId": "3", "exp": 1})

		_, err := decoder.Decode(credential)
		assert.NoError(t, err)
	})

	t.Run("decoding is idempotent", func(t *testing.T) {
		credential := mint(t, jwt.MapClaims{"email": "i@x.com", "role": "STUDENT", "userId": "5"})

		first, err := decoder.Decode(credential)
		require.NoError(t, err)
		second, err := decoder.Decode(credential)
		require.NoError(t, err)
		assert.Equal(t, first, second)
	})
}

func TestUnverifiedDecoder_Failures(t *testing.T) {
	decoder := NewUnverifiedDecoder()

	cases := map[string]string{
		"empty":           "",
		"not a jwt":       "opaque-session-value",
		"bad segments":    "a.b",
		"garbage payload": "eyJhbGciOiJIUzI1NiJ9.!!!.sig",
		"missing email":   mint(t, jwt.MapClaims{"role": "STUDENT", "userId": "1"}),
		"missing role":    mint(t, jwt.MapClaims{"email": "a@x.com", "userId": "1"}),
		"missing userId":  mint(t, jwt.MapClaims{"email": "a@x.com", "role": "STUDENT"}),
		"blank email":     mint(t, jwt.MapClaims{"email": " ", "role": "STUDENT", "userId": "1"}),
		"unknown role":    mint(t, jwt.MapClaims{"email": "a@x.com", "role": "JANITOR", "userId": "1"}),
		"role not string": mint(t, jwt.MapClaims{"email": "a@x.com", "role": true, "userId": "1"}),
	}

	for name, credential := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := decoder.Decode(credential)
			assert.ErrorIs(t, err, ErrDecode)
		})
	}
}
