package auth

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	jwt "github.com/golang-jwt/jwt/v5"

	"github.com/spec-kit/campus-portal/internal/domain"
)

// ErrDecode marks a credential whose claims cannot be used.
var ErrDecode = errors.New("credential decode failed")

// Claim names issued by the CampusConnect auth service.
const (
	ClaimEmail     = "email"
	ClaimRole      = "role"
	ClaimSubjectID = "userId"
	ClaimName      = "name"
)

// Decoder extracts identity claims from an opaque credential.
type Decoder interface {
	Decode(credential string) (domain.Claims, error)
}

// UnverifiedDecoder reads the JWT payload without checking its signature or expiry.
//
// The portal never trusts these claims for anything but navigation and display:
// every remote call carries the raw credential and the issuing backend remains
// the only authority on its validity.
type UnverifiedDecoder struct {
	parser *jwt.Parser
}

// NewUnverifiedDecoder builds a decoder.
func NewUnverifiedDecoder() *UnverifiedDecoder {
	return &UnverifiedDecoder{parser: jwt.NewParser(jwt.WithJSONNumber())}
}

// Decode returns the claims or an error wrapping ErrDecode.
func (d *UnverifiedDecoder) Decode(credential string) (domain.Claims, error) {
	credential = strings.TrimSpace(credential)
	if credential == "" {
		return domain.Claims{}, fmt.Errorf("%w: empty credential", ErrDecode)
	}

	raw := jwt.MapClaims{}
	if _, _, err := d.parser.ParseUnverified(credential, raw); err != nil {
		return domain.Claims{}, fmt.Errorf("%w: %v", ErrDecode, err)
	}

	email, err := stringClaim(raw, ClaimEmail)
	if err != nil {
		return domain.Claims{}, err
	}
	roleValue, err := stringClaim(raw, ClaimRole)
	if err != nil {
		return domain.Claims{}, err
	}
	role := domain.Role(roleValue)
	if !role.Valid() {
		return domain.Claims{}, fmt.Errorf("%w: unknown role %q", ErrDecode, roleValue)
	}
	subjectID, err := stringClaim(raw, ClaimSubjectID)
	if err != nil {
		return domain.Claims{}, err
	}

	claims := domain.Claims{Email: email, Role: role, SubjectID: subjectID}
	if name, ok := raw[ClaimName].(string); ok {
		claims.Name = strings.TrimSpace(name)
	}
	claims.Name = claims.DisplayName()
	return claims, nil
}

// stringClaim accepts strings and JSON numbers; anything else counts as missing.
func stringClaim(raw jwt.MapClaims, key string) (string, error) {
	var value string
	switch v := raw[key].(type) {
	case string:
		value = strings.TrimSpace(v)
	case json.Number:
		value = v.String()
	}
	if value == "" {
		return "", fmt.Errorf("%w: missing claim %s", ErrDecode, key)
	}
	return value, nil
}
