package utils // package utils provides helper functions for token creation and hashing

import (
    "errors" // sentinel errors for the two verification failure modes
    "time"   // time utilities for generating expirations

    "github.com/golang-jwt/jwt/v5" // JWT library for creating signed tokens
)

// Claims is the typed claim set carried by every bearer token.  Using an
// explicit struct instead of jwt.MapClaims means a verified token always
// yields statically typed identity values: handlers never type-switch on
// interface{} claim entries.  RegisteredClaims contributes the issued-at
// and expiry fields that bound the token's lifetime.
type Claims struct {
    UserID uint64 `json:"userId"` // subject user's primary key
    Email  string `json:"email"`  // subject user's email
    Name   string `json:"name"`   // subject user's display name
    jwt.RegisteredClaims
}

// ErrTokenInvalid covers every verification failure that is not an
// expiry: bad signature, malformed compact form, wrong signing
// algorithm, or claims that fail to decode.
var ErrTokenInvalid = errors.New("token invalid")

// ErrTokenExpired is returned for a structurally valid, correctly signed
// token whose expiry has passed.  Callers treat it the same as
// ErrTokenInvalid for access control; the distinction only feeds the
// response message.
var ErrTokenExpired = errors.New("token expired")

// AuthToken bundles a signed token string with its expiry so callers can
// report the expiry to clients without re-parsing the token.
type AuthToken struct {
    Token string    // the serialized JWT string
    Exp   time.Time // the UTC expiration time
}

// NewAuthToken builds and signs an HS256 JWT for a user.  The secret is
// injected by the caller; this package holds no signing state of its
// own, which keeps key rotation a pure configuration change and lets
// tests run with throwaway secrets.  The claim set is {userId, email,
// name} plus iat and exp, with exp = now + ttl.
func NewAuthToken(secret string, userID uint64, email, name string, ttl time.Duration) (AuthToken, error) {
    now := time.Now().UTC()
    exp := now.Add(ttl)
    claims := Claims{
        UserID: userID,
        Email:  email,
        Name:   name,
        RegisteredClaims: jwt.RegisteredClaims{
            IssuedAt:  jwt.NewNumericDate(now),
            ExpiresAt: jwt.NewNumericDate(exp),
        },
    }
    t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
    signed, err := t.SignedString([]byte(secret))
    if err != nil {
        return AuthToken{}, err
    }
    return AuthToken{Token: signed, Exp: exp}, nil
}

// VerifyAuthToken checks signature integrity and expiry, in that order,
// and returns the embedded claims only when both hold.  The parser is
// pinned to HS256: a token signed with any other algorithm — including
// "none" — is rejected as invalid rather than being handed to a keyfunc
// that might accept it.
func VerifyAuthToken(secret, raw string) (*Claims, error) {
    claims := &Claims{}
    tok, err := jwt.ParseWithClaims(raw, claims, func(t *jwt.Token) (interface{}, error) {
        if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
            return nil, ErrTokenInvalid
        }
        return []byte(secret), nil
    }, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
    if err != nil {
        if errors.Is(err, jwt.ErrTokenExpired) {
            return nil, ErrTokenExpired
        }
        return nil, ErrTokenInvalid
    }
    if !tok.Valid {
        return nil, ErrTokenInvalid
    }
    return claims, nil
}
