// Package jwt deserializes id_tokens into the claims this library cares
// about. Tokens are parsed without signature verification: the middleware
// only mirrors the asserted identity into observability output, it never
// makes an authorization decision from it.
package jwt

import (
	"fmt"

	"github.com/go-jose/go-jose/v4"
	"github.com/go-jose/go-jose/v4/jwt"
)

// SignatureAlgorithms lists the token signature algorithms accepted by New.
var SignatureAlgorithms = []jose.SignatureAlgorithm{jose.RS256, jose.HS256}

type IssuerAttributes struct {
	Issuer  string `json:"iss"`
	Subject string `json:"sub"`
}

// UserAttributes contains the user claims sent by the OIDC provider
type UserAttributes struct {
	FirstName string `json:"first_name,omitempty"`
	LastName  string `json:"last_name,omitempty"`
}

// ParsedAttributes exposes the claims which need normalization because
// providers serialize them inconsistently
type ParsedAttributes struct {
	Audiences []string `json:"aud"`
	Mail      string   `json:"mail,omitempty"`
}

// WebToken contains a deserialized id_token
type WebToken struct {
	IssuerAttributes
	UserAttributes
	ParsedAttributes
}

// New retrieves a new WebToken from an id_token string
// When not able to parse or deserialize the requested claims, it will return an error
func New(idToken string) (webToken WebToken, err error) {
	token, parseErr := jwt.ParseSigned(idToken, SignatureAlgorithms)
	if parseErr != nil {
		err = fmt.Errorf("unable to parse id_token: %w", parseErr)
		return
	}

	rawToken := new(rawWebToken)
	desErr := token.UnsafeClaimsWithoutVerification(&rawToken)
	if desErr != nil {
		err = fmt.Errorf("unable to deserialize claims: %w", desErr)
		return
	}

	webToken.IssuerAttributes = rawToken.IssuerAttributes
	webToken.FirstName = rawToken.getFirstName()
	webToken.LastName = rawToken.getLastName()
	webToken.Audiences = rawToken.getAudiences()
	webToken.Mail = rawToken.getMail()

	return
}
