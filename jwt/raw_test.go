package jwt

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGetAudiencesFromString(t *testing.T) {
	raw := rawWebToken{rawClaims: rawClaims{RawAudiences: "single-audience"}}
	assert.Equal(t, []string{"single-audience"}, raw.getAudiences())
}

func TestGetAudiencesFromList(t *testing.T) {
	raw := rawWebToken{rawClaims: rawClaims{RawAudiences: []interface{}{"aud-1", "aud-2"}}}
	assert.Equal(t, []string{"aud-1", "aud-2"}, raw.getAudiences())
}

func TestGetAudiencesSkipsNonStrings(t *testing.T) {
	raw := rawWebToken{rawClaims: rawClaims{RawAudiences: []interface{}{"aud-1", 42}}}
	assert.Equal(t, []string{"aud-1"}, raw.getAudiences())
}

func TestGetMailPrefersMailClaim(t *testing.T) {
	raw := rawWebToken{rawClaims: rawClaims{RawMail: "mail@example.com", RawEmail: "email@example.com"}}
	assert.Equal(t, "mail@example.com", raw.getMail())
}

func TestGetMailFallsBackToEmailClaim(t *testing.T) {
	raw := rawWebToken{rawClaims: rawClaims{RawEmail: "email@example.com"}}
	assert.Equal(t, "email@example.com", raw.getMail())
}
