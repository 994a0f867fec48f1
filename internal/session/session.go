package session

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/base64"
	"encoding/hex"
	"errors"
	"strings"

	"github.com/goccy/go-json"
)

// ErrInvalid is returned for any token that does not verify, whatever the
// reason. Callers never learn which check failed.
var ErrInvalid = errors.New("invalid session token")

// Payload is what a logged-in browser carries between requests.
type Payload struct {
	Email  string `json:"email"`
	TeamID uint   `json:"team_id"`
}

// Codec signs and verifies session tokens with a server-side secret.
// Token layout: base64(json payload) + "." + hex(hmac-sha256 over the json).
type Codec struct {
	secret []byte
}

func NewCodec(secret string) *Codec {
	return &Codec{secret: []byte(secret)}
}

func (c *Codec) sign(data []byte) string {
	mac := hmac.New(sha256.New, c.secret)
	mac.Write(data)
	return hex.EncodeToString(mac.Sum(nil))
}

// Sign serializes the payload and appends its integrity tag.
func (c *Codec) Sign(p Payload) (string, error) {
	raw, err := json.Marshal(p)
	if err != nil {
		return "", err
	}
	return base64.StdEncoding.EncodeToString(raw) + "." + c.sign(raw), nil
}

// Verify recomputes the tag over the embedded payload bytes and only then
// trusts them. Malformed input of any shape yields ErrInvalid, never a
// partial payload.
func (c *Codec) Verify(token string) (Payload, error) {
	encoded, sig, found := strings.Cut(token, ".")
	if !found {
		return Payload{}, ErrInvalid
	}
	raw, err := base64.StdEncoding.DecodeString(encoded)
	if err != nil {
		return Payload{}, ErrInvalid
	}
	if !hmac.Equal([]byte(c.sign(raw)), []byte(sig)) {
		return Payload{}, ErrInvalid
	}
	var p Payload
	if err := json.Unmarshal(raw, &p); err != nil {
		return Payload{}, ErrInvalid
	}
	if p.Email == "" || p.TeamID == 0 {
		return Payload{}, ErrInvalid
	}
	return p, nil
}
