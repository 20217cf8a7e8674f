package sdk

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/base64"
	"fmt"

	"github.com/tulparex/btcturk/api"
)

// header names used on authenticated requests
const (
	headerAPIKey      = "X-PCK"
	headerStamp       = "X-Stamp"
	headerSignature   = "X-Signature"
	headerContentType = "Content-Type"
)

// Sign computes the request signature for one authenticated call: the api key
// concatenated with the millisecond stamp is signed with HMAC-SHA256 under
// the base64-decoded api secret, and the digest is returned base64-encoded.
// The same stamp must be sent in the X-Stamp header alongside the signature.
func Sign(apiKey string, apiSecret string, stampMillis int64) (string, error) {
	key, e := base64.StdEncoding.DecodeString(apiSecret)
	if e != nil {
		return "", api.MakeAuthenticationError(fmt.Sprintf("could not base64-decode the api secret: %s", e), "", nil)
	}

	message := fmt.Sprintf("%s%d", apiKey, stampMillis)
	mac := hmac.New(sha256.New, key)
	mac.Write([]byte(message))
	return base64.StdEncoding.EncodeToString(mac.Sum(nil)), nil
}
