package sdk

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/tulparex/btcturk/api"
)

// testAPIKey / testAPISecret are credentials of the shape the exchange
// issues, the secret is the standard base64 encoding of the raw key bytes
const (
	testAPIKey    = "a1b2c3d4-e5f6-4a5b-8c9d-0e1f2a3b4c5d"
	testAPISecret = "c2VjcmV0LWtleS1ieXRlcy0xMjM0NTY3ODkwYWJjZGVm"
	testStamp     = int64(1648133346000)
)

func TestSign(t *testing.T) {
	testCases := []struct {
		name          string
		apiKey        string
		apiSecret     string
		stamp         int64
		wantSignature string
	}{
		{
			name:          "reference vector",
			apiKey:        testAPIKey,
			apiSecret:     testAPISecret,
			stamp:         testStamp,
			wantSignature: "7m8WQm0tl0d089Hiuoia4bsZ0Esx++0peRCMSDflUgY=",
		}, {
			name:          "stamp changes the signature",
			apiKey:        testAPIKey,
			apiSecret:     testAPISecret,
			stamp:         1648133347000,
			wantSignature: "8yQaKyI3d3iDq4EvHD7MmU9vPf0JDsiHk6GqmKJtQvM=",
		}, {
			name:          "different credentials",
			apiKey:        "other-key",
			apiSecret:     "YW5vdGhlci1zZWNyZXQtMDk4NzY1NDMyMQ==",
			stamp:         testStamp,
			wantSignature: "cXeaCqDaiEo723ZhxcEZi5WL/xKTuSbpZEnRoJS5tQU=",
		},
	}

	for _, kase := range testCases {
		t.Run(kase.name, func(t *testing.T) {
			signature, e := Sign(kase.apiKey, kase.apiSecret, kase.stamp)
			if !assert.NoError(t, e) {
				return
			}
			assert.Equal(t, kase.wantSignature, signature)
		})
	}
}

func TestSignRejectsUndecodableSecret(t *testing.T) {
	_, e := Sign(testAPIKey, "not-base64!!!", testStamp)

	assert.Error(t, e)
	assert.True(t, api.IsAuthentication(e))
	assert.Contains(t, e.Error(), "could not base64-decode the api secret")
}
