package sdk

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/tulparex/btcturk/api"
)

// envelope is the uniform wrapper around every enveloped response
type envelope struct {
	Success bool            `json:"success"`
	Message *string         `json:"message"`
	Code    responseCode    `json:"code"`
	Data    json.RawMessage `json:"data"`
}

// responseCode tolerates the code field arriving as a JSON number, string, or null
type responseCode string

// UnmarshalJSON is the json.Unmarshaler impl.
func (c *responseCode) UnmarshalJSON(b []byte) error {
	trimmed := bytes.TrimSpace(b)
	if len(trimmed) == 0 || string(trimmed) == "null" {
		*c = ""
		return nil
	}

	if trimmed[0] == '"' {
		var s string
		if e := json.Unmarshal(trimmed, &s); e != nil {
			return e
		}
		*c = responseCode(s)
		return nil
	}

	var n json.Number
	if e := json.Unmarshal(trimmed, &n); e != nil {
		return e
	}
	*c = responseCode(n.String())
	return nil
}

// String is the stringer function
func (c responseCode) String() string {
	return string(c)
}

// validateResponse classifies the HTTP status and the envelope of one
// response. It returns the envelope's data payload on success and a typed
// *api.Error on every failure.
func validateResponse(statusCode int, body []byte) (json.RawMessage, error) {
	if statusCode < 200 || statusCode >= 300 {
		return nil, classifyStatus(statusCode, body)
	}

	var env envelope
	if e := json.Unmarshal(body, &env); e != nil {
		return nil, api.MakeInternalServerError(fmt.Sprintf("could not parse the response body as JSON: %s", e), "", body)
	}

	if !env.Success {
		return nil, api.MakeInvalidRequestParameterError(serverMessage(&env, "request was rejected by the exchange"), env.Code.String(), body)
	}
	return env.Data, nil
}

// validateBareResponse classifies the HTTP status of a response from an
// endpoint that replies without the envelope wrapper
func validateBareResponse(statusCode int, body []byte) ([]byte, error) {
	if statusCode < 200 || statusCode >= 300 {
		return nil, classifyStatus(statusCode, body)
	}
	return body, nil
}

// classifyStatus converts a non-2xx HTTP status into the error kind mandated
// for it: 401/403 authentication, 429 request limit, remaining 4xx invalid
// request parameter, everything else internal server. The envelope is parsed
// on a best-effort basis to surface the server's own message and code.
func classifyStatus(statusCode int, body []byte) error {
	message := fmt.Sprintf("%d %s", statusCode, http.StatusText(statusCode))
	code := ""

	var env envelope
	if e := json.Unmarshal(body, &env); e == nil {
		message = serverMessage(&env, message)
		code = env.Code.String()
	}

	switch {
	case statusCode == http.StatusUnauthorized || statusCode == http.StatusForbidden:
		return api.MakeAuthenticationError(message, code, body)
	case statusCode == http.StatusTooManyRequests:
		return api.MakeRequestLimitExceededError(message, code, body)
	case statusCode >= 400 && statusCode < 500:
		return api.MakeInvalidRequestParameterError(message, code, body)
	default:
		return api.MakeInternalServerError(message, code, body)
	}
}

// serverMessage prefers the message the server placed in the envelope
func serverMessage(env *envelope, fallback string) string {
	if env.Message != nil && *env.Message != "" {
		return *env.Message
	}
	return fallback
}

// decodeData parses the data payload of a successful envelope into dest
func decodeData(data json.RawMessage, dest interface{}) error {
	if e := json.Unmarshal(data, dest); e != nil {
		return api.MakeInternalServerError(fmt.Sprintf("could not parse the data payload: %s", e), "", data)
	}
	return nil
}
