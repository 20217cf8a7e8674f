package networking

import (
	"fmt"
	"io/ioutil"
	"net/http"
	"strings"
	"time"
)

// DefaultTimeout bounds the full round trip (connect + read) of a single
// request when the caller does not override it.
const DefaultTimeout = 10 * time.Second

// NewHTTPClient returns an http.Client with the given timeout, falling back
// to DefaultTimeout when the passed in value is not positive.
func NewHTTPClient(timeout time.Duration) *http.Client {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	return &http.Client{
		Timeout: timeout,
	}
}

// RawRequest submits an HTTP web request and returns the response status code
// along with the raw response body, leaving interpretation of both to the
// caller. The error is non-nil only when the request could not be built,
// executed, or read, never because of the status code.
func RawRequest(
	httpClient *http.Client,
	method string,
	reqURL string,
	data string,
	headers map[string]string,
) (int, []byte, error) {
	// create http request
	req, e := http.NewRequest(method, reqURL, strings.NewReader(data))
	if e != nil {
		return 0, nil, fmt.Errorf("could not create http request: %s", e)
	}

	// add headers
	for key, value := range headers {
		req.Header.Add(key, value)
	}

	// execute request
	resp, e := httpClient.Do(req)
	if e != nil {
		return 0, nil, fmt.Errorf("could not execute http request: %s", e)
	}
	defer resp.Body.Close()

	// read response
	body, e := ioutil.ReadAll(resp.Body)
	if e != nil {
		return resp.StatusCode, nil, fmt.Errorf("could not read http response: %s", e)
	}

	return resp.StatusCode, body, nil
}
