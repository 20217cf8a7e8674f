package sdk

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/tulparex/btcturk/api"
)

func TestGetServerTime(t *testing.T) {
	var gotPath string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		// this endpoint replies with a bare payload, no envelope around it
		fmt.Fprint(w, `{"serverTime":1645091654418,"serverTime2":"2022-02-17T09:54:14.4180000Z"}`)
	}))
	defer server.Close()

	client, e := MakeBtcturkWithParams("", "", server.URL, time.Second)
	if !assert.NoError(t, e) {
		return
	}

	serverTime, e := client.GetServerTime()

	if !assert.NoError(t, e) {
		return
	}
	assert.Equal(t, "/api/v2/server/time", gotPath)
	assert.Equal(t, int64(1645091654418), serverTime.ServerTime.AsInt64())
	assert.Equal(t, "2022-02-17T09:54:14.4180000Z", serverTime.ServerTime2)
}

func TestGetServerTimeOutage(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
		fmt.Fprint(w, `<html><body>upstream unavailable</body></html>`)
	}))
	defer server.Close()

	client, e := MakeBtcturkWithParams("", "", server.URL, time.Second)
	if !assert.NoError(t, e) {
		return
	}

	_, e = client.GetServerTime()

	if !assert.Error(t, e) {
		return
	}
	assert.True(t, api.IsInternalServer(e))
}
