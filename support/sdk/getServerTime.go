package sdk

import (
	"encoding/json"
	"fmt"

	"github.com/tulparex/btcturk/api"
)

// ServerTime is the exchange's clock, returned both as milliseconds since
// epoch and as an ISO-8601 string
type ServerTime struct {
	ServerTime  Timestamp `json:"serverTime"`
	ServerTime2 string    `json:"serverTime2"`
}

// GetServerTime fetches the exchange's clock. This is the one endpoint that
// replies without the envelope wrapper.
func (b *Btcturk) GetServerTime() (*ServerTime, error) {
	body, e := b.doBareRequest(endpointServerTime, nil)
	if e != nil {
		return nil, e
	}

	serverTime := ServerTime{}
	if e := json.Unmarshal(body, &serverTime); e != nil {
		return nil, api.MakeInternalServerError(fmt.Sprintf("could not parse the server time response: %s", e), "", body)
	}
	return &serverTime, nil
}
