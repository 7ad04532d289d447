// internal/telephony/twilio.go
package telephony

import (
	"fmt"

	"github.com/twilio/twilio-go"
	twilioclient "github.com/twilio/twilio-go/client"
	openapi "github.com/twilio/twilio-go/rest/api/v2010"

	"github.com/duescall/duescall-backend/internal/config"
)

// CallResult is the explicit outcome of a successful call placement.
type CallResult struct {
	SID string
}

// Dialer places one outbound call whose instructions the provider fetches
// from voiceURL. Implementations must be safe for concurrent use.
type Dialer interface {
	Dial(to, voiceURL string) (*CallResult, error)
}

// TwilioDialer places calls through the Twilio REST API. The underlying
// client is built once and never mutated afterwards.
type TwilioDialer struct {
	client *twilio.RestClient
	from   string
}

func NewTwilioDialer(cfg config.AppConfig) *TwilioDialer {
	// custom client so per-call latency is bounded and a slow provider
	// can't stall a whole upload batch
	httpClient := &twilioclient.Client{
		Credentials: twilioclient.NewCredentials(cfg.TwilioAccountSID, cfg.TwilioAuthToken),
	}
	httpClient.SetTimeout(cfg.DialTimeout)

	rest := twilio.NewRestClientWithParams(twilio.ClientParams{
		Client:     httpClient,
		AccountSid: cfg.TwilioAccountSID,
	})
	return &TwilioDialer{client: rest, from: cfg.TwilioNumber}
}

func (d *TwilioDialer) Dial(to, voiceURL string) (*CallResult, error) {
	params := &openapi.CreateCallParams{}
	params.SetTo(to)
	params.SetFrom(d.from)
	params.SetUrl(voiceURL)

	call, err := d.client.Api.CreateCall(params)
	if err != nil {
		return nil, err
	}
	if call.Sid == nil {
		return nil, fmt.Errorf("twilio returned a call without a sid")
	}
	return &CallResult{SID: *call.Sid}, nil
}
