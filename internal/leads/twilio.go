package leads

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/leandrocorretor/realty/pkg/config"
	"github.com/leandrocorretor/realty/pkg/resilience"
	"github.com/twilio/twilio-go"
	"github.com/twilio/twilio-go/client"
	twilioApi "github.com/twilio/twilio-go/rest/api/v2010"
)

// TwilioClient sends SMS through the Twilio Messages API
type TwilioClient struct {
	client *twilio.RestClient
	from   string
}

// NewTwilioClient returns nil when SMS is disabled or credentials are missing
func NewTwilioClient(cfg config.TwilioConfig) *TwilioClient {
	if !cfg.Enabled || cfg.AccountSID == "" || cfg.AuthToken == "" || cfg.FromNumber == "" {
		return nil
	}
	return &TwilioClient{
		client: twilio.NewRestClientWithParams(twilio.ClientParams{
			Username: cfg.AccountSID,
			Password: cfg.AuthToken,
		}),
		from: cfg.FromNumber,
	}
}

// SendSMS implements SMSSender. Client errors other than 429 are wrapped
// with resilience.ErrPermanent so they are not retried.
func (t *TwilioClient) SendSMS(to, body string) (string, error) {
	params := &twilioApi.CreateMessageParams{}
	params.SetTo(to)
	params.SetFrom(t.from)
	params.SetBody(body)

	resp, err := t.client.Api.CreateMessage(params)
	if err != nil {
		var restErr *client.TwilioRestError
		if errors.As(err, &restErr) && !resilience.IsRetryableHTTPStatus(restErr.Status) && restErr.Status < http.StatusInternalServerError {
			return "", fmt.Errorf("twilio rejected message (code %d): %w", restErr.Code, resilience.ErrPermanent)
		}
		return "", fmt.Errorf("twilio send: %w", err)
	}
	if resp.Sid == nil {
		return "", nil
	}
	return *resp.Sid, nil
}
