// Package notification sends transactional SMS. Delivery is best effort:
// callers log failures and carry on, a lost message never rolls back a
// committed state change.
package notification

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"
)

type Sender interface {
	Send(ctx context.Context, toPhone, body string) error
}

// Noop is used when no SMS provider is configured.
type Noop struct{}

func (Noop) Send(context.Context, string, string) error { return nil }

// Twilio sends via the Twilio Messages REST endpoint.
type Twilio struct {
	accountSID string
	authToken  string
	from       string
	http       *http.Client
}

func NewTwilio(accountSID, authToken, from string) *Twilio {
	return &Twilio{
		accountSID: accountSID,
		authToken:  authToken,
		from:       from,
		http:       &http.Client{Timeout: 10 * time.Second},
	}
}

func (t *Twilio) Send(ctx context.Context, toPhone, body string) error {
	if t.accountSID == "" || t.authToken == "" || t.from == "" {
		return errors.New("twilio credentials are not configured")
	}

	form := url.Values{}
	form.Set("To", toPhone)
	form.Set("From", t.from)
	form.Set("Body", body)

	endpoint := fmt.Sprintf("https://api.twilio.com/2010-04-01/Accounts/%s/Messages.json", t.accountSID)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, strings.NewReader(form.Encode()))
	if err != nil {
		return err
	}
	req.SetBasicAuth(t.accountSID, t.authToken)
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := t.http.Do(req)
	if err != nil {
		return fmt.Errorf("twilio request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return fmt.Errorf("twilio send failed: status %d", resp.StatusCode)
	}
	return nil
}
