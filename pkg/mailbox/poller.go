package mailbox

import (
	"context"
	"encoding/json"
	"time"

	"github.com/rs/zerolog/log"
)

// Polling defaults.
const (
	DefaultWaitTimeout  = 60 * time.Second
	DefaultPollInterval = 5 * time.Second
)

// WaitForMessage polls the account's inbox until a message appears or the
// timeout elapses, sleeping interval between polls. The newest message is the
// first element of the provider's listing. Polls within one call are strictly
// sequential; a transport or API failure ends the wait immediately.
//
// Note the gateway's own per-request timeout is independent of this deadline;
// a single slow provider call can overrun the poll timeout by up to that much.
func (s *Session) WaitForMessage(ctx context.Context, timeout, interval time.Duration) (json.RawMessage, error) {
	if s.AccountID == "" || s.MailboxID == "" {
		return nil, &ProvisionError{Message: "account identifiers are not set"}
	}
	if timeout <= 0 {
		timeout = DefaultWaitTimeout
	}
	if interval <= 0 {
		interval = DefaultPollInterval
	}

	log.Debug().Str("module", "mailbox").Str("accountId", s.AccountID).
		Dur("timeout", timeout).Dur("interval", interval).
		Msg("Waiting for message")
	start := time.Now()
	for time.Since(start) < timeout {
		msg, err := s.latestMessage(ctx)
		if err != nil {
			return nil, err
		}
		if msg != nil {
			return msg, nil
		}
		if err := sleep(ctx, interval); err != nil {
			return nil, err
		}
	}
	return nil, &TimeoutError{Timeout: timeout}
}

// latestMessage fetches the newest message in the inbox, or nil when empty.
func (s *Session) latestMessage(ctx context.Context) (json.RawMessage, error) {
	messages, err := s.gw.ListMessages(ctx, s.AccountID, s.MailboxID)
	if err != nil {
		return nil, err
	}
	if len(messages) == 0 {
		return nil, nil
	}
	latest := messages[0]
	var peek struct {
		Intro string `json:"intro"`
	}
	_ = json.Unmarshal(latest, &peek)
	log.Info().Str("module", "mailbox").Str("accountId", s.AccountID).
		Str("intro", peek.Intro).Msg("Message received")
	return latest, nil
}
