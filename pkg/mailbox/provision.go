package mailbox

import (
	"context"
	"fmt"
	"math/rand"
	"time"

	"github.com/rs/zerolog/log"
)

const (
	localPartLen   = 10
	localPartChars = "abcdefghijklmnopqrstuvwxyz0123456789"
)

// Provisioning defaults.
const (
	DefaultMaxRetries = 3
	DefaultRetryDelay = 3 * time.Second
)

// Options control account provisioning.
type Options struct {
	Domain     string
	Password   string
	MaxRetries int
	RetryDelay time.Duration
}

// randomLocalPart returns a fresh lowercase alphanumeric mailbox name.
func randomLocalPart(n int) string {
	b := make([]byte, n)
	for i := range b {
		b[i] = localPartChars[rand.Intn(len(localPartChars))]
	}
	return string(b)
}

// Provision creates a fresh account under a random address, retrying with a
// newly generated address on each failure to avoid collisions. On success the
// returned session carries non-empty address, account, and mailbox IDs.
func Provision(ctx context.Context, gw Gateway, opts Options) (*Session, error) {
	if opts.MaxRetries <= 0 {
		opts.MaxRetries = DefaultMaxRetries
	}
	if opts.RetryDelay <= 0 {
		opts.RetryDelay = DefaultRetryDelay
	}

	var lastErr error
	for attempt := 1; attempt <= opts.MaxRetries; attempt++ {
		address := randomLocalPart(localPartLen) + "@" + opts.Domain
		log.Debug().Str("module", "mailbox").Str("address", address).
			Int("attempt", attempt).Int("maxRetries", opts.MaxRetries).
			Msg("Creating account")
		session, err := createOnce(ctx, gw, address, opts.Password)
		if err == nil {
			log.Info().Str("module", "mailbox").Str("address", address).
				Str("accountId", session.AccountID).Str("mailboxId", session.MailboxID).
				Msg("Account created")
			return session, nil
		}
		lastErr = err
		log.Warn().Str("module", "mailbox").Str("address", address).Err(err).
			Msg("Account creation attempt failed")
		if attempt < opts.MaxRetries {
			if err := sleep(ctx, opts.RetryDelay); err != nil {
				return nil, &ProvisionError{Message: "account creation interrupted", Err: err}
			}
		}
	}
	return nil, &ProvisionError{
		Message: fmt.Sprintf("account creation failed after %d attempts", opts.MaxRetries),
		Err:     lastErr,
	}
}

// createOnce performs a single create call and resolves the INBOX mailbox.
func createOnce(ctx context.Context, gw Gateway, address, password string) (*Session, error) {
	result, err := gw.CreateAccount(ctx, address, password)
	if err != nil {
		return nil, err
	}
	var mailboxID string
	for _, mb := range result.Mailboxes {
		if mb.Path == "INBOX" {
			mailboxID = mb.ID
			break
		}
	}
	if mailboxID == "" {
		return nil, &ProvisionError{Message: "no INBOX in created account"}
	}
	return &Session{
		gw: gw,
		Account: Account{
			Address:   address,
			Password:  password,
			AccountID: result.ID,
			MailboxID: mailboxID,
		},
	}, nil
}
