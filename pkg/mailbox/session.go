// Package mailbox provisions temporary mailboxes on the upstream provider
// and polls them for incoming mail. Sessions are built per request; nothing
// is shared between concurrent callers.
package mailbox

import (
	"context"
	"encoding/json"
	"time"

	"github.com/inboxproxy/inboxproxy/pkg/upstream"
	"github.com/rs/zerolog/log"
)

// Gateway is the subset of the provider API used by this package.
// *upstream.Client satisfies it.
type Gateway interface {
	CreateAccount(ctx context.Context, address, password string) (*upstream.AccountResult, error)
	ListMessages(ctx context.Context, accountID, mailboxID string) ([]json.RawMessage, error)
	DeleteAccount(ctx context.Context, accountID string) error
}

// Account identifies a provisioned temporary mailbox. The MailboxID always
// refers to the INBOX folder resolved at creation time.
type Account struct {
	Address   string
	Password  string
	AccountID string
	MailboxID string
}

// Session pairs an Account with the gateway used to operate on it.
type Session struct {
	gw Gateway
	Account
}

// NewSession wraps existing account identifiers, as supplied by a caller
// that retained them from an earlier create call.
func NewSession(gw Gateway, account Account) *Session {
	return &Session{gw: gw, Account: account}
}

// Delete removes the account upstream and clears the local identifiers.
// Calling it without an account ID is a no-op.
func (s *Session) Delete(ctx context.Context) error {
	if s.AccountID == "" {
		log.Warn().Str("module", "mailbox").Msg("No account ID to delete")
		return nil
	}
	if err := s.gw.DeleteAccount(ctx, s.AccountID); err != nil {
		return err
	}
	log.Info().Str("module", "mailbox").Str("accountId", s.AccountID).Msg("Account deleted")
	s.Account = Account{}
	return nil
}

// sleep waits for d unless the context ends first.
func sleep(ctx context.Context, d time.Duration) error {
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
