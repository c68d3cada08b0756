package mailbox

import (
	"context"
	"encoding/json"

	"github.com/inboxproxy/inboxproxy/pkg/upstream"
)

// stubGateway records calls and delegates to optional function fields.
type stubGateway struct {
	createFunc func(address, password string) (*upstream.AccountResult, error)
	listFunc   func(accountID, mailboxID string) ([]json.RawMessage, error)
	deleteFunc func(accountID string) error

	createAddresses []string
	listCalls       int
	deleteCalls     []string
}

func (g *stubGateway) CreateAccount(_ context.Context, address, password string) (*upstream.AccountResult, error) {
	g.createAddresses = append(g.createAddresses, address)
	if g.createFunc != nil {
		return g.createFunc(address, password)
	}
	return inboxResult("acct1", address), nil
}

func (g *stubGateway) ListMessages(_ context.Context, accountID, mailboxID string) ([]json.RawMessage, error) {
	g.listCalls++
	if g.listFunc != nil {
		return g.listFunc(accountID, mailboxID)
	}
	return nil, nil
}

func (g *stubGateway) DeleteAccount(_ context.Context, accountID string) error {
	g.deleteCalls = append(g.deleteCalls, accountID)
	if g.deleteFunc != nil {
		return g.deleteFunc(accountID)
	}
	return nil
}

// inboxResult builds a create response containing an INBOX mailbox.
func inboxResult(accountID, address string) *upstream.AccountResult {
	return &upstream.AccountResult{
		ID:      accountID,
		Address: address,
		Mailboxes: []upstream.Mailbox{
			{ID: "mb-" + accountID, Path: "INBOX"},
			{ID: "trash-" + accountID, Path: "Trash"},
		},
	}
}
