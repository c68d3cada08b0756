package rest

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/inboxproxy/inboxproxy/pkg/mailbox"
	"github.com/inboxproxy/inboxproxy/pkg/rest/model"
	"github.com/inboxproxy/inboxproxy/pkg/server/web"
	"github.com/inboxproxy/inboxproxy/pkg/upstream"
	"github.com/rs/zerolog/log"
)

const noKeyMessage = "Server is not configured with an API key"

// RootStatusV1 reports service health.
func RootStatusV1(w http.ResponseWriter, req *http.Request, ctx *web.Context) error {
	return web.RenderJSON(w, http.StatusOK, &model.JSONStatus{
		Status:  "ok",
		Message: web.ServiceName() + " is running",
	})
}

// AccountCreateV1 provisions a new temporary mailbox and returns its
// identifiers. The caller must retain them for later wait and delete calls.
func AccountCreateV1(w http.ResponseWriter, req *http.Request, ctx *web.Context) error {
	gw, err := ctx.Gateway()
	if err != nil {
		if errors.Is(err, upstream.ErrMissingAPIKey) {
			web.RenderError(w, http.StatusInternalServerError, noKeyMessage)
			return nil
		}
		return err
	}

	up := ctx.RootConfig.Upstream
	session, err := mailbox.Provision(req.Context(), gw, mailbox.Options{
		Domain:     up.Domain,
		Password:   up.Password,
		MaxRetries: up.MaxRetries,
		RetryDelay: up.RetryDelay,
	})
	if err != nil {
		log.Error().Str("module", "rest").Err(err).Msg("Account creation failed")
		web.RenderError(w, http.StatusInternalServerError, err.Error())
		return nil
	}

	return web.RenderJSON(w, http.StatusCreated, &model.JSONAccount{
		Message:   "Account created successfully",
		Address:   session.Address,
		Password:  session.Password,
		AccountID: session.AccountID,
		MailboxID: session.MailboxID,
	})
}

// MessageWaitV1 blocks until the given mailbox receives a message or the poll
// deadline passes. The handler performs no retries of its own; the poll loop
// is the retry.
func MessageWaitV1(w http.ResponseWriter, req *http.Request, ctx *web.Context) error {
	var body model.JSONMessageRequest
	if err := json.NewDecoder(req.Body).Decode(&body); err != nil {
		web.RenderError(w, http.StatusBadRequest, "Invalid JSON request body")
		return nil
	}
	if body.AccountID == "" || body.MailboxID == "" {
		web.RenderError(w, http.StatusBadRequest,
			"Missing 'accountId' or 'mailboxId' in request body")
		return nil
	}

	gw, err := ctx.Gateway()
	if err != nil {
		if errors.Is(err, upstream.ErrMissingAPIKey) {
			web.RenderError(w, http.StatusInternalServerError, noKeyMessage)
			return nil
		}
		return err
	}

	session := mailbox.NewSession(gw, mailbox.Account{
		AccountID: body.AccountID,
		MailboxID: body.MailboxID,
	})
	msg, err := session.WaitForMessage(req.Context(),
		time.Duration(body.Timeout)*time.Second,
		time.Duration(body.Interval)*time.Second)
	if err != nil {
		var timeoutErr *mailbox.TimeoutError
		if errors.As(err, &timeoutErr) {
			web.RenderError(w, http.StatusRequestTimeout, err.Error())
			return nil
		}
		log.Error().Str("module", "rest").Str("accountId", body.AccountID).Err(err).
			Msg("Wait for message failed")
		web.RenderError(w, http.StatusInternalServerError, err.Error())
		return nil
	}

	// The provider's message record is passed through untouched.
	return web.RenderJSON(w, http.StatusOK, msg)
}

// AccountDeleteV1 removes an account from the provider. Deletion is
// best-effort and idempotent from the caller's point of view.
func AccountDeleteV1(w http.ResponseWriter, req *http.Request, ctx *web.Context) error {
	accountID := ctx.Vars["accountId"]

	gw, err := ctx.Gateway()
	if err != nil {
		if errors.Is(err, upstream.ErrMissingAPIKey) {
			web.RenderError(w, http.StatusInternalServerError, noKeyMessage)
			return nil
		}
		return err
	}

	session := mailbox.NewSession(gw, mailbox.Account{AccountID: accountID})
	if err := session.Delete(req.Context()); err != nil {
		log.Error().Str("module", "rest").Str("accountId", accountID).Err(err).
			Msg("Account deletion failed")
		web.RenderError(w, http.StatusInternalServerError, err.Error())
		return nil
	}

	return web.RenderJSON(w, http.StatusOK, &model.JSONResult{
		Message: fmt.Sprintf("Account %s deleted successfully", accountID),
	})
}
