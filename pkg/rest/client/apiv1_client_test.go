package client

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStatus(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
		assert.Equal(t, "/", req.URL.Path)
		_, _ = w.Write([]byte(`{"status":"ok","message":"inboxproxy is running"}`))
	}))
	defer ts.Close()

	c, err := New(ts.URL)
	require.NoError(t, err)

	status, err := c.Status(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "ok", status.Status)
}

func TestCreateAccount(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
		assert.Equal(t, "POST", req.Method)
		assert.Equal(t, "/api/create_account", req.URL.Path)
		w.WriteHeader(http.StatusCreated)
		_, _ = w.Write([]byte(`{
			"message": "Account created successfully",
			"address": "abc0123456@example.com",
			"password": "hunter2",
			"accountId": "acct1",
			"mailboxId": "mb1"
		}`))
	}))
	defer ts.Close()

	c, err := New(ts.URL)
	require.NoError(t, err)

	account, err := c.CreateAccount(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "abc0123456@example.com", account.Address)
	assert.Equal(t, "acct1", account.AccountID)
	assert.Equal(t, "mb1", account.MailboxID)
}

func TestWaitForMessage(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
		assert.Equal(t, "/api/wait_for_message", req.URL.Path)
		assert.Equal(t, "application/json", req.Header.Get("Content-Type"))
		_, _ = w.Write([]byte(`{"id":"m1","intro":"hello"}`))
	}))
	defer ts.Close()

	c, err := New(ts.URL)
	require.NoError(t, err)

	msg, err := c.WaitForMessage(context.Background(), "acct1", "mb1", 30, 2)
	require.NoError(t, err)
	assert.JSONEq(t, `{"id":"m1","intro":"hello"}`, string(msg))
}

func TestWaitForMessageTimeout(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
		w.WriteHeader(http.StatusRequestTimeout)
		_, _ = w.Write([]byte(`{"error":"no message received within 1m0s"}`))
	}))
	defer ts.Close()

	c, err := New(ts.URL)
	require.NoError(t, err)

	_, err = c.WaitForMessage(context.Background(), "acct1", "mb1", 60, 5)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no message received")
}

func TestDeleteAccount(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
		assert.Equal(t, "DELETE", req.Method)
		assert.Equal(t, "/api/delete_account/acct1", req.URL.Path)
		_, _ = w.Write([]byte(`{"message":"Account acct1 deleted successfully"}`))
	}))
	defer ts.Close()

	c, err := New(ts.URL)
	require.NoError(t, err)

	result, err := c.DeleteAccount(context.Background(), "acct1")
	require.NoError(t, err)
	assert.Contains(t, result.Message, "acct1")
}

func TestServerErrorPayload(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		_, _ = w.Write([]byte(`{"error":"Server is not configured with an API key"}`))
	}))
	defer ts.Close()

	c, err := New(ts.URL)
	require.NoError(t, err)

	_, err = c.CreateAccount(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not configured with an API key")
}
