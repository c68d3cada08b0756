// Package model contains the JSON types exchanged with inboxproxy clients.
package model

// JSONStatus is returned by the root endpoint.
type JSONStatus struct {
	Status  string `json:"status"`
	Message string `json:"message"`
}

// JSONAccount is returned by the create account endpoint. Callers must retain
// the identifiers; the service keeps no state between requests.
type JSONAccount struct {
	Message   string `json:"message"`
	Address   string `json:"address"`
	Password  string `json:"password"`
	AccountID string `json:"accountId"`
	MailboxID string `json:"mailboxId"`
}

// JSONMessageRequest is the request body for the wait for message endpoint.
// Timeout and Interval are in seconds; zero selects the server defaults.
type JSONMessageRequest struct {
	AccountID string `json:"accountId"`
	MailboxID string `json:"mailboxId"`
	Timeout   int    `json:"timeout"`
	Interval  int    `json:"interval"`
}

// JSONResult is returned by endpoints with no payload beyond a message.
type JSONResult struct {
	Message string `json:"message"`
}

// JSONError carries an error string to the client.
type JSONError struct {
	Error string `json:"error"`
}
