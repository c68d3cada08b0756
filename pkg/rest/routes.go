package rest

import (
	"github.com/gorilla/mux"
	"github.com/inboxproxy/inboxproxy/pkg/server/web"
)

// SetupRoutes populates the routes for the REST interface.
func SetupRoutes(r *mux.Router) {
	r.Path("/").Handler(
		web.Handler(RootStatusV1)).Name("RootStatusV1").Methods("GET")
	r.Path("/api/create_account").Handler(
		web.Handler(AccountCreateV1)).Name("AccountCreateV1").Methods("POST")
	r.Path("/api/wait_for_message").Handler(
		web.Handler(MessageWaitV1)).Name("MessageWaitV1").Methods("POST")
	r.Path("/api/delete_account/{accountId}").Handler(
		web.Handler(AccountDeleteV1)).Name("AccountDeleteV1").Methods("DELETE")
}
