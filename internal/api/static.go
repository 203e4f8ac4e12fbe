package api

import "net/http"

// accountSummary is the shape of the fixed account summary list. This
// endpoint serves a static fixture and is not connected to the ledger's
// live data.
type accountSummary struct {
	ID     string `json:"id"`
	Name   string `json:"name"`
	Type   string `json:"type"`
	Status string `json:"status"`
}

var accountSummaries = []accountSummary{
	{ID: "1", Name: "Fidelity Rollover IRA", Type: "IRA", Status: "Complete"},
	{ID: "2", Name: "Chase Checking", Type: "Checking Account", Status: "Incomplete"},
	{ID: "3", Name: "Vanguard Brokerage", Type: "Brokerage Account", Status: "Complete"},
}

// AccountSummaries serves the static account summary list.
func AccountSummaries(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, accountSummaries)
}
