package domain

// Institution is a read-only entry in the institution directory describing
// a financial institution and its simulated API connectivity.
type Institution struct {
	ID         string `json:"id" mapstructure:"id"`
	Name       string `json:"name" mapstructure:"name"`
	Connected  bool   `json:"connected" mapstructure:"connected"`
	APIVersion string `json:"api_version,omitempty" mapstructure:"api_version"`
}
