package dto

// SetAPIKeyRequest carries a candidate API key for the rate provider.
type SetAPIKeyRequest struct {
	APIKey string `json:"apiKey" binding:"required,max=256"`
}

// APIKeyStatusResponse reports whether an API key is configured. The key itself is
// never returned, only a masked form.
type APIKeyStatusResponse struct {
	Configured      bool   `json:"configured"`
	MaskedKey       string `json:"maskedKey,omitempty"`
	ExpensesEnabled bool   `json:"expensesEnabled"`
	RatesRefreshed  *bool  `json:"ratesRefreshed,omitempty"`
}

// ExpensesEnabledResponse reports the feature gate state.
type ExpensesEnabledResponse struct {
	Enabled bool `json:"enabled"`
}
