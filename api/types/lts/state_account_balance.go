package lts

// FungibleResourceBalance is the balance of one fungible resource.
type FungibleResourceBalance struct {
	FungibleResourceAddress string `json:"fungible_resource_address"`
	// Amount is a decimal string with up to 18 decimal places.
	Amount string `json:"amount"`
}

// StateAccountFungibleResourceBalanceRequest is the request body for Core API:
// POST "/lts/state/account-fungible-resource-balance"
type StateAccountFungibleResourceBalanceRequest struct {
	Network         string `json:"network"`
	AccountAddress  string `json:"account_address"`
	ResourceAddress string `json:"resource_address"`
}

// StateAccountFungibleResourceBalanceResponse contains the response for Core API:
// POST "/lts/state/account-fungible-resource-balance"
type StateAccountFungibleResourceBalanceResponse struct {
	StateVersion            int64                   `json:"state_version"`
	AccountAddress          string                  `json:"account_address"`
	FungibleResourceBalance FungibleResourceBalance `json:"fungible_resource_balance"`
}

// Validate checks that required members are present.
func (r StateAccountFungibleResourceBalanceResponse) Validate() error {
	if r.AccountAddress == "" {
		return missingField("StateAccountFungibleResourceBalanceResponse", "account_address")
	}
	return nil
}

// StateAccountAllFungibleResourceBalancesRequest is the request body for Core API:
// POST "/lts/state/account-all-fungible-resource-balances"
type StateAccountAllFungibleResourceBalancesRequest struct {
	Network        string `json:"network"`
	AccountAddress string `json:"account_address"`
}

// StateAccountAllFungibleResourceBalancesResponse contains the response for Core API:
// POST "/lts/state/account-all-fungible-resource-balances"
type StateAccountAllFungibleResourceBalancesResponse struct {
	StateVersion             int64                     `json:"state_version"`
	AccountAddress           string                    `json:"account_address"`
	FungibleResourceBalances []FungibleResourceBalance `json:"fungible_resource_balances"`
}

// Validate checks that required members are present.
func (r StateAccountAllFungibleResourceBalancesResponse) Validate() error {
	if r.AccountAddress == "" {
		return missingField("StateAccountAllFungibleResourceBalancesResponse", "account_address")
	}
	return nil
}
