package lts

// CommittedTransactionStatus is the outcome of a committed transaction.
type CommittedTransactionStatus string

const (
	CommittedTransactionStatusSuccess CommittedTransactionStatus = "Success"
	CommittedTransactionStatusFailure CommittedTransactionStatus = "Failure"
)

// TransactionIdentifiers are the hashes identifying a user transaction.
type TransactionIdentifiers struct {
	IntentHash       string `json:"intent_hash"`
	SignedIntentHash string `json:"signed_intent_hash"`
	PayloadHash      string `json:"payload_hash"`
}

type FungibleResourceBalanceChange struct {
	FungibleResourceAddress string `json:"fungible_resource_address"`
	BalanceChange           string `json:"balance_change"`
}

// FeeFungibleResourceBalanceChangeType says why an entity's XRD balance was
// changed by fee handling.
type FeeFungibleResourceBalanceChangeType string

const (
	FeePayment         FeeFungibleResourceBalanceChangeType = "FeePayment"
	FeeDistributed     FeeFungibleResourceBalanceChangeType = "FeeDistributed"
	TipDistributed     FeeFungibleResourceBalanceChangeType = "TipDistributed"
	RoyaltyDistributed FeeFungibleResourceBalanceChangeType = "RoyaltyDistributed"
)

type FeeFungibleResourceBalanceChange struct {
	Type                    FeeFungibleResourceBalanceChangeType `json:"type"`
	FungibleResourceAddress string                               `json:"fungible_resource_address"`
	BalanceChange           string                               `json:"balance_change"`
}

// EntityFungibleBalanceChanges aggregates the fungible balance changes of all
// vaults owned by one global entity.
type EntityFungibleBalanceChanges struct {
	EntityAddress string `json:"entity_address"`
	// FeeBalanceChange is the net fee change, if any. Deprecated by the node
	// in favour of FeeBalanceChanges.
	FeeBalanceChange     *FungibleResourceBalanceChange     `json:"fee_balance_change,omitempty"`
	FeeBalanceChanges    []FeeFungibleResourceBalanceChange `json:"fee_balance_changes"`
	NonFeeBalanceChanges []FungibleResourceBalanceChange    `json:"non_fee_balance_changes"`
}

type ResultantAccountFungibleBalances struct {
	AccountAddress    string                    `json:"account_address"`
	ResultantBalances []FungibleResourceBalance `json:"resultant_balances"`
}

// CommittedTransactionOutcome summarises one committed transaction.
type CommittedTransactionOutcome struct {
	StateVersion int64 `json:"state_version"`
	// ProposerTimestampMs is the proposer's timestamp, in milliseconds since
	// the Unix epoch.
	ProposerTimestampMs int64  `json:"proposer_timestamp_ms"`
	AccumulatorHash     string `json:"accumulator_hash"`
	// UserTransactionIdentifiers is nil for system transactions.
	UserTransactionIdentifiers       *TransactionIdentifiers            `json:"user_transaction_identifiers,omitempty"`
	Status                           CommittedTransactionStatus         `json:"status"`
	FungibleEntityBalanceChanges     []EntityFungibleBalanceChanges     `json:"fungible_entity_balance_changes"`
	ResultantAccountFungibleBalances []ResultantAccountFungibleBalances `json:"resultant_account_fungible_balances"`
	// TotalFee is the decimal amount of XRD paid as fee.
	TotalFee string `json:"total_fee"`
}

// StreamTransactionOutcomesRequest is the request body for Core API:
// POST "/lts/stream/transaction-outcomes"
type StreamTransactionOutcomesRequest struct {
	Network          string `json:"network"`
	FromStateVersion int64  `json:"from_state_version"`
	Limit            int    `json:"limit"`
}

// StreamTransactionOutcomesResponse contains the response for Core API:
// POST "/lts/stream/transaction-outcomes"
type StreamTransactionOutcomesResponse struct {
	FromStateVersion             int64                         `json:"from_state_version"`
	Count                        int                           `json:"count"`
	MaxLedgerStateVersion        int64                         `json:"max_ledger_state_version"`
	CommittedTransactionOutcomes []CommittedTransactionOutcome `json:"committed_transaction_outcomes"`
}

// StreamAccountTransactionOutcomesRequest is the request body for Core API:
// POST "/lts/stream/account-transaction-outcomes"
type StreamAccountTransactionOutcomesRequest struct {
	Network          string `json:"network"`
	AccountAddress   string `json:"account_address"`
	FromStateVersion int64  `json:"from_state_version"`
	Limit            int    `json:"limit"`
}

// StreamAccountTransactionOutcomesResponse contains the response for Core API:
// POST "/lts/stream/account-transaction-outcomes"
type StreamAccountTransactionOutcomesResponse = StreamTransactionOutcomesResponse
