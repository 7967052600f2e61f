package port

import "errors"

// Sentinel errors surfaced by the usecases. The HTTP adapter maps them to
// status codes with errors.Is; repositories and clients wrap lower-level
// failures into these before returning.
var (
	// ErrZeroAmount rejects non-positive pledge amounts.
	ErrZeroAmount = errors.New("amount must be positive")
	// ErrInvalidCampaign reports a campaign identifier outside the assigned range.
	ErrInvalidCampaign = errors.New("campaign does not exist")
	// ErrCampaignExpired rejects pledges targeting an inactive campaign.
	ErrCampaignExpired = errors.New("campaign is expired")
	// ErrTransferFailed reports an external value transfer that did not complete.
	ErrTransferFailed = errors.New("transfer failed")
	// ErrNotCampaignCreator rejects withdrawals by anyone but the campaign creator.
	ErrNotCampaignCreator = errors.New("caller is not the campaign creator")
	// ErrNotController rejects controller-gated operations by other callers.
	ErrNotController = errors.New("caller is not the controller")
	// ErrZeroBalance rejects withdrawals when there is nothing to withdraw.
	ErrZeroBalance = errors.New("nothing to withdraw")
	// ErrUpkeepNotNeeded reports an execute invocation whose preconditions
	// (due-check, distribution service idle) do not hold.
	ErrUpkeepNotNeeded = errors.New("upkeep not needed")
	// ErrStateQueryFailed reports that the distribution service state query
	// did not complete.
	ErrStateQueryFailed = errors.New("distribution state query failed")
	// ErrHandoffFailed reports that the distribution service update call did
	// not complete.
	ErrHandoffFailed = errors.New("prize pool handoff failed")
)
