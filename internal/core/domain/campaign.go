package domain

import "time"

// FeeDivisor is the fixed fraction of every pledge diverted into the shared
// prize pool: 1/50 of the amount (2%). The remaining 49/50 is credited to the
// pledge destination. Both shares round down, so donation+fee never exceeds
// the pledged amount.
const FeeDivisor = 50

// Campaign represents a crowdfunding campaign.
// Amounts are stored in integer units (e.g. cents).
type Campaign struct {
	ID           int64
	Creator      string
	PayoutWallet string
	Deadline     time.Time
	Goal         int64
	TotalRaised  int64
	Balance      int64
	Description  string
	Active       bool
	Promoted     bool
	CreatedAt    time.Time
}

// SplitPledge divides a pledged amount into the donation credited to the
// destination and the fee credited to the shared prize pool. Integer floor
// division on both shares; any remainder from a non-exact split is dropped.
func SplitPledge(amount int64) (donation, fee int64) {
	donation = amount * (FeeDivisor - 1) / FeeDivisor
	fee = amount / FeeDivisor
	return donation, fee
}
