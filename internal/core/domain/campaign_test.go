package domain

import "testing"

func TestSplitPledge(t *testing.T) {
	cases := []struct {
		amount   int64
		donation int64
		fee      int64
	}{
		{100, 98, 2},
		{1000, 980, 20},
		{50, 49, 1},
		{49, 48, 0},
		{1, 0, 0},
		{101, 98, 2},
	}
	for _, c := range cases {
		donation, fee := SplitPledge(c.amount)
		if donation != c.donation || fee != c.fee {
			t.Fatalf("SplitPledge(%d) = (%d, %d), want (%d, %d)",
				c.amount, donation, fee, c.donation, c.fee)
		}
		if donation+fee > c.amount {
			t.Fatalf("SplitPledge(%d): split %d exceeds amount", c.amount, donation+fee)
		}
	}
}
