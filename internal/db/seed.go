package db

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
)

// Seed inserts demo data into the dreamfund database: a few allow-listed
// wallets, open campaigns and pledges with the fee split applied.
func Seed(ctx context.Context, db *pgxpool.Pool) error {
	wallets := []string{"0xfeed000000000000000000000000000000000001", "0xfeed000000000000000000000000000000000002"}
	for _, w := range wallets {
		if _, err := db.Exec(ctx,
			`INSERT INTO allowed_wallets (wallet) VALUES ($1) ON CONFLICT DO NOTHING`, w); err != nil {
			return err
		}
	}

	for i := 1; i <= 3; i++ {
		creator := fmt.Sprintf("0xc0ffee00000000000000000000000000000000%02d", i)
		payout := creator
		promoted := false
		if i == 1 {
			payout = wallets[0]
			promoted = true
		}
		deadline := time.Now().AddDate(0, 0, 7*i)
		goal := int64(100_000 * i)
		description := fmt.Sprintf("Demo campaign %d", i)

		var id int64
		err := db.QueryRow(ctx, `INSERT INTO campaigns
    (creator, payout_wallet, deadline, goal, description, active, promoted, created_at)
VALUES ($1,$2,$3,$4,$5,TRUE,$6,now()) RETURNING id`,
			creator, payout, deadline, goal, description, promoted).Scan(&id)
		if err != nil {
			return err
		}

		// two pledges per campaign
		for j := 1; j <= 2; j++ {
			amount := int64(5_000 * j)
			donation := amount * 49 / 50
			fee := amount / 50
			pledger := fmt.Sprintf("0xabcd0000000000000000000000000000000000%02d", j)

			if _, err = db.Exec(ctx, `UPDATE campaigns
SET balance = balance + $1, total_raised = total_raised + $1 WHERE id = $2`, donation, id); err != nil {
				return err
			}
			if _, err = db.Exec(ctx,
				`UPDATE treasury SET prize_pool = prize_pool + $1 WHERE id = 1`, fee); err != nil {
				return err
			}
			if _, err = db.Exec(ctx,
				`INSERT INTO pledgers (address, pledged_at) VALUES ($1, now())`, pledger); err != nil {
				return err
			}
		}
	}
	return nil
}
