package cli

import (
	"context"
	"flag"
	"fmt"

	"github.com/iudanet/stocktake/internal/models"
)

func (c *Cli) runFinalize(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("finalize", flag.ContinueOnError)
	lock := fs.Bool("lock", false, "lock the session after computing mismatches (irreversible)")
	yes := fs.Bool("yes", false, "skip the interactive lock confirmation")
	upload := fs.Bool("upload", false, "push locked totals to the inventory system")
	if err := fs.Parse(args); err != nil {
		return err
	}

	if *lock && !*yes {
		ok, err := c.io.Confirm("Lock the session? No further counts will be accepted")
		if err != nil {
			return fmt.Errorf("failed to read confirmation: %w", err)
		}
		if !ok {
			c.io.Println("Aborted. Re-run with -yes to lock without a prompt.")
			return nil
		}
	}

	result, err := c.device.Finalize(ctx, *lock)
	if err != nil {
		return err
	}

	c.io.Printf("Session is now %s\n", result.Status)
	c.io.Println()
	c.printTotals(result.Totals)

	if len(result.Mismatches) > 0 {
		c.io.Println()
		c.io.Printf("Mismatches against the previous locked count (%d):\n", len(result.Mismatches))
		for _, m := range result.Mismatches {
			c.io.Printf("  %-30s %6d -> %6d (%+d)\n", m.ItemKey, m.Previous, m.Current, m.Delta)
		}
	} else {
		c.io.Println()
		c.io.Println("No mismatches against the previous locked count.")
	}

	if *upload {
		if result.Status != models.SessionLocked {
			return fmt.Errorf("upload requires a locked session, re-run with -lock")
		}
		receipt, err := c.device.Upload(ctx)
		if err != nil {
			return err
		}
		c.io.Println()
		c.io.Printf("Totals uploaded, receipt: %s\n", receipt)
	}

	return nil
}
