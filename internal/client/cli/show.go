package cli

import (
	"context"
	"fmt"
	"time"

	"github.com/iudanet/stocktake/internal/models"
	"github.com/iudanet/stocktake/internal/tally"
)

func (c *Cli) runSync(ctx context.Context) error {
	result, err := c.device.Sync(ctx)
	if err != nil {
		return err
	}

	c.io.Printf("Pushed %d event(s): %d applied, %d duplicate(s) absorbed\n",
		result.Pushed, result.Applied, result.Duplicates)
	c.io.Println()
	c.printTotals(result.Totals)

	return nil
}

func (c *Cli) runShow(ctx context.Context) error {
	status, err := c.device.Status(ctx)
	if err != nil {
		return err
	}
	if status.Membership == nil {
		c.io.Println("Not in a counting session. Run 'stocktake create' or 'stocktake join'.")
		return nil
	}

	c.io.Printf("=== Session %q ===\n", status.Membership.SessionName)
	c.io.Printf("ID:     %s\n", status.Membership.SessionID)
	if status.Session != nil {
		c.io.Printf("Status: %s\n", status.Session.Status)
	}
	c.io.Println()

	if len(status.Participants) > 0 {
		c.io.Printf("Participants (%d):\n", len(status.Participants))
		for _, p := range status.Participants {
			c.io.Printf("  %s\n", formatParticipant(p, time.Now()))
		}
		c.io.Println()
	}

	c.printTotals(status.Totals)

	if status.Pending > 0 {
		c.io.Println()
		c.io.Printf("Pending: %d event(s) not yet delivered to the merge point\n", status.Pending)
	}

	return nil
}

func (c *Cli) runStatus(ctx context.Context) error {
	status, err := c.device.Status(ctx)
	if err != nil {
		return err
	}

	c.io.Println("=== Device Status ===")
	c.io.Printf("Device ID:    %s\n", status.Identity.DeviceID)
	c.io.Printf("Display name: %s\n", status.Identity.DisplayName)
	c.io.Println()

	if status.Membership == nil {
		c.io.Println("Session: none")
		return nil
	}

	c.io.Printf("Session: %q (%s)\n", status.Membership.SessionName, status.Membership.SessionID)
	c.io.Printf("Role:    %s\n", status.Membership.Role)
	if status.Membership.Remote {
		c.io.Println("Mode:    networked (sync server)")
	} else {
		c.io.Println("Mode:    air-gapped (packet relay)")
	}

	c.io.Println()
	if status.Pending > 0 {
		c.io.Printf("Pending sync: %d event(s) waiting\n", status.Pending)
	} else {
		c.io.Println("All events delivered")
	}

	return nil
}

func (c *Cli) printTotals(totals map[string]int64) {
	if len(totals) == 0 {
		c.io.Println("No counts recorded yet.")
		return
	}

	c.io.Printf("Totals (%d item(s)):\n", len(totals))
	for _, key := range tally.SortedItemKeys(totals) {
		c.io.Printf("  %-30s %6d\n", key, totals[key])
	}
}

// formatParticipant строка ростера; давно молчавшие участники помечаются,
// но никогда не выселяются.
func formatParticipant(p models.Participant, now time.Time) string {
	line := fmt.Sprintf("%-20s %s", p.DisplayName, p.Role)
	if !p.LastSeenAt.IsZero() && now.Sub(p.LastSeenAt) > staleAfter {
		line += fmt.Sprintf("  (last seen %s ago)", now.Sub(p.LastSeenAt).Round(time.Minute))
	}
	return line
}
