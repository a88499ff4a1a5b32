package cli

import (
	"context"
	"fmt"
	"strconv"
)

func (c *Cli) runCount(ctx context.Context, args []string) error {
	if len(args) < 2 {
		return fmt.Errorf("usage: stocktake count <item_key> <qty>")
	}

	delta, err := strconv.ParseInt(args[1], 10, 64)
	if err != nil {
		return fmt.Errorf("qty must be an integer, got %q", args[1])
	}

	event, err := c.device.Record(ctx, args[0], delta)
	if err != nil {
		return err
	}

	c.io.Printf("Recorded %+d x %s (event %s)\n", event.DeltaQty, event.ItemKey, event.EventID)

	return nil
}

func (c *Cli) runScan(ctx context.Context, args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("usage: stocktake scan <code> [qty]")
	}

	delta := int64(1)
	if len(args) > 1 {
		var err error
		delta, err = strconv.ParseInt(args[1], 10, 64)
		if err != nil {
			return fmt.Errorf("qty must be an integer, got %q", args[1])
		}
	}

	result, err := c.device.Scan(ctx, args[0], delta)
	if err != nil {
		return err
	}

	c.io.Printf("Recorded %+d x %s (event %s)\n", delta, result.ItemKey, result.Event.EventID)
	if !result.Matched {
		c.io.Println("Warning: code not found in catalog, counted under the raw code.")
	}

	return nil
}
