package cli

import (
	"context"
	"flag"
)

func (c *Cli) runExport(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("export", flag.ContinueOnError)
	chunkSize := fs.Int("chunk", 0, "split the packet into frames of at most this many characters")
	if err := fs.Parse(args); err != nil {
		return err
	}

	result, err := c.device.ExportPacket(ctx)
	if err != nil {
		return err
	}

	c.io.Printf("=== Outbox Packet (%d event(s)) ===\n", result.Events)
	c.printPacket(result.Encoded, *chunkSize)
	c.io.Println()
	c.io.Println("Show this to the host. Events stay queued until the host's ack comes back.")

	return nil
}

func (c *Cli) runImport(ctx context.Context, args []string) error {
	encoded, err := c.readPacketText(args, "Paste participant packet")
	if err != nil {
		return err
	}

	result, err := c.device.ImportPacket(ctx, encoded)
	if err != nil {
		return err
	}

	c.io.Printf("Merged packet from %s: %d applied, %d duplicate(s) absorbed\n",
		result.ActorID, result.Applied, result.Duplicates)
	c.io.Println()
	c.printTotals(result.Totals)
	c.io.Println()
	c.io.Println("=== Ack Packet ===")
	c.io.Println(result.AckPacket)
	c.io.Println("Show this back to the participant.")

	return nil
}

func (c *Cli) runAck(ctx context.Context, args []string) error {
	encoded, err := c.readPacketText(args, "Paste ack packet")
	if err != nil {
		return err
	}

	result, err := c.device.ApplyAck(ctx, encoded)
	if err != nil {
		return err
	}

	c.io.Printf("Ack applied: %d event(s) confirmed\n", result.Acked)
	if len(result.Totals) > 0 {
		c.io.Println()
		c.printTotals(result.Totals)
	}

	return nil
}
