package cli

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"strings"

	"github.com/iudanet/stocktake/internal/client/device"
	"github.com/iudanet/stocktake/internal/packet"
)

func (c *Cli) runCreate(ctx context.Context, args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("missing session name. Usage: stocktake create <name>")
	}
	name := strings.Join(args, " ")

	session, err := c.device.CreateSession(ctx, name)
	if err != nil {
		return err
	}

	c.io.Println("=== Session Created ===")
	c.io.Printf("Name:       %s\n", session.Name)
	c.io.Printf("Session ID: %s\n", session.ID)
	c.io.Println()
	c.io.Println("This device is the host. Hand out the session ID (networked crew)")
	c.io.Println("or run 'stocktake invite' to print a join packet (air-gapped crew).")

	return nil
}

func (c *Cli) runJoin(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("join", flag.ContinueOnError)
	fromPacket := fs.Bool("packet", false, "join from an invite packet instead of a session id")
	if err := fs.Parse(args); err != nil {
		return err
	}
	rest := fs.Args()

	if *fromPacket {
		encoded, err := c.readPacketText(rest, "Paste invite packet")
		if err != nil {
			return err
		}
		m, err := c.device.JoinFromPacket(ctx, encoded)
		if err != nil {
			return err
		}
		c.io.Printf("Joined session %q (%s)\n", m.SessionName, m.SessionID)
		c.io.Println("Counts will travel back to the host as export packets.")
		return nil
	}

	if len(rest) == 0 {
		return fmt.Errorf("missing session id. Usage: stocktake join <session_id> | join -packet")
	}

	m, err := c.device.Join(ctx, rest[0])
	if err != nil {
		return err
	}
	c.io.Printf("Joined session %q (%s)\n", m.SessionName, m.SessionID)
	c.io.Println("Run 'stocktake sync' after counting to push events to the server.")

	return nil
}

func (c *Cli) runLeave(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("leave", flag.ContinueOnError)
	force := fs.Bool("force", false, "leave even if undelivered counts remain in the outbox")
	if err := fs.Parse(args); err != nil {
		return err
	}

	if err := c.device.Leave(ctx, *force); err != nil {
		if errors.Is(err, device.ErrPendingEvents) {
			return fmt.Errorf("%w. Run 'stocktake sync' or 'stocktake export' first, or leave with -force to drop them", err)
		}
		return err
	}

	c.io.Println("Left the session. Local counting history is kept.")

	return nil
}

func (c *Cli) runInvite(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("invite", flag.ContinueOnError)
	chunkSize := fs.Int("chunk", 0, "split the packet into frames of at most this many characters")
	if err := fs.Parse(args); err != nil {
		return err
	}

	encoded, err := c.device.InvitePacket(ctx)
	if err != nil {
		return err
	}

	c.io.Println("=== Invite Packet ===")
	c.printPacket(encoded, *chunkSize)

	return nil
}

// printPacket выводит пакет целиком или кадрами фиксированной ширины
// под размер QR-кода.
func (c *Cli) printPacket(encoded string, chunkSize int) {
	if chunkSize <= 0 {
		c.io.Println(encoded)
		return
	}
	for _, chunk := range packet.Chunks(encoded, chunkSize) {
		c.io.Println(chunk)
	}
}

// readPacketText собирает текст пакета из аргументов или построчного
// ввода. Несколько строк/аргументов склеиваются как кадры чанкованного
// пакета; одиночный текст проходит как есть.
func (c *Cli) readPacketText(args []string, prompt string) (string, error) {
	pieces := args
	if len(pieces) == 0 {
		c.io.Printf("%s (empty line to finish):\n", prompt)
		for {
			line, err := c.io.ReadInput("> ")
			if err != nil {
				return "", fmt.Errorf("failed to read packet: %w", err)
			}
			if line == "" {
				break
			}
			pieces = append(pieces, line)
		}
	}

	if len(pieces) == 0 {
		return "", fmt.Errorf("no packet text given")
	}
	if len(pieces) == 1 && !strings.HasPrefix(pieces[0], "STKC|") {
		return pieces[0], nil
	}
	return packet.Join(pieces)
}
