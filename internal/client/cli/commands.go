package cli

import (
	"context"
	"fmt"
	"os"
)

func (c *Cli) Run(ctx context.Context, command string, args []string) {
	var err error

	switch command {
	case "create":
		err = c.runCreate(ctx, args)
	case "join":
		err = c.runJoin(ctx, args)
	case "invite":
		err = c.runInvite(ctx, args)
	case "leave":
		err = c.runLeave(ctx, args)
	case "count":
		err = c.runCount(ctx, args)
	case "scan":
		err = c.runScan(ctx, args)
	case "sync":
		err = c.runSync(ctx)
	case "show":
		err = c.runShow(ctx)
	case "status":
		err = c.runStatus(ctx)
	case "export":
		err = c.runExport(ctx, args)
	case "import":
		err = c.runImport(ctx, args)
	case "ack":
		err = c.runAck(ctx, args)
	case "finalize":
		err = c.runFinalize(ctx, args)
	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n", command)
		PrintUsage()
		os.Exit(1)
	}

	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
