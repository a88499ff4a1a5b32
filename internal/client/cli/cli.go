package cli

import (
	"fmt"
	"time"

	"github.com/iudanet/stocktake/internal/client/device"
	"github.com/iudanet/stocktake/internal/client/iocli"
)

// staleAfter порог, после которого участник в выводе show помечается как
// давно не выходивший на связь. Чисто информационный: из ростера никто
// не выселяется.
const staleAfter = 10 * time.Minute

type Cli struct {
	io     iocli.IO
	device device.Service
}

func New(io iocli.IO, deviceSvc device.Service) *Cli {
	return &Cli{
		io:     io,
		device: deviceSvc,
	}
}

func PrintUsage() {
	fmt.Println("Stocktake Client")
	fmt.Println()
	fmt.Println("Usage:")
	fmt.Println("  stocktake [OPTIONS] COMMAND")
	fmt.Println()
	fmt.Println("Options:")
	fmt.Println("  --version        Show version information")
	fmt.Println("  --server URL     Sync server URL (empty = fully offline mode)")
	fmt.Println("  --db PATH        Path to local database (default: stocktake-client.db)")
	fmt.Println("  --catalog PATH   Path to CSV barcode catalog (code,item_key)")
	fmt.Println("  --upstream URL   Inventory system endpoint for locked totals upload")
	fmt.Println()
	fmt.Println("Commands:")
	fmt.Println("  create <name>            Create a counting session (this device becomes host)")
	fmt.Println("  join <session_id>        Join a session on the sync server")
	fmt.Println("  join -packet [text]      Join a session from a host invite packet")
	fmt.Println("  invite [-chunk N]        Print the invite packet for this session (host only)")
	fmt.Println("  leave [-force]           Leave the session; -force drops undelivered counts")
	fmt.Println("  count <item_key> <qty>   Record a count delta (negative corrects)")
	fmt.Println("  scan <code> [qty]        Record a delta by scanned code (default qty 1)")
	fmt.Println("  sync                     Push pending events to the server, adopt totals")
	fmt.Println("  show                     Show session state: roster and running totals")
	fmt.Println("  status                   Show device identity and outbox state")
	fmt.Println("  export [-chunk N]        Encode pending events as a packet for the host")
	fmt.Println("  import [text]            Merge a participant packet, print the ack (host only)")
	fmt.Println("  ack [text]               Apply an ack packet from the host")
	fmt.Println("  finalize [-lock] [-yes] [-upload]")
	fmt.Println("                           Compute mismatches; -lock closes the session for good")
	fmt.Println()
	fmt.Println("Examples:")
	fmt.Println("  # Networked crew")
	fmt.Println("  stocktake --server https://stocktake.local create \"Warehouse A\"")
	fmt.Println("  stocktake --server https://stocktake.local join 7d8f2c1a-...")
	fmt.Println("  stocktake count widget-blue 12")
	fmt.Println("  stocktake count widget-blue -2")
	fmt.Println("  stocktake sync")
	fmt.Println()
	fmt.Println("  # Air-gapped crew: packets travel as QR codes or pasted text")
	fmt.Println("  stocktake create \"Cold storage\"")
	fmt.Println("  stocktake invite -chunk 256")
	fmt.Println("  stocktake join -packet")
	fmt.Println("  stocktake export")
	fmt.Println("  stocktake import")
	fmt.Println("  stocktake ack")
	fmt.Println()
	fmt.Println("  # Closing out")
	fmt.Println("  stocktake finalize")
	fmt.Println("  stocktake finalize -lock -upload")
}
