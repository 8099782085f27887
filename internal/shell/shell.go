// Package shell implements the interactive device-simulator prompt: a
// line-oriented command loop over the sync engine, the device state, and the
// snapshot store. The shell resolves nothing itself — configuration is
// handed in fully merged, and commands are serialized by the loop, which is
// what guarantees the single-writer discipline the engine assumes.
package shell

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/readersim/readersim/internal/adapter"
	"github.com/readersim/readersim/internal/logger"
	"github.com/readersim/readersim/internal/service"
	"github.com/readersim/readersim/internal/store"
	"github.com/readersim/readersim/models"
)

const intro = `readersim — e-reader sync simulator
Type 'help' for commands, 'sync' to sync the library.`

const helpText = `Commands:
  sync [full]        Sync library with the server ('sync full' resyncs from scratch)
  books [search]     List synced books, optionally filtered
  collections        List collections
  collection <name>  Show books in a collection
  book <title>       Show details for a book
  progress <pct> <title>  Push reading progress (0-100) for a book
  status             Show device status and sync state
  token              Show the current sync token
  reset              Clear all synced data and the sync token
  save [file]        Save device state to a snapshot
  load [file]        Load device state from a snapshot
  verbose            Toggle verbose logging
  exit               Quit`

// Shell is the interactive command surface around one device state.
type Shell struct {
	state   *models.DeviceState
	engine  service.SyncEngine
	store   *store.SnapshotStore
	library adapter.LibraryAdapter
	log     *logger.Logger

	in  io.Reader
	out io.Writer

	// autoStatePath, when non-empty, is saved to after every successful
	// sync and used as the default for save/load.
	autoStatePath string
}

// New builds a shell. in/out default to the caller's wiring (usually stdin
// and stdout); autoStatePath may be empty to disable auto-persistence.
func New(state *models.DeviceState, engine service.SyncEngine, snapStore *store.SnapshotStore,
	library adapter.LibraryAdapter, autoStatePath string, in io.Reader, out io.Writer, log *logger.Logger,
) *Shell {
	return &Shell{
		state:         state,
		engine:        engine,
		store:         snapStore,
		library:       library,
		log:           log,
		in:            in,
		out:           out,
		autoStatePath: autoStatePath,
	}
}

// Run reads commands until exit or EOF. Commands run strictly one at a time.
func (s *Shell) Run(ctx context.Context) error {
	fmt.Fprintln(s.out, titleStyle.Render(intro))

	scanner := bufio.NewScanner(s.in)
	for {
		fmt.Fprint(s.out, "reader> ")
		if !scanner.Scan() {
			fmt.Fprintln(s.out)
			return scanner.Err()
		}

		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}

		cmd, arg, _ := strings.Cut(line, " ")
		arg = strings.TrimSpace(arg)

		if quit := s.dispatch(ctx, scanner, strings.ToLower(cmd), arg); quit {
			return nil
		}
	}
}

func (s *Shell) dispatch(ctx context.Context, scanner *bufio.Scanner, cmd, arg string) bool {
	switch cmd {
	case "sync":
		s.cmdSync(ctx, strings.EqualFold(arg, "full"))
	case "books":
		s.cmdBooks(arg)
	case "collections":
		s.cmdCollections()
	case "collection":
		s.cmdCollection(arg)
	case "book":
		s.cmdBook(arg)
	case "progress":
		s.cmdProgress(ctx, arg)
	case "status":
		s.cmdStatus()
	case "token":
		s.cmdToken()
	case "reset":
		s.cmdReset(scanner)
	case "save":
		s.cmdSave(arg)
	case "load":
		s.cmdLoad(arg)
	case "verbose":
		logger.SetVerbose(!logger.Verbose())
		fmt.Fprintf(s.out, "Verbose mode: %v\n", logger.Verbose())
	case "help":
		fmt.Fprintln(s.out, helpStyle.Render(helpText))
	case "exit", "quit", "q":
		fmt.Fprintln(s.out, "Goodbye!")
		return true
	default:
		s.printErr(fmt.Errorf("unknown command %q (try 'help')", cmd))
	}
	return false
}

func (s *Shell) printErr(err error) {
	fmt.Fprintln(s.out, errorStyle.Render("✗ "+err.Error()))
}

func (s *Shell) printOK(msg string) {
	fmt.Fprintln(s.out, okStyle.Render("✓ "+msg))
}
