// BingoCaller — a live bingo draw-and-announcement console.
//
// Usage:
//
//	bingocaller [-verbose] [-quiet] [-config bingo.yaml]
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	stdlog "log"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"

	"github.com/abenezerd/bingocaller/internal/announce"
	"github.com/abenezerd/bingocaller/internal/audio"
	"github.com/abenezerd/bingocaller/internal/cards"
	"github.com/abenezerd/bingocaller/internal/config"
	"github.com/abenezerd/bingocaller/internal/display"
	"github.com/abenezerd/bingocaller/internal/domain"
	"github.com/abenezerd/bingocaller/internal/game"
	"github.com/abenezerd/bingocaller/internal/logger"
	"github.com/abenezerd/bingocaller/internal/report"
	"github.com/abenezerd/bingocaller/internal/storage"
)

func main() {
	_ = godotenv.Load()

	verbose := flag.Bool("verbose", false, "enable verbose/debug logging")
	quiet := flag.Bool("quiet", false, "disable all logging")
	logFile := flag.String("log-file", ".bingo-logs/bingo.log", "file to write logs to (use \"stderr\" to log to console)")
	configPath := flag.String("config", "", "path to a YAML settings file")
	clipsDir := flag.String("clips-dir", "", "directory holding the voice clips (overrides config)")
	noAudio := flag.Bool("no-audio", false, "disable clip playback (announcements are logged only)")
	flag.Parse()

	// Configure logger.
	logLevel := logger.LevelNormal
	if *verbose {
		logLevel = logger.LevelVerbose
	}
	if *quiet {
		logLevel = logger.LevelOff
	}

	// Direct logs to a file by default so the REPL stays clean.
	var logOut io.Writer = os.Stderr
	if *logFile != "" && *logFile != "stderr" {
		dir := filepath.Dir(*logFile)
		if dir != "" && dir != "." {
			os.MkdirAll(dir, 0o755)
		}
		f, err := os.OpenFile(*logFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			fmt.Fprintf(os.Stderr, "warning: could not open log file %s: %v (falling back to stderr)\n", *logFile, err)
		} else {
			logOut = f
			defer f.Close()
		}
	}

	// Redirect Go's default log package (used by third-party libs) to the
	// same output so it doesn't spam the terminal.
	stdlog.SetOutput(logOut)
	stdlog.SetFlags(stdlog.Ltime)

	log := logger.New(logLevel, logOut)

	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
	if *clipsDir != "" {
		cfg.ClipsDir = *clipsDir
	}

	// Set up context — cancelled when the UI quits.
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Wire dependencies.
	deck := cards.NewMemorySource(log)
	store := storage.NewMemoryStore(log)
	reports := report.NewMemorySink(log)
	ui := display.NewUI(store)

	// Build the clip player. If the audio device can't be opened (headless
	// boxes, CI) fall back to the silent player so the game still runs.
	var player domain.ClipPlayer
	if *noAudio {
		player = audio.NewNoOp(log)
		log.Info("audio disabled by flag")
	} else {
		catalog := audio.NewCatalog(cfg.ClipsDir, log)
		p, err := audio.NewPlayer(catalog, log)
		if err != nil {
			log.Error("audio init failed, announcements muted: %v", err)
			player = audio.NewNoOp(log)
		} else {
			player = p
			log.Info("audio enabled (clips=%s)", cfg.ClipsDir)
		}
	}

	announcer := announce.New(player, log)
	announcer.Start(ctx)

	// Build the CLI app.
	app := &cliApp{
		cfg:     cfg,
		deck:    deck,
		store:   store,
		reports: reports,
		queue:   announcer,
		log:     log,
		ui:      ui,
	}

	fmt.Println(display.RenderBanner())
	fmt.Println(display.BannerStyle.Render("  Type 'help' for commands, 'quit' to exit."))
	fmt.Println()

	// Run app logic in a background goroutine.
	go func() {
		ui.WaitReady()
		app.run(ctx)
		ui.Quit()
	}()

	// Bubble Tea owns the terminal — blocks until quit.
	if err := ui.Run(); err != nil {
		log.Error("display: %v", err)
	}
	cancel()
}

type cliApp struct {
	cfg     *config.Config
	deck    domain.CardSource
	store   domain.SessionStore
	reports *report.MemorySink
	queue   domain.Announcer
	log     *logger.Logger
	ui      *display.UI

	caller *game.Caller  // nil until the first game is created
	sold   []domain.Card // cards sold for the next (or current) game
}

func (a *cliApp) run(ctx context.Context) {
	a.ui.PrintHint("Sell cards with 'sell <id> <id> ...', then 'start' to begin calling.")
	a.ui.Println("")

	uiCh := a.ui.InputChan()

	for {
		var input string
		var ok bool

		select {
		case <-ctx.Done():
			return
		case input, ok = <-uiCh:
			if !ok {
				return
			}
		}

		input = strings.TrimSpace(input)
		if input == "" {
			continue
		}

		fields := strings.Fields(strings.ToLower(input))
		cmd, args := fields[0], fields[1:]

		switch cmd {
		case "help":
			a.showHelp()
		case "cards":
			a.showDeck(ctx)
		case "card":
			a.showCard(ctx, args)
		case "sell":
			a.sell(ctx, args)
		case "start":
			a.start(ctx)
		case "pause":
			a.pause(ctx)
		case "resume":
			a.resume(ctx)
		case "check":
			a.check(ctx, args)
		case "board":
			a.board()
		case "history":
			a.history()
		case "status":
			a.status()
		case "end":
			a.end(ctx)
		case "quit", "exit":
			a.quit(ctx)
			return
		default:
			a.ui.PrintHint(fmt.Sprintf("Unknown command %q — type 'help'.", cmd))
		}
	}
}

// session returns the current game session, or nil.
func (a *cliApp) session() *domain.Session {
	if a.caller == nil {
		return nil
	}
	return a.caller.Session()
}

func (a *cliApp) showDeck(ctx context.Context) {
	deck, err := a.deck.List(ctx)
	if err != nil {
		a.ui.PrintUrgent(fmt.Sprintf("Error loading cards: %v", err))
		return
	}
	a.ui.PrintInfo(fmt.Sprintf("%d cards in the deck (ids 1-%d).", len(deck), len(deck)))
	if len(a.sold) > 0 {
		ids := make([]string, len(a.sold))
		for i, c := range a.sold {
			ids[i] = strconv.Itoa(c.ID)
		}
		a.ui.PrintInfo("Sold: " + strings.Join(ids, ", "))
	}
	a.ui.PrintHint("Use 'card <id>' to inspect one, 'sell <id> ...' to sell.")
}

func (a *cliApp) showCard(ctx context.Context, args []string) {
	if len(args) != 1 {
		a.ui.PrintHint("Usage: card <id>")
		return
	}
	id, err := strconv.Atoi(args[0])
	if err != nil {
		a.ui.PrintHint("Usage: card <id>")
		return
	}

	card, err := a.deck.Get(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			a.ui.PrintUrgent(fmt.Sprintf("No card with id %d.", id))
		} else {
			a.ui.PrintUrgent(fmt.Sprintf("Error: %v", err))
		}
		return
	}

	a.ui.PrintInfo(fmt.Sprintf("Card %d", card.ID))
	a.printGrid(card.Grid(), nil)
}

// printGrid renders a card, marking called cells when marked is non-nil.
func (a *cliApp) printGrid(g domain.CardGrid, marked *domain.MarkedGrid) {
	a.ui.PrintHint("   B   I   N   G   O")
	for row := 0; row < 5; row++ {
		var b strings.Builder
		for col := 0; col < 5; col++ {
			if row == domain.FreeRow && col == domain.FreeCol {
				b.WriteString("   *")
				continue
			}
			cell := fmt.Sprintf(" %3d", g[row][col])
			if marked != nil && marked[row][col] {
				cell = fmt.Sprintf(" %2d*", g[row][col])
			}
			b.WriteString(cell)
		}
		a.ui.PrintInfo(b.String())
	}
}

func (a *cliApp) sell(ctx context.Context, args []string) {
	if len(args) == 0 {
		a.ui.PrintHint("Usage: sell <id> <id> ...")
		return
	}
	if s := a.session(); s != nil && s.Status != domain.GameOver {
		a.ui.PrintUrgent("A game is in progress — end it before selling more cards.")
		return
	}

	for _, arg := range args {
		id, err := strconv.Atoi(arg)
		if err != nil {
			a.ui.PrintHint(fmt.Sprintf("Skipping %q: not a card id.", arg))
			continue
		}
		card, err := a.deck.Get(ctx, id)
		if err != nil {
			a.ui.PrintUrgent(fmt.Sprintf("No card with id %d.", id))
			continue
		}
		if a.isSold(id) {
			a.ui.PrintHint(fmt.Sprintf("Card %d is already sold.", id))
			continue
		}
		a.sold = append(a.sold, *card)
	}

	total := a.cfg.CardPrice * float64(len(a.sold))
	a.ui.PrintInfo(fmt.Sprintf("%d card(s) sold, %.2f collected.", len(a.sold), total))
}

func (a *cliApp) isSold(id int) bool {
	for _, c := range a.sold {
		if c.ID == id {
			return true
		}
	}
	return false
}

func (a *cliApp) start(ctx context.Context) {
	if s := a.session(); s != nil && s.Status != domain.GameOver {
		a.ui.PrintUrgent("A game is already running.")
		return
	}
	if len(a.sold) == 0 {
		a.ui.PrintHint("Sell at least one card before starting.")
		return
	}

	// One caller per game; a finished one is discarded here.
	a.caller = game.New(a.store, a.queue, a.reports, a.log,
		game.WithDrawInterval(a.cfg.Interval()),
	)

	session, err := a.caller.NewGame(ctx, a.sold, a.cfg.CardPrice,
		a.cfg.PatternConfig(), a.cfg.VoiceProfile(), a.cfg.Interval())
	if err != nil {
		a.ui.PrintUrgent(fmt.Sprintf("Error creating game: %v", err))
		return
	}
	if err := a.caller.Start(ctx); err != nil {
		a.ui.PrintUrgent(fmt.Sprintf("Error starting game: %v", err))
		return
	}

	a.ui.PrintWinner(fmt.Sprintf("Game %s started — %d cards in play.", session.ID, len(session.Cards)))
	a.ui.PrintHint(fmt.Sprintf("Drawing every %s. 'pause' to hold, 'check <n>' to verify a card.", a.cfg.Interval()))
}

func (a *cliApp) pause(ctx context.Context) {
	if a.caller == nil {
		a.ui.PrintHint("No game in progress.")
		return
	}
	if err := a.caller.Pause(ctx); err != nil {
		a.ui.PrintUrgent(fmt.Sprintf("Error: %v", err))
		return
	}
	a.ui.PrintInfo("Game paused.")
}

func (a *cliApp) resume(ctx context.Context) {
	if a.caller == nil {
		a.ui.PrintHint("No game in progress.")
		return
	}
	if err := a.caller.Resume(ctx); err != nil {
		a.ui.PrintUrgent(fmt.Sprintf("Error: %v", err))
		return
	}
	a.ui.PrintInfo("Game resumed.")
}

func (a *cliApp) check(ctx context.Context, args []string) {
	if a.caller == nil {
		a.ui.PrintHint("No game in progress.")
		return
	}
	if len(args) != 1 {
		a.ui.PrintHint("Usage: check <card id>")
		return
	}
	id, err := strconv.Atoi(args[0])
	if err != nil {
		a.ui.PrintHint("Usage: check <card id>")
		return
	}

	session := a.session()
	idx := -1
	for i, c := range session.Cards {
		if c.ID == id {
			idx = i
			break
		}
	}
	if idx == -1 {
		a.ui.PrintUrgent(fmt.Sprintf("Card %d is not in this game.", id))
		return
	}

	result, err := a.caller.CheckCard(ctx, idx)
	if err != nil {
		a.ui.PrintUrgent(fmt.Sprintf("Error: %v", err))
		return
	}

	card := session.Cards[idx]
	marked := card.Grid().Mark(domain.DrawnSet(session.History))
	if result.Won {
		a.ui.PrintWinner(fmt.Sprintf("BINGO! Card %d wins.", card.ID))
		a.printGrid(card.Grid(), &result.Cells)
		a.ui.PrintHint("'resume' to keep playing, 'end' to close the game.")
	} else {
		a.ui.PrintInfo(fmt.Sprintf("Card %d has not won.", card.ID))
		a.printGrid(card.Grid(), &marked)
		a.ui.PrintHint("'resume' to continue drawing.")
	}
}

func (a *cliApp) board() {
	session := a.session()
	if session == nil {
		a.ui.PrintHint("No game in progress.")
		return
	}
	a.ui.PrintBoard(session.History)
	a.ui.PrintHint(fmt.Sprintf("%d of %d numbers called.", len(session.History), domain.TotalNumbers))
}

func (a *cliApp) history() {
	session := a.session()
	if session == nil {
		a.ui.PrintHint("No game in progress.")
		return
	}
	if len(session.History) == 0 {
		a.ui.PrintHint("Nothing called yet.")
		return
	}
	calls := make([]string, len(session.History))
	for i, d := range session.History {
		calls[i] = d.String()
	}
	a.ui.PrintInfo(strings.Join(calls, "  "))
}

func (a *cliApp) status() {
	session := a.session()
	if session == nil {
		a.ui.PrintHint("No game in progress.")
		return
	}

	a.ui.PrintInfo(fmt.Sprintf("Game:    %s", session.ID))
	a.ui.PrintInfo(fmt.Sprintf("Status:  %s", session.Status))
	a.ui.PrintInfo(fmt.Sprintf("Cards:   %d sold (%.2f collected)", len(session.Cards), session.CardPrice*float64(len(session.Cards))))
	a.ui.PrintInfo(fmt.Sprintf("Called:  %d/%d", len(session.History), domain.TotalNumbers))
	if last, ok := session.LastDrawn(); ok {
		a.ui.PrintCall("Last call: " + last.String())
	}
	if session.WinnerCardIndex >= 0 {
		a.ui.PrintWinner(fmt.Sprintf("Winner:  card %d", session.Cards[session.WinnerCardIndex].ID))
	}
	a.ui.PrintHint(fmt.Sprintf("Running: %s", time.Since(session.StartedAt).Round(time.Second)))
}

func (a *cliApp) end(ctx context.Context) {
	if a.caller == nil {
		a.ui.PrintHint("No game in progress.")
		return
	}
	// ErrGameOver just means the pool ran out first; the report is
	// already in, so fall through and print it.
	if err := a.caller.End(ctx); err != nil && !errors.Is(err, domain.ErrGameOver) {
		a.ui.PrintUrgent(fmt.Sprintf("Error: %v", err))
		return
	}

	ends := a.reports.Ends()
	if len(ends) > 0 {
		last := ends[len(ends)-1]
		a.ui.PrintInfo(fmt.Sprintf("Game over — %d numbers called in %s.",
			last.NumbersCalled, last.Duration.Round(time.Second)))
		if last.WinnerFound {
			a.ui.PrintWinner("A winner was found.")
		} else {
			a.ui.PrintHint("No winner this round.")
		}
	}
	a.sold = nil
}

func (a *cliApp) quit(ctx context.Context) {
	if s := a.session(); s != nil && s.Status != domain.GameOver {
		if err := a.caller.End(ctx); err != nil {
			a.log.Error("ending game on quit: %v", err)
		}
	}
	a.queue.Clear()
	// Brief pause so the in-flight clip can stop cleanly.
	time.Sleep(200 * time.Millisecond)
	a.ui.Quit()
}

func (a *cliApp) showHelp() {
	a.ui.PrintInfo("Commands:")
	a.ui.PrintInfo("  cards            Show the deck and sold cards")
	a.ui.PrintInfo("  card <id>        Print one card's grid")
	a.ui.PrintInfo("  sell <id> ...    Sell cards for the next game")
	a.ui.PrintInfo("  start            Start calling numbers")
	a.ui.PrintInfo("  pause            Hold the draw timer")
	a.ui.PrintInfo("  resume           Continue after a pause or card check")
	a.ui.PrintInfo("  check <id>       Pause and verify a card against the calls")
	a.ui.PrintInfo("  board            Show the 75-number call board")
	a.ui.PrintInfo("  history          List every call in draw order")
	a.ui.PrintInfo("  status           Show game progress")
	a.ui.PrintInfo("  end              Close the game and print the report")
	a.ui.PrintInfo("  help             Show this message")
	a.ui.PrintInfo("  quit / exit      End the game and exit")
}
