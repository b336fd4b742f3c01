// Command goldfish runs a solitaire playtest of a deck: fetch the list from
// the deck service, draw and evaluate an opening hand, then play a number of
// turns against nobody, reporting lands played and spells cast.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strings"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/mtgbuilder/tabletop-go/internal/config"
	"github.com/mtgbuilder/tabletop-go/internal/deckapi"
	"github.com/mtgbuilder/tabletop-go/internal/game"
	"github.com/mtgbuilder/tabletop-go/internal/game/mana"
)

var (
	configPath = flag.String("config", "config/config.yaml", "path to configuration file")
	deckID     = flag.String("deck", "", "id of the deck to goldfish (required)")
	turns      = flag.Int("turns", 5, "number of turns to play")
	mulligans  = flag.Int("mulligans", 2, "maximum mulligans before keeping any hand")
	version    = "dev" // set via ldflags during build
)

func main() {
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load configuration: %v\n", err)
		os.Exit(1)
	}

	logger, err := initLogger(cfg.Logging)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	if *deckID == "" {
		fmt.Fprintln(os.Stderr, "Usage: goldfish -deck <deck-id> [-turns n]")
		os.Exit(2)
	}

	logger.Info("starting goldfish session",
		zap.String("version", version),
		zap.String("deck", *deckID),
		zap.Int("turns", *turns),
	)

	client := deckapi.NewClient(cfg.API.BaseURL, cfg.API.Timeout, logger)
	deck, err := client.GetDeck(context.Background(), *deckID)
	if err != nil {
		logger.Fatal("failed to fetch deck", zap.Error(err))
	}

	store := game.NewStore(logger)
	store.InitGame(game.Deck{
		ID:      deck.ID,
		Name:    deck.Name,
		Format:  game.Format(deck.Format),
		Entries: deck.Entries(),
	})

	fmt.Printf("Goldfishing %q (%s, %d cards)\n\n",
		deck.Name, deck.Format, len(store.State().Player.Library))

	hand := drawKeepableHand(store, *mulligans)
	fmt.Printf("Keeping %d cards after %d mulligan(s):\n",
		len(hand), store.State().Player.MulliganCount)
	for _, card := range hand {
		fmt.Printf("  %-30s %s\n", card.Name, card.ManaCost)
	}
	fmt.Println()

	store.KeepHand()
	for turn := 1; turn <= *turns; turn++ {
		playTurn(store)
		st := store.State().Player
		fmt.Printf("Turn %d: %d lands, %d permanents, %d cards in hand\n",
			turn, countLands(st.Battlefield), len(st.Battlefield), len(st.Hand))
		store.NextTurn()
		store.DrawCard()
	}
}

// drawKeepableHand draws opening hands, mulliganing until the evaluator
// likes one or the mulligan budget runs out.
func drawKeepableHand(store *game.Store, budget int) []*game.Card {
	store.DrawOpeningHand()
	for i := 0; i < budget; i++ {
		hand := store.State().Player.Hand
		eval := game.EvaluateHand(hand)
		fmt.Printf("Hand of %d: score %d (%d lands, avg mana value %.1f)\n",
			len(hand), eval.Score, eval.Lands, eval.AvgManaValue)
		for _, s := range eval.Suggestions {
			fmt.Printf("  - %s\n", s)
		}
		if eval.Score >= 50 {
			break
		}
		fmt.Println("Mulliganing.")
		store.Mulligan()
	}
	return store.State().Player.Hand
}

// playTurn makes the obvious plays: drop the first land in hand, tap every
// untapped land for its first color, then cast spells cheapest first until
// the pool runs dry.
func playTurn(store *game.Store) {
	player := store.State().Player

	for _, card := range player.Hand {
		if card.IsLand() {
			store.PlayCard(card.InstanceID)
			break
		}
	}

	for _, card := range store.State().Player.Battlefield {
		if !card.IsLand() || card.IsTapped {
			continue
		}
		colors := mana.DetectLandMana(card.Name, card.TypeLine, card.OracleText)
		if len(colors) > 0 {
			store.TapForMana(card.InstanceID, colors[0])
		}
	}

	for {
		target := cheapestCastable(store)
		if target == nil {
			return
		}
		if err := store.CastCard(target.InstanceID, mana.Pool{}); err != nil {
			return
		}
		fmt.Printf("  cast %s\n", target.Name)
	}
}

func cheapestCastable(store *game.Store) *game.Card {
	player := store.State().Player
	var best *game.Card
	for _, card := range player.Hand {
		if card.IsLand() || strings.TrimSpace(card.ManaCost) == "" {
			continue
		}
		cost, err := mana.ParseCost(card.ManaCost)
		if err != nil || !mana.CanPay(player.ManaPool, cost) {
			continue
		}
		if best == nil || card.ManaValue < best.ManaValue {
			best = card
		}
	}
	return best
}

func countLands(cards []*game.Card) int {
	n := 0
	for _, card := range cards {
		if card.IsLand() {
			n++
		}
	}
	return n
}

// initLogger initializes the zap logger based on configuration
func initLogger(cfg config.LoggingConfig) (*zap.Logger, error) {
	var level zapcore.Level
	switch cfg.Level {
	case "debug":
		level = zapcore.DebugLevel
	case "info":
		level = zapcore.InfoLevel
	case "warn":
		level = zapcore.WarnLevel
	case "error":
		level = zapcore.ErrorLevel
	default:
		level = zapcore.InfoLevel
	}

	var zapCfg zap.Config
	if cfg.Format == "json" {
		zapCfg = zap.NewProductionConfig()
	} else {
		zapCfg = zap.NewDevelopmentConfig()
		zapCfg.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
	}

	zapCfg.Level = zap.NewAtomicLevelAt(level)

	return zapCfg.Build()
}
