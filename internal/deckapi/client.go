// Package deckapi is the client for the deck persistence collaborator: a
// REST service owning deck CRUD. The engine only consumes this boundary.
package deckapi

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"go.uber.org/zap"

	"github.com/mtgbuilder/tabletop-go/internal/game"
)

// CardInDeck is one line of a deck list as the persistence service stores
// it: catalog data plus quantity, deck zone, and tag metadata.
type CardInDeck struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	ManaCost    string   `json:"mana_cost,omitempty"`
	ManaValue   float64  `json:"cmc"`
	TypeLine    string   `json:"type_line"`
	OracleText  string   `json:"oracle_text,omitempty"`
	Power       string   `json:"power,omitempty"`
	Toughness   string   `json:"toughness,omitempty"`
	Colors      []string `json:"colors,omitempty"`
	Rarity      string   `json:"rarity"`
	ImageURI    string   `json:"image_uri,omitempty"`
	Quantity    int      `json:"quantity"`
	Zone        string   `json:"zone"`
	Tags        []string `json:"tags,omitempty"`
	IsCommander bool     `json:"isCommander"`
}

// Deck is the persistence service's deck shape.
type Deck struct {
	ID          string       `json:"id,omitempty"`
	Name        string       `json:"name"`
	Format      string       `json:"format"`
	Description string       `json:"description,omitempty"`
	Cards       []CardInDeck `json:"cards"`
}

// Entries converts the stored card list into engine deck entries.
func (d Deck) Entries() []game.DeckEntry {
	entries := make([]game.DeckEntry, 0, len(d.Cards))
	for _, card := range d.Cards {
		entries = append(entries, game.DeckEntry{
			CardID:      card.ID,
			Name:        card.Name,
			ManaCost:    card.ManaCost,
			ManaValue:   card.ManaValue,
			TypeLine:    card.TypeLine,
			OracleText:  card.OracleText,
			Power:       card.Power,
			Toughness:   card.Toughness,
			Colors:      card.Colors,
			Rarity:      card.Rarity,
			ImageURI:    card.ImageURI,
			Quantity:    card.Quantity,
			IsCommander: card.IsCommander,
		})
	}
	return entries
}

// Client talks to the deck service.
type Client struct {
	baseURL string
	http    *http.Client
	logger  *zap.Logger
}

// NewClient creates a deck service client.
func NewClient(baseURL string, timeout time.Duration, logger *zap.Logger) *Client {
	return &Client{
		baseURL: baseURL,
		http:    &http.Client{Timeout: timeout},
		logger:  logger,
	}
}

// ListDecks fetches all decks.
func (c *Client) ListDecks(ctx context.Context) ([]Deck, error) {
	var decks []Deck
	if err := c.do(ctx, http.MethodGet, "/decks", nil, &decks); err != nil {
		return nil, err
	}
	return decks, nil
}

// GetDeck fetches one deck with its card list.
func (c *Client) GetDeck(ctx context.Context, id string) (Deck, error) {
	var deck Deck
	err := c.do(ctx, http.MethodGet, "/decks/"+id, nil, &deck)
	return deck, err
}

// CreateDeck stores a new deck and returns it with its assigned id.
func (c *Client) CreateDeck(ctx context.Context, deck Deck) (Deck, error) {
	var created Deck
	err := c.do(ctx, http.MethodPost, "/decks", deck, &created)
	return created, err
}

// UpdateDeck replaces a deck's name, format, and card list.
func (c *Client) UpdateDeck(ctx context.Context, deck Deck) (Deck, error) {
	if deck.ID == "" {
		return Deck{}, fmt.Errorf("update deck: missing id")
	}
	var updated Deck
	err := c.do(ctx, http.MethodPut, "/decks/"+deck.ID, deck, &updated)
	return updated, err
}

// DeleteDeck removes a deck.
func (c *Client) DeleteDeck(ctx context.Context, id string) error {
	return c.do(ctx, http.MethodDelete, "/decks/"+id, nil, nil)
}

func (c *Client) do(ctx context.Context, method, path string, body, out any) error {
	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("%s %s: encode: %w", method, path, err)
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return fmt.Errorf("%s %s: %w", method, path, err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("%s %s: %w", method, path, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		msg, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return fmt.Errorf("%s %s: status %d: %s", method, path, resp.StatusCode, msg)
	}

	if out != nil {
		if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
			return fmt.Errorf("%s %s: decode: %w", method, path, err)
		}
	}
	return nil
}
