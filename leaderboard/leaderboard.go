// Package leaderboard keeps the top scores in one persisted record.
package leaderboard

import (
	"context"
	"errors"
	"fmt"
	"log"
	"slices"

	"github.com/lixenwraith/party-arcade/constants"
	"github.com/lixenwraith/party-arcade/store"
)

// Entry is one leaderboard row
type Entry struct {
	Name  string
	Score int
}

// Board saves and loads the leaderboard record through a KV store
type Board struct {
	kv    store.KV
	key   string
	limit int
}

// New creates a board over kv using the default record key and size
func New(kv store.KV) *Board {
	return &Board{kv: kv, key: constants.LeaderboardKey, limit: constants.LeaderboardSize}
}

// Load returns the stored entries, empty when the record is absent
func (b *Board) Load(ctx context.Context) ([]Entry, error) {
	data, ok, err := b.kv.Get(ctx, b.key)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, nil
	}
	return Decode(data)
}

// Save inserts one score and writes the whole record back
// A corrupt record is replaced rather than blocking new scores
func (b *Board) Save(ctx context.Context, name string, score int) error {
	entries, err := b.Load(ctx)
	if errors.Is(err, ErrCorrupt) {
		log.Printf("leaderboard: discarding corrupt record %q", b.key)
		entries, err = nil, nil
	}
	if err != nil {
		return fmt.Errorf("leaderboard: load: %w", err)
	}

	data, err := Encode(Insert(entries, Entry{Name: name, Score: score}, b.limit))
	if err != nil {
		return err
	}
	if err := b.kv.Put(ctx, b.key, data); err != nil {
		return fmt.Errorf("leaderboard: save: %w", err)
	}
	return nil
}

// Insert appends e, sorts descending by score keeping insertion order among ties, and
// truncates to limit
func Insert(entries []Entry, e Entry, limit int) []Entry {
	out := append(slices.Clone(entries), e)
	slices.SortStableFunc(out, func(a, b Entry) int { return b.Score - a.Score })
	if len(out) > limit {
		out = out[:limit]
	}
	return out
}

// Highlight returns the index of the first entry matching name and score exactly, or -1
// Identical pairs from different runs are indistinguishable
func Highlight(entries []Entry, name string, score int) int {
	for i, e := range entries {
		if e.Name == name && e.Score == score {
			return i
		}
	}
	return -1
}
