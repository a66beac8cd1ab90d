package repositories

import (
	"testing"
)

func TestTurnLogIsChronological(t *testing.T) {
	db := newTestDB(t)
	games := NewGameRepository(db)
	players := NewGamePlayerRepository(db)
	turns := NewTurnRepository(db)

	game, _ := games.Create()
	roster, _ := players.AddMany(game.ID, []string{"Alice"})
	alice := roster[0].ID

	for _, delta := range []int{3, -1, 2} {
		if err := turns.Record(alice, delta); err != nil {
			t.Fatalf("Record(%d): %v", delta, err)
		}
	}

	entries, err := turns.ListForGame(game.ID)
	if err != nil {
		t.Fatalf("ListForGame: %v", err)
	}
	if len(entries) != 3 {
		t.Fatalf("expected 3 turns, got %d", len(entries))
	}
	want := []int{3, -1, 2}
	for i, entry := range entries {
		if entry.Delta != want[i] {
			t.Fatalf("expected deltas %v in order, got %d at %d", want, entry.Delta, i)
		}
		if entry.Name != "Alice" {
			t.Fatalf("expected joined player name, got %q", entry.Name)
		}
	}
}

func TestTurnLogScopedToGame(t *testing.T) {
	db := newTestDB(t)
	games := NewGameRepository(db)
	players := NewGamePlayerRepository(db)
	turns := NewTurnRepository(db)

	first, _ := games.Create()
	second, _ := games.Create()
	firstRoster, _ := players.AddMany(first.ID, []string{"Alice"})
	secondRoster, _ := players.AddMany(second.ID, []string{"Bob"})

	turns.Record(firstRoster[0].ID, 1)
	turns.Record(secondRoster[0].ID, 7)

	entries, err := turns.ListForGame(first.ID)
	if err != nil {
		t.Fatalf("ListForGame: %v", err)
	}
	if len(entries) != 1 || entries[0].Delta != 1 {
		t.Fatalf("expected only the first game's turn, got %+v", entries)
	}
}

func TestTurnLogEmptyGame(t *testing.T) {
	db := newTestDB(t)
	games := NewGameRepository(db)
	turns := NewTurnRepository(db)

	game, _ := games.Create()
	entries, err := turns.ListForGame(game.ID)
	if err != nil {
		t.Fatalf("ListForGame: %v", err)
	}
	if len(entries) != 0 {
		t.Fatalf("expected no turns, got %d", len(entries))
	}
}
