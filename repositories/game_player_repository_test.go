package repositories

import (
	"errors"
	"testing"

	"gorm.io/gorm"
)

func TestGamePlayerAddManyTrimsAndOrders(t *testing.T) {
	db := newTestDB(t)
	games := NewGameRepository(db)
	players := NewGamePlayerRepository(db)

	game, _ := games.Create()
	roster, err := players.AddMany(game.ID, []string{"  Zoe ", "Alice"})
	if err != nil {
		t.Fatalf("AddMany: %v", err)
	}
	if len(roster) != 2 {
		t.Fatalf("expected 2 players, got %d", len(roster))
	}
	if roster[0].Name != "Alice" || roster[1].Name != "Zoe" {
		t.Fatalf("expected alphabetical roster, got %q, %q", roster[0].Name, roster[1].Name)
	}
}

func TestGamePlayerAddManyIdempotent(t *testing.T) {
	db := newTestDB(t)
	games := NewGameRepository(db)
	players := NewGamePlayerRepository(db)

	game, _ := games.Create()
	if _, err := players.AddMany(game.ID, []string{"Bob", "Bob"}); err != nil {
		t.Fatalf("AddMany with duplicates: %v", err)
	}
	roster, err := players.AddMany(game.ID, []string{"Bob"})
	if err != nil {
		t.Fatalf("repeated AddMany: %v", err)
	}
	if len(roster) != 1 {
		t.Fatalf("expected duplicate names to collapse to one player, got %d", len(roster))
	}
}

func TestGamePlayerNamesAreCaseSensitive(t *testing.T) {
	db := newTestDB(t)
	games := NewGameRepository(db)
	players := NewGamePlayerRepository(db)

	game, _ := games.Create()
	roster, err := players.AddMany(game.ID, []string{"A", "a"})
	if err != nil {
		t.Fatalf("AddMany: %v", err)
	}
	if len(roster) != 2 {
		t.Fatalf("expected 'A' and 'a' to be distinct players, got %d", len(roster))
	}
}

func TestGamePlayerNamesScopedPerGame(t *testing.T) {
	db := newTestDB(t)
	games := NewGameRepository(db)
	players := NewGamePlayerRepository(db)

	first, _ := games.Create()
	second, _ := games.Create()

	if _, err := players.AddMany(first.ID, []string{"Bob"}); err != nil {
		t.Fatalf("AddMany first game: %v", err)
	}
	if _, err := players.AddMany(second.ID, []string{"Bob"}); err != nil {
		t.Fatalf("the same name must be reusable in another game: %v", err)
	}
}

func TestGamePlayerScoreboardOrdering(t *testing.T) {
	db := newTestDB(t)
	games := NewGameRepository(db)
	players := NewGamePlayerRepository(db)

	game, _ := games.Create()
	roster, _ := players.AddMany(game.ID, []string{"A", "B", "C"})

	byName := make(map[string]uint, len(roster))
	for _, p := range roster {
		byName[p.Name] = p.ID
	}
	players.AddPoints(byName["A"], 5)
	players.AddPoints(byName["B"], 2)
	players.AddPoints(byName["C"], 2)

	scoreboard, err := players.List(game.ID)
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	got := []string{scoreboard[0].Name, scoreboard[1].Name, scoreboard[2].Name}
	want := []string{"B", "C", "A"}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("expected order %v, got %v", want, got)
		}
	}
}

func TestGamePlayerAddPointsNegativeDelta(t *testing.T) {
	db := newTestDB(t)
	games := NewGameRepository(db)
	players := NewGamePlayerRepository(db)

	game, _ := games.Create()
	roster, _ := players.AddMany(game.ID, []string{"Alice"})

	players.AddPoints(roster[0].ID, 10)
	players.AddPoints(roster[0].ID, -4)

	player, err := players.GetByName(game.ID, "Alice")
	if err != nil {
		t.Fatalf("GetByName: %v", err)
	}
	if player.Points != 6 {
		t.Fatalf("expected 6 points, got %d", player.Points)
	}
}

func TestGamePlayerGetByNameMissing(t *testing.T) {
	db := newTestDB(t)
	games := NewGameRepository(db)
	players := NewGamePlayerRepository(db)

	game, _ := games.Create()
	_, err := players.GetByName(game.ID, "Nobody")
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		t.Fatalf("expected gorm.ErrRecordNotFound, got %v", err)
	}
}
