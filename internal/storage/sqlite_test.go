package storage

import (
	"testing"
	"time"
)

func openStore(t *testing.T) *Store {
	t.Helper()
	store, err := Open()
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func TestStoreOpenIsEmpty(t *testing.T) {
	store := openStore(t)

	matches, err := store.RecentMatches("local", 10)
	if err != nil {
		t.Fatalf("RecentMatches() failed: %v", err)
	}
	if len(matches) != 0 {
		t.Errorf("Expected empty ledger, got %d matches", len(matches))
	}
}

func TestStoreSeparateInstances(t *testing.T) {
	a := openStore(t)
	b := openStore(t)

	if _, err := a.SaveMatch(MatchRecord{Session: "local", Category: 1, Level: 1}); err != nil {
		t.Fatalf("SaveMatch() failed: %v", err)
	}

	matches, err := b.RecentMatches("local", 10)
	if err != nil {
		t.Fatalf("RecentMatches() failed: %v", err)
	}
	if len(matches) != 0 {
		t.Error("Ledgers should not share matches")
	}
}

func TestStoreSaveAndRecent(t *testing.T) {
	store := openStore(t)

	records := []MatchRecord{
		{Session: "local", Category: 1, Level: 1, PlayerScore: 7, BotScore: 3, Won: true, EarnedXP: 100, EarnedCoins: 50, Duration: 95 * time.Second},
		{Session: "local", Category: 1, Level: 2, PlayerScore: 4, BotScore: 7, Won: false, EarnedXP: 50, EarnedCoins: 25, Duration: 80 * time.Second},
		{Session: "other", Category: 3, Level: 9, PlayerScore: 7, BotScore: 6, Won: true},
	}
	for _, r := range records {
		if _, err := store.SaveMatch(r); err != nil {
			t.Fatalf("SaveMatch() failed: %v", err)
		}
	}

	matches, err := store.RecentMatches("local", 10)
	if err != nil {
		t.Fatalf("RecentMatches() failed: %v", err)
	}
	if len(matches) != 2 {
		t.Fatalf("Expected 2 matches, got %d", len(matches))
	}

	// Newest first
	if matches[0].Level != 2 || matches[0].Won {
		t.Errorf("Expected the level 2 loss first, got %+v", matches[0])
	}
	if matches[1].Duration != 95*time.Second {
		t.Errorf("Duration = %v, expected 95s", matches[1].Duration)
	}
	if !matches[1].Won || matches[1].EarnedXP != 100 {
		t.Errorf("Unexpected first match: %+v", matches[1])
	}
}

func TestStoreRecentLimit(t *testing.T) {
	store := openStore(t)

	for i := 1; i <= 5; i++ {
		store.SaveMatch(MatchRecord{Session: "local", Category: 1, Level: i})
	}

	matches, err := store.RecentMatches("local", 3)
	if err != nil {
		t.Fatalf("RecentMatches() failed: %v", err)
	}
	if len(matches) != 3 {
		t.Fatalf("Expected 3 matches with limit, got %d", len(matches))
	}
	if matches[0].Level != 5 || matches[2].Level != 3 {
		t.Errorf("Matches not in expected order: %+v", matches)
	}
}

func TestStoreSessionStats(t *testing.T) {
	store := openStore(t)

	stats, err := store.GetSessionStats("local")
	if err != nil {
		t.Fatalf("GetSessionStats() failed: %v", err)
	}
	if stats.Matches != 0 || stats.BestCategory != 0 {
		t.Errorf("Expected zero stats, got %+v", stats)
	}

	store.SaveMatch(MatchRecord{Session: "local", Category: 1, Level: 15, PlayerScore: 7, BotScore: 2, Won: true, EarnedXP: 100, EarnedCoins: 50, Duration: time.Minute})
	store.SaveMatch(MatchRecord{Session: "local", Category: 2, Level: 1, PlayerScore: 7, BotScore: 5, Won: true, EarnedXP: 120, EarnedCoins: 60, Duration: time.Minute})
	store.SaveMatch(MatchRecord{Session: "local", Category: 2, Level: 2, PlayerScore: 1, BotScore: 7, Won: false, EarnedXP: 60, EarnedCoins: 30, Duration: 30 * time.Second})

	stats, err = store.GetSessionStats("local")
	if err != nil {
		t.Fatalf("GetSessionStats() failed: %v", err)
	}

	if stats.Matches != 3 || stats.Wins != 2 || stats.Losses() != 1 {
		t.Errorf("Matches/Wins/Losses = %d/%d/%d", stats.Matches, stats.Wins, stats.Losses())
	}
	if stats.PointsFor != 15 || stats.PointsAgainst != 14 {
		t.Errorf("Points = %d:%d, expected 15:14", stats.PointsFor, stats.PointsAgainst)
	}
	if stats.EarnedXP != 280 || stats.EarnedCoins != 140 {
		t.Errorf("Rewards = %d XP / %d coins", stats.EarnedXP, stats.EarnedCoins)
	}
	if stats.PlayTime != 150*time.Second {
		t.Errorf("PlayTime = %v", stats.PlayTime)
	}
	if stats.BestCategory != 2 || stats.BestLevel != 1 {
		t.Errorf("Best stage = %d-%d, expected 2-1", stats.BestCategory, stats.BestLevel)
	}
}

func TestStoreClearSession(t *testing.T) {
	store := openStore(t)

	store.SaveMatch(MatchRecord{Session: "a", Category: 1, Level: 1})
	store.SaveMatch(MatchRecord{Session: "b", Category: 1, Level: 1})

	if err := store.ClearSession("a"); err != nil {
		t.Fatalf("ClearSession() failed: %v", err)
	}

	a, _ := store.RecentMatches("a", 10)
	b, _ := store.RecentMatches("b", 10)
	if len(a) != 0 {
		t.Errorf("Expected session a to be empty, got %d", len(a))
	}
	if len(b) != 1 {
		t.Error("Session b should not be affected by clearing a")
	}
}
