package pingpong

// RewardGrant is what one finished match paid out.
type RewardGrant struct {
	EarnedXP    int
	EarnedCoins int
	LeveledUp   bool
}

// MatchResult summarizes a finished match.
type MatchResult struct {
	Category    int
	Level       int
	PlayerScore int
	BotScore    int
	Won         bool
	DurationMS  float64
	Grant       RewardGrant
}

// GrantRewards pays out XP and coins for a finished match using the current
// category's rule, or category 1's rule when the category has none. Player
// levels are only gained on a win.
func (s *GameState) GrantRewards(win bool) RewardGrant {
	rule, ok := s.cfg.Progression.Rewards[s.Progress.Category]
	if !ok {
		rule = s.cfg.Progression.Rewards[1]
	}

	g := RewardGrant{EarnedXP: rule.LoseXP, EarnedCoins: rule.LoseCoins}
	if win {
		g.EarnedXP = rule.WinXP
		g.EarnedCoins = rule.WinCoins
	}

	g.LeveledUp = s.AddXP(g.EarnedXP, win)
	s.AddCoins(g.EarnedCoins)
	return g
}

// AddXP adds XP and, when allowed, raises the player level by one if the
// next threshold is reached. Negative amounts are ignored.
func (s *GameState) AddXP(amount int, allowLevelUp bool) bool {
	if amount < 0 {
		return false
	}
	s.Progress.XP += amount

	needed := s.cfg.Progression.XPNeeded
	lvl := s.Progress.PlayerLevel
	if allowLevelUp && lvl < len(needed)-1 && s.Progress.XP >= needed[lvl] {
		s.Progress.PlayerLevel++
		return true
	}
	return false
}

// AddCoins adds coins. Negative amounts are ignored.
func (s *GameState) AddCoins(amount int) {
	if amount > 0 {
		s.Progress.Coins += amount
	}
}

// XPForNext returns the first XP threshold above the current XP, or the last
// threshold once every one has been passed.
func (s *GameState) XPForNext() int {
	needed := s.cfg.Progression.XPNeeded
	for _, n := range needed {
		if n > s.Progress.XP {
			return n
		}
	}
	if len(needed) == 0 {
		return 0
	}
	return needed[len(needed)-1]
}

// RecordMatchCompletion updates the session counters.
func (s *GameState) RecordMatchCompletion(win bool, durationMS float64) {
	s.Progress.MatchesPlayed++
	if win {
		s.Progress.MatchesWon++
	}
	if durationMS > 0 {
		s.Progress.TotalPlayTime += int(durationMS / 1000)
	}
}

// ClaimLevel moves on after a finished match: a win advances the level and
// rolls into the next category after the last level; a loss stays put.
// It reports whether the stage advanced.
func (s *GameState) ClaimLevel(win bool) bool {
	if !win {
		return false
	}
	s.Progress.Level++
	if per := s.cfg.Progression.LevelsPerCategory; per > 0 && s.Progress.Level > per {
		s.Progress.Category++
		s.Progress.Level = 1
	}
	s.applyDifficulty()
	return true
}

// finishMatch pays out and records a match that just ended.
func (s *GameState) finishMatch() *MatchResult {
	win := s.Match.Winner == SidePlayer
	grant := s.GrantRewards(win)
	s.RecordMatchCompletion(win, s.Match.ElapsedMS)

	s.LastResult = &MatchResult{
		Category:    s.Progress.Category,
		Level:       s.Progress.Level,
		PlayerScore: s.Match.PlayerScore,
		BotScore:    s.Match.BotScore,
		Won:         win,
		DurationMS:  s.Match.ElapsedMS,
		Grant:       grant,
	}
	return s.LastResult
}

// CarryOver takes the session totals from an earlier game's progress while
// keeping this state's category and level.
func (s *GameState) CarryOver(prev Progression) {
	cat, lvl := s.Progress.Category, s.Progress.Level
	s.Progress = prev
	s.Progress.Category, s.Progress.Level = cat, lvl
	if s.Progress.PlayerLevel < 1 {
		s.Progress.PlayerLevel = 1
	}
}
