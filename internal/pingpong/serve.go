package pingpong

// ResetBall prepares the next serve. Both paddles return to their start
// positions and the difficulty for the current category and level is
// re-derived. A player serve is held on the player's paddle until
// ReleaseServe; a bot serve launches immediately, or after ServeDelayMS
// when one is configured.
func (s *GameState) ResetBall() {
	s.applyDifficulty()

	pc := s.cfg.Paddles
	s.Player.U, s.Player.V = pc.PlayerStart.U, pc.PlayerStart.V
	s.Bot.U, s.Bot.V = pc.BotStart.U, pc.BotStart.V
	s.Target = s.Player.Pos()

	s.Ball.Z = s.cfg.Ball.StartZ
	s.Ball.VZ = 0
	s.Ball.VU, s.Ball.VV = 0, 0
	s.Match.ServeTimer = 0

	switch {
	case s.Match.ServeTurn == SidePlayer:
		s.Match.BallHeld = true
	case s.cfg.Match.ServeDelayMS > 0:
		s.Match.BallHeld = true
		s.Match.ServeTimer = s.cfg.Match.ServeDelayMS
	default:
		s.pinBall()
		s.launch(SideBot)
		return
	}
	s.pinBall()
}

// ReleaseServe launches a ball held on the player's paddle. It reports
// whether a serve was released.
func (s *GameState) ReleaseServe() bool {
	if !s.Match.BallHeld || s.Match.Over || s.Match.ServeTurn != SidePlayer {
		return false
	}
	s.launch(SidePlayer)
	return true
}

// holdServe keeps a held ball on its server's paddle and counts down a
// delayed bot serve.
func (s *GameState) holdServe(dt float64) {
	if !s.Match.BallHeld || s.Match.Over {
		return
	}
	s.pinBall()
	if s.Match.ServeTurn == SideBot {
		s.Match.ServeTimer -= dt
		if s.Match.ServeTimer <= 0 {
			s.launch(SideBot)
		}
	}
}

func (s *GameState) pinBall() {
	off := s.cfg.Ball.ServeOffset
	if s.Match.ServeTurn == SidePlayer {
		s.Ball.U = s.Player.U
		s.Ball.V = s.Player.V - off
	} else {
		s.Ball.U = s.Bot.U
		s.Ball.V = s.Bot.V + off
	}
}

func (s *GameState) launch(server Side) {
	s.Match.BallHeld = false
	s.Match.ServeTimer = 0
	bc := s.cfg.Ball
	s.Ball.VU = (s.rng.Float64() - 0.5) * bc.ServeSpread * s.SpeedFactor
	if server == SidePlayer {
		s.Ball.VV = -bc.ServeSpeed * s.SpeedFactor
	} else {
		s.Ball.VV = bc.ServeSpeed * s.SpeedFactor
	}
}

// StartLevel begins a fresh match at the current category and level.
func (s *GameState) StartLevel() {
	s.Match = Match{ServeTurn: ParseSide(s.cfg.Match.FirstServe)}
	s.LastResult = nil
	s.ResetBall()
}
