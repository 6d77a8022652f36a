package game

// RunUntilEnded drives a game on its frame scheduler until the run ends or
// maxFrames ticks have run (0 means no limit). It reports whether the run ended.
func RunUntilEnded(g *Game, s *FrameScheduler, maxFrames int) bool {
	for g.State() == Running {
		if maxFrames > 0 && g.Frame() >= maxFrames {
			return false
		}
		if s.RunFrame() == 0 {
			// Nothing scheduled: the loop was driven by another scheduler
			return false
		}
	}
	return g.State() == Ended
}
