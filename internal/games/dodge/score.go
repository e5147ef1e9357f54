package dodge

import (
	"io"

	"github.com/charmbracelet/log"
)

// ScoreCard holds the game over score line for a frontend. The line is built
// when WriteScore reports a fresh score and reused on every later frame of
// the same game over episode.
type ScoreCard struct {
	line   string
	frames uint64
	logger *log.Logger
}

// NewScoreCard returns an empty card. The final score of every episode is
// logged once at Info.
func NewScoreCard(logger *log.Logger) *ScoreCard {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &ScoreCard{logger: logger}
}

// Line returns the score line for g's current game over episode.
func (c *ScoreCard) Line(g *Game) string {
	frames, fresh := g.WriteScore()
	// A card that missed the fresh call still has to match this episode
	if fresh || c.line == "" || c.frames != frames {
		c.frames = frames
		c.line = g.cfg.Text.GameOverScore + " " + FormatScore(frames)
		c.logger.Info("final score", "frames", frames, "fresh", fresh)
	}
	return c.line
}
