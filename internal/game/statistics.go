package game

import (
	"github.com/samdwyer/lostcities/internal/cards"
	"github.com/samdwyer/lostcities/internal/turn"
)

// ColorStatistics summarizes one expedition color.
type ColorStatistics struct {
	Color        cards.Color
	SharedCards  int
	SharedScore  int
	PlayerCards  [2]int
	PlayerScores [2]int
}

// Statistics is a read-only summary of a game.
type Statistics struct {
	SharedScore  int // Combined score of all shared expeditions
	CardsPlayed  int
	PlayerScores [2]int
	HandSizes    [2]int
	Colors       [cards.NumColors]ColorStatistics
	Turn         turn.Status
	Deck         cards.DeckStats
}

func collectStatistics(s *State) Statistics {
	stats := Statistics{
		SharedScore: s.board.SharedTotal(),
		CardsPlayed: s.board.SharedCount(),
		Turn:        s.turns.Status(),
		Deck:        s.decks.Stats(),
	}

	for _, p := range turn.Players {
		i := p.Index()
		stats.PlayerScores[i] = s.board.Total(p)
		stats.HandSizes[i] = len(s.players[i].Hand)
	}

	for i, color := range cards.Colors {
		exp := s.board.Expedition(color)
		cs := ColorStatistics{
			Color:       color,
			SharedCards: exp.SharedLen(),
			SharedScore: exp.SharedScore(),
		}
		for _, p := range turn.Players {
			cs.PlayerCards[p.Index()] = exp.Len(p)
			cs.PlayerScores[p.Index()] = exp.Score(p)
		}
		stats.Colors[i] = cs
	}
	return stats
}
