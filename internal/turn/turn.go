// Package turn provides the two-player turn and phase state machine.
package turn

import "fmt"

// Player identifies a seat at the table.
type Player int

const (
	// NoPlayer is the winner of a drawn game.
	NoPlayer Player = 0
	Player1  Player = 1
	Player2  Player = 2
)

// Players lists both seats in turn order.
var Players = [2]Player{Player1, Player2}

// Opponent returns the other seat.
func (p Player) Opponent() Player {
	if p == Player1 {
		return Player2
	}
	return Player1
}

// Valid reports whether p is a seat at the table.
func (p Player) Valid() bool {
	return p == Player1 || p == Player2
}

// Index returns the zero-based seat index.
func (p Player) Index() int {
	return int(p) - 1
}

func (p Player) String() string {
	if !p.Valid() {
		return "none"
	}
	return fmt.Sprintf("player %d", int(p))
}

// Phase is the sub-state of a turn.
type Phase int

const (
	// PhasePlay - the active player must play or discard a card.
	PhasePlay Phase = iota
	// PhaseDraw - the active player must draw a card.
	PhaseDraw
)

// String returns a human-readable phase name.
func (p Phase) String() string {
	switch p {
	case PhasePlay:
		return "play"
	case PhaseDraw:
		return "draw"
	default:
		return "unknown"
	}
}

// Status is a snapshot of the turn state.
type Status struct {
	ActivePlayer Player
	Phase        Phase
	Played       bool
	Drew         bool
	GameOver     bool
	Winner       Player
	Decided      bool // Winner is meaningful only once Decided is set
}

// Manager gates which actions the active player may take.
type Manager struct {
	active   Player
	phase    Phase
	played   bool
	drew     bool
	gameOver bool
	winner   Player
	decided  bool
}

// NewManager returns a manager at the start of a game: player 1 to play.
func NewManager() *Manager {
	return &Manager{active: Player1, phase: PhasePlay}
}

// ActivePlayer returns the player whose turn it is.
func (m *Manager) ActivePlayer() Player { return m.active }

// Phase returns the current phase.
func (m *Manager) Phase() Phase { return m.phase }

// GameOver reports whether the game has ended.
func (m *Manager) GameOver() bool { return m.gameOver }

// Winner returns the winner and whether one has been decided.
// NoPlayer with true means a draw.
func (m *Manager) Winner() (Player, bool) { return m.winner, m.decided }

// CanPlay reports whether player may play or discard a card now.
func (m *Manager) CanPlay(player Player) bool {
	return player == m.active && m.phase == PhasePlay && !m.played && !m.gameOver
}

// CanDraw reports whether player may draw a card now.
func (m *Manager) CanDraw(player Player) bool {
	return player == m.active && m.phase == PhaseDraw && m.played && !m.drew && !m.gameOver
}

// CanMove reports whether player may pick up a card at all.
func (m *Manager) CanMove(player Player) bool {
	return player == m.active && !m.gameOver
}

// RegisterPlay records a play or discard and moves to the draw phase.
func (m *Manager) RegisterPlay() bool {
	if !m.CanPlay(m.active) {
		return false
	}
	m.played = true
	m.phase = PhaseDraw
	return true
}

// RegisterDraw records a draw and ends the turn.
func (m *Manager) RegisterDraw() bool {
	if !m.CanDraw(m.active) {
		return false
	}
	m.drew = true
	m.endTurn()
	return true
}

// ForceAdvancePhase skips the current phase if its action has not happened
// yet. It does nothing once the game is over.
func (m *Manager) ForceAdvancePhase() {
	if m.gameOver {
		return
	}
	switch {
	case m.phase == PhasePlay && !m.played:
		m.played = true
		m.phase = PhaseDraw
	case m.phase == PhaseDraw && !m.drew:
		m.drew = true
		m.endTurn()
	}
}

// SkipTurn ends the turn regardless of what has been done, unless the game
// is over.
func (m *Manager) SkipTurn() {
	if m.gameOver {
		return
	}
	m.endTurn()
}

func (m *Manager) endTurn() {
	m.played = false
	m.drew = false
	m.phase = PhasePlay
	m.active = m.active.Opponent()
}

// CheckGameOver ends the game when the deck or any hand is empty.
// Once over, the game stays over.
func (m *Manager) CheckGameOver(deckEmpty, anyHandEmpty bool) bool {
	if deckEmpty || anyHandEmpty {
		m.gameOver = true
	}
	return m.gameOver
}

// DecideWinner records the player with the strictly higher score, or NoPlayer on a tie.
func (m *Manager) DecideWinner(score1, score2 int) Player {
	switch {
	case score1 > score2:
		m.winner = Player1
	case score2 > score1:
		m.winner = Player2
	default:
		m.winner = NoPlayer
	}
	m.decided = true
	return m.winner
}

// Status returns a snapshot of the turn state.
func (m *Manager) Status() Status {
	return Status{
		ActivePlayer: m.active,
		Phase:        m.phase,
		Played:       m.played,
		Drew:         m.drew,
		GameOver:     m.gameOver,
		Winner:       m.winner,
		Decided:      m.decided,
	}
}

// Reset returns to the initial state.
func (m *Manager) Reset() {
	*m = *NewManager()
}

// Clone returns an independent copy.
func (m *Manager) Clone() *Manager {
	clone := *m
	return &clone
}
