package game

import "github.com/samdwyer/lostcities/internal/cards"

// Outcome is the result of a player intent.
type Outcome struct {
	Success bool
	Card    cards.Card // Card played, discarded or drawn
	Message string     // Player-facing text
	Code    Code       // Failure kind, empty on success
}

func succeed(card cards.Card, message string) Outcome {
	return Outcome{Success: true, Card: card, Message: message}
}

func fail(code Code, message string) Outcome {
	return Outcome{Code: code, Message: message}
}

// Err returns nil for a successful outcome, otherwise an *Error.
func (o Outcome) Err() error {
	if o.Success {
		return nil
	}
	return NewError(o.Code, o.Message)
}
