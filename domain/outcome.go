package domain

import (
	"encoding/json"
	"fmt"
)

type Outcome int

const (
	OutcomeUndecided Outcome = iota
	OutcomeAccepted
	OutcomeDeclined
)

func (o Outcome) String() string {
	switch o {
	case OutcomeUndecided:
		return "undecided"
	case OutcomeAccepted:
		return "accepted"
	case OutcomeDeclined:
		return "declined"
	default:
		return fmt.Sprintf("outcome(%d)", int(o))
	}
}

func (o Outcome) MarshalJSON() ([]byte, error) {
	return json.Marshal(o.String())
}
