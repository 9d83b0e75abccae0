package model

import (
	"strconv"
	"strings"
)

// Side is the trade direction written by the bot. Keep these values stable;
// they are what the bot emits and what the history table prints.
type Side string

const (
	SideBuy  Side = "BUY"
	SideSell Side = "SELL"
)

// Action is a single buy or sell taken in a trading session. The bot writes
// the same shape for filled executions and for planned (legacy) orders.
type Action struct {
	Action   Side    `json:"action"`
	Ticker   string  `json:"ticker"`
	Quantity float64 `json:"quantity"`
	Price    float64 `json:"price,omitempty"`
}

// IsBuy reports whether the action is a BUY. Anything else, including
// unrecognized values, counts as a sell for display purposes.
func (a Action) IsBuy() bool {
	return a.Action == SideBuy
}

// String renders the action as "BUY QQQ (3)".
func (a Action) String() string {
	return string(a.Action) + " " + a.Ticker + " (" + strconv.FormatFloat(a.Quantity, 'f', -1, 64) + ")"
}

// ActionSource records which history field the action list was resolved from.
type ActionSource string

const (
	ActionSourceExecutions ActionSource = "executions"
	ActionSourceOrders     ActionSource = "orders"
	ActionSourceNone       ActionSource = "none"
)

// Regime is the market condition label the bot publishes in status.json.
type Regime string

const (
	RegimeBull       Regime = "Bull"
	RegimeBearWeak   Regime = "Bear_Weak"
	RegimeBearStrong Regime = "Bear_Strong"
	RegimeSideways   Regime = "Sideways"
	RegimeCrash      Regime = "Crash"
)

// Display returns the label with its first underscore replaced by a space
// (Bear_Weak -> Bear Weak).
func (r Regime) Display() string {
	return strings.Replace(string(r), "_", " ", 1)
}
