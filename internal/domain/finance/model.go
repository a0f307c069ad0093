package finance

import (
	"fmt"
	"time"
)

// Transaction types. The labels are part of the ledger's public vocabulary
// and are matched verbatim when a settlement is reversed.
const (
	TypePrize          = "Preisgeld"
	TypeBonus          = "Bonus SdS"
	TypePenalty        = "Strafe"
	TypeRealMoney      = "Echtgeld-Ausgleich"
	TypeRealMoneyDebt  = "Echtgeld-Ausgleich (getilgt)"
	TypePlayerPurchase = "Spielerkauf"
	TypePlayerSale     = "Spielerverkauf"
	TypeOther          = "Sonstiges"
)

// TeamFinance is one team's ledger head: the virtual balance (never below
// zero) and the real-money debt in euros.
type TeamFinance struct {
	Team    string
	Balance int64
	Debt    int64
}

// Transaction is one ledger line. MatchID links settlement-generated lines to
// the match that produced them; manual lines carry no match reference.
type Transaction struct {
	ID      int64
	Team    string
	Type    string
	Amount  int64
	Date    time.Time
	MatchID *int64
	Info    string
}

func (t Transaction) Validate() error {
	if t.Team == "" {
		return fmt.Errorf("transaction team is required")
	}
	if t.Type == "" {
		return fmt.Errorf("transaction type is required")
	}

	return nil
}
