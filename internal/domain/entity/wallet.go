package entity

// Wallet holds the process-wide score and the current bet.
// Invariant: 1 <= Bet <= Score whenever Score > 0.
type Wallet struct {
	Score uint64
	Bet   uint64
}

// NewWallet creates a wallet with the given starting score and bet
func NewWallet(score, bet uint64) *Wallet {
	return &Wallet{Score: score, Bet: bet}
}

// IncreaseBet raises the bet by one unless it already equals the score
func (w *Wallet) IncreaseBet() {
	if w.Bet < w.Score {
		w.Bet++
	}
}

// DecreaseBet lowers the bet by one unless it is already 1
func (w *Wallet) DecreaseBet() {
	if w.Bet > 1 {
		w.Bet--
	}
}

// Win adds the current bet to the score
func (w *Wallet) Win() {
	w.Score += w.Bet
}

// Lose subtracts the current bet from the score, saturating at 0.
// Returns true if the wallet is now empty.
func (w *Wallet) Lose() bool {
	if w.Bet >= w.Score {
		w.Score = 0
		return true
	}
	w.Score -= w.Bet
	return false
}

// CapBet lowers the bet to the score if it exceeds it
func (w *Wallet) CapBet() {
	w.Bet = min(w.Bet, w.Score)
}
