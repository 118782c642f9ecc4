package result

type (
	// Coin is the basic value carrier of the chain.
	Coin struct {
		ParentCoinInfo string `json:"parent_coin_info"`
		PuzzleHash     string `json:"puzzle_hash"`
		Amount         uint64 `json:"amount"`
	}

	// CoinRecord is a coin together with its confirmation/spent status as
	// tracked by the full node coin store.
	CoinRecord struct {
		Coin                Coin   `json:"coin"`
		ConfirmedBlockIndex uint32 `json:"confirmed_block_index"`
		SpentBlockIndex     uint32 `json:"spent_block_index"`
		Spent               bool   `json:"spent"`
		Coinbase            bool   `json:"coinbase"`
		Timestamp           uint64 `json:"timestamp"`
	}

	// CoinSpend is a spent coin with the puzzle and solution that unlocked it.
	CoinSpend struct {
		Coin         Coin   `json:"coin"`
		PuzzleReveal string `json:"puzzle_reveal"`
		Solution     string `json:"solution"`
	}
)

// SumCoins adds up the amounts of the given coins, a convenience for callers
// working with coin selection results.
func SumCoins(coins []Coin) uint64 {
	var total uint64
	for _, c := range coins {
		total += c.Amount
	}
	return total
}
