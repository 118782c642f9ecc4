package result

import "encoding/json"

type (
	// DIDInfo is the did_get_info response describing a DID singleton coin.
	DIDInfo struct {
		DIDID            string          `json:"did_id"`
		LatestCoin       string          `json:"latest_coin"`
		P2Address        string          `json:"p2_address"`
		PublicKey        string          `json:"public_key"`
		RecoveryListHash string          `json:"recovery_list_hash"`
		NumVerification  uint16          `json:"num_verification"`
		Metadata         json.RawMessage `json:"metadata"`
		LauncherID       string          `json:"launcher_id"`
		FullPuzzle       string          `json:"full_puzzle"`
		Solution         json.RawMessage `json:"solution"`
		Hints            []string        `json:"hints"`
	}

	// NFTInfo describes a single NFT held by an NFT wallet.
	NFTInfo struct {
		NFTCoinID          string   `json:"nft_coin_id"`
		LauncherID         string   `json:"launcher_id"`
		OwnerDID           *string  `json:"owner_did"`
		RoyaltyPercentage  *uint16  `json:"royalty_percentage"`
		RoyaltyPuzzleHash  *string  `json:"royalty_puzzle_hash"`
		DataURIs           []string `json:"data_uris"`
		DataHash           string   `json:"data_hash"`
		MetadataURIs       []string `json:"metadata_uris"`
		MetadataHash       string   `json:"metadata_hash"`
		LicenseURIs        []string `json:"license_uris"`
		LicenseHash        string   `json:"license_hash"`
		EditionNumber      uint64   `json:"edition_number"`
		EditionTotal       uint64   `json:"edition_total"`
		UpdaterPuzhash     string   `json:"updater_puzhash"`
		ChainInfo          string   `json:"chain_info"`
		MintHeight         uint32   `json:"mint_height"`
		SupportsDID        bool     `json:"supports_did"`
		PendingTransaction bool     `json:"pending_transaction"`
	}

	// DLHistoryRecord is one root transition of a data layer singleton.
	DLHistoryRecord struct {
		CoinID            string `json:"coin_id"`
		LauncherID        string `json:"launcher_id"`
		Root              string `json:"root"`
		InnerPuzzleHash   string `json:"inner_puzzle_hash"`
		ConfirmedAtHeight uint32 `json:"confirmed_at_height"`
		Timestamp         uint64 `json:"timestamp"`
	}

	// DLMirror is a mirror advertisement of a data layer singleton.
	DLMirror struct {
		CoinID     string   `json:"coin_id"`
		LauncherID string   `json:"launcher_id"`
		Amount     uint64   `json:"amount"`
		URLs       []string `json:"urls"`
		Ours       bool     `json:"ours"`
	}
)
