package result

import "encoding/json"

type (
	// SignagePoint is a farmer-side signage point with its corresponding
	// proofs of space, if any were found.
	SignagePoint struct {
		SignagePoint SignagePointData  `json:"signage_point"`
		Proofs       []json.RawMessage `json:"proofs"`
	}

	// SignagePointData identifies a single signage point within a sub-slot.
	SignagePointData struct {
		ChallengeHash     string `json:"challenge_hash"`
		ChallengeChainSP  string `json:"challenge_chain_sp"`
		RewardChainSP     string `json:"reward_chain_sp"`
		Difficulty        uint64 `json:"difficulty"`
		SubSlotIters      uint64 `json:"sub_slot_iters"`
		SignagePointIndex uint8  `json:"signage_point_index"`
	}

	// RewardTargets holds the farmer's configured reward addresses.
	RewardTargets struct {
		FarmerTarget string `json:"farmer_target"`
		PoolTarget   string `json:"pool_target"`
		HaveFarmerSK bool   `json:"have_farmer_sk"`
		HavePoolSK   bool   `json:"have_pool_sk"`
	}

	// Harvester is one harvester known to the farmer together with its plots.
	Harvester struct {
		Connection            HarvesterConnection `json:"connection"`
		Plots                 []Plot              `json:"plots"`
		FailedToOpenFilenames []string            `json:"failed_to_open_filenames"`
		NoKeyFilenames        []string            `json:"no_key_filenames"`
		Duplicates            []string            `json:"duplicates"`
		TotalPlotSize         uint64              `json:"total_plot_size"`
		Syncing               json.RawMessage     `json:"syncing"`
		LastSyncTime          float64             `json:"last_sync_time"`
	}

	// HarvesterConnection identifies the peer behind a harvester entry.
	HarvesterConnection struct {
		NodeID string `json:"node_id"`
		Host   string `json:"host"`
		Port   int    `json:"port"`
	}

	// Plot describes a single plot file tracked by a harvester.
	Plot struct {
		Filename               string  `json:"filename"`
		PlotID                 string  `json:"plot_id"`
		FileSize               uint64  `json:"file_size"`
		Size                   uint8   `json:"size"`
		PlotPublicKey          string  `json:"plot_public_key"`
		PoolPublicKey          *string `json:"pool_public_key"`
		PoolContractPuzzleHash *string `json:"pool_contract_puzzle_hash"`
		TimeModified           float64 `json:"time_modified"`
	}

	// PoolState is the farmer's view of one pool membership.
	PoolState struct {
		PoolConfig         json.RawMessage `json:"pool_config"`
		CurrentDifficulty  uint64          `json:"current_difficulty"`
		CurrentPoints      uint64          `json:"current_points"`
		PointsFound24H     json.RawMessage `json:"points_found_24h"`
		PointsAcked24H     json.RawMessage `json:"points_acknowledged_24h"`
		NextFarmerUpdate   float64         `json:"next_farmer_update"`
		NextPoolInfoUpdate float64         `json:"next_pool_info_update"`
		PoolErrors24H      json.RawMessage `json:"pool_errors_24h"`
	}

	// PoolWalletStatus is the pw_status response of a pooling wallet.
	PoolWalletStatus struct {
		Current               json.RawMessage `json:"current"`
		Target                json.RawMessage `json:"target"`
		LauncherID            string          `json:"launcher_id"`
		LauncherCoin          json.RawMessage `json:"launcher_coin"`
		P2SingletonPuzzleHash string          `json:"p2_singleton_puzzle_hash"`
		CurrentInner          string          `json:"current_inner"`
		TipSingletonCoinID    string          `json:"tip_singleton_coin_id"`
		SingletonBlockHeight  uint32          `json:"singleton_block_height"`
	}
)
