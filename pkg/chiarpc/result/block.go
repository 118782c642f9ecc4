package result

import "encoding/json"

type (
	// BlockRecord is the consensus-level summary of a block kept by the
	// full node for every block in the chain.
	BlockRecord struct {
		HeaderHash                 string      `json:"header_hash"`
		PrevHash                   string      `json:"prev_hash"`
		Height                     uint32      `json:"height"`
		Weight                     json.Number `json:"weight"`
		TotalIters                 json.Number `json:"total_iters"`
		SignagePointIndex          uint8       `json:"signage_point_index"`
		ChallengeBlockInfoHash     string      `json:"challenge_block_info_hash"`
		FarmerPuzzleHash           string      `json:"farmer_puzzle_hash"`
		PoolPuzzleHash             string      `json:"pool_puzzle_hash"`
		RequiredIters              uint64      `json:"required_iters"`
		Deficit                    uint8       `json:"deficit"`
		Overflow                   bool        `json:"overflow"`
		PrevTransactionBlockHeight uint32      `json:"prev_transaction_block_height"`
		// Timestamp and Fees are only present for transaction blocks.
		Timestamp                 *uint64         `json:"timestamp"`
		Fees                      *uint64         `json:"fees"`
		PrevTransactionBlockHash  *string         `json:"prev_transaction_block_hash"`
		RewardClaimsIncorporated  json.RawMessage `json:"reward_claims_incorporated"`
		InfusedChallengeVDFOutput json.RawMessage `json:"infused_challenge_vdf_output"`
		ChallengeVDFOutput        json.RawMessage `json:"challenge_vdf_output"`
		SubEpochSummaryIncluded   json.RawMessage `json:"sub_epoch_summary_included"`
	}

	// FullBlock mirrors the node's full_block structure. Proofs and foliage
	// are passed through raw, they're consensus material a client binding
	// doesn't interpret.
	FullBlock struct {
		RewardChainBlock             RewardChainBlock `json:"reward_chain_block"`
		Foliage                      json.RawMessage  `json:"foliage"`
		FoliageTransactionBlock      json.RawMessage  `json:"foliage_transaction_block"`
		FinishedSubSlots             json.RawMessage  `json:"finished_sub_slots"`
		TransactionsInfo             json.RawMessage  `json:"transactions_info"`
		TransactionsGenerator        *string          `json:"transactions_generator"`
		TransactionsGeneratorRefList []uint32         `json:"transactions_generator_ref_list"`
		ChallengeChainSPProof        json.RawMessage  `json:"challenge_chain_sp_proof"`
		ChallengeChainIPProof        json.RawMessage  `json:"challenge_chain_ip_proof"`
		RewardChainSPProof           json.RawMessage  `json:"reward_chain_sp_proof"`
		RewardChainIPProof           json.RawMessage  `json:"reward_chain_ip_proof"`
		InfusedChallengeChainIPProof json.RawMessage  `json:"infused_challenge_chain_ip_proof"`
	}

	// RewardChainBlock carries the proof-of-space part of a full block.
	RewardChainBlock struct {
		Height               uint32          `json:"height"`
		Weight               json.Number     `json:"weight"`
		TotalIters           json.Number     `json:"total_iters"`
		SignagePointIndex    uint8           `json:"signage_point_index"`
		POSSSCCChallengeHash string          `json:"pos_ss_cc_challenge_hash"`
		ProofOfSpace         json.RawMessage `json:"proof_of_space"`
		IsTransactionBlock   bool            `json:"is_transaction_block"`
	}

	// UnfinishedHeader is an in-progress block header from
	// get_unfinished_block_headers.
	UnfinishedHeader struct {
		Foliage                 json.RawMessage  `json:"foliage"`
		FoliageTransactionBlock json.RawMessage  `json:"foliage_transaction_block"`
		RewardChainBlock        RewardChainBlock `json:"reward_chain_block"`
	}
)
