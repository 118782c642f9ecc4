package result

type (
	// Connection describes one peer connection of a service, as returned
	// by the get_connections call every service supports.
	Connection struct {
		Type            int     `json:"type"`
		LocalPort       int     `json:"local_port"`
		PeerHost        string  `json:"peer_host"`
		PeerPort        int     `json:"peer_port"`
		PeerServerPort  int     `json:"peer_server_port"`
		NodeID          string  `json:"node_id"`
		CreationTime    float64 `json:"creation_time"`
		LastMessageTime float64 `json:"last_message_time"`
		BytesRead       uint64  `json:"bytes_read"`
		BytesWritten    uint64  `json:"bytes_written"`
		PeakHash        *string `json:"peak_hash"`
		PeakHeight      *uint32 `json:"peak_height"`
		PeakWeight      *uint64 `json:"peak_weight"`
	}

	// NetworkInfo names the network a service operates on.
	NetworkInfo struct {
		NetworkName   string `json:"network_name"`
		NetworkPrefix string `json:"network_prefix"`
	}

	// PeerCounts is the crawler's summary of the peers it has seen.
	PeerCounts struct {
		TotalLast5Days int            `json:"total_last_5_days"`
		ReliableNodes  int            `json:"reliable_nodes"`
		IPV4Last5Days  int            `json:"ipv4_last_5_days"`
		IPV6Last5Days  int            `json:"ipv6_last_5_days"`
		Versions       map[string]int `json:"versions"`
	}
)
