package entropy

type HeadResponse struct {
	Position uint64 `json:"position"`
}

type BlockResponse struct {
	Height    uint64 `json:"height"`
	Hash      string `json:"hash"`
	PrevHash  string `json:"prev_hash"`
	Nonce     string `json:"nonce"`
	CreatedAt string `json:"created_at"`
}
