package assets

// ===== Responses =====

type ListAssetsResponse struct {
	Items []Asset `json:"items"`
	Total int     `json:"total"`
}
