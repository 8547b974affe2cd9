package assets

import "AMS-backend/internal/asset_mgmt/records"

// Asset は upstream のどの形で届いても最終的にこの1形に収める。
type Asset struct {
	ID          string  `json:"id,omitempty"`
	ItemName    string  `json:"item_name"`
	Category    string  `json:"category,omitempty"`
	Condition   string  `json:"condition,omitempty"`
	QtyInStock  int     `json:"qty_in_stock"`
	Owner       string  `json:"owner,omitempty"`
	Picture     *string `json:"picture,omitempty"`
	Description string  `json:"description,omitempty"`
}

// UnderMaintenance は condition からメンテナンス・故障扱いかを判定する。
func (a Asset) UnderMaintenance() bool {
	return records.IsMaintenance(a.Condition)
}
