package blocks

import (
	"time"

	"github.com/kalicatt/boat-booking-saas-sub003/internal/domain"
)

// BlockResponse представление блокировки
type BlockResponse struct {
	ID     int64  `json:"id"`
	Start  string `json:"start"` // RFC3339
	End    string `json:"end"`   // RFC3339
	Scope  string `json:"scope"` // day | interval
	Reason string `json:"reason"`
}

// BlockListResponse список блокировок
type BlockListResponse struct {
	Blocks []BlockResponse `json:"blocks"`
}

// CreateBlockRequest запрос создания блокировки.
// Для scope=day достаточно поля date, границы выводятся из суток.
// Для scope=interval обязательны start и end.
type CreateBlockRequest struct {
	Date   string `json:"date,omitempty"`  // YYYY-MM-DD, только для scope=day
	Start  string `json:"start,omitempty"` // RFC3339, только для scope=interval
	End    string `json:"end,omitempty"`   // RFC3339, только для scope=interval
	Scope  string `json:"scope"`
	Reason string `json:"reason"`
}

func FromDomain(b *domain.BlockedInterval) BlockResponse {
	return BlockResponse{
		ID:     b.ID,
		Start:  b.Start.UTC().Format(time.RFC3339),
		End:    b.End.UTC().Format(time.RFC3339),
		Scope:  string(b.Scope),
		Reason: b.Reason,
	}
}

func FromDomainList(list []*domain.BlockedInterval) *BlockListResponse {
	result := make([]BlockResponse, 0, len(list))
	for _, b := range list {
		result = append(result, FromDomain(b))
	}
	return &BlockListResponse{Blocks: result}
}
