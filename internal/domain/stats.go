package domain

import "time"

// FilterClick - одно событие клика по фильтру. Лог только добавляется,
// события никогда не изменяются и не удаляются.
type FilterClick struct {
	ID         int64     `json:"id" db:"id"`
	FilterName string    `json:"filterName" db:"filter_name"`
	CreatedAt  time.Time `json:"createdAt" db:"created_at"`
}

// FilterCount - количество кликов по одному фильтру в окне
type FilterCount struct {
	FilterName string `json:"filterName" db:"filter_name"`
	Count      int    `json:"count" db:"count"`
}

// FilterClickStats - агрегаты по трём скользящим окнам, отсортированные
// по убыванию количества кликов
type FilterClickStats struct {
	LastDay   []FilterCount `json:"lastDay"`
	LastWeek  []FilterCount `json:"lastWeek"`
	LastMonth []FilterCount `json:"lastMonth"`
}
