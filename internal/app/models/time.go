package models

import "time"

type TimeModel struct {
	CreatedAt time.Time `json:"createdAt"`
}

func (m *TimeModel) SetCreatedAt() {
	m.CreatedAt = time.Now()
}
