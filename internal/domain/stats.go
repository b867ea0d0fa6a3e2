package domain

// Stats представляет агрегированные счетчики пользователей.
// Значения вычисляются бэкендом, консоль их только отображает.
type Stats struct {
	TotalUsers   int64 `json:"total_users"`
	ActiveUsers  int64 `json:"active_users"`
	PendingUsers int64 `json:"pending_users"`
}
