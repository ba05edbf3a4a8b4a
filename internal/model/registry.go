package model

// All returns every table model in migration order.
func All() []interface{} {
	return []interface{}{
		&Shop{},
		&Worker{},
		&ShopService{},
		&Booking{},
		&CancellationToken{},
		&CancellationRecord{},
		&Invoice{},
		&AdminLog{},
	}
}
