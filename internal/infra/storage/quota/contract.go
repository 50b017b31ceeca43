package quota

import (
	"github.com/kalicatt/boat-booking-saas-sub003/pkg/dbmetrics"
)

// Переиспользуем интерфейсы из dbmetrics для работы с БД
type DBExecutor = dbmetrics.DBExecutor
