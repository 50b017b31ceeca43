// Package notify сигнализирует интерфейсу планинга об изменениях расписания
package notify

import (
	"context"
	"time"

	"github.com/go-redis/redis/v8"
)

const planningKey = "planning:last_update"

// Logger интерфейс логирования
type Logger interface {
	Warn(format string, v ...interface{})
}

// PlanningNotifier пишет метку последнего изменения расписания в Redis.
// Планинг опрашивает её и перечитывает день при изменении.
type PlanningNotifier struct {
	client *redis.Client
	logger Logger
}

// NewPlanningNotifier создает нотификатор. client может быть nil
// (Redis выключен), тогда уведомления не отправляются.
func NewPlanningNotifier(client *redis.Client, logger Logger) *PlanningNotifier {
	return &PlanningNotifier{client: client, logger: logger}
}

// PlanningChanged отмечает изменение расписания. Ошибки не поднимаются:
// уведомление планинга не должно ломать путь бронирования.
func (n *PlanningNotifier) PlanningChanged(ctx context.Context) {
	if n.client == nil {
		return
	}

	value := time.Now().UTC().Format(time.RFC3339Nano)
	if err := n.client.Set(ctx, planningKey, value, 0).Err(); err != nil {
		n.logger.Warn("notify: PlanningChanged - failed to set %s: %v", planningKey, err)
	}
}
