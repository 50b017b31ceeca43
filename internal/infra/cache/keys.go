package cache

import "fmt"

// Ключи кеша. Ответ доступности зависит от даты, языка и состава группы,
// поэтому все четыре параметра входят в ключ.

// AvailabilityKey строит ключ кеша для ответа доступности
func AvailabilityKey(date, language string, adults, children, babies int) string {
	return fmt.Sprintf("availability:%s:%s:%d:%d:%d", date, language, adults, children, babies)
}

// AvailabilityDatePrefix строит префикс всех ключей доступности на дату
// (инвалидация после создания/отмены бронирования)
func AvailabilityDatePrefix(date string) string {
	return fmt.Sprintf("availability:%s:", date)
}

// BoatsKey ключ кеша списка активных лодок
const BoatsKey = "boats:active"
