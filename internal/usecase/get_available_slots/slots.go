package get_available_slots

import (
	"sort"
	"time"

	"github.com/m04kA/SMC-ReservationService/pkg/types"
)

// prepareSlots упорядочивает слоты шаблона дня и отфильтровывает те,
// которые не могут быть предложены:
//   - слоты с некорректным временем исключаются поштучно (один битый
//     слот не обнуляет доступность всего ресторана)
//   - если запрошена сегодняшняя дата, слоты, начинающиеся не позже
//     текущего времени (плюс минимальное время до бронирования),
//     не предлагаются
//
// Возвращает слоты и количество исключённых некорректных записей
func prepareSlots(
	slots []types.TimeString,
	requestDate time.Time,
	now time.Time,
	minBookingNoticeMinutes int,
) ([]types.TimeString, int) {
	type slotWithMinutes struct {
		slot    types.TimeString
		minutes int
	}

	parsed := make([]slotWithMinutes, 0, len(slots))
	malformed := 0

	for _, slot := range slots {
		minutes, err := slot.Minutes()
		if err != nil {
			malformed++
			continue
		}
		parsed = append(parsed, slotWithMinutes{slot: slot, minutes: minutes})
	}

	// Гарантируем порядок по возрастанию времени независимо от того,
	// как персонал сохранил список
	sort.SliceStable(parsed, func(i, j int) bool {
		return parsed[i].minutes < parsed[j].minutes
	})

	// Для будущих дат возвращаем все корректные слоты
	if !isSameDay(requestDate, now) {
		result := make([]types.TimeString, len(parsed))
		for i, p := range parsed {
			result[i] = p.slot
		}
		return result, malformed
	}

	// Для сегодняшней даты прошедшие слоты никогда не предлагаются:
	// слот должен начинаться строго позже текущего времени
	cutoff := now.Hour()*60 + now.Minute() + minBookingNoticeMinutes

	result := make([]types.TimeString, 0, len(parsed))
	for _, p := range parsed {
		if p.minutes > cutoff {
			result = append(result, p.slot)
		}
	}
	return result, malformed
}

// isSameDay проверяет, что две даты относятся к одному и тому же дню
func isSameDay(date1, date2 time.Time) bool {
	y1, m1, d1 := date1.Date()
	y2, m2, d2 := date2.Date()
	return y1 == y2 && m1 == m2 && d1 == d2
}

// isDateInPast проверяет, что дата в прошлом (раньше сегодняшнего дня)
func isDateInPast(date, now time.Time) bool {
	dateOnly := time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, date.Location())
	nowOnly := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	return dateOnly.Before(nowOnly)
}
