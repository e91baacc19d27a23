package domain

import "time"

// MaxBookingDays ограничивает длительность одного бронирования в сутках.
const MaxBookingDays = 10

// Booking — бронирование комнаты на диапазон дат.
// Диапазон полуоткрытый: день выезда (EndDate) свободен для нового заезда.
type Booking struct {
	ID           int64
	RoomID       int64
	CustomerName string
	StartDate    time.Time
	EndDate      time.Time
}

// DayStart нормализует момент времени до начала суток в UTC.
// Все даты бронирований хранятся только в таком виде.
func DayStart(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// daysBetween считает число целых суток между двумя нормализованными датами.
func daysBetween(start, end time.Time) int {
	return int(end.Sub(start).Hours() / 24)
}

// NewBooking нормализует даты и проверяет инвариант длительности:
// строго больше нуля и не больше MaxBookingDays (ровно 10 суток допустимо).
// ID остаётся нулевым, его назначает репозиторий при сохранении.
func NewBooking(roomID int64, customerName string, startDate, endDate time.Time) (Booking, error) {
	startDate = DayStart(startDate)
	endDate = DayStart(endDate)

	days := daysBetween(startDate, endDate)
	if days <= 0 || days > MaxBookingDays {
		return Booking{}, ErrInvalidDuration
	}

	return Booking{
		RoomID:       roomID,
		CustomerName: customerName,
		StartDate:    startDate,
		EndDate:      endDate,
	}, nil
}

// DurationDays возвращает длительность бронирования в целых сутках.
func (b Booking) DurationDays() int {
	return daysBetween(b.StartDate, b.EndDate)
}

// Overlaps сообщает, конфликтует ли бронирование с другим.
// Конфликт есть только для одной и той же комнаты; совпадение границы
// (выезд одного в день заезда другого) пересечением не считается.
func (b Booking) Overlaps(other Booking) bool {
	if b.RoomID != other.RoomID {
		return false
	}
	return b.StartDate.Before(other.EndDate) && other.StartDate.Before(b.EndDate)
}
