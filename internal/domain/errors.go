package domain

import "errors"

var (
	// Ошибка некорректной длительности бронирования (<= 0 или больше максимума).
	ErrInvalidDuration = errors.New("booking duration must be positive and not exceed max days")
	// Ошибка пересечения дат с существующим бронированием той же комнаты.
	ErrRoomUnavailable = errors.New("room not available for given dates")
	// ErrBookingNotFound возвращается, если бронирование не найдено в репозитории.
	ErrBookingNotFound = errors.New("booking not found")
	// Ошибка отсутствующей цены в позиции заказа.
	ErrMissingPrice = errors.New("order item requires a price")
	// Ошибка отсутствующего идентификатора товара в позиции заказа.
	ErrMissingProductID = errors.New("order item requires a product_id")
	// Ошибка при некорректном количестве товара (<= 0).
	ErrItemQtyInvalid = errors.New("item quantity must be greater than zero")
	// Ошибка отсутствия хотя бы одной позиции в заказе.
	ErrEmptyOrder = errors.New("order must contain at least one item")
	// Ошибка скидки больше 100 процентов.
	ErrInvalidDiscount = errors.New("discount cannot exceed 100 percent")
	// ErrOrderNotFound возвращается, если заказ не найден в репозитории.
	ErrOrderNotFound = errors.New("order not found")
)

// IsNotFound проверяет, является ли ошибка отсутствием сущности в хранилище.
func IsNotFound(err error) bool {
	return errors.Is(err, ErrBookingNotFound) || errors.Is(err, ErrOrderNotFound)
}

// IsValidation проверяет, относится ли ошибка к нарушению бизнес-инвариантов
// входных данных (транспортный слой транслирует такие ошибки в 4xx).
func IsValidation(err error) bool {
	for _, target := range []error{
		ErrInvalidDuration,
		ErrRoomUnavailable,
		ErrMissingPrice,
		ErrMissingProductID,
		ErrItemQtyInvalid,
		ErrEmptyOrder,
		ErrInvalidDiscount,
	} {
		if errors.Is(err, target) {
			return true
		}
	}
	return false
}
