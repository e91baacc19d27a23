package pricing

import (
	"github.com/vladislavdragonenkov/bos/internal/domain"
)

// DiscountService — stateless доменный сервис процентных скидок.
type DiscountService struct{}

// NewDiscountService конструирует сервис скидок.
func NewDiscountService() *DiscountService {
	return &DiscountService{}
}

// Apply применяет процентную скидку к итоговой сумме.
// percentage <= 0 — скидки нет, сумма возвращается без изменений.
// percentage > 100 — ErrInvalidDiscount.
// Сумма скидки округляется до цента ДО вычитания, поэтому результат может
// отличаться на цент от прямого расчёта total * (100 - p) / 100.
func (s *DiscountService) Apply(total domain.Money, percentage int64) (domain.Money, error) {
	if percentage <= 0 {
		return total, nil
	}
	if percentage > 100 {
		return domain.Money{}, domain.ErrInvalidDiscount
	}
	return total.Sub(total.Percent(percentage)), nil
}
