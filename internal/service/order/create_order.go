package order

import (
	"context"
	"errors"
	"fmt"

	"github.com/shopspring/decimal"
	log "github.com/sirupsen/logrus"

	"github.com/vladislavdragonenkov/bos/internal/domain"
	"github.com/vladislavdragonenkov/bos/internal/metrics"
	"github.com/vladislavdragonenkov/bos/internal/service/pricing"
)

// ItemInput — сырая позиция заказа из внешнего мира (JSON из CLI или API).
// Указатели отличают отсутствующее поле от нулевого значения.
type ItemInput struct {
	ProductID *int64           `json:"product_id"`
	Price     *decimal.Decimal `json:"price"`
	Quantity  *int64           `json:"quantity"`
}

// toDomain валидирует позицию и конструирует доменный OrderItem.
// Отсутствующее количество трактуется как 1.
func (i ItemInput) toDomain() (domain.OrderItem, error) {
	if i.Price == nil {
		return domain.OrderItem{}, domain.ErrMissingPrice
	}
	if i.ProductID == nil {
		return domain.OrderItem{}, domain.ErrMissingProductID
	}

	quantity := int64(1)
	if i.Quantity != nil {
		quantity = *i.Quantity
	}

	return domain.NewOrderItem(*i.ProductID, domain.NewMoney(*i.Price), quantity)
}

// CreateOrderUseCase оркестрирует создание заказа: разбор входных позиций,
// сборку агрегата, сохранение и применение скидки к итоговой сумме.
type CreateOrderUseCase struct {
	repo      domain.OrderRepository
	discounts *pricing.DiscountService
	metrics   *metrics.OrderMetrics
	logger    *log.Entry
}

// NewCreateOrderUseCase конструирует use case с зависимостями.
// metrics может быть nil — тогда счётчики не обновляются.
func NewCreateOrderUseCase(
	repo domain.OrderRepository,
	discounts *pricing.DiscountService,
	orderMetrics *metrics.OrderMetrics,
	logger *log.Entry,
) *CreateOrderUseCase {
	if logger == nil {
		logger = log.New().WithField("component", "create-order")
	}
	return &CreateOrderUseCase{
		repo:      repo,
		discounts: discounts,
		metrics:   orderMetrics,
		logger:    logger,
	}
}

// Execute создаёт заказ и возвращает итоговую сумму со скидкой.
// Сохранённый заказ хранит сумму без скидки: скидка применяется только
// к возвращаемому значению.
func (uc *CreateOrderUseCase) Execute(
	_ context.Context,
	userID int64,
	items []ItemInput,
	discountPercentage int64,
) (domain.Money, error) {
	parsed := make([]domain.OrderItem, 0, len(items))
	for idx, raw := range items {
		item, err := raw.toDomain()
		if err != nil {
			uc.recordRejected(err)
			return domain.Money{}, fmt.Errorf("item[%d]: %w", idx, err)
		}
		parsed = append(parsed, item)
	}

	if len(parsed) == 0 {
		uc.recordRejected(domain.ErrEmptyOrder)
		return domain.Money{}, domain.ErrEmptyOrder
	}

	order := domain.NewOrder(uc.repo.NextID(), userID)
	for _, item := range parsed {
		order.AddItem(item)
	}

	stored, err := uc.repo.Save(*order)
	if err != nil {
		return domain.Money{}, fmt.Errorf("save order: %w", err)
	}

	total := stored.Total()
	discounted, err := uc.discounts.Apply(total, discountPercentage)
	if err != nil {
		uc.recordRejected(err)
		return domain.Money{}, err
	}

	if uc.metrics != nil {
		uc.metrics.RecordOrderCreated(total.Amount().InexactFloat64())
		if discountPercentage > 0 {
			uc.metrics.RecordDiscountApplied()
		}
	}
	uc.logger.WithFields(log.Fields{
		"order_id": stored.ID,
		"user_id":  userID,
		"lines":    len(stored.Items),
		"total":    total.String(),
		"discount": discountPercentage,
	}).Info("order created")

	return discounted, nil
}

// rejectReason переводит доменную ошибку в лейбл метрики.
func rejectReason(err error) string {
	switch {
	case errors.Is(err, domain.ErrMissingPrice):
		return metrics.RejectReasonMissingPrice
	case errors.Is(err, domain.ErrMissingProductID):
		return metrics.RejectReasonMissingProduct
	case errors.Is(err, domain.ErrItemQtyInvalid):
		return metrics.RejectReasonInvalidQty
	case errors.Is(err, domain.ErrEmptyOrder):
		return metrics.RejectReasonEmptyOrder
	case errors.Is(err, domain.ErrInvalidDiscount):
		return metrics.RejectReasonInvalidDiscount
	default:
		return "internal"
	}
}

func (uc *CreateOrderUseCase) recordRejected(err error) {
	if uc.metrics != nil {
		uc.metrics.RecordOrderRejected(rejectReason(err))
	}
}
