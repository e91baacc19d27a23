package memory

import (
	"slices"
	"sync"

	"github.com/vladislavdragonenkov/bos/internal/domain"
)

// orderRepositoryInMemory — простая in-memory реализация OrderRepository.
type orderRepositoryInMemory struct {
	mu     sync.Mutex
	nextID int64
	orders []domain.Order
	byID   map[int64]int
}

// NewOrderRepository возвращает in-memory репозиторий для локальной разработки и тестов.
func NewOrderRepository() domain.OrderRepository {
	return &orderRepositoryInMemory{
		nextID: 1,
		byID:   make(map[int64]int),
	}
}

// NextID выдаёт следующий идентификатор. Счётчик монотонный, начинается с 1.
func (r *orderRepositoryInMemory) NextID() int64 {
	r.mu.Lock()
	defer r.mu.Unlock()

	id := r.nextID
	r.nextID++
	return id
}

// cloneOrder копирует агрегат вместе со слайсом позиций, чтобы избежать
// непредсказуемых мутаций извне: репозиторий — единственный владелец заказа.
func cloneOrder(order domain.Order) domain.Order {
	order.Items = slices.Clone(order.Items)
	return order
}

// Save сохраняет копию заказа. Повторное сохранение с тем же ID перезаписывает запись.
func (r *orderRepositoryInMemory) Save(order domain.Order) (domain.Order, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	stored := cloneOrder(order)
	if idx, ok := r.byID[stored.ID]; ok {
		r.orders[idx] = stored
	} else {
		r.byID[stored.ID] = len(r.orders)
		r.orders = append(r.orders, stored)
	}
	return cloneOrder(stored), nil
}

// Get возвращает копию заказа или ErrOrderNotFound, если его нет.
func (r *orderRepositoryInMemory) Get(id int64) (domain.Order, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	idx, ok := r.byID[id]
	if !ok {
		return domain.Order{}, domain.ErrOrderNotFound
	}
	return cloneOrder(r.orders[idx]), nil
}

// ListAll возвращает копии всех заказов в порядке вставки.
func (r *orderRepositoryInMemory) ListAll() []domain.Order {
	r.mu.Lock()
	defer r.mu.Unlock()

	result := make([]domain.Order, 0, len(r.orders))
	for _, order := range r.orders {
		result = append(result, cloneOrder(order))
	}
	return result
}

var _ domain.OrderRepository = (*orderRepositoryInMemory)(nil)
