package domain

// OrderItem представляет одну позицию заказа. Значение неизменяемое:
// слияние позиций порождает новый OrderItem, а не мутирует существующий.
type OrderItem struct {
	// ProductID — внешний идентификатор товара.
	ProductID int64
	// UnitPrice — цена за единицу товара.
	UnitPrice Money
	// Quantity — количество единиц, строго больше нуля.
	Quantity int64
}

// NewOrderItem проверяет инвариант количества при конструировании позиции.
func NewOrderItem(productID int64, unitPrice Money, quantity int64) (OrderItem, error) {
	if quantity <= 0 {
		return OrderItem{}, ErrItemQtyInvalid
	}
	return OrderItem{
		ProductID: productID,
		UnitPrice: unitPrice,
		Quantity:  quantity,
	}, nil
}

// Subtotal возвращает стоимость позиции: цена за единицу, умноженная на количество.
func (i OrderItem) Subtotal() Money {
	return i.UnitPrice.MulInt(i.Quantity)
}

// Order агрегирует позиции заказа одного пользователя.
// Агрегат изменяемый и принадлежит ровно одному репозиторию.
type Order struct {
	ID     int64
	UserID int64
	Items  []OrderItem
}

// NewOrder создаёт пустой заказ с уже выданным идентификатором.
func NewOrder(id, userID int64) *Order {
	return &Order{
		ID:     id,
		UserID: userID,
	}
}

// AddItem добавляет позицию в заказ. Позиции с одинаковым ProductID
// сливаются: количества складываются, цена берётся из новой позиции.
// Порядок вставки остальных позиций сохраняется.
func (o *Order) AddItem(item OrderItem) {
	for idx, existing := range o.Items {
		if existing.ProductID != item.ProductID {
			continue
		}
		o.Items[idx] = OrderItem{
			ProductID: item.ProductID,
			UnitPrice: item.UnitPrice,
			Quantity:  existing.Quantity + item.Quantity,
		}
		return
	}
	o.Items = append(o.Items, item)
}

// Total складывает стоимости всех позиций, начиная с нулевой суммы.
func (o *Order) Total() Money {
	total := MoneyZero()
	for _, item := range o.Items {
		total = total.Add(item.Subtotal())
	}
	return total
}
