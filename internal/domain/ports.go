package domain

// BookingRepository описывает требования к хранилищу бронирований.
type BookingRepository interface {
	// NextID возвращает следующий монотонный идентификатор (счёт с 1).
	NextID() int64
	// Save сохраняет бронирование и возвращает его с назначенным ID.
	// Выдача идентификатора и запись выполняются как одна атомарная операция.
	Save(booking Booking) (Booking, error)
	// Get возвращает бронирование по идентификатору или ErrBookingNotFound.
	Get(id int64) (Booking, error)
	// ListAll возвращает копию всех бронирований в порядке вставки.
	ListAll() []Booking
}

// OrderRepository описывает требования к хранилищу заказов.
type OrderRepository interface {
	// NextID возвращает следующий монотонный идентификатор (счёт с 1).
	NextID() int64
	// Save сохраняет заказ и возвращает сохранённую копию.
	// Репозиторий владеет агрегатом: наружу отдаются только копии.
	Save(order Order) (Order, error)
	// Get возвращает заказ по идентификатору или ErrOrderNotFound.
	Get(id int64) (Order, error)
	// ListAll возвращает копии всех заказов в порядке вставки.
	ListAll() []Order
}
