package memory

import (
	"sync"

	"github.com/vladislavdragonenkov/bos/internal/domain"
)

// bookingRepositoryInMemory — простая in-memory реализация BookingRepository.
type bookingRepositoryInMemory struct {
	mu       sync.Mutex
	nextID   int64
	bookings []domain.Booking
}

// NewBookingRepository возвращает in-memory репозиторий для локальной разработки и тестов.
func NewBookingRepository() domain.BookingRepository {
	return &bookingRepositoryInMemory{
		nextID: 1,
	}
}

// NextID выдаёт следующий идентификатор. Счётчик монотонный, начинается с 1.
func (r *bookingRepositoryInMemory) NextID() int64 {
	r.mu.Lock()
	defer r.mu.Unlock()

	return r.reserveID()
}

// reserveID инкрементирует счётчик; вызывается только под r.mu.
func (r *bookingRepositoryInMemory) reserveID() int64 {
	id := r.nextID
	r.nextID++
	return id
}

// Save сохраняет бронирование. Нулевой ID заменяется свежим из счётчика;
// выдача идентификатора и запись выполняются под одной блокировкой.
func (r *bookingRepositoryInMemory) Save(booking domain.Booking) (domain.Booking, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if booking.ID == 0 {
		booking.ID = r.reserveID()
	}
	r.bookings = append(r.bookings, booking)
	return booking, nil
}

// Get возвращает бронирование или ErrBookingNotFound, если его нет.
func (r *bookingRepositoryInMemory) Get(id int64) (domain.Booking, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, booking := range r.bookings {
		if booking.ID == id {
			return booking, nil
		}
	}
	return domain.Booking{}, domain.ErrBookingNotFound
}

// ListAll возвращает копию списка в порядке вставки.
func (r *bookingRepositoryInMemory) ListAll() []domain.Booking {
	r.mu.Lock()
	defer r.mu.Unlock()

	result := make([]domain.Booking, len(r.bookings))
	copy(result, r.bookings)
	return result
}

var _ domain.BookingRepository = (*bookingRepositoryInMemory)(nil)
