package metrics

import (
	"fmt"

	"github.com/prometheus/client_golang/prometheus"
)

// BookingMetrics содержит метрики слайса бронирований.
type BookingMetrics struct {
	// Счётчики операций
	bookingsCreated  prometheus.Counter
	bookingsRejected *prometheus.CounterVec

	// Гистограмма длительности бронирований в сутках
	bookingNights prometheus.Histogram
}

// Причины отказа для лейбла reason.
const (
	RejectReasonInvalidDuration = "invalid_duration"
	RejectReasonRoomUnavailable = "room_unavailable"
)

// NewBookingMetrics создаёт новый экземпляр метрик бронирований.
func NewBookingMetrics() *BookingMetrics {
	return newBookingMetricsWithRegisterer(prometheus.DefaultRegisterer)
}

func newBookingMetricsWithRegisterer(registerer prometheus.Registerer) *BookingMetrics {
	if registerer == nil {
		registerer = prometheus.DefaultRegisterer
	}

	return &BookingMetrics{
		bookingsCreated: registerCounter(registerer, prometheus.CounterOpts{
			Name: "bos_bookings_created_total",
			Help: "Total number of bookings successfully created",
		}),
		bookingsRejected: registerCounterVec(registerer, prometheus.CounterOpts{
			Name: "bos_bookings_rejected_total",
			Help: "Total number of booking requests rejected by validation",
		}, []string{"reason"}),
		bookingNights: registerHistogram(registerer, prometheus.HistogramOpts{
			Name:    "bos_booking_nights",
			Help:    "Distribution of booking duration in nights",
			Buckets: []float64{1, 2, 3, 5, 7, 10},
		}),
	}
}

// RecordBookingCreated учитывает успешно созданное бронирование.
func (m *BookingMetrics) RecordBookingCreated(nights int) {
	m.bookingsCreated.Inc()
	m.bookingNights.Observe(float64(nights))
}

// RecordBookingRejected учитывает отклонённый запрос с причиной отказа.
func (m *BookingMetrics) RecordBookingRejected(reason string) {
	m.bookingsRejected.WithLabelValues(reason).Inc()
}

func registerCounter(registerer prometheus.Registerer, opts prometheus.CounterOpts) prometheus.Counter {
	collector := prometheus.NewCounter(opts)
	if err := registerer.Register(collector); err != nil {
		if alreadyRegistered, ok := err.(prometheus.AlreadyRegisteredError); ok {
			existing, ok := alreadyRegistered.ExistingCollector.(prometheus.Counter)
			if !ok {
				panic(fmt.Sprintf("collector %q already registered with unexpected type", opts.Name))
			}
			return existing
		}
		panic(fmt.Sprintf("register counter %q: %v", opts.Name, err))
	}
	return collector
}

func registerCounterVec(registerer prometheus.Registerer, opts prometheus.CounterOpts, labels []string) *prometheus.CounterVec {
	collector := prometheus.NewCounterVec(opts, labels)
	if err := registerer.Register(collector); err != nil {
		if alreadyRegistered, ok := err.(prometheus.AlreadyRegisteredError); ok {
			existing, ok := alreadyRegistered.ExistingCollector.(*prometheus.CounterVec)
			if !ok {
				panic(fmt.Sprintf("collector %q already registered with unexpected type", opts.Name))
			}
			return existing
		}
		panic(fmt.Sprintf("register counter vec %q: %v", opts.Name, err))
	}
	return collector
}

func registerHistogram(registerer prometheus.Registerer, opts prometheus.HistogramOpts) prometheus.Histogram {
	collector := prometheus.NewHistogram(opts)
	if err := registerer.Register(collector); err != nil {
		if alreadyRegistered, ok := err.(prometheus.AlreadyRegisteredError); ok {
			existing, ok := alreadyRegistered.ExistingCollector.(prometheus.Histogram)
			if !ok {
				panic(fmt.Sprintf("collector %q already registered with unexpected type", opts.Name))
			}
			return existing
		}
		panic(fmt.Sprintf("register histogram %q: %v", opts.Name, err))
	}
	return collector
}
