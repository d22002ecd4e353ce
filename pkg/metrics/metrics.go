package metrics

import (
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// Metrics набор Prometheus-метрик сервиса
type Metrics struct {
	httpRequestsTotal   *prometheus.CounterVec
	httpRequestDuration *prometheus.HistogramVec

	dbQueryDuration  *prometheus.HistogramVec
	dbOpenConns      *prometheus.GaugeVec
	dbInUseConns     *prometheus.GaugeVec
	dbIdleConns      *prometheus.GaugeVec
	dbWaitCountTotal *prometheus.GaugeVec

	slotsGenerated      *prometheus.HistogramVec
	appointmentsCreated *prometheus.CounterVec
	slotConflicts       *prometheus.CounterVec
	closureCacheLookups *prometheus.CounterVec
}

// New создает метрики и регистрирует их в глобальном реестре Prometheus
func New(serviceName string) *Metrics {
	return NewWithRegisterer(prometheus.DefaultRegisterer, serviceName)
}

// NewWithRegisterer создает метрики и регистрирует их в переданном реестре
func NewWithRegisterer(reg prometheus.Registerer, serviceName string) *Metrics {
	constLabels := prometheus.Labels{"service": serviceName}

	m := &Metrics{
		httpRequestsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name:        "http_requests_total",
			Help:        "Total number of HTTP requests.",
			ConstLabels: constLabels,
		}, []string{"method", "route", "status"}),
		httpRequestDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:        "http_request_duration_seconds",
			Help:        "HTTP request latency.",
			ConstLabels: constLabels,
			Buckets:     prometheus.DefBuckets,
		}, []string{"method", "route"}),

		dbQueryDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:        "db_query_duration_seconds",
			Help:        "Database query latency.",
			ConstLabels: constLabels,
			Buckets:     []float64{.001, .005, .01, .025, .05, .1, .25, .5, 1},
		}, []string{"operation", "status"}),
		dbOpenConns: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Name:        "db_open_connections",
			Help:        "Number of established connections.",
			ConstLabels: constLabels,
		}, []string{"db"}),
		dbInUseConns: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Name:        "db_in_use_connections",
			Help:        "Number of connections currently in use.",
			ConstLabels: constLabels,
		}, []string{"db"}),
		dbIdleConns: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Name:        "db_idle_connections",
			Help:        "Number of idle connections.",
			ConstLabels: constLabels,
		}, []string{"db"}),
		dbWaitCountTotal: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Name:        "db_wait_count_total",
			Help:        "Total number of connections waited for.",
			ConstLabels: constLabels,
		}, []string{"db"}),

		slotsGenerated: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:        "availability_slots_returned",
			Help:        "Number of bookable slots returned per availability request.",
			ConstLabels: constLabels,
			Buckets:     []float64{0, 1, 4, 8, 16, 24, 32, 48, 64},
		}, []string{"closure"}),
		appointmentsCreated: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name:        "appointments_created_total",
			Help:        "Appointments committed through the reservation path.",
			ConstLabels: constLabels,
		}, []string{"status"}),
		slotConflicts: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name:        "appointment_slot_conflicts_total",
			Help:        "Reservation attempts rejected at commit time.",
			ConstLabels: constLabels,
		}, []string{"reason"}),
		closureCacheLookups: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name:        "closure_cache_lookups_total",
			Help:        "Closure cache lookups by result.",
			ConstLabels: constLabels,
		}, []string{"result"}),
	}

	reg.MustRegister(
		m.httpRequestsTotal,
		m.httpRequestDuration,
		m.dbQueryDuration,
		m.dbOpenConns,
		m.dbInUseConns,
		m.dbIdleConns,
		m.dbWaitCountTotal,
		m.slotsGenerated,
		m.appointmentsCreated,
		m.slotConflicts,
		m.closureCacheLookups,
	)

	return m
}

// ObserveHTTPRequest фиксирует HTTP-запрос
func (m *Metrics) ObserveHTTPRequest(method, route string, status int, duration time.Duration) {
	if m == nil {
		return
	}
	m.httpRequestsTotal.WithLabelValues(method, route, strconv.Itoa(status)).Inc()
	m.httpRequestDuration.WithLabelValues(method, route).Observe(duration.Seconds())
}

// ObserveDBQuery фиксирует длительность запроса к БД
func (m *Metrics) ObserveDBQuery(operation string, err error, duration time.Duration) {
	if m == nil {
		return
	}
	status := "ok"
	if err != nil {
		status = "error"
	}
	m.dbQueryDuration.WithLabelValues(operation, status).Observe(duration.Seconds())
}

// SetDBPoolStats обновляет метрики пула соединений
func (m *Metrics) SetDBPoolStats(db string, open, inUse, idle int, waitCount int64) {
	if m == nil {
		return
	}
	m.dbOpenConns.WithLabelValues(db).Set(float64(open))
	m.dbInUseConns.WithLabelValues(db).Set(float64(inUse))
	m.dbIdleConns.WithLabelValues(db).Set(float64(idle))
	m.dbWaitCountTotal.WithLabelValues(db).Set(float64(waitCount))
}

// ObserveSlots фиксирует количество выданных слотов
func (m *Metrics) ObserveSlots(closureKind string, count int) {
	if m == nil {
		return
	}
	m.slotsGenerated.WithLabelValues(closureKind).Observe(float64(count))
}

// IncAppointmentCreated увеличивает счетчик созданных записей
func (m *Metrics) IncAppointmentCreated(status string) {
	if m == nil {
		return
	}
	m.appointmentsCreated.WithLabelValues(status).Inc()
}

// IncSlotConflict увеличивает счетчик отказов при фиксации записи
func (m *Metrics) IncSlotConflict(reason string) {
	if m == nil {
		return
	}
	m.slotConflicts.WithLabelValues(reason).Inc()
}

// IncClosureCache фиксирует попадание (hit) или промах (miss) кэша закрытий
func (m *Metrics) IncClosureCache(result string) {
	if m == nil {
		return
	}
	m.closureCacheLookups.WithLabelValues(result).Inc()
}
