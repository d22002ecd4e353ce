package metrics

import (
	"errors"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestMetrics_Counters(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := NewWithRegisterer(reg, "barbershop")

	m.IncAppointmentCreated("confirmed")
	m.IncAppointmentCreated("confirmed")
	m.IncSlotConflict("overlap")
	m.IncClosureCache("hit")
	m.ObserveHTTPRequest("GET", "/api/v1/business-hours", 200, 10*time.Millisecond)
	m.ObserveDBQuery("query", errors.New("boom"), time.Millisecond)
	m.SetDBPoolStats("postgres", 4, 1, 3, 0)
	m.ObserveSlots("none", 16)

	assert.Equal(t, 2.0, testutil.ToFloat64(m.appointmentsCreated.WithLabelValues("confirmed")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.slotConflicts.WithLabelValues("overlap")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.closureCacheLookups.WithLabelValues("hit")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.httpRequestsTotal.WithLabelValues("GET", "/api/v1/business-hours", "200")))
	assert.Equal(t, 4.0, testutil.ToFloat64(m.dbOpenConns.WithLabelValues("postgres")))
}

func TestMetrics_NilSafe(t *testing.T) {
	var m *Metrics

	assert.NotPanics(t, func() {
		m.IncAppointmentCreated("confirmed")
		m.IncSlotConflict("overlap")
		m.IncClosureCache("miss")
		m.ObserveSlots("full_day", 0)
		m.ObserveHTTPRequest("GET", "/", 200, time.Millisecond)
		m.ObserveDBQuery("exec", nil, time.Millisecond)
		m.SetDBPoolStats("postgres", 0, 0, 0, 0)
	})
}
