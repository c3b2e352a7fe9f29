package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// HTTP Metrics
var (
	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameHTTPRequestsTotal,
			Help: HelpTextHTTPRequestsTotal,
		},
		[]string{LabelMethod, LabelPath, LabelStatus},
	)

	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    MetricNameHTTPRequestDuration,
			Help:    HelpTextHTTPRequestDuration,
			Buckets: HTTPLatencyBuckets,
		},
		[]string{LabelMethod, LabelPath},
	)

	HTTPRequestsInFlight = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: MetricNameHTTPRequestsInFlight,
			Help: HelpTextHTTPRequestsInFlight,
		},
	)
)

// Crop Saver Metrics
var (
	CropEvents = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameCropEvents,
			Help: HelpTextCropEvents,
		},
		[]string{LabelType},
	)

	DayPasses = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameDayPasses,
			Help: HelpTextDayPasses,
		},
		[]string{LabelPhase},
	)

	DayPassDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    MetricNameDayPassDuration,
			Help:    HelpTextDayPassDuration,
			Buckets: DayPassLatencyBuckets,
		},
		[]string{LabelPhase},
	)

	TrackedCrops = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: MetricNameTrackedCrops,
			Help: HelpTextTrackedCrops,
		},
	)

	PlotErrors = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNamePlotErrors,
			Help: HelpTextPlotErrors,
		},
		[]string{LabelPhase},
	)

	PersistenceOperations = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNamePersistenceOps,
			Help: HelpTextPersistenceOps,
		},
		[]string{LabelOperation, LabelResult},
	)

	JournalCleanups = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameJournalCleanups,
			Help: HelpTextJournalCleanups,
		},
		[]string{LabelResult},
	)

	CropEventsPruned = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameCropEventsPruned,
			Help: HelpTextCropEventsPruned,
		},
	)

	MetadataCacheLookups = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameMetadataCacheLookup,
			Help: HelpTextMetadataCacheLookup,
		},
		[]string{LabelResult},
	)
)

// Simulated Host Metrics
var (
	SimulatedDays = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameSimulatedDays,
			Help: HelpTextSimulatedDays,
		},
	)

	CropsHarvested = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameCropsHarvested,
			Help: HelpTextCropsHarvested,
		},
	)

	FarmCrops = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: MetricNameFarmCrops,
			Help: HelpTextFarmCrops,
		},
		[]string{LabelState},
	)
)
