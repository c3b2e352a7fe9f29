package metrics

// ============================================================================
// Metric Names
// ============================================================================

// HTTP metric names
const (
	MetricNameHTTPRequestsTotal    = "http_requests_total"
	MetricNameHTTPRequestDuration  = "http_request_duration_seconds"
	MetricNameHTTPRequestsInFlight = "http_requests_in_flight"
)

// Crop saver metric names
const (
	MetricNameCropEvents          = "cropsaver_crop_events_total"
	MetricNameDayPasses           = "cropsaver_day_passes_total"
	MetricNameDayPassDuration     = "cropsaver_day_pass_duration_seconds"
	MetricNameTrackedCrops        = "cropsaver_tracked_crops"
	MetricNamePlotErrors          = "cropsaver_plot_errors_total"
	MetricNamePersistenceOps      = "cropsaver_persistence_operations_total"
	MetricNameMetadataCacheLookup = "cropsaver_metadata_cache_lookups_total"
	MetricNameJournalCleanups     = "cropsaver_journal_cleanups_total"
	MetricNameCropEventsPruned    = "cropsaver_crop_events_pruned_total"
)

// Simulated host metric names
const (
	MetricNameSimulatedDays  = "farm_simulated_days_total"
	MetricNameCropsHarvested = "farm_crops_harvested_total"
	MetricNameFarmCrops      = "farm_crops"
)

// ============================================================================
// Metric Help Text
// ============================================================================

// HTTP metric help text
const (
	HelpTextHTTPRequestsTotal    = "Total number of HTTP requests"
	HelpTextHTTPRequestDuration  = "HTTP request latency in seconds"
	HelpTextHTTPRequestsInFlight = "Current number of HTTP requests being served"
)

// Crop saver metric help text
const (
	HelpTextCropEvents          = "Total number of crop events by type (tracked, killed, released)"
	HelpTextDayPasses           = "Total number of day-boundary reconciliation passes"
	HelpTextDayPassDuration     = "Duration of day-boundary reconciliation passes in seconds"
	HelpTextTrackedCrops        = "Current number of tracked crop records"
	HelpTextPlotErrors          = "Total number of plots whose processing failed during a pass"
	HelpTextPersistenceOps      = "Total number of crop data load/save operations by result"
	HelpTextMetadataCacheLookup = "Total number of crop metadata cache lookups by result"
	HelpTextJournalCleanups     = "Total number of crop event journal cleanup runs by result"
	HelpTextCropEventsPruned    = "Total number of crop events removed by journal cleanup"
)

// Simulated host metric help text
const (
	HelpTextSimulatedDays  = "Total number of days the simulated host has run"
	HelpTextCropsHarvested = "Total number of crops picked by the simulated player"
	HelpTextFarmCrops      = "Current number of crops in the simulated world by state"
)

// ============================================================================
// Label Names
// ============================================================================

const (
	LabelMethod    = "method"
	LabelPath      = "path"
	LabelStatus    = "status"
	LabelType      = "type"
	LabelPhase     = "phase"
	LabelOperation = "operation"
	LabelResult    = "result"
	LabelState     = "state"
)

// ============================================================================
// Label Values
// ============================================================================

const (
	PhaseDayStart = "day_start"
	PhaseDayEnd   = "day_end"

	OperationLoad = "load"
	OperationSave = "save"

	ResultOK        = "ok"
	ResultEmpty     = "empty"
	ResultRecovered = "recovered"
	ResultFailed    = "failed"
	ResultHit       = "hit"
	ResultMiss      = "miss"

	StateAll         = "all"
	StateDead        = "dead"
	StateHarvestable = "harvestable"
)

// ============================================================================
// Buckets
// ============================================================================

var (
	HTTPLatencyBuckets    = []float64{.005, .01, .025, .05, .1, .25, .5, 1}
	DayPassLatencyBuckets = []float64{.0005, .001, .005, .01, .05, .1, .5, 1}
)
