package server

import "time"

// Log messages for server lifecycle and request handling
const (
	LogMsgServerStarting   = "Server starting"
	LogMsgServerStopped    = "Server stopped"
	LogMsgRequestStarted   = "Request started"
	LogMsgRequestCompleted = "Request completed"
)

// HTTP header names
const (
	HeaderContentType    = "X-Content-Type-Options"
	HeaderFrameOptions   = "X-Frame-Options"
	HeaderReferrerPolicy = "Referrer-Policy"
)

// Security header values
const (
	HeaderValueNoSniff              = "nosniff"
	HeaderValueSameOrigin           = "SAMEORIGIN"
	HeaderValueReferrerStrictOrigin = "strict-origin-when-cross-origin"
)

// Routes
const (
	RouteHealthz     = "/healthz"
	RouteReadyz      = "/readyz"
	RouteVersion     = "/version"
	RouteMetrics     = "/metrics"
	RouteSwagger     = "/swagger/*"
	RouteAPI         = "/api/v1"
	RouteCrops       = "/crops"
	RouteSlots       = "/slots"
	RouteStoredCrops = "/slots/{slot}/crops"
	RouteEvents      = "/events"
)

// ReadHeaderTimeout bounds how long a client may take to send request headers
const ReadHeaderTimeout = 5 * time.Second

// quietPaths are served without request logging
var quietPaths = []string{RouteHealthz, RouteReadyz, RouteMetrics, "/swagger/"}
