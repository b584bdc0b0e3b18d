package types

// Version is set via -ldflags at build time
var Version = "dev"

// ServiceName is the name reported by health checks and log records
const ServiceName = "renoscope"
