package constants

// Configuration Files
const (
	ConfigFileName     = "flowgraph.json"
	PipelineSchemaFile = "pipeline.schema.json"
	RegistryIndexFile  = "registry/steps.json"
)

// Environment Variables
const (
	EnvDebug        = "FLOWGRAPH_DEBUG"
	EnvRegistryPath = "FLOWGRAPH_REGISTRY"
	EnvStorageDSN   = "FLOWGRAPH_DSN"
)

// Storage Drivers
const (
	StorageDriverMemory   = "memory"
	StorageDriverSQLite   = "sqlite"
	StorageDriverPostgres = "postgres"
)

// Event Bus Drivers
const (
	EventDriverMemory = "memory"
	EventDriverNATS   = "nats"
)

// Notification Topics
const (
	TopicPipelineValidate = "pipeline.validate"
	TopicPipelineExecute  = "pipeline.execute"
	TopicPipelineSaved    = "pipeline.saved"
)

// Registry Sources
const (
	RegistrySourceBuiltin = "builtin"
	RegistrySourceLocal   = "local"
)

// Formatting
const (
	JSONIndent = "  "
)
