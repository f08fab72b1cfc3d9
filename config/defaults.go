package config

// Default directories and file paths for flowgraph.
const (
	// DefaultConfigDir is the base directory for storing flowgraph artifacts.
	DefaultConfigDir = ".flowgraph"
	// DefaultConfigPath is the default config file location.
	DefaultConfigPath = DefaultConfigDir + "/flowgraph.json"
	// DefaultLocalRegistryPath is the default path for the local step registry file.
	DefaultLocalRegistryPath = DefaultConfigDir + "/steps.json"
	// DefaultSQLiteDSN is the default data source name for SQLite storage.
	DefaultSQLiteDSN = DefaultConfigDir + "/pipelines.db"
	// DefaultPipelinesDir is the default directory for pipeline YAMLs.
	DefaultPipelinesDir = "pipelines"
)
