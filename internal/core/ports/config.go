package ports

// EngineOptions holds the runtime options for one schedule+execute cycle,
// configurable by the caller. It never carries task-graph definitions —
// authoring graphs is an external collaborator, out of scope for this
// module.
type EngineOptions struct {
	WorkerCount       int
	PerReadTimeoutMS  int64 // 0 means unbounded
	CollectionTimeout int64 // milliseconds; 0 means use the 60s default
	Costs             bool
	Inflate           bool
}

// ConfigLoader loads EngineOptions from a configuration file.
//
//go:generate go run go.uber.org/mock/mockgen -source=config.go -destination=mocks/mock_config.go -package=mocks
type ConfigLoader interface {
	Load(path string) (EngineOptions, error)
}
