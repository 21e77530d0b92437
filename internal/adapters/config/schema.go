package config

// File represents the on-disk shape of a worker configuration file: worker
// count, timeouts, and the costs/inflate output toggles. It never carries
// task-graph definitions — authoring the graph of Tasks and Dependencies is
// the caller's job, done in Go, not YAML.
type File struct {
	WorkerCount       int   `yaml:"worker_count"`
	PerReadTimeoutMS  int64 `yaml:"per_read_timeout_ms"`
	CollectionTimeout int64 `yaml:"collection_timeout_ms"`
	Costs             bool  `yaml:"costs"`
	Inflate           bool  `yaml:"inflate"`
}
