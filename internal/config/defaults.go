package config

// Default values.
const (
	DefaultSQLitePath  = "faqschema.db"
	DefaultFAQPriority = 100
	DefaultServerAddr  = ":8080"
	DefaultLogMode     = "development"
)

// Default returns the configuration used when no file is given.
func Default() Config {
	return Config{
		Fields: Fields{
			Backend:    BackendMemory,
			SQLitePath: DefaultSQLitePath,
		},
		Log:    Log{Mode: DefaultLogMode},
		FAQ:    FAQ{Priority: DefaultFAQPriority},
		Server: Server{Addr: DefaultServerAddr, Prefix: "/"},
	}
}
