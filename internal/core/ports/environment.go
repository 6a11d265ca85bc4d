package ports

// Environment gives read access to environment variables.
type Environment interface {
	LookupEnv(key string) (string, bool)
}
