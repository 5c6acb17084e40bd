package model

const (
	EnvironmentDevelopment = "development"
	EnvironmentStaging     = "staging"
	EnvironmentProduction  = "production"
)

// IsProduction reports whether name is the production environment.
func IsProduction(name string) bool {
	return name == EnvironmentProduction
}
