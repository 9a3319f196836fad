package config

import "fmt"

// Environment режим развертывания приложения
type Environment string

const (
	EnvDevelopment Environment = "development"
	EnvProduction  Environment = "production"
	EnvTest        Environment = "test"
)

func (e Environment) String() string {
	return string(e)
}

func (e *Environment) Set(value string) error {
	switch Environment(value) {
	case EnvDevelopment, EnvProduction, EnvTest:
		*e = Environment(value)
		return nil
	default:
		return fmt.Errorf("invalid environment: %q", value)
	}
}

func (e *Environment) UnmarshalText(text []byte) error {
	return e.Set(string(text))
}
