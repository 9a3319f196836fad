package config

import (
	"fmt"
	"strconv"
	"strings"
)

// NetworkAddress адрес HTTP сервера в формате host:port
type NetworkAddress struct {
	Host string
	Port int
}

func (a NetworkAddress) String() string {
	return a.Host + ":" + strconv.Itoa(a.Port)
}

func (a *NetworkAddress) Set(value string) error {
	parts := strings.Split(value, ":")

	if len(parts) != 2 {
		return fmt.Errorf("invalid network address format: %s", value)
	}

	port, err := strconv.Atoi(parts[1])
	if err != nil {
		return fmt.Errorf("invalid port: %w", err)
	}
	if port < 0 || port > 65535 {
		return fmt.Errorf("port out of range: %d", port)
	}

	a.Host = parts[0]
	a.Port = port

	return nil
}

func (a *NetworkAddress) UnmarshalText(text []byte) error {
	return a.Set(string(text))
}
