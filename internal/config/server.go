package config

import "strconv"

type ServerConfig struct {
	Port        int
	ServiceName string
}

func NewServerConfig() *ServerConfig {
	port, err := strconv.Atoi(getEnv("PORT", "4000"))
	if err != nil {
		port = 4000
	}
	return &ServerConfig{
		Port:        port,
		ServiceName: getEnv("SERVICE_NAME", "classroom"),
	}
}
