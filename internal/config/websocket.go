package config

import (
	"campusride/pkg/websocket"
)

type WebSocketConfig struct {
	Path            string   `yaml:"path"`
	ReadBufferSize  int      `yaml:"read_buffer_size"`
	WriteBufferSize int      `yaml:"write_buffer_size"`
	AllowedOrigins  []string `yaml:"allowed_origins"`
}

func loadWebSocketConfig() *WebSocketConfig {
	return &WebSocketConfig{
		Path:            getEnv("WEBSOCKET_PATH", "/ws"),
		ReadBufferSize:  getEnvAsInt("WEBSOCKET_READ_BUFFER_SIZE", 1024),
		WriteBufferSize: getEnvAsInt("WEBSOCKET_WRITE_BUFFER_SIZE", 1024),
		AllowedOrigins:  getEnvAsSlice("WEBSOCKET_ALLOWED_ORIGINS", []string{"*"}),
	}
}

func (c *WebSocketConfig) HandlerConfig() websocket.HandlerConfig {
	return websocket.HandlerConfig{
		ReadBufferSize:  c.ReadBufferSize,
		WriteBufferSize: c.WriteBufferSize,
		AllowedOrigins:  c.AllowedOrigins,
	}
}
