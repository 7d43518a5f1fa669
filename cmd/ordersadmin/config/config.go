package config

import (
	"flag"
	"os"
	"strconv"
	"time"

	"github.com/Shajeel/bnw-orders-admin/internal/ordersadmin"
	"github.com/Shajeel/bnw-orders-admin/internal/ordersadmin/backendapi"
	"github.com/Shajeel/bnw-orders-admin/internal/ordersadmin/whatsapp"
)

const (
	serverAddressFlag      = "a"
	serverAddressEnv       = "RUN_ADDRESS"
	serverAddressDefault   = "localhost:8080"
	backendAddressFlag     = "b"
	backendAddressEnv      = "BACKEND_API_ADDRESS"
	backendAddressDefault  = "http://localhost:3000/api"
	whatsappAddressFlag    = "w"
	whatsappAddressEnv     = "WHATSAPP_GATEWAY_ADDRESS"
	whatsappAddressDefault = "https://app.thewhatbot.com"
	flowIDFlag             = "f"
	flowIDEnv              = "CONFIRMATION_FLOW_ID"
	flowIDDefault          = 0
	backendTokenEnv        = "BACKEND_API_TOKEN"
	jwtSecretEnv           = "JWT_SECRET"
)

type Config struct {
	Server          ordersadmin.Config
	JWTConfig       JWTConfig
	Backend         backendapi.Config
	BackendToken    string
	WhatsApp        whatsapp.Config
	ProbeDelays     []time.Duration
	ShutdownTimeout time.Duration
}

type JWTConfig struct {
	Algorithm      string
	Secret         string
	ExpirationTime time.Duration
}

func Load() (*Config, error) {
	serverAddress := flag.String(
		serverAddressFlag,
		serverAddressDefault,
		"Server address host:port",
	)

	backendAddress := flag.String(
		backendAddressFlag,
		backendAddressDefault,
		"Upstream orders API base URL",
	)

	whatsappAddress := flag.String(
		whatsappAddressFlag,
		whatsappAddressDefault,
		"WhatsApp gateway base URL",
	)

	flowID := flag.Int(
		flowIDFlag,
		flowIDDefault,
		"Default confirmation flow id",
	)

	flag.Parse()

	if valStr, ok := os.LookupEnv(serverAddressEnv); ok {
		*serverAddress = valStr
	}

	if valStr, ok := os.LookupEnv(backendAddressEnv); ok {
		*backendAddress = valStr
	}

	if valStr, ok := os.LookupEnv(whatsappAddressEnv); ok {
		*whatsappAddress = valStr
	}

	if valStr, ok := os.LookupEnv(flowIDEnv); ok {
		if val, err := strconv.Atoi(valStr); err == nil {
			*flowID = val
		}
	}

	jwtSecret := "secret"
	if valStr, ok := os.LookupEnv(jwtSecretEnv); ok {
		jwtSecret = valStr
	}

	return &Config{
		Server: ordersadmin.Config{
			ServerAddress:   *serverAddress,
			ShutdownTimeout: time.Second * 5,
			DefaultFlowID:   *flowID,
		},
		JWTConfig: JWTConfig{
			Algorithm:      "HS256",
			Secret:         jwtSecret,
			ExpirationTime: time.Hour,
		},
		Backend: backendapi.Config{
			BaseURL: *backendAddress,
			Timeout: time.Second * 30,
		},
		BackendToken: os.Getenv(backendTokenEnv),
		WhatsApp: whatsapp.Config{
			BaseURL: *whatsappAddress,
			Timeout: time.Second * 30,
		},
		ProbeDelays: []time.Duration{
			time.Second,
			time.Second * 3,
			time.Second * 5,
		},
		ShutdownTimeout: time.Second * 5,
	}, nil
}
