package main

import (
	"time"

	"github.com/dmitrymomot/toastkit/pkg/httpserver"
	"github.com/dmitrymomot/toastkit/pkg/toast"
)

type Config struct {
	AppEnv  string `env:"APP_ENV" envDefault:"development"`
	AppName string `env:"APP_NAME" envDefault:"toastdemo"`

	HTTP  httpserver.Config
	Toast ToastConfig
}

type ToastConfig struct {
	DefaultDuration time.Duration  `env:"TOAST_DEFAULT_DURATION" envDefault:"5s"` // 0 keeps alerts until dismissed
	ConfirmLabel    string         `env:"TOAST_CONFIRM_LABEL" envDefault:"Confirm"`
	CancelLabel     string         `env:"TOAST_CANCEL_LABEL" envDefault:"Cancel"`
	Position        toast.Position `env:"TOAST_POSITION" envDefault:"top-right"`
}
