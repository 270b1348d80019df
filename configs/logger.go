package configs

type Logger struct {
	AppName string `env:"LOGGER_APP_NAME" envDefault:"suggestions-bot"`
	URL     string `env:"LOGGER_LOKI_URL"`
}
