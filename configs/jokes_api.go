package configs

type JokesAPI struct {
	URL   string `env:"JOKES_API_URL,notEmpty"`
	Token string `env:"JOKES_API_TOKEN"`
}
