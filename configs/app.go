package configs

type App struct {
	Environment string `env:"ENVIRONMENT,notEmpty"`

	NeededSuggestionsApprovals    int `env:"NEEDED_SUGGESTIONS_APPROVALS" envDefault:"3"`
	NeededCorrectionsApprovals    int `env:"NEEDED_CORRECTIONS_APPROVALS" envDefault:"2"`
	NeededSuggestionsDisapprovals int `env:"NEEDED_SUGGESTIONS_DISAPPROVALS" envDefault:"3"`
	NeededCorrectionsDisapprovals int `env:"NEEDED_CORRECTIONS_DISAPPROVALS" envDefault:"2"`

	MaxJokePartLength         int     `env:"MAX_JOKE_PART_LENGTH" envDefault:"130"`
	DuplicateScoreThreshold   float64 `env:"DUPLICATE_SCORE_THRESHOLD" envDefault:"0.8"`
	SimilarScoreThreshold     float64 `env:"SIMILAR_SCORE_THRESHOLD" envDefault:"0.6"`
	SubmissionCooldownSeconds int     `env:"SUBMISSION_COOLDOWN_SECONDS" envDefault:"30"`
	ConfirmTimeoutSeconds     int     `env:"CONFIRM_TIMEOUT_SECONDS" envDefault:"60"`
}

func (c App) IsDevEnvironment() bool {
	return c.Environment == "dev"
}
