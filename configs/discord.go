package configs

type Discord struct {
	Token                string `env:"DISCORD_SUGGESTIONS_BOT_TOKEN,notEmpty"`
	GuildID              string `env:"DISCORD_GUILD_ID,notEmpty"`
	SuggestionsChannelID string `env:"DISCORD_SUGGESTIONS_CHANNEL_ID,notEmpty"`
	CorrectionsChannelID string `env:"DISCORD_CORRECTIONS_CHANNEL_ID,notEmpty"`
	CommandsChannelID    string `env:"DISCORD_COMMANDS_CHANNEL_ID,notEmpty"`
	LogsChannelID        string `env:"DISCORD_LOGS_CHANNEL_ID"`
	GodfatherRoleID      string `env:"DISCORD_GODFATHER_ROLE_ID,notEmpty"`
	JokerRoleID          string `env:"DISCORD_JOKER_ROLE_ID"`
	CorrectorRoleID      string `env:"DISCORD_CORRECTOR_ROLE_ID"`
	UpEmoji              string `env:"DISCORD_UP_EMOJI" envDefault:"👍"`
	DownEmoji            string `env:"DISCORD_DOWN_EMOJI" envDefault:"👎"`
}
