package cmd

import (
	"errors"
	"log"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

const (
	app = "internship-chatbot"
)

type Config struct {
	Catalog string        `mapstructure:"catalog"`
	Search  *SearchConfig `mapstructure:"search"`
	AI      *AIConfig     `mapstructure:"ai"`
	Ingest  *IngestConfig `mapstructure:"ingest"`
}

type SearchConfig struct {
	Limit int `mapstructure:"limit"`
}

type AIConfig struct {
	Enabled  bool          `mapstructure:"enabled"`
	Provider string        `mapstructure:"provider"`
	Timeout  int           `mapstructure:"timeout"`
	Gemini   *GeminiConfig `mapstructure:"gemini"`
	OpenAI   *OpenAIConfig `mapstructure:"openai"`
}

type GeminiConfig struct {
	APIKey     string `mapstructure:"api-key"`
	APIKeyFile string `mapstructure:"api-key-file"`
	Model      string `mapstructure:"model"`
}

type OpenAIConfig struct {
	BaseURL string `mapstructure:"base-url"`
	Token   string `mapstructure:"token"`
	Model   string `mapstructure:"model"`
}

type IngestConfig struct {
	Output  string          `mapstructure:"output"`
	Every   string          `mapstructure:"every"`
	Sources []*SourceConfig `mapstructure:"sources"`
}

type SourceConfig struct {
	Name             string `mapstructure:"name"`
	Kind             string `mapstructure:"kind"`
	Path             string `mapstructure:"path"`
	URL              string `mapstructure:"url"`
	ItemSelector     string `mapstructure:"item-selector"`
	TitleSelector    string `mapstructure:"title-selector"`
	OrgSelector      string `mapstructure:"org-selector"`
	LocationSelector string `mapstructure:"location-selector"`
	LinkSelector     string `mapstructure:"link-selector"`
}

var (
	// Used for flags.
	cfgFile string

	rootCmd = &cobra.Command{
		Use:   app,
		Short: "internship-chatbot answers free-text queries against a catalog of internship postings",
	}
)

// Execute executes the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	// Local .env files carry API keys in development; absence is fine.
	_ = godotenv.Load()

	if err := viper.BindEnv("ai.gemini.api-key", "GEMINI_API_KEY"); err != nil {
		log.Fatalf("binding GEMINI_API_KEY environment variable: %v", err)
	}
	if err := viper.BindEnv("ai.openai.token", "OPENAI_API_KEY"); err != nil {
		log.Fatalf("binding OPENAI_API_KEY environment variable: %v", err)
	}

	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "a config file (default is internship-chatbot.yaml in current directory)")
	rootCmd.PersistentFlags().BoolP("debug", "d", false, "verbose/debug output")
	rootCmd.PersistentFlags().BoolP("json", "j", false, "json format for logging")

	viper.BindPFlag("debug", rootCmd.PersistentFlags().Lookup("debug"))
	viper.BindPFlag("json", rootCmd.PersistentFlags().Lookup("json"))
}

func initConfig() {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)

		// An explicitly requested config file must parse.
		if err := viper.ReadInConfig(); err != nil {
			log.Fatal(err)
		}
		return
	}

	viper.AddConfigPath(".")
	viper.SetConfigName(app + ".yaml")

	// The bot works without a config file; only a broken one is fatal.
	if err := viper.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			log.Fatal(err)
		}
	}
}

func getConfig() (*Config, error) {
	var config *Config
	if err := viper.Unmarshal(&config); err != nil {
		return nil, err
	}

	if config == nil {
		config = &Config{}
	}
	if config.Catalog == "" {
		config.Catalog = "data/internships.csv"
	}

	return config, nil
}
