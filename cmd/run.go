package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/saanvi-kanodia/internship-chatbot/internal/ai"
	"github.com/saanvi-kanodia/internship-chatbot/internal/ai/gemini"
	"github.com/saanvi-kanodia/internship-chatbot/internal/ai/openai"
	"github.com/saanvi-kanodia/internship-chatbot/internal/bot"
	"github.com/saanvi-kanodia/internship-chatbot/internal/catalog"
	"github.com/saanvi-kanodia/internship-chatbot/internal/extract"
	"github.com/saanvi-kanodia/internship-chatbot/internal/logger"
	"github.com/saanvi-kanodia/internship-chatbot/internal/profile"
	"github.com/saanvi-kanodia/internship-chatbot/internal/secrets"
	"github.com/saanvi-kanodia/internship-chatbot/internal/ui"

	"github.com/manifoldco/promptui"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"
)

const helpText = `
Available Commands:
• help - Show this help message
• reload - Reload internship data from the catalog
• profile - Show current user profile
• set profile - Set user profile interactively
• parse resume <path> - Parse a resume and merge it into the profile
• recommend - Rank the catalog against your profile
• quit/exit/q - Exit the bot

Example Queries:
• "Show me internships in Bangalore with stipend"
• "List AI/ML internships that are remote"
• "Find Python internships for undergraduates"
• "Show me Google internships"
`

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Run the interactive internship chat",
	Run: func(cmd *cobra.Command, _ []string) {
		run(cmd)
	},
}

func init() {
	rootCmd.AddCommand(runCmd)

	runCmd.Flags().StringP("query", "q", "", "single query to process (non-interactive mode)")
	runCmd.Flags().StringP("resume", "r", "", "path to a resume to parse at startup")
	runCmd.Flags().String("catalog", "", "path to the internships catalog CSV")

	viper.BindPFlag("catalog", runCmd.Flags().Lookup("catalog"))
}

// run is the main command for the cli.
func run(cmd *cobra.Command) {
	ctx := context.Background()

	logger, err := logger.New(viper.GetBool("json"), viper.GetBool("debug"))
	if err != nil {
		log.Fatalf("creating a logger: %s", err)
	}

	config, err := getConfig()
	if err != nil {
		logger.Fatal("getting a config", zap.Error(err))
	}

	logger.Info("starting the internship-chatbot", zap.String("version", version))

	// do not bother error since there is a valid parseable config
	pretty, _ := json.MarshalIndent(config, "", "  ")
	logger.Debug(fmt.Sprintf("starting with config: \n %s", pretty))

	singleQuery := cmd.Flag("query").Value.String()

	store := catalog.NewStore(config.Catalog, logger)
	if err := store.Load(); err != nil {
		logger.Fatal("loading catalog", zap.Error(err))
	}

	if store.Len() == 0 {
		logger.Fatal("no internship data found",
			zap.String("catalog", config.Catalog),
			zap.String("hint", "run the ingest command first to collect internships"),
		)
	}

	limit := 0
	if config.Search != nil {
		limit = config.Search.Limit
	}

	b := bot.New(store, limit, logger)

	if resumePath := cmd.Flag("resume").Value.String(); resumePath != "" {
		parseResume(b, resumePath, logger)
	}

	assistant := prepareAssistant(ctx, b, config.AI, logger)
	if assistant != nil {
		defer assistant.Close()
	}

	if singleQuery != "" {
		fmt.Println(answer(ctx, b, assistant, singleQuery))
		return
	}

	ui.PrintBanner(false)
	ui.PrintCatalogSummary(store.Snapshot())

	interact(ctx, b, assistant, logger)
}

// answer routes a query through the assistant when AI is enabled, otherwise
// through the rule-based pipeline.
func answer(ctx context.Context, b *bot.Bot, assistant *ai.Assistant, query string) string {
	if assistant != nil {
		return assistant.Answer(ctx, query)
	}
	return b.ProcessQuery(query)
}

func interact(ctx context.Context, b *bot.Bot, assistant *ai.Assistant, logger *zap.Logger) {
	input := promptui.Prompt{Label: "You"}

	for {
		query, err := input.Run()
		if err != nil {
			logger.Info("exiting", zap.Error(err))
			return
		}

		query = strings.TrimSpace(query)

		switch {
		case query == "":
			continue
		case query == "quit" || query == "exit" || query == "q":
			fmt.Println("Goodbye!")
			return
		case query == "help":
			fmt.Print(helpText)
		case query == "reload":
			if err := b.Reload(); err != nil {
				logger.Warn("reloading catalog", zap.Error(err))
				continue
			}
			fmt.Println("Data reloaded successfully!")
		case query == "profile":
			ui.PrintProfile(b.Profile())
		case query == "set profile":
			setProfileInteractive(b)
		case strings.HasPrefix(query, "parse resume"):
			path := strings.TrimSpace(strings.TrimPrefix(query, "parse resume"))
			if path == "" {
				fmt.Println("Usage: parse resume <path>")
				continue
			}
			parseResume(b, path, logger)
		case query == "recommend":
			fmt.Printf("\nBot: %s\n", recommend(ctx, b, assistant))
		default:
			fmt.Printf("\nBot: %s\n", answer(ctx, b, assistant, query))
		}
	}
}

func recommend(ctx context.Context, b *bot.Bot, assistant *ai.Assistant) string {
	if assistant != nil {
		return assistant.Recommend(ctx, nil, "")
	}
	return bot.FormatRecommendations(b.Recommend(nil, 0))
}

func parseResume(b *bot.Bot, path string, logger *zap.Logger) {
	extractor := profile.NewExtractor(logger)

	fragment, err := extractor.ParseFile(path, extract.PlainText{})
	if err != nil {
		logger.Warn("parsing resume", zap.Error(err))
		fmt.Println("Could not parse resume")
		return
	}

	b.Profile().Merge(fragment)
	fmt.Printf("Resume parsed: %d skills and %d interests found\n",
		len(fragment.Skills), len(fragment.Interests))
}

func setProfileInteractive(b *bot.Bot) {
	fragment := &profile.Profile{}

	skills := promptString("Skills (comma-separated)")
	if skills != "" {
		fragment.Skills = catalog.SplitList(skills)
	}

	if education := promptSelect("Education level", []string{"UG", "PG", "PhD", "skip"}); education != "skip" {
		fragment.EducationLevel = education
	}

	fragment.PreferredLocation = promptString("Preferred location")

	if mode := promptSelect("Preferred work mode", []string{"Remote", "Onsite", "Hybrid", "skip"}); mode != "skip" {
		fragment.PreferredMode = mode
	}

	fragment.StipendExpectation = promptString("Stipend expectation (e.g., 5000, 10000+)")

	interests := promptString("Interests (comma-separated)")
	if interests != "" {
		fragment.Interests = catalog.SplitList(interests)
	}

	b.Profile().Merge(fragment)
	fmt.Println("Profile updated successfully!")
}

func promptString(label string) string {
	value, err := (&promptui.Prompt{Label: label}).Run()
	if err != nil {
		return ""
	}
	return strings.TrimSpace(value)
}

func promptSelect(label string, items []string) string {
	_, value, err := (&promptui.Select{Label: label, Items: items}).Run()
	if err != nil {
		return "skip"
	}
	return value
}

// prepareAssistant builds the AI assistant when augmentation is enabled and a
// provider can be configured; any failure degrades to the rule-based bot.
func prepareAssistant(ctx context.Context, b *bot.Bot, cfg *AIConfig, logger *zap.Logger) *ai.Assistant {
	if cfg == nil || !cfg.Enabled {
		logger.Info("AI augmentation disabled; using rule-based responses")
		return nil
	}

	generator, err := newGenerator(ctx, cfg, logger)
	if err != nil {
		logger.Warn("AI augmentation unavailable; using rule-based responses", zap.Error(err))
		return nil
	}

	timeout := time.Duration(cfg.Timeout) * time.Second

	assistant, err := ai.NewAssistant(b, generator, timeout, logger)
	if err != nil {
		logger.Warn("building assistant failed; using rule-based responses", zap.Error(err))
		return nil
	}

	logger.Info("AI augmentation enabled", zap.String("model", generator.Model()))
	return assistant
}

func newGenerator(ctx context.Context, cfg *AIConfig, logger *zap.Logger) (ai.Generator, error) {
	provider := strings.TrimSpace(strings.ToLower(cfg.Provider))

	switch provider {
	case "", "gemini":
		gcfg := cfg.Gemini
		if gcfg == nil {
			gcfg = &GeminiConfig{}
		}

		apiKey, err := secrets.Load(secrets.Source{
			Name:  "gemini api key",
			Value: gcfg.APIKey,
			File:  gcfg.APIKeyFile,
			Env:   "GEMINI_API_KEY",
		})
		if err != nil {
			return nil, fmt.Errorf("%w (set ai.gemini.api-key, ai.gemini.api-key-file or GEMINI_API_KEY)", err)
		}

		return gemini.New(ctx, apiKey, gcfg.Model, logger)
	case "openai":
		ocfg := cfg.OpenAI
		if ocfg == nil {
			ocfg = &OpenAIConfig{}
		}

		return openai.New(ocfg.BaseURL, ocfg.Token, ocfg.Model, logger)
	default:
		return nil, fmt.Errorf("unsupported ai provider: %s", cfg.Provider)
	}
}
