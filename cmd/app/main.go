package main

import (
	"fmt"
	"log/slog"
	"os"

	"bladeshop/cmd"
	bothttp "bladeshop/internal/adapters/in/http"
	"bladeshop/internal/adapters/out/postgres/orderrepo"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/labstack/gommon/log"
	gormpostgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func main() {
	configs := getConfigs()
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))

	gormDB, err := gorm.Open(gormpostgres.Open(configs.PostgresDSN()), &gorm.Config{})
	if err != nil {
		log.Fatalf("Error connecting to database: %v", err)
	}

	if err := gormDB.AutoMigrate(&orderrepo.OrderDTO{}); err != nil {
		log.Fatalf("Error migrating database: %v", err)
	}

	bot, err := tgbotapi.NewBotAPI(configs.BotToken)
	if err != nil {
		log.Fatalf("Error creating bot client: %v", err)
	}

	registerWebhook(bot, configs.WebhookURL)

	app := cmd.NewCompositionRoot(configs, gormDB, bot, logger)

	jobManager := app.CreateJobManager()
	if err := jobManager.StartAll(); err != nil {
		log.Fatalf("Error starting jobs: %v", err)
	}
	defer jobManager.StopAll()

	server := bothttp.NewServer(app.CreateDispatcher(bot))
	startWebServer(server, configs.HTTPPort)
}

func getConfigs() cmd.Config {
	adminIDs, err := cmd.ParseIDList(goDotEnvVariable("ADMIN_IDS"))
	if err != nil {
		log.Fatalf("Error parsing ADMIN_IDS: %v", err)
	}

	operatorIDs, err := cmd.ParseIDList(goDotEnvVariable("OPERATOR_IDS"))
	if err != nil {
		log.Fatalf("Error parsing OPERATOR_IDS: %v", err)
	}

	sessionTTL, err := cmd.ParseSessionTTL(goDotEnvVariable("SESSION_TTL_MINUTES"))
	if err != nil {
		log.Fatalf("Error parsing SESSION_TTL_MINUTES: %v", err)
	}

	return cmd.Config{
		BotToken:    goDotEnvVariable("BOT_TOKEN"),
		WebhookURL:  goDotEnvVariable("WEBHOOK_URL"),
		HTTPPort:    goDotEnvVariable("HTTP_PORT"),
		DBHost:      goDotEnvVariable("DB_HOST"),
		DBPort:      goDotEnvVariable("DB_PORT"),
		DBUser:      goDotEnvVariable("DB_USER"),
		DBPassword:  goDotEnvVariable("DB_PASSWORD"),
		DBName:      goDotEnvVariable("DB_NAME"),
		DBSslMode:   goDotEnvVariable("DB_SSLMODE"),
		AdminIDs:    adminIDs,
		OperatorIDs: operatorIDs,
		SessionTTL:  sessionTTL,
	}
}

func goDotEnvVariable(key string) string {
	err := godotenv.Load(".env")
	if err != nil {
		log.Fatalf("Error loading .env file")
	}
	return os.Getenv(key)
}

func registerWebhook(bot *tgbotapi.BotAPI, baseURL string) {
	webhook, err := tgbotapi.NewWebhook(baseURL + "/webhook")
	if err != nil {
		log.Fatalf("Error building webhook config: %v", err)
	}

	if _, err := bot.Request(webhook); err != nil {
		log.Fatalf("Error registering webhook: %v", err)
	}
}

func startWebServer(server *bothttp.Server, port string) {
	e := echo.New()
	server.Register(e)

	e.Logger.Fatal(e.Start(fmt.Sprintf("0.0.0.0:%s", port)))
}
