package main

import (
	"context"
	"errors"
	"fmt"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/ironwater12/japanese-learning-app/internal/delivery/telegram"
)

var botDebug bool

var botCmd = &cobra.Command{
	Use:   "bot",
	Short: "Run the quiz as a Telegram bot",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()

		a, err := newApp(ctx, false)
		if err != nil {
			return err
		}
		defer a.Close()

		if err := a.cfg.RequireTelegram(); err != nil {
			return fmt.Errorf("TELEGRAM_API_TOKEN: %w", err)
		}

		bot, err := tgbotapi.NewBotAPI(a.cfg.TelegramAPIToken)
		if err != nil {
			return fmt.Errorf("init telegram bot: %w", err)
		}
		bot.Debug = botDebug

		commands := []tgbotapi.BotCommand{
			{Command: "start", Description: "Start a new quiz"},
			{Command: "next", Description: "Next question"},
			{Command: "reset", Description: "Reset the score"},
			{Command: "settings", Description: "Quiz modes"},
			{Command: "help", Description: "Help"},
		}
		if _, err := bot.Request(tgbotapi.NewSetMyCommands(commands...)); err != nil {
			a.logger.Warn("failed to set bot commands", zap.Error(err))
		}

		a.logger.Info("authorized on telegram", zap.String("account", bot.Self.UserName))

		handler := telegram.NewHandler(bot, a.logger, a.quiz)
		if err := handler.Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
			return err
		}

		a.logger.Info("shutdown signal received")
		return nil
	},
}

func init() {
	botCmd.Flags().BoolVar(&botDebug, "debug", false, "log raw telegram API traffic")
}
