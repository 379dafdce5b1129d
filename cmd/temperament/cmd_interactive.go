package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"temperament/cmd/temperament/form"
	"temperament/cmd/temperament/ui"
	"temperament/internal/logging"
	"temperament/internal/quiz"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// runInteractive launches the terminal questionnaire.
func runInteractive(cmd *cobra.Command, args []string) error {
	cat, err := openCatalog()
	if err != nil {
		return err
	}

	sessionLogger, _ := logging.WithSession(logger)
	sessionLogger.Info("questionnaire started", zap.Int("statements", cat.Len()))

	session := quiz.NewSession(cat,
		quiz.WithPageSize(cfg.Questionnaire.PageSize),
		quiz.WithLogger(sessionLogger),
	)

	theme := ui.ThemeByName(cfg.UI.Theme)
	opts := []form.Option{
		form.WithStyles(ui.NewStyles(theme)),
		form.WithLogger(logging.For(sessionLogger, logging.CategoryUI)),
	}
	cache := ui.NewRenderCache(nil, 0)
	rendererFor := func(width int) (ui.MarkdownRenderer, error) {
		r, err := ui.NewMarkdownRenderer(theme, width)
		if err != nil {
			return nil, err
		}
		cache.Reset(r)
		return cache, nil
	}
	if renderer, err := rendererFor(76); err == nil {
		opts = append(opts, form.WithRenderer(renderer), form.WithRendererFactory(rendererFor))
	} else {
		sessionLogger.Warn("markdown renderer unavailable", zap.Error(err))
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	err = form.Run(ctx, form.New(session, opts...), cfg.UI.AltScreen)
	sessionLogger.Info("questionnaire finished",
		zap.String("mode", session.Mode().String()),
		zap.Int("selected", session.SelectedCount()),
	)
	return err
}
