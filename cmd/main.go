package main

import (
	"os"

	stressind "stressindicator"
	"stressindicator/bot"
	"stressindicator/config"
	"stressindicator/scrape"

	"github.com/robfig/cron"
	"github.com/rs/zerolog"
)

func main() {

	lg := zerolog.New(os.Stdout).With().Str("Module", "Main").Timestamp().Logger()

	conf, err := config.NewConfig()
	if err != nil {
		panic(err)
	}

	level, err := conf.LogLevel()
	if err != nil {
		panic(err)
	}
	zerolog.SetGlobalLevel(level)

	// credential check happens before any fetch is attempted
	apiKey, err := conf.FredApiKey()
	if err != nil {
		panic(err)
	}

	start, end, err := conf.DateRange()
	if err != nil {
		panic(err)
	}

	fred, err := scrape.NewFred(apiKey)
	if err != nil {
		panic(err)
	}

	var notifier stressind.Notifier
	botConf, err := conf.BotConfig()
	if err != nil {
		panic(err)
	}
	if botConf != nil {
		teleBot, err := bot.NewTeleBot(botConf)
		if err != nil {
			panic(err)
		}
		notifier = teleBot
	}

	lg.Info().
		Int("target_indicators", config.TargetCount()).
		Int("spreads", len(config.Spreads)).
		Str("output", conf.Output.Dir).
		Msg("Catalog loaded")

	indicator := stressind.NewStressIndicator(stressind.StressIndicatorConfig{
		StatFetcher:   fred,
		MarketFetcher: scrape.NewYahoo(),
		FredSeries:    config.FredSeries,
		MarketSeries:  config.YahooSeries,
		Spreads:       config.Spreads,
		OutputDir:     conf.Output.Dir,
		Start:         start,
		End:           end,
	})

	run := func() int {
		res, err := indicator.Run()
		if notifier != nil && res != nil {
			notifier.SendMessage(res.Summary())
		}
		if err != nil {
			// partial output stays on disk; signal the incomplete write
			lg.Error().Err(err).Msg("Run completed with write failures")
			return 1
		}
		return 0
	}

	if conf.Schedule == "" {
		os.Exit(run())
	}

	// scheduled mode: re-run the whole pipeline on the configured spec
	c := cron.New()
	c.AddFunc(conf.Schedule, func() { run() })
	c.Start()
	select {}
}
