package cmd

import (
	"github.com/etnz/investments/docs"
	"github.com/posener/complete/v2"
	"github.com/posener/complete/v2/predict"
	"github.com/rs/zerolog/log"
)

// Completion describes the command line for shell completion.
func Completion() *complete.Command {
	portfolios := complete.PredictFunc(predictPortfolios)
	topics, err := docs.GetAllTopics()
	if err != nil {
		log.Debug().Err(err).Msg("cannot list documentation topics")
	}

	return &complete.Command{
		Flags: map[string]complete.Predictor{
			"config":  predict.Files("*.yaml"),
			"db-path": predict.Files("*"),
			"v":       predict.Nothing,
		},
		Sub: map[string]*complete.Command{
			(&checkCmd{}).Name(): {},
			(&showCmd{}).Name(): {
				Flags: map[string]complete.Predictor{
					"p":   portfolios,
					"raw": predict.Nothing,
				},
			},
			(&symbolsCmd{}).Name(): {
				Flags: map[string]complete.Predictor{"p": portfolios},
			},
			(&queryCmd{}).Name(): {},
			(&topicCmd{}).Name(): {Args: predict.Set(topics)},
		},
	}
}

// predictPortfolios suggests the portfolio names of the default configuration file.
func predictPortfolios(prefix string) []string {
	cfg, err := loadConfig()
	if err != nil {
		return nil
	}
	names := make([]string, 0, len(cfg.Portfolios))
	for _, p := range cfg.Portfolios {
		names = append(names, p.Name)
	}
	return names
}
