package main

import (
	"os"

	"github.com/mielpeeters/whister/experiments"
	"github.com/mielpeeters/whister/model"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// modelPath points at the weights shipped with the repo. A replacement
// artifact can be written with model.New(...).Encode().
const modelPath = "data/easy.bin"

func main() {
	zerolog.SetGlobalLevel(zerolog.InfoLevel)

	data, err := os.ReadFile(modelPath)
	if err != nil {
		log.Fatal().Err(err).Msgf("failed to read model artifact %s", modelPath)
	}

	weights, err := model.Load(data)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load model artifact")
	}
	log.Info().Msgf("loaded model: version %d, %d weights", weights.Version, weights.Len())

	if err := experiments.RunStrengthExperiment(weights); err != nil {
		log.Fatal().Err(err).Msg("experiment failed")
	}
}
