package main

import (
	"flag"
	"os"
	"strings"

	"github.com/pterm/pterm"
	"github.com/pterm/pterm/putils"
	"github.com/sirupsen/logrus"

	"holdem-table/internal/config"
	"holdem-table/internal/rng"
	"holdem-table/pkg/holdem"
)

// Version is the build version
var Version = "v0.0.0-dev"

var seed = flag.Int64("seed", 0, "shuffle seed (0 uses a cryptographic source)")

func main() {
	flag.Parse()
	setupLogger()

	cfg := config.Instance()
	logrus.WithField("version", Version).Debug("starting")

	names := cfg.Players
	if len(names) == 0 {
		names = promptPlayers()
	}

	var generator rng.Generator = rng.Crypto{}
	if s := seedValue(cfg); s != 0 {
		logrus.WithField("seed", s).Warn("using a seeded shuffle")
		generator = rng.NewSeeded(s)
	}

	opts := holdem.Options{
		StartingChips: cfg.StartingChips,
		SmallBlind:    cfg.SmallBlind,
		BigBlind:      cfg.BigBlind,
	}

	table, err := holdem.New(logrus.StandardLogger(), names, opts, &terminalProvider{}, generator)
	if err != nil {
		logrus.Fatal(err)
	}

	title, _ := pterm.DefaultBigText.WithLetters(putils.LettersFromString("Hold'em")).Srender()
	pterm.Print(title)

	for {
		if fundedPlayers(table) < 2 {
			pterm.Info.Println("Not enough funded players to deal another hand")
			break
		}

		result, err := table.PlayRound()
		if err != nil {
			logrus.Fatal(err)
		}

		printResult(table, result)

		again, _ := pterm.DefaultInteractiveConfirm.
			WithDefaultValue(true).
			Show("Deal the next hand?")
		if !again {
			break
		}
	}

	pterm.Println("Thanks for playing!")
}

func seedValue(cfg config.Config) int64 {
	if *seed != 0 {
		return *seed
	}

	return cfg.Seed
}

func fundedPlayers(table *holdem.Table) int {
	funded := 0
	for _, p := range table.Players() {
		if p.Chips() > 0 {
			funded++
		}
	}

	return funded
}

func promptPlayers() []string {
	names := make([]string, 0)
	for {
		name, _ := pterm.DefaultInteractiveTextInput.
			WithDefaultText("Enter a player name (blank to finish)").
			Show()

		name = strings.TrimSpace(name)
		if name == "" {
			if len(names) >= 2 {
				return names
			}

			pterm.Error.Println("At least two players are required")
			continue
		}

		names = append(names, name)
	}
}

func printResult(table *holdem.Table, result *holdem.RoundResult) {
	pterm.Println()

	if len(result.Community) > 0 {
		pterm.Info.Printfln("Board: %s", renderCards(result.Community))
	}

	for name, evaluation := range result.ShowdownHands {
		pterm.Info.Printfln("%s shows %s", name, evaluation.GetHand())
	}

	for _, winner := range result.Winners {
		pterm.Success.Printfln("%s wins %d", winner, result.Payouts[winner])
	}

	for _, p := range table.Players() {
		pterm.Printfln("%s: %d chips", p.Name, p.Chips())
	}
}

func setupLogger() {
	if lvl := config.Instance().Log.Level; lvl != "" {
		level, err := logrus.ParseLevel(lvl)
		if err != nil {
			logrus.WithError(err).Fatal("could not parse level")
		}

		logrus.SetLevel(level)
	}

	if strings.ToLower(os.Getenv("LOG_FORMAT")) == "json" {
		logrus.SetFormatter(&logrus.JSONFormatter{})
	}
}
