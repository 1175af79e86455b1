package main

import (
	"flag"
	"log"
	"time"

	"github.com/simplehero/dungeon/internal/config"
	"github.com/simplehero/dungeon/internal/database"
	"github.com/simplehero/dungeon/internal/game"
	"github.com/simplehero/dungeon/internal/items"
	"github.com/simplehero/dungeon/internal/logger"
	"github.com/simplehero/dungeon/internal/race"
	"github.com/simplehero/dungeon/internal/room"
	"github.com/simplehero/dungeon/internal/server"
)

func main() {
	serverConfigFile := flag.String("config", "data/server.yaml", "Path to server config YAML file")
	loggingConfig := flag.String("logging", "data/logging.yaml", "Path to logging config YAML file")
	seed := flag.Uint("seed", 0, "Run seed (default: random based on current time)")
	templatesFile := flag.String("templates", "", "Path to room templates YAML file (default: built-in catalog)")
	racesFile := flag.String("races", "", "Path to races YAML file (default: built-in definitions)")
	itemsFile := flag.String("items", "", "Path to items YAML file (default: built-in catalog)")
	dbFile := flag.String("db", "", "Path to save database file (overrides config)")
	noSaves := flag.Bool("no-saves", false, "Run without a save store")
	flag.Parse()

	logConfig, _ := logger.LoadConfig(*loggingConfig)
	logger.Initialize(logConfig)

	logger.Info("starting dungeon server")

	cfg, err := config.LoadConfig(*serverConfigFile)
	if err != nil {
		logger.Warning("failed to parse server config, using defaults", "path", *serverConfigFile, "error", err)
	}

	// Flags override config-file paths
	if *templatesFile == "" {
		*templatesFile = cfg.Data.TemplatesPath
	}
	if *racesFile == "" {
		*racesFile = cfg.Data.RacesPath
	}
	if *itemsFile == "" {
		*itemsFile = cfg.Data.ItemsPath
	}
	if *dbFile != "" {
		cfg.Database.SQLitePath = *dbFile
	}

	templates := room.DefaultCatalog()
	if *templatesFile != "" {
		templates, err = room.LoadCatalogFromYAML(*templatesFile)
		if err != nil {
			log.Fatalf("Failed to load room templates: %v", err)
		}
		logger.Info("room templates loaded", "path", *templatesFile, "count", len(templates.Templates))
	}

	if *racesFile != "" {
		raceConfig, err := race.LoadFromYAML(*racesFile)
		if err != nil {
			log.Fatalf("Failed to load races: %v", err)
		}
		race.SetConfig(raceConfig)
		logger.Info("races loaded", "path", *racesFile)
	}

	itemCatalog := items.DefaultCatalog()
	if *itemsFile != "" {
		itemCatalog, err = items.LoadCatalogFromYAML(*itemsFile)
		if err != nil {
			log.Fatalf("Failed to load items: %v", err)
		}
		logger.Info("items loaded", "path", *itemsFile, "count", itemCatalog.Len())
	}

	runSeed := uint32(*seed)
	if runSeed == 0 {
		runSeed = uint32(time.Now().UnixNano())
		logger.Info("run seed selected", "seed", runSeed, "random", true)
	} else {
		logger.Info("run seed selected", "seed", runSeed, "random", false)
	}

	state, err := game.New(templates, itemCatalog, runSeed)
	if err != nil {
		log.Fatalf("Failed to generate dungeon: %v", err)
	}
	logger.Info("dungeon generated",
		"seed", runSeed,
		"floors", state.Dungeon.TotalFloors,
		"rooms", len(state.Dungeon.Rooms))

	var db *database.Database
	if !*noSaves {
		db, err = database.Open(cfg.Database)
		if err != nil {
			log.Fatalf("Failed to open save database: %v", err)
		}
		defer db.Close()
		logger.Info("save store ready", "driver", cfg.Database.Driver)
	}

	srv := server.New(cfg, templates, itemCatalog, state, db)
	if err := srv.Start(); err != nil {
		log.Fatalf("Server failed: %v", err)
	}
}
