// Package main provides socketctl, the content inspection tool for the gem
// socketing system. It loads and validates all item, rarity, and gem
// content, compiles the bonus handlers, and prints the socket bonus tooltip
// of every gem at every rarity in every category it supports.
package main

import (
	"flag"
	"fmt"
	"log"
	"time"

	"go.uber.org/zap"

	"github.com/cory-johannsen/adventure/internal/config"
	"github.com/cory-johannsen/adventure/internal/game/gem"
	"github.com/cory-johannsen/adventure/internal/game/gem/bonus"
	"github.com/cory-johannsen/adventure/internal/game/item"
	"github.com/cory-johannsen/adventure/internal/game/loot"
	"github.com/cory-johannsen/adventure/internal/observability"
	"github.com/cory-johannsen/adventure/internal/scripting"
)

func main() {
	start := time.Now()

	configPath := flag.String("config", "configs/socketctl.yaml", "path to configuration file")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("loading config: %v", err)
	}

	logger, err := observability.NewLogger(cfg.Logging)
	if err != nil {
		log.Fatalf("initializing logger: %v", err)
	}
	defer logger.Sync()

	items, err := item.LoadRegistry(cfg.Content.ItemsDir)
	if err != nil {
		logger.Fatal("loading items", zap.Error(err))
	}
	rarities, err := loot.LoadRarities(cfg.Content.RaritiesDir)
	if err != nil {
		logger.Fatal("loading rarities", zap.Error(err))
	}
	gems, err := gem.LoadGems(cfg.Content.GemsDir)
	if err != nil {
		logger.Fatal("loading gems", zap.Error(err))
	}

	var scripts *scripting.Host
	if cfg.Content.ScriptsDir != "" {
		scripts = scripting.NewHost(logger)
		defer scripts.Close()
		if err := scripts.Load(cfg.Content.ScriptsDir, cfg.Scripting.InstructionLimit); err != nil {
			logger.Fatal("loading scripts", zap.Error(err))
		}
	}

	if err := gem.Compile(gems, rarities, bonus.DefaultFactory(scripts)); err != nil {
		logger.Fatal("compiling gem bonuses", zap.Error(err))
	}

	logger.Info("content loaded",
		zap.Int("items", len(items.All())),
		zap.Int("rarities", len(rarities.All())),
		zap.Int("gems", len(gems.All())),
		zap.Duration("elapsed", time.Since(start)),
	)

	resolver := gem.Resolver{Items: items, Gems: gems, Rarities: rarities}
	hosts := hostsByCategory(items)
	gemDef := gemItemDef(items)
	if gemDef == nil {
		logger.Fatal("content has no item definition of kind gem")
	}

	for _, g := range gems.All() {
		fmt.Printf("%s (%s)\n", g.Name, g.ID)
		for _, spec := range g.Bonuses {
			cat, _ := loot.ParseCategory(spec.Category)
			host, ok := hosts[cat]
			if !ok {
				logger.Warn("no host item for category",
					zap.String("gem", g.ID),
					zap.String("category", spec.Category),
				)
				continue
			}
			fmt.Printf("  %s (via %s):\n", spec.Category, host.ID)
			for _, r := range rarities.All() {
				inst := resolver.Instance(item.NewStack(host), gem.NewGemStack(gemDef, g, r))
				if !inst.IsValid() {
					continue
				}
				fmt.Printf("    %-10s %s\n", r.Name, inst.SocketBonusTooltip())
			}
		}
	}
}

// hostsByCategory picks one representative socketable item def per category.
func hostsByCategory(items *item.Registry) map[loot.Category]*item.Def {
	hosts := make(map[loot.Category]*item.Def)
	for _, d := range items.All() {
		cat := loot.CategoryFor(d)
		if cat == loot.CategoryNone {
			continue
		}
		if _, ok := hosts[cat]; !ok {
			hosts[cat] = d
		}
	}
	return hosts
}

// gemItemDef returns the first item def of kind gem, or nil.
func gemItemDef(items *item.Registry) *item.Def {
	for _, d := range items.All() {
		if d.Kind == item.KindGem {
			return d
		}
	}
	return nil
}
