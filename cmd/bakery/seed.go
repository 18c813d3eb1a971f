package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"bakery-storefront/internal/client"
	"bakery-storefront/internal/model"
	"bakery-storefront/internal/repository"
	"bakery-storefront/internal/service"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"gopkg.in/yaml.v3"
)

var seedFile string

var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Load menu items from a YAML file, skipping ids that already exist",
	RunE:  runSeed,
}

type menuFile struct {
	Items []menuEntry `yaml:"items"`
}

type menuEntry struct {
	ID          string   `yaml:"id"`
	Name        string   `yaml:"name"`
	Description string   `yaml:"description"`
	Emoji       string   `yaml:"emoji"`
	Price       string   `yaml:"price"`
	Options     []string `yaml:"options"`
	InStock     *bool    `yaml:"in_stock"`
}

func parseMenu(r io.Reader) ([]*model.Item, error) {
	var menu menuFile
	if err := yaml.NewDecoder(r).Decode(&menu); err != nil {
		return nil, fmt.Errorf("decode menu: %w", err)
	}

	items := make([]*model.Item, 0, len(menu.Items))
	for i, e := range menu.Items {
		if e.Name == "" {
			return nil, fmt.Errorf("menu item %d: name is required", i+1)
		}

		price, err := decimal.NewFromString(e.Price)
		if err != nil || price.IsNegative() {
			return nil, fmt.Errorf("menu item %q: invalid price %q", e.Name, e.Price)
		}

		item := &model.Item{
			ID:      e.ID,
			Name:    e.Name,
			Emoji:   e.Emoji,
			Price:   price,
			Options: model.ParseOptions(strings.Join(e.Options, ",")),
			InStock: e.InStock == nil || *e.InStock,
		}
		if e.Description != "" {
			desc := e.Description
			item.Description = &desc
		}
		items = append(items, item)
	}

	return items, nil
}

func runSeed(cmd *cobra.Command, args []string) error {
	f, err := os.Open(seedFile)
	if err != nil {
		return fmt.Errorf("open menu file: %w", err)
	}
	defer f.Close()

	items, err := parseMenu(f)
	if err != nil {
		return err
	}

	db, err := client.InitDBClient(cfg.Database)
	if err != nil {
		return err
	}
	if err := client.Migrate(db); err != nil {
		return err
	}

	catalogService := service.NewCatalogService(repository.NewItemRepository(db))
	if err := catalogService.Seed(cmd.Context(), items); err != nil {
		return err
	}

	logger.Info("menu seeded", zap.String("file", seedFile), zap.Int("items", len(items)))
	return nil
}
