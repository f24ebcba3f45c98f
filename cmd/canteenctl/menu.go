package main

import (
	"context"
	"fmt"
	"io"
	"strings"

	"canteen/internal/usecase"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
)

// seedItem is one catalog entry of a seed file.
type seedItem struct {
	ItemID      string  `yaml:"itemId"`
	ItemName    string  `yaml:"itemName"`
	Description string  `yaml:"description"`
	Price       float64 `yaml:"price"`
}

func newMenuCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "menu",
		Short: "Manage the menu catalog",
	}
	cmd.AddCommand(newMenuSeedCommand())

	return cmd
}

func newMenuSeedCommand() *cobra.Command {
	var path string

	cmd := &cobra.Command{
		Use:   "seed",
		Short: "Create or update menu items from a YAML file, matching on itemId",
		RunE: func(cmd *cobra.Command, _ []string) error {
			items, err := loadSeedFile(path)
			if err != nil {
				return err
			}

			var menu usecase.MenuUsecase

			return withBackend(cmd.Context(), func() error {
				return seedMenu(cmd.Context(), cmd.OutOrStdout(), menu, items)
			}, &menu)
		},
	}
	cmd.Flags().StringVar(&path, "file", "", "path of the YAML seed file")
	_ = cmd.MarkFlagRequired("file")

	return cmd
}

func loadSeedFile(path string) ([]seedItem, error) {
	k := koanf.New(".")
	if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
		return nil, errors.Wrapf(err, "failed to read seed file %s", path)
	}

	var items []seedItem
	if err := k.UnmarshalWithConf("items", &items, koanf.UnmarshalConf{Tag: "yaml"}); err != nil {
		return nil, errors.Wrap(err, "failed to parse seed items")
	}
	if len(items) == 0 {
		return nil, errors.New("seed file lists no items")
	}

	for i, item := range items {
		if strings.TrimSpace(item.ItemID) == "" {
			return nil, errors.Errorf("item %d has no itemId", i+1)
		}
	}

	return items, nil
}

// seedMenu updates the items whose itemId is already in the catalog and creates the rest.
func seedMenu(ctx context.Context, out io.Writer, menu usecase.MenuUsecase, items []seedItem) error {
	existing, err := menu.ListMenu(ctx, "")
	if err != nil {
		return errors.Wrap(err, "failed to list menu")
	}

	byItemID := make(map[string]string, len(existing))
	for _, item := range existing {
		byItemID[item.ItemID] = item.ID
	}

	var created, updated int
	for _, item := range items {
		input := &usecase.MenuItemInput{
			ItemID:      strings.TrimSpace(item.ItemID),
			ItemName:    item.ItemName,
			Description: item.Description,
			Price:       item.Price,
		}

		if id, ok := byItemID[input.ItemID]; ok {
			if _, err := menu.UpdateMenuItem(ctx, id, input); err != nil {
				return errors.Wrapf(err, "failed to update %s", input.ItemID)
			}
			updated++

			continue
		}

		saved, err := menu.CreateMenuItem(ctx, input)
		if err != nil {
			return errors.Wrapf(err, "failed to create %s", input.ItemID)
		}
		byItemID[input.ItemID] = saved.ID
		created++
	}

	fmt.Fprintf(out, "menu seeded: %d created, %d updated\n", created, updated)

	return nil
}
