package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/SychO3/SMAPIDedicatedServerMod/internal/bootstrap"
	"github.com/SychO3/SMAPIDedicatedServerMod/internal/config"
	"github.com/SychO3/SMAPIDedicatedServerMod/internal/domain"
	"github.com/SychO3/SMAPIDedicatedServerMod/internal/farm"
	"github.com/SychO3/SMAPIDedicatedServerMod/internal/repository"
	"github.com/SychO3/SMAPIDedicatedServerMod/internal/savedata"
)

// ErrListingUnsupported is returned by --list for stores that cannot enumerate slots
var ErrListingUnsupported = errors.New("store cannot list save slots")

// inspectSlot is the handler for "cropsaver inspect"
func inspectSlot(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	if err := applyOverrides(cmd, cfg); err != nil {
		return err
	}

	store, err := bootstrap.OpenStore(cmd.Context(), cfg)
	if err != nil {
		return err
	}
	defer store.Close()

	out := cmd.OutOrStdout()
	if inspectList {
		return listSlots(cmd, store, out)
	}

	slot, err := resolveSlot(cfg, args)
	if err != nil {
		return err
	}
	return printSlot(cmd, store, slot, inspectLocation, out)
}

// resolveSlot picks the slot from the argument, then SAVE_SLOT, then the farm layout
func resolveSlot(cfg *config.Config, args []string) (string, error) {
	if len(args) == 1 && args[0] != "" {
		return args[0], nil
	}
	if cfg.SaveSlot != "" {
		return cfg.SaveSlot, nil
	}
	layout, err := farm.LoadLayout(cfg.FarmLayoutPath)
	if err != nil {
		return "", err
	}
	return layout.SaveSlot, nil
}

func listSlots(cmd *cobra.Command, store repository.SaveDataStore, out io.Writer) error {
	lister, ok := store.(repository.SlotLister)
	if !ok {
		return ErrListingUnsupported
	}
	slots, err := lister.ListSlots(cmd.Context())
	if err != nil {
		return err
	}
	for _, slot := range slots {
		fmt.Fprintln(out, slot)
	}
	return nil
}

func printSlot(cmd *cobra.Command, store repository.SaveDataStore, slot, location string, out io.Writer) error {
	blob, err := store.ReadSaveData(cmd.Context(), slot, savedata.DataKey)
	if errors.Is(err, domain.ErrSaveDataNotFound) {
		return fmt.Errorf("slot %q has no crop data: %w", slot, err)
	}
	if err != nil {
		return err
	}

	tables, err := savedata.Decode(blob)
	if err != nil {
		return err
	}

	enc := json.NewEncoder(out)
	enc.SetIndent("", "  ")
	return enc.Encode(tables.InLocation(location))
}
