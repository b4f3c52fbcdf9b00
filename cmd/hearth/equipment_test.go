package main

import (
	"context"
	"path/filepath"
	"strings"
	"testing"

	"github.com/spf13/viper"

	"github.com/hearthaudit/hearth/internal/efficiency"
	"github.com/hearthaudit/hearth/internal/model"
	"github.com/hearthaudit/hearth/internal/storage"
)

// seedCommandHome points the CLI at a temp database holding one home
// and returns the database path.
func seedCommandHome(t *testing.T, name string) string {
	t.Helper()
	dbPath := filepath.Join(t.TempDir(), "hearth.db")
	viper.Set("database.path", dbPath)
	t.Cleanup(func() { viper.Set("database.path", "") })

	store, err := storage.NewSQLiteStorage(dbPath)
	if err != nil {
		t.Fatalf("failed to open database: %v", err)
	}
	ctx := context.Background()
	if err := store.Migrate(ctx); err != nil {
		t.Fatalf("failed to migrate: %v", err)
	}
	home := model.Home{Name: name, ClimateZone: model.ClimateModerate, TotalSqFt: 1500}
	if err := store.SaveHome(ctx, &home); err != nil {
		t.Fatalf("failed to save home: %v", err)
	}
	if err := store.Close(); err != nil {
		t.Fatalf("failed to close store: %v", err)
	}
	return dbPath
}

func TestEquipmentAddRejectsExplicitZeroEfficiency(t *testing.T) {
	seedCommandHome(t, "Zero Eff Home")

	cmd := equipmentCmd()
	cmd.SetArgs([]string{"add", string(model.EquipmentCentralAC), "--home", "Zero Eff Home", "--efficiency", "0"})
	err := cmd.Execute()
	if err == nil {
		t.Fatal("equipment add --efficiency 0 succeeded, want error")
	}
	if !strings.Contains(err.Error(), "efficiency must be positive") {
		t.Errorf("error = %q, want mention of positive efficiency", err)
	}
}

func TestEquipmentAddEstimatesWhenEfficiencyOmitted(t *testing.T) {
	dbPath := seedCommandHome(t, "Estimated Home")

	cmd := equipmentCmd()
	cmd.SetArgs([]string{"add", string(model.EquipmentCentralAC), "--home", "Estimated Home", "--age", "10-15 years"})
	if err := cmd.Execute(); err != nil {
		t.Fatalf("equipment add failed: %v", err)
	}

	store, err := storage.NewSQLiteStorage(dbPath)
	if err != nil {
		t.Fatalf("failed to reopen database: %v", err)
	}
	defer func() { _ = store.Close() }()

	ctx := context.Background()
	homes, err := store.ListHomes(ctx)
	if err != nil || len(homes) != 1 {
		t.Fatalf("ListHomes() = %v, %v, want one home", homes, err)
	}
	list, err := store.ListEquipment(ctx, homes[0].ID)
	if err != nil || len(list) != 1 {
		t.Fatalf("ListEquipment() = %v, %v, want one item", list, err)
	}

	want := efficiency.Lookup(model.EquipmentCentralAC, model.AgeTenToFifteen).Estimated
	if list[0].EstimatedEfficiency != want {
		t.Errorf("EstimatedEfficiency = %v, want the age-bracket estimate %v", list[0].EstimatedEfficiency, want)
	}
}
