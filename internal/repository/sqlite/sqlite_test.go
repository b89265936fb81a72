package sqlite

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/Jobenas/stm32bridge/internal/domain"
)

func testRepo(t *testing.T) *Repository {
	t.Helper()
	repo, err := New(filepath.Join(t.TempDir(), "specs.db"))
	if err != nil {
		t.Fatalf("failed to open repository: %v", err)
	}
	t.Cleanup(func() { repo.Close() })
	return repo
}

func testSpec(part string) *domain.MCUSpec {
	return &domain.MCUSpec{
		PartNumber:          part,
		Family:              "STM32L4",
		Core:                domain.CoreM4,
		MaxFrequency:        "80000000L",
		FlashSizeKB:         256,
		RAMSizeKB:           64,
		Package:             "LQFP",
		PinCount:            32,
		OperatingVoltageMin: 1.71,
		OperatingVoltageMax: 3.6,
		TemperatureMin:      -40,
		TemperatureMax:      85,
		Peripherals:         map[string]int{"USART": 3},
		Features:            []string{"fpu", "usb"},
	}
}

func TestRepository_SaveAndGet(t *testing.T) {
	repo := testRepo(t)
	ctx := context.Background()

	if err := repo.SaveSpec(ctx, testSpec("STM32L432KC")); err != nil {
		t.Fatalf("save failed: %v", err)
	}

	got, err := repo.GetSpec(ctx, "STM32L432KC")
	if err != nil {
		t.Fatalf("get failed: %v", err)
	}
	if got == nil {
		t.Fatal("expected a record, got nil")
	}
	if got.PartNumber != "STM32L432KC" || got.Family != "STM32L4" || got.Core != domain.CoreM4 {
		t.Errorf("unexpected record: %+v", got)
	}
	if got.FlashSizeKB != 256 || got.RAMSizeKB != 64 {
		t.Errorf("memory = %d/%d, want 256/64", got.FlashSizeKB, got.RAMSizeKB)
	}
	if got.PeripheralCount("USART") != 3 {
		t.Errorf("peripherals lost in round trip: %+v", got.Peripherals)
	}
	if !got.HasFeature("fpu") {
		t.Error("features lost in round trip")
	}
}

func TestRepository_GetIsCaseInsensitive(t *testing.T) {
	repo := testRepo(t)
	ctx := context.Background()

	if err := repo.SaveSpec(ctx, testSpec("stm32l432kc")); err != nil {
		t.Fatalf("save failed: %v", err)
	}

	for _, key := range []string{"STM32L432KC", "stm32l432kc", "Stm32L432Kc", "  STM32L432KC  "} {
		got, err := repo.GetSpec(ctx, key)
		if err != nil {
			t.Fatalf("get %q failed: %v", key, err)
		}
		if got == nil {
			t.Errorf("get %q: expected a record", key)
		}
	}
}

func TestRepository_GetMissing(t *testing.T) {
	repo := testRepo(t)

	got, err := repo.GetSpec(context.Background(), "STM32F407VG")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != nil {
		t.Errorf("expected nil for a missing record, got %+v", got)
	}
}

func TestRepository_SaveOverwrites(t *testing.T) {
	repo := testRepo(t)
	ctx := context.Background()

	if err := repo.SaveSpec(ctx, testSpec("STM32L432KC")); err != nil {
		t.Fatalf("save failed: %v", err)
	}

	updated := testSpec("STM32L432KC")
	updated.FlashSizeKB = 512
	if err := repo.SaveSpec(ctx, updated); err != nil {
		t.Fatalf("second save failed: %v", err)
	}

	got, err := repo.GetSpec(ctx, "STM32L432KC")
	if err != nil {
		t.Fatalf("get failed: %v", err)
	}
	if got.FlashSizeKB != 512 {
		t.Errorf("flash = %d, want the updated 512", got.FlashSizeKB)
	}

	specs, err := repo.ListSpecs(ctx)
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if len(specs) != 1 {
		t.Errorf("expected 1 record after upsert, got %d", len(specs))
	}
}

func TestRepository_SaveRejectsInvalid(t *testing.T) {
	repo := testRepo(t)

	bad := testSpec("STM32L432KC")
	bad.Family = ""
	if err := repo.SaveSpec(context.Background(), bad); err == nil {
		t.Error("expected an error caching a structurally invalid record")
	}
}

func TestRepository_ListOrdered(t *testing.T) {
	repo := testRepo(t)
	ctx := context.Background()

	for _, part := range []string{"STM32L432KC", "STM32F103C8", "STM32H743ZI"} {
		if err := repo.SaveSpec(ctx, testSpec(part)); err != nil {
			t.Fatalf("save %s failed: %v", part, err)
		}
	}

	specs, err := repo.ListSpecs(ctx)
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	want := []string{"STM32F103C8", "STM32H743ZI", "STM32L432KC"}
	if len(specs) != len(want) {
		t.Fatalf("got %d records, want %d", len(specs), len(want))
	}
	for i, part := range want {
		if specs[i].PartNumber != part {
			t.Errorf("specs[%d] = %s, want %s", i, specs[i].PartNumber, part)
		}
	}
}

func TestRepository_Delete(t *testing.T) {
	repo := testRepo(t)
	ctx := context.Background()

	if err := repo.SaveSpec(ctx, testSpec("STM32L432KC")); err != nil {
		t.Fatalf("save failed: %v", err)
	}
	if err := repo.DeleteSpec(ctx, "stm32l432kc"); err != nil {
		t.Fatalf("delete failed: %v", err)
	}

	got, err := repo.GetSpec(ctx, "STM32L432KC")
	if err != nil {
		t.Fatalf("get failed: %v", err)
	}
	if got != nil {
		t.Error("record still present after delete")
	}

	// Deleting a missing record is not an error
	if err := repo.DeleteSpec(ctx, "STM32F407VG"); err != nil {
		t.Errorf("delete of missing record failed: %v", err)
	}
}

func TestRepository_PersistsAcrossReopen(t *testing.T) {
	path := filepath.Join(t.TempDir(), "specs.db")
	ctx := context.Background()

	repo, err := New(path)
	if err != nil {
		t.Fatalf("failed to open repository: %v", err)
	}
	if err := repo.SaveSpec(ctx, testSpec("STM32L432KC")); err != nil {
		t.Fatalf("save failed: %v", err)
	}
	if err := repo.Close(); err != nil {
		t.Fatalf("close failed: %v", err)
	}

	reopened, err := New(path)
	if err != nil {
		t.Fatalf("failed to reopen repository: %v", err)
	}
	defer reopened.Close()

	got, err := reopened.GetSpec(ctx, "STM32L432KC")
	if err != nil {
		t.Fatalf("get failed: %v", err)
	}
	if got == nil {
		t.Fatal("record did not survive reopen")
	}
}
