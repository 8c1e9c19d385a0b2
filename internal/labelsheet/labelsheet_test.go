package labelsheet

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/piwi3910/photopack/pkg/pack"
)

func buildTestPlacements() []pack.Placement {
	return []pack.Placement{
		{ID: "p1", Size: pack.PhotoSize{Name: "4x6"}, X: 0.25, Y: 0.25, EffectiveWidth: 4, EffectiveHeight: 6, PageIndex: 0},
		{ID: "p2", Size: pack.PhotoSize{Name: "5x7"}, Rotation: 90, X: 4.5, Y: 0.25, EffectiveWidth: 7, EffectiveHeight: 5, PageIndex: 0},
	}
}

func TestExportCreatesFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "labels.pdf")

	if err := Export(path, buildTestPlacements()); err != nil {
		t.Fatalf("Export returned error: %v", err)
	}

	info, err := os.Stat(path)
	if err != nil {
		t.Fatalf("PDF file was not created: %v", err)
	}
	if info.Size() == 0 {
		t.Fatal("PDF file is empty")
	}
}

func TestExportEmptyPlacementsIsAnError(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "empty.pdf")

	if err := Export(path, nil); err == nil {
		t.Fatal("expected error for empty placements, got nil")
	}
}

func TestCollectInfosFallsBackToIDWhenNameMissing(t *testing.T) {
	placements := []pack.Placement{{ID: "unnamed", X: 1, Y: 1, EffectiveWidth: 2, EffectiveHeight: 2}}
	infos := CollectInfos(placements)
	if len(infos) != 1 {
		t.Fatalf("len(infos) = %d, want 1", len(infos))
	}
	if infos[0].Name != "unnamed" {
		t.Errorf("Name = %q, want fallback to ID %q", infos[0].Name, "unnamed")
	}
}

func TestCollectInfosPreservesPlacementFields(t *testing.T) {
	infos := CollectInfos(buildTestPlacements())
	if len(infos) != 2 {
		t.Fatalf("len(infos) = %d, want 2", len(infos))
	}
	if infos[1].Rotation != 90 {
		t.Errorf("Rotation = %d, want 90", infos[1].Rotation)
	}
	if infos[1].PageIndex != 0 {
		t.Errorf("PageIndex = %d, want 0", infos[1].PageIndex)
	}
}

func TestInfoRoundTripsThroughJSON(t *testing.T) {
	info := CollectInfos(buildTestPlacements())[0]
	encoded, err := json.Marshal(info)
	if err != nil {
		t.Fatalf("Marshal returned error: %v", err)
	}

	var decoded Info
	if err := json.Unmarshal(encoded, &decoded); err != nil {
		t.Fatalf("Unmarshal returned error: %v", err)
	}
	if decoded != info {
		t.Errorf("decoded = %+v, want %+v", decoded, info)
	}
}
