package pdfexport

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/piwi3910/photopack/pkg/pack"
)

func buildTestPlacements() []pack.Placement {
	return []pack.Placement{
		{ID: "p1", Size: pack.PhotoSize{Name: "wallet"}, X: 0.25, Y: 0.25, EffectiveWidth: 2, EffectiveHeight: 3, PageIndex: 0},
		{ID: "p2", Size: pack.PhotoSize{Name: "5x7"}, Rotation: 90, X: 2.5, Y: 0.25, EffectiveWidth: 2, EffectiveHeight: 3, PageIndex: 0},
		{ID: "p3", Size: pack.PhotoSize{Name: "4x6"}, X: 0.25, Y: 0.25, EffectiveWidth: 4, EffectiveHeight: 6, PageIndex: 1},
	}
}

func testConfig() pack.PageConfig {
	return pack.PageConfig{PageWidth: 6, PageHeight: 4, MarginTop: 0.1, MarginRight: 0.1, MarginBottom: 0.1, MarginLeft: 0.1}
}

func TestExportCreatesFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "out.pdf")

	require.NoError(t, Export(path, buildTestPlacements(), testConfig(), "in"))

	info, err := os.Stat(path)
	require.NoError(t, err, "PDF file was not created")
	assert.Greater(t, info.Size(), int64(0), "PDF file is empty")
}

func TestExportEmptyPlacementsIsAnError(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "empty.pdf")

	assert.Error(t, Export(path, nil, testConfig(), "in"))
}

func TestGroupByPageSeparatesPages(t *testing.T) {
	byPage := groupByPage(buildTestPlacements())
	assert.Len(t, byPage[0], 2)
	assert.Len(t, byPage[1], 1)
}

func TestMaxPageIndex(t *testing.T) {
	byPage := groupByPage(buildTestPlacements())
	assert.Equal(t, 1, maxPageIndex(byPage))
}

func TestPhotoLabelAppendsRotationMarker(t *testing.T) {
	rotated := pack.Placement{Size: pack.PhotoSize{Name: "5x7"}, Rotation: 90}
	assert.Equal(t, "5x7 R", photoLabel(rotated))

	flat := pack.Placement{Size: pack.PhotoSize{Name: "4x6"}}
	assert.Equal(t, "4x6", photoLabel(flat))
}

func TestUsedAreaSumsEffectiveDimensions(t *testing.T) {
	placements := []pack.Placement{
		{EffectiveWidth: 2, EffectiveHeight: 3},
		{EffectiveWidth: 4, EffectiveHeight: 1},
	}
	assert.Equal(t, 10.0, usedArea(placements))
}

func TestOrientationPicksLandscapeForWidePages(t *testing.T) {
	assert.Equal(t, "L", orientation(pack.PageConfig{PageWidth: 6, PageHeight: 4}))
	assert.Equal(t, "P", orientation(pack.PageConfig{PageWidth: 4, PageHeight: 6}))
}
