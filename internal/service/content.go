// internal/service/content.go
package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/bxgeo/portalmigrate/internal/domain"
	"github.com/bxgeo/portalmigrate/internal/org"
	"github.com/bxgeo/portalmigrate/internal/portal"
)

// Packager bundles files for upload. Shapefiles travel as a zip of the
// shapefile and its sidecar files; building that archive is a collaborator
// concern, not part of the migration core.
type Packager interface {
	// PackageShapefile collects path and its sidecar files into a zip
	// archive and returns the archive path.
	PackageShapefile(path string) (string, error)
}

const featureLayerType = "Feature Layer"

// ContentService manages content items on one organization's portal:
// lookups by title, uploads, publishing and folder placement.
type ContentService struct {
	org      *org.Context
	packager Packager
	logger   *slog.Logger
}

// NewContentService creates a content service for an organization.
func NewContentService(o *org.Context, packager Packager, logger *slog.Logger) *ContentService {
	if logger == nil {
		logger = slog.Default()
	}
	return &ContentService{org: o, packager: packager, logger: logger}
}

// GetItem looks up an item by exact title, optionally restricted to one
// item type. Returns domain.ErrItemNotFound when no item carries the title.
func (s *ContentService) GetItem(ctx context.Context, def *portal.ItemDefinition) (*portal.ItemRecord, error) {
	if def == nil || def.Title == "" {
		return nil, domain.ErrMissingTitle
	}

	results, err := s.org.Portal.SearchItems(ctx, fmt.Sprintf("title:%s", def.Title), def.Type)
	if err != nil {
		return nil, fmt.Errorf("searching for item %q: %w", def.Title, err)
	}
	// search matches loosely; require the exact title
	for _, item := range results {
		if item.Title == def.Title {
			return item, nil
		}
	}
	return nil, fmt.Errorf("%w: %s", domain.ErrItemNotFound, def.Title)
}

// GetOrSaveItem returns the existing item under the definition's title, or
// uploads data as a new item when none exists. With deleteExisting set, an
// existing item is deleted and replaced. The second return reports whether
// a new item was created.
func (s *ContentService) GetOrSaveItem(ctx context.Context, def *portal.ItemDefinition, path string, deleteExisting bool) (*portal.ItemRecord, bool, error) {
	existing, err := s.GetItem(ctx, def)
	if err != nil && !errors.Is(err, domain.ErrItemNotFound) {
		return nil, false, err
	}
	if existing != nil {
		if !deleteExisting {
			return existing, false, nil
		}
		if err := s.org.Portal.DeleteItem(ctx, existing.ID); err != nil {
			return nil, false, fmt.Errorf("deleting existing item %q: %w", def.Title, err)
		}
	}

	item, err := s.addItemFromFile(ctx, def, path)
	if err != nil {
		return nil, false, err
	}
	return item, true, nil
}

// DeleteItemIfExists deletes the item under the definition's title and
// reports whether anything was deleted.
func (s *ContentService) DeleteItemIfExists(ctx context.Context, def *portal.ItemDefinition) (bool, error) {
	item, err := s.GetItem(ctx, def)
	if err != nil {
		if errors.Is(err, domain.ErrItemNotFound) {
			return false, nil
		}
		return false, err
	}
	if err := s.org.Portal.DeleteItem(ctx, item.ID); err != nil {
		return false, fmt.Errorf("deleting item %q: %w", def.Title, err)
	}
	return true, nil
}

// PublishItem publishes an uploaded file item as a feature layer. When a
// feature layer with the same title already exists it is returned unless
// overwrite is set, in which case it is deleted first. The second return
// reports whether a new layer was published.
func (s *ContentService) PublishItem(ctx context.Context, item *portal.ItemRecord, opts *portal.PublishOptions, overwrite bool) (*portal.ItemRecord, bool, error) {
	existing, err := s.org.Portal.SearchItems(ctx, fmt.Sprintf("title:%s", item.Title), featureLayerType)
	if err != nil {
		return nil, false, fmt.Errorf("searching for feature layer %q: %w", item.Title, err)
	}
	for _, layer := range existing {
		if layer.Title != item.Title {
			continue
		}
		if !overwrite {
			return layer, false, nil
		}
		if err := s.org.Portal.DeleteItem(ctx, layer.ID); err != nil {
			return nil, false, fmt.Errorf("deleting feature layer %q: %w", item.Title, err)
		}
	}

	layer, err := s.org.Portal.PublishItem(ctx, item.ID, opts)
	if err != nil {
		return nil, false, fmt.Errorf("publishing item %q: %w", item.Title, err)
	}
	return layer, true, nil
}

// MoveToAnalysisFolder moves an item into the organization's analysis
// folder.
func (s *ContentService) MoveToAnalysisFolder(ctx context.Context, item *portal.ItemRecord) error {
	if s.org.AnalysisFolder == "" {
		return fmt.Errorf("%w: no analysis folder configured for %s", domain.ErrInvalidInput, s.org.Name)
	}
	if err := s.org.Portal.MoveItem(ctx, item.ID, s.org.AnalysisFolder); err != nil {
		return fmt.Errorf("moving item %q: %w", item.Title, err)
	}
	return nil
}

// UploadCSV uploads a CSV file and publishes it as a hosted table.
func (s *ContentService) UploadCSV(ctx context.Context, csvPath, layerName string, tags []string) (*portal.ItemRecord, error) {
	def := &portal.ItemDefinition{
		Title: layerName,
		Type:  "CSV",
		Tags:  s.mergeTags(tags),
	}
	item, err := s.addItemFromFile(ctx, def, csvPath)
	if err != nil {
		return nil, err
	}

	table, err := s.org.Portal.PublishItem(ctx, item.ID, nil)
	if err != nil {
		return nil, fmt.Errorf("publishing CSV %q: %w", layerName, err)
	}
	return table, nil
}

// UploadShapefile zips a shapefile with its sidecar files, uploads the
// archive and publishes it as a feature layer.
func (s *ContentService) UploadShapefile(ctx context.Context, shapefilePath, layerName string, tags []string) (*portal.ItemRecord, error) {
	if s.packager == nil {
		return nil, fmt.Errorf("%w: no packager configured", domain.ErrInvalidInput)
	}
	zipPath, err := s.packager.PackageShapefile(shapefilePath)
	if err != nil {
		return nil, fmt.Errorf("packaging shapefile: %w", err)
	}

	if layerName == "" {
		layerName = strings.TrimSuffix(filepath.Base(shapefilePath), filepath.Ext(shapefilePath))
	}
	def := &portal.ItemDefinition{
		Title: layerName,
		Type:  "Shapefile",
		Tags:  s.mergeTags(tags),
	}
	item, err := s.addItemFromFile(ctx, def, zipPath)
	if err != nil {
		return nil, err
	}

	layer, err := s.org.Portal.PublishItem(ctx, item.ID, nil)
	if err != nil {
		return nil, fmt.Errorf("publishing shapefile %q: %w", layerName, err)
	}
	return layer, nil
}

func (s *ContentService) addItemFromFile(ctx context.Context, def *portal.ItemDefinition, path string) (*portal.ItemRecord, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening %s: %w", path, err)
	}
	defer f.Close()

	item, err := s.org.Portal.AddItem(ctx, def, s.org.AnalysisFolder, f)
	if err != nil {
		return nil, fmt.Errorf("adding item %q: %w", def.Title, err)
	}
	return item, nil
}

func (s *ContentService) mergeTags(tags []string) []string {
	merged := append([]string(nil), s.org.CommonTags...)
	return append(merged, tags...)
}
