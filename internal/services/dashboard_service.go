package services

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"havahills/backoffice/internal/common"
	"havahills/backoffice/internal/constants"
	"havahills/backoffice/internal/models/dtos"
)

const dashboardStatsTTL = 5 * time.Minute

// DashboardService computes the lot census shown on the landing page. The
// census is cached; change events from either property collection invalidate
// it so the numbers track the tables.
type DashboardService struct {
	inventory *InventoryService
	cache     common.CacheInterface
}

func NewDashboardService(inventory *InventoryService, cache common.CacheInterface) *DashboardService {
	return &DashboardService{inventory: inventory, cache: cache}
}

// GetStats returns the cached census, computing it on a miss.
func (s *DashboardService) GetStats(ctx context.Context) (*dtos.DashboardStats, error) {
	cached, err := s.cache.GetOrSet(string(constants.CachePrefixDashboardStats), dashboardStatsTTL, func() (any, error) {
		return s.computeStats(ctx)
	})
	if err != nil {
		return nil, err
	}

	if stats, ok := cached.(*dtos.DashboardStats); ok {
		return stats, nil
	}

	// Redis hits come back as generic JSON; remarshal into the typed shape
	data, err := json.Marshal(cached)
	if err != nil {
		return nil, fmt.Errorf("unexpected cached stats type %T", cached)
	}
	var stats dtos.DashboardStats
	if err := json.Unmarshal(data, &stats); err != nil {
		return nil, fmt.Errorf("failed to decode cached stats: %w", err)
	}
	return &stats, nil
}

// Invalidate drops the cached census. The change listener calls this when a
// property collection changes.
func (s *DashboardService) Invalidate() {
	s.cache.Delete(string(constants.CachePrefixDashboardStats))
}

func (s *DashboardService) computeStats(ctx context.Context) (*dtos.DashboardStats, error) {
	properties, err := s.inventory.AllProperties(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to compute dashboard stats: %w", err)
	}

	stats := &dtos.DashboardStats{}
	perProject := make(map[string]*dtos.SubdivisionProgress)
	for _, collection := range constants.PropertyCollections {
		perProject[collection] = &dtos.SubdivisionProgress{Name: collection}
	}

	for _, p := range properties {
		stats.TotalLots++

		progress := perProject[p.SourceCollection]
		if progress != nil {
			progress.Total++
		}

		// StatusKey is the lowercased copy, so odd casing in the remote
		// rows still counts
		switch p.StatusKey {
		case strings.ToLower(constants.PropertyStatusAvailable):
			stats.AvailableLots++
		case strings.ToLower(constants.PropertyStatusReserved):
			stats.ReservedLots++
		case strings.ToLower(constants.PropertyStatusSold):
			stats.SoldLots++
			if progress != nil {
				progress.Sold++
			}
		}
	}

	for _, collection := range constants.PropertyCollections {
		stats.Projects = append(stats.Projects, *perProject[collection])
	}

	return stats, nil
}
