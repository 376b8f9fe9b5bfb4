package services

import (
	"context"
	"fmt"

	"havahills/backoffice/internal/constants"
	"havahills/backoffice/internal/logging"
	"havahills/backoffice/internal/metrics"
	"havahills/backoffice/internal/models/dtos"
	"havahills/backoffice/internal/providers"
	"havahills/backoffice/internal/realtime"
)

// ImportService bulk-loads spreadsheet rows into the property collections.
// Each row names its target project; rows are routed to that collection with
// the column vocabulary the collection expects. One bad row never aborts the
// batch.
type ImportService struct {
	provider providers.DataProvider
	notifier *realtime.ChangeNotifier
	metrics  *metrics.MetricsRegistry
}

func NewImportService(
	provider providers.DataProvider,
	notifier *realtime.ChangeNotifier,
	metricsReg *metrics.MetricsRegistry,
) *ImportService {
	return &ImportService{provider: provider, notifier: notifier, metrics: metricsReg}
}

func (s *ImportService) ImportRows(ctx context.Context, rows []dtos.ImportRow) *dtos.ImportResult {
	result := &dtos.ImportResult{}
	touched := make(map[string]bool)

	for i, row := range rows {
		collection, fields, err := s.mapRow(row)
		if err == nil {
			_, err = s.provider.InsertRecord(ctx, collection, fields)
		}

		if err != nil {
			result.Failed++
			result.Errors = append(result.Errors, fmt.Sprintf("row %d: %v", i+1, err))
			if s.metrics != nil {
				s.metrics.ImportRowsTotal.WithLabelValues(collection, "error").Inc()
			}
			continue
		}

		result.Imported++
		touched[collection] = true
		if s.metrics != nil {
			s.metrics.ImportRowsTotal.WithLabelValues(collection, "ok").Inc()
		}
	}

	for collection := range touched {
		if s.notifier != nil {
			_ = s.notifier.Publish(ctx, collection)
		}
	}

	logging.Info("Import finished", "imported", result.Imported, "failed", result.Failed)
	return result
}

// mapRow routes a sheet row to its collection and builds the insert payload
// in that collection's column vocabulary. Empty cells are omitted so remote
// defaults apply.
func (s *ImportService) mapRow(row dtos.ImportRow) (string, map[string]interface{}, error) {
	var collection string
	switch row.Project {
	case constants.CollectionLivingWater, "Living Water":
		collection = constants.CollectionLivingWater
	case constants.CollectionHavahills, "Havahills":
		collection = constants.CollectionHavahills
	default:
		return constants.CollectionLivingWater, nil, fmt.Errorf("unknown project %q", row.Project)
	}

	if row.Block == "" || row.Lot == "" {
		return collection, nil, fmt.Errorf("missing block or lot")
	}

	fields := map[string]interface{}{
		"Block": row.Block,
		"Lot":   row.Lot,
	}

	put := func(column, value string) {
		if value != "" {
			fields[column] = value
		}
	}

	put("TSP", row.TSP)
	put("TCP", row.TCP)
	put("Status", row.Status)
	put("Realty", row.Realty)
	put("Reservation", row.Reservation)
	put("Seller Name", row.SellerName)
	put("Date of Reservation", row.DateOfReservation)

	// the two collections disagree on several column names
	switch collection {
	case constants.CollectionLivingWater:
		put("Lot Area", row.LotArea)
		put("Price per sqm", row.PricePerSQM)
		put("MISC FEE", row.MiscFee)
		put("VAT", row.VAT)
		put("Term", row.Term)
		put("First MA", row.FirstMA)
		put("2ndto60th MA", row.SecondTo60thMA)
		put("First Due Month", row.FirstDueMonth)
	case constants.CollectionHavahills:
		put("Lot Size", row.LotArea)
		put("Price per sqm", row.PricePerSQM)
		put("Misc Fee", row.MiscFee)
		put("VAT", row.VAT)
		put("Terms", row.Term)
		put("1st MA", row.FirstMA)
		put("2ndto48th MA", row.SecondTo60thMA)
		put("First Due", row.FirstDueMonth)
	}

	return collection, fields, nil
}
