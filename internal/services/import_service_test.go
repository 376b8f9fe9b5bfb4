package services

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"havahills/backoffice/internal/constants"
	"havahills/backoffice/internal/models/dtos"
)

func TestImportService_RoutesRowsByProject(t *testing.T) {
	inserts := make(map[string][]map[string]interface{})
	provider := &mockDataProvider{
		insertRecordFunc: func(ctx context.Context, collection string, fields map[string]interface{}) (string, error) {
			inserts[collection] = append(inserts[collection], fields)
			return "new-id", nil
		},
	}

	svc := NewImportService(provider, nil, nil)

	rows := []dtos.ImportRow{
		{Project: "Living Water", Block: "1", Lot: "2", LotArea: "120", MiscFee: "5000"},
		{Project: constants.CollectionHavahills, Block: "3", Lot: "4", LotArea: "80", MiscFee: "3000"},
	}

	result := svc.ImportRows(context.Background(), rows)
	assert.Equal(t, 2, result.Imported)
	assert.Equal(t, 0, result.Failed)

	lw := inserts[constants.CollectionLivingWater]
	require.Len(t, lw, 1)
	assert.Equal(t, "120", lw[0]["Lot Area"])
	assert.Equal(t, "5000", lw[0]["MISC FEE"])

	// the same sheet columns land under Havahills vocabulary
	hh := inserts[constants.CollectionHavahills]
	require.Len(t, hh, 1)
	assert.Equal(t, "80", hh[0]["Lot Size"])
	assert.Equal(t, "3000", hh[0]["Misc Fee"])
}

func TestImportService_BadRowDoesNotAbortBatch(t *testing.T) {
	var inserted int
	provider := &mockDataProvider{
		insertRecordFunc: func(ctx context.Context, collection string, fields map[string]interface{}) (string, error) {
			if fields["Block"] == "9" {
				return "", errors.New("write rejected")
			}
			inserted++
			return "new-id", nil
		},
	}

	svc := NewImportService(provider, nil, nil)

	rows := []dtos.ImportRow{
		{Project: "Living Water", Block: "1", Lot: "1"},
		{Project: "Living Water", Block: "9", Lot: "9"},
		{Project: "Atlantis", Block: "1", Lot: "1"},
		{Project: "Living Water", Block: "", Lot: "1"},
		{Project: "Living Water", Block: "2", Lot: "2"},
	}

	result := svc.ImportRows(context.Background(), rows)
	assert.Equal(t, 2, result.Imported)
	assert.Equal(t, 3, result.Failed)
	assert.Len(t, result.Errors, 3)
	assert.Equal(t, 2, inserted)
}
