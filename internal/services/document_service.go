package services

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"havahills/backoffice/internal/common"
	"havahills/backoffice/internal/constants"
	"havahills/backoffice/internal/logging"
	"havahills/backoffice/internal/metrics"
	"havahills/backoffice/internal/models/dtos"
	"havahills/backoffice/internal/models/entities"
	"havahills/backoffice/internal/providers"
	"havahills/backoffice/internal/views"
)

const (
	signedURLTTL  = 15 * time.Minute
	shareLinkTTL  = 24 * time.Hour
	signedURLSkew = time.Minute
)

// DocumentService serves the documents view: client paperwork records joined
// with the client's first owned lot, plus the uploaded files in the document
// bucket. Uploads are serialized per client so two encoders can't race on
// the same folder.
type DocumentService struct {
	provider providers.DataProvider
	storage  providers.StorageProvider
	clients  *ClientService
	signer   *common.ShareLinkSigner
	cache    common.CacheInterface
	metrics  *metrics.MetricsRegistry

	uploadMu sync.Mutex
	inFlight map[string]bool
}

func NewDocumentService(
	provider providers.DataProvider,
	storage providers.StorageProvider,
	clients *ClientService,
	signer *common.ShareLinkSigner,
	cache common.CacheInterface,
	metricsReg *metrics.MetricsRegistry,
) *DocumentService {
	return &DocumentService{
		provider: provider,
		storage:  storage,
		clients:  clients,
		signer:   signer,
		cache:    cache,
		metrics:  metricsReg,
		inFlight: make(map[string]bool),
	}
}

// List returns one page of clients joined with their document records and
// first owned lot. A search matches against client names and emails on the
// remote side.
func (s *DocumentService) List(ctx context.Context, q views.ViewQuery) (views.Result[entities.ClientDocuments], error) {
	var clients []entities.Client
	var err error

	if q.Search != "" {
		clients, err = s.clients.SearchByName(ctx, q.Search)
	} else {
		clients, err = s.fetchAllClients(ctx)
	}
	if err != nil {
		return views.Result[entities.ClientDocuments]{}, err
	}

	joined := make([]entities.ClientDocuments, 0, len(clients))
	for _, client := range clients {
		entry := entities.ClientDocuments{Client: client}

		lot := entities.PlaceholderLot()
		if lots, err := s.clients.LotsOwnedBy(ctx, client.Name); err != nil {
			logging.Warn("Lot lookup failed for documents view", "client", client.Name, "error", err.Error())
		} else if len(lots) > 0 {
			lot = lots[0]
		}
		entry.Project = lot.Project
		entry.Block = lot.Block
		entry.Lot = lot.Lot

		docs, err := s.fetchDocumentRecords(ctx, client.Name)
		if err != nil {
			logging.Warn("Document record fetch failed", "client", client.Name, "error", err.Error())
			docs = []entities.DocumentRecord{}
		}
		entry.Documents = docs

		joined = append(joined, entry)
	}

	rows, totalPages, page := views.Page(joined, q.Page, q.PageSize)
	return views.Result[entities.ClientDocuments]{
		Rows:       rows,
		TotalCount: len(joined),
		TotalPages: totalPages,
		Page:       page,
	}, nil
}

// Upload stores a file under the client's folder in the document bucket.
// Returns ErrUploadInFlight if an upload for the same client is already
// running.
func (s *DocumentService) Upload(ctx context.Context, client, filename string, data []byte) error {
	s.uploadMu.Lock()
	if s.inFlight[client] {
		s.uploadMu.Unlock()
		return errors.New(constants.MsgUploadInFlight)
	}
	s.inFlight[client] = true
	s.uploadMu.Unlock()

	defer func() {
		s.uploadMu.Lock()
		delete(s.inFlight, client)
		s.uploadMu.Unlock()
	}()

	path := client + "/" + filename
	if err := s.storage.Upload(ctx, constants.BucketClientDocuments, path, data, true); err != nil {
		return fmt.Errorf("failed to upload %q: %w", path, err)
	}

	if s.metrics != nil {
		s.metrics.DocumentUploadsTotal.Inc()
	}
	s.cache.Delete(string(constants.CachePrefixSignedURL) + client)

	logging.Info("Document uploaded", "client", client, "file", filename)
	return nil
}

// Files lists the client's uploaded files, each with a time-limited signed
// URL. Signed URLs are cached just short of their lifetime.
func (s *DocumentService) Files(ctx context.Context, client string) ([]entities.StoredFile, error) {
	cacheKey := string(constants.CachePrefixSignedURL) + client

	cached, err := s.cache.GetOrSet(cacheKey, signedURLTTL-signedURLSkew, func() (any, error) {
		return s.listFiles(ctx, client)
	})
	if err != nil {
		return nil, err
	}

	if files, ok := cached.([]entities.StoredFile); ok {
		return files, nil
	}

	// Redis hits come back as generic JSON; remarshal into the typed shape
	data, err := json.Marshal(cached)
	if err != nil {
		return nil, fmt.Errorf("unexpected cached files type %T", cached)
	}
	var files []entities.StoredFile
	if err := json.Unmarshal(data, &files); err != nil {
		return nil, fmt.Errorf("failed to decode cached files: %w", err)
	}
	return files, nil
}

// CreateShareLink issues a single-use token for one file.
func (s *DocumentService) CreateShareLink(ctx context.Context, client, file string) (*dtos.ShareLinkResponse, error) {
	token, err := s.signer.GenerateShareToken(client, file, shareLinkTTL)
	if err != nil {
		return nil, fmt.Errorf("failed to sign share link: %w", err)
	}

	return &dtos.ShareLinkResponse{
		Token:     token,
		URL:       "/api/v1/documents/shared/" + token,
		ExpiresIn: int(shareLinkTTL.Seconds()),
	}, nil
}

// ResolveShareLink validates a share token, burns it, and returns a signed
// URL for the file. A token works exactly once.
func (s *DocumentService) ResolveShareLink(ctx context.Context, token string) (string, error) {
	claims, err := s.signer.ValidateToken(ctx, token)
	if err != nil {
		return "", err
	}

	path := claims.Client + "/" + claims.File
	url, err := s.storage.CreateSignedURL(ctx, constants.BucketClientDocuments, path, signedURLTTL)
	if err != nil {
		return "", fmt.Errorf("failed to sign URL for shared file: %w", err)
	}

	if err := s.signer.MarkTokenAsUsed(ctx, claims.TokenID, claims.ExpiresAt); err != nil {
		return "", fmt.Errorf("failed to burn share token: %w", err)
	}

	return url, nil
}

func (s *DocumentService) listFiles(ctx context.Context, client string) ([]entities.StoredFile, error) {
	objects, err := s.storage.List(ctx, constants.BucketClientDocuments, client)
	if err != nil {
		return nil, fmt.Errorf("failed to list documents for %q: %w", client, err)
	}

	files := make([]entities.StoredFile, 0, len(objects))
	for _, obj := range objects {
		url, err := s.storage.CreateSignedURL(ctx, constants.BucketClientDocuments, client+"/"+obj.Name, signedURLTTL)
		if err != nil {
			logging.Warn("Signed URL failed", "client", client, "file", obj.Name, "error", err.Error())
			continue
		}
		files = append(files, entities.StoredFile{Name: obj.Name, SignedURL: url})
	}
	return files, nil
}

func (s *DocumentService) fetchAllClients(ctx context.Context) ([]entities.Client, error) {
	records, err := s.provider.FetchRecords(ctx, providers.Query{
		Collection: constants.CollectionClients,
		OrderBy:    []providers.Ordering{{Column: "Name"}},
	})
	if err != nil {
		return nil, fmt.Errorf("failed to fetch clients: %w", err)
	}

	clients := make([]entities.Client, len(records))
	for i, rec := range records {
		clients[i] = views.NormalizeClient(rec)
	}
	return clients, nil
}

func (s *DocumentService) fetchDocumentRecords(ctx context.Context, clientName string) ([]entities.DocumentRecord, error) {
	records, err := s.provider.FetchRecords(ctx, providers.Query{
		Collection: constants.CollectionDocuments,
		Equals:     map[string]string{"Name": clientName},
	})
	if err != nil {
		return nil, err
	}

	docs := make([]entities.DocumentRecord, 0, len(records))
	for _, rec := range records {
		doc := views.NormalizeDocument(rec)
		if strings.TrimSpace(doc.Name) == "" {
			continue
		}
		docs = append(docs, doc)
	}
	return docs, nil
}
