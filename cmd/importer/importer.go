package main

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"sync/atomic"

	crerr "github.com/cockroachdb/errors"
	"github.com/panjf2000/ants/v2"
	"github.com/riskibarqy/batting-insights/internal/domain/battedball"
	"github.com/riskibarqy/batting-insights/internal/infrastructure/repository/csvfile"
	idgen "github.com/riskibarqy/batting-insights/internal/platform/id"
	"github.com/riskibarqy/batting-insights/internal/platform/logging"
	"github.com/sourcegraph/conc/pool"
)

type hitInserter interface {
	InsertHits(ctx context.Context, batchID string, hits []battedball.Hit) (int64, error)
}

type importer struct {
	store     hitInserter
	batchSize int
	workers   int
	logger    *logging.Logger
	ids       idgen.Generator
}

type importResult struct {
	BatchID  string
	Parsed   int
	Inserted int64
	Batches  int
}

type parsedFile struct {
	index int
	hits  []battedball.Hit
}

func newImporter(store hitInserter, batchSize, workers int, logger *logging.Logger) *importer {
	if logger == nil {
		logger = logging.Default()
	}
	return &importer{
		store:     store,
		batchSize: batchSize,
		workers:   workers,
		logger:    logger,
		ids:       idgen.NewUUIDGenerator(),
	}
}

// Run parses every path before writing anything, so one bad file leaves the table untouched.
func (im *importer) Run(ctx context.Context, paths []string) (importResult, error) {
	if len(paths) == 0 {
		return importResult{}, fmt.Errorf("at least one csv path is required")
	}

	hits, err := im.parseAll(ctx, paths)
	if err != nil {
		return importResult{}, err
	}

	batchID, err := im.ids.NewID()
	if err != nil {
		return importResult{}, err
	}

	result := importResult{BatchID: batchID, Parsed: len(hits)}
	batches := splitBatches(hits, im.batchSize)
	result.Batches = len(batches)

	inserted, err := im.insertAll(ctx, result.BatchID, batches)
	result.Inserted = inserted
	if err != nil {
		return result, err
	}

	return result, nil
}

func (im *importer) parseAll(ctx context.Context, paths []string) ([]battedball.Hit, error) {
	p := pool.NewWithResults[parsedFile]().
		WithErrors().
		WithContext(ctx).
		WithCancelOnError().
		WithMaxGoroutines(im.workers)

	for i, path := range paths {
		p.Go(func(ctx context.Context) (parsedFile, error) {
			hits, err := csvfile.NewHitRepository(path).ListHits(ctx)
			if err != nil {
				return parsedFile{}, err
			}
			im.logger.Info("csv parsed", "path", path, "hits", len(hits))
			return parsedFile{index: i, hits: hits}, nil
		})
	}

	files, err := p.Wait()
	if err != nil {
		return nil, err
	}

	sort.Slice(files, func(i, j int) bool { return files[i].index < files[j].index })

	total := 0
	for _, f := range files {
		total += len(f.hits)
	}
	out := make([]battedball.Hit, 0, total)
	for _, f := range files {
		out = append(out, f.hits...)
	}
	return out, nil
}

func (im *importer) insertAll(ctx context.Context, batchID string, batches [][]battedball.Hit) (int64, error) {
	if len(batches) == 0 {
		return 0, nil
	}

	workerPool, err := ants.NewPool(im.workers)
	if err != nil {
		return 0, fmt.Errorf("create worker pool: %w", err)
	}
	defer workerPool.Release()

	var (
		inserted atomic.Int64
		workers  sync.WaitGroup
		mu       sync.Mutex
		errs     error
	)
	for i, batch := range batches {
		workers.Add(1)
		if err := workerPool.Submit(func() {
			defer workers.Done()

			n, err := im.store.InsertHits(ctx, batchID, batch)
			if err != nil {
				im.logger.Error("insert batch failed", "batch", i, "rows", len(batch), "error", err)
				mu.Lock()
				errs = crerr.CombineErrors(errs, fmt.Errorf("batch %d: %w", i, err))
				mu.Unlock()
				return
			}
			inserted.Add(n)
		}); err != nil {
			workers.Done()
			workers.Wait()
			return inserted.Load(), fmt.Errorf("submit batch to worker pool: %w", err)
		}
	}

	workers.Wait()
	return inserted.Load(), errs
}

// splitBatches chunks hits into slices of at most size entries without copying.
func splitBatches(hits []battedball.Hit, size int) [][]battedball.Hit {
	if size < 1 {
		size = 1
	}
	out := make([][]battedball.Hit, 0, (len(hits)+size-1)/size)
	for start := 0; start < len(hits); start += size {
		end := min(start+size, len(hits))
		out = append(out, hits[start:end:end])
	}
	return out
}
