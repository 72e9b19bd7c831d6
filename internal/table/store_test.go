package table_test

import (
	"context"
	"net/http"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/handiism/artic-table/internal/artic"
	apihttp "github.com/handiism/artic-table/internal/http"
	"github.com/handiism/artic-table/internal/table"
	"github.com/handiism/artic-table/internal/testutil"
)

func newStore(t *testing.T, total int, strategy artic.Strategy) (*table.Store, *testutil.MockUpstream) {
	t.Helper()
	mock := testutil.NewMockUpstream(total)
	t.Cleanup(mock.Close)

	client := artic.NewClient(apihttp.NewClient("artic-table-test", 5*time.Second), mock.BaseURL(), nil)
	store := table.NewStore(12, table.Executor{
		Loader:   artic.NewPageLoader(client, 12),
		Gatherer: artic.NewGatherer(client, artic.GatherConfig{Strategy: strategy, PageSize: 12}, nil),
	})
	return store, mock
}

func TestStore_Paging(t *testing.T) {
	store, _ := newStore(t, 40, artic.StrategyWave)
	ctx := context.Background()

	s := store.Init(ctx)
	assert.False(t, s.Loading)
	assert.Len(t, s.Rows, 12)
	assert.Equal(t, 40, s.Total)

	s = store.Dispatch(ctx, table.PageChanged{Page: 4})
	assert.Equal(t, 4, s.Page)
	assert.Len(t, s.Rows, 4)
	assert.Equal(t, 37, s.Rows[0].ID)
	assert.Equal(t, 40, s.Total)
}

func TestStore_FailedPageShowsEmpty(t *testing.T) {
	store, mock := newStore(t, 40, artic.StrategyWave)
	mock.FailPage(2, http.StatusServiceUnavailable)
	ctx := context.Background()

	store.Init(ctx)
	s := store.Dispatch(ctx, table.PageChanged{Page: 2})
	assert.False(t, s.Loading)
	assert.Empty(t, s.Rows)
	assert.Equal(t, 40, s.Total, "total survives a failed load")
}

func TestStore_BulkSequential(t *testing.T) {
	store, mock := newStore(t, 400, artic.StrategySequential)
	ctx := context.Background()

	store.Init(ctx)
	store.Dispatch(ctx, table.RowToggled{Artwork: store.State().Rows[0]})
	store.Dispatch(ctx, table.PopoverToggled{})
	store.Dispatch(ctx, table.BulkInputChanged{Text: "25"})

	before := mock.RequestCount()
	s := store.Dispatch(ctx, table.BulkSubmitted{})

	assert.Equal(t, 3, mock.RequestCount()-before)
	assert.Equal(t, testutil.IDs(25), s.Selection.IDs())
	assert.False(t, s.PopoverOpen)
	assert.Empty(t, s.BulkInput)
	assert.False(t, s.Gathering)
}

func TestStore_BulkInvalidIssuesNoRequest(t *testing.T) {
	store, mock := newStore(t, 40, artic.StrategyWave)
	ctx := context.Background()
	store.Init(ctx)

	for _, input := range []string{"0", "-5", "abc"} {
		store.Dispatch(ctx, table.BulkInputChanged{Text: input})
		before := mock.RequestCount()
		s := store.Dispatch(ctx, table.BulkSubmitted{})
		assert.Equal(t, before, mock.RequestCount(), input)
		assert.Zero(t, s.Selection.Len(), input)
		assert.Equal(t, input, s.BulkInput, input)
	}
}

func TestStore_DispatchBatch(t *testing.T) {
	store, mock := newStore(t, 400, artic.StrategyWave)
	ctx := context.Background()
	store.Init(ctx)

	before := mock.RequestCount()
	s := store.DispatchBatch(ctx, table.BulkInputChanged{Text: "5"}, table.BulkSubmitted{})

	assert.Equal(t, 1, mock.RequestCount()-before)
	assert.Equal(t, testutil.IDs(5), s.Selection.IDs())
	assert.Empty(t, s.BulkInput)
	assert.False(t, s.Gathering)
}

func TestStore_ConcurrentBulkBatches(t *testing.T) {
	store, mock := newStore(t, 400, artic.StrategyWave)
	ctx := context.Background()
	store.Init(ctx)

	var wg sync.WaitGroup
	for _, count := range []string{"3", "7", "11", "150"} {
		wg.Add(1)
		go func() {
			defer wg.Done()
			store.DispatchBatch(ctx, table.BulkInputChanged{Text: count}, table.BulkSubmitted{})
		}()
	}
	wg.Wait()

	// Each batch gathers its own count: one 100-row page for each small
	// count and two for 150.
	batches := 0
	for _, q := range mock.Requests() {
		if q.Get("limit") == "100" {
			batches++
		}
	}
	assert.Equal(t, 5, batches)

	selection := store.State().Selection
	final := selection.Len()
	assert.Contains(t, []int{3, 7, 11, 150}, final)
	assert.False(t, store.State().Gathering)
	assert.Empty(t, store.State().BulkInput)
}

func TestStore_ConcurrentPageChanges(t *testing.T) {
	store, mock := newStore(t, 400, artic.StrategyWave)
	ctx := context.Background()
	store.Init(ctx)

	var wg sync.WaitGroup
	for p := 2; p <= 6; p++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			store.Dispatch(ctx, table.PageChanged{Page: p})
		}()
	}
	wg.Wait()

	s := store.State()
	require.Len(t, s.Rows, 12)
	assert.False(t, s.Loading)
	assert.Equal(t, 6, mock.RequestCount(), "page changes are not de-duplicated")
	first := s.Rows[0].ID
	assert.Zero(t, (first-1)%12, "rows are one whole page: first id %d", first)
}

func TestStore_StateIsSnapshot(t *testing.T) {
	store, _ := newStore(t, 40, artic.StrategyWave)
	ctx := context.Background()
	s := store.Init(ctx)

	s.Selection.Add(s.Rows[0])
	snapshot := store.State()
	assert.Zero(t, snapshot.Selection.Len(), "snapshot must not alias store state")
}
