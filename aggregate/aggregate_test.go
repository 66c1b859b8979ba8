package aggregate_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/fwojciec/gostcat"
	"github.com/fwojciec/gostcat/aggregate"
	"github.com/fwojciec/gostcat/goquery"
	"github.com/fwojciec/gostcat/mock"
	"github.com/fwojciec/gostcat/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func staticSource(name string, standards []gostcat.Standard, err error) *mock.Source {
	return &mock.Source{
		NameFn:    func() string { return name },
		BaseURLFn: func() string { return "https://" + name },
		FetchFn: func(ctx context.Context) ([]gostcat.Standard, error) {
			return standards, err
		},
	}
}

func registryOf(t *testing.T, sources ...gostcat.Source) *goquery.Registry {
	t.Helper()
	r := goquery.NewRegistry()
	for _, src := range sources {
		require.NoError(t, r.Register(src))
	}
	return r
}

func setupStore(t *testing.T) gostcat.StandardService {
	t.Helper()
	db := sqlite.NewDB(":memory:")
	require.NoError(t, db.Open())
	t.Cleanup(func() { db.Close() })
	return sqlite.NewStandardService(db)
}

func TestAggregator_FetchAll(t *testing.T) {
	t.Parallel()

	t.Run("combines results in registry order", func(t *testing.T) {
		t.Parallel()

		agg := &aggregate.Aggregator{
			Sources: registryOf(t,
				staticSource("a.ru", []gostcat.Standard{{Name: "ГОСТ 1"}}, nil),
				staticSource("b.ru", []gostcat.Standard{{Name: "ГОСТ 2"}}, nil),
			),
		}

		all, err := agg.FetchAll(context.Background())
		require.NoError(t, err)
		require.Len(t, all, 2)
		assert.Equal(t, "ГОСТ 1", all[0].Name)
		assert.Equal(t, "ГОСТ 2", all[1].Name)
	})

	t.Run("a failing origin does not block the others", func(t *testing.T) {
		t.Parallel()

		agg := &aggregate.Aggregator{
			Sources: registryOf(t,
				staticSource("broken.ru", nil, errors.New("connection refused")),
				staticSource("a.ru", []gostcat.Standard{{Name: "ГОСТ 1"}}, nil),
				staticSource("b.ru", []gostcat.Standard{{Name: "ГОСТ 2"}}, nil),
			),
		}

		all, err := agg.FetchAll(context.Background())
		require.NoError(t, err)
		assert.Len(t, all, 2)
	})

	t.Run("a panicking origin does not abort the batch", func(t *testing.T) {
		t.Parallel()

		panicking := &mock.Source{
			NameFn:    func() string { return "defective.ru" },
			BaseURLFn: func() string { return "https://defective.ru" },
			FetchFn: func(ctx context.Context) ([]gostcat.Standard, error) {
				panic("nil dereference in parser")
			},
		}
		agg := &aggregate.Aggregator{
			Sources: registryOf(t,
				panicking,
				staticSource("a.ru", []gostcat.Standard{{Name: "ГОСТ 1"}}, nil),
			),
		}

		all, err := agg.FetchAll(context.Background())
		require.NoError(t, err)
		assert.Len(t, all, 1)
	})

	t.Run("a slow origin is cut off by the fetch timeout", func(t *testing.T) {
		t.Parallel()

		slow := &mock.Source{
			NameFn:    func() string { return "slow.ru" },
			BaseURLFn: func() string { return "https://slow.ru" },
			FetchFn: func(ctx context.Context) ([]gostcat.Standard, error) {
				<-ctx.Done()
				return nil, ctx.Err()
			},
		}
		agg := &aggregate.Aggregator{
			Sources: registryOf(t,
				slow,
				staticSource("a.ru", []gostcat.Standard{{Name: "ГОСТ 1"}}, nil),
			),
			FetchTimeout: 10 * time.Millisecond,
		}

		all, err := agg.FetchAll(context.Background())
		require.NoError(t, err)
		assert.Len(t, all, 1)
	})
}

func TestAggregator_MergeAndPersist(t *testing.T) {
	t.Parallel()

	t.Run("first registered origin wins on duplicate names", func(t *testing.T) {
		t.Parallel()

		store := setupStore(t)
		agg := &aggregate.Aggregator{
			Sources: registryOf(t,
				staticSource("a.ru", []gostcat.Standard{{Name: "ГОСТ 1", Description: "X"}}, nil),
				staticSource("b.ru", []gostcat.Standard{{Name: "ГОСТ 1", Description: "Y"}}, nil),
			),
			Standards: store,
		}

		report, err := agg.MergeAndPersist(context.Background())
		require.NoError(t, err)
		assert.Equal(t, 2, report.Fetched)
		assert.Equal(t, 1, report.Unique)
		assert.Equal(t, 1, report.Inserted)

		got, err := store.SearchSubstring(context.Background(), "ГОСТ 1")
		require.NoError(t, err)
		require.Len(t, got, 1)
		assert.Equal(t, "X", got[0].Description)
	})

	t.Run("second refresh with unchanged sources inserts nothing", func(t *testing.T) {
		t.Parallel()

		store := setupStore(t)
		agg := &aggregate.Aggregator{
			Sources: registryOf(t,
				staticSource("a.ru", []gostcat.Standard{
					{Name: "ГОСТ 1", Description: "X"},
					{Name: "ГОСТ 2", Description: "Y"},
				}, nil),
			),
			Standards: store,
		}
		ctx := context.Background()

		first, err := agg.MergeAndPersist(ctx)
		require.NoError(t, err)
		assert.Equal(t, 2, first.Inserted)

		second, err := agg.MergeAndPersist(ctx)
		require.NoError(t, err)
		assert.Equal(t, 0, second.Inserted)
	})

	t.Run("drops and counts candidates with empty names", func(t *testing.T) {
		t.Parallel()

		store := setupStore(t)
		agg := &aggregate.Aggregator{
			Sources: registryOf(t,
				staticSource("a.ru", []gostcat.Standard{
					{Name: "   ", Description: "orphan"},
					{Name: "ГОСТ 1"},
				}, nil),
			),
			Standards: store,
		}

		report, err := agg.MergeAndPersist(context.Background())
		require.NoError(t, err)
		assert.Equal(t, 1, report.Dropped)
		assert.Equal(t, 1, report.Inserted)
	})

	t.Run("reports the per-origin breakdown with contained errors", func(t *testing.T) {
		t.Parallel()

		store := setupStore(t)
		agg := &aggregate.Aggregator{
			Sources: registryOf(t,
				staticSource("a.ru", []gostcat.Standard{{Name: "ГОСТ 1"}}, nil),
				staticSource("broken.ru", nil, errors.New("connection refused")),
			),
			Standards: store,
		}

		report, err := agg.MergeAndPersist(context.Background())
		require.NoError(t, err)
		assert.NotEmpty(t, report.RunID)
		require.Len(t, report.Origins, 2)
		assert.Equal(t, "a.ru", report.Origins[0].Name)
		assert.NoError(t, report.Origins[0].Err)
		assert.Equal(t, "broken.ru", report.Origins[1].Name)
		assert.Error(t, report.Origins[1].Err)
		assert.Equal(t, 1, report.Inserted)
	})

	t.Run("keeps partial records from a partially failed origin", func(t *testing.T) {
		t.Parallel()

		store := setupStore(t)
		agg := &aggregate.Aggregator{
			Sources: registryOf(t,
				staticSource("partial.ru",
					[]gostcat.Standard{{Name: "ГОСТ 1"}}, errors.New("truncated response")),
			),
			Standards: store,
		}

		report, err := agg.MergeAndPersist(context.Background())
		require.NoError(t, err)
		assert.Equal(t, 1, report.Inserted)
	})

	t.Run("surfaces a store failure", func(t *testing.T) {
		t.Parallel()

		failing := &mock.StandardService{
			UpsertStandardsFn: func(ctx context.Context, standards []gostcat.Standard) (int, error) {
				return 0, gostcat.Errorf(gostcat.EUNAVAILABLE, "standard storage: disk gone")
			},
		}
		agg := &aggregate.Aggregator{
			Sources: registryOf(t,
				staticSource("a.ru", []gostcat.Standard{{Name: "ГОСТ 1"}}, nil),
			),
			Standards: failing,
		}

		_, err := agg.MergeAndPersist(context.Background())
		require.Error(t, err)
		assert.Equal(t, gostcat.EUNAVAILABLE, gostcat.ErrorCode(err))
	})
}

func TestAggregator_RefreshSource(t *testing.T) {
	t.Parallel()

	store := setupStore(t)
	src := staticSource("a.ru", []gostcat.Standard{
		{Name: "ГОСТ 1", Description: "X"},
		{Name: "ГОСТ 1", Description: "duplicate"},
	}, nil)
	agg := &aggregate.Aggregator{
		Sources:   registryOf(t, src),
		Standards: store,
	}

	report, err := agg.RefreshSource(context.Background(), src)
	require.NoError(t, err)
	require.Len(t, report.Origins, 1)
	assert.Equal(t, "a.ru", report.Origins[0].Name)
	assert.Equal(t, 1, report.Inserted)
}

func TestAggregator_FetchOne(t *testing.T) {
	t.Parallel()

	agg := &aggregate.Aggregator{}
	src := staticSource("a.ru", []gostcat.Standard{{Name: "ГОСТ 1"}}, nil)

	standards := agg.FetchOne(context.Background(), src)
	require.Len(t, standards, 1)
	assert.Equal(t, "ГОСТ 1", standards[0].Name)
}
