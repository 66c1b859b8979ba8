package slog_test

import (
	"bytes"
	"context"
	"log/slog"
	"testing"

	"github.com/fwojciec/gostcat"
	"github.com/fwojciec/gostcat/mock"
	gostslog "github.com/fwojciec/gostcat/slog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoggingSearcher_Search(t *testing.T) {
	t.Parallel()

	t.Run("logs query with result count", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		logger := slog.New(slog.NewTextHandler(&buf, nil))
		inner := &mock.Searcher{
			SearchFn: func(ctx context.Context, query string) ([]gostcat.Standard, error) {
				return []gostcat.Standard{{Name: "ГОСТ 12345-67"}}, nil
			},
		}

		searcher := gostslog.NewLoggingSearcher(inner, logger)
		standards, err := searcher.Search(context.Background(), "12345")

		require.NoError(t, err)
		assert.Len(t, standards, 1)
		output := buf.String()
		assert.Contains(t, output, "catalog search")
		assert.Contains(t, output, "query=12345")
		assert.Contains(t, output, "count=1")
	})

	t.Run("logs error on failure", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		logger := slog.New(slog.NewTextHandler(&buf, nil))
		inner := &mock.Searcher{
			SearchFn: func(ctx context.Context, query string) ([]gostcat.Standard, error) {
				return nil, gostcat.Errorf(gostcat.EUNAVAILABLE, "standard storage: locked")
			},
		}

		searcher := gostslog.NewLoggingSearcher(inner, logger)
		_, err := searcher.Search(context.Background(), "12345")

		require.Error(t, err)
		assert.Contains(t, buf.String(), "catalog search")
		assert.Contains(t, buf.String(), "err=")
	})
}
