package goquery_test

import (
	"context"
	"testing"

	"github.com/fwojciec/gostcat"
	"github.com/fwojciec/gostcat/goquery"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLibGostSource_Fetch(t *testing.T) {
	t.Parallel()

	t.Run("extracts news items with anchor or heading titles", func(t *testing.T) {
		t.Parallel()

		page := `<html><body>
<div class="news">
	<a href="/gost/1">ГОСТ 12345-67</a>
	<p>Widgets. Specifications.</p>
</div>
<div class="news">
	<h2>ГОСТ 9</h2>
	<div class="desc">Fittings</div>
</div>
<div class="news">
	<h3></h3>
</div>
</body></html>`

		s := goquery.NewLibGostSource(fixedPageFetcher(page))
		standards, err := s.Fetch(context.Background())

		require.NoError(t, err)
		require.Len(t, standards, 2)
		assert.Equal(t, gostcat.Standard{Name: "ГОСТ 12345-67", Description: "Widgets. Specifications."}, standards[0])
		assert.Equal(t, gostcat.Standard{Name: "ГОСТ 9", Description: "Fittings"}, standards[1])
	})

	t.Run("identity", func(t *testing.T) {
		t.Parallel()

		s := goquery.NewLibGostSource(nil)
		assert.Equal(t, "libgost.ru", s.Name())
		assert.Equal(t, "http://libgost.ru", s.BaseURL())
	})
}
