package staylens_test

import (
	"encoding/json"
	"testing"

	"github.com/jbialy/staylens"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFlatten(t *testing.T) {
	t.Parallel()

	t.Run("array of scalars becomes one string", func(t *testing.T) {
		t.Parallel()

		n, err := staylens.ParseNode([]byte(`["Wifi","Kitchen","Free parking"]`))
		require.NoError(t, err)

		got := staylens.Flatten(n)
		assert.Equal(t, staylens.String("Wifi, Kitchen, Free parking"), got)
	})

	t.Run("objects inside arrays collapse with colons", func(t *testing.T) {
		t.Parallel()

		n, err := staylens.ParseNode([]byte(`[{"title":"House rules","items":["No smoking","No pets"]}]`))
		require.NoError(t, err)

		got := staylens.Flatten(n)
		assert.Equal(t, staylens.String("House rules: No smoking, No pets"), got)
	})

	t.Run("top-level object keeps keys", func(t *testing.T) {
		t.Parallel()

		n, err := staylens.ParseNode([]byte(`{"title":"Loft","amenities":["Wifi","Pool"],"price":{"display":"$120"}}`))
		require.NoError(t, err)

		got, err := json.Marshal(staylens.Flatten(n))
		require.NoError(t, err)
		assert.Equal(t, `{"title":"Loft","amenities":"Wifi, Pool","price":{"display":"$120"}}`, string(got))
	})

	t.Run("nested objects outside arrays preserve structure one level at a time", func(t *testing.T) {
		t.Parallel()

		n, err := staylens.ParseNode([]byte(`{"a":{"b":{"c":["x","y"]}}}`))
		require.NoError(t, err)

		got, err := json.Marshal(staylens.Flatten(n))
		require.NoError(t, err)
		assert.Equal(t, `{"a":{"b":{"c":"x, y"}}}`, string(got))
	})

	t.Run("scalars pass through", func(t *testing.T) {
		t.Parallel()

		assert.Equal(t, staylens.Number("4.92"), staylens.Flatten(staylens.Number("4.92")))
		assert.Equal(t, staylens.Bool(true), staylens.Flatten(staylens.Bool(true)))
	})

	t.Run("mixed scalar kinds render as text inside arrays", func(t *testing.T) {
		t.Parallel()

		n, err := staylens.ParseNode([]byte(`[1,"two",true,null]`))
		require.NoError(t, err)

		got := staylens.Flatten(n)
		assert.Equal(t, staylens.String("1, two, true, null"), got)
	})
}
