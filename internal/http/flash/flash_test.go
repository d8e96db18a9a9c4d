package flash_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ordersdesk.com/app/internal/http/flash"
	"ordersdesk.com/app/pkg/view"
)

func TestCodec_Decode(t *testing.T) {
	t.Parallel()

	codec := flash.NewCodec([]byte("0123456789abcdef"), "flash", false)
	good, err := codec.Encode(view.Flash{Kind: view.FlashInfo, Message: "Draft orders are not available yet."})
	require.NoError(t, err)

	f, err := codec.Decode(good)
	require.NoError(t, err)
	assert.Equal(t, view.FlashInfo, f.Kind)

	other := flash.NewCodec([]byte("fedcba9876543210"), "flash", false)
	forged, err := other.Encode(view.Flash{Kind: view.FlashError, Message: "forged"})
	require.NoError(t, err)

	empty, err := codec.Encode(view.Flash{Kind: view.FlashInfo})
	require.NoError(t, err)

	for _, bad := range []string{"", "nodot", forged, empty, good + "x"} {
		_, err := codec.Decode(bad)
		assert.ErrorIs(t, err, flash.ErrInvalid, bad)
	}
}
