package avatax

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// stubEntityLister records lookups and returns a canned result.
type stubEntityLister struct {
	result *FetchResult[EntityUseCodeModel]
	err    error
	calls  int
}

func (s *stubEntityLister) ListEntityUseCodes(ctx context.Context, code string) (*FetchResult[EntityUseCodeModel], error) {
	s.calls++
	if s.err != nil {
		return nil, s.err
	}
	return s.result, nil
}

func TestMatchEntityUseCode_AbsentCodeSkipsLookup(t *testing.T) {
	stub := &stubEntityLister{}

	code, err := matchEntityUseCode(context.Background(), stub, nil)
	require.NoError(t, err)
	assert.Equal(t, "", code)

	code, err = matchEntityUseCode(context.Background(), stub, strPtr(""))
	require.NoError(t, err)
	assert.Equal(t, "", code)

	assert.Equal(t, 0, stub.calls, "absent codes must not hit the provider")
}

func TestMatchEntityUseCode_Recognized(t *testing.T) {
	stub := &stubEntityLister{
		result: &FetchResult[EntityUseCodeModel]{
			Count: 1,
			Value: []EntityUseCodeModel{{Code: "G", Name: "Resale"}},
		},
	}

	code, err := matchEntityUseCode(context.Background(), stub, strPtr("G"))
	require.NoError(t, err)
	assert.Equal(t, "G", code)
	assert.Equal(t, 1, stub.calls)
}

func TestMatchEntityUseCode_UnrecognizedResolvesEmpty(t *testing.T) {
	stub := &stubEntityLister{result: &FetchResult[EntityUseCodeModel]{}}

	code, err := matchEntityUseCode(context.Background(), stub, strPtr("BOGUS"))
	require.NoError(t, err)
	assert.Equal(t, "", code)
}

func TestMatchEntityUseCode_LookupFailurePropagates(t *testing.T) {
	stub := &stubEntityLister{err: errors.New("status 503")}

	_, err := matchEntityUseCode(context.Background(), stub, strPtr("G"))
	assert.Error(t, err)
}
