package catalog

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/SychO3/SMAPIDedicatedServerMod/internal/domain"
)

type MockProvider struct {
	mock.Mock
}

func (m *MockProvider) CropData(kind string) (domain.CropMetadata, error) {
	args := m.Called(kind)
	return args.Get(0).(domain.CropMetadata), args.Error(1)
}

func TestCachedProvider_HitsAfterFirstLookup(t *testing.T) {
	next := new(MockProvider)
	next.On("CropData", "472").Return(domain.CropMetadata{Seasons: []string{"spring"}, RegrowDays: -1}, nil).Once()

	p := NewCachedProvider(next, 8, time.Minute)

	for i := 0; i < 3; i++ {
		meta, err := p.CropData("472")
		require.NoError(t, err)
		assert.Equal(t, []string{"spring"}, meta.Seasons)
	}
	assert.Equal(t, 1, p.Len())
	next.AssertExpectations(t)
}

func TestCachedProvider_ErrorsNotCached(t *testing.T) {
	next := new(MockProvider)
	next.On("CropData", "x").Return(domain.CropMetadata{}, domain.ErrCropDataNotFound).Twice()

	p := NewCachedProvider(next, 8, time.Minute)

	_, err := p.CropData("x")
	assert.ErrorIs(t, err, domain.ErrCropDataNotFound)
	_, err = p.CropData("x")
	assert.ErrorIs(t, err, domain.ErrCropDataNotFound)

	assert.Equal(t, 0, p.Len())
	next.AssertExpectations(t)
}

func TestCachedProvider_CallerCannotMutateCache(t *testing.T) {
	next := new(MockProvider)
	next.On("CropData", "472").Return(domain.CropMetadata{Seasons: []string{"spring"}, RegrowDays: -1}, nil).Once()

	p := NewCachedProvider(next, 8, time.Minute)
	meta, _ := p.CropData("472")
	meta.Seasons[0] = "winter"

	meta, _ = p.CropData("472")
	assert.Equal(t, []string{"spring"}, meta.Seasons)
}

func TestCachedProvider_StaleVersionDropped(t *testing.T) {
	next := new(MockProvider)
	next.On("CropData", "472").Return(domain.CropMetadata{Seasons: []string{"spring"}, RegrowDays: -1}, nil).Once()

	p := NewCachedProvider(next, 8, time.Minute)
	p.lru.Add("472", &cachedEntry{Version: "0.1", Metadata: domain.CropMetadata{Seasons: []string{"winter"}}})

	meta, err := p.CropData("472")
	require.NoError(t, err)
	assert.Equal(t, []string{"spring"}, meta.Seasons)
	next.AssertExpectations(t)
}

func TestCachedProvider_Defaults(t *testing.T) {
	p := NewCachedProvider(new(MockProvider), 0, 0)
	assert.NotNil(t, p.lru)

	p.Purge()
	assert.Equal(t, 0, p.Len())
}
