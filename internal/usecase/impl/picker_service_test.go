package impl

import (
	"context"
	"testing"
	"time"

	"quickdash/internal/domain/entity"
	domainerrors "quickdash/internal/domain/errors"
	"quickdash/internal/infra/storage"
	mockService "quickdash/internal/mocks/service"
	mockUsecase "quickdash/internal/mocks/usecase"
	"quickdash/internal/usecase"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// pickerServiceFixtures holds all test dependencies for map picker tests.
type pickerServiceFixtures struct {
	service   usecase.PickerUsecase
	locations *mockUsecase.MockLocationUsecase
	geocoder  *mockService.MockReverseGeocoder
	state     persistedState
}

func createTestPickerService(t *testing.T) pickerServiceFixtures {
	state := newPersistedState(t, storage.NewMemoryBackend(), "tab-a")
	locations := mockUsecase.NewMockLocationUsecase(t)
	geocoder := mockService.NewMockReverseGeocoder(t)

	cfg := newTestConfig()
	cfg.Geocoding.Debounce = 10 * time.Millisecond

	return pickerServiceFixtures{
		service:   NewPickerService(state.locations, locations, geocoder, cfg, newDiscardLogger()),
		locations: locations,
		geocoder:  geocoder,
		state:     state,
	}
}

func TestPickerService_Open_DefaultsToBengaluru(t *testing.T) {
	fx := createTestPickerService(t)
	fx.geocoder.EXPECT().ReverseGeocode(mock.Anything, mock.Anything, mock.Anything).Return(nil, errors.New("offline")).Maybe()

	session, err := fx.service.Open(context.Background(), entity.PickerModePicker)
	require.NoError(t, err)

	lat, lng := session.Center()
	assert.Equal(t, 12.9716, lat)
	assert.Equal(t, 77.5946, lng)

	got, ok := fx.service.Get(session.ID())
	require.True(t, ok)
	assert.Equal(t, session.ID(), got.ID())
}

func TestPickerService_Open_RecoversStoredBrowsing(t *testing.T) {
	fx := createTestPickerService(t)
	ctx := context.Background()
	fx.geocoder.EXPECT().ReverseGeocode(mock.Anything, mock.Anything, mock.Anything).Return(nil, errors.New("offline")).Maybe()

	require.NoError(t, fx.state.locations.SaveBrowsing(ctx, entity.BrowsingLocation{Latitude: 19.076, Longitude: 72.8777}))

	session, err := fx.service.Open(ctx, entity.PickerModeService)
	require.NoError(t, err)

	lat, lng := session.Center()
	assert.Equal(t, 19.076, lat)
	assert.Equal(t, 72.8777, lng)
}

func TestPickerService_Open_RejectsUnknownMode(t *testing.T) {
	fx := createTestPickerService(t)

	_, err := fx.service.Open(context.Background(), entity.PickerMode("MAP"))
	assert.True(t, errors.Is(err, domainerrors.ErrInvalidInput))
}

func TestPickerService_ServiceConfirmSetsBrowsing(t *testing.T) {
	fx := createTestPickerService(t)
	ctx := context.Background()

	fx.geocoder.EXPECT().
		ReverseGeocode(mock.Anything, 12.9716, 77.5946).
		Return(&entity.GeocodedPlace{FormattedAddress: "Cubbon Park, Bengaluru", City: "Bengaluru"}, nil).
		Maybe()
	fx.geocoder.EXPECT().
		ReverseGeocode(mock.Anything, 12.935, 77.624).
		Return(&entity.GeocodedPlace{FormattedAddress: "Koramangala, Bengaluru, Karnataka", City: "Bengaluru", Pincode: "560034"}, nil)

	session, err := fx.service.Open(ctx, entity.PickerModeService)
	require.NoError(t, err)

	session.MoveTo(12.935, 77.624)
	require.Eventually(t, func() bool {
		place := session.Address()

		return place != nil && place.Pincode == "560034"
	}, 2*time.Second, 5*time.Millisecond)

	fx.locations.EXPECT().
		SetBrowsingLocation(ctx, mock.MatchedBy(func(input *usecase.BrowsingInput) bool {
			return *input.Latitude == 12.935 && input.AreaLabel == "Koramangala" && input.CityName == "Bengaluru"
		})).
		Return(nil)

	picked, err := session.Confirm(ctx)
	require.NoError(t, err)
	assert.Equal(t, "560034", picked.Pincode)

	waited, err := session.Wait(ctx)
	require.NoError(t, err)
	assert.Equal(t, picked, waited)

	_, ok := fx.service.Get(session.ID())
	assert.False(t, ok)
}

func TestPickerService_ConfirmWithoutGeocodeUsesPinnedLocation(t *testing.T) {
	fx := createTestPickerService(t)
	ctx := context.Background()

	fx.geocoder.EXPECT().ReverseGeocode(mock.Anything, mock.Anything, mock.Anything).Return(nil, errors.New("offline")).Maybe()
	fx.locations.EXPECT().
		SetBrowsingLocation(ctx, mock.MatchedBy(func(input *usecase.BrowsingInput) bool {
			return input.AreaLabel == "Pinned Location" && input.CityName == "Unknown"
		})).
		Return(nil)

	session, err := fx.service.Open(ctx, entity.PickerModeService)
	require.NoError(t, err)

	picked, err := session.Confirm(ctx)
	require.NoError(t, err)
	assert.Equal(t, "Pinned Location", picked.Address)
	assert.Equal(t, "Unknown", picked.City)
}

func TestPickerService_PickerModeOnlyResolvesFuture(t *testing.T) {
	fx := createTestPickerService(t)
	ctx := context.Background()
	fx.geocoder.EXPECT().ReverseGeocode(mock.Anything, mock.Anything, mock.Anything).Return(nil, errors.New("offline")).Maybe()

	session, err := fx.service.Open(ctx, entity.PickerModePicker)
	require.NoError(t, err)

	waited := make(chan *entity.PickedLocation, 1)
	go func() {
		picked, _ := session.Wait(ctx)
		waited <- picked
	}()

	// No SetBrowsingLocation expectation: PICKER mode never writes the location.
	_, err = session.Confirm(ctx)
	require.NoError(t, err)

	select {
	case picked := <-waited:
		require.NotNil(t, picked)
		assert.Equal(t, 12.9716, picked.Latitude)
	case <-time.After(2 * time.Second):
		t.Fatal("future was not resolved")
	}
}

func TestPickerService_Cancel(t *testing.T) {
	fx := createTestPickerService(t)
	ctx := context.Background()
	fx.geocoder.EXPECT().ReverseGeocode(mock.Anything, mock.Anything, mock.Anything).Return(nil, errors.New("offline")).Maybe()

	session, err := fx.service.Open(ctx, entity.PickerModeService)
	require.NoError(t, err)

	session.Cancel()

	_, err = session.Wait(ctx)
	assert.True(t, errors.Is(err, domainerrors.ErrPickerCancelled))

	// A cancelled picker stays cancelled.
	_, err = session.Confirm(ctx)
	assert.True(t, errors.Is(err, domainerrors.ErrPickerCancelled))
}

func TestPickerService_MoveToIgnoresInvalidCoordinates(t *testing.T) {
	fx := createTestPickerService(t)
	fx.geocoder.EXPECT().ReverseGeocode(mock.Anything, mock.Anything, mock.Anything).Return(nil, errors.New("offline")).Maybe()

	session, err := fx.service.Open(context.Background(), entity.PickerModePicker)
	require.NoError(t, err)

	session.MoveTo(95, 10)

	lat, _ := session.Center()
	assert.Equal(t, 12.9716, lat)
}

func TestPickerService_AbandonedSessionsExpire(t *testing.T) {
	fx := createTestPickerService(t)
	ctx := context.Background()
	fx.geocoder.EXPECT().ReverseGeocode(mock.Anything, mock.Anything, mock.Anything).Return(nil, errors.New("offline")).Maybe()

	clock := time.Date(2026, 10, 15, 9, 0, 0, 0, time.UTC)
	srv := fx.service.(*pickerService)
	srv.now = func() time.Time { return clock }

	abandoned, err := fx.service.Open(ctx, entity.PickerModePicker)
	require.NoError(t, err)

	clock = clock.Add(10 * time.Minute)
	fresh, err := fx.service.Open(ctx, entity.PickerModePicker)
	require.NoError(t, err)

	_, ok := fx.service.Get(abandoned.ID())
	assert.True(t, ok, "session within its TTL stays open")

	clock = clock.Add(6 * time.Minute)

	_, ok = fx.service.Get(abandoned.ID())
	assert.False(t, ok)
	_, err = abandoned.Wait(ctx)
	assert.True(t, errors.Is(err, domainerrors.ErrPickerCancelled))

	_, ok = fx.service.Get(fresh.ID())
	assert.True(t, ok)

	srv.mu.Lock()
	assert.Len(t, srv.sessions, 1)
	srv.mu.Unlock()
}

func TestPickerService_CancelWaitsForInFlightConfirm(t *testing.T) {
	fx := createTestPickerService(t)
	ctx := context.Background()
	fx.geocoder.EXPECT().ReverseGeocode(mock.Anything, mock.Anything, mock.Anything).Return(nil, errors.New("offline")).Maybe()

	writing := make(chan struct{})
	release := make(chan struct{})
	fx.locations.EXPECT().
		SetBrowsingLocation(mock.Anything, mock.Anything).
		Run(func(context.Context, *usecase.BrowsingInput) {
			close(writing)
			<-release
		}).
		Return(nil).
		Once()

	session, err := fx.service.Open(ctx, entity.PickerModeService)
	require.NoError(t, err)

	type outcome struct {
		picked *entity.PickedLocation
		err    error
	}
	confirmed := make(chan outcome, 1)
	go func() {
		picked, err := session.Confirm(ctx)
		confirmed <- outcome{picked, err}
	}()

	<-writing
	cancelled := make(chan struct{})
	go func() {
		session.Cancel()
		close(cancelled)
	}()

	select {
	case <-cancelled:
		t.Fatal("cancel returned while the browsing location was being written")
	case <-time.After(50 * time.Millisecond):
	}

	close(release)

	result := <-confirmed
	require.NoError(t, result.err)
	assert.Equal(t, 12.9716, result.picked.Latitude)

	select {
	case <-cancelled:
	case <-time.After(2 * time.Second):
		t.Fatal("cancel never returned")
	}

	picked, err := session.Wait(ctx)
	require.NoError(t, err)
	assert.Equal(t, result.picked, picked)
}
