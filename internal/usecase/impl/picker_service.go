package impl

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"quickdash/config"
	deliverycontext "quickdash/internal/delivery/context"
	"quickdash/internal/domain/entity"
	domainerrors "quickdash/internal/domain/errors"
	"quickdash/internal/domain/repository"
	"quickdash/internal/domain/service"
	"quickdash/internal/usecase"

	"github.com/bep/debounce"
	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// Bengaluru city centre.
const (
	defaultPickerLat = 12.9716
	defaultPickerLng = 77.5946

	pinnedLocation = "Pinned Location"
	unknownCity    = "Unknown"
	geocodeTimeout = 10 * time.Second
)

// pickerService implements the PickerUsecase interface.
type pickerService struct {
	locationRepo repository.LocationRepository
	locations    usecase.LocationUsecase
	geocoder     service.ReverseGeocoder
	debounce     time.Duration
	ttl          time.Duration
	now          func() time.Time
	logger       *slog.Logger

	mu       sync.Mutex
	sessions map[string]*pickerSession
}

// NewPickerService is the constructor for pickerService.
func NewPickerService(
	locationRepo repository.LocationRepository,
	locations usecase.LocationUsecase,
	geocoder service.ReverseGeocoder,
	cfg *config.Config,
	logger *slog.Logger,
) usecase.PickerUsecase {
	return &pickerService{
		locationRepo: locationRepo,
		locations:    locations,
		geocoder:     geocoder,
		debounce:     cfg.Geocoding.Debounce,
		ttl:          cfg.Geocoding.PickerTTL,
		now:          time.Now,
		logger:       logger,
		sessions:     make(map[string]*pickerSession),
	}
}

func (srv *pickerService) Open(ctx context.Context, mode entity.PickerMode) (usecase.PickerSession, error) {
	if mode == "" {
		mode = entity.PickerModeService
	}
	if mode != entity.PickerModeService && mode != entity.PickerModePicker {
		return nil, domainerrors.ErrInvalidInput.WithDetails("unknown picker mode " + string(mode))
	}

	srv.expireAbandoned()

	lat, lng := defaultPickerLat, defaultPickerLng
	browsing, err := srv.locationRepo.LoadBrowsing(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load browsing location")
	}
	if browsing != nil {
		lat, lng = browsing.Latitude, browsing.Longitude
	}

	session := &pickerSession{
		id:       uuid.NewString(),
		mode:     mode,
		lat:      lat,
		lng:      lng,
		service:  srv,
		openedAt: srv.now(),
		base:     context.WithoutCancel(ctx),
		debounce: debounce.New(srv.debounce),
		done:     make(chan struct{}),
	}

	srv.mu.Lock()
	srv.sessions[session.id] = session
	srv.mu.Unlock()

	deliverycontext.GetLoggerOrDefault(ctx, srv.logger).Info("Map picker opened",
		slog.String("picker_id", session.id),
		slog.String("mode", string(mode)),
	)

	session.scheduleGeocode(lat, lng)

	return session, nil
}

func (srv *pickerService) Get(id string) (usecase.PickerSession, bool) {
	srv.expireAbandoned()

	srv.mu.Lock()
	defer srv.mu.Unlock()

	session, ok := srv.sessions[id]
	if !ok {
		return nil, false
	}

	return session, true
}

// expireAbandoned cancels sessions left open longer than the configured TTL.
func (srv *pickerService) expireAbandoned() {
	now := srv.now()

	srv.mu.Lock()
	var stale []*pickerSession
	for _, session := range srv.sessions {
		if session.expired(now, srv.ttl) {
			stale = append(stale, session)
		}
	}
	srv.mu.Unlock()

	for _, session := range stale {
		srv.logger.Info("Map picker expired", slog.String("picker_id", session.id))
		session.settle(nil, domainerrors.ErrPickerCancelled.WithDetails("picker expired"))
	}
}

func (srv *pickerService) forget(id string) {
	srv.mu.Lock()
	delete(srv.sessions, id)
	srv.mu.Unlock()
}

// pickerSession is a future resolved by Confirm, Cancel or expiry.
type pickerSession struct {
	id       string
	mode     entity.PickerMode
	service  *pickerService
	openedAt time.Time
	base     context.Context
	debounce func(func())

	// settling serializes Confirm with Cancel so a cancelled picker never writes.
	settling sync.Mutex

	mu      sync.Mutex
	lat     float64
	lng     float64
	address *entity.GeocodedPlace

	once   sync.Once
	done   chan struct{}
	result *entity.PickedLocation
	err    error
}

func (s *pickerSession) ID() string {
	return s.id
}

func (s *pickerSession) Mode() entity.PickerMode {
	return s.mode
}

func (s *pickerSession) expired(now time.Time, ttl time.Duration) bool {
	return ttl > 0 && now.Sub(s.openedAt) > ttl
}

func (s *pickerSession) Center() (lat, lng float64) {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.lat, s.lng
}

func (s *pickerSession) MoveTo(lat, lng float64) {
	if !entity.ValidCoordinates(lat, lng) {
		s.service.logger.Warn("Ignoring picker move outside valid range",
			slog.Float64("lat", lat),
			slog.Float64("lng", lng),
		)

		return
	}

	s.mu.Lock()
	s.lat, s.lng = lat, lng
	s.address = nil
	s.mu.Unlock()

	s.scheduleGeocode(lat, lng)
}

func (s *pickerSession) scheduleGeocode(lat, lng float64) {
	s.debounce(func() {
		ctx, cancel := context.WithTimeout(s.base, geocodeTimeout)
		defer cancel()

		place, err := s.service.geocoder.ReverseGeocode(ctx, lat, lng)
		if err != nil {
			s.service.logger.Warn("Picker reverse geocoding failed", slog.String("picker_id", s.id), slog.Any("error", err))

			return
		}

		s.mu.Lock()
		defer s.mu.Unlock()

		// The pin moved again while the lookup was in flight.
		if s.lat != lat || s.lng != lng {
			return
		}
		s.address = place
	})
}

func (s *pickerSession) Address() *entity.GeocodedPlace {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.address == nil {
		return nil
	}
	place := *s.address

	return &place
}

func (s *pickerSession) Confirm(ctx context.Context) (*entity.PickedLocation, error) {
	s.settling.Lock()
	defer s.settling.Unlock()

	select {
	case <-s.done:
		return s.result, s.err
	default:
	}

	lat, lng := s.Center()
	place := s.Address()

	picked := &entity.PickedLocation{
		Latitude:  lat,
		Longitude: lng,
		Address:   pinnedLocation,
		City:      unknownCity,
	}
	if place != nil {
		picked.Address = firstNonEmpty(place.FormattedAddress, pinnedLocation)
		picked.City = firstNonEmpty(place.City, unknownCity)
		picked.Pincode = place.Pincode
	}

	if s.mode == entity.PickerModeService {
		var city, formatted string
		if place != nil {
			city, formatted = place.City, place.FormattedAddress
		}

		err := s.service.locations.SetBrowsingLocation(ctx, &usecase.BrowsingInput{
			Latitude:         &lat,
			Longitude:        &lng,
			CityName:         firstNonEmpty(city, unknownCity),
			AreaLabel:        firstNonEmpty(firstSegment(formatted), city, pinnedLocation),
			FormattedAddress: picked.Address,
		})
		if err != nil {
			return nil, err
		}
	}

	s.resolve(picked, nil)

	deliverycontext.GetLoggerOrDefault(ctx, s.service.logger).Info("Map picker confirmed",
		slog.String("picker_id", s.id),
		slog.Float64("lat", lat),
		slog.Float64("lng", lng),
	)

	return s.result, s.err
}

func (s *pickerSession) Cancel() {
	s.settle(nil, domainerrors.ErrPickerCancelled)
}

func (s *pickerSession) settle(result *entity.PickedLocation, err error) {
	s.settling.Lock()
	defer s.settling.Unlock()

	s.resolve(result, err)
}

func (s *pickerSession) Wait(ctx context.Context) (*entity.PickedLocation, error) {
	select {
	case <-s.done:
		return s.result, s.err
	case <-ctx.Done():
		return nil, errors.Wrap(ctx.Err(), "waiting for map picker")
	}
}

func (s *pickerSession) resolve(result *entity.PickedLocation, err error) {
	s.once.Do(func() {
		s.result, s.err = result, err
		close(s.done)
		s.service.forget(s.id)
	})
}
