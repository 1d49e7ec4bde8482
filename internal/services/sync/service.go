package sync

import (
	"context"
	"errors"
	gosync "sync"
	"time"

	"github.com/rs/zerolog"

	"github.com/aimafia/coordinator/internal/models"
	"github.com/aimafia/coordinator/internal/notify"
	roomRepo "github.com/aimafia/coordinator/internal/repositories/room"
)

const (
	defaultPollInterval = time.Second
	defaultPollTTL      = 2 * time.Minute
)

// service implements the Service interface
type service struct {
	config   *Config
	roomRepo roomRepo.Repository
	notifier notify.Notifier
	logger   zerolog.Logger

	// base context shared by every poller, cancelled by Stop
	baseCtx    context.Context
	baseCancel context.CancelFunc

	mu      gosync.Mutex
	pollers map[string]context.CancelFunc
	wg      gosync.WaitGroup
}

// New creates a new sync service
func New(cfg *Config) (*service, error) {
	if cfg == nil {
		return nil, ErrNilConfig
	}
	if cfg.RoomRepo == nil {
		return nil, ErrNilRoomRepo
	}
	if cfg.Notifier == nil {
		return nil, ErrNilNotifier
	}

	if cfg.RoomSize == 0 {
		cfg.RoomSize = 10
	}
	if cfg.PollInterval == 0 {
		cfg.PollInterval = defaultPollInterval
	}
	if cfg.PollTTL == 0 {
		cfg.PollTTL = defaultPollTTL
	}

	baseCtx, baseCancel := context.WithCancel(context.Background())

	return &service{
		config:     cfg,
		roomRepo:   cfg.RoomRepo,
		notifier:   cfg.Notifier,
		logger:     cfg.Logger,
		baseCtx:    baseCtx,
		baseCancel: baseCancel,
		pollers:    make(map[string]context.CancelFunc),
	}, nil
}

// WaitCondition blocks until the condition holds against freshly loaded
// room state, re-checking once per poll interval
func (s *service) WaitCondition(ctx context.Context, input *WaitConditionInput) (*WaitConditionOutput, error) {
	if !input.Condition.Valid() {
		return nil, ErrUnknownCondition
	}

	deadline := time.NewTimer(s.config.PollTTL)
	defer deadline.Stop()
	ticker := time.NewTicker(s.config.PollInterval)
	defer ticker.Stop()

	for {
		current, err := s.loadRoom(ctx, input.RoomID)
		if err != nil {
			return nil, err
		}
		if input.Condition.Met(current, s.config.RoomSize) {
			return &WaitConditionOutput{Room: current}, nil
		}

		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-deadline.C:
			return nil, ErrPollExpired
		case <-ticker.C:
		}
	}
}

// ArmPoller starts a background poller for the room and condition unless
// one is already running. The poller is bounded by the poll TTL and by the
// service lifetime; it is not persisted, so a restart drops in-flight polls
// and the next player action must re-arm them.
func (s *service) ArmPoller(_ context.Context, input *ArmPollerInput) (*ArmPollerOutput, error) {
	if !input.Condition.Valid() {
		return nil, ErrUnknownCondition
	}

	key := input.RoomID + "/" + string(input.Condition)

	s.mu.Lock()
	if _, running := s.pollers[key]; running {
		s.mu.Unlock()
		return &ArmPollerOutput{AlreadyArmed: true}, nil
	}

	pollCtx, cancel := context.WithTimeout(s.baseCtx, s.config.PollTTL)
	s.pollers[key] = cancel
	s.wg.Add(1)
	s.mu.Unlock()

	go s.poll(pollCtx, key, input.RoomID, input.Condition)

	return &ArmPollerOutput{}, nil
}

// Stop cancels every running poller and waits for them to exit
func (s *service) Stop() {
	s.baseCancel()
	s.wg.Wait()
}

func (s *service) poll(ctx context.Context, key, roomID string, condition Condition) {
	defer s.wg.Done()
	defer func() {
		s.mu.Lock()
		if cancel, ok := s.pollers[key]; ok {
			cancel()
			delete(s.pollers, key)
		}
		s.mu.Unlock()
	}()

	log := s.logger.With().Str("room_id", roomID).Str("condition", string(condition)).Logger()

	ticker := time.NewTicker(s.config.PollInterval)
	defer ticker.Stop()

	for {
		current, err := s.loadRoom(ctx, roomID)
		if err != nil {
			log.Warn().Err(err).Msg("poller stopped: room no longer loadable")
			return
		}
		if condition.Met(current, s.config.RoomSize) {
			s.fanOut(ctx, current, condition, log)
			return
		}

		select {
		case <-ctx.Done():
			log.Debug().Err(ctx.Err()).Msg("poller expired before the condition was met")
			return
		case <-ticker.C:
		}
	}
}

// fanOut delivers one event per participant session. At-least-once per
// condition event; a failed delivery is logged and skipped, never retried.
func (s *service) fanOut(ctx context.Context, current *models.Room, condition Condition, log zerolog.Logger) {
	for _, p := range current.Players {
		if p.SessionHandle == "" {
			continue
		}
		err := s.notifier.Deliver(ctx, &notify.DeliverInput{
			SessionHandle: p.SessionHandle,
			Kind:          string(condition),
			RoomID:        current.ID,
		})
		if err != nil {
			log.Error().Err(err).Str("session_handle", p.SessionHandle).Msg("failed to deliver condition event")
		}
	}
	log.Info().Int("participants", len(current.Players)).Msg("condition event delivered")
}

func (s *service) loadRoom(ctx context.Context, roomID string) (*models.Room, error) {
	current, err := s.roomRepo.GetRoom(ctx, &roomRepo.GetRoomInput{
		RoomID: roomID,
	})
	if err != nil {
		if errors.Is(err, roomRepo.ErrRoomNotFound) {
			return nil, ErrRoomNotFound
		}
		return nil, err
	}
	return current, nil
}
