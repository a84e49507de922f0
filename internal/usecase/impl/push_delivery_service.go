package impl

import (
	"context"
	"log/slog"

	"sharefit/internal/domain/repository"
	"sharefit/internal/domain/service"
	"sharefit/internal/errors"

	"github.com/google/uuid"
)

// pushDeliveryService is the push gateway client: it resolves device tokens,
// calls the provider, and prunes tokens the provider reports as dead. All
// errors end here; a push that cannot be delivered is lost.
type pushDeliveryService struct {
	gateway  service.PushGateway
	userRepo repository.UserRepository
	logger   *slog.Logger
}

// NewPushDeliveryService creates a new push delivery service instance
func NewPushDeliveryService(
	gateway service.PushGateway,
	userRepo repository.UserRepository,
	logger *slog.Logger,
) service.PushDeliverer {
	return &pushDeliveryService{
		gateway:  gateway,
		userRepo: userRepo,
		logger:   logger,
	}
}

// Deliver sends one push request, resolving the device token from the user
// record when the request carries none.
func (s *pushDeliveryService) Deliver(ctx context.Context, req *service.PushRequest) {
	token := req.DeviceToken
	if token == "" {
		resolved, ok := s.resolveToken(ctx, req.UserID)
		if !ok {
			return
		}
		token = resolved
	}

	err := s.gateway.Send(ctx, token, req.Title, req.Body, s.buildData(req), req.HighPriority)
	if err == nil {
		s.logger.Debug("push delivered",
			slog.String("user_id", req.UserID.String()),
			slog.String("kind", string(req.Kind)),
		)

		return
	}

	if errors.Is(err, service.ErrUnregisteredToken) {
		s.pruneToken(ctx, req.UserID)

		return
	}

	// Transient provider error. Logged and dropped.
	s.logger.Warn("push delivery failed",
		slog.String("user_id", req.UserID.String()),
		slog.String("kind", string(req.Kind)),
		slog.Any("error", err),
	)
}

// DeliverBatch sends several requests, batching identical notifications into
// one multicast call to the provider.
func (s *pushDeliveryService) DeliverBatch(ctx context.Context, reqs []*service.PushRequest) {
	type batchKey struct {
		title        string
		body         string
		kind         string
		highPriority bool
	}

	groups := make(map[batchKey][]*service.PushRequest)
	for _, req := range reqs {
		key := batchKey{title: req.Title, body: req.Body, kind: string(req.Kind), highPriority: req.HighPriority}
		groups[key] = append(groups[key], req)
	}

	for _, group := range groups {
		if len(group) == 1 {
			s.Deliver(ctx, group[0])

			continue
		}

		tokens := make([]string, 0, len(group))
		owners := make(map[string]uuid.UUID, len(group))
		for _, req := range group {
			token := req.DeviceToken
			if token == "" {
				resolved, ok := s.resolveToken(ctx, req.UserID)
				if !ok {
					continue
				}
				token = resolved
			}
			tokens = append(tokens, token)
			owners[token] = req.UserID
		}
		if len(tokens) == 0 {
			continue
		}

		first := group[0]
		successCount, failureCount, invalidTokens, err := s.gateway.SendEach(
			ctx, tokens, first.Title, first.Body, s.buildData(first), first.HighPriority,
		)
		if err != nil {
			s.logger.Warn("push batch delivery failed",
				slog.String("kind", string(first.Kind)),
				slog.Int("tokens", len(tokens)),
				slog.Any("error", err),
			)

			continue
		}

		s.logger.Debug("push batch delivered",
			slog.String("kind", string(first.Kind)),
			slog.Int("success", successCount),
			slog.Int("failure", failureCount),
		)

		for _, token := range invalidTokens {
			if userID, ok := owners[token]; ok {
				s.pruneToken(ctx, userID)
			}
		}
	}
}

// resolveToken looks up the user's stored push token. Users without one are
// simply unreachable.
func (s *pushDeliveryService) resolveToken(ctx context.Context, userID uuid.UUID) (string, bool) {
	user, err := s.userRepo.FindUserByID(ctx, userID)
	if err != nil {
		s.logger.Warn("failed to resolve push token",
			slog.String("user_id", userID.String()),
			slog.Any("error", err),
		)

		return "", false
	}
	if user.PushToken == "" {
		s.logger.Debug("user has no push token, skipping",
			slog.String("user_id", userID.String()),
		)

		return "", false
	}

	return user.PushToken, true
}

// pruneToken drops a token the provider reported permanently invalid, so the
// next event does not retry a dead device.
func (s *pushDeliveryService) pruneToken(ctx context.Context, userID uuid.UUID) {
	s.logger.Info("pruning unregistered push token",
		slog.String("user_id", userID.String()),
	)
	if err := s.userRepo.ClearPushToken(ctx, userID); err != nil {
		s.logger.Error("failed to clear push token",
			slog.String("user_id", userID.String()),
			slog.Any("error", err),
		)
	}
}

func (s *pushDeliveryService) buildData(req *service.PushRequest) map[string]string {
	data := make(map[string]string, len(req.Data)+2)
	for k, v := range req.Data {
		data[k] = v
	}
	data["kind"] = string(req.Kind)
	data["userId"] = req.UserID.String()

	return data
}
