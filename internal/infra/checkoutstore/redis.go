package checkoutstore

import (
	"context"
	"encoding/json"
	"log/slog"
	"time"

	"leather-sandals-store/internal/domain/checkout"
	"leather-sandals-store/internal/infra"
	"leather-sandals-store/internal/infra/cache"
	"leather-sandals-store/internal/infra/converter"
	"leather-sandals-store/internal/pkg/config"
)

const (
	PersistNamespace = "checkout-storage"
	SessionNamespace = "checkout-session"
)

type persistedRecord struct {
	ShippingInfo  *converter.ShippingJSON `json:"shippingInfo"`
	PaymentMethod string                  `json:"paymentMethod"`
}

type transientRecord struct {
	CurrentStep      int  `json:"currentStep"`
	AcceptedTerms    bool `json:"acceptedTerms"`
	AcceptedKvkk     bool `json:"acceptedKvkk"`
	IsOrderCompleted bool `json:"isOrderCompleted"`
}

type RedisStore struct {
	cache      cache.Cache
	persistTTL time.Duration
	sessionTTL time.Duration
	logger     *slog.Logger
}

func NewRedisStore(c cache.Cache, cfg config.CheckoutConfig, logger *slog.Logger) *RedisStore {
	return &RedisStore{
		cache:      c,
		persistTTL: cfg.PersistTTL,
		sessionTTL: cfg.SessionTTL,
		logger:     logger,
	}
}

// Load returns a fresh session for an unknown sid. Unreadable records are
// treated as missing.
func (s *RedisStore) Load(ctx context.Context, sid string) (*checkout.Session, error) {
	rawPersist, err := s.cache.Get(ctx, s.cache.GenerateKey(PersistNamespace, sid))
	if err != nil {
		return nil, infra.WrapRepoErr(s.logger, infra.KindCacheFailure, "failed to load checkout storage", err)
	}
	rawSession, err := s.cache.Get(ctx, s.cache.GenerateKey(SessionNamespace, sid))
	if err != nil {
		return nil, infra.WrapRepoErr(s.logger, infra.KindCacheFailure, "failed to load checkout session", err)
	}

	return restore(s.decodePersisted(rawPersist), s.decodeTransient(rawSession)), nil
}

func (s *RedisStore) Save(ctx context.Context, sid string, session *checkout.Session) error {
	persisted, transient, err := encode(session)
	if err != nil {
		return infra.WrapRepoErr(s.logger, infra.KindCacheFailure, "failed to encode checkout state", err)
	}

	if err := s.cache.Set(ctx, s.cache.GenerateKey(PersistNamespace, sid), persisted, s.persistTTL); err != nil {
		return infra.WrapRepoErr(s.logger, infra.KindCacheFailure, "failed to save checkout storage", err)
	}
	if err := s.cache.Set(ctx, s.cache.GenerateKey(SessionNamespace, sid), transient, s.sessionTTL); err != nil {
		return infra.WrapRepoErr(s.logger, infra.KindCacheFailure, "failed to save checkout session", err)
	}
	return nil
}

func (s *RedisStore) decodePersisted(raw string) persistedRecord {
	var rec persistedRecord
	if raw == "" {
		return rec
	}
	if err := json.Unmarshal([]byte(raw), &rec); err != nil {
		s.logger.Warn("discarding unreadable checkout storage", "error", err.Error())
		return persistedRecord{}
	}
	return rec
}

func (s *RedisStore) decodeTransient(raw string) transientRecord {
	var rec transientRecord
	if raw == "" {
		return rec
	}
	if err := json.Unmarshal([]byte(raw), &rec); err != nil {
		s.logger.Warn("discarding unreadable checkout session", "error", err.Error())
		return transientRecord{}
	}
	return rec
}

func encode(session *checkout.Session) ([]byte, []byte, error) {
	p := session.Persisted()
	prec := persistedRecord{PaymentMethod: p.PaymentMethod.String()}
	if p.ShippingInfo != nil {
		sj := converter.ShippingJSON(*p.ShippingInfo)
		prec.ShippingInfo = &sj
	}

	t := session.Transient()
	trec := transientRecord{
		CurrentStep:      int(t.CurrentStep),
		AcceptedTerms:    t.AcceptedTerms,
		AcceptedKvkk:     t.AcceptedKvkk,
		IsOrderCompleted: t.IsOrderCompleted,
	}

	persisted, err := json.Marshal(prec)
	if err != nil {
		return nil, nil, err
	}
	transient, err := json.Marshal(trec)
	if err != nil {
		return nil, nil, err
	}
	return persisted, transient, nil
}

func restore(p persistedRecord, t transientRecord) *checkout.Session {
	ps := checkout.PersistedState{PaymentMethod: checkout.PaymentMethod(p.PaymentMethod)}
	if p.ShippingInfo != nil {
		a := checkout.Address(*p.ShippingInfo)
		ps.ShippingInfo = &a
	}
	return checkout.RestoreSession(ps, checkout.TransientState{
		CurrentStep:      checkout.Step(t.CurrentStep),
		AcceptedTerms:    t.AcceptedTerms,
		AcceptedKvkk:     t.AcceptedKvkk,
		IsOrderCompleted: t.IsOrderCompleted,
	})
}
