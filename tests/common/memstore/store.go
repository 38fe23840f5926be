//go:build unit || e2e

// Package memstore keeps every aggregate in process memory so use cases can run without PostgreSQL.
package memstore

import (
	"context"
	"maps"
	"slices"
	"sort"
	"sync"
	"time"

	"hosteed/internal/domain/availability"
	"hosteed/internal/domain/commission"
	"hosteed/internal/domain/extra"
	"hosteed/internal/domain/geo"
	"hosteed/internal/domain/promotion"
	"hosteed/internal/domain/property"
	"hosteed/internal/domain/reservation"
	"hosteed/internal/domain/shared/daterange"
	"hosteed/internal/infra"
	"hosteed/internal/usecase/shared"

	"github.com/google/uuid"
)

// Operation names accepted by FailOn.
const (
	OpLockProperty    = "lock_property"
	OpBlackoutCreate  = "blackout.create"
	OpBlackoutDelete  = "blackout.delete"
	OpPromotionCreate = "promotion.create"
	OpPromotionUpdate = "promotion.update_active"
	OpRuleCreate      = "commission_rule.create"
	OpRuleUpdate      = "commission_rule.update"
	OpExtraCreate     = "extra.create"
	OpExtraAttach     = "extra.attach"
	OpOutboxEnqueue   = "outbox.enqueue"
	OpRead            = "read"
)

type state struct {
	properties     map[uuid.UUID]*property.Property
	specialPrices  map[uuid.UUID]*property.SpecialPrice
	reservations   map[uuid.UUID]*reservation.Reservation
	blackouts      map[uuid.UUID]*availability.BlackoutPeriod
	promotions     map[uuid.UUID]*promotion.Promotion
	rules          map[uuid.UUID]*commission.Rule
	extras         map[uuid.UUID]*extra.Extra
	propertyExtras map[uuid.UUID][]uuid.UUID
	outbox         []shared.OutboxMessage
}

func newState() state {
	return state{
		properties:     make(map[uuid.UUID]*property.Property),
		specialPrices:  make(map[uuid.UUID]*property.SpecialPrice),
		reservations:   make(map[uuid.UUID]*reservation.Reservation),
		blackouts:      make(map[uuid.UUID]*availability.BlackoutPeriod),
		promotions:     make(map[uuid.UUID]*promotion.Promotion),
		rules:          make(map[uuid.UUID]*commission.Rule),
		extras:         make(map[uuid.UUID]*extra.Extra),
		propertyExtras: make(map[uuid.UUID][]uuid.UUID),
	}
}

func (s state) clone() state {
	c := state{
		properties:     maps.Clone(s.properties),
		specialPrices:  maps.Clone(s.specialPrices),
		reservations:   maps.Clone(s.reservations),
		blackouts:      maps.Clone(s.blackouts),
		promotions:     make(map[uuid.UUID]*promotion.Promotion, len(s.promotions)),
		rules:          make(map[uuid.UUID]*commission.Rule, len(s.rules)),
		extras:         maps.Clone(s.extras),
		propertyExtras: make(map[uuid.UUID][]uuid.UUID, len(s.propertyExtras)),
		outbox:         slices.Clone(s.outbox),
	}
	for id, p := range s.promotions {
		c.promotions[id] = clonePromotion(p)
	}
	for id, r := range s.rules {
		c.rules[id] = cloneRule(r)
	}
	for id, ids := range s.propertyExtras {
		c.propertyExtras[id] = slices.Clone(ids)
	}
	return c
}

// Store implements shared.UnitOfWork and the query read stores. Within runs
// transactions one at a time and restores the previous state when fn fails.
type Store struct {
	mu     sync.Mutex
	txMu   sync.Mutex
	data   state
	faults map[string]error
	locked []uuid.UUID
}

func New() *Store {
	return &Store{data: newState(), faults: make(map[string]error)}
}

// FailOn makes the named operation return err until cleared with a nil err.
func (s *Store) FailOn(op string, err error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err == nil {
		delete(s.faults, op)
		return
	}
	s.faults[op] = err
}

func (s *Store) fault(op string) error {
	return s.faults[op]
}

func (s *Store) Within(ctx context.Context, fn func(ctx context.Context, tx shared.Tx) error) error {
	s.txMu.Lock()
	defer s.txMu.Unlock()

	s.mu.Lock()
	snapshot := s.data.clone()
	s.mu.Unlock()

	if err := fn(ctx, &memTx{store: s}); err != nil {
		s.mu.Lock()
		s.data = snapshot
		s.mu.Unlock()
		return err
	}
	return nil
}

func (s *Store) CommandReads() shared.CommandReads {
	return s
}

type memTx struct {
	store *Store
}

func (t *memTx) LockProperty(_ context.Context, propertyID uuid.UUID) error {
	t.store.mu.Lock()
	defer t.store.mu.Unlock()
	if err := t.store.fault(OpLockProperty); err != nil {
		return err
	}
	t.store.locked = append(t.store.locked, propertyID)
	return nil
}

func (t *memTx) Blackouts() shared.BlackoutRepository             { return blackoutRepo{t.store} }
func (t *memTx) Promotions() shared.PromotionRepository           { return promotionRepo{t.store} }
func (t *memTx) CommissionRules() shared.CommissionRuleRepository { return ruleRepo{t.store} }
func (t *memTx) Extras() shared.ExtraRepository                   { return extraRepo{t.store} }
func (t *memTx) Outbox() shared.OutboxRepository                  { return outboxRepo{t.store} }
func (t *memTx) Reads() shared.CommandReads                       { return t.store }

// ------------------------------------------------------------------
// Seeding and inspection
// ------------------------------------------------------------------

func (s *Store) AddProperty(p *property.Property) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.data.properties[p.ID()] = p
}

func (s *Store) AddSpecialPrice(sp *property.SpecialPrice) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.data.specialPrices[sp.ID()] = sp
}

func (s *Store) AddReservation(r *reservation.Reservation) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.data.reservations[r.ID()] = r
}

func (s *Store) AddBlackout(b *availability.BlackoutPeriod) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.data.blackouts[b.ID()] = b
}

func (s *Store) AddPromotion(p *promotion.Promotion) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.data.promotions[p.ID()] = clonePromotion(p)
}

func (s *Store) AddRule(r *commission.Rule) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.data.rules[r.ID()] = cloneRule(r)
}

func (s *Store) AddExtra(e *extra.Extra, propertyIDs ...uuid.UUID) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.data.extras[e.ID()] = e
	for _, pid := range propertyIDs {
		s.data.propertyExtras[pid] = append(s.data.propertyExtras[pid], e.ID())
	}
}

func (s *Store) Outbox() []shared.OutboxMessage {
	s.mu.Lock()
	defer s.mu.Unlock()
	return slices.Clone(s.data.outbox)
}

func (s *Store) OutboxTopics() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	topics := make([]string, len(s.data.outbox))
	for i, m := range s.data.outbox {
		topics[i] = m.Topic
	}
	return topics
}

func (s *Store) LockedProperties() []uuid.UUID {
	s.mu.Lock()
	defer s.mu.Unlock()
	return slices.Clone(s.locked)
}

func (s *Store) BlackoutsFor(propertyID uuid.UUID) []*availability.BlackoutPeriod {
	s.mu.Lock()
	defer s.mu.Unlock()
	var out []*availability.BlackoutPeriod
	for _, b := range s.data.blackouts {
		if b.PropertyID() == propertyID {
			out = append(out, b)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Period().Start.Before(out[j].Period().Start) })
	return out
}

func (s *Store) Promotion(id uuid.UUID) (*promotion.Promotion, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	p, ok := s.data.promotions[id]
	if !ok {
		return nil, false
	}
	return clonePromotion(p), true
}

func (s *Store) PromotionsFor(propertyID uuid.UUID) []*promotion.Promotion {
	s.mu.Lock()
	defer s.mu.Unlock()
	var out []*promotion.Promotion
	for _, p := range s.data.promotions {
		if p.PropertyID() == propertyID {
			out = append(out, clonePromotion(p))
		}
	}
	sortNewestFirst(out)
	return out
}

func (s *Store) Rule(id uuid.UUID) (*commission.Rule, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	r, ok := s.data.rules[id]
	if !ok {
		return nil, false
	}
	return cloneRule(r), true
}

func (s *Store) ExtrasAttachedTo(propertyID uuid.UUID) []uuid.UUID {
	s.mu.Lock()
	defer s.mu.Unlock()
	return slices.Clone(s.data.propertyExtras[propertyID])
}

// ------------------------------------------------------------------
// shared.CommandReads and query read stores
// ------------------------------------------------------------------

func notFound(what string) error {
	return infra.NewRepoErr(infra.KindNotFound, what+" not found")
}

func (s *Store) PropertyByID(ctx context.Context, id uuid.UUID) (*property.Property, error) {
	return s.FindByID(ctx, id)
}

func (s *Store) FindByID(_ context.Context, id uuid.UUID) (*property.Property, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.fault(OpRead); err != nil {
		return nil, err
	}
	p, ok := s.data.properties[id]
	if !ok {
		return nil, notFound("property")
	}
	return p, nil
}

func (s *Store) FindInBoundingBox(_ context.Context, box geo.BoundingBox) ([]*property.Property, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.fault(OpRead); err != nil {
		return nil, err
	}
	var out []*property.Property
	for _, p := range s.data.properties {
		if box.Contains(p.Location()) {
			out = append(out, p)
		}
	}
	return out, nil
}

func (s *Store) SpecialPrices(_ context.Context, propertyID uuid.UUID, within daterange.DateRange) ([]*property.SpecialPrice, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var out []*property.SpecialPrice
	for _, sp := range s.data.specialPrices {
		if sp.PropertyID() != propertyID || !sp.IsActive() {
			continue
		}
		// closed [start, end] against half-open [within.Start, within.End)
		if sp.StartDate().Before(within.End) && !sp.EndDate().Before(within.Start) {
			out = append(out, sp)
		}
	}
	return out, nil
}

func (s *Store) BlockingReservations(_ context.Context, propertyID uuid.UUID, within daterange.DateRange) ([]*reservation.Reservation, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.fault(OpRead); err != nil {
		return nil, err
	}
	var out []*reservation.Reservation
	for _, r := range s.data.reservations {
		if r.PropertyID() == propertyID && r.IsBlocking() && r.Stay().Overlaps(within) {
			out = append(out, r)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Stay().Start.Before(out[j].Stay().Start) })
	return out, nil
}

func (s *Store) BlackoutsOverlapping(ctx context.Context, propertyID uuid.UUID, within daterange.DateRange) ([]*availability.BlackoutPeriod, error) {
	return s.Blackouts(ctx, propertyID, within)
}

func (s *Store) Blackouts(_ context.Context, propertyID uuid.UUID, within daterange.DateRange) ([]*availability.BlackoutPeriod, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.fault(OpRead); err != nil {
		return nil, err
	}
	var out []*availability.BlackoutPeriod
	for _, b := range s.data.blackouts {
		if b.PropertyID() == propertyID && b.Period().Overlaps(within) {
			out = append(out, b)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Period().Start.Before(out[j].Period().Start) })
	return out, nil
}

func (s *Store) BlackoutByID(_ context.Context, id uuid.UUID) (*availability.BlackoutPeriod, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	b, ok := s.data.blackouts[id]
	if !ok {
		return nil, notFound("blackout period")
	}
	return b, nil
}

func (s *Store) ActivePromotionsOverlapping(_ context.Context, propertyID uuid.UUID, period promotion.Period) ([]*promotion.Promotion, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var out []*promotion.Promotion
	for _, p := range s.data.promotions {
		if p.PropertyID() == propertyID && p.IsActive() && p.Period().Overlaps(period) {
			out = append(out, clonePromotion(p))
		}
	}
	sortNewestFirst(out)
	return out, nil
}

func (s *Store) PromotionByID(_ context.Context, id uuid.UUID) (*promotion.Promotion, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	p, ok := s.data.promotions[id]
	if !ok {
		return nil, notFound("promotion")
	}
	return clonePromotion(p), nil
}

func (s *Store) CommissionRuleByID(_ context.Context, id uuid.UUID) (*commission.Rule, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	r, ok := s.data.rules[id]
	if !ok {
		return nil, notFound("commission rule")
	}
	return cloneRule(r), nil
}

func (s *Store) ActiveCommissionRules(_ context.Context, propertyTypeID *uuid.UUID) ([]*commission.Rule, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var out []*commission.Rule
	for _, r := range s.data.rules {
		if !r.IsActive() {
			continue
		}
		if r.IsGlobal() || (propertyTypeID != nil && *r.PropertyTypeID() == *propertyTypeID) {
			out = append(out, cloneRule(r))
		}
	}
	return out, nil
}

func (s *Store) ActiveRules(_ context.Context) ([]*commission.Rule, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.fault(OpRead); err != nil {
		return nil, err
	}
	var out []*commission.Rule
	for _, r := range s.data.rules {
		if r.IsActive() {
			out = append(out, cloneRule(r))
		}
	}
	return out, nil
}

func (s *Store) ExtraByID(_ context.Context, id uuid.UUID) (*extra.Extra, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	e, ok := s.data.extras[id]
	if !ok {
		return nil, notFound("extra")
	}
	return e, nil
}

func (s *Store) ListForProperty(_ context.Context, propertyID uuid.UUID) ([]*extra.Extra, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.fault(OpRead); err != nil {
		return nil, err
	}
	ids := s.data.propertyExtras[propertyID]
	out := make([]*extra.Extra, 0, len(ids))
	for _, id := range ids {
		if e, ok := s.data.extras[id]; ok {
			out = append(out, e)
		}
	}
	return out, nil
}

func (s *Store) ListByPropertyFirstPage(_ context.Context, propertyID uuid.UUID, limit int32) ([]*promotion.Promotion, error) {
	return s.listPromotions(propertyID, nil, uuid.Nil, limit), nil
}

func (s *Store) ListByPropertyKeyset(
	_ context.Context,
	propertyID uuid.UUID,
	lastCreatedAt time.Time,
	lastID uuid.UUID,
	limit int32,
) ([]*promotion.Promotion, error) {
	return s.listPromotions(propertyID, &lastCreatedAt, lastID, limit), nil
}

func (s *Store) listPromotions(propertyID uuid.UUID, lastCreatedAt *time.Time, lastID uuid.UUID, limit int32) []*promotion.Promotion {
	all := s.PromotionsFor(propertyID)
	out := make([]*promotion.Promotion, 0, limit)
	for _, p := range all {
		if lastCreatedAt != nil && !before(p, lastCreatedAt.Truncate(time.Microsecond), lastID) {
			continue
		}
		out = append(out, p)
		if int32(len(out)) == limit {
			break
		}
	}
	return out
}

func (s *Store) ActiveCovering(_ context.Context, propertyID uuid.UUID, within daterange.DateRange) ([]*promotion.Promotion, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	lastNight := within.End.AddDate(0, 0, -1)
	var out []*promotion.Promotion
	for _, p := range s.data.promotions {
		if p.PropertyID() != propertyID || !p.IsActive() {
			continue
		}
		if !p.Period().Start().After(lastNight) && !p.Period().End().Before(within.Start) {
			out = append(out, clonePromotion(p))
		}
	}
	return out, nil
}

// before reports whether p sorts after the keyset (createdAt, id) in newest-first order.
func before(p *promotion.Promotion, createdAt time.Time, id uuid.UUID) bool {
	pc := p.CreatedAt().Truncate(time.Microsecond)
	if pc.Equal(createdAt) {
		return p.ID().String() < id.String()
	}
	return pc.Before(createdAt)
}

func sortNewestFirst(ps []*promotion.Promotion) {
	sort.Slice(ps, func(i, j int) bool {
		if ps[i].CreatedAt().Equal(ps[j].CreatedAt()) {
			return ps[i].ID().String() > ps[j].ID().String()
		}
		return ps[i].CreatedAt().After(ps[j].CreatedAt())
	})
}

// ------------------------------------------------------------------
// Write repositories
// ------------------------------------------------------------------

type blackoutRepo struct{ s *Store }

func (r blackoutRepo) Create(_ context.Context, b *availability.BlackoutPeriod) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if err := r.s.fault(OpBlackoutCreate); err != nil {
		return err
	}
	r.s.data.blackouts[b.ID()] = b
	return nil
}

func (r blackoutRepo) Delete(_ context.Context, id uuid.UUID) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if err := r.s.fault(OpBlackoutDelete); err != nil {
		return err
	}
	if _, ok := r.s.data.blackouts[id]; !ok {
		return notFound("blackout period")
	}
	delete(r.s.data.blackouts, id)
	return nil
}

type promotionRepo struct{ s *Store }

func (r promotionRepo) Create(_ context.Context, p *promotion.Promotion) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if err := r.s.fault(OpPromotionCreate); err != nil {
		return err
	}
	r.s.data.promotions[p.ID()] = clonePromotion(p)
	return nil
}

func (r promotionRepo) UpdateActive(_ context.Context, p *promotion.Promotion) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if err := r.s.fault(OpPromotionUpdate); err != nil {
		return err
	}
	if _, ok := r.s.data.promotions[p.ID()]; !ok {
		return notFound("promotion")
	}
	r.s.data.promotions[p.ID()] = clonePromotion(p)
	return nil
}

type ruleRepo struct{ s *Store }

func (r ruleRepo) Create(_ context.Context, rule *commission.Rule) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if err := r.s.fault(OpRuleCreate); err != nil {
		return err
	}
	r.s.data.rules[rule.ID()] = cloneRule(rule)
	return nil
}

func (r ruleRepo) Update(_ context.Context, rule *commission.Rule) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if err := r.s.fault(OpRuleUpdate); err != nil {
		return err
	}
	if _, ok := r.s.data.rules[rule.ID()]; !ok {
		return notFound("commission rule")
	}
	r.s.data.rules[rule.ID()] = cloneRule(rule)
	return nil
}

type extraRepo struct{ s *Store }

func (r extraRepo) Create(_ context.Context, e *extra.Extra) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if err := r.s.fault(OpExtraCreate); err != nil {
		return err
	}
	r.s.data.extras[e.ID()] = e
	return nil
}

func (r extraRepo) AttachToProperty(_ context.Context, propertyID, extraID uuid.UUID) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if err := r.s.fault(OpExtraAttach); err != nil {
		return err
	}
	if slices.Contains(r.s.data.propertyExtras[propertyID], extraID) {
		return nil
	}
	r.s.data.propertyExtras[propertyID] = append(r.s.data.propertyExtras[propertyID], extraID)
	return nil
}

type outboxRepo struct{ s *Store }

func (r outboxRepo) Enqueue(_ context.Context, msg shared.OutboxMessage) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if err := r.s.fault(OpOutboxEnqueue); err != nil {
		return err
	}
	r.s.data.outbox = append(r.s.data.outbox, msg)
	return nil
}

func clonePromotion(p *promotion.Promotion) *promotion.Promotion {
	return promotion.ReconstructPromotion(
		p.ID(), p.PropertyID(), p.Discount(), p.Period(), p.IsActive(), p.CreatedBy(), p.CreatedAt(), p.UpdatedAt(),
	)
}

func cloneRule(r *commission.Rule) *commission.Rule {
	return commission.ReconstructRule(
		r.ID(), r.Title(), r.Rates(), r.PropertyTypeID(), r.IsActive(), r.CreatedAt(), r.UpdatedAt(),
	)
}
