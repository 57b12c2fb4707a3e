package draft

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"soyco-intake/internal/form"
	"soyco-intake/internal/logger"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// DefaultHistoryLimit bounds the undo history.
const DefaultHistoryLimit = 50

// Store owns the live order record for one intake session: the current
// draft, a bounded undo history, a redo stack and the save/submit status
// flags. All access goes through its methods; snapshots handed out are
// deep copies, so callers never alias store state.
//
// Mutations are atomic with respect to each other. SaveDraft and
// SubmitOrder are the only suspending operations; only one may be in
// flight at a time — callers gate on IsSubmitting, and a concurrent call
// is refused with ErrInFlight rather than queued.
type Store interface {
	SetDraft(rec *form.OrderRecord)
	UpdateDraft(patch form.RecordPatch)
	ClearDraft()
	ClearSection(section form.Section)
	ResetField(path string)
	AddAttachment(fileRef, name string)
	RemoveAttachment(index int)
	SetStatus(status form.OrderStatus) error
	Undo()
	Redo()

	SaveDraft(ctx context.Context, rec *form.OrderRecord) error
	SubmitOrder(ctx context.Context, rec *form.OrderRecord) (string, error)

	Current() *form.OrderRecord
	HistoryLen() int
	IsSubmitting() bool
	LastError() error

	Export() *Envelope
	Restore(env *Envelope)
}

type store struct {
	mu         sync.Mutex
	current    *form.OrderRecord
	history    []*form.OrderRecord
	future     []*form.OrderRecord
	limit      int
	submitting bool
	lastErr    error

	gateway Gateway
	now     func() time.Time
}

func NewStore(gateway Gateway, historyLimit int) Store {
	if historyLimit <= 0 {
		historyLimit = DefaultHistoryLimit
	}
	return &store{
		current: form.NewOrderRecord(),
		history: []*form.OrderRecord{},
		future:  []*form.OrderRecord{},
		limit:   historyLimit,
		gateway: gateway,
		now:     time.Now,
	}
}

// pushHistoryLocked archives the current record and drops the redo stack.
// The caller replaces s.current right after.
func (s *store) pushHistoryLocked() {
	s.history = append(s.history, s.current)
	if len(s.history) > s.limit {
		s.history = s.history[len(s.history)-s.limit:]
	}
	s.future = s.future[:0]
}

func (s *store) commitLocked(next *form.OrderRecord) {
	s.pushHistoryLocked()
	next.UpdatedAt = s.now()
	s.current = next
}

func (s *store) SetDraft(rec *form.OrderRecord) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.commitLocked(rec.Clone())
}

func (s *store) UpdateDraft(patch form.RecordPatch) {
	s.mu.Lock()
	defer s.mu.Unlock()

	next := s.current.Clone()
	patch.Apply(next)
	s.commitLocked(next)
}

func (s *store) ClearDraft() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.commitLocked(form.NewOrderRecord())
}

func (s *store) ClearSection(section form.Section) {
	s.mu.Lock()
	defer s.mu.Unlock()

	next := s.current.Clone()
	if !form.ResetSection(next, section) {
		logger.L().Warn("unknown section, skipping clear",
			zap.String("section", string(section)))
		return
	}
	s.commitLocked(next)
}

// ResetField resets the leaf at the dotted path to its default value. An
// unknown path is logged and skipped so UI call sites do not have to
// validate paths defensively.
func (s *store) ResetField(path string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	next := s.current.Clone()
	if !form.ResetPath(next, path) {
		logger.L().Warn("unknown field path, skipping reset",
			zap.String("path", path))
		return
	}
	s.commitLocked(next)
}

func (s *store) AddAttachment(fileRef, name string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	next := s.current.Clone()
	next.Attachments.Files = append(next.Attachments.Files, fileRef)
	next.Attachments.Names = append(next.Attachments.Names, name)
	s.commitLocked(next)
}

// RemoveAttachment drops the entry at index from both parallel arrays. An
// out-of-range index is logged and skipped.
func (s *store) RemoveAttachment(index int) {
	s.mu.Lock()
	defer s.mu.Unlock()

	next := s.current.Clone()
	if index < 0 || index >= len(next.Attachments.Files) {
		logger.L().Warn("attachment index out of range, skipping remove",
			zap.Int("index", index),
			zap.Int("count", len(next.Attachments.Files)))
		return
	}
	next.Attachments.Files = append(next.Attachments.Files[:index], next.Attachments.Files[index+1:]...)
	next.Attachments.Names = append(next.Attachments.Names[:index], next.Attachments.Names[index+1:]...)
	s.commitLocked(next)
}

// SetStatus moves the record through its lifecycle. Leaving Draft requires
// at least one complete line item and a digital signature.
func (s *store) SetStatus(status form.OrderStatus) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if status != form.StatusDraft {
		if err := s.submittable(s.current); err != nil {
			return err
		}
	}

	next := s.current.Clone()
	next.Status = status
	s.commitLocked(next)
	return nil
}

// submittable checks the invariants for leaving Draft status.
func (s *store) submittable(rec *form.OrderRecord) error {
	if len(rec.Normalize().OrderDetails) == 0 {
		return form.ErrNoLineItems
	}
	if rec.Compliance.DigitalSignature == "" {
		return form.ErrSignatureMissing
	}
	return nil
}

// Undo restores the most recent history entry. No-op on empty history.
func (s *store) Undo() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if len(s.history) == 0 {
		return
	}
	s.future = append(s.future, s.current)
	s.current = s.history[len(s.history)-1]
	s.history = s.history[:len(s.history)-1]
}

// Redo restores the most recently undone record. No-op on empty future.
func (s *store) Redo() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if len(s.future) == 0 {
		return
	}
	s.history = append(s.history, s.current)
	s.current = s.future[len(s.future)-1]
	s.future = s.future[:len(s.future)-1]
}

// SaveDraft normalizes the record, pushes it to the gateway and, on
// success, commits it as the new current. On failure the current record is
// left untouched and the error is retained as LastError. Cancelling ctx
// aborts without committing and records ErrCancelled.
func (s *store) SaveDraft(ctx context.Context, rec *form.OrderRecord) error {
	return s.roundTrip(ctx, rec, false)
}

// SubmitOrder is SaveDraft plus the Submitted status stamp. It generates
// the client-side order ID sent upstream so a retry after a timeout
// cannot create a duplicate order.
func (s *store) SubmitOrder(ctx context.Context, rec *form.OrderRecord) (string, error) {
	if err := s.submittable(rec); err != nil {
		return "", err
	}
	orderID := uuid.NewString()
	if err := s.roundTripWithID(ctx, rec, orderID, true); err != nil {
		return "", err
	}
	return orderID, nil
}

func (s *store) roundTrip(ctx context.Context, rec *form.OrderRecord, submit bool) error {
	return s.roundTripWithID(ctx, rec, "", submit)
}

func (s *store) roundTripWithID(ctx context.Context, rec *form.OrderRecord, orderID string, submit bool) error {
	s.mu.Lock()
	if s.submitting {
		s.mu.Unlock()
		return ErrInFlight
	}
	s.submitting = true
	s.lastErr = nil
	s.mu.Unlock()

	defer func() {
		s.mu.Lock()
		s.submitting = false
		s.mu.Unlock()
	}()

	clean := rec.Normalize()

	var err error
	if submit {
		err = s.gateway.SubmitOrder(ctx, orderID, clean)
	} else {
		err = s.gateway.SaveDraft(ctx, clean)
	}

	if err != nil {
		werr := s.classify(err, submit)
		s.mu.Lock()
		s.lastErr = werr
		s.mu.Unlock()
		logger.FromCtx(ctx).Warn("upstream call failed",
			zap.Bool("submit", submit),
			zap.Error(werr))
		return werr
	}

	if submit {
		clean.Status = form.StatusSubmitted
	}
	s.mu.Lock()
	s.commitLocked(clean)
	s.mu.Unlock()
	return nil
}

func (s *store) classify(err error, submit bool) error {
	if errors.Is(err, context.Canceled) {
		return fmt.Errorf("%w: %v", ErrCancelled, err)
	}
	if submit {
		return fmt.Errorf("%w: %v", ErrSubmitFailed, err)
	}
	return fmt.Errorf("%w: %v", ErrSaveFailed, err)
}

func (s *store) Current() *form.OrderRecord {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.current.Clone()
}

func (s *store) HistoryLen() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.history)
}

func (s *store) IsSubmitting() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.submitting
}

func (s *store) LastError() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.lastErr
}

// Export snapshots {current, history} for persistence.
func (s *store) Export() *Envelope {
	s.mu.Lock()
	defer s.mu.Unlock()

	env := &Envelope{
		SchemaVersion: SchemaVersion,
		Current:       s.current.Clone(),
		History:       make([]*form.OrderRecord, len(s.history)),
	}
	for i, rec := range s.history {
		env.History[i] = rec.Clone()
	}
	return env
}

// Restore replaces the store state from a persisted envelope. The redo
// stack is not persisted and starts empty.
func (s *store) Restore(env *Envelope) {
	if env == nil || env.Current == nil {
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	s.current = env.Current.Clone()
	s.history = make([]*form.OrderRecord, 0, len(env.History))
	for _, rec := range env.History {
		if rec != nil {
			s.history = append(s.history, rec.Clone())
		}
	}
	if len(s.history) > s.limit {
		s.history = s.history[len(s.history)-s.limit:]
	}
	s.future = s.future[:0]
}
