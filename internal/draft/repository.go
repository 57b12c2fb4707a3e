package draft

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"

	"soyco-intake/internal/form"
	"soyco-intake/internal/logger"

	"go.uber.org/zap"
)

// Namespace is the fixed key the single live draft is stored under.
const Namespace = "mount-meru-soyco-form-storage"

// SchemaVersion accompanies every persisted envelope. Older payloads are
// upgraded on load by merging them over current defaults.
const SchemaVersion = 1

// Envelope is the persisted shape: the current draft plus its undo
// history. The redo stack is deliberately not persisted.
type Envelope struct {
	SchemaVersion int                 `json:"version"`
	Current       *form.OrderRecord   `json:"current"`
	History       []*form.OrderRecord `json:"history"`
}

type Repository interface {
	Load(ctx context.Context) (*Envelope, error)
	Save(ctx context.Context, env *Envelope) error
	Delete(ctx context.Context) error
}

type repository struct {
	db        *sql.DB
	namespace string
}

func NewRepository(db *sql.DB, namespace string) Repository {
	if namespace == "" {
		namespace = Namespace
	}
	return &repository{db: db, namespace: namespace}
}

func (r *repository) Load(ctx context.Context) (*Envelope, error) {
	log := logger.FromCtx(ctx).With(
		zap.String("repo", "Draft"),
		zap.String("method", "Load"),
		zap.String("namespace", r.namespace),
	)

	const q = `
		SELECT schema_version, payload
		FROM form_drafts
		WHERE namespace = $1
	`

	var (
		version int
		payload []byte
	)
	err := r.db.QueryRowContext(ctx, q, r.namespace).Scan(&version, &payload)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrDraftNotFound
	}
	if err != nil {
		log.Error("query failed", zap.Error(err))
		return nil, err
	}

	return DecodeEnvelope(version, payload), nil
}

func (r *repository) Save(ctx context.Context, env *Envelope) error {
	log := logger.FromCtx(ctx).With(
		zap.String("repo", "Draft"),
		zap.String("method", "Save"),
		zap.String("namespace", r.namespace),
	)

	payload, err := EncodeEnvelope(env)
	if err != nil {
		log.Error("encode failed", zap.Error(err))
		return err
	}

	const q = `
		INSERT INTO form_drafts (namespace, schema_version, payload, updated_at)
		VALUES ($1, $2, $3, NOW())
		ON CONFLICT (namespace) DO UPDATE
		SET schema_version = EXCLUDED.schema_version,
		    payload        = EXCLUDED.payload,
		    updated_at     = NOW()
	`

	if _, err := r.db.ExecContext(ctx, q, r.namespace, env.SchemaVersion, payload); err != nil {
		log.Error("exec failed", zap.Error(err))
		return err
	}
	return nil
}

func (r *repository) Delete(ctx context.Context) error {
	const q = `DELETE FROM form_drafts WHERE namespace = $1`

	if _, err := r.db.ExecContext(ctx, q, r.namespace); err != nil {
		logger.FromCtx(ctx).Error("delete failed",
			zap.String("namespace", r.namespace),
			zap.Error(err))
		return err
	}
	return nil
}

// EncodeEnvelope serializes the envelope for the key-value slot.
func EncodeEnvelope(env *Envelope) ([]byte, error) {
	return json.Marshal(env)
}

// DecodeEnvelope rebuilds an envelope from a persisted payload. Every
// record is unmarshalled over freshly-built defaults so missing fields
// adopt their default value and unknown fields are ignored; an older
// schema version takes the same upgrade path. A corrupt payload degrades
// to a fresh default envelope rather than failing.
func DecodeEnvelope(version int, payload []byte) *Envelope {
	fresh := func() *Envelope {
		return &Envelope{
			SchemaVersion: SchemaVersion,
			Current:       form.NewOrderRecord(),
			History:       []*form.OrderRecord{},
		}
	}

	var raw struct {
		Current json.RawMessage   `json:"current"`
		History []json.RawMessage `json:"history"`
	}
	if err := json.Unmarshal(payload, &raw); err != nil || raw.Current == nil {
		logger.L().Warn("corrupt draft payload, falling back to defaults",
			zap.Int("stored_version", version),
			zap.Error(err))
		return fresh()
	}

	if version < SchemaVersion {
		logger.L().Info("upgrading persisted draft",
			zap.Int("from_version", version),
			zap.Int("to_version", SchemaVersion))
	}

	env := fresh()
	if err := json.Unmarshal(raw.Current, env.Current); err != nil {
		logger.L().Warn("corrupt current record, falling back to defaults",
			zap.Error(err))
		return fresh()
	}

	for _, entry := range raw.History {
		rec := form.NewOrderRecord()
		if err := json.Unmarshal(entry, rec); err != nil {
			// skip the one bad snapshot, keep the rest
			logger.L().Warn("corrupt history entry, skipping", zap.Error(err))
			continue
		}
		env.History = append(env.History, rec)
	}
	return env
}
