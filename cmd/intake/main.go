package main

import (
	"context"
	"errors"
	"log"
	"os"
	"path/filepath"
	"time"

	"soyco-intake/internal/autosave"
	"soyco-intake/internal/config"
	"soyco-intake/internal/db"
	"soyco-intake/internal/draft"
	"soyco-intake/internal/form"
	"soyco-intake/internal/i18n"
	"soyco-intake/internal/logger"
	"soyco-intake/internal/receipt"
	"soyco-intake/internal/validation"

	"go.uber.org/zap"
	"golang.org/x/time/rate"
)

// A scripted intake session against the draft store: restore the persisted
// draft, apply edits, submit, and render the order summary. This is the
// console stand-in for the form frontend.
func main() {
	cfg := config.LoadConfig()
	logger.Init(cfg.AppEnv)
	defer logger.Sync()

	database := db.InitDB(cfg)
	defer database.Close()

	ctx := logger.WithSession(context.Background(), "intake-demo")
	lg := logger.FromCtx(ctx)

	repo := draft.NewRepository(database, draft.Namespace)
	gateway := draft.NewSimulatedGateway(draft.SimConfig{
		SaveLatency:       cfg.SaveLatency,
		SubmitLatency:     cfg.SubmitLatency,
		SaveFailureRate:   cfg.SaveFailureRate,
		SubmitFailureRate: cfg.SubmitFailureRate,
	})
	store := draft.NewStore(gateway, cfg.HistoryLimit)

	if env, err := repo.Load(ctx); err == nil {
		store.Restore(env)
		lg.Info("restored persisted draft",
			zap.Int("history", store.HistoryLen()))
	} else if !errors.Is(err, draft.ErrDraftNotFound) {
		lg.Warn("failed to load persisted draft, starting fresh", zap.Error(err))
	}

	saver := autosave.New(store, cfg.AutosaveDebounce, rate.NewLimiter(rate.Every(5*time.Second), 1))
	defer saver.Close(ctx)

	// edit the draft the way the form would
	store.UpdateDraft(form.RecordPatch{
		ClientInfo: &form.ClientInfoPatch{
			FullName:     form.StrPtr("Chantal Uwase"),
			BusinessName: form.StrPtr("Kigali Fresh Wholesale"),
			PhoneNumber:  form.StrPtr("+250788123456"),
			Email:        form.StrPtr("orders@kigalifresh.rw"),
			Address:      form.StrPtr("KN 5 Rd, Nyarugenge, Kigali"),
		},
		Compliance: &form.CompliancePatch{
			DigitalSignature: form.StrPtr("Chantal Uwase"),
		},
	})
	saver.Notify(store.Current())

	val := validation.New()
	if errs := val.CanSubmit(store.Current()); len(errs) > 0 {
		for _, fe := range errs {
			lg.Warn("draft not ready to submit",
				zap.String("field", fe.Field), zap.String("message", fe.Message))
		}
		persist(ctx, repo, store)
		return
	}

	orderID, err := store.SubmitOrder(ctx, store.Current())
	if err != nil {
		lg.Error("order submission failed", zap.Error(err))
		persist(ctx, repo, store)
		return
	}
	lg.Info("order submitted", zap.String("orderID", orderID))

	persist(ctx, repo, store)

	translator := i18n.NewTranslator(cfg.Locale)
	gen := receipt.NewGenerator(receipt.CompanyInfo{
		Name:    cfg.CompanyName,
		Contact: cfg.CompanyContact,
	}, translator)

	artifact, err := gen.Render(store.Current(), "")
	if err != nil {
		lg.Error("failed to render order summary", zap.Error(err))
		return
	}

	outPath := filepath.Join(os.TempDir(), artifact.Filename)
	if err := os.WriteFile(outPath, artifact.Bytes, 0o644); err != nil {
		lg.Error("failed to write order summary", zap.Error(err))
		return
	}

	share := receipt.WhatsAppLink(artifact, outPath, store.Current().ClientInfo.PhoneNumber)
	log.Printf("📄 Order summary written to %s", outPath)
	log.Printf("📲 Share via %s", share)
}

func persist(ctx context.Context, repo draft.Repository, store draft.Store) {
	if err := repo.Save(ctx, store.Export()); err != nil {
		logger.FromCtx(ctx).Error("failed to persist draft", zap.Error(err))
	}
}
