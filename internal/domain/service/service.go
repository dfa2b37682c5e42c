package service

import (
	"time"

	"go.uber.org/zap"

	"github.com/attendbot/slack-attendance-bot/internal/config"
	"github.com/attendbot/slack-attendance-bot/internal/domain/contract"
)

// Instance wires the engine components together.
type Instance struct {
	Windows    *WindowCalculator
	Skip       *SkipPolicy
	Vacations  *VacationLedger
	Reconciler *Reconciler
	Dispatcher *Dispatcher
	Intake     *Intake
	Scheduler  *Scheduler
}

func NewInstance(dm contract.DataManager, chat contract.ChatClient, hook contract.WebhookSender, cfg config.Config, loc *time.Location, log *zap.Logger) *Instance {
	windows := NewWindowCalculator(WindowConfig{
		StartHour:   cfg.WindowStartHour,
		StartMinute: cfg.WindowStartMinute,
		EndHour:     cfg.WindowEndHour,
		EndMinute:   cfg.WindowEndMinute,
		EndSecond:   cfg.WindowEndSecond,
		Location:    loc,
	})

	skip := NewSkipPolicy(dm, cfg.SkipHolidays)
	vacations := NewVacationLedger(dm, log)

	reconciler := NewReconciler(dm, chat, vacations, ReconcilerConfig{
		Keywords:          cfg.VerificationKeywords,
		MaxAttachmentSize: cfg.MaxAttachmentSize,
		HistoryPageLimit:  cfg.HistoryPageLimit,
	}, log)

	dispatcher := NewDispatcher(chat, hook, windows, DispatcherConfig{
		MaxMessageLength:    cfg.MaxMessageLength,
		MaxMentionsPerChunk: cfg.MaxMentionsPerChunk,
	}, log)

	intake := NewIntake(dm, chat, hook, IntakeConfig{
		Keywords:          cfg.VerificationKeywords,
		MaxAttachmentSize: cfg.MaxAttachmentSize,
		Location:          loc,
	}, log)

	scheduler := NewScheduler(skip, windows, reconciler, dispatcher, cfg.VerificationChannel, TriggerTimes{
		DailyHour:      cfg.DailyCheckHour,
		DailyMinute:    cfg.DailyCheckMinute,
		PreviousHour:   cfg.PreviousCheckHour,
		PreviousMinute: cfg.PreviousCheckMinute,
		Location:       loc,
	}, log)

	return &Instance{
		Windows:    windows,
		Skip:       skip,
		Vacations:  vacations,
		Reconciler: reconciler,
		Dispatcher: dispatcher,
		Intake:     intake,
		Scheduler:  scheduler,
	}
}
