// Package reminders corre un ticker en background que registra recordatorios
// de toma para todos los usuarios.
package reminders

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"medication-reminder/internal/domain/contacts"
	"medication-reminder/internal/domain/medications"
	"medication-reminder/internal/platform/logger"

	"github.com/google/uuid"
	"github.com/robfig/cron/v3"
)

const DefaultInterval = 30 * time.Second

type MedicationSource interface {
	Owners(ctx context.Context) ([]string, error)
	Alerts(ctx context.Context, ownerUserID string, at time.Time) (medications.Alerts, error)
}

type ContactSource interface {
	FindEmergencyContact(ctx context.Context, ownerUserID string) (name, phone string, ok bool, err error)
	Subscribe(fn contacts.Listener) (unsubscribe func())
}

// Recorder recibe cuántos recordatorios nuevos dejó cada tick (métricas).
type Recorder interface {
	RemindersRecorded(n int)
}

type Options struct {
	Interval time.Duration
	Location *time.Location
	FeedSize int
	Logger   logger.Logger
	Recorder Recorder
}

type contactEntry struct {
	phone string
	ok    bool
}

type Runner struct {
	meds     MedicationSource
	contacts ContactSource
	interval time.Duration
	loc      *time.Location
	log      logger.Logger
	rec      Recorder
	feed     *feed
	now      func() time.Time

	cmu          sync.RWMutex
	contactCache map[string]contactEntry

	mu          sync.Mutex
	cron        *cron.Cron
	unsubscribe func()
}

func NewRunner(meds MedicationSource, cs ContactSource, opts Options) *Runner {
	if opts.Interval <= 0 {
		opts.Interval = DefaultInterval
	}
	if opts.Location == nil {
		opts.Location = time.UTC
	}
	if opts.Logger == nil {
		opts.Logger = logger.Nop()
	}
	return &Runner{
		meds:         meds,
		contacts:     cs,
		interval:     opts.Interval,
		loc:          opts.Location,
		log:          opts.Logger.With(map[string]any{"component": "reminders"}),
		rec:          opts.Recorder,
		feed:         newFeed(opts.FeedSize),
		now:          time.Now,
		contactCache: make(map[string]contactEntry),
	}
}

// Start agenda el tick con cron y se suscribe a cambios de contactos para
// mantener el cache al día. Llamar Stop para liberar.
func (r *Runner) Start() error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.cron != nil {
		return errors.New("reminders runner already running")
	}

	c := cron.New(cron.WithChain(cron.SkipIfStillRunning(cronLogger{r.log})))
	spec := fmt.Sprintf("@every %s", r.interval)
	if _, err := c.AddFunc(spec, r.tickJob); err != nil {
		return fmt.Errorf("schedule reminders: %w", err)
	}

	if r.contacts != nil {
		r.unsubscribe = r.contacts.Subscribe(r.onContactChanged)
	}
	r.cron = c
	c.Start()

	r.log.Info("reminders runner started", map[string]any{"interval": r.interval.String(), "tz": r.loc.String()})
	return nil
}

// Stop detiene el cron y espera a que termine el tick en curso.
func (r *Runner) Stop() {
	r.mu.Lock()
	c := r.cron
	unsub := r.unsubscribe
	r.cron, r.unsubscribe = nil, nil
	r.mu.Unlock()

	if c == nil {
		return
	}
	<-c.Stop().Done()
	if unsub != nil {
		unsub()
	}
	r.log.Info("reminders runner stopped", nil)
}

func (r *Runner) tickJob() {
	ctx, cancel := context.WithTimeout(context.Background(), r.interval)
	defer cancel()
	if _, err := r.Tick(ctx); err != nil {
		r.log.Error("reminders tick failed", map[string]any{"err": err})
	}
}

// Tick evalúa las alertas de todos los usuarios en el minuto actual y
// registra las de toma nuevas. Devuelve cuántas se registraron.
func (r *Runner) Tick(ctx context.Context) (int, error) {
	at := r.now().In(r.loc).Truncate(time.Minute)

	owners, err := r.meds.Owners(ctx)
	if err != nil {
		return 0, err
	}

	added := 0
	for _, owner := range owners {
		if err := ctx.Err(); err != nil {
			return added, err
		}
		alerts, err := r.meds.Alerts(ctx, owner, at)
		if err != nil {
			r.log.Warn("reminders: alerts failed", map[string]any{"user_id": owner, "err": err})
			continue
		}
		for _, m := range alerts.DoseTime {
			if r.feed.add(r.reminderFor(ctx, owner, m, at)) {
				added++
			}
		}
	}

	r.feed.prune(at.Add(-time.Minute))
	if r.rec != nil {
		r.rec.RemindersRecorded(added)
	}
	if added > 0 {
		r.log.Debug("reminders recorded", map[string]any{"count": added, "clock": medications.ClockString(at)})
	}
	return added, nil
}

func (r *Runner) reminderFor(ctx context.Context, owner string, m medications.Medication, at time.Time) Reminder {
	msg := medications.DoseReminderMessage(m)
	rem := Reminder{
		ID:             uuid.NewString(),
		OwnerUserID:    owner,
		MedicationID:   m.ID,
		MedicationName: m.Name,
		DoseTime:       medications.ClockString(at),
		Message:        msg,
		At:             at,
	}
	if phone, ok := r.contactPhone(ctx, owner); ok {
		rem.WhatsAppURL = medications.WhatsAppURL(phone, msg)
	}
	return rem
}

// Feed devuelve los recordatorios del usuario, más reciente primero.
func (r *Runner) Feed(ownerUserID string) []Reminder {
	return r.feed.list(strings.TrimSpace(ownerUserID))
}

func (r *Runner) contactPhone(ctx context.Context, owner string) (string, bool) {
	if r.contacts == nil {
		return "", false
	}

	r.cmu.RLock()
	e, cached := r.contactCache[owner]
	r.cmu.RUnlock()
	if cached {
		return e.phone, e.ok
	}

	_, phone, ok, err := r.contacts.FindEmergencyContact(ctx, owner)
	if err != nil {
		r.log.Warn("reminders: contact lookup failed", map[string]any{"user_id": owner, "err": err})
		return "", false
	}
	// Un ContactChanged publicado durante la lectura gana sobre ella.
	r.cmu.Lock()
	defer r.cmu.Unlock()
	if e, cached := r.contactCache[owner]; cached {
		return e.phone, e.ok
	}
	r.contactCache[owner] = contactEntry{phone: phone, ok: ok}
	return phone, ok
}

func (r *Runner) onContactChanged(ev contacts.ContactChanged) {
	r.cmu.Lock()
	defer r.cmu.Unlock()
	if ev.Kind == contacts.ChangeSaved && ev.Contact != nil {
		r.contactCache[ev.OwnerUserID] = contactEntry{phone: ev.Contact.Phone, ok: true}
		return
	}
	r.contactCache[ev.OwnerUserID] = contactEntry{}
}

// cronLogger adapta logger.Logger a cron.Logger.
type cronLogger struct {
	log logger.Logger
}

func (l cronLogger) Info(msg string, keysAndValues ...interface{}) {
	l.log.Debug("cron: "+msg, kvFields(keysAndValues))
}

func (l cronLogger) Error(err error, msg string, keysAndValues ...interface{}) {
	f := kvFields(keysAndValues)
	f["err"] = err
	l.log.Error("cron: "+msg, f)
}

func kvFields(kv []interface{}) map[string]any {
	out := make(map[string]any, len(kv)/2+1)
	for i := 0; i+1 < len(kv); i += 2 {
		out[fmt.Sprint(kv[i])] = kv[i+1]
	}
	return out
}
