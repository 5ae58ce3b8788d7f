package reminders

import (
	"sync"
	"time"
)

const DefaultFeedSize = 50

// Reminder es un recordatorio de toma registrado por el ticker.
// No se entrega a nadie: queda en el feed del usuario.
type Reminder struct {
	ID             string    `json:"id"`
	OwnerUserID    string    `json:"user_id"`
	MedicationID   string    `json:"medication_id"`
	MedicationName string    `json:"medication_name"`
	DoseTime       string    `json:"dose_time"`
	Message        string    `json:"message"`
	WhatsAppURL    string    `json:"whatsapp_url,omitempty"`
	At             time.Time `json:"at"`
}

// feed guarda los últimos N recordatorios por usuario y recuerda qué
// (usuario, medicación, minuto) ya se registró.
type feed struct {
	size int

	mu    sync.Mutex
	items map[string][]Reminder
	seen  map[string]time.Time
}

func newFeed(size int) *feed {
	if size <= 0 {
		size = DefaultFeedSize
	}
	return &feed{
		size:  size,
		items: make(map[string][]Reminder),
		seen:  make(map[string]time.Time),
	}
}

func seenKey(owner, medID string, minute time.Time) string {
	return owner + "|" + medID + "|" + minute.UTC().Format("2006-01-02T15:04")
}

// add registra rem salvo que ya exista para el mismo minuto.
func (f *feed) add(rem Reminder) bool {
	key := seenKey(rem.OwnerUserID, rem.MedicationID, rem.At)

	f.mu.Lock()
	defer f.mu.Unlock()

	if _, dup := f.seen[key]; dup {
		return false
	}
	f.seen[key] = rem.At

	list := append(f.items[rem.OwnerUserID], rem)
	if len(list) > f.size {
		list = list[len(list)-f.size:]
	}
	f.items[rem.OwnerUserID] = list
	return true
}

// prune olvida claves de minutos anteriores a before.
func (f *feed) prune(before time.Time) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for k, at := range f.seen {
		if at.Before(before) {
			delete(f.seen, k)
		}
	}
}

// list devuelve el feed del usuario, más reciente primero.
func (f *feed) list(owner string) []Reminder {
	f.mu.Lock()
	defer f.mu.Unlock()

	src := f.items[owner]
	out := make([]Reminder, 0, len(src))
	for i := len(src) - 1; i >= 0; i-- {
		out = append(out, src[i])
	}
	return out
}
