package postgres

import (
	"context"
	"database/sql"

	"medication-reminder/internal/domain/contacts"
	"medication-reminder/internal/domain/medications"
	"medication-reminder/internal/domain/readings"
	"medication-reminder/internal/domain/subscriptions"
)

type MedicationsRepo struct {
	c collection[medications.Medication]
}

func NewMedicationsRepo(db *sql.DB) *MedicationsRepo {
	return &MedicationsRepo{c: collection[medications.Medication]{db: db, name: collMedications}}
}

func (r *MedicationsRepo) Create(ctx context.Context, m medications.Medication) error {
	return r.c.insert(ctx, m.OwnerUserID, m.ID, m.CreatedAt, m)
}

func (r *MedicationsRepo) Update(ctx context.Context, m medications.Medication) error {
	return r.c.update(ctx, m.OwnerUserID, m.ID, m)
}

func (r *MedicationsRepo) Delete(ctx context.Context, ownerUserID, id string) error {
	return r.c.delete(ctx, ownerUserID, id)
}

func (r *MedicationsRepo) GetByID(ctx context.Context, ownerUserID, id string) (medications.Medication, error) {
	return r.c.get(ctx, ownerUserID, id)
}

func (r *MedicationsRepo) ListByOwner(ctx context.Context, ownerUserID string) ([]medications.Medication, error) {
	return r.c.list(ctx, ownerUserID)
}

func (r *MedicationsRepo) ListOwners(ctx context.Context) ([]string, error) {
	return r.c.owners(ctx)
}

type BloodPressureRepo struct {
	c collection[readings.BloodPressureReading]
}

func NewBloodPressureRepo(db *sql.DB) *BloodPressureRepo {
	return &BloodPressureRepo{c: collection[readings.BloodPressureReading]{db: db, name: collBloodPressure}}
}

// sort_at = timestamp de la medición, así el listado ya sale cronológico.
func (r *BloodPressureRepo) Create(ctx context.Context, rd readings.BloodPressureReading) error {
	return r.c.insert(ctx, rd.OwnerUserID, rd.ID, rd.Timestamp, rd)
}

func (r *BloodPressureRepo) Delete(ctx context.Context, ownerUserID, id string) error {
	return r.c.delete(ctx, ownerUserID, id)
}

func (r *BloodPressureRepo) ListByOwner(ctx context.Context, ownerUserID string) ([]readings.BloodPressureReading, error) {
	return r.c.list(ctx, ownerUserID)
}

type DiabeticRepo struct {
	c collection[readings.DiabeticReading]
}

func NewDiabeticRepo(db *sql.DB) *DiabeticRepo {
	return &DiabeticRepo{c: collection[readings.DiabeticReading]{db: db, name: collDiabetic}}
}

func (r *DiabeticRepo) Create(ctx context.Context, rd readings.DiabeticReading) error {
	return r.c.insert(ctx, rd.OwnerUserID, rd.ID, rd.Timestamp, rd)
}

func (r *DiabeticRepo) Delete(ctx context.Context, ownerUserID, id string) error {
	return r.c.delete(ctx, ownerUserID, id)
}

func (r *DiabeticRepo) ListByOwner(ctx context.Context, ownerUserID string) ([]readings.DiabeticReading, error) {
	return r.c.list(ctx, ownerUserID)
}

// Suscripción y contacto: un documento por usuario, id = owner.

type SubscriptionsRepo struct {
	c collection[subscriptions.Subscription]
}

func NewSubscriptionsRepo(db *sql.DB) *SubscriptionsRepo {
	return &SubscriptionsRepo{c: collection[subscriptions.Subscription]{db: db, name: collSubscriptions}}
}

func (r *SubscriptionsRepo) Get(ctx context.Context, ownerUserID string) (subscriptions.Subscription, error) {
	return r.c.get(ctx, ownerUserID, ownerUserID)
}

func (r *SubscriptionsRepo) Save(ctx context.Context, s subscriptions.Subscription) error {
	return r.c.upsert(ctx, s.OwnerUserID, s.OwnerUserID, s.CreatedAt, s)
}

type ContactsRepo struct {
	c collection[contacts.Contact]
}

func NewContactsRepo(db *sql.DB) *ContactsRepo {
	return &ContactsRepo{c: collection[contacts.Contact]{db: db, name: collContacts}}
}

func (r *ContactsRepo) Get(ctx context.Context, ownerUserID string) (contacts.Contact, error) {
	return r.c.get(ctx, ownerUserID, ownerUserID)
}

func (r *ContactsRepo) Save(ctx context.Context, c contacts.Contact) error {
	return r.c.upsert(ctx, c.OwnerUserID, c.OwnerUserID, c.UpdatedAt, c)
}

func (r *ContactsRepo) Delete(ctx context.Context, ownerUserID string) error {
	return r.c.delete(ctx, ownerUserID, ownerUserID)
}
