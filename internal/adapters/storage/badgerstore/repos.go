package badgerstore

import (
	"context"
	"time"

	"medication-reminder/internal/domain/contacts"
	"medication-reminder/internal/domain/medications"
	"medication-reminder/internal/domain/readings"
	"medication-reminder/internal/domain/subscriptions"

	"github.com/dgraph-io/badger/v4"
)

type MedicationsRepo struct {
	c collection[medications.Medication]
}

func NewMedicationsRepo(db *badger.DB) *MedicationsRepo {
	return &MedicationsRepo{c: collection[medications.Medication]{
		db:     db,
		name:   collMedications,
		sortAt: func(m medications.Medication) time.Time { return m.CreatedAt },
	}}
}

func (r *MedicationsRepo) Create(ctx context.Context, m medications.Medication) error {
	return r.c.insert(ctx, m.OwnerUserID, m.ID, m)
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

func NewBloodPressureRepo(db *badger.DB) *BloodPressureRepo {
	return &BloodPressureRepo{c: collection[readings.BloodPressureReading]{
		db:     db,
		name:   collBloodPressure,
		sortAt: func(r readings.BloodPressureReading) time.Time { return r.Timestamp },
	}}
}

func (r *BloodPressureRepo) Create(ctx context.Context, rd readings.BloodPressureReading) error {
	return r.c.insert(ctx, rd.OwnerUserID, rd.ID, rd)
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

func NewDiabeticRepo(db *badger.DB) *DiabeticRepo {
	return &DiabeticRepo{c: collection[readings.DiabeticReading]{
		db:     db,
		name:   collDiabetic,
		sortAt: func(r readings.DiabeticReading) time.Time { return r.Timestamp },
	}}
}

func (r *DiabeticRepo) Create(ctx context.Context, rd readings.DiabeticReading) error {
	return r.c.insert(ctx, rd.OwnerUserID, rd.ID, rd)
}

func (r *DiabeticRepo) Delete(ctx context.Context, ownerUserID, id string) error {
	return r.c.delete(ctx, ownerUserID, id)
}

func (r *DiabeticRepo) ListByOwner(ctx context.Context, ownerUserID string) ([]readings.DiabeticReading, error) {
	return r.c.list(ctx, ownerUserID)
}

type SubscriptionsRepo struct {
	c collection[subscriptions.Subscription]
}

func NewSubscriptionsRepo(db *badger.DB) *SubscriptionsRepo {
	return &SubscriptionsRepo{c: collection[subscriptions.Subscription]{db: db, name: collSubscriptions}}
}

func (r *SubscriptionsRepo) Get(ctx context.Context, ownerUserID string) (subscriptions.Subscription, error) {
	return r.c.get(ctx, ownerUserID, ownerUserID)
}

func (r *SubscriptionsRepo) Save(ctx context.Context, s subscriptions.Subscription) error {
	return r.c.upsert(ctx, s.OwnerUserID, s.OwnerUserID, s)
}

type ContactsRepo struct {
	c collection[contacts.Contact]
}

func NewContactsRepo(db *badger.DB) *ContactsRepo {
	return &ContactsRepo{c: collection[contacts.Contact]{db: db, name: collContacts}}
}

func (r *ContactsRepo) Get(ctx context.Context, ownerUserID string) (contacts.Contact, error) {
	return r.c.get(ctx, ownerUserID, ownerUserID)
}

func (r *ContactsRepo) Save(ctx context.Context, c contacts.Contact) error {
	return r.c.upsert(ctx, c.OwnerUserID, c.OwnerUserID, c)
}

func (r *ContactsRepo) Delete(ctx context.Context, ownerUserID string) error {
	return r.c.delete(ctx, ownerUserID, ownerUserID)
}
