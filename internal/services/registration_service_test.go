package services

import (
	"context"
	"errors"
	"mime/multipart"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/v2/bson"

	"github.com/maulharun/ukm-terbaru123/dto"
	"github.com/maulharun/ukm-terbaru123/internal/models"
	"github.com/maulharun/ukm-terbaru123/internal/storage"
)

// fakeStore backs every store interface with plain maps so the workflow
// can run without a mongod.
type fakeStore struct {
	regs  map[bson.ObjectID]models.Registration
	ukms  map[string]models.UKM
	users map[bson.ObjectID]models.User

	userNotifs []models.UserNotification
	ukmNotifs  []models.UKMNotification

	failUserNotif bool
	failUKMNotif  bool
}

func newFakeStore() *fakeStore {
	return &fakeStore{
		regs:  map[bson.ObjectID]models.Registration{},
		ukms:  map[string]models.UKM{},
		users: map[bson.ObjectID]models.User{},
	}
}

func (f *fakeStore) FindByID(_ context.Context, id bson.ObjectID) (*models.Registration, error) {
	if reg, ok := f.regs[id]; ok {
		return &reg, nil
	}
	return nil, nil
}

func (f *fakeStore) Insert(_ context.Context, reg *models.Registration) error {
	if reg.ID.IsZero() {
		reg.ID = bson.NewObjectID()
	}
	f.regs[reg.ID] = *reg
	return nil
}

func (f *fakeStore) MarkDecided(_ context.Context, id bson.ObjectID, status, alasanPenolakan string, tanggalDiterima *time.Time) (bool, error) {
	reg, ok := f.regs[id]
	if !ok || reg.Status != models.RegistrationPending {
		return false, nil
	}
	reg.Status = status
	reg.AlasanPenolakan = alasanPenolakan
	reg.TanggalDiterima = tanggalDiterima
	reg.UpdatedAt = time.Now()
	f.regs[id] = reg
	return true, nil
}

func (f *fakeStore) FindByName(_ context.Context, name string) (*models.UKM, error) {
	if ukm, ok := f.ukms[name]; ok {
		return &ukm, nil
	}
	return nil, nil
}

func (f *fakeStore) AppendMember(_ context.Context, name string, member models.UKMMember) (bool, error) {
	ukm, ok := f.ukms[name]
	if !ok {
		return false, nil
	}
	ukm.Members = append(ukm.Members, member)
	f.ukms[name] = ukm
	return true, nil
}

func (f *fakeStore) FindUserByID(_ context.Context, id bson.ObjectID) (*models.User, error) {
	if user, ok := f.users[id]; ok {
		return &user, nil
	}
	return nil, nil
}

func (f *fakeStore) AppendUKM(_ context.Context, id bson.ObjectID, entry models.UserUKM) (bool, error) {
	user, ok := f.users[id]
	if !ok {
		return false, nil
	}
	user.UKM = append(user.UKM, entry)
	f.users[id] = user
	return true, nil
}

func (f *fakeStore) InsertUserNotification(_ context.Context, n *models.UserNotification) error {
	if f.failUserNotif {
		return errors.New("notif-user insert failed")
	}
	n.ID = bson.NewObjectID()
	f.userNotifs = append(f.userNotifs, *n)
	return nil
}

func (f *fakeStore) InsertUKMNotification(_ context.Context, n *models.UKMNotification) error {
	if f.failUKMNotif {
		return errors.New("notif-ukm insert failed")
	}
	n.ID = bson.NewObjectID()
	f.ukmNotifs = append(f.ukmNotifs, *n)
	return nil
}

func (f *fakeStore) MarkUserRead(_ context.Context, id bson.ObjectID) (bool, error) {
	for i, n := range f.userNotifs {
		if n.ID == id {
			f.userNotifs[i].IsRead = true
			return true, nil
		}
	}
	return false, nil
}

func (f *fakeStore) MarkUKMRead(_ context.Context, id bson.ObjectID) (bool, error) {
	for i, n := range f.ukmNotifs {
		if n.ID == id {
			f.ukmNotifs[i].IsRead = true
			return true, nil
		}
	}
	return false, nil
}

type fakeSnapshot struct {
	regs       map[bson.ObjectID]models.Registration
	ukms       map[string]models.UKM
	users      map[bson.ObjectID]models.User
	userNotifs []models.UserNotification
	ukmNotifs  []models.UKMNotification
}

func (f *fakeStore) snapshot() fakeSnapshot {
	snap := fakeSnapshot{
		regs:       make(map[bson.ObjectID]models.Registration, len(f.regs)),
		ukms:       make(map[string]models.UKM, len(f.ukms)),
		users:      make(map[bson.ObjectID]models.User, len(f.users)),
		userNotifs: append([]models.UserNotification(nil), f.userNotifs...),
		ukmNotifs:  append([]models.UKMNotification(nil), f.ukmNotifs...),
	}
	for k, v := range f.regs {
		snap.regs[k] = v
	}
	for k, v := range f.ukms {
		v.Members = append([]models.UKMMember(nil), v.Members...)
		snap.ukms[k] = v
	}
	for k, v := range f.users {
		v.UKM = append([]models.UserUKM(nil), v.UKM...)
		snap.users[k] = v
	}
	return snap
}

func (f *fakeStore) restore(snap fakeSnapshot) {
	f.regs = snap.regs
	f.ukms = snap.ukms
	f.users = snap.users
	f.userNotifs = snap.userNotifs
	f.ukmNotifs = snap.ukmNotifs
}

// fakeAtomic rolls the store back to its pre-unit state on failure, the
// same observable contract a mongo transaction gives the service.
type fakeAtomic struct {
	store *fakeStore
}

func (a fakeAtomic) Run(ctx context.Context, fn func(ctx context.Context) error) error {
	snap := a.store.snapshot()
	if err := fn(ctx); err != nil {
		a.store.restore(snap)
		return err
	}
	return nil
}

type fakeAssets struct {
	uploads []string
	deleted []string
	fail    bool
}

func (f *fakeAssets) Upload(_ context.Context, file *multipart.FileHeader, folder string) (*storage.UploadResult, error) {
	if f.fail {
		return nil, errors.New("upload failed")
	}
	key := folder + "/" + file.Filename
	f.uploads = append(f.uploads, key)
	return &storage.UploadResult{URL: "https://assets.local/" + key, PublicID: key}, nil
}

func (f *fakeAssets) Delete(_ context.Context, publicID string) error {
	f.deleted = append(f.deleted, publicID)
	return nil
}

// userStoreAdapter renames FindUserByID to the UserStore method set
// without colliding with the registration FindByID on fakeStore.
type userStoreAdapter struct {
	*fakeStore
}

func (a userStoreAdapter) FindByID(ctx context.Context, id bson.ObjectID) (*models.User, error) {
	return a.FindUserByID(ctx, id)
}

type fixture struct {
	store   *fakeStore
	assets  *fakeAssets
	svc     *RegistrationService
	userID  bson.ObjectID
	ukmName string
}

func newFixture(t *testing.T) *fixture {
	t.Helper()

	store := newFakeStore()
	assets := &fakeAssets{}

	userID := bson.NewObjectID()
	store.users[userID] = models.User{
		ID:       userID,
		Name:     "Budi Santoso",
		Email:    "budi@kampus.ac.id",
		Role:     models.RoleMahasiswa,
		NIM:      "2110512001",
		Fakultas: "Teknik",
		Prodi:    "Informatika",
	}
	store.ukms["Robotics Club"] = models.UKM{
		ID:       bson.NewObjectID(),
		Name:     "Robotics Club",
		Category: "Teknologi",
	}

	svc := NewRegistrationService(store, store, userStoreAdapter{store}, store, assets, fakeAtomic{store})
	return &fixture{
		store:   store,
		assets:  assets,
		svc:     svc,
		userID:  userID,
		ukmName: "Robotics Club",
	}
}

func (fx *fixture) submitRequest() dto.SubmitRegistrationRequest {
	return dto.SubmitRegistrationRequest{
		UserID:   fx.userID.Hex(),
		Nama:     "Budi Santoso",
		Email:    "budi@kampus.ac.id",
		NIM:      "2110512001",
		Fakultas: "Teknik",
		Prodi:    "Informatika",
		UKMName:  fx.ukmName,
		Alasan:   "Ingin belajar robotika",
	}
}

// pendingRegistration seeds a submitted registration directly, skipping
// the upload path.
func (fx *fixture) pendingRegistration() bson.ObjectID {
	id := bson.NewObjectID()
	now := time.Now()
	fx.store.regs[id] = models.Registration{
		ID:        id,
		UserID:    fx.userID.Hex(),
		Nama:      "Budi Santoso",
		Email:     "budi@kampus.ac.id",
		NIM:       "2110512001",
		Fakultas:  "Teknik",
		Prodi:     "Informatika",
		UKMName:   fx.ukmName,
		Alasan:    "Ingin belajar robotika",
		KTMFile:   models.FileRef{URL: "https://assets.local/ktm.png", PublicID: "registrations/ktm/ktm.png"},
		Status:    models.RegistrationPending,
		CreatedAt: now,
		UpdatedAt: now,
	}
	return id
}

func TestSubmitCreatesPendingRegistration(t *testing.T) {
	fx := newFixture(t)

	res, err := fx.svc.Submit(context.Background(), fx.submitRequest(),
		&multipart.FileHeader{Filename: "ktm.png"},
		&multipart.FileHeader{Filename: "sertifikat.pdf"})
	require.NoError(t, err)
	require.NotNil(t, res)

	oid, err := bson.ObjectIDFromHex(res.RegistrationID)
	require.NoError(t, err)

	reg, ok := fx.store.regs[oid]
	require.True(t, ok)
	assert.Equal(t, models.RegistrationPending, reg.Status)
	assert.Equal(t, fx.ukmName, reg.UKMName)
	assert.Equal(t, "https://assets.local/registrations/ktm/ktm.png", reg.KTMFile.URL)
	require.NotNil(t, reg.SertifikatFile)
	assert.Equal(t, "registrations/sertifikat/sertifikat.pdf", reg.SertifikatFile.PublicID)
	assert.Nil(t, reg.TanggalDiterima)

	assert.Len(t, fx.assets.uploads, 2)
}

func TestSubmitSertifikatOptional(t *testing.T) {
	fx := newFixture(t)

	res, err := fx.svc.Submit(context.Background(), fx.submitRequest(),
		&multipart.FileHeader{Filename: "ktm.png"}, nil)
	require.NoError(t, err)

	oid, _ := bson.ObjectIDFromHex(res.RegistrationID)
	assert.Nil(t, fx.store.regs[oid].SertifikatFile)
	assert.Empty(t, res.SertifikatURL)
}

func TestSubmitRequiresKTM(t *testing.T) {
	fx := newFixture(t)

	_, err := fx.svc.Submit(context.Background(), fx.submitRequest(), nil, nil)
	assert.ErrorIs(t, err, ErrValidation)
	assert.Empty(t, fx.store.regs)
}

func TestSubmitRejectsIncompleteForm(t *testing.T) {
	fx := newFixture(t)
	in := fx.submitRequest()
	in.NIM = ""

	_, err := fx.svc.Submit(context.Background(), in, &multipart.FileHeader{Filename: "ktm.png"}, nil)
	assert.ErrorIs(t, err, ErrValidation)
	assert.Empty(t, fx.assets.uploads, "nothing may be uploaded for an invalid form")
}

func TestSubmitUnknownUser(t *testing.T) {
	fx := newFixture(t)
	in := fx.submitRequest()
	in.UserID = bson.NewObjectID().Hex()

	_, err := fx.svc.Submit(context.Background(), in, &multipart.FileHeader{Filename: "ktm.png"}, nil)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestSubmitUnknownUKM(t *testing.T) {
	fx := newFixture(t)
	in := fx.submitRequest()
	in.UKMName = "Paduan Suara"

	_, err := fx.svc.Submit(context.Background(), in, &multipart.FileHeader{Filename: "ktm.png"}, nil)
	assert.ErrorIs(t, err, ErrNotFound)
	assert.Empty(t, fx.store.regs)
}

func TestSubmitBlocksActiveMember(t *testing.T) {
	fx := newFixture(t)
	user := fx.store.users[fx.userID]
	user.UKM = append(user.UKM, models.UserUKM{Name: "robotics club", Status: "active"})
	fx.store.users[fx.userID] = user

	_, err := fx.svc.Submit(context.Background(), fx.submitRequest(),
		&multipart.FileHeader{Filename: "ktm.png"}, nil)
	assert.ErrorIs(t, err, ErrValidation)
	assert.Empty(t, fx.store.regs)
}

func TestDecideApprove(t *testing.T) {
	fx := newFixture(t)
	regID := fx.pendingRegistration()

	err := fx.svc.Decide(context.Background(), regID.Hex(), models.RegistrationApproved, "")
	require.NoError(t, err)

	reg := fx.store.regs[regID]
	assert.Equal(t, models.RegistrationApproved, reg.Status)
	require.NotNil(t, reg.TanggalDiterima)

	ukm := fx.store.ukms[fx.ukmName]
	require.Len(t, ukm.Members, 1)
	assert.Equal(t, fx.userID.Hex(), ukm.Members[0].UserID)
	assert.Equal(t, "2110512001", ukm.Members[0].NIM)

	user := fx.store.users[fx.userID]
	require.Len(t, user.UKM, 1)
	assert.Equal(t, fx.ukmName, user.UKM[0].Name)
	assert.Equal(t, "active", user.UKM[0].Status)

	require.Len(t, fx.store.userNotifs, 1)
	un := fx.store.userNotifs[0]
	assert.Equal(t, models.NotifSuccess, un.Type)
	assert.Equal(t, "Selamat! Anda telah diterima di UKM Robotics Club", un.Message)
	assert.False(t, un.IsRead)

	require.Len(t, fx.store.ukmNotifs, 1)
	on := fx.store.ukmNotifs[0]
	assert.Equal(t, "Anggota Baru", on.Title)
	assert.Equal(t, "Budi Santoso (2110512001) telah bergabung dengan UKM Robotics Club", on.Message)
	require.NotNil(t, on.UserDetails)
	assert.Equal(t, "Informatika", on.UserDetails.Prodi)
}

func TestDecideReject(t *testing.T) {
	fx := newFixture(t)
	regID := fx.pendingRegistration()

	err := fx.svc.Decide(context.Background(), regID.Hex(), models.RegistrationRejected, "Dokumen tidak lengkap")
	require.NoError(t, err)

	reg := fx.store.regs[regID]
	assert.Equal(t, models.RegistrationRejected, reg.Status)
	assert.Equal(t, "Dokumen tidak lengkap", reg.AlasanPenolakan)
	assert.Nil(t, reg.TanggalDiterima)

	// Rejection must not touch membership.
	assert.Empty(t, fx.store.ukms[fx.ukmName].Members)
	assert.Empty(t, fx.store.users[fx.userID].UKM)

	require.Len(t, fx.store.userNotifs, 1)
	un := fx.store.userNotifs[0]
	assert.Equal(t, models.NotifWarning, un.Type)
	assert.Equal(t, "Maaf, pendaftaran Anda di UKM Robotics Club ditolak. Dokumen tidak lengkap", un.Message)
	assert.Empty(t, fx.store.ukmNotifs)
}

func TestDecideRejectRequiresReason(t *testing.T) {
	fx := newFixture(t)
	regID := fx.pendingRegistration()

	err := fx.svc.Decide(context.Background(), regID.Hex(), models.RegistrationRejected, "   ")
	assert.ErrorIs(t, err, ErrValidation)
	assert.Equal(t, models.RegistrationPending, fx.store.regs[regID].Status)
}

func TestDecideInvalidStatus(t *testing.T) {
	fx := newFixture(t)
	regID := fx.pendingRegistration()

	err := fx.svc.Decide(context.Background(), regID.Hex(), "cancelled", "")
	assert.ErrorIs(t, err, ErrValidation)
}

func TestDecideUnknownRegistration(t *testing.T) {
	fx := newFixture(t)

	err := fx.svc.Decide(context.Background(), bson.NewObjectID().Hex(), models.RegistrationApproved, "")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestDecideTwiceConflicts(t *testing.T) {
	fx := newFixture(t)
	regID := fx.pendingRegistration()

	require.NoError(t, fx.svc.Decide(context.Background(), regID.Hex(), models.RegistrationApproved, ""))

	err := fx.svc.Decide(context.Background(), regID.Hex(), models.RegistrationRejected, "terlambat")
	assert.ErrorIs(t, err, ErrConflict)

	// The first decision stands untouched.
	assert.Equal(t, models.RegistrationApproved, fx.store.regs[regID].Status)
	assert.Len(t, fx.store.ukms[fx.ukmName].Members, 1)
	assert.Len(t, fx.store.userNotifs, 1)
}

func TestDecideApproveRollsBackOnNotificationFailure(t *testing.T) {
	fx := newFixture(t)
	regID := fx.pendingRegistration()
	fx.store.failUKMNotif = true

	err := fx.svc.Decide(context.Background(), regID.Hex(), models.RegistrationApproved, "")
	require.Error(t, err)

	// The whole unit rolls back: registration still pending and
	// decidable, no membership, no partial notifications.
	reg := fx.store.regs[regID]
	assert.Equal(t, models.RegistrationPending, reg.Status)
	assert.Nil(t, reg.TanggalDiterima)
	assert.Empty(t, fx.store.ukms[fx.ukmName].Members)
	assert.Empty(t, fx.store.users[fx.userID].UKM)
	assert.Empty(t, fx.store.userNotifs)
	assert.Empty(t, fx.store.ukmNotifs)

	// A retry after the outage succeeds.
	fx.store.failUKMNotif = false
	require.NoError(t, fx.svc.Decide(context.Background(), regID.Hex(), models.RegistrationApproved, ""))
	assert.Equal(t, models.RegistrationApproved, fx.store.regs[regID].Status)
}

func TestDecideApproveRollsBackOnMissingUKM(t *testing.T) {
	fx := newFixture(t)
	regID := fx.pendingRegistration()
	delete(fx.store.ukms, fx.ukmName)

	err := fx.svc.Decide(context.Background(), regID.Hex(), models.RegistrationApproved, "")
	assert.ErrorIs(t, err, ErrNotFound)
	assert.Equal(t, models.RegistrationPending, fx.store.regs[regID].Status)
	assert.Empty(t, fx.store.userNotifs)
}
