package handlers

import (
	"context"
	"io"
	"sort"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"velora.backend/internal/domain/entities"
	domainerrors "velora.backend/internal/domain/errors"
	"velora.backend/internal/interfaces/http/middleware"
	"velora.backend/pkg/utils"
)

// withUser injects a verified session identity the way the auth middleware
// does after token validation.
func withUser(userID uuid.UUID) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set(middleware.UserIDKey, userID)
		c.Set(middleware.UserEmailKey, "user@velora.shop")
		c.Set(middleware.UserRoleKey, string(entities.UserRoleUser))
		c.Next()
	}
}

type imageStoreStub struct {
	uploads []string
}

func (s *imageStoreStub) Upload(_ context.Context, folder, filename, _ string, _ io.Reader, _ int64) (string, error) {
	key := folder + "/" + filename
	s.uploads = append(s.uploads, key)
	return key, nil
}

func (s *imageStoreStub) PublicURL(key string) string {
	return "https://cdn.velora.test/" + key
}

type productRepoStub struct {
	products map[uuid.UUID]*entities.Product
}

func newProductRepoStub() *productRepoStub {
	return &productRepoStub{products: map[uuid.UUID]*entities.Product{}}
}

func (s *productRepoStub) Create(_ context.Context, p *entities.Product) error {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	p.CreatedAt = time.Now()
	s.products[p.ID] = p
	return nil
}

func (s *productRepoStub) GetByID(_ context.Context, id uuid.UUID) (*entities.Product, error) {
	p, ok := s.products[id]
	if !ok {
		return nil, domainerrors.ErrNotFound
	}
	return p, nil
}

func (s *productRepoStub) List(_ context.Context, filter entities.ProductFilter, _ utils.PaginationParams) ([]*entities.Product, int64, error) {
	var out []*entities.Product
	for _, p := range s.products {
		if filter.PublishedOnly && !p.Published {
			continue
		}
		if filter.Search != "" && !strings.Contains(strings.ToLower(p.Name), strings.ToLower(filter.Search)) {
			continue
		}
		out = append(out, p)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, int64(len(out)), nil
}

func (s *productRepoStub) Update(_ context.Context, p *entities.Product) error {
	if _, ok := s.products[p.ID]; !ok {
		return domainerrors.ErrNotFound
	}
	s.products[p.ID] = p
	return nil
}

func (s *productRepoStub) Delete(_ context.Context, id uuid.UUID) error {
	if _, ok := s.products[id]; !ok {
		return domainerrors.ErrNotFound
	}
	delete(s.products, id)
	return nil
}

func (s *productRepoStub) Count(_ context.Context) (int64, error) {
	return int64(len(s.products)), nil
}

type cartRepoStub struct {
	lines map[uuid.UUID]*entities.CartLine
	prods *productRepoStub
}

func newCartRepoStub(prods *productRepoStub) *cartRepoStub {
	return &cartRepoStub{lines: map[uuid.UUID]*entities.CartLine{}, prods: prods}
}

func (s *cartRepoStub) AddLine(_ context.Context, line *entities.CartLine) error {
	for _, l := range s.lines {
		if l.UserID == line.UserID && l.ProductID == line.ProductID && l.Size == line.Size {
			l.Quantity += line.Quantity
			return nil
		}
	}
	line.ID = uuid.New()
	s.lines[line.ID] = line
	return nil
}

func (s *cartRepoStub) GetLine(_ context.Context, userID, id uuid.UUID) (*entities.CartLine, error) {
	l, ok := s.lines[id]
	if !ok || l.UserID != userID {
		return nil, domainerrors.ErrNotFound
	}
	return l, nil
}

func (s *cartRepoStub) ListByUser(_ context.Context, userID uuid.UUID) ([]*entities.CartLine, error) {
	out := []*entities.CartLine{}
	for _, l := range s.lines {
		if l.UserID != userID {
			continue
		}
		if p, ok := s.prods.products[l.ProductID]; ok {
			l.Product = p
		}
		out = append(out, l)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Quantity > out[j].Quantity })
	return out, nil
}

func (s *cartRepoStub) UpdateQuantity(_ context.Context, userID, id uuid.UUID, quantity int) error {
	l, ok := s.lines[id]
	if !ok || l.UserID != userID {
		return domainerrors.ErrNotFound
	}
	l.Quantity = quantity
	return nil
}

func (s *cartRepoStub) DeleteLine(_ context.Context, userID, id uuid.UUID) error {
	l, ok := s.lines[id]
	if !ok || l.UserID != userID {
		return domainerrors.ErrNotFound
	}
	delete(s.lines, id)
	return nil
}

func (s *cartRepoStub) ClearByUser(_ context.Context, userID uuid.UUID) error {
	for id, l := range s.lines {
		if l.UserID == userID {
			delete(s.lines, id)
		}
	}
	return nil
}

type favoriteRepoStub struct {
	favs  map[uuid.UUID]*entities.Favorite
	prods *productRepoStub
}

func newFavoriteRepoStub(prods *productRepoStub) *favoriteRepoStub {
	return &favoriteRepoStub{favs: map[uuid.UUID]*entities.Favorite{}, prods: prods}
}

func (s *favoriteRepoStub) Add(_ context.Context, fav *entities.Favorite) error {
	for _, f := range s.favs {
		if f.UserID == fav.UserID && f.ProductID == fav.ProductID {
			return nil
		}
	}
	fav.ID = uuid.New()
	s.favs[fav.ID] = fav
	return nil
}

func (s *favoriteRepoStub) Remove(_ context.Context, userID, productID uuid.UUID) error {
	for id, f := range s.favs {
		if f.UserID == userID && f.ProductID == productID {
			delete(s.favs, id)
		}
	}
	return nil
}

func (s *favoriteRepoStub) ListByUser(_ context.Context, userID uuid.UUID) ([]*entities.Favorite, error) {
	out := []*entities.Favorite{}
	for _, f := range s.favs {
		if f.UserID != userID {
			continue
		}
		if p, ok := s.prods.products[f.ProductID]; ok {
			f.Product = p
		}
		out = append(out, f)
	}
	return out, nil
}

func (s *favoriteRepoStub) CountByProduct(_ context.Context, userID, productID uuid.UUID) (int64, error) {
	var n int64
	for _, f := range s.favs {
		if f.UserID == userID && f.ProductID == productID {
			n++
		}
	}
	return n, nil
}

type kycRepoStub struct {
	records map[uuid.UUID]*entities.KycRecord
}

func newKycRepoStub() *kycRepoStub {
	return &kycRepoStub{records: map[uuid.UUID]*entities.KycRecord{}}
}

func (s *kycRepoStub) Upsert(_ context.Context, record *entities.KycRecord) error {
	for _, r := range s.records {
		if r.UserID == record.UserID {
			record.ID = r.ID
			break
		}
	}
	if record.ID == uuid.Nil {
		record.ID = uuid.New()
	}
	record.Status = entities.KycPending
	record.RejectionReason.Valid = false
	s.records[record.ID] = record
	return nil
}

func (s *kycRepoStub) GetByUserID(_ context.Context, userID uuid.UUID) (*entities.KycRecord, error) {
	for _, r := range s.records {
		if r.UserID == userID {
			return r, nil
		}
	}
	return nil, domainerrors.ErrNotFound
}

func (s *kycRepoStub) GetByID(_ context.Context, id uuid.UUID) (*entities.KycRecord, error) {
	r, ok := s.records[id]
	if !ok {
		return nil, domainerrors.ErrNotFound
	}
	return r, nil
}

func (s *kycRepoStub) List(_ context.Context, status entities.KycStatus) ([]*entities.KycListItem, error) {
	out := []*entities.KycListItem{}
	for _, r := range s.records {
		if status != "" && r.Status != status {
			continue
		}
		out = append(out, &entities.KycListItem{Record: r, UserEmail: "user@velora.shop", UserName: "User"})
	}
	return out, nil
}

func (s *kycRepoStub) SetDecision(_ context.Context, id uuid.UUID, status entities.KycStatus, reason string) error {
	r, ok := s.records[id]
	if !ok {
		return domainerrors.ErrNotFound
	}
	r.Status = status
	if status == entities.KycRejected {
		r.RejectionReason.SetValid(reason)
	} else {
		r.RejectionReason.Valid = false
	}
	return nil
}

type sliderRepoStub struct {
	images map[uuid.UUID]*entities.SliderImage
}

func newSliderRepoStub() *sliderRepoStub {
	return &sliderRepoStub{images: map[uuid.UUID]*entities.SliderImage{}}
}

func (s *sliderRepoStub) Create(_ context.Context, image *entities.SliderImage) error {
	if image.ID == uuid.Nil {
		image.ID = uuid.New()
	}
	s.images[image.ID] = image
	return nil
}

func (s *sliderRepoStub) List(_ context.Context) ([]*entities.SliderImage, error) {
	out := []*entities.SliderImage{}
	for _, img := range s.images {
		out = append(out, img)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Position < out[j].Position })
	return out, nil
}

func (s *sliderRepoStub) UpdatePosition(_ context.Context, id uuid.UUID, position int) error {
	img, ok := s.images[id]
	if !ok {
		return domainerrors.ErrNotFound
	}
	img.Position = position
	return nil
}

func (s *sliderRepoStub) Delete(_ context.Context, id uuid.UUID) error {
	if _, ok := s.images[id]; !ok {
		return domainerrors.ErrNotFound
	}
	delete(s.images, id)
	return nil
}

type orderRepoStub struct {
	orders map[uuid.UUID]*entities.Order
}

func newOrderRepoStub() *orderRepoStub {
	return &orderRepoStub{orders: map[uuid.UUID]*entities.Order{}}
}

func (s *orderRepoStub) Create(_ context.Context, order *entities.Order) error {
	if order.ID == uuid.Nil {
		order.ID = uuid.New()
	}
	order.CreatedAt = time.Now()
	s.orders[order.ID] = order
	return nil
}

func (s *orderRepoStub) GetByID(_ context.Context, id uuid.UUID) (*entities.Order, error) {
	o, ok := s.orders[id]
	if !ok {
		return nil, domainerrors.ErrNotFound
	}
	return o, nil
}

func (s *orderRepoStub) ListByUser(_ context.Context, userID uuid.UUID) ([]*entities.Order, error) {
	out := []*entities.Order{}
	for _, o := range s.orders {
		if o.UserID == userID {
			out = append(out, o)
		}
	}
	return out, nil
}

func (s *orderRepoStub) Count(_ context.Context) (int64, error) {
	return int64(len(s.orders)), nil
}

type uowStub struct{}

func (uowStub) Do(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

type userRepoStub struct {
	users map[uuid.UUID]*entities.User
}

func newUserRepoStub() *userRepoStub {
	return &userRepoStub{users: map[uuid.UUID]*entities.User{}}
}

func (s *userRepoStub) Create(_ context.Context, user *entities.User) error {
	if user.ID == uuid.Nil {
		user.ID = uuid.New()
	}
	user.CreatedAt = time.Now()
	s.users[user.ID] = user
	return nil
}

func (s *userRepoStub) GetByID(_ context.Context, id uuid.UUID) (*entities.User, error) {
	u, ok := s.users[id]
	if !ok {
		return nil, domainerrors.ErrNotFound
	}
	return u, nil
}

func (s *userRepoStub) GetByEmail(_ context.Context, email string) (*entities.User, error) {
	for _, u := range s.users {
		if u.Email == email {
			return u, nil
		}
	}
	return nil, domainerrors.ErrNotFound
}

func (s *userRepoStub) UpdatePassword(_ context.Context, id uuid.UUID, hash string) error {
	u, ok := s.users[id]
	if !ok {
		return domainerrors.ErrNotFound
	}
	u.PasswordHash = hash
	return nil
}

func (s *userRepoStub) SetResetCode(_ context.Context, id uuid.UUID, code string, expiry time.Time) error {
	u, ok := s.users[id]
	if !ok {
		return domainerrors.ErrNotFound
	}
	u.ResetCode.SetValid(code)
	u.ResetCodeExpiry.SetValid(expiry)
	return nil
}

func (s *userRepoStub) ClearResetCode(_ context.Context, id uuid.UUID) error {
	u, ok := s.users[id]
	if !ok {
		return domainerrors.ErrNotFound
	}
	u.ResetCode.Valid = false
	u.ResetCodeExpiry.Valid = false
	return nil
}

func (s *userRepoStub) ClearExpiredResetCodes(context.Context, time.Time) (int64, error) {
	return 0, nil
}

func (s *userRepoStub) List(_ context.Context, search string) ([]*entities.User, error) {
	out := []*entities.User{}
	for _, u := range s.users {
		if search != "" && !strings.Contains(u.Email, search) && !strings.Contains(u.Name, search) {
			continue
		}
		out = append(out, u)
	}
	return out, nil
}

func (s *userRepoStub) Recent(_ context.Context, limit int) ([]*entities.User, error) {
	out := []*entities.User{}
	for _, u := range s.users {
		if len(out) == limit {
			break
		}
		out = append(out, u)
	}
	return out, nil
}

func (s *userRepoStub) Count(_ context.Context) (int64, error) {
	return int64(len(s.users)), nil
}

func (s *userRepoStub) HardDelete(_ context.Context, id uuid.UUID) error {
	if _, ok := s.users[id]; !ok {
		return domainerrors.ErrNotFound
	}
	delete(s.users, id)
	return nil
}

func seedStubProduct(prods *productRepoStub, name string, published bool) *entities.Product {
	p := &entities.Product{
		ID:        uuid.New(),
		Name:      name,
		Price:     59.90,
		Sizes:     []string{"S", "M", "L"},
		Published: published,
	}
	prods.products[p.ID] = p
	return p
}
