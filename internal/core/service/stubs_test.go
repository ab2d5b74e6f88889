package service

import (
	"context"
	"strconv"

	"github.com/rs/zerolog"

	"github.com/freelancehub/marketplace-api/internal/core/domain"
	"github.com/freelancehub/marketplace-api/internal/core/ports"
)

// In-memory stubs shared by the service tests. They enforce the same
// uniqueness rules the Mongo repositories do, so error paths exercise the
// real sentinels.

var testLogger = zerolog.Nop()

// --- users ---

type stubUserRepo struct {
	users  map[string]*domain.User
	nextID int
}

func newStubUserRepo() *stubUserRepo {
	return &stubUserRepo{users: make(map[string]*domain.User)}
}

func cloneUser(u *domain.User) *domain.User {
	if u == nil {
		return nil
	}
	clone := *u
	return &clone
}

func (r *stubUserRepo) Create(_ context.Context, user *domain.User) (*domain.User, error) {
	for _, existing := range r.users {
		if existing.Username == user.Username || existing.Email == user.Email {
			return nil, domain.ErrUserExists
		}
	}
	copy := cloneUser(user)
	r.nextID++
	copy.ID = "user_" + strconv.Itoa(r.nextID)
	r.users[copy.ID] = cloneUser(copy)
	return copy, nil
}

func (r *stubUserRepo) FindByID(_ context.Context, id string) (*domain.User, error) {
	if u, ok := r.users[id]; ok {
		return cloneUser(u), nil
	}
	return nil, domain.ErrUserNotFound
}

func (r *stubUserRepo) FindByUsername(_ context.Context, username string) (*domain.User, error) {
	for _, u := range r.users {
		if u.Username == username {
			return cloneUser(u), nil
		}
	}
	return nil, domain.ErrUserNotFound
}

func (r *stubUserRepo) Update(_ context.Context, user *domain.User) error {
	if _, ok := r.users[user.ID]; !ok {
		return domain.ErrUserNotFound
	}
	r.users[user.ID] = cloneUser(user)
	return nil
}

func (r *stubUserRepo) Delete(_ context.Context, id string) error {
	if _, ok := r.users[id]; !ok {
		return domain.ErrUserNotFound
	}
	delete(r.users, id)
	return nil
}

func (r *stubUserRepo) List(_ context.Context) ([]*domain.User, error) {
	out := make([]*domain.User, 0, len(r.users))
	for _, u := range r.users {
		out = append(out, cloneUser(u))
	}
	return out, nil
}

// --- gigs ---

type stubGigRepo struct {
	gigs   map[string]*domain.Gig
	nextID int
}

func newStubGigRepo() *stubGigRepo {
	return &stubGigRepo{gigs: make(map[string]*domain.Gig)}
}

func cloneGig(g *domain.Gig) *domain.Gig {
	if g == nil {
		return nil
	}
	clone := *g
	return &clone
}

func (r *stubGigRepo) Create(_ context.Context, g *domain.Gig) (*domain.Gig, error) {
	copy := cloneGig(g)
	r.nextID++
	copy.ID = "gig_" + strconv.Itoa(r.nextID)
	r.gigs[copy.ID] = cloneGig(copy)
	return copy, nil
}

func (r *stubGigRepo) FindByID(_ context.Context, id string) (*domain.Gig, error) {
	if g, ok := r.gigs[id]; ok {
		return cloneGig(g), nil
	}
	return nil, domain.ErrGigNotFound
}

func (r *stubGigRepo) List(_ context.Context, filter ports.GigFilter) ([]*domain.Gig, error) {
	var out []*domain.Gig
	for _, g := range r.gigs {
		if filter.UserID != "" && g.UserID != filter.UserID {
			continue
		}
		if filter.Category != "" && g.Category != filter.Category {
			continue
		}
		out = append(out, cloneGig(g))
	}
	return out, nil
}

func (r *stubGigRepo) Update(_ context.Context, g *domain.Gig) error {
	if _, ok := r.gigs[g.ID]; !ok {
		return domain.ErrGigNotFound
	}
	r.gigs[g.ID] = cloneGig(g)
	return nil
}

func (r *stubGigRepo) Delete(_ context.Context, id string) error {
	if _, ok := r.gigs[id]; !ok {
		return domain.ErrGigNotFound
	}
	delete(r.gigs, id)
	return nil
}

func (r *stubGigRepo) AddRating(_ context.Context, id string, star int) error {
	g, ok := r.gigs[id]
	if !ok {
		return domain.ErrGigNotFound
	}
	g.TotalStars += star
	g.StarNumber++
	return nil
}

func (r *stubGigRepo) IncrementSales(_ context.Context, id string) error {
	g, ok := r.gigs[id]
	if !ok {
		return domain.ErrGigNotFound
	}
	g.Sales++
	return nil
}

// --- orders ---

type stubOrderRepo struct {
	orders map[string]*domain.Order
	nextID int
}

func newStubOrderRepo() *stubOrderRepo {
	return &stubOrderRepo{orders: make(map[string]*domain.Order)}
}

func cloneOrder(o *domain.Order) *domain.Order {
	if o == nil {
		return nil
	}
	clone := *o
	return &clone
}

func (r *stubOrderRepo) Create(_ context.Context, o *domain.Order) (*domain.Order, error) {
	copy := cloneOrder(o)
	r.nextID++
	copy.ID = "order_" + strconv.Itoa(r.nextID)
	r.orders[copy.ID] = cloneOrder(copy)
	return copy, nil
}

func (r *stubOrderRepo) FindByID(_ context.Context, id string) (*domain.Order, error) {
	if o, ok := r.orders[id]; ok {
		return cloneOrder(o), nil
	}
	return nil, domain.ErrOrderNotFound
}

func (r *stubOrderRepo) FindByPaymentIntent(_ context.Context, paymentIntent string) (*domain.Order, error) {
	for _, o := range r.orders {
		if o.PaymentIntent == paymentIntent {
			return cloneOrder(o), nil
		}
	}
	return nil, domain.ErrOrderNotFound
}

func (r *stubOrderRepo) ListByParticipant(_ context.Context, userID string) ([]*domain.Order, error) {
	var out []*domain.Order
	for _, o := range r.orders {
		if userID == "" || o.SellerID == userID || o.BuyerID == userID {
			out = append(out, cloneOrder(o))
		}
	}
	return out, nil
}

func (r *stubOrderRepo) UpdateStatus(_ context.Context, id string, status domain.OrderStatus) error {
	o, ok := r.orders[id]
	if !ok {
		return domain.ErrOrderNotFound
	}
	o.Status = status
	return nil
}

// --- payments ---

type stubPaymentProvider struct {
	nextID    int
	succeeded map[string]bool
	verifyErr error
}

func newStubPaymentProvider() *stubPaymentProvider {
	return &stubPaymentProvider{succeeded: make(map[string]bool)}
}

func (p *stubPaymentProvider) CreateIntent(_ context.Context, amountCents int64, currency string) (*ports.PaymentIntent, error) {
	p.nextID++
	id := "pi_" + strconv.Itoa(p.nextID)
	return &ports.PaymentIntent{ID: id, ClientSecret: id + "_secret"}, nil
}

func (p *stubPaymentProvider) Succeeded(_ context.Context, intentID string) (bool, error) {
	if p.verifyErr != nil {
		return false, p.verifyErr
	}
	return p.succeeded[intentID], nil
}

// --- conversations / messages ---

type stubConversationRepo struct {
	convs map[string]*domain.Conversation
}

func newStubConversationRepo() *stubConversationRepo {
	return &stubConversationRepo{convs: make(map[string]*domain.Conversation)}
}

func cloneConversation(c *domain.Conversation) *domain.Conversation {
	if c == nil {
		return nil
	}
	clone := *c
	return &clone
}

func (r *stubConversationRepo) Create(_ context.Context, c *domain.Conversation) (*domain.Conversation, error) {
	if existing, ok := r.convs[c.ID]; ok {
		return cloneConversation(existing), nil
	}
	r.convs[c.ID] = cloneConversation(c)
	return cloneConversation(c), nil
}

func (r *stubConversationRepo) FindByID(_ context.Context, id string) (*domain.Conversation, error) {
	if c, ok := r.convs[id]; ok {
		return cloneConversation(c), nil
	}
	return nil, domain.ErrConversationNotFound
}

func (r *stubConversationRepo) ListByParticipant(_ context.Context, userID string) ([]*domain.Conversation, error) {
	var out []*domain.Conversation
	for _, c := range r.convs {
		if c.SellerID == userID || c.BuyerID == userID {
			out = append(out, cloneConversation(c))
		}
	}
	return out, nil
}

func (r *stubConversationRepo) SetRead(_ context.Context, id string, seller bool, read bool) error {
	c, ok := r.convs[id]
	if !ok {
		return domain.ErrConversationNotFound
	}
	if seller {
		c.ReadBySeller = read
	} else {
		c.ReadByBuyer = read
	}
	return nil
}

func (r *stubConversationRepo) Touch(_ context.Context, id, lastMessage string, senderIsSeller bool) error {
	c, ok := r.convs[id]
	if !ok {
		return domain.ErrConversationNotFound
	}
	c.LastMessage = lastMessage
	c.ReadBySeller = senderIsSeller
	c.ReadByBuyer = !senderIsSeller
	return nil
}

type stubMessageRepo struct {
	messages []*domain.Message
	nextID   int
}

func newStubMessageRepo() *stubMessageRepo {
	return &stubMessageRepo{}
}

func (r *stubMessageRepo) Create(_ context.Context, m *domain.Message) (*domain.Message, error) {
	clone := *m
	r.nextID++
	clone.ID = "msg_" + strconv.Itoa(r.nextID)
	r.messages = append(r.messages, &clone)
	out := clone
	return &out, nil
}

func (r *stubMessageRepo) ListByConversation(_ context.Context, conversationID string) ([]*domain.Message, error) {
	var out []*domain.Message
	for _, m := range r.messages {
		if m.ConversationID == conversationID {
			clone := *m
			out = append(out, &clone)
		}
	}
	return out, nil
}

// --- reviews ---

type stubReviewRepo struct {
	reviews []*domain.Review
	nextID  int
}

func newStubReviewRepo() *stubReviewRepo {
	return &stubReviewRepo{}
}

func (r *stubReviewRepo) Create(_ context.Context, rev *domain.Review) (*domain.Review, error) {
	for _, existing := range r.reviews {
		if existing.GigID == rev.GigID && existing.UserID == rev.UserID {
			return nil, domain.ErrReviewExists
		}
	}
	clone := *rev
	r.nextID++
	clone.ID = "review_" + strconv.Itoa(r.nextID)
	r.reviews = append(r.reviews, &clone)
	out := clone
	return &out, nil
}

func (r *stubReviewRepo) FindByGigAndUser(_ context.Context, gigID, userID string) (*domain.Review, error) {
	for _, rev := range r.reviews {
		if rev.GigID == gigID && rev.UserID == userID {
			clone := *rev
			return &clone, nil
		}
	}
	return nil, domain.ErrReviewNotFound
}

func (r *stubReviewRepo) ListByGig(_ context.Context, gigID string) ([]*domain.Review, error) {
	var out []*domain.Review
	for _, rev := range r.reviews {
		if rev.GigID == gigID {
			clone := *rev
			out = append(out, &clone)
		}
	}
	return out, nil
}
