package usecase

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"

	"procurehub/internal/domain/entity"
	"procurehub/internal/domain/repository"
	"procurehub/pkg/errors"
)

// In-memory repositories backing the usecase tests.

type memUserRepo struct {
	mu    sync.Mutex
	users map[string]*entity.User
}

func newMemUserRepo() *memUserRepo {
	return &memUserRepo{users: make(map[string]*entity.User)}
}

func (r *memUserRepo) Create(ctx context.Context, user *entity.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if user.ID == "" {
		user.ID = uuid.New().String()
	}
	r.users[user.ID] = user
	return nil
}

func (r *memUserRepo) GetByID(ctx context.Context, id string) (*entity.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if user, ok := r.users[id]; ok {
		return user, nil
	}
	return nil, errors.NotFound("User not found", nil)
}

func (r *memUserRepo) GetByEmail(ctx context.Context, email string) (*entity.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, user := range r.users {
		if user.Email == email {
			return user, nil
		}
	}
	return nil, errors.NotFound("User not found", nil)
}

func (r *memUserRepo) GetByPhone(ctx context.Context, phone string) (*entity.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, user := range r.users {
		if user.Phone == phone {
			return user, nil
		}
	}
	return nil, errors.NotFound("User not found", nil)
}

func (r *memUserRepo) Update(ctx context.Context, user *entity.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.users[user.ID] = user
	return nil
}

type memProductRepo struct {
	mu       sync.Mutex
	products map[string]*entity.Product
}

func newMemProductRepo() *memProductRepo {
	return &memProductRepo{products: make(map[string]*entity.Product)}
}

func (r *memProductRepo) Create(ctx context.Context, product *entity.Product) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if product.ID == "" {
		product.ID = uuid.New().String()
	}
	r.products[product.ID] = product
	return nil
}

func (r *memProductRepo) GetByID(ctx context.Context, id string) (*entity.Product, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if product, ok := r.products[id]; ok {
		return product, nil
	}
	return nil, errors.NotFound("Product not found", nil)
}

func (r *memProductRepo) List(ctx context.Context, limit, offset int) ([]*entity.Product, int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	all := make([]*entity.Product, 0, len(r.products))
	for _, p := range r.products {
		all = append(all, p)
	}
	total := int64(len(all))
	if offset > len(all) {
		return []*entity.Product{}, total, nil
	}
	end := offset + limit
	if end > len(all) {
		end = len(all)
	}
	return all[offset:end], total, nil
}

func (r *memProductRepo) ListByUser(ctx context.Context, userID string) ([]*entity.Product, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var result []*entity.Product
	for _, p := range r.products {
		if p.UserID == userID {
			result = append(result, p)
		}
	}
	return result, nil
}

func (r *memProductRepo) Update(ctx context.Context, product *entity.Product) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.products[product.ID] = product
	return nil
}

func (r *memProductRepo) Delete(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.products, id)
	return nil
}

type memChatRepo struct {
	mu    sync.Mutex
	rooms map[string]*entity.ChatRoom
}

func newMemChatRepo() *memChatRepo {
	return &memChatRepo{rooms: make(map[string]*entity.ChatRoom)}
}

func (r *memChatRepo) GetHistory(ctx context.Context, roomID string) (*entity.ChatRoom, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if room, ok := r.rooms[roomID]; ok {
		copied := *room
		return &copied, nil
	}
	return &entity.ChatRoom{RoomID: roomID, Messages: []entity.ChatMessage{}}, nil
}

func (r *memChatRepo) ResetUnread(ctx context.Context, roomID string, side string) (*entity.ChatRoom, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	room, ok := r.rooms[roomID]
	if !ok {
		return &entity.ChatRoom{RoomID: roomID, Messages: []entity.ChatMessage{}}, nil
	}
	if side == entity.SideSeller {
		room.SellerUnreadCount = 0
	} else {
		room.BuyerUnreadCount = 0
	}
	copied := *room
	return &copied, nil
}

func (r *memChatRepo) AppendMessage(ctx context.Context, identity repository.RoomIdentity, msg entity.ChatMessage) (*entity.ChatRoom, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	room, ok := r.rooms[identity.RoomID]
	if !ok {
		room = &entity.ChatRoom{
			RoomID:    identity.RoomID,
			ProductID: identity.ProductID,
			BuyerID:   identity.BuyerID,
			SellerID:  identity.SellerID,
			Messages:  []entity.ChatMessage{},
			CreatedAt: time.Now(),
		}
		r.rooms[identity.RoomID] = room
	}
	room.Messages = append(room.Messages, msg)
	last := msg
	room.LastMessage = &last
	if msg.SenderType == entity.SideBuyer {
		room.SellerUnreadCount++
	} else {
		room.BuyerUnreadCount++
	}
	room.UpdatedAt = time.Now()
	copied := *room
	return &copied, nil
}

func (r *memChatRepo) ListRecentByUser(ctx context.Context, userID string) ([]*entity.ChatRoom, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var result []*entity.ChatRoom
	for _, room := range r.rooms {
		if room.BuyerID == room.SellerID {
			continue
		}
		if room.BuyerID == userID || room.SellerID == userID {
			copied := *room
			result = append(result, &copied)
		}
	}
	return result, nil
}

type memRequirementRepo struct {
	mu           sync.Mutex
	requirements map[string]*entity.Requirement
	approved     []*entity.ApprovedRequirement
}

func newMemRequirementRepo() *memRequirementRepo {
	return &memRequirementRepo{requirements: make(map[string]*entity.Requirement)}
}

func (r *memRequirementRepo) Create(ctx context.Context, req *entity.Requirement) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if req.ID == "" {
		req.ID = uuid.New().String()
	}
	r.requirements[req.ID] = req
	return nil
}

func (r *memRequirementRepo) ListByBuyer(ctx context.Context, buyerID string) ([]*entity.Requirement, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var result []*entity.Requirement
	for _, req := range r.requirements {
		if req.BuyerID == buyerID && !req.IsDelete {
			result = append(result, req)
		}
	}
	return result, nil
}

func (r *memRequirementRepo) FindOpen(ctx context.Context, productID, buyerID, sellerID string) (*entity.Requirement, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, req := range r.requirements {
		if req.ProductID != productID || req.BuyerID != buyerID {
			continue
		}
		if req.DealStatus != "pending" || req.IsDelete {
			continue
		}
		for _, s := range req.Sellers {
			if s.SellerID == sellerID {
				return req, nil
			}
		}
	}
	return nil, errors.NotFound("Requirement not found", nil)
}

func (r *memRequirementRepo) MarkApproved(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	req, ok := r.requirements[id]
	if !ok {
		return errors.NotFound("Requirement not found", nil)
	}
	req.RequirementApproved = true
	return nil
}

func (r *memRequirementRepo) CreateApproved(ctx context.Context, approved *entity.ApprovedRequirement) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if approved.ID == "" {
		approved.ID = uuid.New().String()
	}
	r.approved = append(r.approved, approved)
	return nil
}

type memBidRepo struct {
	mu   sync.Mutex
	bids map[string]*entity.Bid
}

func newMemBidRepo() *memBidRepo {
	return &memBidRepo{bids: make(map[string]*entity.Bid)}
}

func (r *memBidRepo) Create(ctx context.Context, bid *entity.Bid) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if bid.ID == "" {
		bid.ID = uuid.New().String()
	}
	r.bids[bid.ID] = bid
	return nil
}

func (r *memBidRepo) GetByID(ctx context.Context, id string) (*entity.Bid, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if bid, ok := r.bids[id]; ok {
		return bid, nil
	}
	return nil, errors.NotFound("Bid not found", nil)
}

func (r *memBidRepo) ListByBuyer(ctx context.Context, buyerID string) ([]*entity.Bid, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var result []*entity.Bid
	for _, bid := range r.bids {
		if bid.BuyerID == buyerID {
			result = append(result, bid)
		}
	}
	return result, nil
}

func (r *memBidRepo) Delete(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.bids, id)
	return nil
}
