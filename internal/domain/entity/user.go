package entity

import "time"

type User struct {
	ID           string    `json:"id" bson:"_id,omitempty"`
	FirstName    string    `json:"firstName" bson:"firstName"`
	LastName     string    `json:"lastName" bson:"lastName"`
	Email        string    `json:"email" bson:"email"`
	Phone        string    `json:"phone" bson:"phone"`
	Password     string    `json:"-" bson:"password"`
	Address      string    `json:"address,omitempty" bson:"address,omitempty"`
	ProfileImage string    `json:"profileImage,omitempty" bson:"profileImage,omitempty"`
	CreatedAt    time.Time `json:"createdAt" bson:"createdAt,omitempty"`
	UpdatedAt    time.Time `json:"updatedAt" bson:"updatedAt,omitempty"`
}

// UserSummary is the projection attached to recent chats and bids.
type UserSummary struct {
	ID           string `json:"id" bson:"_id,omitempty"`
	FirstName    string `json:"firstName" bson:"firstName"`
	LastName     string `json:"lastName" bson:"lastName"`
	Email        string `json:"email" bson:"email"`
	Phone        string `json:"phone" bson:"phone"`
	ProfileImage string `json:"profileImage,omitempty" bson:"profileImage,omitempty"`
}

func (u *User) Summary() *UserSummary {
	return &UserSummary{
		ID:           u.ID,
		FirstName:    u.FirstName,
		LastName:     u.LastName,
		Email:        u.Email,
		Phone:        u.Phone,
		ProfileImage: u.ProfileImage,
	}
}
