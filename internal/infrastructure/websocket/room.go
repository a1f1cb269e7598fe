package websocket

import (
	"fmt"

	"procurehub/internal/domain/entity"
)

// ResolveRoomID derives the canonical room key for a (product, buyer,
// seller) triple. The participant pair is sorted so that both call orders
// collide onto the same key; every code path that computes a room key
// must go through here.
func ResolveRoomID(productID, idA, idB string) string {
	lo, hi := idA, idB
	if hi < lo {
		lo, hi = hi, lo
	}
	return fmt.Sprintf("product_%s_buyer_%s_seller_%s", productID, lo, hi)
}

// ResolveBuyerID applies the buyer-id precedence chain. A buyer is always
// the buyer themselves; a seller must name the buyer in the payload, or
// the session's previously stored buyerId is used, or as a last resort
// the seller's own id. The last branch can only produce buyerId ==
// sellerId, which the caller rejects.
func ResolveBuyerID(userType, userID, payloadBuyerID, sessionBuyerID string) string {
	if userType == entity.SideBuyer {
		return userID
	}
	if payloadBuyerID != "" {
		return payloadBuyerID
	}
	if sessionBuyerID != "" {
		return sessionBuyerID
	}
	return userID
}
