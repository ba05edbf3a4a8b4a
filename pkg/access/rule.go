// Package access decides whether an actor may act on a booking or a shop resource.
package access

import (
	"motoservice-be/internal/entity"
)

// Subject is what ownership predicates inspect. Shop is only loaded for rules that admit owners.
type Subject struct {
	Booking *entity.Booking
	Shop    *entity.Shop
}

// Predicate reports whether the actor owns the subject.
type Predicate func(actor entity.Actor, subject Subject) bool

// Rule maps each admitted role to its ownership predicate. Missing roles are denied.
type Rule map[entity.Role]Predicate

// Allows evaluates the rule once for the actor.
func (r Rule) Allows(actor entity.Actor, subject Subject) bool {
	pred, ok := r[actor.Role]
	if !ok {
		return false
	}
	return pred(actor, subject)
}

// NeedsShop reports whether evaluating the rule for this role requires the shop row.
func (r Rule) NeedsShop(role entity.Role) bool {
	return role == entity.RoleOwner && r[role] != nil
}

func Any(entity.Actor, Subject) bool {
	return true
}

func BookingCustomer(actor entity.Actor, s Subject) bool {
	return s.Booking != nil && s.Booking.CustomerId == actor.Id
}

func AssignedWorker(actor entity.Actor, s Subject) bool {
	return s.Booking != nil && s.Booking.HasWorker(actor.Id)
}

func ShopOwner(actor entity.Actor, s Subject) bool {
	if s.Shop == nil || s.Shop.OwnerId != actor.Id {
		return false
	}
	return s.Booking == nil || s.Booking.ShopId == s.Shop.Id
}

var (
	CreateBooking = Rule{
		entity.RoleCustomer: Any,
	}
	ConfirmBooking = Rule{
		entity.RoleCustomer: BookingCustomer,
	}
	CancelBooking = Rule{
		entity.RoleCustomer: BookingCustomer,
	}
	StartBooking = Rule{
		entity.RoleWorker: AssignedWorker,
	}
	CompleteBooking = Rule{
		entity.RoleWorker: AssignedWorker,
		entity.RoleAdmin:  Any,
	}
	// ViewBooking covers the booking itself and its invoice.
	ViewBooking = Rule{
		entity.RoleCustomer: BookingCustomer,
		entity.RoleWorker:   AssignedWorker,
		entity.RoleOwner:    ShopOwner,
		entity.RoleAdmin:    Any,
	}
	ManageWorker = Rule{
		entity.RoleOwner: ShopOwner,
		entity.RoleAdmin: Any,
	}
	ReadOwnLedger = Rule{
		entity.RoleCustomer: Any,
	}
	AdminOnly = Rule{
		entity.RoleAdmin: Any,
	}
)
